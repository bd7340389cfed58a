package achievement

import (
	"log/slog"
)

// Player plays the achievement alert once.
type Player interface {
	Play() error
}

// Effect is a side effect fired on a flag transition.
type Effect string

const (
	EffectNone        Effect = ""
	EffectPlayAlert   Effect = "play_alert"
	EffectClearTrophy Effect = "clear_trophy"
)

// transitionTable maps flag edges to their effect. Steady states are absent.
var transitionTable = map[Transition]Effect{
	{From: false, To: true}: EffectPlayAlert,
	{From: true, To: false}: EffectClearTrophy,
}

// EffectFor returns the effect bound to a transition.
func EffectFor(transition Transition) Effect {
	return transitionTable[transition]
}

// Dispatcher fires side effects for achievement flag transitions.
type Dispatcher struct {
	store      *Store
	player     Player
	alertSound bool
	logger     *slog.Logger
	launch     func(func())
}

// NewDispatcher creates a dispatcher. A nil player disables audio.
func NewDispatcher(store *Store, player Player, alertSound bool, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		store:      store,
		player:     player,
		alertSound: alertSound,
		logger:     logger,
		launch: func(run func()) {
			go run()
		},
	}
}

// Dispatch performs at most one effect for the transition and reports which
// effect actually fired.
func (dispatcher *Dispatcher) Dispatch(transition Transition) (Effect, bool) {
	switch EffectFor(transition) {
	case EffectPlayAlert:
		if !dispatcher.alertSound || dispatcher.player == nil {
			return EffectPlayAlert, false
		}
		dispatcher.launch(dispatcher.play)
		return EffectPlayAlert, true
	case EffectClearTrophy:
		return EffectClearTrophy, dispatcher.store.clearTrophySeen()
	default:
		return EffectNone, false
	}
}

// play never reports failure upward; the flag transition already happened.
func (dispatcher *Dispatcher) play() {
	if err := dispatcher.player.Play(); err != nil {
		dispatcher.logger.Warn("alert sound playback failed", "error", err)
	}
}

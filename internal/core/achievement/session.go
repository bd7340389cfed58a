package achievement

import (
	"log/slog"
	"sync"
	"time"

	"devruntime/internal/core/model"

	"github.com/google/uuid"
)

// Session wires a Store, an Evaluator and a Dispatcher for one timer view.
// Ticks are handled one at a time; evaluation and dispatch run synchronously
// inside HandleTick.
type Session struct {
	mu          sync.Mutex
	id          string
	config      model.TimerConfig
	store       *Store
	evaluator   *Evaluator
	dispatcher  *Dispatcher
	logger      *slog.Logger
	evaluated   bool
	lastSeconds int
	events      []chan Event
	closed      bool
	now         func() time.Time
}

// NewSession creates a session for the given configuration.
func NewSession(config model.TimerConfig, player Player, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	config = config.Normalized()
	id := uuid.NewString()
	logger = logger.With("session", id)

	store := NewStore()
	return &Session{
		id:         id,
		config:     config,
		store:      store,
		evaluator:  NewEvaluator(store, config.Target),
		dispatcher: NewDispatcher(store, player, config.AlertSound, logger),
		logger:     logger,
		now:        time.Now,
	}
}

// ID returns the session identifier.
func (session *Session) ID() string {
	return session.id
}

// Config returns the session configuration.
func (session *Session) Config() model.TimerConfig {
	return session.config
}

// Store exposes read access to the session state.
func (session *Session) Store() *Store {
	return session.store
}

// Subscribe registers a new observer channel.
func (session *Session) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	session.mu.Lock()
	if session.closed {
		close(ch)
	} else {
		session.events = append(session.events, ch)
	}
	session.mu.Unlock()
	return ch
}

// HandleTick stores a clock reading and, when the seconds field changed,
// re-evaluates the flag and dispatches the transition effect.
func (session *Session) HandleTick(tick model.Tick) {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed {
		return
	}

	at := tick.At
	if at.IsZero() {
		at = session.now()
	}

	session.store.setElapsed(tick.Elapsed)
	if tick.Reset {
		session.evaluated = false
	}
	if session.evaluated && tick.Elapsed.Seconds == session.lastSeconds {
		session.emitLocked(session.eventLocked(EventTick, at))
		return
	}
	session.evaluated = true
	session.lastSeconds = tick.Elapsed.Seconds

	transition, changed := session.evaluator.Evaluate()
	session.emitLocked(session.eventLocked(EventTick, at))
	if !changed {
		return
	}

	effect, fired := session.dispatcher.Dispatch(transition)
	session.logger.Debug("achievement transition",
		"from", transition.From,
		"to", transition.To,
		"effect", string(effect),
		"fired", fired,
	)

	if transition.To {
		event := session.eventLocked(EventAchieved, at)
		event.AlertPlayed = fired
		session.emitLocked(event)
		return
	}
	session.emitLocked(session.eventLocked(EventLost, at))
	if effect == EffectClearTrophy && fired {
		session.emitLocked(session.eventLocked(EventTrophyCleared, at))
	}
}

// Acknowledge marks the trophy as seen for the current episode. Without an
// achievement it does nothing.
func (session *Session) Acknowledge() {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.closed || !session.store.MarkTrophySeen() {
		return
	}
	session.emitLocked(session.eventLocked(EventTrophySeen, session.now()))
}

// NeedsTrophy reports whether an achievement is waiting for acknowledgement.
func (session *Session) NeedsTrophy() bool {
	snapshot := session.store.Snapshot()
	return snapshot.Achieved && !snapshot.TrophySeen
}

// Close discards the session and closes observers.
func (session *Session) Close() {
	session.mu.Lock()
	if session.closed {
		session.mu.Unlock()
		return
	}
	session.closed = true
	events := session.events
	session.events = nil
	session.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (session *Session) eventLocked(eventType EventType, at time.Time) Event {
	snapshot := session.store.Snapshot()
	return Event{
		Type:       eventType,
		SessionID:  session.id,
		Elapsed:    snapshot.Elapsed,
		Achieved:   snapshot.Achieved,
		TrophySeen: snapshot.TrophySeen,
		At:         at,
	}
}

func (session *Session) emitLocked(event Event) {
	for _, ch := range session.events {
		select {
		case ch <- event:
		default:
		}
	}
}

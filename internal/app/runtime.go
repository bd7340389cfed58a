// Package app wires the clock, the achievement session and the user
// interfaces together.
package app

import (
	"log/slog"
	"sync"
	"time"

	"devruntime/internal/core/achievement"
	"devruntime/internal/core/model"
	"devruntime/internal/core/timekeeper"
)

const (
	// Name is the application name used for config paths and the instance lock.
	Name = "DevRuntime"
	// ID is the Fyne application identifier.
	ID = "com.devruntime.app"
)

// Runtime owns the stopwatch and the session it feeds.
type Runtime struct {
	mu      sync.Mutex
	player  achievement.Player
	logger  *slog.Logger
	watch   *timekeeper.Stopwatch
	session *achievement.Session
	closed  bool
}

// NewRuntime creates a stopped runtime for the configuration.
func NewRuntime(config model.TimerConfig, player achievement.Player, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	runtime := &Runtime{
		player: player,
		logger: logger,
		watch:  timekeeper.New(timekeeper.Config{TickInterval: time.Second}),
	}
	runtime.session = runtime.newSession(config)
	return runtime
}

// Session returns the current session.
func (runtime *Runtime) Session() *achievement.Session {
	runtime.mu.Lock()
	defer runtime.mu.Unlock()
	return runtime.session
}

// Stopwatch returns the clock source.
func (runtime *Runtime) Stopwatch() *timekeeper.Stopwatch {
	return runtime.watch
}

// Start begins ticking.
func (runtime *Runtime) Start() {
	runtime.watch.Start()
}

// Replace discards the current session and starts a fresh one for config.
// The stopwatch keeps its reading; the new session evaluates on its first tick.
func (runtime *Runtime) Replace(config model.TimerConfig) *achievement.Session {
	runtime.mu.Lock()
	if runtime.closed {
		session := runtime.session
		runtime.mu.Unlock()
		return session
	}
	previous := runtime.session
	session := runtime.newSession(config)
	runtime.session = session
	runtime.mu.Unlock()

	previous.Close()
	runtime.logger.Info("timer session replaced", "previous", previous.ID(), "session", session.ID())
	return session
}

// Close stops the clock and closes the session.
func (runtime *Runtime) Close() {
	runtime.mu.Lock()
	if runtime.closed {
		runtime.mu.Unlock()
		return
	}
	runtime.closed = true
	session := runtime.session
	runtime.mu.Unlock()

	runtime.watch.Close()
	session.Close()
}

func (runtime *Runtime) newSession(config model.TimerConfig) *achievement.Session {
	session := achievement.NewSession(config, runtime.player, runtime.logger)
	runtime.watch.SetTickHandler(session.HandleTick)
	runtime.logger.Debug("timer session created",
		"session", session.ID(),
		"target", config.Target.String(),
		"alert_sound", config.AlertSound,
	)
	return session
}

package timekeeper

import (
	"time"

	"devruntime/internal/core/model"
)

// State represents the current Stopwatch mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// EventType defines the type of Stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
)

// Event represents a Stopwatch update for observers.
type Event struct {
	Type  EventType
	State State
	Tick  model.Tick
	At    time.Time
}

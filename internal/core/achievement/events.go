package achievement

import (
	"time"

	"devruntime/internal/core/model"
)

// EventType defines the type of Session event.
type EventType string

const (
	EventTick          EventType = "tick"
	EventAchieved      EventType = "achieved"
	EventLost          EventType = "lost"
	EventTrophySeen    EventType = "trophy_seen"
	EventTrophyCleared EventType = "trophy_cleared"
)

// Event represents a Session update for observers.
type Event struct {
	Type       EventType
	SessionID  string
	Elapsed    model.ElapsedTime
	Achieved   bool
	TrophySeen bool
	// AlertPlayed is set on EventAchieved when the alert sound was started.
	AlertPlayed bool
	At          time.Time
}

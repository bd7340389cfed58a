package model

import "time"

// Tick is one reading delivered by a clock source.
type Tick struct {
	Elapsed ElapsedTime
	// Reset marks the first reading after the clock was reset.
	Reset bool
	At    time.Time
}

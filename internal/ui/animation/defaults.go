package animation

import (
	"time"

	"fyne.io/fyne/v2"
)

// TrophyFrames returns the celebration loop shown while a trophy waits.
func TrophyFrames(trophy, sparkle fyne.Resource) []Frame {
	return []Frame{
		{
			Resource: trophy,
			Hold:     Range{Min: 600 * time.Millisecond, Max: 900 * time.Millisecond},
		},
		{
			Resource: sparkle,
			Hold:     Range{Min: 150 * time.Millisecond, Max: 250 * time.Millisecond},
		},
	}
}

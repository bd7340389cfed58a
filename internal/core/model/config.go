package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTarget indicates a target time string could not be parsed.
var ErrInvalidTarget = errors.New("invalid target time")

// PolygonForm selects the outline of the timer face.
type PolygonForm string

const (
	PolygonSquare PolygonForm = "square"
	PolygonCircle PolygonForm = "circle"
)

// Style overrides the timer face colors. Empty values keep the defaults.
type Style struct {
	BackgroundColor string
	Color           string
}

// ElapsedTime is a normalized clock reading.
type ElapsedTime struct {
	Hours   int
	Minutes int
	Seconds int
}

// ElapsedFromDuration splits a duration into hours, minutes and seconds.
func ElapsedFromDuration(value time.Duration) ElapsedTime {
	if value < 0 {
		value = 0
	}
	total := int(value / time.Second)
	return ElapsedTime{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Duration converts the reading back to a time.Duration.
func (elapsed ElapsedTime) Duration() time.Duration {
	return time.Duration(elapsed.Hours)*time.Hour +
		time.Duration(elapsed.Minutes)*time.Minute +
		time.Duration(elapsed.Seconds)*time.Second
}

// TargetTime is the fixed duration a session tries to reach.
type TargetTime struct {
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether the target is 00:00:00.
func (target TargetTime) IsZero() bool {
	return target.Hours == 0 && target.Minutes == 0 && target.Seconds == 0
}

// String formats the target as HH:MM:SS.
func (target TargetTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", target.Hours, target.Minutes, target.Seconds)
}

// ParseTarget parses "HH:MM:SS", "MM:SS" or "SS". An empty string is 00:00:00.
func ParseTarget(value string) (TargetTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return TargetTime{}, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, value)
	}

	fields := make([]int, 3)
	offset := 3 - len(parts)
	for index, part := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || parsed < 0 {
			return TargetTime{}, fmt.Errorf("%w: %q", ErrInvalidTarget, value)
		}
		fields[offset+index] = parsed
	}
	if fields[1] >= 60 || fields[2] >= 60 {
		return TargetTime{}, fmt.Errorf("%w: %q out of range", ErrInvalidTarget, value)
	}

	return TargetTime{Hours: fields[0], Minutes: fields[1], Seconds: fields[2]}, nil
}

// TargetFromFields builds a target from loosely typed fields.
// Missing or malformed fields count as zero.
func TargetFromFields(hours, minutes, seconds string) TargetTime {
	return TargetTime{
		Hours:   lenientInt(hours),
		Minutes: lenientInt(minutes),
		Seconds: lenientInt(seconds),
	}
}

func lenientInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

// TimerConfig contains the immutable per-session settings of a timer.
type TimerConfig struct {
	Target TargetTime

	// StaticLabel is the fixed hour label shown in static mode.
	StaticLabel  string
	IsStaticTime bool
	IsFlowTime   bool

	AlertSound  bool
	PolygonForm PolygonForm
	Style       Style
}

// Normalized returns a copy with defaults applied.
func (config TimerConfig) Normalized() TimerConfig {
	if config.PolygonForm != PolygonCircle {
		config.PolygonForm = PolygonSquare
	}
	return config
}

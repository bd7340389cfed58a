// Package present renders timer readings as text for every UI surface.
package present

import (
	"strconv"
	"strings"

	"devruntime/internal/core/model"
)

// FieldSeparator joins hour, minute and second fields.
const FieldSeparator = ":"

// FlowSeparator is the glyph between the target and the live reading.
const FlowSeparator = "—"

// Pad renders a clock field with at least two digits.
func Pad(value int) string {
	if value < 0 {
		value = 0
	}
	if value < 10 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// Clock renders hours, minutes and seconds as HH:MM:SS.
func Clock(hours, minutes, seconds int) string {
	return strings.Join([]string{Pad(hours), Pad(minutes), Pad(seconds)}, FieldSeparator)
}

// Elapsed renders a clock reading.
func Elapsed(elapsed model.ElapsedTime) string {
	return Clock(elapsed.Hours, elapsed.Minutes, elapsed.Seconds)
}

// Target renders a target duration.
func Target(target model.TargetTime) string {
	return Clock(target.Hours, target.Minutes, target.Seconds)
}

// View is the text content of a timer face. Sections whose display mode is
// off are empty.
type View struct {
	Static  []string
	Target  []string
	Elapsed []string
}

// Render builds the view for a configuration and a reading.
func Render(config model.TimerConfig, elapsed model.ElapsedTime) View {
	var view View
	if config.IsStaticTime {
		label := config.StaticLabel
		if label == "" {
			label = Pad(config.Target.Hours)
		}
		view.Static = []string{label, "00", "00"}
	}
	if config.IsFlowTime {
		view.Target = []string{
			Pad(config.Target.Hours),
			Pad(config.Target.Minutes),
			Pad(config.Target.Seconds),
		}
		view.Elapsed = []string{
			Pad(elapsed.Hours),
			Pad(elapsed.Minutes),
			Pad(elapsed.Seconds),
		}
	}
	return view
}

// HasStatic reports whether the static countdown section is shown.
func (view View) HasStatic() bool {
	return len(view.Static) > 0
}

// HasFlow reports whether the live section is shown.
func (view View) HasFlow() bool {
	return len(view.Elapsed) > 0
}

// StaticText joins the static section.
func (view View) StaticText() string {
	return strings.Join(view.Static, FieldSeparator)
}

// TargetText joins the target fields of the live section.
func (view View) TargetText() string {
	return strings.Join(view.Target, FieldSeparator)
}

// ElapsedText joins the elapsed fields of the live section.
func (view View) ElapsedText() string {
	return strings.Join(view.Elapsed, FieldSeparator)
}

// Status is the one-line summary used by the tray and the terminal footer.
func Status(elapsed model.ElapsedTime, target model.TargetTime, achieved bool) string {
	status := Elapsed(elapsed) + " / " + Target(target)
	if achieved {
		status += " (achieved)"
	}
	return status
}

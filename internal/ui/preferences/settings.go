package preferences

import (
	"devruntime/internal/core/model"
)

// DefaultAPIURL is the posts backend used when none is configured.
const DefaultAPIURL = "http://localhost:3000"

// Settings defines editable user preferences.
type Settings struct {
	// Target is the goal duration as typed by the user, e.g. "01:30:00".
	Target      string
	StaticLabel string
	StaticTime  bool
	FlowTime    bool
	AlertSound  bool

	PolygonForm     model.PolygonForm
	BackgroundColor string
	Color           string

	APIURL string
	Token  string
}

// DefaultSettings returns default settings for DevRuntime.
func DefaultSettings() Settings {
	return Settings{
		Target:      "01:00:00",
		FlowTime:    true,
		AlertSound:  false,
		PolygonForm: model.PolygonSquare,
		APIURL:      DefaultAPIURL,
	}
}

// TimerConfig converts settings to the immutable session configuration.
// The target is parsed here once; an unparsable target counts as 00:00:00.
func (settings Settings) TimerConfig() model.TimerConfig {
	target, err := model.ParseTarget(settings.Target)
	if err != nil {
		target = model.TargetTime{}
	}
	return model.TimerConfig{
		Target:       target,
		StaticLabel:  settings.StaticLabel,
		IsStaticTime: settings.StaticTime,
		IsFlowTime:   settings.FlowTime,
		AlertSound:   settings.AlertSound,
		PolygonForm:  settings.PolygonForm,
		Style: model.Style{
			BackgroundColor: settings.BackgroundColor,
			Color:           settings.Color,
		},
	}.Normalized()
}

// Validate reports whether the target can be parsed.
func (settings Settings) Validate() error {
	_, err := model.ParseTarget(settings.Target)
	return err
}

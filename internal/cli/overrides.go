package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"devruntime/internal/core/model"
	"devruntime/internal/ui/preferences"
)

// timerOverrides are per-run flags layered over the saved settings.
type timerOverrides struct {
	target      string
	staticLabel string
	static      bool
	flow        bool
	sound       bool
	circle      bool
	apiURL      string
}

func (overrides *timerOverrides) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&overrides.target, "target", "", "target duration (HH:MM:SS)")
	flags.StringVar(&overrides.staticLabel, "label", "", "label shown in the static view")
	flags.BoolVar(&overrides.static, "static", false, "show the static target view")
	flags.BoolVar(&overrides.flow, "flow", true, "show the live elapsed view")
	flags.BoolVar(&overrides.sound, "sound", false, "play a sound when the target is reached")
	flags.BoolVar(&overrides.circle, "circle", false, "use a circular timer face")
	flags.StringVar(&overrides.apiURL, "api-url", "", "posts API base URL")
}

// apply copies explicitly set flags onto settings.
func (overrides *timerOverrides) apply(cmd *cobra.Command, settings preferences.Settings) (preferences.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed("target") {
		if _, err := model.ParseTarget(overrides.target); err != nil {
			return settings, fmt.Errorf("--target: %w", err)
		}
		settings.Target = overrides.target
	}
	if flags.Changed("label") {
		settings.StaticLabel = overrides.staticLabel
	}
	if flags.Changed("static") {
		settings.StaticTime = overrides.static
	}
	if flags.Changed("flow") {
		settings.FlowTime = overrides.flow
	}
	if flags.Changed("sound") {
		settings.AlertSound = overrides.sound
	}
	if flags.Changed("circle") {
		settings.PolygonForm = model.PolygonSquare
		if overrides.circle {
			settings.PolygonForm = model.PolygonCircle
		}
	}
	if flags.Changed("api-url") {
		settings.APIURL = strings.TrimRight(overrides.apiURL, "/")
	}
	return settings, nil
}

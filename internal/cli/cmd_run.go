package cli

import (
	"github.com/spf13/cobra"

	"devruntime/internal/app"
)

func newRunCmd() *cobra.Command {
	overrides := &timerOverrides{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the desktop timer (default)",
		Long: `Run the desktop timer with a tray menu.

Flags override the saved settings for this run only. Saving from the
preferences window writes the settings file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, overrides)
		},
	}
	overrides.bind(cmd)
	return cmd
}

func runGUI(cmd *cobra.Command, overrides *timerOverrides) error {
	options, err := timerOptions(cmd, overrides)
	if err != nil {
		return err
	}
	return app.RunGUI(options)
}

func timerOptions(cmd *cobra.Command, overrides *timerOverrides) (app.Options, error) {
	logger := newLogger(cmd.ErrOrStderr())
	settings, settingsPath, err := loadSettings()
	if err != nil {
		logger.Warn("load settings, using defaults", "error", err)
	}
	settings, err = overrides.apply(cmd, settings)
	if err != nil {
		return app.Options{}, err
	}
	return app.Options{
		Settings:     settings,
		SettingsPath: settingsPath,
		Logger:       logger,
	}, nil
}

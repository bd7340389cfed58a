// Package cli provides the Cobra command tree for devruntime.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"devruntime/internal/app"
	"devruntime/internal/storage"
	"devruntime/internal/ui/preferences"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Debug      bool
	ConfigPath string
}

var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command. Without a subcommand it runs the
// desktop timer.
func NewRootCmd() *cobra.Command {
	overrides := &timerOverrides{}
	rootCmd := &cobra.Command{
		Use:   "devruntime",
		Short: "Coding session timer with a trophy when you reach your target",
		Long: `devruntime - coding session timer

DevRuntime counts how long you have been working, shows the elapsed time next
to your target and awards a trophy (and optionally a sound) once the target is
reached. It can also post a summary of the session to a channel.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, overrides)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&globalOpts.Debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", "", "settings file (default: user config dir)")
	overrides.bind(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newRunCmd(),
		newTUICmd(),
		newChannelsCmd(),
		newPostCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given output writers. An interrupt
// cancels the command context.
func Execute(stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if globalOpts.Debug || os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadSettings reads settings from --config or the user config directory.
func loadSettings() (preferences.Settings, string, error) {
	if globalOpts.ConfigPath != "" {
		settings, err := storage.LoadSettingsFrom(globalOpts.ConfigPath)
		return settings, globalOpts.ConfigPath, err
	}
	settingsPath, err := storage.SettingsPath(app.Name)
	if err != nil {
		return preferences.DefaultSettings(), "", err
	}
	settings, err := storage.LoadSettingsFrom(settingsPath)
	return settings, settingsPath, err
}

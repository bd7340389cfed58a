package app

import (
	"log/slog"

	"devruntime/internal/core/achievement"
	"devruntime/internal/platform"
	"devruntime/internal/post"
	"devruntime/internal/storage"
	"devruntime/internal/ui/preferences"
	"devruntime/resources"
)

// Options configures a GUI or terminal run.
type Options struct {
	Settings preferences.Settings
	// SettingsPath overrides the default settings location when saving.
	SettingsPath string
	Logger       *slog.Logger
}

func (options Options) logger() *slog.Logger {
	if options.Logger == nil {
		return slog.Default()
	}
	return options.Logger
}

func (options Options) save(settings preferences.Settings) error {
	if options.SettingsPath != "" {
		return storage.SaveSettingsTo(options.SettingsPath, settings)
	}
	return storage.SaveSettings(Name, settings)
}

// NewPlayer returns the system player for the alert tone.
func NewPlayer() achievement.Player {
	sound := resources.AlertSound()
	return platform.NewAudioPlayer(Name, sound.Name(), sound.Content())
}

// NewPostStore builds a posts store against the configured API.
func NewPostStore(settings preferences.Settings, logger *slog.Logger) *post.Store {
	client := post.NewClient(settings.APIURL, settings.Token, logger)
	return post.NewStore(client, logger)
}

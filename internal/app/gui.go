package app

import (
	"errors"
	"fmt"
	"log/slog"

	"devruntime/internal/core/achievement"
	"devruntime/internal/core/timekeeper"
	"devruntime/internal/platform"
	"devruntime/internal/present"
	"devruntime/internal/ui/composer"
	"devruntime/internal/ui/preferences"
	"devruntime/internal/ui/timerview"
	"devruntime/internal/ui/tray"
	"devruntime/resources"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// RunGUI runs the desktop timer until the user quits.
func RunGUI(options Options) error {
	logger := options.logger()
	guard, err := platform.AcquireSingleInstance(Name)
	if errors.Is(err, platform.ErrAlreadyRunning) {
		if activateErr := platform.ActivateRunning(Name); activateErr == nil {
			logger.Info("timer already running, brought it to the front")
			return nil
		}
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		if err := guard.Release(); err != nil {
			logger.Warn("release instance lock", "error", err)
		}
	}()

	fyneApp := fyneapp.NewWithID(ID)
	fyneApp.SetIcon(resources.AppIcon())

	ui := newGUI(fyneApp, options, NewPlayer())
	guard.OnActivate(func() {
		fyne.Do(ui.showTimer)
	})
	ui.runtime.Start()
	fyneApp.Run()
	ui.runtime.Close()
	return nil
}

type gui struct {
	app      fyne.App
	desktop  desktop.App
	options  Options
	settings preferences.Settings
	logger   *slog.Logger
	runtime  *Runtime
	timer    *timerview.Window
	tray     *tray.Manager
	prefs    *preferences.Window
	composer *composer.Window
	postKey  string
	paused   bool
}

func newGUI(fyneApp fyne.App, options Options, player achievement.Player) *gui {
	ui := &gui{
		app:      fyneApp,
		options:  options,
		settings: options.Settings,
		logger:   options.logger(),
	}
	ui.runtime = NewRuntime(ui.settings.TimerConfig(), player, ui.logger)
	ui.prefs = preferences.New(fyneApp, ui.settings, ui.applySettings)

	callbacks := tray.Callbacks{
		OnShowTimer: ui.showTimer,
		OnPreferences: func() {
			ui.prefs.UpdateSettings(ui.settings)
			ui.prefs.Show()
		},
		OnTogglePause: ui.togglePause,
		OnReset:       ui.reset,
		OnAcknowledge: func() {
			ui.runtime.Session().Acknowledge()
		},
		OnWritePost: ui.writePost,
		OnQuit:      ui.quit,
	}
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		ui.desktop = desktopApp
		ui.tray = tray.New(desktopApp, callbacks)
		desktopApp.SetSystemTrayIcon(resources.AppIcon())
	} else {
		ui.logger.Info("system tray unsupported on this platform")
		ui.tray = tray.New(nil, callbacks)
	}

	ui.showSession(ui.runtime.Session())
	go ui.watchClock(ui.runtime.Stopwatch().Subscribe(8))
	return ui
}

// showSession replaces the timer window with one bound to session.
func (ui *gui) showSession(session *achievement.Session) {
	previous := ui.timer
	ui.timer = timerview.New(ui.app, session, timerview.Callbacks{
		OnTogglePause: ui.togglePause,
		OnReset:       ui.reset,
	})
	if ui.desktop != nil {
		window := ui.timer.Window()
		window.SetCloseIntercept(window.Hide)
	}
	ui.timer.SetPaused(ui.paused)
	ui.timer.Show()
	if previous != nil {
		previous.Window().Close()
	}

	go ui.route(session, ui.timer, session.Subscribe(16))
}

// route forwards session events to the timer window and the tray until the
// session is closed.
func (ui *gui) route(session *achievement.Session, timer *timerview.Window, events <-chan achievement.Event) {
	target := session.Config().Target
	for event := range events {
		// events buffered before a replacement belong to a closed window
		if !ui.isCurrent(event) {
			continue
		}
		timer.HandleEvent(event)

		status := present.Status(event.Elapsed, target, event.Achieved)
		pending := event.Achieved && !event.TrophySeen
		fyne.Do(func() {
			ui.tray.SetStatus(status)
			ui.tray.SetTrophyPending(pending)
		})
	}
}

func (ui *gui) isCurrent(event achievement.Event) bool {
	return event.SessionID == ui.runtime.Session().ID()
}

func (ui *gui) watchClock(events <-chan timekeeper.Event) {
	for event := range events {
		if event.Type != timekeeper.EventStateChange {
			continue
		}
		paused := event.State == timekeeper.StatePaused
		fyne.Do(func() {
			ui.setPaused(paused)
		})
	}
}

func (ui *gui) setPaused(paused bool) {
	ui.paused = paused
	ui.tray.SetPaused(paused)
	ui.timer.SetPaused(paused)
}

func (ui *gui) showTimer() {
	ui.timer.Show()
	ui.timer.Window().RequestFocus()
}

func (ui *gui) togglePause() {
	ui.runtime.Stopwatch().TogglePause()
}

func (ui *gui) reset() {
	ui.runtime.Stopwatch().Reset()
}

func (ui *gui) applySettings(updated preferences.Settings) {
	ui.settings = updated
	if err := ui.options.save(updated); err != nil {
		ui.logger.Error("save settings", "error", err)
	}
	ui.showSession(ui.runtime.Replace(updated.TimerConfig()))
}

// writePost opens the composer, rebuilding it when the API settings changed.
func (ui *gui) writePost() {
	key := ui.settings.APIURL + "\x00" + ui.settings.Token
	if ui.composer == nil || ui.postKey != key {
		if ui.composer != nil {
			ui.composer.Close()
		}
		ui.composer = composer.New(ui.app, NewPostStore(ui.settings, ui.logger))
		ui.postKey = key
	}
	ui.composer.Show()
}

func (ui *gui) quit() {
	ui.runtime.Close()
	ui.app.Quit()
}

package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer   func()
	OnPreferences func()
	OnTogglePause func()
	OnReset       func()
	OnAcknowledge func()
	OnWritePost   func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	trophyItem  *fyne.MenuItem
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.trophyItem = fyne.NewMenuItem("Acknowledge trophy", invoke(&manager.callbacks.OnAcknowledge))
	manager.trophyItem.Disabled = true

	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
}

// SetTrophyPending enables the acknowledge item while a trophy waits.
func (manager *Manager) SetTrophyPending(pending bool) {
	if manager.trophyItem.Disabled == !pending {
		return
	}
	manager.trophyItem.Disabled = !pending
	manager.refreshMenu()
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("DevRuntime",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", invoke(&manager.callbacks.OnShowTimer)),
		manager.pauseItem,
		fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset)),
		manager.trophyItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Write a post", invoke(&manager.callbacks.OnWritePost)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// invoke defers the nil check to click time so callbacks can be set later.
func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggleTimer func()
	OnToggleMute  func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	timerItem   *fyne.MenuItem
	muteItem    *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	muted       bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "25:00",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.timerItem = fyne.NewMenuItem("Start timer", invoke(&manager.callbacks.OnToggleTimer))
	manager.muteItem = fyne.NewMenuItem("Mute", invoke(&manager.callbacks.OnToggleMute))

	manager.refreshStatus()
	return manager
}

// SetStatus updates the countdown shown in the status line.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning updates the timer item.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	if running {
		manager.timerItem.Label = "Pause timer"
	} else {
		manager.timerItem.Label = "Start timer"
	}
	manager.refreshStatus()
}

// SetMuted updates the mute item.
func (manager *Manager) SetMuted(muted bool) {
	manager.muted = muted
	if muted {
		manager.muteItem.Label = "Unmute"
	} else {
		manager.muteItem.Label = "Mute"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("🍅 %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Mood Todo",
		manager.statusItem,
		fyne.NewMenuItem("Open dashboard", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.timerItem,
		manager.muteItem,
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	))
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}

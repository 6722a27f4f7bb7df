package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/session"
)

const menuTitle = "Pomodoro"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are the tray icons for the running and paused timer.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	icons      Icons
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	running    bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("--:-- · Pomodoro", invoke(manager.callbacks.OnShow))
	manager.toggleItem = fyne.NewMenuItem("Start", invoke(manager.callbacks.OnToggle))

	manager.refreshMenu()
	manager.refreshIcon()
	return manager
}

// Render updates the status line, the toggle label and the icon.
func (manager *Manager) Render(snapshot session.Snapshot) {
	manager.statusItem.Label = Status(snapshot)
	manager.SetRunning(snapshot.Running)
}

// SetRunning switches the toggle label and the icon.
func (manager *Manager) SetRunning(running bool) {
	changed := manager.running != running
	manager.running = running
	if running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}
	if changed {
		manager.refreshIcon()
	}
	manager.refreshMenu()
}

// StatusLabel returns the status line shown at the top of the menu.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

// ToggleLabel returns the start/pause item label.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

// Status renders the one-line tray status for snapshot.
func Status(snapshot session.Snapshot) string {
	status := fmt.Sprintf("%s · %s", snapshot.Clock, snapshot.Mode.Label())
	if !snapshot.Running {
		status += " (paused)"
	}
	return status
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Paused
	if manager.running {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	quit := fyne.NewMenuItem("Quit", invoke(manager.callbacks.OnQuit))
	quit.IsQuit = true
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", invoke(manager.callbacks.OnReset)),
		fyne.NewMenuItem("Settings", invoke(manager.callbacks.OnPreferences)),
		fyne.NewMenuItemSeparator(),
		quit,
	))
}

func invoke(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

package tray

import (
	"fmt"

	"pomobar/internal/core/session"
	"pomobar/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"
)

const menuTitle = "pomobar"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	callbacks  Callbacks
	setTitle   func(string)
	lastIcon   string
	title      string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		setTitle:  systray.SetTitle,
	}

	manager.statusItem = fyne.NewMenuItem("Pomodoro 25:00", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	preferences := fyne.NewMenuItem("Settings", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		reset,
		preferences,
		fyne.NewMenuItemSeparator(),
		quit,
	)
	if app != nil {
		app.SetSystemTrayMenu(manager.menu)
	}
	return manager
}

// Render updates the tray from an engine snapshot.
func (manager *Manager) Render(state session.State) {
	clock := session.FormatClock(state.SecondsRemaining)
	status := fmt.Sprintf("%s %s", session.Title(state.Phase), clock)
	if !state.Running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status

	if state.Running {
		manager.toggleItem.Label = "Pause"
	} else {
		manager.toggleItem.Label = "Start"
	}

	if manager.title != clock {
		manager.title = clock
		if manager.setTitle != nil {
			manager.setTitle(clock)
		}
	}

	icon := resources.TrayIcon(state.Phase, state.Running)
	if manager.app != nil && icon.Name() != manager.lastIcon {
		manager.app.SetSystemTrayIcon(icon)
	}
	manager.lastIcon = icon.Name()

	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// ToggleLabel returns the current start/pause label.
func (manager *Manager) ToggleLabel() string {
	return manager.toggleItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.menu.Refresh()
}

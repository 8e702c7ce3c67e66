package resources

import (
	"pomobar/internal/core/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppIcon returns the application icon.
func AppIcon() fyne.Resource {
	return theme.HistoryIcon()
}

// TrayIcon returns the tray icon for a phase. Paused sessions share the idle icon.
func TrayIcon(phase session.Phase, running bool) fyne.Resource {
	if !running {
		return theme.HistoryIcon()
	}
	switch phase {
	case session.PhaseShortBreak:
		return theme.HomeIcon()
	case session.PhaseLongBreak:
		return theme.AccountIcon()
	default:
		return theme.MediaRecordIcon()
	}
}

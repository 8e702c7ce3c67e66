package tui

import (
	"fmt"
	"log"
	"time"

	"pomobar/internal/core/session"
	"pomobar/internal/notify"
	"pomobar/internal/storage"
	"pomobar/internal/ui/preferences"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a terminal session.
type Options struct {
	Settings     preferences.Settings
	ConfigPath   string
	TickInterval time.Duration
}

// Run starts the terminal front-end and blocks until the user quits.
func Run(options Options) error {
	engine, err := session.New(options.Settings.SessionConfig())
	if err != nil {
		return err
	}

	banner := &Banner{}
	notifier := notify.New(banner)
	notifier.SetEnabled(options.Settings.Notifications)
	notifier.Attach(engine)

	interval := options.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	program := tea.NewProgram(NewModel(engine, banner, notifier), tea.WithAltScreen())

	ticker := session.NewTicker(interval, func() {
		program.Send(TickMsg{})
	})
	engine.SetTickSource(ticker)
	defer ticker.Halt()

	if options.Settings.Watch && options.ConfigPath != "" {
		watcher, err := storage.NewWatcher(options.ConfigPath, func(settings preferences.Settings) {
			program.Send(SettingsMsg{Settings: settings})
		}, func(err error) {
			program.Send(ErrorMsg{Err: err})
		})
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else {
			watcher.Start()
			defer watcher.Stop()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

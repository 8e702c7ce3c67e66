package main

import (
	"errors"
	"log"
	"time"

	"pomobar/internal/core/session"
	"pomobar/internal/notify"
	"pomobar/internal/platform"
	"pomobar/internal/storage"
	"pomobar/internal/ui/popover"
	"pomobar/internal/ui/preferences"
	"pomobar/internal/ui/tray"
	"pomobar/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

// runTray owns the engine on the Fyne main goroutine. Background sources
// (ticker, config watcher, instance activation) re-enter through fyne.Do.
func runTray(configPath string, settings preferences.Settings) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	engine, err := session.New(settings.SessionConfig())
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("com.pomobar.app")
	fyneApp.SetIcon(resources.AppIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return errors.New("system tray unsupported on this platform")
	}

	notifier := notify.New(notify.NewFyneSender(fyneApp))
	notifier.SetEnabled(settings.Notifications)
	notifier.Attach(engine)

	toggle := func() {
		if engine.Snapshot().Running {
			engine.Pause()
		} else {
			engine.Start()
		}
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) error {
		if err := engine.Configure(updated.SessionConfig()); err != nil {
			return err
		}
		settings = updated
		return nil
	})

	popoverWindow := popover.New(fyneApp, popover.Callbacks{
		OnToggle:   toggle,
		OnReset:    engine.Reset,
		OnSettings: prefsWindow.Show,
	})

	ticker := session.NewTicker(time.Second, func() {
		fyne.Do(engine.Tick)
	})
	engine.SetTickSource(ticker)

	var watcher *storage.Watcher
	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShow:        popoverWindow.Show,
		OnToggle:      toggle,
		OnReset:       engine.Reset,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			ticker.Halt()
			if watcher != nil {
				watcher.Stop()
			}
			fyneApp.Quit()
		},
	})

	render := func() {
		state := engine.Snapshot()
		trayManager.Render(state)
		popoverWindow.Render(state)
	}
	engine.Subscribe(func(session.Event) {
		render()
	})
	render()

	if settings.Watch {
		watcher, err = storage.NewWatcher(configPath, func(reloaded preferences.Settings) {
			fyne.Do(func() {
				if err := engine.Configure(reloaded.SessionConfig()); err != nil {
					log.Printf("config reload: %v", err)
					return
				}
				settings = reloaded
				prefsWindow.UpdateSettings(reloaded)
				notifier.SetEnabled(reloaded.Notifications)
			})
		}, func(err error) {
			log.Printf("config reload: %v", err)
		})
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
			watcher = nil
		} else {
			watcher.Start()
		}
	}

	guard.Serve(func() {
		fyne.Do(popoverWindow.Show)
	})

	fyneApp.Run()
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pomobar/internal/platform"
	"pomobar/internal/storage"
	"pomobar/internal/tui"
	"pomobar/internal/ui/preferences"

	"github.com/spf13/cobra"
)

const appName = "pomobar"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           appName,
		Short:         "Pomodoro timer for the menu bar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, settings, err := loadSettings(configPath)
			if err != nil {
				return err
			}
			return runTray(path, settings)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newConfigCmd(&configPath))
	root.AddCommand(newAutostartCmd(platform.NewService()))
	return root
}

func loadSettings(configPath string) (string, preferences.Settings, error) {
	path, err := storage.ResolveConfigPath(appName, configPath)
	if err != nil {
		return "", preferences.DefaultSettings(), err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return path, settings, err
	}
	return path, settings, nil
}

func newTUICmd(configPath *string) *cobra.Command {
	var setup bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, settings, err := loadSettings(*configPath)
			if err != nil {
				return err
			}
			if setup {
				settings, err = tui.RunSetupForm(settings)
				if err != nil {
					return err
				}
			}
			return tui.Run(tui.Options{
				Settings:     settings,
				ConfigPath:   path,
				TickInterval: time.Second,
			})
		},
	}
	cmd.Flags().BoolVar(&setup, "setup", false, "edit durations before starting")
	return cmd
}

func newConfigCmd(configPath *string) *cobra.Command {
	config := &cobra.Command{Use: "config", Short: "Config file commands"}

	config.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := storage.ResolveConfigPath(appName, *configPath)
			if err != nil {
				return err
			}
			if err := storage.InitSettings(path); err != nil {
				if errors.Is(err, storage.ErrConfigExists) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "config already exists: %s\n", path)
					return nil
				}
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	})

	config.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, settings, err := loadSettings(*configPath)
			if err != nil {
				return err
			}
			serialized, err := storage.MarshalSettings(settings)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, serialized)
			return nil
		},
	})
	return config
}

func newAutostartCmd(service platform.Service) *cobra.Command {
	autostart := &cobra.Command{Use: "autostart", Short: "Launch at login"}

	autostart.AddCommand(&cobra.Command{
		Use:   "enable",
		Short: "Start pomobar at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			execPath, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			if err := service.EnableAutostart(appName, execPath); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "autostart enabled")
			return nil
		},
	})

	autostart.AddCommand(&cobra.Command{
		Use:   "disable",
		Short: "Stop starting pomobar at login",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.DisableAutostart(appName); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "autostart disabled")
			return nil
		},
	})

	autostart.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Report whether autostart is enabled",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enabled, err := service.AutostartEnabled(appName)
			if err != nil {
				return err
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "autostart %s\n", state)
			return nil
		},
	})
	return autostart
}

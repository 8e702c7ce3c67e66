//go:build linux || darwin

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// On Linux and macOS autostart is a single file the session manager reads at login.

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" {
		return errors.New("enable autostart: app name is empty")
	}
	if execPath == "" {
		return errors.New("enable autostart: exec path is empty")
	}

	entryPath, err := service.autostartPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create %s: %w", filepath.Dir(entryPath), err)
	}

	content, err := autostartEntry(appName, execPath)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.WriteFile(entryPath, content, 0o644); err != nil {
		return fmt.Errorf("enable autostart: write %s: %w", entryPath, err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if appName == "" {
		return errors.New("disable autostart: app name is empty")
	}

	entryPath, err := service.autostartPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(entryPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("disable autostart: remove %s: %w", entryPath, err)
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	entryPath, err := service.autostartPath(appName)
	if err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}
	exists, err := fileExists(entryPath)
	if err != nil {
		return false, fmt.Errorf("autostart status: %w", err)
	}
	return exists, nil
}

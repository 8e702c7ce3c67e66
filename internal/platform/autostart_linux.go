//go:build linux

package platform

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

// autostartPath follows the XDG autostart layout: $XDG_CONFIG_HOME/autostart/<slug>.desktop.
func (service *platformService) autostartPath(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", appSlug(appName)+".desktop"), nil
}

func autostartEntry(appName, execPath string) ([]byte, error) {
	if strings.Contains(execPath, " ") && !strings.HasPrefix(execPath, `"`) {
		execPath = `"` + execPath + `"`
	}

	var entry bytes.Buffer
	fields := [][2]string{
		{"Type", "Application"},
		{"Name", appName},
		{"Comment", "Pomodoro timer in the system tray"},
		{"Exec", execPath},
		{"Terminal", "false"},
		{"Categories", "Utility;"},
		{"X-GNOME-Autostart-enabled", "true"},
	}
	entry.WriteString("[Desktop Entry]\n")
	for _, field := range fields {
		fmt.Fprintf(&entry, "%s=%s\n", field[0], field[1])
	}
	return entry.Bytes(), nil
}

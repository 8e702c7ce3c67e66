package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomobar/internal/platform"
	"pomobar/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "config.yaml"

// ErrConfigExists is returned by InitSettings when the file is already present.
var ErrConfigExists = errors.New("config file already exists")

type yamlSettings struct {
	FocusMinutes          *int  `yaml:"focus_minutes,omitempty"`
	ShortBreakMinutes     *int  `yaml:"short_break_minutes,omitempty"`
	LongBreakMinutes      *int  `yaml:"long_break_minutes,omitempty"`
	CyclesBeforeLongBreak *int  `yaml:"cycles_before_long_break,omitempty"`
	Notifications         *bool `yaml:"notifications,omitempty"`
	Watch                 *bool `yaml:"watch,omitempty"`
}

const settingsHeader = `# pomobar configuration.
# Durations are in minutes. Edits are picked up while pomobar runs when watch is true.
`

// ResolveConfigPath returns path when set, otherwise the per-user config file location.
func ResolveConfigPath(appName, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads startup preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	return ParseSettings(rawData)
}

// ParseSettings decodes YAML on top of the default settings.
func ParseSettings(rawData []byte) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	if err := settings.SessionConfig().Validate(); err != nil {
		return preferences.DefaultSettings(), fmt.Errorf("settings file: %w", err)
	}
	return settings, nil
}

// MarshalSettings encodes settings with the file header.
func MarshalSettings(settings preferences.Settings) ([]byte, error) {
	fileData := yamlSettings{
		FocusMinutes:          intPtr(settings.FocusMinutes),
		ShortBreakMinutes:     intPtr(settings.ShortBreakMinutes),
		LongBreakMinutes:      intPtr(settings.LongBreakMinutes),
		CyclesBeforeLongBreak: intPtr(settings.CyclesBeforeLongBreak),
		Notifications:         boolPtr(settings.Notifications),
		Watch:                 boolPtr(settings.Watch),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return nil, fmt.Errorf("marshal settings yaml: %w", err)
	}
	return append([]byte(settingsHeader), serialized...), nil
}

// InitSettings writes a default config file. Existing files are never overwritten.
func InitSettings(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := MarshalSettings(preferences.DefaultSettings())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes != nil {
		settings.FocusMinutes = *fileData.FocusMinutes
	}
	if fileData.ShortBreakMinutes != nil {
		settings.ShortBreakMinutes = *fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes != nil {
		settings.LongBreakMinutes = *fileData.LongBreakMinutes
	}
	if fileData.CyclesBeforeLongBreak != nil {
		settings.CyclesBeforeLongBreak = *fileData.CyclesBeforeLongBreak
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}
	if fileData.Watch != nil {
		settings.Watch = *fileData.Watch
	}
}

func intPtr(value int) *int {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}

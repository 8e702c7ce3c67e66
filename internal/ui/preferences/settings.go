package preferences

import (
	"fmt"

	"pomobar/internal/core/model"
)

// Bounds of the editable values, matching the stepper ranges of the settings sheet.
const (
	MinMinutes          = 1
	MaxFocusMinutes     = 60
	MaxBreakMinutes     = 30
	MaxLongBreakMinutes = 60
	MinCycles           = 1
	MaxCycles           = 10
)

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes          int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int

	Notifications bool
	Watch         bool
}

// DefaultSettings returns default settings for pomobar.
func DefaultSettings() Settings {
	session := model.DefaultSessionConfig()
	return Settings{
		FocusMinutes:          session.FocusMinutes,
		ShortBreakMinutes:     session.ShortBreakMinutes,
		LongBreakMinutes:      session.LongBreakMinutes,
		CyclesBeforeLongBreak: session.CyclesBeforeLongBreak,
		Notifications:         true,
		Watch:                 true,
	}
}

// FromSessionConfig copies session values into settings, keeping the other fields.
func (settings Settings) FromSessionConfig(config model.SessionConfig) Settings {
	settings.FocusMinutes = config.FocusMinutes
	settings.ShortBreakMinutes = config.ShortBreakMinutes
	settings.LongBreakMinutes = config.LongBreakMinutes
	settings.CyclesBeforeLongBreak = config.CyclesBeforeLongBreak
	return settings
}

// SessionConfig converts settings to the engine configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	return model.SessionConfig{
		FocusMinutes:          settings.FocusMinutes,
		ShortBreakMinutes:     settings.ShortBreakMinutes,
		LongBreakMinutes:      settings.LongBreakMinutes,
		CyclesBeforeLongBreak: settings.CyclesBeforeLongBreak,
	}
}

// CheckRanges validates the values against the editor bounds.
func (settings Settings) CheckRanges() error {
	if err := settings.SessionConfig().Validate(); err != nil {
		return err
	}
	ranges := []struct {
		name  string
		value int
		max   int
	}{
		{"focus minutes", settings.FocusMinutes, MaxFocusMinutes},
		{"short break minutes", settings.ShortBreakMinutes, MaxBreakMinutes},
		{"long break minutes", settings.LongBreakMinutes, MaxLongBreakMinutes},
		{"cycles before long break", settings.CyclesBeforeLongBreak, MaxCycles},
	}
	for _, item := range ranges {
		if item.value > item.max {
			return fmt.Errorf("%w: %s must be <= %d, got %d", model.ErrInvalidConfiguration, item.name, item.max, item.value)
		}
	}
	return nil
}

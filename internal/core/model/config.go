package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a session configuration breaks its bounds.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// SessionConfig contains the durations and cycle length of a pomodoro session.
type SessionConfig struct {
	FocusMinutes          int
	ShortBreakMinutes     int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

// DefaultSessionConfig returns the classic 25/5/15 schedule with a long break every 4 pomodoros.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		FocusMinutes:          25,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate checks that every duration and the cycle count are at least one.
func (config SessionConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"focus minutes", config.FocusMinutes},
		{"short break minutes", config.ShortBreakMinutes},
		{"long break minutes", config.LongBreakMinutes},
		{"cycles before long break", config.CyclesBeforeLongBreak},
	}
	for _, check := range checks {
		if check.value < 1 {
			return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidConfiguration, check.name, check.value)
		}
	}
	return nil
}

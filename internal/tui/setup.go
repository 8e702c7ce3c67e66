package tui

import (
	"fmt"
	"strconv"
	"strings"

	"pomobar/internal/ui/preferences"

	"github.com/charmbracelet/huh"
)

// RunSetupForm asks for the four session values before the timer starts.
// Values outside the editor bounds are rejected inline.
func RunSetupForm(settings preferences.Settings) (preferences.Settings, error) {
	focus := strconv.Itoa(settings.FocusMinutes)
	shortBreak := strconv.Itoa(settings.ShortBreakMinutes)
	longBreak := strconv.Itoa(settings.LongBreakMinutes)
	cycles := strconv.Itoa(settings.CyclesBeforeLongBreak)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pomodoro length (minutes)").
				Value(&focus).
				Validate(boundedInt(preferences.MinMinutes, preferences.MaxFocusMinutes)),
			huh.NewInput().
				Title("Break length (minutes)").
				Value(&shortBreak).
				Validate(boundedInt(preferences.MinMinutes, preferences.MaxBreakMinutes)),
			huh.NewInput().
				Title("Long break length (minutes)").
				Value(&longBreak).
				Validate(boundedInt(preferences.MinMinutes, preferences.MaxLongBreakMinutes)),
			huh.NewInput().
				Title("Pomodoros before long break").
				Value(&cycles).
				Validate(boundedInt(preferences.MinCycles, preferences.MaxCycles)),
		),
	)
	if err := form.Run(); err != nil {
		return settings, fmt.Errorf("setup form: %w", err)
	}

	return applyFormValues(settings, focus, shortBreak, longBreak, cycles)
}

func applyFormValues(settings preferences.Settings, focus, shortBreak, longBreak, cycles string) (preferences.Settings, error) {
	targets := []struct {
		raw    string
		target *int
	}{
		{focus, &settings.FocusMinutes},
		{shortBreak, &settings.ShortBreakMinutes},
		{longBreak, &settings.LongBreakMinutes},
		{cycles, &settings.CyclesBeforeLongBreak},
	}
	for _, item := range targets {
		value, err := strconv.Atoi(strings.TrimSpace(item.raw))
		if err != nil {
			return settings, fmt.Errorf("setup form: %q is not a number", item.raw)
		}
		*item.target = value
	}
	if err := settings.CheckRanges(); err != nil {
		return settings, err
	}
	return settings, nil
}

func boundedInt(min, max int) func(string) error {
	return func(raw string) error {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if value < min || value > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

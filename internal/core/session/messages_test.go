package session

import (
	"testing"
	"time"
)

func TestMessageFor(t *testing.T) {
	cases := map[Phase][2]string{
		PhaseFocus:      {"Pomodoro Completed!", "Time for a break."},
		PhaseShortBreak: {"Break Completed!", "Time to focus again."},
		PhaseLongBreak:  {"Long Break Completed!", "Ready for another pomodoro?"},
	}
	for phase, want := range cases {
		title, body := MessageFor(phase)
		if title != want[0] || body != want[1] {
			t.Fatalf("%s: got %q/%q", phase, title, body)
		}
	}
}

func TestTitle(t *testing.T) {
	if Title(PhaseFocus) != "Pomodoro" || Title(PhaseShortBreak) != "Break" || Title(PhaseLongBreak) != "Long Break" {
		t.Fatalf("unexpected titles")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		1500: "25:00",
		3599: "59:59",
		-5:   "00:00",
	}
	for seconds, want := range cases {
		if got := FormatClock(seconds); got != want {
			t.Fatalf("FormatClock(%d)=%q, want %q", seconds, got, want)
		}
	}
}

func TestTickerResumeHalt(t *testing.T) {
	ticks := make(chan struct{}, 16)
	ticker := NewTicker(5*time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	ticker.Resume()
	ticker.Resume()
	if !ticker.Active() {
		t.Fatalf("expected active ticker")
	}
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatalf("no tick delivered")
	}

	ticker.Halt()
	ticker.Halt()
	if ticker.Active() {
		t.Fatalf("expected halted ticker")
	}
}

package session

import "fmt"

var phaseTitles = map[Phase]string{
	PhaseFocus:      "Pomodoro",
	PhaseShortBreak: "Break",
	PhaseLongBreak:  "Long Break",
}

var completionMessages = map[Phase][2]string{
	PhaseFocus:      {"Pomodoro Completed!", "Time for a break."},
	PhaseShortBreak: {"Break Completed!", "Time to focus again."},
	PhaseLongBreak:  {"Long Break Completed!", "Ready for another pomodoro?"},
}

// Title returns the display label of a phase.
func Title(phase Phase) string {
	if title, ok := phaseTitles[phase]; ok {
		return title
	}
	return string(phase)
}

// MessageFor returns the notification title and body shown when phase completes.
func MessageFor(phase Phase) (title, body string) {
	message, ok := completionMessages[phase]
	if !ok {
		return Title(phase) + " Completed!", ""
	}
	return message[0], message[1]
}

// FormatClock renders seconds as mm:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

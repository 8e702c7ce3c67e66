package session

import "time"

// Phase represents the current countdown mode.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// EventType defines the type of engine event.
type EventType string

const (
	EventTick            EventType = "tick"
	EventPhaseCompleted  EventType = "phase_completed"
	EventPhaseChanged    EventType = "phase_changed"
	EventSettingsChanged EventType = "settings_changed"
	EventReset           EventType = "reset"
	EventStarted         EventType = "started"
	EventPaused          EventType = "paused"
)

// Event represents an engine update for observers.
// Phase carries the completed phase for EventPhaseCompleted and the new phase for
// EventPhaseChanged; for every other type it is the current phase.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining int
	At        time.Time
}

// Listener receives engine events synchronously.
type Listener func(Event)

// State is a snapshot of the session.
type State struct {
	Phase               Phase
	SecondsRemaining    int
	Running             bool
	FocusCompleted      int
	ShortBreakCompleted int
	LongBreakCompleted  int
}

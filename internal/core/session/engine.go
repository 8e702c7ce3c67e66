package session

import (
	"time"

	"pomobar/internal/core/model"
)

// TickSource delivers ticks to the engine while it is running.
// Resume and Halt must be idempotent.
type TickSource interface {
	Resume()
	Halt()
}

// Engine is the pomodoro session state machine.
//
// Engine is not safe for concurrent use. Every command, including Tick, must be
// invoked from the same execution context (the UI loop that owns the engine).
type Engine struct {
	config    model.SessionConfig
	state     State
	source    TickSource
	listeners map[int]Listener
	order     []int
	nextID    int
	now       func() time.Time
}

// New creates an engine in the Focus phase, paused, with a full focus countdown.
func New(config model.SessionConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	engine := &Engine{
		config:    config,
		listeners: make(map[int]Listener),
		now:       time.Now,
	}
	engine.resetState()
	return engine, nil
}

// SetTickSource injects the tick driver started and stopped by Start and Pause.
func (engine *Engine) SetTickSource(source TickSource) {
	if engine.source != nil {
		engine.source.Halt()
	}
	engine.source = source
	if source != nil && engine.state.Running {
		source.Resume()
	}
}

// Subscribe registers a listener and returns a function removing it.
func (engine *Engine) Subscribe(listener Listener) func() {
	id := engine.nextID
	engine.nextID++
	engine.listeners[id] = listener
	engine.order = append(engine.order, id)
	return func() {
		delete(engine.listeners, id)
		for index, candidate := range engine.order {
			if candidate == id {
				engine.order = append(engine.order[:index], engine.order[index+1:]...)
				break
			}
		}
	}
}

// Snapshot returns the current session state.
func (engine *Engine) Snapshot() State {
	return engine.state
}

// Config returns the active configuration.
func (engine *Engine) Config() model.SessionConfig {
	return engine.config
}

// Configure replaces the configuration. When the full duration of the current phase
// changes, the countdown restarts from the new duration.
// An invalid configuration is rejected and leaves the engine untouched.
func (engine *Engine) Configure(config model.SessionConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	previous := engine.PhaseSeconds(engine.state.Phase)
	engine.config = config
	if current := engine.PhaseSeconds(engine.state.Phase); current != previous {
		engine.state.SecondsRemaining = current
	}
	engine.emit(EventSettingsChanged, engine.state.Phase)
	return nil
}

// Start resumes the countdown. It is a no-op when already running or when no time remains.
func (engine *Engine) Start() {
	if engine.state.Running || engine.state.SecondsRemaining == 0 {
		return
	}
	engine.state.Running = true
	if engine.source != nil {
		engine.source.Resume()
	}
	engine.emit(EventStarted, engine.state.Phase)
}

// Pause freezes the countdown. It is a no-op when not running.
func (engine *Engine) Pause() {
	if !engine.state.Running {
		return
	}
	engine.halt()
	engine.emit(EventPaused, engine.state.Phase)
}

// Reset stops the countdown and returns to a fresh Focus phase with zeroed counters.
func (engine *Engine) Reset() {
	engine.halt()
	engine.resetState()
	engine.emit(EventReset, engine.state.Phase)
}

// Tick advances the session clock by one second. It is a no-op while paused.
func (engine *Engine) Tick() {
	if !engine.state.Running {
		return
	}
	if engine.state.SecondsRemaining > 0 {
		engine.state.SecondsRemaining--
		engine.emit(EventTick, engine.state.Phase)
	}
	if engine.state.SecondsRemaining == 0 {
		engine.completePhase()
	}
}

func (engine *Engine) completePhase() {
	engine.halt()

	completed := engine.state.Phase
	next := PhaseFocus
	switch completed {
	case PhaseFocus:
		engine.state.FocusCompleted++
		if engine.state.FocusCompleted%engine.config.CyclesBeforeLongBreak == 0 {
			next = PhaseLongBreak
		} else {
			next = PhaseShortBreak
		}
	case PhaseShortBreak:
		engine.state.ShortBreakCompleted++
	case PhaseLongBreak:
		engine.state.LongBreakCompleted++
	}

	engine.state.Phase = next
	engine.state.SecondsRemaining = engine.PhaseSeconds(next)

	engine.emit(EventPhaseCompleted, completed)
	engine.emit(EventPhaseChanged, next)
}

func (engine *Engine) halt() {
	engine.state.Running = false
	if engine.source != nil {
		engine.source.Halt()
	}
}

func (engine *Engine) resetState() {
	engine.state = State{
		Phase:            PhaseFocus,
		SecondsRemaining: engine.PhaseSeconds(PhaseFocus),
	}
}

// PhaseSeconds returns the full duration of phase in seconds.
func (engine *Engine) PhaseSeconds(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return engine.config.ShortBreakMinutes * 60
	case PhaseLongBreak:
		return engine.config.LongBreakMinutes * 60
	default:
		return engine.config.FocusMinutes * 60
	}
}

func (engine *Engine) emit(eventType EventType, phase Phase) {
	event := Event{
		Type:      eventType,
		Phase:     phase,
		Remaining: engine.state.SecondsRemaining,
		At:        engine.now(),
	}
	ids := append([]int(nil), engine.order...)
	for _, id := range ids {
		if listener, ok := engine.listeners[id]; ok {
			listener(event)
		}
	}
}

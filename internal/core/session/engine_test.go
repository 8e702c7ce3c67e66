package session

import (
	"errors"
	"testing"

	"pomobar/internal/core/model"
)

type recorder struct {
	events []Event
}

func (rec *recorder) listen(event Event) {
	rec.events = append(rec.events, event)
}

func (rec *recorder) types() []EventType {
	out := make([]EventType, 0, len(rec.events))
	for _, event := range rec.events {
		out = append(out, event.Type)
	}
	return out
}

func (rec *recorder) reset() {
	rec.events = nil
}

type fakeSource struct {
	resumes int
	halts   int
	active  bool
}

func (source *fakeSource) Resume() {
	source.resumes++
	source.active = true
}

func (source *fakeSource) Halt() {
	source.halts++
	source.active = false
}

func newTestEngine(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	engine, err := New(model.DefaultSessionConfig())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	rec := &recorder{}
	engine.Subscribe(rec.listen)
	return engine, rec
}

func tickN(engine *Engine, n int) {
	for i := 0; i < n; i++ {
		engine.Tick()
	}
}

func TestNewStartsPausedInFocus(t *testing.T) {
	engine, _ := newTestEngine(t)
	state := engine.Snapshot()
	if state.Phase != PhaseFocus || state.SecondsRemaining != 1500 || state.Running {
		t.Fatalf("unexpected initial state: %+v", state)
	}
	if state.FocusCompleted != 0 || state.ShortBreakCompleted != 0 || state.LongBreakCompleted != 0 {
		t.Fatalf("counters not zero: %+v", state)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(model.SessionConfig{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15})
	if !errors.Is(err, model.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestFocusCompletionMovesToShortBreak(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.Start()
	rec.reset()

	tickN(engine, 1500)

	state := engine.Snapshot()
	if state.Phase != PhaseShortBreak {
		t.Fatalf("phase=%s", state.Phase)
	}
	if state.FocusCompleted != 1 || state.SecondsRemaining != 300 || state.Running {
		t.Fatalf("unexpected state: %+v", state)
	}

	n := len(rec.events)
	if n < 2 {
		t.Fatalf("expected completion events, got %v", rec.types())
	}
	completed, changed := rec.events[n-2], rec.events[n-1]
	if completed.Type != EventPhaseCompleted || completed.Phase != PhaseFocus {
		t.Fatalf("unexpected completion event: %+v", completed)
	}
	if changed.Type != EventPhaseChanged || changed.Phase != PhaseShortBreak || changed.Remaining != 300 {
		t.Fatalf("unexpected change event: %+v", changed)
	}
	if rec.events[n-3].Type != EventTick || rec.events[n-3].Remaining != 0 {
		t.Fatalf("expected final tick at zero, got %+v", rec.events[n-3])
	}
}

func TestNextPhaseDoesNotAutoStart(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.Start()
	tickN(engine, 1500)
	rec.reset()

	engine.Tick()
	if len(rec.events) != 0 {
		t.Fatalf("expected no events after completion, got %v", rec.types())
	}
	if engine.Snapshot().SecondsRemaining != 300 {
		t.Fatalf("remaining changed while halted")
	}
}

func TestLongBreakAfterConfiguredCycles(t *testing.T) {
	engine, rec := newTestEngine(t)

	for cycle := 1; cycle <= 4; cycle++ {
		engine.Start()
		tickN(engine, 1500)
		state := engine.Snapshot()
		if state.FocusCompleted != cycle {
			t.Fatalf("cycle %d: focus completed=%d", cycle, state.FocusCompleted)
		}
		if cycle < 4 {
			if state.Phase != PhaseShortBreak {
				t.Fatalf("cycle %d: expected short break, got %s", cycle, state.Phase)
			}
			engine.Start()
			tickN(engine, 300)
			if engine.Snapshot().Phase != PhaseFocus {
				t.Fatalf("cycle %d: expected focus after break", cycle)
			}
			continue
		}
		if state.Phase != PhaseLongBreak || state.SecondsRemaining != 900 {
			t.Fatalf("expected long break with 900s, got %+v", state)
		}
		last := rec.events[len(rec.events)-1]
		if last.Type != EventPhaseChanged || last.Phase != PhaseLongBreak {
			t.Fatalf("unexpected last event: %+v", last)
		}
	}

	engine.Start()
	tickN(engine, 900)
	state := engine.Snapshot()
	if state.Phase != PhaseFocus || state.LongBreakCompleted != 1 || state.ShortBreakCompleted != 3 {
		t.Fatalf("unexpected state after long break: %+v", state)
	}
}

func TestSingleCycleAlwaysLongBreak(t *testing.T) {
	engine, _ := newTestEngine(t)
	config := engine.Config()
	config.CyclesBeforeLongBreak = 1
	config.FocusMinutes = 1
	if err := engine.Configure(config); err != nil {
		t.Fatalf("configure: %v", err)
	}

	for i := 0; i < 3; i++ {
		engine.Start()
		tickN(engine, 60)
		if engine.Snapshot().Phase != PhaseLongBreak {
			t.Fatalf("iteration %d: expected long break", i)
		}
		engine.Start()
		tickN(engine, config.LongBreakMinutes*60)
	}
}

func TestPauseThenTickIsNoop(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.Start()
	tickN(engine, 10)
	engine.Pause()
	before := engine.Snapshot()
	rec.reset()

	engine.Tick()

	if engine.Snapshot() != before {
		t.Fatalf("state changed while paused")
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events, got %v", rec.types())
	}
}

func TestStartAndPauseAreIdempotent(t *testing.T) {
	engine, rec := newTestEngine(t)
	source := &fakeSource{}
	engine.SetTickSource(source)

	engine.Start()
	engine.Start()
	if source.resumes != 1 || !source.active {
		t.Fatalf("expected a single resume, got %+v", source)
	}
	engine.Pause()
	engine.Pause()
	if source.halts != 1 || source.active {
		t.Fatalf("expected a single halt, got %+v", source)
	}

	got := rec.types()
	if len(got) != 2 || got[0] != EventStarted || got[1] != EventPaused {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestCompletionHaltsTickSource(t *testing.T) {
	engine, _ := newTestEngine(t)
	config := engine.Config()
	config.FocusMinutes = 1
	if err := engine.Configure(config); err != nil {
		t.Fatalf("configure: %v", err)
	}
	source := &fakeSource{}
	engine.SetTickSource(source)

	engine.Start()
	tickN(engine, 60)
	if source.active {
		t.Fatalf("tick source still active after completion")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.Start()
	tickN(engine, 1500)
	engine.Start()
	tickN(engine, 42)

	engine.Reset()
	first := engine.Snapshot()
	engine.Reset()
	second := engine.Snapshot()

	want := State{Phase: PhaseFocus, SecondsRemaining: 1500}
	if first != want || second != want {
		t.Fatalf("reset state mismatch: first=%+v second=%+v", first, second)
	}
	last := rec.events[len(rec.events)-1]
	if last.Type != EventReset {
		t.Fatalf("expected reset event, got %s", last.Type)
	}
}

func TestConfigureResetsCurrentPhaseDuration(t *testing.T) {
	engine, rec := newTestEngine(t)
	engine.Start()
	tickN(engine, 100)
	if engine.Snapshot().SecondsRemaining != 1400 {
		t.Fatalf("setup: remaining=%d", engine.Snapshot().SecondsRemaining)
	}
	rec.reset()

	err := engine.Configure(model.SessionConfig{
		FocusMinutes:          10,
		ShortBreakMinutes:     5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
	})
	if err != nil {
		t.Fatalf("configure: %v", err)
	}

	state := engine.Snapshot()
	if state.SecondsRemaining != 600 {
		t.Fatalf("remaining=%d, want 600", state.SecondsRemaining)
	}
	if !state.Running {
		t.Fatalf("configure must not change running")
	}
	if got := rec.types(); len(got) != 1 || got[0] != EventSettingsChanged {
		t.Fatalf("unexpected events: %v", got)
	}
}

func TestConfigureKeepsCountdownWhenCurrentDurationUnchanged(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Start()
	tickN(engine, 100)

	config := engine.Config()
	config.ShortBreakMinutes = 7
	if err := engine.Configure(config); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if engine.Snapshot().SecondsRemaining != 1400 {
		t.Fatalf("remaining=%d, want 1400", engine.Snapshot().SecondsRemaining)
	}
}

func TestConfigureRejectsInvalidValues(t *testing.T) {
	engine, rec := newTestEngine(t)
	before := engine.Config()

	invalid := []model.SessionConfig{
		{FocusMinutes: 0, ShortBreakMinutes: 5, LongBreakMinutes: 15, CyclesBeforeLongBreak: 4},
		{FocusMinutes: 25, ShortBreakMinutes: -1, LongBreakMinutes: 15, CyclesBeforeLongBreak: 4},
		{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 0, CyclesBeforeLongBreak: 4},
		{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15, CyclesBeforeLongBreak: 0},
	}
	for _, config := range invalid {
		if err := engine.Configure(config); !errors.Is(err, model.ErrInvalidConfiguration) {
			t.Fatalf("config %+v: expected ErrInvalidConfiguration, got %v", config, err)
		}
	}
	if engine.Config() != before {
		t.Fatalf("configuration changed after rejected update")
	}
	if len(rec.events) != 0 {
		t.Fatalf("rejected update emitted %v", rec.types())
	}
}

func TestConfigureKeepsRemainingInRange(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Start()
	for focus := 1; focus <= 60; focus += 7 {
		tickN(engine, 13)
		config := engine.Config()
		config.FocusMinutes = focus
		config.ShortBreakMinutes = 1 + focus%5
		if err := engine.Configure(config); err != nil {
			t.Fatalf("configure: %v", err)
		}
		state := engine.Snapshot()
		limit := engine.PhaseSeconds(state.Phase)
		if state.SecondsRemaining < 0 || state.SecondsRemaining > limit {
			t.Fatalf("remaining %d out of [0,%d]", state.SecondsRemaining, limit)
		}
		engine.Start()
	}
}

func TestRemainingNeverIncreasesWhileRunning(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Start()
	previous := engine.Snapshot().SecondsRemaining
	for i := 0; i < 1499; i++ {
		engine.Tick()
		current := engine.Snapshot().SecondsRemaining
		if current > previous || current < 0 {
			t.Fatalf("tick %d: remaining went from %d to %d", i, previous, current)
		}
		previous = current
	}
	if previous != 1 {
		t.Fatalf("remaining=%d before final tick", previous)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	engine, _ := newTestEngine(t)
	rec := &recorder{}
	unsubscribe := engine.Subscribe(rec.listen)
	engine.Reset()
	unsubscribe()
	engine.Reset()
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
}

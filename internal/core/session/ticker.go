package session

import (
	"sync"
	"time"
)

// Ticker is a TickSource backed by time.Ticker.
// The onTick callback runs on the ticker goroutine; callers are expected to hand
// the tick over to the goroutine that owns the engine (fyne.Do, tea.Program.Send).
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	onTick   func()
	stopCh   chan struct{}
	active   bool
}

// NewTicker creates a halted ticker firing onTick every interval.
func NewTicker(interval time.Duration, onTick func()) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{
		interval: interval,
		onTick:   onTick,
	}
}

// Resume launches the ticking loop unless it is already active.
func (ticker *Ticker) Resume() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if ticker.active {
		return
	}
	ticker.active = true
	ticker.stopCh = make(chan struct{})
	go ticker.run(ticker.stopCh)
}

// Halt stops the ticking loop.
func (ticker *Ticker) Halt() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	if !ticker.active {
		return
	}
	close(ticker.stopCh)
	ticker.active = false
}

// Active reports whether the loop is delivering ticks.
func (ticker *Ticker) Active() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.active
}

func (ticker *Ticker) run(stopCh <-chan struct{}) {
	timer := time.NewTicker(ticker.interval)
	defer timer.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timer.C:
			select {
			case <-stopCh:
				return
			default:
			}
			if ticker.onTick != nil {
				ticker.onTick()
			}
		}
	}
}

// Package timekeeper provides the ticking clock source of a timer session.
package timekeeper

import (
	"sync"
	"time"

	"devruntime/internal/core/model"
)

// TickHandler consumes clock readings in order, one at a time.
type TickHandler func(model.Tick)

// Config contains runtime options for Stopwatch.
type Config struct {
	TickInterval time.Duration
}

// Stopwatch counts elapsed time upward from zero in whole ticks.
type Stopwatch struct {
	mu        sync.Mutex
	handlerMu sync.Mutex
	options   Config
	state     State
	elapsed   time.Duration
	handler   TickHandler
	events    []chan Event
	stopCh    chan struct{}
	running   bool
	paused    bool
}

// New creates a stopped Stopwatch.
func New(options Config) *Stopwatch {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Stopwatch{
		options: options,
		state:   StateStopped,
	}
}

// SetTickHandler injects the synchronous consumer of clock readings.
func (watch *Stopwatch) SetTickHandler(handler TickHandler) {
	watch.handlerMu.Lock()
	defer watch.handlerMu.Unlock()
	watch.handler = handler
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (watch *Stopwatch) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watch.mu.Lock()
	watch.events = append(watch.events, ch)
	watch.mu.Unlock()
	return ch
}

// Elapsed returns the current reading.
func (watch *Stopwatch) Elapsed() model.ElapsedTime {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return model.ElapsedFromDuration(watch.elapsed)
}

// State returns the current mode.
func (watch *Stopwatch) State() State {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.state
}

// Start launches the ticking loop and delivers the initial reading.
func (watch *Stopwatch) Start() {
	watch.handlerMu.Lock()
	defer watch.handlerMu.Unlock()

	watch.mu.Lock()
	if watch.running {
		watch.mu.Unlock()
		return
	}
	watch.running = true
	watch.paused = false
	watch.state = StateRunning
	watch.stopCh = make(chan struct{})
	stopCh := watch.stopCh
	now := time.Now()
	watch.emitLocked(Event{Type: EventStateChange, State: StateRunning, At: now})
	tick := watch.readingLocked(now, false)
	watch.mu.Unlock()

	watch.deliverLocked(tick)
	go watch.run(stopCh)
}

// Stop terminates the ticking loop. The reading is kept until Reset.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	if !watch.running {
		watch.mu.Unlock()
		return
	}
	close(watch.stopCh)
	watch.running = false
	watch.paused = false
	watch.state = StateStopped
	watch.emitLocked(Event{Type: EventStateChange, State: StateStopped, At: time.Now()})
	watch.mu.Unlock()
}

// Close stops the loop and closes observers.
func (watch *Stopwatch) Close() {
	watch.Stop()
	watch.mu.Lock()
	events := watch.events
	watch.events = nil
	watch.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Pause freezes the reading.
func (watch *Stopwatch) Pause() {
	watch.mu.Lock()
	if !watch.running || watch.paused {
		watch.mu.Unlock()
		return
	}
	watch.paused = true
	watch.state = StatePaused
	watch.emitLocked(Event{Type: EventStateChange, State: StatePaused, At: time.Now()})
	watch.mu.Unlock()
}

// Resume unfreezes the reading.
func (watch *Stopwatch) Resume() {
	watch.mu.Lock()
	if !watch.running || !watch.paused {
		watch.mu.Unlock()
		return
	}
	watch.paused = false
	watch.state = StateRunning
	watch.emitLocked(Event{Type: EventStateChange, State: StateRunning, At: time.Now()})
	watch.mu.Unlock()
}

// TogglePause pauses a running stopwatch or resumes a paused one.
func (watch *Stopwatch) TogglePause() {
	if watch.State() == StatePaused {
		watch.Resume()
		return
	}
	watch.Pause()
}

// Reset returns the reading to zero and delivers it marked as a reset.
func (watch *Stopwatch) Reset() {
	watch.handlerMu.Lock()
	defer watch.handlerMu.Unlock()

	watch.mu.Lock()
	watch.elapsed = 0
	tick := watch.readingLocked(time.Now(), true)
	watch.mu.Unlock()

	watch.deliverLocked(tick)
}

func (watch *Stopwatch) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(watch.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			watch.tick(tickTime)
		}
	}
}

func (watch *Stopwatch) tick(tickTime time.Time) {
	watch.handlerMu.Lock()
	defer watch.handlerMu.Unlock()

	watch.mu.Lock()
	if !watch.running || watch.paused {
		watch.mu.Unlock()
		return
	}
	watch.elapsed += watch.options.TickInterval
	tick := watch.readingLocked(tickTime, false)
	watch.mu.Unlock()

	watch.deliverLocked(tick)
}

func (watch *Stopwatch) readingLocked(now time.Time, reset bool) model.Tick {
	tick := model.Tick{
		Elapsed: model.ElapsedFromDuration(watch.elapsed),
		Reset:   reset,
		At:      now,
	}
	watch.emitLocked(Event{Type: EventTick, State: watch.state, Tick: tick, At: now})
	return tick
}

// deliverLocked hands the reading to the handler. Callers hold handlerMu from
// reading to delivery so Reset and the ticking loop cannot reorder readings.
func (watch *Stopwatch) deliverLocked(tick model.Tick) {
	if watch.handler != nil {
		watch.handler(tick)
	}
}

func (watch *Stopwatch) emitLocked(event Event) {
	for _, ch := range watch.events {
		select {
		case ch <- event:
		default:
		}
	}
}

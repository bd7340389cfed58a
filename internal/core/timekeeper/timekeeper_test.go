package timekeeper

import (
	"testing"
	"time"

	"devruntime/internal/core/model"
)

// newIdleStopwatch returns a stopwatch whose loop never fires during a test;
// ticks are driven through tick().
func newIdleStopwatch(t *testing.T) (*Stopwatch, *[]model.Tick) {
	t.Helper()
	watch := New(Config{TickInterval: time.Hour})
	var ticks []model.Tick
	watch.SetTickHandler(func(tick model.Tick) {
		ticks = append(ticks, tick)
	})
	t.Cleanup(watch.Close)
	return watch, &ticks
}

func TestStopwatchStartDeliversInitialReading(t *testing.T) {
	watch, ticks := newIdleStopwatch(t)
	watch.Start()
	watch.Start()

	if len(*ticks) != 1 {
		t.Fatalf("ticks = %d, want 1", len(*ticks))
	}
	if (*ticks)[0].Elapsed != (model.ElapsedTime{}) {
		t.Fatalf("initial reading = %+v, want zero", (*ticks)[0].Elapsed)
	}
	if watch.State() != StateRunning {
		t.Fatalf("state = %s, want running", watch.State())
	}
}

func TestStopwatchTickAdvancesAndNormalizes(t *testing.T) {
	watch := New(Config{TickInterval: 61 * time.Second})
	t.Cleanup(watch.Close)
	var last model.Tick
	watch.SetTickHandler(func(tick model.Tick) { last = tick })
	watch.Start()

	watch.tick(time.Now())
	want := model.ElapsedTime{Minutes: 1, Seconds: 1}
	if last.Elapsed != want {
		t.Fatalf("elapsed = %+v, want %+v", last.Elapsed, want)
	}
}

func TestStopwatchPauseFreezesReading(t *testing.T) {
	watch, ticks := newIdleStopwatch(t)
	watch.Start()
	watch.Pause()
	watch.tick(time.Now())
	if len(*ticks) != 1 {
		t.Fatalf("paused stopwatch delivered %d ticks", len(*ticks))
	}

	watch.TogglePause()
	watch.tick(time.Now())
	if len(*ticks) != 2 {
		t.Fatalf("resumed stopwatch delivered %d ticks, want 2", len(*ticks))
	}
	if got := watch.Elapsed(); got != model.ElapsedFromDuration(time.Hour) {
		t.Fatalf("elapsed = %+v", got)
	}
}

func TestStopwatchResetMarksReading(t *testing.T) {
	watch, ticks := newIdleStopwatch(t)
	watch.Start()
	watch.tick(time.Now())
	watch.Reset()

	last := (*ticks)[len(*ticks)-1]
	if !last.Reset {
		t.Fatal("expected reset marker")
	}
	if last.Elapsed != (model.ElapsedTime{}) {
		t.Fatalf("elapsed after reset = %+v", last.Elapsed)
	}
}

func TestStopwatchStopIgnoresTicks(t *testing.T) {
	watch, ticks := newIdleStopwatch(t)
	watch.Start()
	watch.Stop()
	watch.tick(time.Now())

	if len(*ticks) != 1 {
		t.Fatalf("stopped stopwatch delivered %d ticks", len(*ticks))
	}
	if watch.State() != StateStopped {
		t.Fatalf("state = %s, want stopped", watch.State())
	}
}

func TestStopwatchSubscribeReceivesStateChanges(t *testing.T) {
	watch, _ := newIdleStopwatch(t)
	events := watch.Subscribe(8)
	watch.Start()
	watch.Pause()

	var states []State
	for len(events) > 0 {
		event := <-events
		if event.Type == EventStateChange {
			states = append(states, event.State)
		}
	}
	if len(states) != 2 || states[0] != StateRunning || states[1] != StatePaused {
		t.Fatalf("states = %v", states)
	}
}

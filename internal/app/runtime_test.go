package app

import (
	"testing"
	"time"

	"devruntime/internal/core/achievement"
	"devruntime/internal/core/model"
)

func TestRuntimeReplaceRebindsClock(t *testing.T) {
	runtime := NewRuntime(model.TimerConfig{Target: model.TargetTime{Hours: 1}}, nil, nil)
	t.Cleanup(runtime.Close)

	first := runtime.Session()
	firstEvents := first.Subscribe(4)

	second := runtime.Replace(model.TimerConfig{IsFlowTime: true})
	if second == first {
		t.Fatal("expected a new session")
	}
	if runtime.Session() != second {
		t.Fatal("runtime should expose the replacement")
	}
	if _, ok := <-firstEvents; ok {
		t.Fatal("previous session should be closed")
	}

	// zero target: the first reading reaches it
	runtime.Stopwatch().Reset()
	if !second.Store().Achieved() {
		t.Fatal("replacement session should receive clock readings")
	}
	if first.Store().Achieved() {
		t.Fatal("previous session must not receive readings")
	}
}

func TestRuntimeCloseIsIdempotent(t *testing.T) {
	runtime := NewRuntime(model.TimerConfig{}, nil, nil)
	events := runtime.Session().Subscribe(4)
	runtime.Close()
	runtime.Close()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("session events not closed")
	}

	session := runtime.Session()
	if runtime.Replace(model.TimerConfig{}) != session {
		t.Fatal("replace after close should keep the closed session")
	}
}

func TestRuntimeStartDeliversInitialReading(t *testing.T) {
	runtime := NewRuntime(model.TimerConfig{}, nil, nil)
	t.Cleanup(runtime.Close)
	events := runtime.Session().Subscribe(8)

	runtime.Start()

	select {
	case event := <-events:
		if event.Type != achievement.EventTick {
			t.Fatalf("first event = %s", event.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial reading")
	}
}

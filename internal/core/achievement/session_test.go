package achievement

import (
	"testing"

	"devruntime/internal/core/model"
)

func newTestSession(t *testing.T, config model.TimerConfig, player Player) *Session {
	t.Helper()
	session := NewSession(config, player, nil)
	session.dispatcher.launch = func(run func()) { run() }
	t.Cleanup(session.Close)
	return session
}

func secondsTick(seconds int) model.Tick {
	return model.Tick{Elapsed: model.ElapsedTime{Seconds: seconds}}
}

func drain(events <-chan Event) []Event {
	var collected []Event
	for {
		select {
		case event := <-events:
			collected = append(collected, event)
		default:
			return collected
		}
	}
}

func countType(events []Event, eventType EventType) int {
	count := 0
	for _, event := range events {
		if event.Type == eventType {
			count++
		}
	}
	return count
}

func TestSessionTickScenario(t *testing.T) {
	player := &fakePlayer{}
	session := newTestSession(t, model.TimerConfig{
		Target:     model.TargetTime{Seconds: 10},
		AlertSound: true,
	}, player)

	var flags []bool
	for _, seconds := range []int{5, 9, 10, 11} {
		session.HandleTick(secondsTick(seconds))
		flags = append(flags, session.Store().Achieved())
		if seconds == 10 && player.Calls() != 1 {
			t.Fatalf("expected alert at second 10, got %d calls", player.Calls())
		}
	}

	want := []bool{false, false, true, true}
	for i := range want {
		if flags[i] != want[i] {
			t.Fatalf("flags = %v, want %v", flags, want)
		}
	}
	if player.Calls() != 1 {
		t.Fatalf("player calls = %d, want 1", player.Calls())
	}
}

func TestSessionZeroTargetAchievedOnFirstTick(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{}, nil)
	session.HandleTick(secondsTick(0))
	if !session.Store().Achieved() {
		t.Fatal("expected 00:00:00 target to be achieved on first tick")
	}
}

func TestSessionFiresOncePerEdge(t *testing.T) {
	player := &fakePlayer{}
	session := newTestSession(t, model.TimerConfig{
		Target:     model.TargetTime{Seconds: 3},
		AlertSound: true,
	}, player)
	events := session.Subscribe(64)

	// flag sequence: false, false, true, true, false
	session.HandleTick(secondsTick(1))
	session.HandleTick(secondsTick(2))
	session.HandleTick(secondsTick(3))
	session.Acknowledge()
	session.HandleTick(secondsTick(4))
	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{}, Reset: true})

	collected := drain(events)
	if player.Calls() != 1 {
		t.Errorf("player calls = %d, want 1", player.Calls())
	}
	if got := countType(collected, EventAchieved); got != 1 {
		t.Errorf("achieved events = %d, want 1", got)
	}
	if got := countType(collected, EventTrophyCleared); got != 1 {
		t.Errorf("trophy cleared events = %d, want 1", got)
	}
	if session.Store().TrophySeen() {
		t.Error("expected trophy indicator cleared after losing achievement")
	}
}

func TestSessionRepeatedTicksDoNotRefire(t *testing.T) {
	player := &fakePlayer{}
	session := newTestSession(t, model.TimerConfig{AlertSound: true}, player)
	events := session.Subscribe(64)

	for i := 0; i < 5; i++ {
		session.HandleTick(secondsTick(7))
	}

	if player.Calls() != 1 {
		t.Fatalf("player calls = %d, want 1", player.Calls())
	}
	if got := countType(drain(events), EventAchieved); got != 1 {
		t.Fatalf("achieved events = %d, want 1", got)
	}
}

func TestSessionMinuteChangeAloneDoesNotEvaluate(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{
		Target: model.TargetTime{Minutes: 1},
	}, nil)

	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{Minutes: 0, Seconds: 0}})
	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{Minutes: 1, Seconds: 0}})
	if session.Store().Achieved() {
		t.Fatal("minute change without seconds change must not re-evaluate")
	}
	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{Minutes: 1, Seconds: 1}})
	if !session.Store().Achieved() {
		t.Fatal("expected achievement once seconds advanced")
	}
}

func TestSessionResetReevaluates(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{
		Target: model.TargetTime{Minutes: 1},
	}, nil)

	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{Minutes: 1, Seconds: 5}})
	if !session.Store().Achieved() {
		t.Fatal("expected achievement")
	}
	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{Seconds: 5}, Reset: true})
	if session.Store().Achieved() {
		t.Fatal("expected flag to revert after the clock regressed")
	}
}

func TestSessionAlertDisabled(t *testing.T) {
	player := &fakePlayer{}
	session := newTestSession(t, model.TimerConfig{AlertSound: false}, player)

	for _, seconds := range []int{0, 1, 2} {
		session.HandleTick(secondsTick(seconds))
	}
	session.HandleTick(model.Tick{Reset: true, Elapsed: model.ElapsedTime{Seconds: 3}})
	if player.Calls() != 0 {
		t.Fatalf("player calls = %d, want 0", player.Calls())
	}
}

func TestSessionTrophyClearWithoutAcknowledgementIsSilent(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{Target: model.TargetTime{Seconds: 2}}, nil)
	events := session.Subscribe(16)

	session.HandleTick(secondsTick(2))
	session.HandleTick(model.Tick{Elapsed: model.ElapsedTime{}, Reset: true})

	collected := drain(events)
	if got := countType(collected, EventLost); got != 1 {
		t.Fatalf("lost events = %d, want 1", got)
	}
	if got := countType(collected, EventTrophyCleared); got != 0 {
		t.Fatalf("trophy cleared events = %d, want 0", got)
	}
}

func TestSessionAcknowledge(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{}, nil)
	events := session.Subscribe(16)

	session.HandleTick(secondsTick(0))
	if !session.NeedsTrophy() {
		t.Fatal("expected trophy to be pending")
	}
	session.Acknowledge()
	session.Acknowledge()
	if session.NeedsTrophy() {
		t.Fatal("expected trophy acknowledged")
	}
	if got := countType(drain(events), EventTrophySeen); got != 1 {
		t.Fatalf("trophy seen events = %d, want 1", got)
	}
}

func TestSessionAcknowledgeBeforeAchievementIsIgnored(t *testing.T) {
	session := newTestSession(t, model.TimerConfig{Target: model.TargetTime{Seconds: 3}}, nil)
	events := session.Subscribe(16)

	session.HandleTick(secondsTick(1))
	session.Acknowledge()
	if session.Store().TrophySeen() {
		t.Fatal("acknowledging without an achievement must not set the indicator")
	}

	session.HandleTick(secondsTick(3))
	if !session.NeedsTrophy() {
		t.Fatal("expected the trophy to be pending once the target is reached")
	}
	if got := countType(drain(events), EventTrophySeen); got != 0 {
		t.Fatalf("trophy seen events = %d, want 0", got)
	}
}

func TestSessionCloseClosesSubscribers(t *testing.T) {
	session := NewSession(model.TimerConfig{}, nil, nil)
	events := session.Subscribe(1)
	session.Close()
	session.Close()

	if _, ok := <-events; ok {
		t.Fatal("expected closed channel")
	}
	session.HandleTick(secondsTick(1))
	if session.Store().Achieved() {
		t.Fatal("closed session must ignore ticks")
	}
	if _, ok := <-session.Subscribe(1); ok {
		t.Fatal("subscribing to a closed session should return a closed channel")
	}
}

package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []string
}

func (recorder *frameRecorder) record(resource fyne.Resource) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.frames = append(recorder.frames, resource.Name())
}

func (recorder *frameRecorder) snapshot() []string {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]string(nil), recorder.frames...)
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fixed := Range{Min: time.Second, Max: time.Second}
	if got := fixed.Random(rng); got != time.Second {
		t.Fatalf("fixed range = %v", got)
	}
	span := Range{Min: time.Millisecond, Max: 3 * time.Millisecond}
	for i := 0; i < 20; i++ {
		got := span.Random(rng)
		if got < span.Min || got >= span.Max {
			t.Fatalf("random %v outside [%v, %v)", got, span.Min, span.Max)
		}
	}
}

func TestEngineLoopsFramesInOrder(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(recorder.record)
	t.Cleanup(engine.Stop)

	quick := Range{Min: time.Millisecond, Max: time.Millisecond}
	engine.StartLoop(context.Background(), []Frame{
		{Resource: fyne.NewStaticResource("a", nil), Hold: quick},
		{Resource: fyne.NewStaticResource("b", nil), Hold: quick},
	})

	waitFor(t, func() bool { return len(recorder.snapshot()) >= 4 })
	frames := recorder.snapshot()
	for i, name := range frames[:4] {
		want := "a"
		if i%2 == 1 {
			want = "b"
		}
		if name != want {
			t.Fatalf("frames = %v", frames)
		}
	}
}

func TestEngineStop(t *testing.T) {
	recorder := &frameRecorder{}
	engine := New(recorder.record)

	engine.StartLoop(context.Background(), []Frame{
		{Resource: fyne.NewStaticResource("a", nil), Hold: Range{Min: time.Hour}},
	})
	waitFor(t, func() bool { return len(recorder.snapshot()) == 1 })
	engine.Stop()

	time.Sleep(20 * time.Millisecond)
	if got := len(recorder.snapshot()); got != 1 {
		t.Fatalf("frames after stop = %d", got)
	}
}

func TestTrophyFrames(t *testing.T) {
	trophy := fyne.NewStaticResource("trophy", nil)
	sparkle := fyne.NewStaticResource("sparkle", nil)
	frames := TrophyFrames(trophy, sparkle)
	if len(frames) != 2 || frames[0].Resource != trophy || frames[1].Resource != sparkle {
		t.Fatalf("frames = %+v", frames)
	}
}

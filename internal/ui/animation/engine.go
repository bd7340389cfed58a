// Package animation cycles icon frames on a background goroutine.
package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Frame is one step of a loop.
type Frame struct {
	Resource fyne.Resource
	Hold     Range
}

// Engine plays one frame loop at a time.
type Engine struct {
	mu          sync.Mutex
	updateFrame func(fyne.Resource)
	cancel      context.CancelFunc
	rng         *rand.Rand
}

// New creates an engine that reports each frame to updateFrame. updateFrame
// runs on the engine goroutine.
func New(updateFrame func(fyne.Resource)) *Engine {
	return &Engine{
		updateFrame: updateFrame,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartLoop plays frames repeatedly until Stop or ctx is done. A previous
// loop is cancelled first.
func (engine *Engine) StartLoop(ctx context.Context, frames []Frame) {
	if len(frames) == 0 {
		engine.Stop()
		return
	}
	engine.start(ctx, func(runCtx context.Context) {
		for {
			for _, frame := range frames {
				if runCtx.Err() != nil {
					return
				}
				engine.updateFrame(frame.Resource)
				if !sleepWithContext(runCtx, engine.hold(frame.Hold)) {
					return
				}
			}
		}
	})
}

// Stop terminates any active loop.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) hold(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

package achievement

import (
	"sync"

	"devruntime/internal/core/model"
)

// Transition is a change of the achievement flag.
type Transition struct {
	From bool
	To   bool
}

// Snapshot is a consistent read of the whole store.
type Snapshot struct {
	Elapsed    model.ElapsedTime
	Achieved   bool
	TrophySeen bool
}

// Store holds the shared state of one timer session.
//
// Each field has designated writers: the clock tick path writes the elapsed
// time, the Evaluator writes the flag, the UI marks the trophy as seen and the
// Dispatcher clears it. Everything else only reads.
type Store struct {
	mu         sync.RWMutex
	elapsed    model.ElapsedTime
	achieved   bool
	trophySeen bool
}

// NewStore returns an empty store: zero elapsed, not achieved, trophy unseen.
func NewStore() *Store {
	return &Store{}
}

// Elapsed returns the latest clock reading.
func (store *Store) Elapsed() model.ElapsedTime {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.elapsed
}

// Achieved returns the achievement flag.
func (store *Store) Achieved() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.achieved
}

// TrophySeen reports whether the current episode has been acknowledged.
func (store *Store) TrophySeen() bool {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.trophySeen
}

// Snapshot returns all fields under one lock.
func (store *Store) Snapshot() Snapshot {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return Snapshot{
		Elapsed:    store.elapsed,
		Achieved:   store.achieved,
		TrophySeen: store.trophySeen,
	}
}

// MarkTrophySeen records the user's acknowledgement of the current
// achievement. It is a no-op while the flag is false, since no episode exists
// yet. It reports whether the indicator changed.
func (store *Store) MarkTrophySeen() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	if !store.achieved || store.trophySeen {
		return false
	}
	store.trophySeen = true
	return true
}

func (store *Store) setElapsed(elapsed model.ElapsedTime) {
	store.mu.Lock()
	store.elapsed = elapsed
	store.mu.Unlock()
}

// setAchieved is a guarded write: an unchanged value is a no-op.
func (store *Store) setAchieved(achieved bool) (Transition, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.achieved == achieved {
		return Transition{From: achieved, To: achieved}, false
	}
	transition := Transition{From: store.achieved, To: achieved}
	store.achieved = achieved
	return transition, true
}

func (store *Store) clearTrophySeen() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	if !store.trophySeen {
		return false
	}
	store.trophySeen = false
	return true
}

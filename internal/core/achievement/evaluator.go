// Package achievement detects when a running clock reaches a target duration
// and turns changes of that state into one-shot notifications.
package achievement

import "devruntime/internal/core/model"

// Reached reports whether elapsed has reached target, comparing hours first,
// then minutes, then seconds. Both values are expected to be normalized.
func Reached(elapsed model.ElapsedTime, target model.TargetTime) bool {
	if elapsed.Hours > target.Hours {
		return true
	}
	if elapsed.Hours == target.Hours && elapsed.Minutes > target.Minutes {
		return true
	}
	return elapsed.Hours == target.Hours &&
		elapsed.Minutes == target.Minutes &&
		elapsed.Seconds >= target.Seconds
}

// Evaluator re-derives the achievement flag from the latest clock reading.
// It is the only writer of the flag in a Store.
type Evaluator struct {
	store  *Store
	target model.TargetTime
}

// NewEvaluator binds an evaluator to a store and a fixed target.
func NewEvaluator(store *Store, target model.TargetTime) *Evaluator {
	return &Evaluator{store: store, target: target}
}

// Evaluate compares the stored elapsed time to the target and writes the flag.
// The returned bool is false when the flag kept its previous value.
func (evaluator *Evaluator) Evaluate() (Transition, bool) {
	achieved := Reached(evaluator.store.Elapsed(), evaluator.target)
	return evaluator.store.setAchieved(achieved)
}

package achievement

import (
	"testing"

	"devruntime/internal/core/model"
)

func TestReached(t *testing.T) {
	tests := []struct {
		name    string
		elapsed model.ElapsedTime
		target  model.TargetTime
		want    bool
	}{
		{"zero target zero elapsed", model.ElapsedTime{}, model.TargetTime{}, true},
		{"hours ahead", model.ElapsedTime{Hours: 2}, model.TargetTime{Hours: 1, Minutes: 59, Seconds: 59}, true},
		{"hours behind", model.ElapsedTime{Hours: 0, Minutes: 59, Seconds: 59}, model.TargetTime{Hours: 1}, false},
		{"minutes ahead", model.ElapsedTime{Hours: 1, Minutes: 6}, model.TargetTime{Hours: 1, Minutes: 5, Seconds: 30}, true},
		{"minutes behind", model.ElapsedTime{Hours: 1, Minutes: 4, Seconds: 59}, model.TargetTime{Hours: 1, Minutes: 5}, false},
		{"seconds equal", model.ElapsedTime{Minutes: 1, Seconds: 10}, model.TargetTime{Minutes: 1, Seconds: 10}, true},
		{"seconds behind", model.ElapsedTime{Minutes: 1, Seconds: 9}, model.TargetTime{Minutes: 1, Seconds: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reached(tt.elapsed, tt.target); got != tt.want {
				t.Errorf("Reached(%+v, %+v) = %v, want %v", tt.elapsed, tt.target, got, tt.want)
			}
		})
	}
}

func TestReachedMatchesLexicographicOrder(t *testing.T) {
	values := []int{0, 1, 2, 59}
	for _, eh := range values[:3] {
		for _, em := range values {
			for _, es := range values {
				for _, th := range values[:3] {
					for _, tm := range values {
						for _, ts := range values {
							elapsed := model.ElapsedTime{Hours: eh, Minutes: em, Seconds: es}
							target := model.TargetTime{Hours: th, Minutes: tm, Seconds: ts}
							want := eh*3600+em*60+es >= th*3600+tm*60+ts
							if got := Reached(elapsed, target); got != want {
								t.Fatalf("Reached(%+v, %+v) = %v, want %v", elapsed, target, got, want)
							}
						}
					}
				}
			}
		}
	}
}

func TestEvaluatorWritesOnlyOnChange(t *testing.T) {
	store := NewStore()
	evaluator := NewEvaluator(store, model.TargetTime{Seconds: 2})

	store.setElapsed(model.ElapsedTime{Seconds: 1})
	if _, changed := evaluator.Evaluate(); changed {
		t.Fatal("expected no change below target")
	}

	store.setElapsed(model.ElapsedTime{Seconds: 2})
	transition, changed := evaluator.Evaluate()
	if !changed || transition != (Transition{From: false, To: true}) {
		t.Fatalf("expected false->true, got %+v changed=%v", transition, changed)
	}

	for i := 0; i < 3; i++ {
		if _, changed := evaluator.Evaluate(); changed {
			t.Fatalf("evaluation %d changed an unchanged flag", i)
		}
	}
	if !store.Achieved() {
		t.Fatal("expected flag to stay true")
	}
}

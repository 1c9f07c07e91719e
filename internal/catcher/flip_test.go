package catcher

import (
	"testing"
	"time"
)

const (
	testFade = 120 * time.Millisecond
	testGap  = 160 * time.Millisecond
)

// flipRecorder captures animator events in order
type flipRecorder struct {
	fades   []int
	redraws []int
	views   []View
	done    int
}

func (r *flipRecorder) flipFade(step int) { r.fades = append(r.fades, step) }

func (r *flipRecorder) flipRedraw(step int, view View) {
	r.redraws = append(r.redraws, step)
	r.views = append(r.views, view)
}

func (r *flipRecorder) flipDone() { r.done++ }

func flipDuration(n int) time.Duration {
	steps := HalfSteps(n)
	return time.Duration(steps)*testFade + time.Duration(steps-1)*testGap
}

func TestHalfSteps(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0},
		{-2, 0},
		{1, 1},
		{5, 9},
		{9, 17},
	}
	for _, tt := range tests {
		if got := HalfSteps(tt.n); got != tt.want {
			t.Errorf("HalfSteps(%d): expected %d, got %d", tt.n, tt.want, got)
		}
	}
}

func TestAnimatorStepCount(t *testing.T) {
	for n := 1; n <= 9; n++ {
		rec := &flipRecorder{}
		a := NewAnimator(testFade, testGap, rec)
		if !a.Start(n) {
			t.Fatalf("n=%d: Start returned false", n)
		}

		// Virtual clock at roughly 60 TPS
		for i := 0; i < 10000 && a.Running(); i++ {
			a.Advance(time.Second / 60)
		}

		want := 2*n - 1
		if len(rec.fades) != want || len(rec.redraws) != want {
			t.Errorf("n=%d: expected %d fades and redraws, got %d and %d", n, want, len(rec.fades), len(rec.redraws))
		}
		if a.Redraws() != want {
			t.Errorf("n=%d: Redraws() = %d, expected %d", n, a.Redraws(), want)
		}
		if rec.done != 1 {
			t.Errorf("n=%d: expected done once, got %d", n, rec.done)
		}
	}
}

func TestAnimatorAlternatesViews(t *testing.T) {
	rec := &flipRecorder{}
	a := NewAnimator(testFade, testGap, rec)
	a.Start(3)
	a.Advance(flipDuration(3))

	want := []View{ViewOpened, ViewGrid, ViewOpened, ViewGrid, ViewOpened}
	if len(rec.views) != len(want) {
		t.Fatalf("Expected %d views, got %d", len(want), len(rec.views))
	}
	for i := range want {
		if rec.views[i] != want[i] {
			t.Errorf("Step %d: expected view %d, got %d", i, want[i], rec.views[i])
		}
	}
}

func TestAnimatorTiming(t *testing.T) {
	rec := &flipRecorder{}
	a := NewAnimator(testFade, testGap, rec)

	a.Start(2)
	if len(rec.fades) != 1 || !a.Fading() {
		t.Fatal("First half-step should start immediately")
	}

	a.Advance(testFade - time.Millisecond)
	if len(rec.redraws) != 0 {
		t.Fatal("Redraw fired before the fade delay elapsed")
	}
	a.Advance(time.Millisecond)
	if len(rec.redraws) != 1 || a.Fading() {
		t.Fatal("Expected first redraw and tint cleared after the fade delay")
	}

	a.Advance(testGap - time.Millisecond)
	if len(rec.fades) != 1 {
		t.Fatal("Next half-step fired before the gap elapsed")
	}
	a.Advance(time.Millisecond)
	if len(rec.fades) != 2 {
		t.Fatal("Expected second half-step after the gap")
	}

	// One large tick carries over into later stages
	a.Advance(time.Hour)
	if rec.done != 1 || a.Running() {
		t.Errorf("Expected flip finished, done=%d running=%v", rec.done, a.Running())
	}
	if len(rec.redraws) != 3 {
		t.Errorf("Expected 3 redraws, got %d", len(rec.redraws))
	}
}

func TestAnimatorIgnoresReentry(t *testing.T) {
	rec := &flipRecorder{}
	a := NewAnimator(testFade, testGap, rec)

	if !a.Start(4) {
		t.Fatal("Start failed")
	}
	if a.Start(2) {
		t.Error("Start while running should be ignored")
	}
	a.Advance(flipDuration(4))
	if len(rec.redraws) != HalfSteps(4) {
		t.Errorf("Expected %d redraws, got %d", HalfSteps(4), len(rec.redraws))
	}
	if a.Start(0) {
		t.Error("Start(0) should be rejected")
	}
}

func TestAnimatorCancel(t *testing.T) {
	rec := &flipRecorder{}
	a := NewAnimator(testFade, testGap, rec)

	a.Start(5)
	a.Advance(testFade + testGap + time.Millisecond)
	a.Cancel()

	if a.Running() {
		t.Fatal("Animator still running after Cancel")
	}
	fades := len(rec.fades)
	a.Advance(time.Hour)
	if len(rec.fades) != fades || rec.done != 0 {
		t.Errorf("Cancelled flip kept firing: fades %d→%d, done=%d", fades, len(rec.fades), rec.done)
	}

	// Restart after cancel runs a full flip
	rec2 := &flipRecorder{}
	a.handler = rec2
	if !a.Start(1) {
		t.Fatal("Start after Cancel failed")
	}
	a.Advance(time.Hour)
	if rec2.done != 1 || len(rec2.redraws) != 1 {
		t.Errorf("Expected clean restart, got done=%d redraws=%d", rec2.done, len(rec2.redraws))
	}
}

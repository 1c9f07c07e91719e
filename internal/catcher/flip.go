package catcher

import "time"

// View is what the board shows at a flip half-step.
type View int

const (
	ViewOpened View = iota // diamond with color circles
	ViewGrid               // folded grid with numbers
)

type flipStage int

const (
	stageIdle flipStage = iota
	stageFade
	stageGap
)

// flipHandler receives the animator's events.
type flipHandler interface {
	// flipFade starts a half-step: whoosh and tinted background.
	flipFade(step int)
	// flipRedraw ends a half-step: background back to normal, board redrawn.
	flipRedraw(step int, view View)
	flipDone()
}

// Animator runs the flip as an explicit state machine. Time only moves when
// Advance is called, so tests drive it with a virtual clock.
type Animator struct {
	fade    time.Duration
	gap     time.Duration
	handler flipHandler

	stage   flipStage
	total   int
	step    int
	elapsed time.Duration
	redraws int
}

func NewAnimator(fade, gap time.Duration, handler flipHandler) *Animator {
	return &Animator{fade: fade, gap: gap, handler: handler}
}

// HalfSteps is the number of half-steps a flip for number n runs.
func HalfSteps(n int) int {
	if n < 1 {
		return 0
	}
	return 2*n - 1
}

// ViewAt returns the view drawn at the end of a half-step.
func ViewAt(step int) View {
	if step%2 == 0 {
		return ViewOpened
	}
	return ViewGrid
}

// Running reports whether a flip is in progress.
func (a *Animator) Running() bool { return a.stage != stageIdle }

// Fading reports whether the background is currently tinted.
func (a *Animator) Fading() bool { return a.stage == stageFade }

// Redraws is the number of half-steps completed by the current or last flip.
func (a *Animator) Redraws() int { return a.redraws }

// Start begins a flip for number n; the first half-step fires immediately.
// It returns false if a flip is already running or n is out of range.
func (a *Animator) Start(n int) bool {
	if a.Running() || HalfSteps(n) == 0 {
		return false
	}
	a.total = HalfSteps(n)
	a.step = 0
	a.redraws = 0
	a.beginFade()
	return true
}

// Cancel stops a running flip without firing flipDone.
func (a *Animator) Cancel() {
	a.stage = stageIdle
	a.elapsed = 0
}

func (a *Animator) beginFade() {
	a.stage = stageFade
	a.elapsed = 0
	a.handler.flipFade(a.step)
}

// Advance moves the animation forward by dt, firing every event that falls
// inside the interval in order.
func (a *Animator) Advance(dt time.Duration) {
	if !a.Running() {
		return
	}
	a.elapsed += dt
	for a.Running() {
		switch a.stage {
		case stageFade:
			if a.elapsed < a.fade {
				return
			}
			a.elapsed -= a.fade
			a.redraws++
			last := a.step >= a.total-1
			// Leave the fade stage before the redraw so the tint is gone
			if last {
				a.stage = stageIdle
				a.elapsed = 0
			} else {
				a.stage = stageGap
			}
			a.handler.flipRedraw(a.step, ViewAt(a.step))
			if last {
				a.handler.flipDone()
				return
			}
		case stageGap:
			if a.elapsed < a.gap {
				return
			}
			rest := a.elapsed - a.gap
			a.step++
			a.beginFade()
			a.elapsed = rest
		}
	}
}

// Package catcher is the cootie catcher game: phases, round content, the
// flip animation and the display list the front end draws.
package catcher

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/shrubbery-seeker/internal/config"
	"github.com/iburimskiy/shrubbery-seeker/internal/fortune"
)

// Sounds is the set of effects the game triggers.
type Sounds interface {
	PlayStart()
	PlayFlip()
	PlayGenerate()
	PlayEnd()
}

type board int

const (
	boardNone board = iota
	boardOpened
	boardGrid
	boardNumbers
)

type side int

const (
	sideNone side = iota
	sideColors
	sideNumbers
)

// Session owns all game state for one process run.
type Session struct {
	rng    *rand.Rand
	sounds Sounds
	teller *fortune.Teller
	anim   *Animator

	phase Phase
	round *fortune.Round
	pick  int // number chosen for the flip

	// display state
	started      bool
	board        board
	side         side
	controls     bool
	again        bool
	caption      string
	captionStyle TextStyle

	endSoundIn time.Duration
	endPending bool

	scene   Scene
	regions Regions
}

// NewSession returns a session waiting for Start.
func NewSession(rng *rand.Rand, sounds Sounds) *Session {
	s := &Session{
		rng:    rng,
		sounds: sounds,
		teller: fortune.NewTeller(),
	}
	s.anim = NewAnimator(config.FadeDelay, config.StepDelay, s)
	s.rebuild()
	return s
}

// Phase is the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Round returns the current round, nil before the first Generate.
func (s *Session) Round() *fortune.Round { return s.round }

// Teller hands out fortunes; its cursor lives as long as the session.
func (s *Session) Teller() *fortune.Teller { return s.teller }

// Animator drives the flip.
func (s *Session) Animator() *Animator { return s.anim }

// Scene is the display list for the current state.
func (s *Session) Scene() *Scene { return &s.scene }

// Regions is the click map for the current phase.
func (s *Session) Regions() Regions { return s.regions }

// Caption is the prompt or fortune shown under the board.
func (s *Session) Caption() string { return s.caption }

// Click dispatches a click at (x, y) to the region under it.
func (s *Session) Click(x, y float64) bool {
	region := s.regions.Hit(Point{x, y})
	if region == nil {
		return false
	}
	region.Action()
	return true
}

// Tick advances timers by dt.
func (s *Session) Tick(dt time.Duration) {
	s.anim.Advance(dt)

	if s.endPending {
		s.endSoundIn -= dt
		if s.endSoundIn <= 0 {
			s.endPending = false
			s.sounds.PlayEnd()
		}
	}
}

// Start shows the title screen with the Generate and Play controls.
func (s *Session) Start() bool {
	if s.phase != PhaseWaitingStart {
		return false
	}
	s.reset()
	return true
}

// PlayAgain returns to the title screen from any started phase, cancelling a
// running flip and a pending end sound.
func (s *Session) PlayAgain() bool {
	if s.phase == PhaseWaitingStart {
		return false
	}
	s.reset()
	return true
}

func (s *Session) reset() {
	s.sounds.PlayStart()
	s.anim.Cancel()
	s.endPending = false

	s.started = true
	s.round = nil
	s.board = boardNone
	s.side = sideNone
	s.controls = true
	s.again = false
	s.caption = ""
	s.setPhase(PhaseWaitingGenerate)
}

// Generate samples new colors and draws the opened catcher. A round cannot
// be rerolled once generated; Play Again starts over.
func (s *Session) Generate() bool {
	if s.phase != PhaseWaitingGenerate {
		return false
	}
	s.sounds.PlayGenerate()
	s.round = fortune.NewRound(s.rng)
	s.board = boardOpened
	s.side = sideNone
	s.controls = true
	s.again = false
	s.caption = ""
	s.setPhase(PhaseWaitingPlay)
	return true
}

// Play offers the round's colors.
func (s *Session) Play() bool {
	if s.phase != PhaseWaitingPlay {
		return false
	}
	s.side = sideColors
	s.caption = ""
	s.setPhase(PhaseWaitingColor)
	return true
}

// PickColor draws the numbers and folds the catcher into the grid.
func (s *Session) PickColor(idx int) bool {
	if s.phase != PhaseWaitingColor || idx < 0 || idx >= fortune.Slots {
		return false
	}
	s.round.DrawNumbers(s.rng)
	s.board = boardNumbers
	s.side = sideNumbers
	s.setPhase(PhaseWaitingNumber)
	return true
}

// PickNumber starts the flip for the number shown at option idx. Picks while
// a flip runs are ignored.
func (s *Session) PickNumber(idx int) bool {
	if s.phase != PhaseWaitingNumber || idx < 0 || idx >= fortune.Slots {
		return false
	}
	s.pick = s.round.Numbers[idx]
	s.side = sideNone
	s.setPhase(PhaseFlipping)
	s.anim.Start(s.pick)
	return true
}

// Picked is the number chosen for the current or last flip.
func (s *Session) Picked() int { return s.pick }

func (s *Session) flipFade(step int) {
	s.sounds.PlayFlip()
	s.rebuild()
}

func (s *Session) flipRedraw(step int, view View) {
	if view == ViewOpened {
		s.board = boardOpened
	} else {
		s.board = boardNumbers
	}
	s.rebuild()
}

func (s *Session) flipDone() {
	s.board = boardNumbers
	s.caption = "Pick a number to reveal your fortune!"
	s.captionStyle = TextItalic
	s.setPhase(PhaseWaitingFortune)
}

// PickQuadrant reveals the fortune behind quadrant idx.
func (s *Session) PickQuadrant(idx int) bool {
	if s.phase != PhaseWaitingFortune || idx < 0 || idx >= fortune.Slots {
		return false
	}
	s.caption = s.teller.Reveal(idx, s.round.Numbers)
	s.captionStyle = TextBold
	s.board = boardGrid
	s.controls = false
	s.again = true
	s.endPending = true
	s.endSoundIn = config.EndSoundDelay
	s.setPhase(PhaseWaitingGenerate)
	return true
}

func (s *Session) setPhase(p Phase) {
	s.phase = p
	s.rebuild()
}

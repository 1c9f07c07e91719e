package catcher

import "fmt"

// Phase gates which regions of the screen respond to clicks.
type Phase int

const (
	PhaseWaitingStart Phase = iota
	PhaseWaitingGenerate
	PhaseWaitingPlay
	PhaseWaitingColor
	PhaseWaitingNumber
	PhaseFlipping // flip animation running, every pick is ignored
	PhaseWaitingFortune
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingStart:
		return "waiting_start"
	case PhaseWaitingGenerate:
		return "waiting_generate"
	case PhaseWaitingPlay:
		return "waiting_play"
	case PhaseWaitingColor:
		return "waiting_color"
	case PhaseWaitingNumber:
		return "waiting_number"
	case PhaseFlipping:
		return "flipping"
	case PhaseWaitingFortune:
		return "waiting_fortune"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Package playback sends clips to the system speaker through beep.
package playback

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Device calls, swapped out in tests. speaker.Clear and speaker.Init take the
// speaker lock themselves and must not be called while holding it.
var (
	speakerInit  = speaker.Init
	speakerClear = speaker.Clear
	speakerPlay  = speaker.Play
)

// Speaker is a single-voice sound.Player backed by beep/speaker.
type Speaker struct {
	mu       sync.Mutex
	volume   float64 // 0.0-1.0
	rate     beep.SampleRate
	initDone bool
	current  beep.StreamSeekCloser
}

func NewSpeaker(volume float64) *Speaker {
	return &Speaker{volume: volume}
}

// Stop clears the speaker and closes the clip that was playing.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initDone {
		return
	}
	speakerClear()
	s.closeCurrent()
}

func (s *Speaker) closeCurrent() {
	if s.current != nil {
		_ = s.current.Close()
		s.current = nil
	}
}

// Play (re)initializes the speaker for the clip's sample rate when needed and
// starts the clip.
func (s *Speaker) Play(clip beep.StreamSeekCloser, format beep.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !s.initDone {
		if err := speakerInit(format.SampleRate, bufferSize); err != nil {
			return err
		}
		s.initDone = true
		s.rate = format.SampleRate
	} else if s.rate != format.SampleRate {
		// Init closes the old device, dropping whatever was queued on it
		s.closeCurrent()
		if err := speakerInit(format.SampleRate, bufferSize); err != nil {
			s.initDone = false
			return err
		}
		s.rate = format.SampleRate
	}

	s.closeCurrent()
	s.current = clip

	ctrl := &beep.Ctrl{Streamer: s.withVolume(clip), Paused: false}
	speakerPlay(beep.Seq(ctrl, beep.Callback(func() {
		// Runs on the speaker goroutine; hand the close back under our lock
		go s.finished(clip)
	})))
	return nil
}

func (s *Speaker) finished(clip beep.StreamSeekCloser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == clip {
		s.closeCurrent()
	}
}

func (s *Speaker) withVolume(clip beep.Streamer) beep.Streamer {
	if s.volume >= 1 {
		return clip
	}
	if s.volume <= 0 {
		return &effects.Volume{Streamer: clip, Silent: true}
	}
	// beep volume is exponential: gain = Base^Volume
	return &effects.Volume{
		Streamer: clip,
		Base:     2,
		Volume:   math.Log2(s.volume),
	}
}

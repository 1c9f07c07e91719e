package playback

import (
	"sync"
	"testing"
	"time"

	"github.com/faiface/beep"
)

// fakeDevice stands in for beep/speaker. Its lock is not reentrant, like the
// real one, so a Clear issued under the lock hangs the test.
type fakeDevice struct {
	mu      sync.Mutex
	inits   []beep.SampleRate
	clears  int
	playing []beep.Streamer
}

func (d *fakeDevice) init(sr beep.SampleRate, bufferSize int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inits = append(d.inits, sr)
	d.playing = nil
	return nil
}

func (d *fakeDevice) clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
	d.playing = nil
}

func (d *fakeDevice) play(s ...beep.Streamer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.playing = append(d.playing, s...)
}

func installFakeDevice(t *testing.T) *fakeDevice {
	t.Helper()
	d := &fakeDevice{}
	origInit, origClear, origPlay := speakerInit, speakerClear, speakerPlay
	speakerInit, speakerClear, speakerPlay = d.init, d.clear, d.play
	t.Cleanup(func() {
		speakerInit, speakerClear, speakerPlay = origInit, origClear, origPlay
	})
	return d
}

// testClip is a short silent clip that counts Close calls
type testClip struct {
	mu     sync.Mutex
	pos    int
	n      int
	closed int
}

func (c *testClip) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.n {
		return 0, false
	}
	k := len(samples)
	if k > c.n-c.pos {
		k = c.n - c.pos
	}
	for i := 0; i < k; i++ {
		samples[i] = [2]float64{}
	}
	c.pos += k
	return k, true
}

func (c *testClip) Err() error    { return nil }
func (c *testClip) Len() int      { return c.n }
func (c *testClip) Position() int { return c.pos }

func (c *testClip) Seek(p int) error {
	c.pos = p
	return nil
}

func (c *testClip) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func (c *testClip) closeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

var testFormat = beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}

// within fails the test if fn does not return before the timeout
func within(t *testing.T, name string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s did not return, device lock held twice", name)
	}
}

func TestSpeakerStopBeforePlay(t *testing.T) {
	d := installFakeDevice(t)
	s := NewSpeaker(1)

	within(t, "Stop", s.Stop)
	if d.clears != 0 {
		t.Errorf("Stop before any Play touched the device %d times", d.clears)
	}
}

func TestSpeakerStopAfterPlay(t *testing.T) {
	d := installFakeDevice(t)
	s := NewSpeaker(1)
	clip := &testClip{n: 100}

	if err := s.Play(clip, testFormat); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if len(d.inits) != 1 || len(d.playing) != 1 {
		t.Fatalf("Expected one init and one queued streamer, got %d and %d", len(d.inits), len(d.playing))
	}

	within(t, "Stop", s.Stop)

	if d.clears != 1 {
		t.Errorf("Expected one Clear, got %d", d.clears)
	}
	if clip.closeCount() != 1 {
		t.Errorf("Expected stopped clip closed once, got %d", clip.closeCount())
	}

	// Next clip reuses the initialized device
	next := &testClip{n: 100}
	within(t, "Play", func() {
		if err := s.Play(next, testFormat); err != nil {
			t.Errorf("Play after Stop: %v", err)
		}
	})
	if len(d.inits) != 1 {
		t.Errorf("Expected no re-init for the same rate, got %d inits", len(d.inits))
	}
}

func TestSpeakerReinitOnRateChange(t *testing.T) {
	d := installFakeDevice(t)
	s := NewSpeaker(1)
	first := &testClip{n: 100}
	second := &testClip{n: 100}

	if err := s.Play(first, testFormat); err != nil {
		t.Fatal(err)
	}
	other := testFormat
	other.SampleRate = 44100
	within(t, "Play", func() {
		if err := s.Play(second, other); err != nil {
			t.Errorf("Play at new rate: %v", err)
		}
	})

	if len(d.inits) != 2 || d.inits[1] != 44100 {
		t.Errorf("Expected re-init at 44100, got %v", d.inits)
	}
	if first.closeCount() != 1 {
		t.Errorf("Expected previous clip closed on re-init, got %d", first.closeCount())
	}
	if second.closeCount() != 0 {
		t.Error("New clip closed before it played")
	}
}

func TestSpeakerClosesFinishedClip(t *testing.T) {
	d := installFakeDevice(t)
	s := NewSpeaker(0.5)
	clip := &testClip{n: 10}

	if err := s.Play(clip, testFormat); err != nil {
		t.Fatal(err)
	}

	// Drain the queued sequence the way the mixer would
	buf := make([][2]float64, 64)
	for i := 0; i < 4; i++ {
		d.playing[0].Stream(buf)
	}

	deadline := time.Now().Add(2 * time.Second)
	for clip.closeCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if clip.closeCount() != 1 {
		t.Errorf("Expected finished clip closed once, got %d", clip.closeCount())
	}

	// Stopping afterwards must not close it again
	within(t, "Stop", s.Stop)
	if clip.closeCount() != 1 {
		t.Errorf("Finished clip closed again on Stop, got %d", clip.closeCount())
	}
}

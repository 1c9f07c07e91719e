package sound

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/faiface/beep"
)

// Player is a single-voice audio output.
type Player interface {
	// Stop silences whatever is playing.
	Stop()
	// Play starts s. On success the player owns s and closes it when done;
	// on error the caller keeps it.
	Play(s beep.StreamSeekCloser, format beep.Format) error
}

type Slot int

const (
	SlotStart Slot = iota
	SlotFlip
	SlotGenerate
	SlotEnd
)

func (s Slot) String() string {
	switch s {
	case SlotStart:
		return "start"
	case SlotFlip:
		return "flip"
	case SlotGenerate:
		return "generate"
	case SlotEnd:
		return "end"
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

var (
	StartFiles = []string{"start_mp_repressed.wav"}
	FlipFiles  = []string{"vfast-whoosh.wav"}

	// Generate and end sounds alternate, first entry plays first.
	GenerateFiles = [2]string{"pb_inconceivable.wav", "pb_as_you_wish.wav"}
	EndFiles      = [2]string{"mehran_keep_on_coding.wav", "chrisp_beautiful_process.wav"}
)

// Dispatcher maps game events to clips. Playback failures are logged and
// never returned.
type Dispatcher struct {
	dir     string
	player  Player
	logger  *log.Logger
	enabled bool

	start *Cycle
	flip  *Cycle

	genToggle int
	endToggle int

	last string
}

func NewDispatcher(dir string, player Player, rng *rand.Rand, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		dir:     dir,
		player:  player,
		logger:  logger,
		enabled: player != nil,
		start:   NewCycle(StartFiles, rng),
		flip:    NewCycle(FlipFiles, rng),
	}
}

func (d *Dispatcher) Dir() string { return d.dir }

// SetDir switches the directory clips are loaded from.
func (d *Dispatcher) SetDir(dir string) {
	d.dir = dir
	d.logger.Printf("audio dir set to %s", dir)
}

func (d *Dispatcher) Enabled() bool { return d.enabled }

// SetEnabled mutes or unmutes playback. Toggles keep advancing while muted.
func (d *Dispatcher) SetEnabled(enabled bool) {
	if !enabled && d.player != nil {
		d.player.Stop()
	}
	d.enabled = enabled && d.player != nil
}

// Last returns the path of the most recently selected clip.
func (d *Dispatcher) Last() string { return d.last }

func (d *Dispatcher) PlayStart() { d.play(SlotStart, d.start.Next()) }

func (d *Dispatcher) PlayFlip() { d.play(SlotFlip, d.flip.Next()) }

func (d *Dispatcher) PlayGenerate() {
	file := GenerateFiles[d.genToggle]
	d.genToggle = (d.genToggle + 1) % len(GenerateFiles)
	d.play(SlotGenerate, file)
}

func (d *Dispatcher) PlayEnd() {
	file := EndFiles[d.endToggle]
	d.endToggle = (d.endToggle + 1) % len(EndFiles)
	d.play(SlotEnd, file)
}

func (d *Dispatcher) play(slot Slot, file string) {
	path := filepath.Join(d.dir, file)
	d.last = path

	if !d.enabled {
		d.logger.Printf("muted %s: %s", slot, path)
		return
	}

	d.player.Stop()
	d.logger.Printf("playing %s: %s", slot, path)

	streamer, format, err := LoadClip(path)
	if err != nil {
		d.logger.Printf("error playing sound %s: %v", path, err)
		return
	}
	if err := d.player.Play(streamer, format); err != nil {
		_ = streamer.Close()
		d.logger.Printf("error playing sound %s: %v", path, err)
	}
}

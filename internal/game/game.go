package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/shrubbery-seeker/internal/catcher"
	"github.com/iburimskiy/shrubbery-seeker/internal/config"
)

// AudioControls is the part of the sound dispatcher the player can adjust
// from the keyboard.
type AudioControls interface {
	Dir() string
	SetDir(dir string)
	Enabled() bool
	SetEnabled(enabled bool)
}

// Game adapts a catcher.Session to ebiten.Game.
type Game struct {
	session *catcher.Session
	audio   AudioControls

	// input edge detection
	prevKey map[ebiten.Key]bool
	// region under the cursor when the mouse went down
	pressed string

	texts   map[string]*ebiten.Image
	lastErr error
}

func New(session *catcher.Session, audio AudioControls) *Game {
	return &Game{
		session: session,
		audio:   audio,
		prevKey: map[ebiten.Key]bool{},
		texts:   map[string]*ebiten.Image{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// A click counts when press and release land on the same region
	mouseX, mouseY := ebiten.CursorPosition()
	cursor := catcher.Point{X: float64(mouseX), Y: float64(mouseY)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pressed = ""
		if r := g.session.Regions().Hit(cursor); r != nil {
			g.pressed = r.Name
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if r := g.session.Regions().Hit(cursor); r != nil && r.Name == g.pressed {
			g.session.Click(cursor.X, cursor.Y)
		}
		g.pressed = ""
	}

	if justPressed(ebiten.KeyM) {
		g.audio.SetEnabled(!g.audio.Enabled())
	}
	if justPressed(ebiten.KeyO) {
		if err := g.chooseAudioDir(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.session.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen, g.session.Scene())

	status := "M: mute"
	if !g.audio.Enabled() {
		status = "M: unmute"
	}
	status += fmt.Sprintf("  O: audio folder (%s)", g.audio.Dir())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, printable(status), 4, config.WindowHeight-glyphHeight-2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

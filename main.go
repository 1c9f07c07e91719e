package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/shrubbery-seeker/internal/catcher"
	"github.com/iburimskiy/shrubbery-seeker/internal/config"
	"github.com/iburimskiy/shrubbery-seeker/internal/game"
	"github.com/iburimskiy/shrubbery-seeker/internal/playback"
	"github.com/iburimskiy/shrubbery-seeker/internal/sound"
)

func main() {
	cfg := config.Load()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Missing clips are logged per playback attempt, never fatal
	var player sound.Player
	if cfg.AudioEnabled {
		player = playback.NewSpeaker(cfg.Volume)
	}
	sounds := sound.NewDispatcher(cfg.AudioDir, player, rng, log.New(os.Stderr, "sound: ", log.LstdFlags))

	session := catcher.NewSession(rng, sounds)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	g := game.New(session, sounds)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

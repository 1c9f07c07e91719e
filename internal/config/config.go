package config

import (
	"os"
	"strconv"
	"time"
)

const (
	WindowWidth  = 600
	WindowHeight = 400
	WindowTitle  = "Python Shrubbery Seeker"

	// Catcher geometry
	CenterX = 200
	CenterY = 200
	Radius  = 100

	// Side column for buttons and pick options
	ColumnX       = 450
	OptionSpacing = 50
	OptionRadius  = 18

	// Button dimensions
	ButtonWidth  = 110
	ButtonHeight = 28

	// Flip animation timing
	FadeDelay     = 120 * time.Millisecond
	StepDelay     = 160 * time.Millisecond
	EndSoundDelay = 500 * time.Millisecond
)

// Config holds the runtime knobs that can be overridden from the environment.
type Config struct {
	AudioDir     string
	AudioEnabled bool
	Volume       float64 // 0.0-1.0
	Seed         int64   // 0 means seed from the clock
}

func Default() *Config {
	return &Config{
		AudioDir:     "audio",
		AudioEnabled: true,
		Volume:       1.0,
	}
}

// Load returns the defaults overridden by SHRUBBERY_* environment variables.
// Malformed values are ignored.
func Load() *Config {
	cfg := Default()

	if dir := os.Getenv("SHRUBBERY_AUDIO_DIR"); dir != "" {
		cfg.AudioDir = dir
	}

	if enabled := os.Getenv("SHRUBBERY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.AudioEnabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("SHRUBBERY_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if seed := os.Getenv("SHRUBBERY_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	return cfg
}

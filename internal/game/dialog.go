package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// chooseAudioDir asks for the folder the clips live in. Cancelling keeps the
// current folder.
func (g *Game) chooseAudioDir() error {
	dir, err := zenity.SelectFile(
		zenity.Title("Choose Audio Folder"),
		zenity.Directory(),
		zenity.Filename(g.audio.Dir()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("choose audio folder: %w", err)
	}

	g.audio.SetDir(dir)
	g.lastErr = nil
	return nil
}

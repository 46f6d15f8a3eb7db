package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heartcard/internal/config"
	"github.com/iburimskiy/heartcard/internal/game"
)

const defaultTrack = "assets/music.mp3"

// resolveTrack picks the background track: CLI argument, then the bundled
// default, then a file dialog. An empty result means a silent card.
func resolveTrack() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	if _, err := os.Stat(defaultTrack); err == nil {
		return defaultTrack
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Arka plan muzigi sec"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("track dialog: %v", err)
		}
		return ""
	}
	return filename
}

// windowSize fits the default window to the current display so narrow
// screens start with the compact particle profile.
func windowSize() (int, int) {
	w, h := config.WindowWidth, config.WindowHeight
	if mw, mh := ebiten.Monitor().Size(); mw > 0 && mh > 0 {
		if mw < w {
			w = mw
		}
		if mh < h {
			h = mh
		}
	}
	return w, h
}

func main() {
	w, h := windowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Seni Seviyorum")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(resolveTrack(), w, h)
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

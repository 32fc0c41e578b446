package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/padprobe/padprobe/internal/config"
	"github.com/padprobe/padprobe/internal/platform/tui"
	"github.com/padprobe/padprobe/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the test shooter",
	Long: `Start the side-scrolling shooter used as the input test bench.

Controls:
  Arrows/WASD - Move
  Space       - Shoot
  X           - Boost (drains energy)
  Z           - Shield (drains energy)
  Tab         - Toggle input probe view
  L           - Toggle log panel
  Q/Ctrl+C    - Quit

Examples:
  padprobe play
  padprobe play --seed 42
  padprobe play --config ./padprobe.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	runSession(false)
}

// runSession loads config and storage and starts one local session.
func runSession(startInProbe bool) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagWidth > 0 {
		cfg.Playfield.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Playfield.Height = flagHeight
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without persistence
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Cols:         width,
		Rows:         height,
		FPS:          flagFPS,
		Seed:         flagSeed,
		Config:       cfg,
		Store:        store,
		StartInProbe: startInProbe,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/platform/tui"
)

var adventureCmd = &cobra.Command{
	Use:   "adventure",
	Short: "Explore the overworld and solve its puzzles",
	Long: `Walk a small world map. Glowing tiles hide puzzles: walk into one to
open it, solve it to light it up for good. With progression enabled in the
world config, every few solves make the next puzzles bigger.

Controls:
  Arrows/WASD  - Walk
  Esc          - Leave an unsolved puzzle
  Q            - Quit

Examples:
  puzzles adventure
  puzzles adventure --world ./my-world.yaml
  puzzles adventure --image ./photo.png --difficulty easy`,
	Run: runAdventure,
}

func runAdventure(_ *cobra.Command, _ []string) {
	cfg, err := loadPuzzlesConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	worldCfg, err := config.LoadWorld(flagWorld)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(flagLogFile)
	defer closeLog()

	rc := runtimeConfig()
	setup, err := newSetup(cfg, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.RunAdventure(setup, worldCfg, store, rc, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running adventure: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Play a puzzle",
	Long: `Scramble a picture and start solving it.

Controls:
  Mouse      - Left click a tile (right click cycles connector colours backwards)
  Arrows     - Slide a tile into the gap (sliding tiles)
  H          - Highlight a suggested tile
  R          - New scramble
  ?          - More help
  Ctrl+S     - Save a screenshot
  Q/Esc      - Quit

Examples:
  puzzles play sliding
  puzzles play sliding --size 4
  puzzles play flipping --difficulty hard
  puzzles play connector --seed 42
  puzzles play lightsout --image ./photo.jpg`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Pieces per side (overrides the difficulty preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	puzzleID := args[0]

	if !registry.Exists(puzzleID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", puzzleID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available puzzles.")
		os.Exit(1)
	}

	cfg, err := loadPuzzlesConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSize > 0 {
		if cfg.Sizes == nil {
			cfg.Sizes = make(map[string]config.SizeConfig)
		}
		cfg.Sizes[puzzleID] = config.SizeConfig{Easy: flagSize, Normal: flagSize, Hard: flagSize}
	}

	logger, closeLog := newLogger(flagLogFile)
	defer closeLog()

	rc := runtimeConfig()
	setup, err := newSetup(cfg, rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("starting puzzle", "puzzle", puzzleID, "seed", setup.Seed, "size", setup.Size(puzzleID, 0))

	store := openStore(logger)

	runErr := tui.RunPuzzle(puzzleID, setup, store, rc, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}

// puzzles is a terminal tile-puzzle collection: sliding tiles, flipping
// tiles, lights out and colour connector, played on any picture.
//
// Usage:
//
//	puzzles list              - List available puzzles
//	puzzles play <puzzle>     - Play a puzzle
//	puzzles menu              - Pick puzzles interactively
//	puzzles adventure         - Walk the overworld and solve its puzzles
//	puzzles stats [puzzle]    - Show solve history
//	puzzles serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible scrambles
//	--db <path>           - Set database path (default: ~/.puzzles/solves.db)
//	--config <path>       - Puzzle configuration YAML
//	--world <path>        - Overworld configuration YAML
//	--image <path>        - Picture to cut into tiles
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tile-puzzles/internal/storage"

	// Import puzzles to register them
	_ "github.com/vovakirdan/tile-puzzles/internal/puzzles/connector"
	_ "github.com/vovakirdan/tile-puzzles/internal/puzzles/flipping"
	_ "github.com/vovakirdan/tile-puzzles/internal/puzzles/lightsout"
	_ "github.com/vovakirdan/tile-puzzles/internal/puzzles/sliding"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagWorld      string
	flagImage      string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "Tile puzzles - slide, flip and connect pictures in your terminal",
	Long: `Tile puzzles cuts a picture into a grid and scrambles it. Click tiles
with the mouse (or use the arrow keys for sliding tiles) to put it back.

Available commands:
  list       - Show all available puzzles
  play       - Play a specific puzzle
  menu       - Interactive puzzle picker
  adventure  - Walk the overworld, bump into puzzles, solve them all
  stats      - View solve history
  serve      - Start SSH server for remote play

Examples:
  puzzles list
  puzzles play sliding --size 4
  puzzles play lightsout --image ./cat.png
  puzzles adventure --difficulty hard
  puzzles serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzles/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzles config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWorld, "world", "", "Path to custom world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagImage, "image", "", "Picture to cut into tiles (png, jpeg, gif, bmp, webp)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.puzzles/puzzles.log", "Log file used while a puzzle is on screen")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(adventureCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the CLI logger. Full-screen commands pass a file so log
// lines do not tear the display; the returned close func releases it.
func newLogger(path string) (*log.Logger, func()) {
	out := os.Stderr
	closeFn := func() {}
	if path != "" {
		path = expandHome(path)
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			out = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "puzzles",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadPuzzlesConfig loads the puzzle config and applies the global flags.
func loadPuzzlesConfig() (config.PuzzlesConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagImage != "" {
		cfg.Image.Path = flagImage
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = preset
	}
	return cfg, nil
}

// runtimeConfig returns the terminal size and seed.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the solves database, or returns nil with a warning so
// puzzles stay playable without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		logger.Warn("could not open solves database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// localPlayer names the local user for solve records.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// newSetup prepares puzzle building from the config and flags.
func newSetup(cfg config.PuzzlesConfig, rc core.RuntimeConfig) (*tui.Setup, error) {
	return tui.NewSetup(cfg, rc, localPlayer())
}

package tui

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/vovakirdan/tile-puzzles/internal/config"
	"github.com/vovakirdan/tile-puzzles/internal/core"
	"github.com/vovakirdan/tile-puzzles/internal/puzzle"
	"github.com/vovakirdan/tile-puzzles/internal/registry"
)

// Default picture size when the configuration leaves it unset.
const (
	defaultImageWidth  = 48
	defaultImageHeight = 48
)

// Setup describes how a session builds puzzles: configuration, difficulty,
// the source picture and the random source shared by every scramble.
type Setup struct {
	Config config.PuzzlesConfig
	Preset config.DifficultyPreset
	Source image.Image
	Seed   int64
	Player string // Recorded with every solve
	Rand   *rand.Rand
}

// NewSetup resolves the source picture and seeds the random source.
// An empty image path uses the built-in sample picture.
func NewSetup(cfg config.PuzzlesConfig, rc core.RuntimeConfig, player string) (*Setup, error) {
	preset, err := config.ParsePreset(string(cfg.Difficulty))
	if err != nil {
		return nil, err
	}

	size := imageSize(cfg.Image)
	var src image.Image
	if cfg.Image.Path != "" {
		img, err := puzzle.Load(cfg.Image.Path)
		if err != nil {
			return nil, fmt.Errorf("tui: source image: %w", err)
		}
		src = img
	} else {
		src = puzzle.SampleImage(size.X, size.Y)
	}

	seed := rc.ResolveSeed()
	return &Setup{
		Config: cfg,
		Preset: preset,
		Source: src,
		Seed:   seed,
		Player: player,
		Rand:   rand.New(rand.NewSource(seed)),
	}, nil
}

func imageSize(c config.ImageConfig) core.Point {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultImageWidth
	}
	if h <= 0 {
		h = defaultImageHeight
	}
	return core.Pt(w, h)
}

// Size returns the pieces per side for a puzzle, grown by extra.
func (s *Setup) Size(id string, extra int) int {
	return s.SizeAt(id, s.Preset, extra)
}

// SizeAt is Size for an explicit difficulty preset.
func (s *Setup) SizeAt(id string, preset config.DifficultyPreset, extra int) int {
	n := s.Config.SizeFor(id, preset)
	if n == 0 {
		if info, ok := registry.Lookup(id); ok {
			n = info.DefaultSize
		}
	}
	return n + extra
}

// Options returns the engine options for a puzzle.
func (s *Setup) Options(id string, extra int) puzzle.Options {
	return puzzle.Options{
		PiecesPerSide:       s.Size(id, extra),
		OutputSize:          imageSize(s.Config.Image),
		MaxScrambleAttempts: s.Config.Scramble.MaxAttempts,
		AnchorProbability:   s.Config.Scramble.AnchorProbability,
	}
}

// Build creates a freshly scrambled puzzle.
func (s *Setup) Build(id string, extra int) (registry.Puzzle, error) {
	return registry.Create(id, s.Source, s.Options(id, extra), s.Rand)
}

package config

import (
	_ "embed"
)

//go:embed defaults/puzzles.yaml
var defaultPuzzlesYAML []byte

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultPuzzlesConfig returns the default puzzle configuration.
func DefaultPuzzlesConfig() PuzzlesConfig {
	return PuzzlesConfig{
		Difficulty: DifficultyNormal,
		Image: ImageConfig{
			Width:  48,
			Height: 48,
		},
		Scramble: ScrambleConfig{
			MaxAttempts:       64,
			AnchorProbability: 0.10,
		},
		Sizes: map[string]SizeConfig{
			"sliding":   {Easy: 3, Normal: 3, Hard: 4},
			"flipping":  {Easy: 3, Normal: 4, Hard: 6},
			"lightsout": {Easy: 3, Normal: 4, Hard: 5},
			"connector": {Easy: 4, Normal: 5, Hard: 6},
		},
	}
}

// DefaultWorldConfig returns the default overworld configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Layout: []string{
			"##########",
			"#@...1...#",
			"#........#",
			"#2..==..3#",
			"#....4...#",
			"##########",
		},
		Triggers: map[string]string{
			"1": "sliding",
			"2": "flipping",
			"3": "lightsout",
			"4": "connector",
		},
		Viewport: ViewportConfig{
			Width:         10,
			Height:        6,
			PixelsPerCell: 4,
		},
		Progression: ProgressionConfig{
			Enabled:   true,
			StepEvery: 2,
			MaxExtra:  2,
		},
	}
}

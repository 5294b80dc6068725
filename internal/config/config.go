// Package config provides YAML-based configuration loading for puzzle
// sessions and the overworld, with difficulty presets mapping to grid sizes.
package config

// PuzzlesConfig contains configuration shared by all puzzle variants.
type PuzzlesConfig struct {
	Difficulty DifficultyPreset      `yaml:"difficulty"`
	Image      ImageConfig           `yaml:"image"`
	Scramble   ScrambleConfig        `yaml:"scramble"`
	Sizes      map[string]SizeConfig `yaml:"sizes"` // Keyed by puzzle ID
}

// ImageConfig defines the picture being sliced.
type ImageConfig struct {
	Path   string `yaml:"path"`   // Empty uses the built-in sample picture
	Width  int    `yaml:"width"`  // Output width in pixels (one terminal column each)
	Height int    `yaml:"height"` // Output height in pixels (two per terminal row)
}

// ScrambleConfig bounds the randomized initial state generators.
type ScrambleConfig struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	AnchorProbability float64 `yaml:"anchor_probability"` // Connector anchor chance per tile
}

// SizeConfig holds pieces per side for each difficulty preset.
type SizeConfig struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// WorldConfig contains configuration for the overworld.
type WorldConfig struct {
	Layout         []string          `yaml:"layout"`          // '#' wall, '.' floor, '=' bridge, '@' start, digits trigger puzzles
	CollisionImage string            `yaml:"collision_image"` // Optional, overrides Layout
	Start          [2]int            `yaml:"start"`           // Used with CollisionImage
	Triggers       map[string]string `yaml:"triggers"`        // Trigger digit -> puzzle ID
	Viewport       ViewportConfig    `yaml:"viewport"`
	Progression    ProgressionConfig `yaml:"progression"`
}

// ViewportConfig defines how much of the map is visible.
type ViewportConfig struct {
	Width         int `yaml:"width"`           // Map cells across
	Height        int `yaml:"height"`          // Map cells down
	PixelsPerCell int `yaml:"pixels_per_cell"` // Pixel size of one map cell
}

// ProgressionConfig grows puzzle sizes as the player solves more of them.
type ProgressionConfig struct {
	Enabled   bool `yaml:"enabled"`
	StepEvery int  `yaml:"step_every"` // Solves per extra piece per side
	MaxExtra  int  `yaml:"max_extra"`  // Cap on extra pieces per side
}

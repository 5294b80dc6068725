package core

import "time"

// RuntimeConfig contains configuration passed to puzzles and the overworld
// at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in terminal cells
	ScreenH int   // Screen height in terminal cells
	Seed    int64 // RNG seed for deterministic scrambles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Size returns the pieces per side for a preset, or 0 when unset.
func (s SizeConfig) Size(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return s.Easy
	case DifficultyHard:
		return s.Hard
	default:
		return s.Normal
	}
}

// SizeFor returns the pieces per side configured for a puzzle at the given
// preset. Zero means the puzzle's own default applies.
func (c PuzzlesConfig) SizeFor(id string, preset DifficultyPreset) int {
	sizes, ok := c.Sizes[id]
	if !ok {
		return 0
	}
	return sizes.Size(preset)
}

// ExtraPieces returns how many pieces per side to add after solved puzzles.
func (p ProgressionConfig) ExtraPieces(solved int) int {
	if !p.Enabled || p.StepEvery <= 0 || solved <= 0 {
		return 0
	}
	extra := solved / p.StepEvery
	if extra > p.MaxExtra {
		extra = p.MaxExtra
	}
	return extra
}

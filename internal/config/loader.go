package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads puzzle configuration.
// Search order: customPath -> ~/.puzzles/configs/puzzles.yaml -> ./configs/puzzles.yaml -> embedded default
func Load(customPath string) (PuzzlesConfig, error) {
	cfg, err := load(customPath, "puzzles.yaml", defaultPuzzlesYAML, DefaultPuzzlesConfig)
	if err != nil {
		return cfg, err
	}
	if _, err := ParsePreset(string(cfg.Difficulty)); err != nil {
		return cfg, err
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = DifficultyNormal
	}
	return cfg, nil
}

// LoadWorld loads overworld configuration.
// Search order: customPath -> ~/.puzzles/configs/world.yaml -> ./configs/world.yaml -> embedded default
func LoadWorld(customPath string) (WorldConfig, error) {
	return load(customPath, "world.yaml", defaultWorldYAML, DefaultWorldConfig)
}

func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	var cfg T

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", "configs", filename)
}

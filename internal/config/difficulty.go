package config

import "time"

// DifficultyPreset represents a named speed profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// IsKnownPreset reports whether p names a preset.
func IsKnownPreset(p DifficultyPreset) bool {
	for _, known := range Presets {
		if p == known {
			return true
		}
	}
	return false
}

// ApplySnakePreset modifies the speed block based on a difficulty preset.
// Normal keeps whatever the loaded config specifies.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Speed.Interval = 150 * time.Millisecond
		cfg.Speed.MinInterval = 80 * time.Millisecond
	case DifficultyHard:
		cfg.Speed.Interval = 70 * time.Millisecond
		cfg.Speed.MinInterval = 35 * time.Millisecond
		cfg.Speed.Speedup = time.Millisecond
	case DifficultyFixed:
		cfg.Speed.MinInterval = cfg.Speed.Interval
		cfg.Speed.Speedup = 0
	}
}

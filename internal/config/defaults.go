package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// Mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  24,
			Height: 24,
		},
		Start: StartConfig{
			X:         5,
			Y:         5,
			Direction: "down",
		},
		Speed: SpeedConfig{
			Interval:    100 * time.Millisecond,
			MinInterval: 50 * time.Millisecond,
			Speedup:     500 * time.Microsecond,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

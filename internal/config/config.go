// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Start      StartConfig      `yaml:"start"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyPreset `yaml:"difficulty,omitempty"`
}

// BoardConfig defines the grid size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines the canonical initial snake used on every restart.
type StartConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left or right
}

// SpeedConfig defines the step interval and how it shrinks as the snake eats.
type SpeedConfig struct {
	Interval    time.Duration `yaml:"interval"`     // Step interval at start
	MinInterval time.Duration `yaml:"min_interval"` // Floor for the step interval
	Speedup     time.Duration `yaml:"speedup"`      // Subtracted per food eaten
}

// ValidationError describes a single invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is.
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

var validDirections = map[string]bool{
	"up":    true,
	"down":  true,
	"left":  true,
	"right": true,
}

// Validate checks that the configuration describes a playable board.
// All problems are reported together.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 {
		errs = append(errs, ValidationError{"board.width", fmt.Sprintf("must be positive, got %d", c.Board.Width)})
	}
	if c.Board.Height <= 0 {
		errs = append(errs, ValidationError{"board.height", fmt.Sprintf("must be positive, got %d", c.Board.Height)})
	}
	if c.Board.Width > 0 && c.Board.Height > 0 &&
		(c.Start.X < 0 || c.Start.X >= c.Board.Width || c.Start.Y < 0 || c.Start.Y >= c.Board.Height) {
		errs = append(errs, ValidationError{"start", fmt.Sprintf("position (%d, %d) is outside the %dx%d board",
			c.Start.X, c.Start.Y, c.Board.Width, c.Board.Height)})
	}
	if !validDirections[c.Start.Direction] {
		errs = append(errs, ValidationError{"start.direction", fmt.Sprintf("unknown direction %q", c.Start.Direction)})
	}
	if c.Speed.Interval <= 0 {
		errs = append(errs, ValidationError{"speed.interval", "must be positive"})
	}
	if c.Speed.MinInterval <= 0 {
		errs = append(errs, ValidationError{"speed.min_interval", "must be positive"})
	}
	if c.Speed.MinInterval > c.Speed.Interval {
		errs = append(errs, ValidationError{"speed.min_interval", fmt.Sprintf("%v exceeds interval %v",
			c.Speed.MinInterval, c.Speed.Interval)})
	}
	if c.Speed.Speedup < 0 {
		errs = append(errs, ValidationError{"speed.speedup", "must not be negative"})
	}
	if c.Difficulty != "" && !IsKnownPreset(c.Difficulty) {
		errs = append(errs, ValidationError{"difficulty", fmt.Sprintf("unknown preset %q", c.Difficulty)})
	}

	return errors.Join(errs...)
}

// Fits reports whether the start position lies inside the board.
func (c SnakeConfig) Fits() bool {
	return c.Start.X >= 0 && c.Start.X < c.Board.Width && c.Start.Y >= 0 && c.Start.Y < c.Board.Height
}

// WithBoardSize returns a copy with the given board size. A start position that
// no longer fits is moved to the board center.
func (c SnakeConfig) WithBoardSize(width, height int) SnakeConfig {
	c.Board.Width = width
	c.Board.Height = height
	if width > 0 && height > 0 && !c.Fits() {
		c.Start.X = width / 2
		c.Start.Y = height / 2
	}
	return c
}

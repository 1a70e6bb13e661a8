package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// isolate points the config search at empty directories and resets flags.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagDifficulty = "", ""
	flagWidth, flagHeight = 0, 0
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		flagWidth, flagHeight = 0, 0
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, source, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if source != config.SourceEmbedded {
		t.Errorf("source = %q, want embedded", source)
	}
	if cfg.Board.Width != 24 || cfg.Board.Height != 24 {
		t.Errorf("board = %s, want 24x24", boardLabel(cfg))
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	isolate(t)
	flagDifficulty = "fixed"
	flagWidth = 10
	flagHeight = 8

	cfg, _, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if got := boardLabel(cfg); got != "10x8" {
		t.Errorf("board = %s, want 10x8", got)
	}
	if !cfg.Fits() {
		t.Errorf("start %+v should be moved onto the 10x8 board", cfg.Start)
	}
	if cfg.Speed.Speedup != 0 || cfg.Speed.MinInterval != cfg.Speed.Interval {
		t.Errorf("fixed preset not applied: %+v", cfg.Speed)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "board:\n  width: 12\n  height: 12\nspeed:\n  interval: 200ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path

	cfg, source, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if source != config.SourceCustom {
		t.Errorf("source = %q, want custom", source)
	}
	if cfg.Speed.Interval != 200*time.Millisecond {
		t.Errorf("interval = %v, want 200ms", cfg.Speed.Interval)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
	}{
		{"unknown difficulty", func() { flagDifficulty = "nightmare" }},
		{"negative width", func() { flagWidth = -3 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			tc.setup()

			_, _, err := loadConfig()
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("loadConfig() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.log")

	logger, closeLog, err := newLogger("debug", path)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("food eaten", "score", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "food eaten") {
		t.Errorf("log file missing entry: %q", data)
	}

	if _, _, err := newLogger("loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestCheckTerminal(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	if err := checkTerminal(cfg, 50, 29); err != nil {
		t.Errorf("24x24 board should fit 50x29: %v", err)
	}

	err := checkTerminal(cfg, 80, 24)
	if err == nil {
		t.Fatal("24x24 board should not fit 80x24")
	}
	if !strings.Contains(err.Error(), "--width 24 --height 19") {
		t.Errorf("error should suggest a board that fits: %v", err)
	}

	if err := checkTerminal(cfg, 3, 3); err == nil || strings.Contains(err.Error(), "--width") {
		t.Errorf("tiny terminal should fail without a suggestion, got %v", err)
	}
}

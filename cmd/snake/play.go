package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing snake.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Speed from the config file
  hard   - Fast start, steeper speed-up
  fixed  - No speed-up, stays at the initial interval

Examples:
  snake play
  snake play --difficulty easy
  snake play --width 16 --height 16
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source, "board", boardLabel(cfg), "difficulty", cfg.Difficulty)

	var opts []snake.Option
	if flagSeed != 0 {
		opts = append(opts, snake.WithSeed(flagSeed))
	}

	// The board is never scaled, so refuse to start when it cannot fit.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if err := checkTerminal(cfg, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game, err := snake.New(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	screenW, screenH := tui.ScreenSize(cfg.Board.Width, cfg.Board.Height)
	runtime := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagFPS,
	}

	// Open the session scoreboard
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session scoreboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, runtime, tui.Options{
		Store:      store,
		Logger:     logger,
		Board:      boardLabel(cfg),
		Difficulty: string(cfg.Difficulty),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the command line overrides.
func loadConfig() (config.SnakeConfig, config.Source, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, source, err
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if preset == "" {
		preset = cfg.Difficulty
	}
	if preset != "" && !config.IsKnownPreset(preset) {
		return config.SnakeConfig{}, source, fmt.Errorf("%w: unknown difficulty %q (want one of %v)",
			config.ErrInvalidConfig, preset, config.Presets)
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagWidth != 0 || flagHeight != 0 {
		w, h := cfg.Board.Width, cfg.Board.Height
		if flagWidth != 0 {
			w = flagWidth
		}
		if flagHeight != 0 {
			h = flagHeight
		}
		cfg = cfg.WithBoardSize(w, h)
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, source, err
	}
	return cfg, source, nil
}

// checkTerminal reports an error naming the largest usable board when the
// configured board does not fit a termW by termH terminal.
func checkTerminal(cfg config.SnakeConfig, termW, termH int) error {
	needW, needH := tui.TermSize(cfg.Board.Width, cfg.Board.Height)
	if termW >= needW && termH >= needH {
		return nil
	}

	maxW, maxH := tui.MaxBoardSize(termW, termH)
	if maxW == 0 || maxH == 0 {
		return fmt.Errorf("board %s needs a %dx%d terminal, have %dx%d",
			boardLabel(cfg), needW, needH, termW, termH)
	}
	return fmt.Errorf("board %s needs a %dx%d terminal, have %dx%d; try --width %d --height %d",
		boardLabel(cfg), needW, needH, termW, termH,
		min(cfg.Board.Width, maxW), min(cfg.Board.Height, maxH))
}

func boardLabel(cfg config.SnakeConfig) string {
	return fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height)
}

// newLogger builds the logger. Bubble Tea owns the terminal while the game
// runs, so logs go to a file or nowhere.
func newLogger(level, path string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	}

	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	closeFn := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return log.NewWithOptions(f, opts), closeFn, nil
}

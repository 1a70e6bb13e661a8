package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpRows is the vertical space reserved under the board for the help bar.
const helpRows = 2

var (
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Options carries the shell's collaborators. Every field is optional.
type Options struct {
	Store      *storage.Store // Session scoreboard, nil disables it
	Logger     *log.Logger    // Must not write to the terminal
	Clock      core.Clock     // Used to time runs
	Board      string         // Scoreboard label such as "24x24"
	Difficulty string
}

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	game   *snake.Game
	screen *core.Screen
	render *renderer
	config core.RuntimeConfig
	store  *storage.Store
	logger *log.Logger
	clock  core.Clock
	keys   KeyMap
	help   help.Model

	board      string
	difficulty string

	termW, termH int
	needW, needH int // Terminal size the board and help bar require
	paused       bool
	quitting     bool
	recorded     bool // Whether the current game over has been recorded
	startedAt    time.Time
	best         int
	topRuns      []storage.Run
	stats        *storage.BoardStats
	lastRunID    int64
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}

	snap := game.Snapshot()
	if opts.Board == "" {
		opts.Board = boardLabel(snap.Width, snap.Height)
	}
	if opts.Difficulty == "" {
		opts.Difficulty = string(game.Config().Difficulty)
	}
	w, h := ScreenSize(snap.Width, snap.Height)
	cfg.ScreenW, cfg.ScreenH = w, h
	needW, needH := TermSize(snap.Width, snap.Height)

	keys := DefaultKeyMap()
	keys.setGameOver(snap.GameOver())

	return Model{
		game:       game,
		screen:     core.NewScreen(w, h),
		render:     &renderer{},
		config:     cfg,
		store:      opts.Store,
		logger:     opts.Logger,
		clock:      opts.Clock,
		keys:       keys,
		help:       help.New(),
		board:      opts.Board,
		difficulty: opts.Difficulty,
		needW:      needW,
		needH:      needH,
		startedAt:  opts.Clock.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "board", m.board, "difficulty", m.difficulty, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.game.GameOver() {
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		}

	case core.ActionRestart:
		if m.game.GameOver() {
			m.restart()
		}

	default:
		if m.paused || !action.IsDirectional() {
			return m, nil
		}
		if dir, ok := snake.DirectionFor(action); ok {
			m.game.SetDirection(dir)
		}
	}

	return m, nil
}

// handleResize records the terminal size. The board itself never resizes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.termW = msg.Width
	m.termH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick offers the game a step and keeps the timer running.
// Paused or cramped shells do not advance the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || !m.fits() {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Tick()
	if result.Ate {
		m.logger.Debug("food eaten", "score", m.game.Score())
	}
	if m.game.GameOver() && !m.recorded {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run.
func (m *Model) restart() {
	m.game.Restart()
	m.recorded = false
	m.paused = false
	m.startedAt = m.clock.Now()
	m.keys.setGameOver(false)
	m.logger.Info("game restarted", "board", m.board)
}

// recordRun logs the finished run and saves it to the session scoreboard.
func (m *Model) recordRun() {
	m.recorded = true
	m.keys.setGameOver(true)

	snap := m.game.Snapshot()
	elapsed := m.clock.Now().Sub(m.startedAt)
	m.best = max(m.best, snap.Score)
	m.logger.Info("game over",
		"score", snap.Score,
		"length", snap.Length(),
		"steps", snap.Steps,
		"duration", elapsed,
	)
	m.logger.Debug("final state", "state", m.game.DebugState())

	if m.store == nil {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		Board:      m.board,
		Difficulty: m.difficulty,
		Score:      snap.Score,
		Steps:      snap.Steps,
		Duration:   elapsed,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.lastRunID = id

	runs, err := m.store.TopRuns(m.board, leaderboardSize)
	if err != nil {
		m.logger.Warn("cannot load session scores", "err", err)
		return
	}
	m.topRuns = runs

	if best, err := m.store.HighScore(m.board); err == nil {
		m.best = max(m.best, best)
	}
	if stats, err := m.store.Stats(m.board); err == nil {
		m.stats = stats
	}
}

// fits reports whether the board and help bar fit the terminal.
// An unknown terminal size counts as fitting.
func (m Model) fits() bool {
	if m.termW == 0 && m.termH == 0 {
		return true
	}
	return m.termW >= m.needW && m.termH >= m.needH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.fits() {
		msg := fmt.Sprintf("Window too small: need %dx%d, have %dx%d",
			m.needW, m.needH, m.termW, m.termH)
		return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, msg)
	}

	snap := m.game.Snapshot()
	rest := drawBoard(m.screen, snap, hudInfo{best: max(m.best, snap.Score), paused: m.paused})

	parts := []string{m.render.render(m.screen)}
	if len(rest) > 0 {
		parts = append(parts, overlayStyle.Render(strings.Join(rest, "\n")))
	}
	if snap.GameOver() {
		if lb := renderLeaderboard(m.topRuns, m.lastRunID, m.stats); lb != "" {
			parts = append(parts, "", lb)
		}
	}
	parts = append(parts, helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.termW == 0 || m.termH == 0 {
		return content
	}
	return lipgloss.Place(m.termW, m.termH, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for the given game and blocks until
// the player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

func boardLabel(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}

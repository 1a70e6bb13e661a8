// Package snake implements the snake simulation: a single snake on a bounded
// grid, one food pellet, and a step interval that shrinks as the snake grows.
//
// The Game has no terminal or timer of its own. A shell calls Tick at any rate
// it likes, forwards directional input to SetDirection, and draws from
// Snapshot.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// State is the simulation's lifecycle state.
type State string

const (
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// StepResult reports what a call to Tick did.
type StepResult struct {
	Stepped  bool // A step was applied
	Ate      bool // The head reached the food during this step
	GameOver bool // The game is over (either before or because of this step)
}

// Game is the snake simulation.
// All methods are safe for concurrent use; each call is applied atomically.
type Game struct {
	mu sync.Mutex

	cfg      config.SnakeConfig
	bounds   core.Rect
	start    Position
	startDir Direction
	rng      *rand.Rand
	clock    core.Clock

	segments  []Position // Head at index 0
	direction Direction  // Direction of the last applied step
	pending   Direction  // Direction for the next step
	food      Position
	hasFood   bool
	growth    int
	interval  time.Duration
	lastStep  time.Time
	steps     uint64
	state     State
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSeed makes food placement deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock replaces the wall clock used to gate steps.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// New creates a game in its initial state.
// Returns an error wrapping config.ErrInvalidConfig if cfg cannot describe a
// playable board.
func New(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	dir, ok := ParseDirection(cfg.Start.Direction)
	if !ok {
		return nil, fmt.Errorf("snake: %w: start.direction: unknown direction %q", config.ErrInvalidConfig, cfg.Start.Direction)
	}

	g := &Game{
		cfg:      cfg,
		bounds:   core.NewRect(0, 0, cfg.Board.Width, cfg.Board.Height),
		start:    Position{X: cfg.Start.X, Y: cfg.Start.Y},
		startDir: dir,
		clock:    core.SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.reset()
	return g, nil
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// reset puts every field back into the canonical initial shape.
func (g *Game) reset() {
	g.segments = make([]Position, 1, 16)
	g.segments[0] = g.start
	g.direction = g.startDir
	g.pending = g.startDir
	g.growth = 0
	g.interval = g.cfg.Speed.Interval
	g.steps = 0
	g.state = StateRunning
	g.lastStep = g.clock.Now()
	g.placeFood()
}

// Restart resets the snake, counters and speed, and places new food.
// Always succeeds.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

// SetDirection requests the direction for the next step.
// The request is ignored (and false returned) when the game is over, when d is
// not a unit step, or when d would reverse the snake onto its own neck. The
// reversal check uses the direction of the last applied step, so several key
// presses between two steps cannot add up to a reversal.
func (g *Game) SetDirection(d Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateGameOver || !d.IsUnit() {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the simulation by one step if at least the current step
// interval has elapsed since the previous step. Calls that arrive early, or
// after the game is over, change nothing.
func (g *Game) Tick() StepResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateGameOver {
		return StepResult{GameOver: true}
	}

	now := g.clock.Now()
	if now.Sub(g.lastStep) < g.interval {
		return StepResult{}
	}
	g.lastStep = now

	return g.step()
}

// step applies exactly one move.
func (g *Game) step() StepResult {
	g.direction = g.pending
	g.steps++

	prevHead := g.segments[0]
	newHead := prevHead.Add(g.direction)

	ate := g.hasFood && newHead == g.food
	if ate {
		g.growth++
		g.interval = max(g.cfg.Speed.MinInterval, g.interval-g.cfg.Speed.Speedup)
	}

	// Follow the leader: every segment takes its predecessor's old cell.
	// With an empty body the old tail is the old head.
	oldTail := g.segments[len(g.segments)-1]
	for i := len(g.segments) - 1; i > 0; i-- {
		g.segments[i] = g.segments[i-1]
	}
	g.segments[0] = newHead

	if g.growth > 0 {
		g.growth--
		g.segments = append(g.segments, oldTail)
	}

	if ate {
		g.placeFood()
	}

	if g.collides(newHead) {
		g.state = StateGameOver
	}

	return StepResult{Stepped: true, Ate: ate, GameOver: g.state == StateGameOver}
}

// collides reports whether head is outside the board or on a body segment.
func (g *Game) collides(head Position) bool {
	if !g.bounds.Contains(head.X, head.Y) {
		return true
	}
	for _, seg := range g.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// --- Accessors ---

// State returns the lifecycle state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool {
	return g.State() == StateGameOver
}

// Score returns the number of body segments, excluding the head.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.segments) - 1
}

// DebugState returns a one-screen description of the game state.
func (g *Game) DebugState() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Steps: %d, Score: %d, State: %s\n", g.steps, len(g.segments)-1, g.state)
	fmt.Fprintf(&b, "Head: (%d, %d), Direction: %s, Pending: %s\n",
		g.segments[0].X, g.segments[0].Y, g.direction, g.pending)
	if g.hasFood {
		fmt.Fprintf(&b, "Food: (%d, %d)\n", g.food.X, g.food.Y)
	} else {
		b.WriteString("Food: none\n")
	}
	fmt.Fprintf(&b, "Growth: %d, Interval: %v\n", g.growth, g.interval)
	return b.String()
}

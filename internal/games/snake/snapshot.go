package snake

import "time"

// Snapshot is a read-only copy of the game state, taken once per frame by the
// shell and used by tests to check determinism.
type Snapshot struct {
	Width         int
	Height        int
	Segments      []Position // Head first, then body in tail order
	Food          Position
	HasFood       bool
	Score         int
	Direction     Direction
	PendingGrowth int
	Interval      time.Duration
	Steps         uint64
	State         State
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	segments := make([]Position, len(g.segments))
	copy(segments, g.segments)

	return Snapshot{
		Width:         g.bounds.W,
		Height:        g.bounds.H,
		Segments:      segments,
		Food:          g.food,
		HasFood:       g.hasFood,
		Score:         len(g.segments) - 1,
		Direction:     g.direction,
		PendingGrowth: g.growth,
		Interval:      g.interval,
		Steps:         g.steps,
		State:         g.state,
	}
}

// Head returns the head position.
func (s Snapshot) Head() Position {
	return s.Segments[0]
}

// Body returns the segments behind the head.
func (s Snapshot) Body() []Position {
	if len(s.Segments) == 0 {
		return nil
	}
	return s.Segments[1:]
}

// Length returns the number of segments including the head.
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// GameOver reports whether the snapshot was taken after the game ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Occupied reports whether any segment is on p.
func (s Snapshot) Occupied(p Position) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

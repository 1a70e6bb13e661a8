package snake

// samplesPerCell bounds rejection sampling before falling back to a scan of
// the free cells.
const samplesPerCell = 4

// placeFood moves the food to a uniformly random cell not occupied by any
// segment. Rejection sampling is tried first; crowded boards fall back to
// picking from the enumerated free cells. A board with no free cell leaves
// the game without food.
func (g *Game) placeFood() {
	occupied := make(map[Position]bool, len(g.segments))
	for _, seg := range g.segments {
		if g.bounds.Contains(seg.X, seg.Y) {
			occupied[seg] = true
		}
	}

	free := g.bounds.Area() - len(occupied)
	if free <= 0 {
		g.hasFood = false
		return
	}

	for range samplesPerCell * g.bounds.Area() {
		p := Position{X: g.rng.Intn(g.bounds.W), Y: g.rng.Intn(g.bounds.H)}
		if !occupied[p] {
			g.food = p
			g.hasFood = true
			return
		}
	}

	cells := make([]Position, 0, free)
	for y := range g.bounds.H {
		for x := range g.bounds.W {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	g.food = cells[g.rng.Intn(len(cells))]
	g.hasFood = true
}

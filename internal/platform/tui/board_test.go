package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func testSnapshot() snake.Snapshot {
	return snake.Snapshot{
		Width:  24,
		Height: 24,
		Segments: []snake.Position{
			{X: 5, Y: 5},
			{X: 5, Y: 4},
			{X: 4, Y: 4},
		},
		Food:      snake.Position{X: 10, Y: 12},
		HasFood:   true,
		Score:     2,
		Direction: snake.Down,
		Interval:  99 * time.Millisecond,
		State:     snake.StateRunning,
	}
}

// cellAt returns the screen coordinates of a board cell.
func cellAt(x, y int) (int, int) {
	return 1 + x*cellWidth, hudRows + 1 + y
}

func TestScreenSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{24, 24, 50, 27},
		{1, 1, 4, 4},
		{10, 5, 22, 8},
	}

	for _, tc := range tests {
		w, h := ScreenSize(tc.w, tc.h)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("ScreenSize(%d, %d) = %dx%d, want %dx%d", tc.w, tc.h, w, h, tc.wantW, tc.wantH)
		}
	}
}

func TestDrawBoardCells(t *testing.T) {
	snap := testSnapshot()
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	drawBoard(screen, snap, hudInfo{best: 7})

	tests := []struct {
		name  string
		x, y  int
		want  rune
		color core.Color
	}{
		{"head", 5, 5, glyphHead[0], core.ColorBrightGreen},
		{"neck", 5, 4, glyphBody[0], core.ColorGreen},
		{"tail", 4, 4, glyphBody[0], core.ColorGreen},
		{"food", 10, 12, glyphFood[0], core.ColorBrightRed},
		{"empty", 0, 0, glyphEmpty[0], core.ColorDarkGray},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy := cellAt(tc.x, tc.y)
			cell := screen.GetCell(sx, sy)
			if cell.Rune != tc.want || cell.Color != tc.color {
				t.Errorf("cell (%d,%d) = %q/%d, want %q/%d", tc.x, tc.y, cell.Rune, cell.Color, tc.want, tc.color)
			}
		})
	}

	if got := screen.Get(0, hudRows); got != '┌' {
		t.Errorf("frame corner = %q, want '┌'", got)
	}
	if got := screen.Get(w-1, h-1); got != '┘' {
		t.Errorf("frame corner = %q, want '┘'", got)
	}

	hud := screen.Row(0)
	for _, want := range []string{"Score: 2", "Len: 3", "Speed: 99ms", "Best: 7"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
}

func TestDrawBoardWithoutFood(t *testing.T) {
	snap := testSnapshot()
	snap.HasFood = false
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	drawBoard(screen, snap, hudInfo{})

	sx, sy := cellAt(snap.Food.X, snap.Food.Y)
	if got := screen.Get(sx, sy); got != glyphEmpty[0] {
		t.Errorf("stale food cell = %q, want empty", got)
	}
}

func TestDrawBoardGameOverOverlay(t *testing.T) {
	snap := testSnapshot()
	snap.State = snake.StateGameOver
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	if rest := drawBoard(screen, snap, hudInfo{}); rest != nil {
		t.Fatalf("overlay should fit a 24x24 board, got overflow %q", rest)
	}

	out := screen.String()
	for _, want := range []string{"Game Over", "Final Score: 2", "Press R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
	if strings.Contains(out, "Paused") {
		t.Error("game over screen should not show the pause overlay")
	}
}

func TestDrawBoardPausedOverlay(t *testing.T) {
	snap := testSnapshot()
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	drawBoard(screen, snap, hudInfo{paused: true})

	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused screen missing overlay")
	}
}

func TestDrawBoardTinyBoard(t *testing.T) {
	snap := snake.Snapshot{
		Width:    1,
		Height:   1,
		Segments: []snake.Position{{X: 0, Y: 0}},
		State:    snake.StateGameOver,
	}
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	rest := drawBoard(screen, snap, hudInfo{})

	sx, sy := cellAt(0, 0)
	if got := screen.Get(sx, sy); got != glyphHead[0] {
		t.Errorf("head cell = %q, want %q", got, glyphHead[0])
	}
	if len(rest) != 3 || rest[0] != "Game Over" {
		t.Errorf("overflow lines = %q, want the game over message", rest)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawText(0, 0, "snake", core.ColorGreen)
	screen.DrawText(0, 1, "food", core.ColorRed)

	out := RenderScreen(screen)
	if !strings.Contains(out, "snake") || !strings.Contains(out, "food") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen should produce 2 lines, got %q", out)
	}
}

func TestDrawBoardHeadPastWall(t *testing.T) {
	snap := testSnapshot()
	snap.Segments[0] = snake.Position{X: snap.Width, Y: 5}
	snap.State = snake.StateGameOver
	w, h := ScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)

	drawBoard(screen, snap, hudInfo{})

	_, sy := cellAt(0, 5)
	if got := screen.Get(w-1, sy); got != '│' {
		t.Errorf("right frame = %q, want '│'", got)
	}
}

func TestTermSizeMatchesMaxBoardSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{24, 24, 50, 29},
		{1, 1, 4, 6},
		{39, 19, 80, 24},
	}

	for _, tc := range tests {
		w, h := TermSize(tc.w, tc.h)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("TermSize(%d, %d) = %dx%d, want %dx%d", tc.w, tc.h, w, h, tc.wantW, tc.wantH)
		}
		if bw, bh := MaxBoardSize(w, h); bw != tc.w || bh != tc.h {
			t.Errorf("MaxBoardSize(%d, %d) = %dx%d, want %dx%d", w, h, bw, bh, tc.w, tc.h)
		}
	}

	if bw, bh := MaxBoardSize(3, 5); bw != 0 || bh != 0 {
		t.Errorf("MaxBoardSize(3, 5) = %dx%d, want 0x0", bw, bh)
	}
}

func TestRendererRestylesChangedRowsOnly(t *testing.T) {
	screen := core.NewScreen(6, 3)
	screen.DrawText(0, 0, "ab", core.ColorGreen)
	screen.DrawText(0, 2, "cd", core.ColorRed)

	var r renderer
	first := r.render(screen)
	if first != RenderScreen(screen) {
		t.Fatal("cached render differs from RenderScreen")
	}
	untouched := r.rows[2]

	screen.SetColored(4, 0, 'x', core.ColorYellow)
	second := r.render(screen)

	if second == first {
		t.Fatal("render should reflect the changed row")
	}
	if second != RenderScreen(screen) {
		t.Error("cached render differs from RenderScreen after a change")
	}
	if r.rows[2] != untouched {
		t.Error("unchanged row should keep its styled text")
	}
	if !strings.Contains(second, "x") {
		t.Errorf("changed cell missing from %q", second)
	}
}

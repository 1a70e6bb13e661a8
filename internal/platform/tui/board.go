package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Board layout: one HUD row above a framed grid. Every grid cell is two
// terminal columns wide so the board looks square.
const (
	cellWidth = 2
	hudRows   = 1
)

// Glyphs for the grid, two runes per cell.
var (
	glyphHead  = [cellWidth]rune{'█', '█'}
	glyphBody  = [cellWidth]rune{'▓', '▓'}
	glyphFood  = [cellWidth]rune{'●', ' '}
	glyphEmpty = [cellWidth]rune{'·', ' '}
)

// ScreenSize returns the screen needed to draw a board of w by h cells.
func ScreenSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2 + hudRows
}

// TermSize returns the terminal size needed to show a w by h board together
// with the help bar.
func TermSize(w, h int) (int, int) {
	sw, sh := ScreenSize(w, h)
	return sw, sh + helpRows
}

// MaxBoardSize returns the largest board whose TermSize fits a terminal of
// termW by termH. Either value is 0 when no board fits.
func MaxBoardSize(termW, termH int) (int, int) {
	w := (termW - 2) / cellWidth
	h := termH - 2 - hudRows - helpRows
	return max(w, 0), max(h, 0)
}

// hudInfo is the per-frame data shown above the board that the simulation
// does not know about.
type hudInfo struct {
	best   int
	paused bool
}

// drawBoard renders a snapshot into the screen buffer. It returns the
// overlay lines that did not fit on the board so the caller can show them
// elsewhere.
func drawBoard(dst *core.Screen, snap snake.Snapshot, hud hudInfo) []string {
	dst.Clear()

	drawHUD(dst, snap, hud)

	board := core.NewRect(0, 0, snap.Width, snap.Height)
	frame := core.NewRect(0, hudRows, snap.Width*cellWidth+2, snap.Height+2)
	frameColor := core.ColorGray
	if snap.GameOver() {
		frameColor = core.ColorRed
	}
	dst.DrawBox(frame, frameColor)

	for y := range snap.Height {
		for x := range snap.Width {
			drawCell(dst, board, x, y, glyphEmpty, core.ColorDarkGray)
		}
	}

	if snap.HasFood {
		drawCell(dst, board, snap.Food.X, snap.Food.Y, glyphFood, core.ColorBrightRed)
	}

	// Tail first so the head wins when a collision puts them on one cell.
	body := snap.Body()
	for i := len(body) - 1; i >= 0; i-- {
		drawCell(dst, board, body[i].X, body[i].Y, glyphBody, core.ColorGreen)
	}
	if len(snap.Segments) > 0 {
		head := snap.Head()
		headColor := core.ColorBrightGreen
		if snap.GameOver() {
			headColor = core.ColorBrightRed
		}
		drawCell(dst, board, head.X, head.Y, glyphHead, headColor)
	}

	var lines []string
	c := core.ColorYellow
	switch {
	case snap.GameOver():
		lines = []string{
			"Game Over",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Press R to restart",
		}
		c = core.ColorBrightRed
	case hud.paused:
		lines = []string{"Paused", "Press P to resume"}
	}
	if len(lines) == 0 || drawOverlay(dst, frame, c, lines...) {
		return nil
	}
	return lines
}

// drawCell draws one grid cell, skipping anything outside the board.
func drawCell(dst *core.Screen, board core.Rect, x, y int, glyph [cellWidth]rune, c core.Color) {
	if !board.Contains(x, y) {
		return
	}
	sx := 1 + x*cellWidth
	sy := hudRows + 1 + y
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, c)
	}
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, hud hudInfo) {
	text := fmt.Sprintf("Score: %d  Len: %d  Speed: %dms  Best: %d",
		snap.Score, snap.Length(), snap.Interval.Milliseconds(), hud.best)
	if len([]rune(text)) > dst.Width() {
		text = fmt.Sprintf("Score: %d", snap.Score)
	}
	dst.DrawText(0, 0, text, core.ColorBrightWhite)
}

// drawOverlay draws a framed message box centered on the board frame. The
// frame spans the full screen width.
// It draws nothing and returns false when the box does not fit.
func drawOverlay(dst *core.Screen, frame core.Rect, c core.Color, lines ...string) bool {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	_, cy := frame.Center()
	box := core.NewRect((dst.Width()-boxW)/2, cy-boxH/2, boxW, boxH)

	if boxW > frame.W || boxH > frame.H {
		return false
	}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
	return true
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var r renderer
	return r.render(s)
}

// renderer keeps the styled text of every screen row and restyles only the
// rows whose cells changed since the previous frame. Between two steps the
// snake only touches the head, tail and food rows.
type renderer struct {
	keys []string // Raw runes and colors of each row
	rows []string // Styled output of each row
}

func (r *renderer) render(s *core.Screen) string {
	if len(r.rows) != s.Height() {
		r.keys = make([]string, s.Height())
		r.rows = make([]string, s.Height())
	}

	for y := range s.Height() {
		key := rowKey(s, y)
		if key == r.keys[y] && r.rows[y] != "" {
			continue
		}
		r.keys[y] = key
		r.rows[y] = styleRow(s, y)
	}
	return strings.Join(r.rows, "\n")
}

func rowKey(s *core.Screen, y int) string {
	var b strings.Builder
	b.Grow(s.Width() * 4)
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		b.WriteRune(cell.Rune)
		b.WriteByte(byte(cell.Color))
	}
	return b.String()
}

// styleRow groups adjacent cells of one color into a single styled run.
// Uncolored runs are written as is.
func styleRow(s *core.Screen, y int) string {
	var sb strings.Builder
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color

		var run strings.Builder
		for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
			run.WriteRune(s.GetCell(x, y).Rune)
		}

		style, ok := colorStyles[color]
		if color == core.ColorDefault || !ok {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(style.Render(run.String()))
	}
	return sb.String()
}

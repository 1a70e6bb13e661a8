package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// leaderboardSize is how many session runs the game-over panel lists.
const leaderboardSize = 5

var (
	leaderboardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	leaderboardFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// newLeaderboard creates the session top-runs table. The row of lastID,
// if listed, is selected.
func newLeaderboard(runs []storage.Run, lastID int64) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, len(runs))
	selected := 0
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Steps),
			formatDuration(r.Duration),
		}
		if r.ID == lastID {
			selected = i
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(selected)

	return t
}

// renderLeaderboard returns the titled table, or "" when there is nothing to show.
func renderLeaderboard(runs []storage.Run, lastID int64, stats *storage.BoardStats) string {
	if len(runs) == 0 || stats == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(leaderboardTitleStyle.Render(fmt.Sprintf("SESSION BEST - %s", stats.Board)))
	b.WriteString("\n")
	t := newLeaderboard(runs, lastID)
	b.WriteString(t.View())
	b.WriteString("\n")
	b.WriteString(leaderboardFooterStyle.Render(
		fmt.Sprintf("Runs: %d  Avg: %.1f  High: %d", stats.Runs, stats.AvgScore, stats.HighScore)))
	return b.String()
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

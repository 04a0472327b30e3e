package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// StatCard is a centered figure with a caption: the value on top, an
// optional detail line, then the label.
type StatCard struct {
	Value  string         // "¥566.00"
	Detail string         // "2024-01-01 → 2024-03-01"
	Label  string         // "Total cost"
	Width  int            // minimum 8
	Color  lipgloss.Color // value color; bright text when empty
}

func (s StatCard) lines() []string {
	w := max(s.Width, 8)
	color := s.Color
	if color == "" {
		color = theme.ColorBrightText
	}

	out := []string{CenterText(lipgloss.NewStyle().Foreground(color).Bold(true).Render(s.Value), w)}
	if s.Detail != "" {
		out = append(out, CenterText(theme.MutedStyle.Render(s.Detail), w))
	}
	return append(out, CenterText(theme.MutedStyle.Render(s.Label), w))
}

// RenderStatRow lays cards out side by side, gap columns apart. Shorter
// cards are padded so every card keeps its column.
func RenderStatRow(cards []StatCard, gap int) string {
	blocks := make([][]string, len(cards))
	for i, c := range cards {
		blocks[i] = c.lines()
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}

// StatCardWidth splits width evenly across n cards separated by gap.
func StatCardWidth(width, n, gap int) int {
	if n < 1 {
		return width
	}
	return (width - gap*(n-1)) / n
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// TabBar renders a numbered tab bar with active highlighting and a bottom separator.
type TabBar struct {
	ViewNames   []string
	ActiveIndex int
	Width       int
	Location    string // where the ledger is stored, shown on the right
}

// Package-level cached styles for tab bar rendering.
var (
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(theme.ColorGold).
			Background(theme.ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(theme.ColorMutedText).
				Padding(0, 1)
)

// Render returns the styled tab bar with bottom separator line.
func (tb TabBar) Render() string {
	var tabs []string
	for i, name := range tb.ViewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == tb.ActiveIndex {
			tabs = append(tabs, tabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(label))
		}
	}

	line := strings.Join(tabs, "")

	if tb.Location != "" {
		room := tb.Width - 2 - lipgloss.Width(line) - 2
		if room > 8 {
			loc := truncateLeft(tb.Location, room)
			pad := tb.Width - 2 - lipgloss.Width(line) - lipgloss.Width(loc)
			line += strings.Repeat(" ", pad) + theme.MutedStyle.Render(loc)
		}
	}

	tabLine := lipgloss.NewStyle().
		Width(tb.Width).
		MaxWidth(tb.Width).
		Padding(0, 1).
		Render(line)

	sep := theme.MutedStyle.Render(strings.Repeat("─", tb.Width))

	return tabLine + "\n" + sep
}

// truncateLeft keeps the tail of a path, which is the informative part.
func truncateLeft(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[1:]
	}
	return "…" + string(runes)
}

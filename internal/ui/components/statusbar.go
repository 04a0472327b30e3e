package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// KeyHint is one "key description" pair in the status bar.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusBar is a rule above a line of key hints, with an optional status
// text pinned to the right edge. Hints that do not fit are dropped from the
// end.
type StatusBar struct {
	Width  int
	Hints  []KeyHint
	Status string
}

var hintColors = []lipgloss.Color{
	theme.ColorSkyBlue,
	theme.ColorLavender,
	theme.ColorMauve,
	theme.ColorPeach,
	theme.ColorGold,
}

func (s StatusBar) Render() string {
	rule := theme.MutedStyle.Render(strings.Repeat("─", s.Width))

	status := ""
	if s.Status != "" {
		status = theme.MutedStyle.Render(s.Status) + "  "
	}
	room := s.Width - 2 - lipgloss.Width(status)

	line := ""
	for i, h := range s.Hints {
		key := lipgloss.NewStyle().Foreground(hintColors[i%len(hintColors)]).Bold(true).Render(h.Key)
		part := key + " " + theme.MutedStyle.Render(h.Desc)
		if line != "" {
			part = "  " + part
		}
		if lipgloss.Width(line+part) > room {
			break
		}
		line += part
	}

	return rule + "\n" + "  " + PadRight(line, room) + status
}

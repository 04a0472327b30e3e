package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// Card frames a view. Full cards draw a rounded border with the title set
// into the top edge; compact cards (small terminals) drop the border and
// underline the title instead.
type Card struct {
	Title   string // may carry ANSI styling
	Width   int    // outer width
	Content string
	Footer  string // optional key hints, right-aligned and muted
	Compact bool
}

// InnerWidth is the width available to Content.
func (c Card) InnerWidth() int {
	if c.Compact {
		return c.Width - 2
	}
	return c.Width - 4
}

func (c Card) Render() string {
	body := c.Content
	if c.Footer != "" {
		hint := PadLeft(theme.MutedStyle.Render(c.Footer), c.InnerWidth())
		if body == "" {
			body = hint
		} else {
			body += "\n" + hint
		}
	}
	if c.Compact {
		return c.compact(body)
	}
	return c.bordered(body)
}

func (c Card) compact(body string) string {
	rule := theme.MutedStyle.Render("  " + strings.Repeat("─", max(c.Width-4, 1)))
	if body == "" {
		return c.Title + "\n" + rule
	}
	return c.Title + "\n" + rule + "\n" + body
}

func (c Card) bordered(body string) string {
	border := lipgloss.NewStyle().Foreground(theme.ColorBorder)
	span := c.Width - 2

	label := ""
	if c.Title != "" {
		label = " " + c.Title + " "
	}
	fill := max(span-1-lipgloss.Width(label), 0)

	lines := make([]string, 0, strings.Count(body, "\n")+3)
	lines = append(lines, border.Render("╭─")+label+border.Render(strings.Repeat("─", fill)+"╮"))
	edge := border.Render("│")
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, edge+" "+PadRight(line, span-2)+" "+edge)
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", span)+"╯"))
	return strings.Join(lines, "\n")
}

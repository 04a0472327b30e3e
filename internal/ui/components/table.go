package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

// Package-level cached styles for row/cursor rendering.
var (
	rowEvenStyle = lipgloss.NewStyle()
	rowOddStyle  = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorStyle  = lipgloss.NewStyle().Foreground(theme.ColorGold)
	cursorActive = cursorStyle.Render("▶ ")
	cursorBlank  = "  "
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// CursorIndicator returns "▶ " in Gold if selected, "  " otherwise.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return cursorBlank
}

// Column describes one table column. Width is the minimum; Flex columns
// share whatever space is left.
type Column struct {
	Header string
	Width  int
	Flex   bool
	Align  lipgloss.Position
	Color  lipgloss.Color
}

// Table renders rows of plain-text cells under a colored header.
type Table struct {
	Columns []Column
	Rows    [][]string
	Width   int // available width, including the cursor gutter
	Height  int // max body rows shown
	Cursor  int // highlighted row, -1 for none
	Offset  int // first visible row

	// CellColor overrides a cell's foreground. Return "" to keep the column color.
	CellColor func(row, col int) lipgloss.Color
}

// ScrollOffset returns the first visible row that keeps cursor on screen.
func ScrollOffset(cursor, offset, visible int) int {
	if visible < 1 {
		visible = 1
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Columns))
	used := len(cursorBlank) + len(t.Columns) - 1
	flex := 0
	for i, c := range t.Columns {
		widths[i] = c.Width
		used += c.Width
		if c.Flex {
			flex++
		}
	}
	if remaining := t.Width - used; remaining > 0 && flex > 0 {
		share := remaining / flex
		extra := remaining - share*flex
		for i, c := range t.Columns {
			if !c.Flex {
				continue
			}
			widths[i] += share
			if extra > 0 {
				widths[i]++
				extra--
			}
		}
	}
	return widths
}

// Render returns header, separator and the visible window of rows.
func (t Table) Render() string {
	widths := t.widths()

	var headerCells []string
	sepWidth := len(t.Columns) - 1
	for i, c := range t.Columns {
		color := c.Color
		if color == "" {
			color = theme.ColorBrightText
		}
		s := lipgloss.NewStyle().Width(widths[i]).Align(c.Align).Foreground(color).Bold(true)
		headerCells = append(headerCells, s.Render(Truncate(c.Header, widths[i])))
		sepWidth += widths[i]
	}

	lines := []string{
		cursorBlank + strings.Join(headerCells, " "),
		cursorBlank + theme.MutedStyle.Render(strings.Repeat("─", sepWidth)),
	}

	height := t.Height
	if height < 1 {
		height = len(t.Rows)
	}
	end := min(t.Offset+height, len(t.Rows))
	for r := t.Offset; r < end; r++ {
		selected := r == t.Cursor
		var cells []string
		for i, c := range t.Columns {
			text := ""
			if i < len(t.Rows[r]) {
				text = t.Rows[r][i]
			}
			color := c.Color
			if t.CellColor != nil {
				if override := t.CellColor(r, i); override != "" {
					color = override
				}
			}
			if color == "" {
				color = theme.ColorBodyText
			}
			s := lipgloss.NewStyle().Width(widths[i]).Align(c.Align).Foreground(color)
			if selected {
				s = s.Background(theme.ColorElevatedBg).Bold(true)
			}
			cells = append(cells, s.Render(Truncate(text, widths[i])))
		}
		gap := " "
		if selected {
			gap = lipgloss.NewStyle().Background(theme.ColorElevatedBg).Render(" ")
		}
		lines = append(lines, CursorIndicator(selected)+strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

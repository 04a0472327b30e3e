package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                    string
		cursor, offset, visible int
		want                    int
	}{
		{"cursor inside window", 3, 0, 5, 0},
		{"cursor below window", 7, 0, 5, 3},
		{"cursor above window", 1, 4, 5, 1},
		{"zero visible treated as one", 4, 0, 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollOffset(tt.cursor, tt.offset, tt.visible); got != tt.want {
				t.Errorf("ScrollOffset(%d, %d, %d) = %d, want %d", tt.cursor, tt.offset, tt.visible, got, tt.want)
			}
		})
	}
}

func sampleTable() Table {
	return Table{
		Columns: []Column{
			{Header: "#", Width: 3, Align: lipgloss.Right},
			{Header: "Date", Width: 10},
			{Header: "Station", Width: 8, Flex: true},
		},
		Rows: [][]string{
			{"1", "2024-01-01", "Shell"},
			{"2", "2024-01-15", "中石化"},
			{"3", "2024-02-01", "BP"},
		},
		Width:  40,
		Cursor: 1,
	}
}

func TestTable_RenderRowsAndHeader(t *testing.T) {
	out := sampleTable().Render()
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5 (header, separator, 3 rows)", len(lines))
	}
	if !strings.Contains(lines[0], "Date") {
		t.Error("header should contain column names")
	}
	if !strings.Contains(lines[3], "▶") {
		t.Error("cursor row should carry the indicator")
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestTable_WindowedRows(t *testing.T) {
	tbl := sampleTable()
	tbl.Height = 1
	tbl.Offset = 2
	tbl.Cursor = -1
	lines := strings.Split(tbl.Render(), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[2], "BP") {
		t.Errorf("expected third row, got %q", lines[2])
	}
}

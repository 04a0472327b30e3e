package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCard_InnerWidth(t *testing.T) {
	tests := []struct {
		compact bool
		want    int
	}{
		{false, 76},
		{true, 78},
	}
	for _, tt := range tests {
		c := Card{Width: 80, Compact: tt.compact}
		if got := c.InnerWidth(); got != tt.want {
			t.Errorf("InnerWidth(compact=%v) = %d, want %d", tt.compact, got, tt.want)
		}
	}
}

func TestCard_BorderedLinesShareWidth(t *testing.T) {
	tests := []struct {
		name string
		card Card
	}{
		{"plain", Card{Title: "Records", Width: 50, Content: "2024-01-01\n2024-01-15"}},
		{"wide runes", Card{Title: "油耗记录", Width: 40, Content: "加油站 Shell"}},
		{"footer", Card{Title: "Records", Width: 44, Content: "row", Footer: "a: add  d: delete"}},
		{"empty", Card{Width: 30}},
		{"title wider than card", Card{Title: strings.Repeat("x", 40), Width: 20, Content: "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.card.Render()
			lines := strings.Split(out, "\n")
			if !strings.HasPrefix(lines[0], "╭") {
				t.Fatalf("first line %q is not a top border", lines[0])
			}
			// The top border may overflow when the title does not fit.
			for i, line := range lines[1:] {
				if w := lipgloss.Width(line); w != tt.card.Width {
					t.Errorf("line %d width = %d, want %d: %q", i+1, w, tt.card.Width, line)
				}
			}
		})
	}
}

func TestCard_FooterBelowContent(t *testing.T) {
	c := Card{Title: "T", Width: 40, Content: "body", Footer: "hint"}
	lines := strings.Split(c.Render(), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[1], "body") || !strings.Contains(lines[2], "hint") {
		t.Errorf("footer should follow content: %q", lines[1:3])
	}
	if !strings.HasSuffix(strings.TrimSuffix(lines[2], "│"), "hint ") {
		t.Errorf("footer should be right-aligned: %q", lines[2])
	}
}

func TestCard_Compact(t *testing.T) {
	c := Card{Title: "Stats", Width: 40, Content: "Content", Compact: true}
	out := c.Render()
	if strings.ContainsAny(out, "╭╯│") {
		t.Error("compact card should not draw a border")
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 3 || lines[0] != "Stats" || !strings.Contains(lines[1], "─") || lines[2] != "Content" {
		t.Errorf("unexpected compact layout: %q", lines)
	}

	c.Content = ""
	if got := len(strings.Split(c.Render(), "\n")); got != 2 {
		t.Errorf("empty compact card has %d lines, want 2", got)
	}
}

package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadAndCenter(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := CenterText("ab", 6); got != "  ab  " {
		t.Errorf("CenterText = %q", got)
	}
	// Wide runes occupy two cells each.
	if got := lipgloss.Width(PadRight("中石化", 8)); got != 8 {
		t.Errorf("PadRight CJK width = %d, want 8", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Shell", 10, "Shell"},
		{"Shell Main Street", 8, "Shell M…"},
		{"中石化加油站", 7, "中石化…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestJoinHorizontal(t *testing.T) {
	got := JoinHorizontal([][]string{{"a", "bb"}, {"c"}}, 1)
	want := []string{"a  c", "bb  "}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

package views

import tea "github.com/charmbracelet/bubbletea"

// KeyHandledCmd is returned by view Update methods to signal that a key
// was consumed and should not propagate to app-level scroll or global
// handlers. It is a no-op cmd: bubbletea discards nil messages.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }

// listNav is the cursor and scroll state shared by the table views.
type listNav struct {
	cursor int
	scroll int
	page   int // rows per page, set at render time
}

// clamp keeps the cursor inside [0, n).
func (l *listNav) clamp(n int) {
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// handleKey moves the cursor for navigation keys and reports whether the
// key was one of them.
func (l *listNav) handleKey(key string, n int) bool {
	if n == 0 {
		return false
	}
	page := max(l.page, 1)
	switch key {
	case "j", "down":
		l.cursor++
	case "k", "up":
		l.cursor--
	case "pgdown":
		l.cursor += page
	case "pgup":
		l.cursor -= page
	case "g", "home":
		l.cursor = 0
	case "G", "end":
		l.cursor = n - 1
	default:
		return false
	}
	l.clamp(n)
	return true
}

package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/zhang1786/fuel-tracker-app/internal/theme"
)

const notificationTTL = 5 * time.Second

// Notification is a one-line banner shown under the active view.
type Notification struct {
	Message   string
	IsError   bool
	CreatedAt time.Time
}

func (n *Notification) expired(at time.Time) bool {
	return at.Sub(n.CreatedAt) > notificationTTL
}

// NotificationManager holds at most one banner. A newer banner replaces
// the current one.
type NotificationManager struct {
	active  *Notification
	bell    bool
	enabled bool
	now     func() time.Time
}

func NewNotificationManager(enabled, bell bool) *NotificationManager {
	return &NotificationManager{enabled: enabled, bell: bell, now: time.Now}
}

// SetMessage shows an informational banner when notifications are on.
func (nm *NotificationManager) SetMessage(msg string) {
	if nm.enabled {
		nm.show(msg, false)
	}
}

// SetError always shows, regardless of the notifications setting.
func (nm *NotificationManager) SetError(msg string) {
	nm.show(msg, true)
}

func (nm *NotificationManager) show(msg string, isErr bool) {
	nm.active = &Notification{Message: msg, IsError: isErr, CreatedAt: nm.now()}
}

// Active returns the banner to draw, or nil once it has expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil || nm.active.expired(nm.now()) {
		return nil
	}
	return nm.active
}

// Expire drops a stale banner. View must stay side-effect free, so Update calls this.
func (nm *NotificationManager) Expire() {
	if nm.Active() == nil {
		nm.active = nil
	}
}

// RenderBanner centres the active message across width. Error banners
// are prefixed with BEL when the bell is enabled.
func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	fg, prefix := theme.ColorMauve, ""
	if n.IsError {
		fg = theme.ColorBad
		if nm.bell {
			prefix = "\a"
		}
	}
	return prefix + lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(n.Message)
}

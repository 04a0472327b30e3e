package ui

import (
	"strings"
	"testing"
	"time"
)

func TestNotificationManager_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	nm := NewNotificationManager(true, false)
	nm.now = func() time.Time { return now }

	nm.SetMessage("Record added")
	if nm.Active() == nil {
		t.Fatal("fresh notification should be active")
	}

	now = now.Add(6 * time.Second)
	if nm.Active() != nil {
		t.Error("notification should expire after the TTL")
	}
	nm.Expire()
	if nm.active != nil {
		t.Error("Expire should clear the stale notification")
	}
}

func TestNotificationManager_DisabledStillShowsErrors(t *testing.T) {
	nm := NewNotificationManager(false, true)
	nm.SetMessage("Record added")
	if nm.Active() != nil {
		t.Error("info notifications are off")
	}
	nm.SetError("not saved")
	banner := nm.RenderBanner(40)
	if !strings.HasPrefix(banner, "\a") {
		t.Error("error banner should ring the bell")
	}
	if !strings.Contains(banner, "not saved") {
		t.Error("banner should carry the message")
	}
}

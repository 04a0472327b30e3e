package overlays

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/i18n"
)

func typeText(f *AddForm, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func special(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestAddForm_Prefill(t *testing.T) {
	last := domain.NewRecord("2024-01-01", 1000, 40, 7.5, "Shell", "")
	f := NewAddForm("2024-02-01", &last)

	in := f.Input()
	if in.Date != "2024-02-01" || in.FuelPrice != "7.5" || in.Station != "Shell" {
		t.Errorf("prefill = %+v", in)
	}
	if in.Odometer != "" {
		t.Errorf("odometer should start empty, got %q", in.Odometer)
	}
}

func TestAddForm_SubmitValid(t *testing.T) {
	f := NewAddForm("2024-02-01", nil)
	typeText(f, "1500")
	f.Update(special(tea.KeyTab))
	typeText(f, "35")
	f.Update(special(tea.KeyTab))
	typeText(f, "7.6")

	closed, cmd := f.Update(special(tea.KeyEnter))
	if !closed || cmd == nil {
		t.Fatalf("valid submit should close with a command, closed=%v", closed)
	}
	msg, ok := cmd().(AddRecordMsg)
	if !ok {
		t.Fatalf("expected AddRecordMsg, got %T", cmd())
	}
	if msg.Input.Odometer != "1500" || msg.Input.FuelAmount != "35" || msg.Input.FuelPrice != "7.6" {
		t.Errorf("submitted input = %+v", msg.Input)
	}
}

func TestAddForm_InvalidStaysOpen(t *testing.T) {
	f := NewAddForm("2024-02-01", nil)
	typeText(f, "abc")
	f.Update(special(tea.KeyTab))
	typeText(f, "35")
	f.Update(special(tea.KeyTab))
	typeText(f, "7.6")

	closed, _ := f.Update(special(tea.KeyEnter))
	if closed {
		t.Fatal("invalid input must keep the form open")
	}
	if !strings.Contains(f.Err(), "odometer") {
		t.Errorf("error should name the field, got %q", f.Err())
	}
	if f.focus != fieldOdometer {
		t.Errorf("focus = %d, want odometer field", f.focus)
	}
}

func TestAddForm_EnterOnEmptyFieldAdvances(t *testing.T) {
	f := NewAddForm("2024-02-01", nil)
	closed, _ := f.Update(special(tea.KeyEnter))
	if closed {
		t.Fatal("enter on an empty field should move on, not submit")
	}
	if f.focus != fieldFuelAmount {
		t.Errorf("focus = %d, want %d", f.focus, fieldFuelAmount)
	}
}

func TestAddForm_EscCancels(t *testing.T) {
	f := NewAddForm("2024-02-01", nil)
	closed, cmd := f.Update(special(tea.KeyEsc))
	if !closed || cmd != nil {
		t.Errorf("esc: closed=%v cmd=%v, want true, nil", closed, cmd != nil)
	}
}

func TestAddForm_Render(t *testing.T) {
	i18n.SetLanguage("en")
	f := NewAddForm("2024-02-01", nil)
	out := f.Render(100, 40)
	for _, want := range []string{"Add Fuel Record", "Odometer (km)", "2024-02-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("form missing %q", want)
		}
	}
}

func TestSettings_SaveOnClose(t *testing.T) {
	i18n.SetLanguage("en")
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewSettingsOverlay(config.DefaultConfig(), path)

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	closed, cmd := s.Update(special(tea.KeyEsc))
	if !closed || cmd == nil {
		t.Fatal("dirty settings should close with a change message")
	}
	msg := cmd().(ConfigChangedMsg)
	if msg.SaveErr != nil {
		t.Fatalf("save error: %v", msg.SaveErr)
	}
	if msg.Config.General.Language != "zh" {
		t.Errorf("language = %q, want zh", msg.Config.General.Language)
	}

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved.General.Language != "zh" {
		t.Errorf("saved language = %q, want zh", saved.General.Language)
	}
}

func TestSettings_CloseWithoutChanges(t *testing.T) {
	s := NewSettingsOverlay(config.DefaultConfig(), filepath.Join(t.TempDir(), "config.toml"))
	closed, cmd := s.Update(special(tea.KeyEsc))
	if !closed || cmd != nil {
		t.Error("clean settings should close without a command")
	}
}

func TestHelp_Render(t *testing.T) {
	i18n.SetLanguage("en")
	out := NewHelpOverlay().Render(100, 40)
	for _, want := range []string{"Views", "Ledger", "General", "Add record", "Delete selected record"} {
		if !strings.Contains(out, want) {
			t.Errorf("help should contain %q", want)
		}
	}
}

func TestSettings_CycleBackendWraps(t *testing.T) {
	i18n.SetLanguage("en")
	s := NewSettingsOverlay(config.DefaultConfig(), filepath.Join(t.TempDir(), "config.toml"))
	for i := 0; i < 4; i++ {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if got := s.cfg.Storage.Backend; got != "redis" {
		t.Errorf("backend = %q, want redis after cycling left from file", got)
	}

	out := s.Render(100, 40)
	for _, want := range []string{"Storage backend", "redis *", "Applies on next start"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings missing %q", want)
		}
	}
}

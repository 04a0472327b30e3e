package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent", "config.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"interval", cfg.General.Interval, 10},
		{"language", cfg.General.Language, "en"},
		{"backend", cfg.Storage.Backend, "file"},
		{"path", cfg.Storage.Path, ""},
		{"addr", cfg.Server.Addr, ":5000"},
		{"burst", cfg.Server.Burst, 10},
		{"log level", cfg.Logging.Level, "info"},
		{"notifications", cfg.Notifications.Enabled, true},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.Language = "zh"
	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = "/var/lib/fuel/ledger.db"
	cfg.Server.RateLimit = 0.5
	cfg.Logging.JSON = true
	cfg.Notifications.Bell = true

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip:\n got  %+v\n want %+v", got, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.toml", "[server]\naddr = \"127.0.0.1:8080\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.Burst != 10 || cfg.Storage.Backend != "file" {
		t.Errorf("untouched keys lost their defaults: %+v", cfg)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeFile(t, "bad.toml", "[storage\nbackend = ")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if !strings.Contains(err.Error(), "bad.toml") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestSave_OwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perms.toml")
	if err := Save(DefaultConfig(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("mode = %o, want 600", perm)
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != "config.toml" {
		t.Errorf("DefaultPath() = %q", p)
	}
}

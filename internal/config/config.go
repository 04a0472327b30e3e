package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mirrors config.toml section by section.
type Config struct {
	General       GeneralConfig       `toml:"general"`
	Storage       StorageConfig       `toml:"storage"`
	Server        ServerConfig        `toml:"server"`
	Logging       LoggingConfig       `toml:"logging"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type GeneralConfig struct {
	Interval int    `toml:"interval"` // TUI refresh, seconds
	Language string `toml:"language"`
}

// StorageConfig selects the backing store. An empty Path means the
// default ledger file under the data directory.
type StorageConfig struct {
	Backend  string `toml:"backend"` // file, sqlite or redis
	Path     string `toml:"path"`
	RedisURL string `toml:"redis_url"`
	RedisKey string `toml:"redis_key"`
}

type ServerConfig struct {
	Addr      string  `toml:"addr"`
	RateLimit float64 `toml:"rate_limit"` // mutating requests per second
	Burst     int     `toml:"burst"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
	File  string `toml:"file"`
}

type NotificationsConfig struct {
	Enabled bool `toml:"enabled"`
	Bell    bool `toml:"bell"`
}

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Interval: 10,
			Language: "en",
		},
		Storage: StorageConfig{
			Backend:  "file",
			RedisURL: "redis://localhost:6379/0",
			RedisKey: "fueltracker:records",
		},
		Server: ServerConfig{
			Addr:      ":5000",
			RateLimit: 5,
			Burst:     10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Bell:    false,
		},
	}
}

// DefaultPath is fueltracker/config.toml under the user config directory,
// or ./config.toml when that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "fueltracker", "config.toml")
}

// Load overlays the file at path onto DefaultConfig. A missing file is not
// an error; keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as TOML, readable only by the owner.
func Save(cfg Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

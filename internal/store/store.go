// Package store persists the fuel ledger. Every backend stores the whole
// ledger and overwrites it in full on each save.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
)

var (
	// ErrNotFound means nothing has been saved at the store location yet.
	ErrNotFound = errors.New("ledger not found")
	// ErrCorrupt means stored data exists but is not a readable ledger.
	ErrCorrupt = parser.ErrCorrupt
)

// Store defines persistence operations for the ledger.
type Store interface {
	// Load returns the saved records in saved order. It fails with
	// ErrNotFound, ErrCorrupt or an I/O error.
	Load(ctx context.Context) ([]domain.FuelRecord, error)
	// Save replaces everything stored with records.
	Save(ctx context.Context, records []domain.FuelRecord) error
	// Location describes where the ledger lives, for logs and watchers.
	Location() string
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Open returns the backend selected by cfg.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case "", BackendFile:
		path, err := pathOrDefault(cfg.Path, "fuel_records.json")
		if err != nil {
			return nil, err
		}
		return NewFileStore(path), nil
	case BackendSQLite:
		path, err := pathOrDefault(cfg.Path, "fuel_records.db")
		if err != nil {
			return nil, err
		}
		return OpenSQLiteStore(path)
	case BackendRedis:
		return NewRedisStore(cfg.RedisURL, cfg.RedisKey)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func pathOrDefault(path, name string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

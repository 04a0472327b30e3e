package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
)

// FileStore keeps the ledger as one indented JSON array file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. Nothing is touched until Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Location() string { return s.path }

func (s *FileStore) Load(ctx context.Context) ([]domain.FuelRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	records, err := parser.ParseDocument(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

// Save writes to a temp file in the same directory and renames it over the
// ledger, so readers never observe a half-written file.
func (s *FileStore) Save(ctx context.Context, records []domain.FuelRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".fuel-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	bw := bufio.NewWriter(tmp)
	if err := parser.EncodeDocument(bw, records); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.path)
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)

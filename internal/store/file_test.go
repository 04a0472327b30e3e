package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
)

func sampleRecords() []domain.FuelRecord {
	return []domain.FuelRecord{
		domain.NewRecord("2024-01-01", 1000, 40, 7.5, "中石化", ""),
		domain.NewRecord("2024-01-15", 1500, 35, 7.6, "Shell", "highway"),
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "fuel_records.json"))
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fuel_records.json")
	s := NewFileStore(path)
	want := sampleRecords()

	require.NoError(t, s.Save(context.Background(), want))
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "中石化", "non-ASCII text should be stored unescaped")
	assert.Contains(t, string(data), "\n  {", "document should be indented")
}

func TestFileStore_SaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fuel_records.json")
	s := NewFileStore(path)
	require.NoError(t, s.Save(context.Background(), nil))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "fuel_records.json"))
	require.NoError(t, s.Save(context.Background(), sampleRecords()))
	require.NoError(t, s.Save(context.Background(), sampleRecords()[:1]))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fuel_records.json", entries[0].Name())
}

func TestFileStore_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"object at top level", `{"date":"2024-01-01"}`},
		{"bad element", `[{"date":"2024-01-01","odometer":1,"fuel_amount":1,"fuel_price":1}, 42]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fuel_records.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewFileStore(path).Load(context.Background())
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestFileStore_SaveFailsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file, so MkdirAll fails.
	s := NewFileStore(filepath.Join(blocker, "fuel_records.json"))
	assert.Error(t, s.Save(context.Background(), sampleRecords()))
}

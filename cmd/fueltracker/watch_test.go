package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/config"
	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/store"
)

func TestWatchLedger_ReloadsExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fuel_records.json")
	opts := &options{cfg: config.DefaultConfig(), logger: zap.NewNop()}

	l := ledger.New(store.NewFileStore(path), zap.NewNop())
	l.Load(context.Background())
	_, err := l.AddRecord(context.Background(), domain.NewRecord("2024-01-01", 100, 10, 7, "", ""))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- opts.watchLedger(ctx, l) }()
	time.Sleep(100 * time.Millisecond)

	other := store.NewFileStore(path)
	require.NoError(t, other.Save(context.Background(), []domain.FuelRecord{
		domain.NewRecord("2024-01-01", 100, 10, 7, "", ""),
		domain.NewRecord("2024-02-01", 600, 30, 7, "", ""),
	}))

	assert.Eventually(t, func() bool { return l.Len() == 2 }, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchLedger did not return after cancel")
	}
}

func TestWatchLedger_OtherBackendsWait(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Backend = store.BackendRedis
	opts := &options{cfg: cfg, logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, opts.watchLedger(ctx, nil))
}

func TestPollInterval(t *testing.T) {
	opts := &options{cfg: config.DefaultConfig()}
	opts.cfg.General.Interval = 0
	assert.Equal(t, time.Second, opts.pollInterval())
	opts.cfg.General.Interval = 30
	assert.Equal(t, 30*time.Second, opts.pollInterval())
}

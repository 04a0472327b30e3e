package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/ledger"
	"github.com/zhang1786/fuel-tracker-app/internal/store"
	"github.com/zhang1786/fuel-tracker-app/internal/watcher"
)

const minPollInterval = time.Second

func (o *options) pollInterval() time.Duration {
	d := time.Duration(o.cfg.General.Interval) * time.Second
	if d < minPollInterval {
		return minPollInterval
	}
	return d
}

// watchLedger reloads l whenever another process rewrites the ledger file.
// It blocks until ctx is done. Only the file backend is watched; for the
// others it just waits.
func (o *options) watchLedger(ctx context.Context, l *ledger.Ledger) error {
	if b := o.cfg.Storage.Backend; b != "" && b != store.BackendFile {
		<-ctx.Done()
		return nil
	}

	events, unsubscribe := l.Subscribe()
	defer unsubscribe()

	path := l.Location()
	w := watcher.New(path, o.pollInterval(), func(string) {
		res := l.Reload(ctx)
		o.logger.Info("ledger changed on disk",
			zap.String("path", path),
			zap.Stringer("status", res.Status),
			zap.Int("records", res.Count))
	})
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	o.logger.Debug("watching ledger", zap.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			// Our own saves are not external changes.
			if ev.Kind != ledger.EventLoaded {
				w.Snapshot()
			}
		}
	}
}

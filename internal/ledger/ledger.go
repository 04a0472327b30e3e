// Package ledger holds the in-memory fuel ledger and keeps it in step with
// its backing store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
	"github.com/zhang1786/fuel-tracker-app/internal/logging"
	"github.com/zhang1786/fuel-tracker-app/internal/parser"
	"github.com/zhang1786/fuel-tracker-app/internal/store"
)

// ErrNotSaved marks a change that was applied in memory but not written to
// the backing store.
var ErrNotSaved = errors.New("ledger not saved")

type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadNotFound
	LoadCorrupt
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadNotFound:
		return "not found"
	case LoadCorrupt:
		return "corrupt"
	case LoadFailed:
		return "failed"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// LoadResult reports how the ledger was populated.
type LoadResult struct {
	Status LoadStatus
	Count  int
	Err    error
}

type EventKind int

const (
	EventLoaded EventKind = iota
	EventAdded
	EventDeleted
	EventImported
)

// Event is sent to subscribers after every change to the ledger.
type Event struct {
	Kind  EventKind
	Count int // records in the ledger after the change
	Saved bool
}

// Ledger is the ordered collection of fill-ups. Records are kept sorted by
// date; fills on the same date stay in insertion order.
type Ledger struct {
	store  store.Store
	logger *zap.Logger

	mu      sync.RWMutex
	records []domain.FuelRecord

	subMu  sync.Mutex
	subs   map[int]chan Event
	nextID int
}

// New returns an empty ledger bound to s. Call Load to read existing data.
func New(s store.Store, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:   s,
		logger:  logging.OrNop(logger).Named("ledger"),
		records: []domain.FuelRecord{},
		subs:    make(map[int]chan Event),
	}
}

// Load replaces the in-memory records with the stored ones. Any failure
// leaves the ledger empty; the result says which failure it was.
func (l *Ledger) Load(ctx context.Context) LoadResult {
	l.mu.Lock()
	res := l.loadLocked(ctx)
	count := len(l.records)
	l.mu.Unlock()

	l.publish(Event{Kind: EventLoaded, Count: count, Saved: true})
	return res
}

// Reload re-reads the store after an external change. Unlike Load, a
// corrupt or unreadable store keeps the current records.
func (l *Ledger) Reload(ctx context.Context) LoadResult {
	l.mu.Lock()
	records, err := l.store.Load(ctx)
	res := classify(len(records), err)
	switch res.Status {
	case LoadOK:
		domain.SortByDate(records)
		l.records = records
	case LoadNotFound:
		l.records = []domain.FuelRecord{}
	default:
		l.logger.Warn("reload failed, keeping current records",
			zap.String("location", l.store.Location()),
			zap.Stringer("status", res.Status),
			zap.Error(err))
	}
	count := len(l.records)
	l.mu.Unlock()

	if res.Status == LoadOK || res.Status == LoadNotFound {
		l.logger.Info("ledger reloaded", zap.Int("records", count))
		l.publish(Event{Kind: EventLoaded, Count: count, Saved: true})
	}
	return res
}

func (l *Ledger) loadLocked(ctx context.Context) LoadResult {
	records, err := l.store.Load(ctx)
	res := classify(len(records), err)
	if res.Status != LoadOK {
		l.records = []domain.FuelRecord{}
		if res.Status == LoadNotFound {
			l.logger.Info("no ledger yet, starting empty", zap.String("location", l.store.Location()))
		} else {
			l.logger.Warn("could not load ledger, starting empty",
				zap.String("location", l.store.Location()),
				zap.Stringer("status", res.Status),
				zap.Error(err))
		}
		return res
	}

	// Hand-edited stores may be out of order.
	domain.SortByDate(records)
	l.records = records
	l.logger.Info("ledger loaded", zap.String("location", l.store.Location()), zap.Int("records", len(records)))
	return res
}

func classify(n int, err error) LoadResult {
	switch {
	case err == nil:
		return LoadResult{Status: LoadOK, Count: n}
	case errors.Is(err, store.ErrNotFound):
		return LoadResult{Status: LoadNotFound, Err: err}
	case errors.Is(err, store.ErrCorrupt):
		return LoadResult{Status: LoadCorrupt, Err: err}
	default:
		return LoadResult{Status: LoadFailed, Err: err}
	}
}

// Save writes the full ledger to the store.
func (l *Ledger) Save(ctx context.Context) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.saveLocked(ctx)
}

// saveLocked ignores cancellation of ctx: once the in-memory change is made
// the write goes through even if the caller has gone away.
func (l *Ledger) saveLocked(ctx context.Context) error {
	if err := l.store.Save(context.WithoutCancel(ctx), l.records); err != nil {
		l.logger.Error("save failed",
			zap.String("location", l.store.Location()),
			zap.Int("records", len(l.records)),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrNotSaved, err)
	}
	l.logger.Debug("ledger saved", zap.Int("records", len(l.records)))
	return nil
}

// AddInput coerces raw field values and adds the resulting record.
// Invalid input leaves the ledger unchanged.
func (l *Ledger) AddInput(ctx context.Context, in domain.RecordInput) (domain.FuelRecord, error) {
	rec, err := domain.ParseRecordInput(in)
	if err != nil {
		return domain.FuelRecord{}, err
	}
	return l.AddRecord(ctx, rec)
}

// AddRecord appends rec, re-sorts by date and persists. If persisting fails
// the record stays in memory and the error wraps ErrNotSaved.
func (l *Ledger) AddRecord(ctx context.Context, rec domain.FuelRecord) (domain.FuelRecord, error) {
	l.mu.Lock()
	l.records = append(l.records, rec)
	domain.SortByDate(l.records)
	err := l.saveLocked(ctx)
	count := len(l.records)
	l.mu.Unlock()

	l.logger.Info("record added",
		zap.String("date", rec.Date),
		zap.Float64("odometer", rec.Odometer),
		zap.Float64("cost", rec.Cost),
		zap.Bool("saved", err == nil))
	l.publish(Event{Kind: EventAdded, Count: count, Saved: err == nil})
	return rec, err
}

// Import adds every record whose date and odometer are not already in the
// ledger, then persists once. Repeats within records are collapsed first.
// It returns how many were added.
func (l *Ledger) Import(ctx context.Context, records []domain.FuelRecord) (int, error) {
	batch := parser.Dedup(records)

	l.mu.Lock()
	known := make(map[string]struct{}, len(l.records))
	for _, r := range l.records {
		known[r.DedupKey()] = struct{}{}
	}
	added := 0
	for _, r := range batch {
		if _, ok := known[r.DedupKey()]; ok {
			continue
		}
		l.records = append(l.records, r)
		added++
	}
	if added == 0 {
		l.mu.Unlock()
		return 0, nil
	}
	domain.SortByDate(l.records)
	err := l.saveLocked(ctx)
	count := len(l.records)
	l.mu.Unlock()

	l.logger.Info("records imported", zap.Int("added", added), zap.Bool("saved", err == nil))
	l.publish(Event{Kind: EventImported, Count: count, Saved: err == nil})
	return added, err
}

// DeleteRecord removes the record at position (0-based, current order).
// An out-of-range position reports false and writes nothing.
func (l *Ledger) DeleteRecord(ctx context.Context, position int) (bool, error) {
	l.mu.Lock()
	if position < 0 || position >= len(l.records) {
		l.mu.Unlock()
		return false, nil
	}
	removed := l.records[position]
	l.records = append(l.records[:position:position], l.records[position+1:]...)
	err := l.saveLocked(ctx)
	count := len(l.records)
	l.mu.Unlock()

	l.logger.Info("record deleted",
		zap.Int("position", position),
		zap.String("date", removed.Date),
		zap.Bool("saved", err == nil))
	l.publish(Event{Kind: EventDeleted, Count: count, Saved: err == nil})
	return true, err
}

// Records returns a copy of the ledger in current order.
func (l *Ledger) Records() []domain.FuelRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.FuelRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

func (l *Ledger) Efficiency() []domain.EfficiencyEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.ComputeEfficiency(l.records)
}

func (l *Ledger) Statistics() domain.Statistics {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.ComputeStatistics(l.records)
}

// Snapshot returns the statistics and a copy of the records as of the same
// moment.
func (l *Ledger) Snapshot() (domain.Statistics, []domain.FuelRecord) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.FuelRecord, len(l.records))
	copy(out, l.records)
	return domain.ComputeStatistics(out), out
}

func (l *Ledger) Monthly() []domain.MonthlyAggregate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return domain.AggregateMonthly(l.records)
}

// Location is where the backing store keeps the ledger.
func (l *Ledger) Location() string {
	return l.store.Location()
}

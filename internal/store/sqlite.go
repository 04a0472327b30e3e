package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/zhang1786/fuel-tracker-app/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS fuel_records (
    position    INTEGER PRIMARY KEY,
    date        TEXT NOT NULL,
    odometer    REAL NOT NULL,
    fuel_amount REAL NOT NULL,
    fuel_price  REAL NOT NULL,
    station     TEXT NOT NULL DEFAULT '',
    note        TEXT NOT NULL DEFAULT '',
    cost        REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS ledger_meta (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// SQLiteStore keeps the ledger in a SQLite database, one row per record.
// The position column preserves ledger order.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (or creates) the database at path and runs migrations.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Location() string { return s.path }

// Load returns ErrNotFound until the first Save, even though the tables exist.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.FuelRecord, error) {
	var savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM ledger_meta WHERE key = 'saved_at'`).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger meta: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, odometer, fuel_amount, fuel_price, station, note, cost
		FROM fuel_records
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []domain.FuelRecord{}
	for rows.Next() {
		var r domain.FuelRecord
		if err := rows.Scan(&r.Date, &r.Odometer, &r.FuelAmount, &r.FuelPrice, &r.Station, &r.Note, &r.Cost); err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrCorrupt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Save replaces every row in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, records []domain.FuelRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fuel_records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fuel_records (position, date, odometer, fuel_amount, fuel_price, station, note, cost)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, i, r.Date, r.Odometer, r.FuelAmount, r.FuelPrice, r.Station, r.Note, r.Cost); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ledger_meta (key, value) VALUES ('saved_at', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("update ledger meta: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)

// Package sqlite implements the roll journal on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rollcraft/rollcraft/internal/storage/sqlite/migrations"
)

// Record is one journaled roll: the source token, the individual die
// values in roll order, their total, and when the roll happened.
type Record struct {
	ID       int64
	Token    string
	Values   []uint
	Total    uint
	RolledAt time.Time
}

// Store provides the SQLite-backed roll journal.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

// Open opens a roll journal at the provided path and applies embedded
// migrations before handing the store to callers.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := applyMigrations(sqlDB, migrations.RollsFS, "rolls"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close closes the underlying SQLite database. Nil-safe so callers can
// defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendRoll journals a single roll outcome. The roll timestamp is taken
// from the store clock at append time.
func (s *Store) AppendRoll(ctx context.Context, token string, values []uint, total uint) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("journal is not open")
	}

	encoded, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode roll values: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		"INSERT INTO rolls (token, dice_values, total, rolled_at) VALUES (?, ?, ?, ?)",
		token, string(encoded), int64(total), s.clock().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append roll: %w", err)
	}
	return nil
}

// RecentRolls returns up to limit journaled rolls, newest first.
func (s *Store) RecentRolls(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("journal is not open")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT id, token, dice_values, total, rolled_at FROM rolls ORDER BY rolled_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query rolls: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		var encoded string
		var total, rolledAt int64
		if err := rows.Scan(&record.ID, &record.Token, &encoded, &total, &rolledAt); err != nil {
			return nil, fmt.Errorf("scan roll: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &record.Values); err != nil {
			return nil, fmt.Errorf("decode roll values: %w", err)
		}
		record.Total = uint(total)
		record.RolledAt = time.UnixMilli(rolledAt).UTC()
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rolls: %w", err)
	}
	return records, nil
}

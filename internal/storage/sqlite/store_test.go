package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "rolls.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rolls.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	// Reopening must not re-run applied migrations.
	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close reopened store: %v", err)
	}
}

func TestAppendAndRecentRolls(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	store.clock = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	if err := store.AppendRoll(ctx, "2d6", []uint{3, 5}, 8); err != nil {
		t.Fatalf("append roll: %v", err)
	}
	if err := store.AppendRoll(ctx, "1d20", []uint{17}, 17); err != nil {
		t.Fatalf("append roll: %v", err)
	}
	if err := store.AppendRoll(ctx, "4d6", []uint{1, 2, 3, 4}, 10); err != nil {
		t.Fatalf("append roll: %v", err)
	}

	records, err := store.RecentRolls(ctx, 2)
	if err != nil {
		t.Fatalf("recent rolls: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Token != "4d6" {
		t.Fatalf("newest record token = %q, want %q", records[0].Token, "4d6")
	}
	if !reflect.DeepEqual(records[0].Values, []uint{1, 2, 3, 4}) {
		t.Fatalf("newest record values = %v", records[0].Values)
	}
	if records[0].Total != 10 {
		t.Fatalf("newest record total = %d, want 10", records[0].Total)
	}
	if records[1].Token != "1d20" {
		t.Fatalf("second record token = %q, want %q", records[1].Token, "1d20")
	}

	if !records[0].RolledAt.After(records[1].RolledAt) {
		t.Fatalf("expected newest-first ordering, got %v then %v", records[0].RolledAt, records[1].RolledAt)
	}
}

func TestRecentRollsRequiresPositiveLimit(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecentRolls(context.Background(), 0); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

func TestCloseNilSafe(t *testing.T) {
	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func TestExtractUpMigration(t *testing.T) {
	content := "-- +migrate Up\nCREATE TABLE t (id INTEGER);\n-- +migrate Down\nDROP TABLE t;\n"
	up := extractUpMigration(content)
	if up != "\nCREATE TABLE t (id INTEGER);\n" {
		t.Fatalf("unexpected up section %q", up)
	}

	// No markers means the whole file is the up migration.
	plain := "CREATE TABLE t (id INTEGER);"
	if extractUpMigration(plain) != plain {
		t.Fatalf("expected unmarked content returned verbatim")
	}
}

package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func TestOpen_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshots.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	ctx := context.Background()
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal mode = %s, want wal", mode)
	}
	if err := db.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck: %v", err)
	}
	if db.Path() != path {
		t.Errorf("Path = %s, want %s", db.Path(), path)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if !errors.Is(db.HealthCheck(ctx), ErrClosed) {
		t.Error("expected ErrClosed after Close")
	}
	if _, err := db.BeginTx(ctx, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("BeginTx after Close = %v, want ErrClosed", err)
	}
}

func TestMigrator(t *testing.T) {
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	m, err := NewMigrator(db)
	if err != nil {
		t.Fatalf("NewMigrator: %v", err)
	}

	applied, err := m.MigrateUp(ctx)
	if err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	if len(applied) == 0 {
		t.Fatal("expected at least one migration")
	}

	t.Run("Up is idempotent", func(t *testing.T) {
		again, err := m.MigrateUp(ctx)
		if err != nil || len(again) != 0 {
			t.Errorf("second MigrateUp applied %d (%v)", len(again), err)
		}
	})

	t.Run("Status reports applied", func(t *testing.T) {
		status, err := m.Status(ctx)
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		for _, mig := range status {
			if !mig.Applied {
				t.Errorf("migration %d not applied", mig.Version)
			}
		}
	})

	t.Run("Down then up", func(t *testing.T) {
		if err := m.MigrateDown(ctx); err != nil {
			t.Fatalf("MigrateDown: %v", err)
		}
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE name = 'snapshots'").Scan(&name)
		if !errors.Is(err, sql.ErrNoRows) {
			t.Errorf("expected snapshots table dropped, got %q (%v)", name, err)
		}
		if _, err := m.MigrateUp(ctx); err != nil {
			t.Fatalf("re-applying: %v", err)
		}
	})
}

func TestWithTransaction_RollsBack(t *testing.T) {
	db, err := NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err := db.Exec("CREATE TABLE t (v INTEGER)"); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	err = db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO t VALUES (1)"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected rollback, found %d rows", n)
	}
}

func TestParseMigration(t *testing.T) {
	up, down := parseMigration("-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;\n")
	if up != "CREATE TABLE a (x INT);" || down != "DROP TABLE a;" {
		t.Errorf("unexpected sections %q / %q", up, down)
	}

	up, down = parseMigration("CREATE TABLE b (y INT);")
	if up != "CREATE TABLE b (y INT);" || down != "" {
		t.Errorf("unexpected sections without markers %q / %q", up, down)
	}
}

func TestSplitStatements(t *testing.T) {
	got := splitStatements("-- note\nINSERT INTO t VALUES ('a;b');\nSELECT 1;\n\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(got), got)
	}
	if got[0] != "INSERT INTO t VALUES ('a;b')" {
		t.Errorf("first statement = %q", got[0])
	}
}

package migration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"portfolio/internal/database"
	"portfolio/internal/database/sqlite"
)

func openSQLite(t *testing.T) database.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "portfolio.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_EmbeddedOrdered(t *testing.T) {
	migs, err := Load(Embedded())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migs) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(migs))
	}
	for i := 1; i < len(migs); i++ {
		if migs[i].Version <= migs[i-1].Version {
			t.Fatalf("migrations not ordered: %d after %d", migs[i].Version, migs[i-1].Version)
		}
	}
}

func TestLoad_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"V1__a.sql": {Data: []byte("CREATE TABLE a (id INTEGER)")},
		"V1__b.sql": {Data: []byte("CREATE TABLE b (id INTEGER)")},
	}
	if _, err := Load(fsys); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestRunner_IdempotentOnSQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	r := Runner{Dialect: db.Dialect()}

	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var n int
	if err := db.SQLDB().QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	migs, _ := Load(Embedded())
	if n != len(migs) {
		t.Fatalf("expected %d applied migrations, got %d", len(migs), n)
	}

	for _, table := range []string{"profile", "skills", "projects", "services"} {
		if _, err := db.Exec(ctx, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestRunner_ChecksumMismatch(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	first := fstest.MapFS{"V1__init.sql": {Data: []byte("CREATE TABLE t (id INTEGER)")}}
	if err := (Runner{FS: first, Dialect: db.Dialect()}).Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	edited := fstest.MapFS{"V1__init.sql": {Data: []byte("CREATE TABLE t (id INTEGER, name TEXT)")}}
	err := (Runner{FS: edited, Dialect: db.Dialect()}).Run(ctx, db.SQLDB())
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

// Package testsupport provides database and fixture helpers shared by the
// integration tests.
package testsupport

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// OpenDB opens a private in-memory SQLite database wrapped in bun and
// registers cleanup with the test. Foreign key enforcement is enabled so
// cascade-delete mappings behave like they would on a production database.
func OpenDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=1")
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	// A single connection keeps the in-memory database alive and visible to
	// every query in the test.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	})

	return db
}

// MustExec runs DDL/seed statements, failing the test on the first error.
func MustExec(t *testing.T, db *bun.DB, queries ...string) {
	t.Helper()

	ctx := context.Background()
	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			t.Fatalf("failed to execute %q: %v", query, err)
		}
	}
}

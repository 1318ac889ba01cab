package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

func testTable() *vectors.Table {
	return &vectors.Table{
		Dim:   3,
		Words: []string{"haus", "heim", "gebäude"},
		Rows:  [][]float64{{1, 0, 0}, {0.8, 0.1, 0}, {0.5, 0.5, 0.25}},
	}
}

// TestSchemaCreationIdempotent tests that running initSchema multiple times is safe
func TestSchemaCreationIdempotent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Open database: %v", err)
	}
	defer db.Close()

	for i := 0; i < 3; i++ {
		if err := initSchema(ctx, db); err != nil {
			t.Fatalf("initSchema iteration %d: %v", i, err)
		}
	}

	var count int
	err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'").Scan(&count)
	if err != nil {
		t.Fatalf("Count tables: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 table, got %d", count)
	}
}

// TestReopenPreservesData tests that cached tables survive closing the database
func TestReopenPreservesData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := st.Put(ctx, "abc", testTable()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	st.Close()

	st2, err := OpenSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	defer st2.Close()

	got, ok, err := st2.Get(ctx, "abc")
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got.Len() != 3 || got.Words[2] != "gebäude" || got.Rows[2][2] != 0.25 {
		t.Errorf("unexpected table after reopen: %+v", got)
	}
}

func TestPutReplacesAndDeletes(t *testing.T) {
	ctx := context.Background()
	st, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer st.Close()

	if _, ok, err := st.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	st.Put(ctx, "abc", testTable())
	small := &vectors.Table{Dim: 1, Words: []string{"x"}, Rows: [][]float64{{1}}}
	if err := st.Put(ctx, "abc", small); err != nil {
		t.Fatalf("Put replace: %v", err)
	}

	entries, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Words != 1 || entries[0].Dim != 1 {
		t.Fatalf("expected one replaced entry, got %+v", entries)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	if err := st.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := st.Get(ctx, "abc"); ok {
		t.Error("entry should be gone after Delete")
	}
}

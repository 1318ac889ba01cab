package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/lexaug/pkg/lexaug/vecstore"
	"github.com/cognicore/lexaug/pkg/lexaug/vectors"
)

// sqliteStore implements the vecstore.Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (vecstore.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Initialize schema
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS vector_tables (
	fingerprint TEXT PRIMARY KEY,
	words INTEGER NOT NULL,
	dim INTEGER NOT NULL,
	data BLOB NOT NULL,
	created_at TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Get loads and decodes the table stored under fingerprint
func (s *sqliteStore) Get(ctx context.Context, fingerprint string) (*vectors.Table, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM vector_tables WHERE fingerprint = ?`, fingerprint).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	t, err := vecstore.Decode(blob)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// Put inserts or replaces a table
func (s *sqliteStore) Put(ctx context.Context, fingerprint string, t *vectors.Table) error {
	blob, err := vecstore.Encode(t)
	if err != nil {
		return err
	}

	const stmt = `
INSERT INTO vector_tables (fingerprint, words, dim, data, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(fingerprint) DO UPDATE SET
	words=excluded.words,
	dim=excluded.dim,
	data=excluded.data,
	created_at=excluded.created_at;
`
	_, err = s.db.ExecContext(ctx, stmt,
		fingerprint,
		t.Len(),
		t.Dim,
		blob,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Delete removes a cached table
func (s *sqliteStore) Delete(ctx context.Context, fingerprint string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM vector_tables WHERE fingerprint = ?`, fingerprint)
	return err
}

// List returns metadata for all cached tables ordered by fingerprint
func (s *sqliteStore) List(ctx context.Context) ([]vecstore.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT fingerprint, words, dim, length(data), created_at
FROM vector_tables
ORDER BY fingerprint;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []vecstore.Entry
	for rows.Next() {
		var (
			e       vecstore.Entry
			created string
		)
		if err := rows.Scan(&e.Fingerprint, &e.Words, &e.Dim, &e.Bytes, &created); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			e.CreatedAt = ts
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mithrel/scribe/pkg/api"
)

type sqliteStore struct{ db *sql.DB }

const documentColumns = `id, title, body, path, created_at, updated_at`

// openSQLite connects using the modernc.org/sqlite driver and ensures the schema exists.
func openSQLite(ctx context.Context, dsn string) (*sqliteStore, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dbh, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// set WAL mode
	if _, err := dbh.ExecContext(ctx, `PRAGMA journal_mode=WAL;`); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	if err := migrate(ctx, dbh); err != nil {
		_ = dbh.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &sqliteStore{db: dbh}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS documents (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  body TEXT NOT NULL,
  path TEXT NOT NULL DEFAULT '',
  hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_documents_updated ON documents(updated_at DESC, id);
CREATE VIRTUAL TABLE IF NOT EXISTS documents_fts USING fts5(
  title, body,
  id UNINDEXED,
  tokenize='unicode61'
);
`)
	return err
}

func (s *sqliteStore) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

// conn returns the transaction carried by ctx, or the database handle.
func (s *sqliteStore) conn(ctx context.Context) execer {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return s.db
}

func (s *sqliteStore) ListDocuments(ctx context.Context) ([]api.Document, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, `SELECT `+documentColumns+` FROM documents ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *sqliteStore) LoadDocument(ctx context.Context, id string) (api.Document, error) {
	row := s.conn(ctx).QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id=?`, id)
	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return api.Document{}, ErrNotFound
	}
	return d, err
}

func (s *sqliteStore) UpsertDocument(ctx context.Context, d api.Document) error {
	if d.ID == "" {
		return ErrMissingID
	}
	return InTx(ctx, s, func(ctx context.Context) error {
		c := s.conn(ctx)
		if _, err := c.ExecContext(ctx, `INSERT INTO documents(id, title, body, path, hash, created_at, updated_at) VALUES(?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET title=excluded.title, body=excluded.body, path=excluded.path, hash=excluded.hash, updated_at=excluded.updated_at`,
			d.ID, d.Title, d.Body, d.Path, d.Hash(), d.CreatedAt.UTC(), d.UpdatedAt.UTC()); err != nil {
			return err
		}
		// Refresh FTS
		if _, err := c.ExecContext(ctx, `DELETE FROM documents_fts WHERE id=?`, d.ID); err != nil {
			return err
		}
		_, err := c.ExecContext(ctx, `INSERT INTO documents_fts(title, body, id) VALUES(?,?,?)`, d.Title, d.Body, d.ID)
		return err
	})
}

func (s *sqliteStore) DeleteDocument(ctx context.Context, id string) error {
	return InTx(ctx, s, func(ctx context.Context) error {
		c := s.conn(ctx)
		res, err := c.ExecContext(ctx, `DELETE FROM documents WHERE id=?`, id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		_, err = c.ExecContext(ctx, `DELETE FROM documents_fts WHERE id=?`, id)
		return err
	})
}

func (s *sqliteStore) ContentHashes(ctx context.Context) (map[string]string, error) {
	rows, err := s.conn(ctx).QueryContext(ctx, `SELECT id, hash FROM documents`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]string)
	for rows.Next() {
		var id, h string
		if err := rows.Scan(&id, &h); err != nil {
			return nil, err
		}
		out[id] = h
	}
	return out, rows.Err()
}

// Search runs a full-text query. Each term is quoted so user input never
// reaches the FTS5 query syntax; terms are ANDed and the last one
// matches as a prefix.
func (s *sqliteStore) Search(ctx context.Context, query string, limit int) ([]api.Document, error) {
	if limit <= 0 {
		limit = 500
	}
	match := ftsQuery(query)
	if match == "" {
		docs, err := s.ListDocuments(ctx)
		if err != nil {
			return nil, err
		}
		if len(docs) > limit {
			docs = docs[:limit]
		}
		return docs, nil
	}
	rows, err := s.conn(ctx).QueryContext(ctx, `SELECT d.id, d.title, d.body, d.path, d.created_at, d.updated_at
FROM documents_fts x
JOIN documents d ON d.id = x.id
WHERE x.documents_fts MATCH ?
ORDER BY x.rank, d.updated_at DESC
LIMIT ?`, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDocuments(rows)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(r rowScanner) (api.Document, error) {
	var d api.Document
	err := r.Scan(&d.ID, &d.Title, &d.Body, &d.Path, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func scanDocuments(rows *sql.Rows) ([]api.Document, error) {
	var out []api.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func ftsQuery(q string) string {
	terms := uniqueStrings(strings.Fields(q))
	if len(terms) == 0 {
		return ""
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = `"` + strings.ReplaceAll(t, `"`, `""`) + `"`
	}
	quoted[len(quoted)-1] += "*"
	return strings.Join(quoted, " ")
}

func uniqueStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

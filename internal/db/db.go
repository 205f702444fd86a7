package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mithrel/scribe/pkg/api"
)

// Store persists documents.
type Store interface {
	// ListDocuments returns all documents, most recently updated first.
	ListDocuments(ctx context.Context) ([]api.Document, error)
	LoadDocument(ctx context.Context, id string) (api.Document, error)
	UpsertDocument(ctx context.Context, d api.Document) error
	DeleteDocument(ctx context.Context, id string) error
	// Search matches query against titles and bodies.
	Search(ctx context.Context, query string, limit int) ([]api.Document, error)
	// ContentHashes maps every document id to its stored content hash.
	ContentHashes(ctx context.Context) (map[string]string, error)
	Close() error
}

var (
	ErrNotFound  = api.ErrNotFound
	ErrMissingID = errors.New("document id is required")
)

// Open returns a Store based on a URL: "mem://" (or empty) for an
// in-memory store, "sqlite://<path>" for a SQLite database file.
func Open(ctx context.Context, url string) (Store, error) {
	switch {
	case url == "" || url == "mem://":
		return newMemStore(), nil
	case strings.HasPrefix(url, "sqlite://"):
		s, err := openSQLite(ctx, url)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported store url %q", url)
}

package db

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/mithrel/scribe/pkg/api"
)

type memStore struct {
	mu   sync.RWMutex
	byID map[string]api.Document
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[string]api.Document)}
}

// NewMemStore returns an in-memory Store seeded with docs.
func NewMemStore(docs ...api.Document) Store {
	m := newMemStore()
	for _, d := range docs {
		m.byID[d.ID] = d
	}
	return m
}

func (m *memStore) ListDocuments(ctx context.Context) ([]api.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]api.Document, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, d)
	}
	sortByUpdated(out)
	return out, nil
}

func (m *memStore) LoadDocument(ctx context.Context, id string) (api.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.byID[id]
	if !ok {
		return api.Document{}, ErrNotFound
	}
	return d, nil
}

func (m *memStore) UpsertDocument(ctx context.Context, d api.Document) error {
	if d.ID == "" {
		return ErrMissingID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[d.ID] = d
	return nil
}

func (m *memStore) DeleteDocument(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memStore) Search(ctx context.Context, query string, limit int) ([]api.Document, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	m.mu.RLock()
	var out []api.Document
	for _, d := range m.byID {
		if q == "" || strings.Contains(strings.ToLower(d.Title), q) || strings.Contains(strings.ToLower(d.Body), q) {
			out = append(out, d)
		}
	}
	m.mu.RUnlock()
	sortByUpdated(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ContentHashes(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.byID))
	for id, d := range m.byID {
		out[id] = d.Hash()
	}
	return out, nil
}

func (m *memStore) Close() error { return nil }

// sortByUpdated orders newest first, breaking ties by ID for stable output.
func sortByUpdated(docs []api.Document) {
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].UpdatedAt.Equal(docs[j].UpdatedAt) {
			return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
		}
		return docs[i].ID < docs[j].ID
	})
}

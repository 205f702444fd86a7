package api

import (
	"errors"
	"fmt"
	"time"
)

// Document is a Markdown document in the library.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Path      string    `json:"path,omitempty"` // source file, if any
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocument creates a Document with a fresh ID and both timestamps set.
func NewDocument(title, body string, now time.Time) Document {
	return Document{
		ID:        NewID(),
		Title:     title,
		Body:      body,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// Touch updates UpdatedAt (call before persisting an update).
func (d *Document) Touch(now time.Time) { d.UpdatedAt = now.UTC() }

// Selection is a range of the body measured in runes.
type Selection struct {
	Location int `json:"location"`
	Length   int `json:"length"`
}

// End is the rune offset just past the selection.
func (s Selection) End() int { return s.Location + s.Length }

// SyncStatus enumerates the states a sync engine reports.
type SyncStatus int

const (
	SyncIdle SyncStatus = iota
	SyncSyncing
	SyncError
)

// SyncState is a single observation of the sync engine.
type SyncState struct {
	Status SyncStatus `json:"status"`
	Err    string     `json:"error,omitempty"`
}

func (s SyncState) String() string {
	switch s.Status {
	case SyncIdle:
		return "idle"
	case SyncSyncing:
		return "syncing"
	case SyncError:
		return "error: " + s.Err
	}
	return fmt.Sprintf("SyncState(%d)", int(s.Status))
}

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

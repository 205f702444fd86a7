package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Hash(t *testing.T) {
	now := time.Now().UTC()

	base := Document{
		ID:        "doc-id",
		Title:     "My Document",
		Body:      "Hello world",
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("identical documents produce identical hashes", func(t *testing.T) {
		d1 := base
		d2 := base
		assert.Equal(t, d1.Hash(), d2.Hash())
	})

	t.Run("timestamps do not affect the hash", func(t *testing.T) {
		d := base
		d.Touch(now.Add(time.Hour))
		assert.Equal(t, base.Hash(), d.Hash())
	})

	t.Run("different content produces different hashes", func(t *testing.T) {
		d1 := base

		d2 := base
		d2.Title = "Different Title"

		d3 := base
		d3.Body = "Different body"

		assert.NotEqual(t, d1.Hash(), d2.Hash())
		assert.NotEqual(t, d1.Hash(), d3.Hash())
	})

	t.Run("field boundaries matter", func(t *testing.T) {
		d1 := base
		d1.Title, d1.Body = "ab", "c"

		d2 := base
		d2.Title, d2.Body = "a", "bc"

		assert.NotEqual(t, d1.Hash(), d2.Hash())
	})

	t.Run("hex encoded 256-bit digest", func(t *testing.T) {
		assert.Len(t, base.Hash(), 64)
	})
}

func TestNewDocument(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	d := NewDocument("Title", "Body", now)
	require.True(t, ValidID(d.ID))
	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.Equal(t, d.CreatedAt, d.UpdatedAt)
	assert.Equal(t, ShortID(d.ID), d.ID[:8])
}

func TestSyncStateString(t *testing.T) {
	assert.Equal(t, "idle", SyncState{}.String())
	assert.Equal(t, "syncing", SyncState{Status: SyncSyncing}.String())
	assert.Equal(t, "error: boom", SyncState{Status: SyncError, Err: "boom"}.String())
}

package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the document content.
// It covers ID, Title, Body and Path; timestamps are left out so that
// touching a document without editing it keeps the same hash.
func (d Document) Hash() string {
	h := blake3.New()

	// Null separators keep ("ab","c") and ("a","bc") apart.
	h.Write([]byte(d.ID))
	h.Write([]byte{0})

	h.Write([]byte(d.Title))
	h.Write([]byte{0})

	h.Write([]byte(d.Body))
	h.Write([]byte{0})

	h.Write([]byte(d.Path))

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}

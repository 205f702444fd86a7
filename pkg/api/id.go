package api

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random (v4) UUID in canonical form.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether s is a canonical UUID.
func ValidID(s string) bool {
	_, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil
}

// ShortID returns the first block of an ID, enough for listings.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

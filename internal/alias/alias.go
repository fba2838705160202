// Package alias defines path bookmark records and their in-memory management.
package alias

import (
	"time"
)

// Alias is a user-named shortcut pointing to a filesystem path.
// Records are plain values; collaborators that hold onto them long-term
// should work on clones so the owner can mutate its copy freely.
type Alias struct {
	// ID is an opaque unique identifier, stable for the record's lifetime.
	ID string `json:"id"`

	// Name is the display name the user searches by.
	Name string `json:"name"`

	// Path is the filesystem target. It is matched both as a whole string
	// and decomposed into directory components.
	Path string `json:"path"`

	// Tags are free-text labels. Order is preserved for display but has no
	// effect on matching.
	Tags []string `json:"tags,omitempty"`

	// Color is an optional display color (hex string, e.g. "#3B82F6").
	Color string `json:"color,omitempty"`

	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed"`

	// IsFavorite boosts ranking; it never filters.
	IsFavorite bool `json:"is_favorite"`
}

// Clone returns a deep copy. The Tags slice is the only reference field.
func (a Alias) Clone() Alias {
	clone := a
	if len(a.Tags) > 0 {
		clone.Tags = append([]string(nil), a.Tags...)
	}
	return clone
}

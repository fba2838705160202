// Package history tracks recently opened paths with access counts.
package history

import (
	"sort"
	"time"
)

// DefaultMaxEntries bounds the history; the oldest entries by access time
// are evicted past it.
const DefaultMaxEntries = 100

// Entry records accesses to a single path.
type Entry struct {
	Path        string    `json:"path"`
	AccessedAt  time.Time `json:"accessed_at"`
	AccessCount int       `json:"access_count"`
}

// Manager holds the access history in memory. Persistence lives in the
// store package. Not safe for concurrent use.
type Manager struct {
	entries    []Entry
	maxEntries int
	now        func() time.Time
}

// NewManager creates an empty history with the default entry cap.
func NewManager() *Manager {
	return &Manager{
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
}

// Record notes an access to path. An existing entry for the same path is
// bumped in place (timestamp refreshed, count incremented); otherwise a
// new entry is appended. When the history exceeds its cap the entries
// with the oldest access times are evicted.
func (m *Manager) Record(path string) {
	now := m.now()

	for i := range m.entries {
		if m.entries[i].Path == path {
			m.entries[i].AccessedAt = now
			m.entries[i].AccessCount++
			return
		}
	}

	m.entries = append(m.entries, Entry{
		Path:        path,
		AccessedAt:  now,
		AccessCount: 1,
	})

	if len(m.entries) > m.maxEntries {
		sort.SliceStable(m.entries, func(i, j int) bool {
			return m.entries[i].AccessedAt.Before(m.entries[j].AccessedAt)
		})
		m.entries = append([]Entry(nil), m.entries[len(m.entries)-m.maxEntries:]...)
	}
}

// Recent returns up to limit entries, newest access first.
func (m *Manager) Recent(limit int) []Entry {
	sorted := append([]Entry(nil), m.entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AccessedAt.After(sorted[j].AccessedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Entries returns a copy of the full history in storage order.
func (m *Manager) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// SetEntries replaces the history, typically after loading from disk.
func (m *Manager) SetEntries(entries []Entry) {
	m.entries = append([]Entry(nil), entries...)
}

// Clear discards the whole history.
func (m *Manager) Clear() {
	m.entries = nil
}

// Len returns the number of distinct paths recorded.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Package quickaccess manages the pinned-directory sidebar list.
package quickaccess

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDuplicatePath is returned when the path is already pinned.
	ErrDuplicatePath = errors.New("path already pinned")

	// ErrNotADirectory is returned when the path exists but is not a
	// directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrNotFound is returned when no entry matches the given ID.
	ErrNotFound = errors.New("entry not found")

	// ErrSystemEntry is returned when removing a built-in entry.
	ErrSystemEntry = errors.New("system entry cannot be removed")
)

// Entry is one pinned directory. System entries are seeded defaults the
// user cannot remove.
type Entry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Path     string    `json:"path"`
	AddedAt  time.Time `json:"added_at"`
	Order    int       `json:"order"`
	IsSystem bool      `json:"is_system"`
}

// Manager holds the pinned entries in memory. Persistence lives in the
// store package. Not safe for concurrent use.
type Manager struct {
	entries []Entry
	now     func() time.Time

	// statDir validates that a path is an existing directory. Swapped in
	// tests that pin paths that do not exist on the test machine.
	statDir func(path string) error
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		now:     time.Now,
		statDir: statDir,
	}
}

func statDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, path)
	}
	return nil
}

// Add pins a directory. The path is made absolute before the duplicate
// check so the same directory cannot be pinned under two spellings. The
// path must exist and be a directory.
func (m *Manager) Add(name, path string) (Entry, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Entry{}, fmt.Errorf("resolve path: %w", err)
	}
	abs = filepath.Clean(abs)

	for _, e := range m.entries {
		if e.Path == abs {
			return Entry{}, fmt.Errorf("%w: %s", ErrDuplicatePath, abs)
		}
	}

	if err := m.statDir(abs); err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:      uuid.NewString(),
		Name:    name,
		Path:    abs,
		AddedAt: m.now(),
		Order:   len(m.entries),
	}
	m.entries = append(m.entries, entry)
	return entry, nil
}

// RemoveByID unpins the entry with the given ID. System entries are
// protected. Remaining entries are renumbered so Order stays dense.
func (m *Manager) RemoveByID(id string) error {
	index := -1
	for i, e := range m.entries {
		if e.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	if m.entries[index].IsSystem {
		return fmt.Errorf("%w: %s", ErrSystemEntry, m.entries[index].Name)
	}

	m.entries = append(m.entries[:index], m.entries[index+1:]...)
	for i := range m.entries {
		m.entries[i].Order = i
	}
	return nil
}

// Entries returns a copy of the pinned list sorted by Order.
func (m *Manager) Entries() []Entry {
	out := append([]Entry(nil), m.entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// SetEntries replaces the list, typically after loading from disk.
func (m *Manager) SetEntries(entries []Entry) {
	m.entries = append([]Entry(nil), entries...)
}

// Len returns the number of pinned entries.
func (m *Manager) Len() int {
	return len(m.entries)
}

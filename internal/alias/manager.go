package alias

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicate is returned when adding an alias whose name is already taken.
var ErrDuplicate = errors.New("alias already exists")

// ErrNotFound is returned when no alias matches the given ID or name.
var ErrNotFound = errors.New("alias not found")

// Manager owns the alias collection and provides CRUD operations over it.
// Persistence is handled by the store package; the manager is purely
// in-memory. It is not safe for concurrent use.
type Manager struct {
	aliases []Alias
	now     func() time.Time
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{now: time.Now}
}

// NewManagerWith creates a Manager pre-populated with the given records.
// The slice is cloned; the caller keeps ownership of its copy.
func NewManagerWith(aliases []Alias) *Manager {
	m := NewManager()
	m.SetAliases(aliases)
	return m
}

// SetAliases replaces the entire collection.
func (m *Manager) SetAliases(aliases []Alias) {
	m.aliases = make([]Alias, len(aliases))
	for i, a := range aliases {
		m.aliases[i] = a.Clone()
	}
}

// Add creates a new alias with a generated ID and current timestamps.
// Names must be unique across the collection.
func (m *Manager) Add(name, path string, tags []string, color string, favorite bool) (Alias, error) {
	if _, ok := m.FindByName(name); ok {
		return Alias{}, fmt.Errorf("%w: %q", ErrDuplicate, name)
	}

	now := m.now()
	a := Alias{
		ID:           uuid.NewString(),
		Name:         name,
		Path:         path,
		Tags:         append([]string(nil), tags...),
		Color:        color,
		CreatedAt:    now,
		LastAccessed: now,
		IsFavorite:   favorite,
	}
	m.aliases = append(m.aliases, a)
	return a.Clone(), nil
}

// RemoveByID deletes the alias with the given ID.
func (m *Manager) RemoveByID(id string) error {
	for i, a := range m.aliases {
		if a.ID == id {
			m.aliases = append(m.aliases[:i], m.aliases[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// RemoveByName deletes the alias with the given name.
func (m *Manager) RemoveByName(name string) error {
	for i, a := range m.aliases {
		if a.Name == name {
			m.aliases = append(m.aliases[:i], m.aliases[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Update describes a field-selective alias update. Nil fields are left
// unchanged.
type Update struct {
	Name       *string
	Path       *string
	Tags       *[]string
	Color      *string
	IsFavorite *bool
}

// Update applies the non-nil fields of u to the alias with the given ID.
func (m *Manager) Update(id string, u Update) error {
	a := m.find(id)
	if a == nil {
		return fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Path != nil {
		a.Path = *u.Path
	}
	if u.Tags != nil {
		a.Tags = append([]string(nil), (*u.Tags)...)
	}
	if u.Color != nil {
		a.Color = *u.Color
	}
	if u.IsFavorite != nil {
		a.IsFavorite = *u.IsFavorite
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (m *Manager) ToggleFavorite(id string) (bool, error) {
	a := m.find(id)
	if a == nil {
		return false, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	a.IsFavorite = !a.IsFavorite
	return a.IsFavorite, nil
}

// Touch records an access: LastAccessed is set to the current time.
// The search engine's recency boost keys off this timestamp.
func (m *Manager) Touch(id string) error {
	a := m.find(id)
	if a == nil {
		return fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	a.LastAccessed = m.now()
	return nil
}

// Get returns a clone of the alias with the given ID.
func (m *Manager) Get(id string) (Alias, bool) {
	if a := m.find(id); a != nil {
		return a.Clone(), true
	}
	return Alias{}, false
}

// FindByName returns a clone of the alias with the given name.
func (m *Manager) FindByName(name string) (Alias, bool) {
	for i := range m.aliases {
		if m.aliases[i].Name == name {
			return m.aliases[i].Clone(), true
		}
	}
	return Alias{}, false
}

// Favorites returns clones of all favorite aliases in collection order.
func (m *Manager) Favorites() []Alias {
	var favs []Alias
	for i := range m.aliases {
		if m.aliases[i].IsFavorite {
			favs = append(favs, m.aliases[i].Clone())
		}
	}
	return favs
}

// Aliases returns clones of all records in collection order.
func (m *Manager) Aliases() []Alias {
	out := make([]Alias, len(m.aliases))
	for i, a := range m.aliases {
		out[i] = a.Clone()
	}
	return out
}

// Len returns the number of records.
func (m *Manager) Len() int {
	return len(m.aliases)
}

func (m *Manager) find(id string) *Alias {
	for i := range m.aliases {
		if m.aliases[i].ID == id {
			return &m.aliases[i]
		}
	}
	return nil
}

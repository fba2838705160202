// Package store persists aliases, history, and quick access entries as
// JSON files in a single data directory. Writes are atomic (temp file
// plus rename) and serialized across processes with a file lock.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pathmark-dev/pathmark/internal/alias"
	"github.com/pathmark-dev/pathmark/internal/history"
	"github.com/pathmark-dev/pathmark/internal/quickaccess"
)

// Data file names inside the store directory.
const (
	aliasesFile     = "aliases.json"
	historyFile     = "history.json"
	quickAccessFile = "quick_access.json"
	lockFile        = "store.lock"
)

// lockTimeout bounds how long a writer waits for the cross-process lock.
const lockTimeout = 5 * time.Second

// ErrLockTimeout is returned when another process holds the store lock
// for longer than the write timeout.
var ErrLockTimeout = errors.New("timed out waiting for store lock")

// Store reads and writes the JSON data files under a single directory.
// Methods are safe to call from one goroutine at a time; cross-process
// exclusion is handled with a lock file.
type Store struct {
	dir  string
	lock *flock.Flock
}

// New opens (creating if necessary) the store directory.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, lockFile)),
	}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// AliasesPath returns the path of the aliases data file.
func (s *Store) AliasesPath() string {
	return filepath.Join(s.dir, aliasesFile)
}

// LoadAliases reads the alias collection. A missing file is treated as
// first launch: sample aliases for the user's standard folders are
// generated, persisted, and returned.
func (s *Store) LoadAliases() ([]alias.Alias, error) {
	path := s.AliasesPath()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		samples := sampleAliases(time.Now())
		if err := s.SaveAliases(samples); err != nil {
			return nil, fmt.Errorf("seed sample aliases: %w", err)
		}
		slog.Info("seeded_sample_aliases", slog.Int("count", len(samples)))
		return samples, nil
	}

	var aliases []alias.Alias
	if err := readJSON(path, &aliases); err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}
	return aliases, nil
}

// SaveAliases writes the alias collection atomically.
func (s *Store) SaveAliases(aliases []alias.Alias) error {
	if aliases == nil {
		aliases = []alias.Alias{}
	}
	return s.writeJSON(s.AliasesPath(), aliases)
}

// LoadHistory reads the access history. A missing file yields an empty
// history.
func (s *Store) LoadHistory() ([]history.Entry, error) {
	path := filepath.Join(s.dir, historyFile)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var entries []history.Entry
	if err := readJSON(path, &entries); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// SaveHistory writes the access history atomically.
func (s *Store) SaveHistory(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	return s.writeJSON(filepath.Join(s.dir, historyFile), entries)
}

// LoadQuickAccess reads the pinned directory list. A missing file yields
// an empty list.
func (s *Store) LoadQuickAccess() ([]quickaccess.Entry, error) {
	path := filepath.Join(s.dir, quickAccessFile)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var entries []quickaccess.Entry
	if err := readJSON(path, &entries); err != nil {
		return nil, fmt.Errorf("load quick access: %w", err)
	}
	return entries, nil
}

// SaveQuickAccess writes the pinned directory list atomically.
func (s *Store) SaveQuickAccess(entries []quickaccess.Entry) error {
	if entries == nil {
		entries = []quickaccess.Entry{}
	}
	return s.writeJSON(filepath.Join(s.dir, quickAccessFile), entries)
}

// Snapshot bundles everything the store persists.
type Snapshot struct {
	Aliases     []alias.Alias
	History     []history.Entry
	QuickAccess []quickaccess.Entry
}

// LoadAll reads the three data files concurrently.
func (s *Store) LoadAll(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Aliases, err = s.LoadAliases()
		return err
	})
	g.Go(func() error {
		var err error
		snap.History, err = s.LoadHistory()
		return err
	})
	g.Go(func() error {
		var err error
		snap.QuickAccess, err = s.LoadQuickAccess()
		return err
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// writeJSON marshals v and atomically replaces path under the store
// lock: the payload goes to a temp file in the same directory first, and
// rename makes it visible in one step, so readers never observe a
// partial file.
func (s *Store) writeJSON(path string, v any) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil || !locked {
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", ErrLockTimeout, filepath.Base(path))
		}
		return fmt.Errorf("acquire store lock: %w", err)
	}
	defer func() {
		if unlockErr := s.lock.Unlock(); unlockErr != nil {
			slog.Warn("store_unlock_failed", slog.String("error", unlockErr.Error()))
		}
	}()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// sampleAliases builds the first-launch records pointing at the user's
// standard folders. Folders that do not exist are skipped.
func sampleAliases(now time.Time) []alias.Alias {
	home, err := os.UserHomeDir()
	if err != nil {
		return []alias.Alias{}
	}

	candidates := []struct {
		name  string
		dir   string
		color string
	}{
		{"Documents", filepath.Join(home, "Documents"), "#3B82F6"},
		{"Downloads", filepath.Join(home, "Downloads"), "#10B981"},
		{"Desktop", filepath.Join(home, "Desktop"), "#F59E0B"},
	}

	samples := []alias.Alias{}
	for _, c := range candidates {
		if info, err := os.Stat(c.dir); err != nil || !info.IsDir() {
			continue
		}
		samples = append(samples, alias.Alias{
			ID:           uuid.NewString(),
			Name:         c.name,
			Path:         c.dir,
			Tags:         []string{"standard"},
			Color:        c.color,
			CreatedAt:    now,
			LastAccessed: now,
			IsFavorite:   true,
		})
	}
	return samples
}

package cmd

import (
	"context"
	"fmt"

	"github.com/pathmark-dev/pathmark/internal/alias"
	"github.com/pathmark-dev/pathmark/internal/config"
	"github.com/pathmark-dev/pathmark/internal/errors"
	"github.com/pathmark-dev/pathmark/internal/history"
	"github.com/pathmark-dev/pathmark/internal/quickaccess"
	"github.com/pathmark-dev/pathmark/internal/search"
	"github.com/pathmark-dev/pathmark/internal/store"
)

// app bundles the loaded state a command operates on.
type app struct {
	cfg     *config.Config
	store   *store.Store
	aliases *alias.Manager
	history *history.Manager
	pins    *quickaccess.Manager
	engine  *search.Engine
}

// loadApp builds the application state: configuration, store, and the
// in-memory managers populated from disk.
func loadApp(ctx context.Context, opts *rootOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, errors.Wrap(errors.CodeConfig, err)
	}

	dataDir := cfg.DataDir()
	if opts.dataDir != "" {
		dataDir = opts.dataDir
	}

	st, err := store.New(dataDir)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err)
	}

	snap, err := st.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err).
			WithSuggestion(fmt.Sprintf("check the data files under %s", dataDir))
	}

	histMgr := history.NewManager()
	histMgr.SetEntries(snap.History)

	pinMgr := quickaccess.NewManager()
	pinMgr.SetEntries(snap.QuickAccess)

	engine := search.NewEngineWithAliases(snap.Aliases,
		search.WithCacheSize(cfg.Search.CacheSize))
	engine.SetMaxResults(cfg.Search.MaxResults)

	return &app{
		cfg:     cfg,
		store:   st,
		aliases: alias.NewManagerWith(snap.Aliases),
		history: histMgr,
		pins:    pinMgr,
		engine:  engine,
	}, nil
}

// saveAliases persists the alias collection.
func (a *app) saveAliases() error {
	if err := a.store.SaveAliases(a.aliases.Aliases()); err != nil {
		return errors.Wrap(errors.CodeStorage, err)
	}
	return nil
}

// saveHistory persists the access history.
func (a *app) saveHistory() error {
	if err := a.store.SaveHistory(a.history.Entries()); err != nil {
		return errors.Wrap(errors.CodeStorage, err)
	}
	return nil
}

// savePins persists the pinned directory list.
func (a *app) savePins() error {
	if err := a.store.SaveQuickAccess(a.pins.Entries()); err != nil {
		return errors.Wrap(errors.CodeStorage, err)
	}
	return nil
}

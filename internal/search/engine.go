// Package search implements ranked resolution of free-text queries against
// the alias collection. It combines exact, prefix, fuzzy subsequence, and
// multi-keyword hierarchical path matching with favorite/recency score
// boosts, a result cap, and a query-result cache.
package search

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pathmark-dev/pathmark/internal/alias"
)

// Score boosts applied on top of the base match score. The final score is
// clamped at maxFinalScore.
const (
	favoriteBoost = 0.2
	recentBoost   = 0.1
	staleBoost    = 0.05
	maxFinalScore = 1.5

	// Recency windows are half-open: [0, recentWindow) earns recentBoost,
	// [recentWindow, staleWindow) earns staleBoost, anything older nothing.
	recentWindow = 7 * 24 * time.Hour
	staleWindow  = 30 * 24 * time.Hour
)

// Defaults for the cache and result limits.
const (
	DefaultCacheSize  = 100
	DefaultMaxResults = 100
)

// Engine resolves queries against an in-memory alias collection.
//
// Search both reads and mutates engine state (the cache and the last
// query), so an Engine is not safe for concurrent use; share one across
// goroutines only behind external synchronization.
type Engine struct {
	aliases    []alias.Alias
	cache      *resultCache
	matcher    *matcher
	maxResults int

	lastQuery    string
	hasLastQuery bool

	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheSize overrides the query-result cache capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cache = newResultCache(n)
		}
	}
}

// WithClock overrides the time source used for recency boosts.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine with an empty collection.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		cache:      newResultCache(DefaultCacheSize),
		matcher:    newMatcher(),
		maxResults: DefaultMaxResults,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineWithAliases creates an Engine pre-populated with the given
// records.
func NewEngineWithAliases(aliases []alias.Alias, opts ...Option) *Engine {
	e := NewEngine(opts...)
	e.SetAliases(aliases)
	return e
}

// SetAliases replaces the collection. The cache is unconditionally
// cleared: cached results reflect the collection at insertion time and
// there is no way to tell which entries would still be valid.
func (e *Engine) SetAliases(aliases []alias.Alias) {
	e.aliases = make([]alias.Alias, len(aliases))
	for i, a := range aliases {
		e.aliases[i] = a.Clone()
	}
	e.ClearCache()
}

// Aliases returns clones of the current collection.
func (e *Engine) Aliases() []alias.Alias {
	out := make([]alias.Alias, len(e.aliases))
	for i, a := range e.aliases {
		out[i] = a.Clone()
	}
	return out
}

// SetMaxResults changes the result cap and clears the cache, since cached
// vectors were truncated under the old cap. n should be positive.
func (e *Engine) SetMaxResults(n int) {
	e.maxResults = n
	e.ClearCache()
}

// MaxResults returns the current result cap.
func (e *Engine) MaxResults() int {
	return e.maxResults
}

// ClearCache empties the query cache and forgets the last query. The
// collection is untouched.
func (e *Engine) ClearCache() {
	e.cache.Clear()
	e.lastQuery = ""
	e.hasLastQuery = false
}

// LastQuery returns the most recently resolved query (cache hit or fresh
// computation). The boolean is false after construction, SetAliases,
// SetMaxResults, or ClearCache; an empty query never updates it.
func (e *Engine) LastQuery() (string, bool) {
	return e.lastQuery, e.hasLastQuery
}

// Search resolves query against the collection and returns results ranked
// by final score, truncated to the result cap. Every input yields a
// (possibly empty) result list; Search never fails.
//
// An empty query short-circuits to an empty result without touching the
// cache or the last query. An exact cache-key hit returns the cached
// vector without rescoring; callers are responsible for invalidating via
// SetAliases when the collection changes.
func (e *Engine) Search(searchQuery string) []Result {
	if searchQuery == "" {
		return nil
	}

	if cached, ok := e.cache.Get(searchQuery); ok {
		e.lastQuery = searchQuery
		e.hasLastQuery = true
		return cached
	}

	q := parseQuery(searchQuery)

	// Hits are collected per strategy and concatenated so that equal
	// final scores keep a stable order: exact/prefix hits first, then
	// fuzzy, then hierarchical, each in collection order.
	var direct, fuzzyHits, hierarchical []Result
	for i := range e.aliases {
		a := &e.aliases[i]
		outcome, ok := e.matcher.evaluate(a, q)
		if !ok {
			continue
		}
		r := Result{
			Alias:        a.Clone(),
			Score:        outcome.score,
			MatchedField: outcome.field,
		}
		switch outcome.kind {
		case matchFuzzy:
			fuzzyHits = append(fuzzyHits, r)
		case matchHierarchical:
			hierarchical = append(hierarchical, r)
		default:
			direct = append(direct, r)
		}
	}

	results := direct
	results = append(results, fuzzyHits...)
	results = append(results, hierarchical...)

	for i := range results {
		results[i].Score = e.finalScore(&results[i].Alias, results[i].Score)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > e.maxResults {
		results = results[:e.maxResults]
	}

	e.cache.Put(searchQuery, results)
	e.lastQuery = searchQuery
	e.hasLastQuery = true

	slog.Debug("search_resolved",
		slog.String("query", searchQuery),
		slog.Int("results", len(results)),
		slog.Int("cached_queries", e.cache.Len()))

	return results
}

// finalScore applies the favorite and recency boosts to a base match
// score and clamps the total.
func (e *Engine) finalScore(a *alias.Alias, base float64) float64 {
	score := base

	if a.IsFavorite {
		score += favoriteBoost
	}

	age := e.now().Sub(a.LastAccessed)
	switch {
	case age < recentWindow:
		score += recentBoost
	case age < staleWindow:
		score += staleBoost
	}

	if score > maxFinalScore {
		return maxFinalScore
	}
	return score
}

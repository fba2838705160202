package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathmark-dev/pathmark/internal/alias"
)

// --- Test Helpers ---

// testNow is the fixed clock used by engine tests so recency boosts are
// deterministic.
var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// makeAlias builds a record whose LastAccessed is far enough in the past
// that no recency boost applies.
func makeAlias(name, path string) alias.Alias {
	return alias.Alias{
		ID:           "id-" + name,
		Name:         name,
		Path:         path,
		CreatedAt:    testNow.AddDate(0, 0, -200),
		LastAccessed: testNow.AddDate(0, 0, -100),
	}
}

func newTestEngine(aliases []alias.Alias, opts ...Option) *Engine {
	opts = append(opts, WithClock(fixedClock))
	return NewEngineWithAliases(aliases, opts...)
}

func resultNames(results []Result) []string {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Alias.Name
	}
	return names
}

// --- Match priority and base scores ---

func TestSearch_ExactNameMatch(t *testing.T) {
	// Given: a collection with one record matching the query exactly
	e := newTestEngine([]alias.Alias{
		makeAlias("projects", "/home/user/projects"),
		makeAlias("music", "/home/user/music"),
	})

	// When: searching with a different-cased query
	results := e.Search("PROJECTS")

	// Then: the exact match wins with the full base score
	require.Len(t, results, 1)
	assert.Equal(t, "projects", results[0].Alias.Name)
	assert.Equal(t, FieldName, results[0].MatchedField)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

func TestSearch_PrefixOutranksFuzzy(t *testing.T) {
	// Given: one prefix match and one fuzzy-only match for the same query
	e := newTestEngine([]alias.Alias{
		makeAlias("my-documents", "/home/user/my-documents"),
		makeAlias("documents", "/home/user/documents"),
	})

	// When
	results := e.Search("doc")

	// Then: the prefix match ranks first at 0.8, the fuzzy match below 0.7
	require.Len(t, results, 2)
	assert.Equal(t, "documents", results[0].Alias.Name)
	assert.InDelta(t, 0.8, results[0].Score, 1e-9)
	assert.Equal(t, "my-documents", results[1].Alias.Name)
	assert.Greater(t, results[1].Score, 0.0)
	assert.LessOrEqual(t, results[1].Score, 0.7)
}

func TestSearch_FuzzyFieldPriority(t *testing.T) {
	// Given: a record whose name cannot match but whose tag can
	a := makeAlias("zzz", "/mnt/bulk")
	a.Tags = []string{"important"}
	e := newTestEngine([]alias.Alias{a})

	// When: querying a subsequence of the tag
	results := e.Search("import")

	// Then: the hit is attributed to the tag field within fuzzy bounds
	require.Len(t, results, 1)
	assert.Equal(t, FieldTag, results[0].MatchedField)
	assert.Greater(t, results[0].Score, 0.0)
	assert.LessOrEqual(t, results[0].Score, 0.7)
}

func TestSearch_FuzzyPathBeforeTag(t *testing.T) {
	// Given: both the path and a tag contain the query subsequence
	a := makeAlias("zzz", "/data/rep")
	a.Tags = []string{"rep"}
	e := newTestEngine([]alias.Alias{a})

	// When
	results := e.Search("rep")

	// Then: the path is tried first, so the hit is attributed to it
	require.Len(t, results, 1)
	assert.Equal(t, FieldPath, results[0].MatchedField)
}

func TestSearch_SingleContributionPerRecord(t *testing.T) {
	// Given: a record matching on name, path, and tag simultaneously
	a := makeAlias("docs", "/home/user/docs")
	a.Tags = []string{"docs"}
	e := newTestEngine([]alias.Alias{a})

	// When
	results := e.Search("docs")

	// Then: the record appears exactly once, via the highest-priority rule
	require.Len(t, results, 1)
	assert.Equal(t, FieldName, results[0].MatchedField)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
}

// --- Hierarchical path matching ---

func TestSearch_HierarchicalAllKeywords(t *testing.T) {
	// Given: a multi-keyword query whose words all appear as path components
	e := newTestEngine([]alias.Alias{
		makeAlias("alpha", "/home/user/work/docs"),
	})

	// When
	results := e.Search("work docs")

	// Then: full hierarchical score
	require.Len(t, results, 1)
	assert.Equal(t, FieldPath, results[0].MatchedField)
	assert.InDelta(t, 0.9, results[0].Score, 1e-9)
}

func TestSearch_HierarchicalPartialKeywords(t *testing.T) {
	// Given: only one of two keywords appears in the path
	e := newTestEngine([]alias.Alias{
		makeAlias("alpha", "/home/user/work/misc"),
	})

	// When
	results := e.Search("work qqq")

	// Then: 0.5 + (1/2)*0.4 = 0.7
	require.Len(t, results, 1)
	assert.InDelta(t, 0.7, results[0].Score, 1e-9)
}

func TestSearch_HierarchicalNoKeywordsExcluded(t *testing.T) {
	// Given: a multi-keyword query matching nothing in the record
	e := newTestEngine([]alias.Alias{
		makeAlias("alpha", "/home/user/music"),
	})

	// When
	results := e.Search("qqq xxx")

	// Then: the record is excluded entirely
	assert.Empty(t, results)
}

func TestSearch_HierarchicalRequiresTwoKeywords(t *testing.T) {
	// Given: a record where "ort" hits a path component as a substring but
	// scores too low as a scattered whole-path subsequence to count fuzzy
	a := makeAlias("zzz", "/home/user/reports")
	e := newTestEngine([]alias.Alias{a})

	// When: one keyword vs. the same keyword twice
	single := e.Search("ort")
	double := e.Search("ort ort")

	// Then: hierarchical matching only engages at two keywords
	assert.Empty(t, single)
	require.Len(t, double, 1)
	assert.InDelta(t, 0.9, double[0].Score, 1e-9)
}

func TestSearch_HierarchicalWindowsSeparators(t *testing.T) {
	// Given: a Windows-style path
	e := newTestEngine([]alias.Alias{
		makeAlias("zzz", `C:\Users\Work\Docs`),
	})

	// When
	results := e.Search("work docs")

	// Then: backslash components decompose the same as slashes
	require.Len(t, results, 1)
	assert.InDelta(t, 0.9, results[0].Score, 1e-9)
}

// --- Boosts ---

func TestSearch_FavoriteBoost(t *testing.T) {
	// Given: two exact-name candidates, one a favorite
	fav := makeAlias("docs", "/home/a/docs")
	fav.IsFavorite = true
	fav.ID = "id-fav"
	plain := makeAlias("docs", "/home/b/docs")
	plain.ID = "id-plain"
	e := newTestEngine([]alias.Alias{plain, fav})

	// When
	results := e.Search("docs")

	// Then: the favorite gains +0.2 and ranks first
	require.Len(t, results, 2)
	assert.Equal(t, "id-fav", results[0].Alias.ID)
	assert.InDelta(t, 1.2, results[0].Score, 1e-9)
	assert.InDelta(t, 1.0, results[1].Score, 1e-9)
}

func TestSearch_RecencyBoostWindows(t *testing.T) {
	cases := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{"accessed_today", 0, 1.1},
		{"within_week", 3 * 24 * time.Hour, 1.1},
		{"exactly_seven_days", 7 * 24 * time.Hour, 1.05},
		{"within_month", 15 * 24 * time.Hour, 1.05},
		{"exactly_thirty_days", 30 * 24 * time.Hour, 1.0},
		{"ancient", 100 * 24 * time.Hour, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := makeAlias("docs", "/home/user/docs")
			a.LastAccessed = testNow.Add(-tc.age)
			e := newTestEngine([]alias.Alias{a})

			results := e.Search("docs")

			require.Len(t, results, 1)
			assert.InDelta(t, tc.want, results[0].Score, 1e-9)
		})
	}
}

func TestSearch_BoostsCompose(t *testing.T) {
	// Given: a favorite accessed within the week matching exactly
	a := makeAlias("docs", "/home/user/docs")
	a.IsFavorite = true
	a.LastAccessed = testNow.Add(-24 * time.Hour)
	e := newTestEngine([]alias.Alias{a})

	// When
	results := e.Search("docs")

	// Then: 1.0 + 0.2 + 0.1 = 1.3, under the 1.5 ceiling
	require.Len(t, results, 1)
	assert.InDelta(t, 1.3, results[0].Score, 1e-9)
	assert.LessOrEqual(t, results[0].Score, 1.5)
}

// --- Ranking, stability, cap ---

func TestSearch_RankingIsStableForEqualScores(t *testing.T) {
	// Given: two prefix matches with identical boosts
	e := newTestEngine([]alias.Alias{
		makeAlias("proj-alpha", "/srv/alpha"),
		makeAlias("proj-beta", "/srv/beta"),
	})

	// When
	results := e.Search("proj")

	// Then: equal scores keep collection order
	require.Len(t, results, 2)
	assert.Equal(t, []string{"proj-alpha", "proj-beta"}, resultNames(results))
}

func TestSearch_ResultCap(t *testing.T) {
	// Given: more matches than the configured cap
	aliases := []alias.Alias{
		makeAlias("doc-one", "/srv/1"),
		makeAlias("doc-two", "/srv/2"),
		makeAlias("doc-three", "/srv/3"),
		makeAlias("doc-four", "/srv/4"),
	}
	fav := makeAlias("doc-five", "/srv/5")
	fav.IsFavorite = true
	aliases = append(aliases, fav)
	e := newTestEngine(aliases)
	e.SetMaxResults(2)

	// When
	results := e.Search("doc")

	// Then: only the two highest-ranked survive, the favorite first
	require.Len(t, results, 2)
	assert.Equal(t, "doc-five", results[0].Alias.Name)
	assert.Equal(t, "doc-one", results[1].Alias.Name)
}

func TestSearch_EmptyQuery(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})

	// When
	results := e.Search("")

	// Then: no results, no cache entry, no last-query update
	assert.Empty(t, results)
	assert.Equal(t, 0, e.cache.Len())
	_, ok := e.LastQuery()
	assert.False(t, ok)

	// And: an empty query leaves an earlier last query untouched
	e.Search("docs")
	e.Search("")
	last, ok := e.LastQuery()
	require.True(t, ok)
	assert.Equal(t, "docs", last)
}

func TestSearch_WhitespaceOnlyQuery(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})

	// When: a query that decomposes to zero keywords
	results := e.Search("   ")

	// Then: empty results, handled like any other non-matching query
	assert.Empty(t, results)
	last, ok := e.LastQuery()
	require.True(t, ok)
	assert.Equal(t, "   ", last)
}

func TestSearch_ExactAndPrefixScenario(t *testing.T) {
	// Given: two names sharing a prefix, neither favorite nor recent
	e := newTestEngine([]alias.Alias{
		makeAlias("config", "/etc/app"),
		makeAlias("configure", "/usr/bin"),
	})

	// When
	results := e.Search("config")

	// Then: exact above prefix with their exact base scores
	require.Len(t, results, 2)
	assert.Equal(t, "config", results[0].Alias.Name)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.Equal(t, "configure", results[1].Alias.Name)
	assert.InDelta(t, 0.8, results[1].Score, 1e-9)
}

func TestSearch_NoMatches(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{makeAlias("music", "/home/user/music")})

	// When: a query that cannot match any field
	results := e.Search("zqzqzq")

	// Then: empty result, but the query still counts as resolved
	assert.Empty(t, results)
	last, ok := e.LastQuery()
	assert.True(t, ok)
	assert.Equal(t, "zqzqzq", last)
}

// --- Cache behavior ---

func TestSearch_CacheHitIsIdempotent(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{
		makeAlias("docs", "/home/user/docs"),
		makeAlias("docking", "/srv/docking"),
	})

	// When: the same raw query twice
	first := e.Search("doc")
	second := e.Search("doc")

	// Then: identical results, single cache entry
	assert.Equal(t, first, second)
	assert.Equal(t, 1, e.cache.Len())
}

func TestSearch_CacheKeyIsRawString(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})

	// When: the same query in two casings
	lower := e.Search("docs")
	upper := e.Search("DOCS")

	// Then: two cache entries, equal scores (matching is case-insensitive)
	assert.Equal(t, 2, e.cache.Len())
	require.Len(t, lower, 1)
	require.Len(t, upper, 1)
	assert.InDelta(t, lower[0].Score, upper[0].Score, 1e-9)
}

func TestSearch_CachedResultsAreIsolated(t *testing.T) {
	// Given: a cached query
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})
	first := e.Search("docs")
	require.Len(t, first, 1)

	// When: the caller mutates its copy
	first[0].Alias.Name = "mangled"

	// Then: the cache still serves the original
	second := e.Search("docs")
	require.Len(t, second, 1)
	assert.Equal(t, "docs", second[0].Alias.Name)
}

func TestSetAliases_InvalidatesCache(t *testing.T) {
	// Given: a cached query over the original collection
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})
	require.Len(t, e.Search("docs"), 1)

	// When: the collection is replaced with an additional match
	e.SetAliases([]alias.Alias{
		makeAlias("docs", "/home/user/docs"),
		makeAlias("docs-old", "/home/user/docs-old"),
	})

	// Then: the last query is forgotten and the next search sees the new
	// collection
	_, ok := e.LastQuery()
	assert.False(t, ok)
	results := e.Search("docs")
	assert.Len(t, results, 2)
	assert.Equal(t, 1, e.cache.Len())
}

func TestSetMaxResults_InvalidatesCache(t *testing.T) {
	// Given: a cached query with three results
	e := newTestEngine([]alias.Alias{
		makeAlias("doc-a", "/srv/a"),
		makeAlias("doc-b", "/srv/b"),
		makeAlias("doc-c", "/srv/c"),
	})
	require.Len(t, e.Search("doc"), 3)

	// When: tightening the cap
	e.SetMaxResults(1)

	// Then: the cache was dropped and the new cap applies
	_, ok := e.LastQuery()
	assert.False(t, ok)
	assert.Len(t, e.Search("doc"), 1)
}

func TestClearCache_ResetsLastQuery(t *testing.T) {
	// Given
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})
	e.Search("docs")

	// When
	e.ClearCache()

	// Then
	assert.Equal(t, 0, e.cache.Len())
	_, ok := e.LastQuery()
	assert.False(t, ok)
}

func TestSearch_CacheFullClearOnCapacity(t *testing.T) {
	// Given: a cache capacity of two, filled exactly
	e := newTestEngine(
		[]alias.Alias{makeAlias("docs", "/home/user/docs")},
		WithCacheSize(2),
	)
	e.Search("d")
	e.Search("do")
	require.Equal(t, 2, e.cache.Len())

	// When: a third distinct query arrives
	e.Search("doc")

	// Then: the whole cache was cleared before the insert
	assert.Equal(t, 1, e.cache.Len())
	_, ok := e.cache.Get("doc")
	assert.True(t, ok)
	_, ok = e.cache.Get("d")
	assert.False(t, ok)
}

func TestSearch_LastQueryTracksCacheHits(t *testing.T) {
	// Given: two resolved queries
	e := newTestEngine([]alias.Alias{makeAlias("docs", "/home/user/docs")})
	e.Search("docs")
	e.Search("music")

	// When: re-running the first query as a cache hit
	e.Search("docs")

	// Then: the last query reflects the hit, not the last computation
	last, ok := e.LastQuery()
	require.True(t, ok)
	assert.Equal(t, "docs", last)
}

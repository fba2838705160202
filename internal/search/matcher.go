package search

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"

	"github.com/pathmark-dev/pathmark/internal/alias"
)

// Match strategy base scores. Strategies are tried in strict priority
// order and the first hit wins, so these never combine.
const (
	scoreExact  = 1.0
	scorePrefix = 0.8

	// Fuzzy scores are normalized from the matcher's raw integer scale
	// into [0, maxFuzzy].
	maxFuzzy    = 0.7
	maxRawFuzzy = 100.0

	// Hierarchical path matching: all keywords found scores
	// scoreHierarchicalFull; partial matches scale linearly from
	// hierarchicalBase by the matched fraction.
	scoreHierarchicalFull = 0.9
	hierarchicalBase      = 0.5
	hierarchicalRange     = 0.4
)

// pathComponentCacheSize bounds the memoized path decompositions.
const pathComponentCacheSize = 1024

// matchKind tags which strategy produced a hit.
type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
	matchFuzzy
	matchHierarchical
)

// matchOutcome is the result of evaluating one record against one query:
// the strategy that fired, the field it fired on, and the base score
// before favorite/recency boosts.
type matchOutcome struct {
	kind  matchKind
	field Field
	score float64
}

// query is the pre-processed form of a search string shared across the
// whole collection scan.
type query struct {
	lowered  string
	keywords []string
}

func parseQuery(raw string) query {
	lowered := strings.ToLower(raw)
	return query{
		lowered:  lowered,
		keywords: strings.Fields(lowered),
	}
}

// hierarchical reports whether hierarchical path matching applies: it
// needs at least two whitespace-separated keywords.
func (q query) hierarchical() bool {
	return len(q.keywords) >= 2
}

// matcher evaluates records against queries. Path component splits are
// memoized in an LRU cache keyed by the raw path string; this is a pure
// optimization with no effect on match semantics.
type matcher struct {
	components *lru.Cache[string, []string]
}

func newMatcher() *matcher {
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[string, []string](pathComponentCacheSize)
	return &matcher{components: cache}
}

// evaluate runs the match strategies against a single record in strict
// priority order and stops at the first hit. A record therefore receives
// at most one match contribution per search.
func (m *matcher) evaluate(a *alias.Alias, q query) (matchOutcome, bool) {
	nameLower := strings.ToLower(a.Name)

	if nameLower == q.lowered {
		return matchOutcome{kind: matchExact, field: FieldName, score: scoreExact}, true
	}
	if strings.HasPrefix(nameLower, q.lowered) {
		return matchOutcome{kind: matchPrefix, field: FieldName, score: scorePrefix}, true
	}

	if score, ok := fuzzyScore(q.lowered, nameLower); ok {
		return matchOutcome{kind: matchFuzzy, field: FieldName, score: score}, true
	}
	if score, ok := fuzzyScore(q.lowered, strings.ToLower(a.Path)); ok {
		return matchOutcome{kind: matchFuzzy, field: FieldPath, score: score}, true
	}
	for _, tag := range a.Tags {
		if score, ok := fuzzyScore(q.lowered, strings.ToLower(tag)); ok {
			return matchOutcome{kind: matchFuzzy, field: FieldTag, score: score}, true
		}
	}

	if q.hierarchical() {
		if score, ok := m.hierarchicalScore(a.Path, q.keywords); ok {
			return matchOutcome{kind: matchHierarchical, field: FieldPath, score: score}, true
		}
	}

	return matchOutcome{}, false
}

// fuzzyScore runs a subsequence match of pattern against target and
// normalizes the raw score. A hit only counts when the normalized score
// is strictly positive; a zero score falls through to the next strategy.
func fuzzyScore(pattern, target string) (float64, bool) {
	matches := fuzzy.Find(pattern, []string{target})
	if len(matches) == 0 {
		return 0, false
	}
	score := normalizeFuzzyScore(matches[0].Score)
	if score <= 0 {
		return 0, false
	}
	return score, true
}

// normalizeFuzzyScore maps the matcher's raw integer score (typically
// 0..100, negatives possible from penalties) linearly into [0, maxFuzzy],
// clamped at both ends.
func normalizeFuzzyScore(raw int) float64 {
	score := float64(raw) / maxRawFuzzy * maxFuzzy
	if score < 0 {
		return 0
	}
	if score > maxFuzzy {
		return maxFuzzy
	}
	return score
}

// hierarchicalScore checks each keyword for a substring hit in any of the
// path's directory components. All keywords matching scores 0.9; a partial
// match scores 0.5 + fraction*0.4; zero matches is a miss.
func (m *matcher) hierarchicalScore(path string, keywords []string) (float64, bool) {
	if len(keywords) == 0 {
		return 0, false
	}
	components := m.pathComponents(path)
	if len(components) == 0 {
		return 0, false
	}

	matched := 0
	for _, keyword := range keywords {
		for _, component := range components {
			if strings.Contains(component, keyword) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0, false
	}

	ratio := float64(matched) / float64(len(keywords))
	if ratio >= 1.0 {
		return scoreHierarchicalFull, true
	}
	return hierarchicalBase + ratio*hierarchicalRange, true
}

// pathComponents splits a path on both separator styles and lowercases
// the pieces. Windows and Unix paths decompose identically.
func (m *matcher) pathComponents(path string) []string {
	if cached, ok := m.components.Get(path); ok {
		return cached
	}
	components := strings.FieldsFunc(strings.ToLower(path), func(r rune) bool {
		return r == '/' || r == '\\'
	})
	m.components.Add(path, components)
	return components
}

package search

// resultCache maps raw query strings to fully ranked result lists.
// Eviction is deliberately blunt: once the cache reaches capacity it is
// cleared in full before the next insert. Callers invalidate the whole
// cache whenever the underlying collection or result limits change, so
// partial retention would never be correct anyway.
type resultCache struct {
	entries  map[string][]Result
	capacity int
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		entries:  make(map[string][]Result),
		capacity: capacity,
	}
}

// Get returns a clone of the cached results for the exact query string.
// The key is the raw query; no normalization is applied.
func (c *resultCache) Get(query string) ([]Result, bool) {
	cached, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	return cloneResults(cached), true
}

// Put stores a clone of results under the raw query string, clearing the
// whole cache first if it is at capacity.
func (c *resultCache) Put(query string, results []Result) {
	if len(c.entries) >= c.capacity {
		c.Clear()
	}
	c.entries[query] = cloneResults(results)
}

// Clear drops every entry.
func (c *resultCache) Clear() {
	c.entries = make(map[string][]Result)
}

// Len returns the number of cached queries.
func (c *resultCache) Len() int {
	return len(c.entries)
}

func cloneResults(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = r
		out[i].Alias = r.Alias.Clone()
	}
	return out
}

package draft

// ListCache is an in-memory mirror of the remote draft list. Every
// successful refresh replaces it wholesale; a failed refresh leaves the
// previous snapshot untouched.
type ListCache struct {
	drafts []Draft
	byID   map[string]int
}

// NewListCache returns an empty cache.
func NewListCache() *ListCache {
	return &ListCache{byID: make(map[string]int)}
}

// Replace swaps the cached snapshot for drafts. Order is preserved; if the
// server ever returns a duplicate id, the first occurrence wins so the
// unique-id invariant holds.
func (c *ListCache) Replace(drafts []Draft) {
	next := make([]Draft, 0, len(drafts))
	index := make(map[string]int, len(drafts))
	for _, d := range drafts {
		if _, seen := index[d.ID]; seen {
			continue
		}
		index[d.ID] = len(next)
		next = append(next, d)
	}
	c.drafts = next
	c.byID = index
}

// Drafts returns the cached snapshot in order. The returned slice is a copy.
func (c *ListCache) Drafts() []Draft {
	out := make([]Draft, len(c.drafts))
	copy(out, c.drafts)
	return out
}

// Get returns the cached draft with the given id.
func (c *ListCache) Get(id string) (Draft, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Draft{}, false
	}
	return c.drafts[i], true
}

// Len returns the number of cached drafts.
func (c *ListCache) Len() int {
	return len(c.drafts)
}

// Empty reports whether the cache holds no drafts.
func (c *ListCache) Empty() bool {
	return len(c.drafts) == 0
}

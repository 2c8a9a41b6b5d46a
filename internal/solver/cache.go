package solver

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"slices"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of suggestions CachedSelector keeps when no
// size is given.
const DefaultCacheSize = 512

// CachedSelector memoizes another Selector by the contents of its inputs.
// Repeated positions come up constantly when simulating many games, since
// every game shares the opening and most share the second guess.
type CachedSelector struct {
	next  Selector
	cache *lru.Cache
}

// NewCachedSelector wraps next with an LRU of the given size.
func NewCachedSelector(next Selector, size int) (*CachedSelector, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("solver: cannot create suggestion cache: %w", err)
	}
	return &CachedSelector{next: next, cache: c}, nil
}

// Select implements Selector.
func (c *CachedSelector) Select(ctx context.Context, candidates, allowed []string) (Suggestion, error) {
	key := Fingerprint(candidates) + "/" + Fingerprint(allowed)
	if v, ok := c.cache.Get(key); ok {
		return v.(Suggestion), nil
	}
	s, err := c.next.Select(ctx, candidates, allowed)
	if err != nil {
		return Suggestion{}, err
	}
	c.cache.Add(key, s)
	return s, nil
}

// Len returns the number of cached suggestions.
func (c *CachedSelector) Len() int {
	return c.cache.Len()
}

// Fingerprint returns a stable hex digest of a word set. Order and
// duplicates do not affect the result.
func Fingerprint(words []string) string {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	h := fnv.New64a()
	for _, w := range sorted {
		h.Write([]byte(w))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

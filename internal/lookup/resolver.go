// Package lookup resolves variable dictionaries against the Census API
// and memoizes them per variable and survey year.
package lookup

import (
	"context"
	"fmt"
	"sync"

	"github.com/srharri3/pumsflow/internal/model"
	"github.com/srharri3/pumsflow/internal/service"
)

// Resolver fetches and caches variable dictionaries. Only successful
// resolutions are cached, so a transient fetch failure is retried by
// the next call. Safe for concurrent use; concurrent misses on the
// same key may fetch twice and store the same value.
type Resolver struct {
	fetcher service.DictionaryFetcher

	mu    sync.RWMutex
	cache map[cacheKey]model.Lookup
}

type cacheKey struct {
	varName string
	year    int
}

// NewResolver creates a resolver backed by the given fetcher.
func NewResolver(fetcher service.DictionaryFetcher) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		cache:   make(map[cacheKey]model.Lookup),
	}
}

// Resolve returns the ordered dictionary for a variable and survey
// year, fetching it on first use.
func (r *Resolver) Resolve(ctx context.Context, varName string, year int) (model.Lookup, error) {
	key := cacheKey{varName: varName, year: year}

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	items, err := r.fetcher.Dictionary(ctx, varName, year)
	if err != nil {
		return model.Lookup{}, fmt.Errorf("failed to resolve %s for %d: %w", varName, year, err)
	}

	resolved := model.NewLookup(varName, year, items)

	r.mu.Lock()
	r.cache[key] = resolved
	r.mu.Unlock()

	return resolved, nil
}

// CachedKeys returns how many dictionaries the resolver holds.
func (r *Resolver) CachedKeys() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cache)
}

// Ensure Resolver implements the resolver interface.
var _ service.LookupResolver = (*Resolver)(nil)

package ports

import "context"

// EntityCache is a read-through cache for entity lookups by id. Implementations
// must treat cache failures as misses; callers never fail a request on a cache
// error.
type EntityCache interface {
	// Get unmarshals the cached entry for kind/id into dest, reporting whether
	// an entry was found.
	Get(ctx context.Context, kind, id string, dest any) (bool, error)
	// Set stores the entry for kind/id with the cache's TTL.
	Set(ctx context.Context, kind, id string, value any) error
	// Invalidate removes the entry for kind/id.
	Invalidate(ctx context.Context, kind, id string) error
}

// Package cache stores provider search results so repeated lookups of the
// same name skip the search call.
//
// Backends:
//   - github.com/patrickmn/go-cache for in-process caching
//   - github.com/go-redis/redis/v8 (through internal/redis) for a cache
//     shared between instances
//
// A two-tier store keeps hot entries in memory in front of Redis and
// refills the local tier on a Redis hit.
//
// Usage:
//
//	store, err := cache.New(cache.Config{
//		Type:        cache.TypeTwoTier,
//		TTL:         10 * time.Minute,
//		RedisClient: redisClient,
//	})
//	searches := cache.NewSearchCache(store, 10*time.Minute, logger)
//	results, hit := searches.Get(ctx, "Jane Doe")
//
// Cache errors are logged and treated as misses; they never fail a lookup.
package cache

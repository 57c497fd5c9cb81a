package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/models"
)

const searchKeyPrefix = "search:"

// SearchCache caches search results keyed by the normalised query.
type SearchCache struct {
	store  Store
	ttl    time.Duration
	logger logging.Logger
}

// NewSearchCache creates a search cache over store
func NewSearchCache(store Store, ttl time.Duration, logger logging.Logger) *SearchCache {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &SearchCache{store: store, ttl: ttl, logger: logger}
}

// SearchKey hashes the trimmed, lowercased query so names of any length or
// charset make a valid key.
func SearchKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return searchKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached results for query. Backend and decode errors are
// logged and reported as a miss.
func (c *SearchCache) Get(ctx context.Context, query string) ([]models.Entity, bool) {
	data, found, err := c.store.Get(ctx, SearchKey(query))
	if err != nil {
		c.logger.WithContext(ctx).Warn("Search cache read failed", logging.Err(err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	decoded, err := models.DecodeJSON(data)
	if err != nil {
		c.logger.WithContext(ctx).Warn("Discarding undecodable search cache entry", logging.Err(err))
		return nil, false
	}

	items, _ := decoded.([]interface{})
	results := make([]models.Entity, len(items))
	for i, item := range items {
		results[i], _ = models.AsEntity(item)
	}
	return results, true
}

// Set stores results for query. Failures are logged only.
func (c *SearchCache) Set(ctx context.Context, query string, results []models.Entity) {
	if results == nil {
		results = []models.Entity{}
	}
	data, err := json.Marshal(results)
	if err != nil {
		c.logger.WithContext(ctx).Warn("Search results are not cacheable", logging.Err(err))
		return
	}
	if err := c.store.Set(ctx, SearchKey(query), data, c.ttl); err != nil {
		c.logger.WithContext(ctx).Warn("Search cache write failed", logging.Err(err))
	}
}

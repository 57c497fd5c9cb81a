// Package prospect orchestrates a prospect lookup: search the provider by
// name, enrich the top match and normalise it into a NormalizedRecord.
package prospect

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"prospect-finder/internal/common/errors"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/enrichers"
	"prospect-finder/internal/models"
	"prospect-finder/internal/normalize"
)

// Provider is the part of the provider client the service needs.
type Provider interface {
	enrichers.Lookups
	SearchUsers(ctx context.Context, keywords string) ([]models.Entity, error)
	CheckCredentials() error
}

// Enricher gathers the optional data for a match.
type Enricher interface {
	Enrich(ctx context.Context, entity models.Entity) models.EnrichmentBundle
}

// SearchCache caches raw search results by query.
type SearchCache interface {
	Get(ctx context.Context, query string) ([]models.Entity, bool)
	Set(ctx context.Context, query string, results []models.Entity)
}

// Service runs prospect lookups
type Service struct {
	provider Provider
	enricher Enricher
	cache    SearchCache
	logger   logging.Logger
	now      func() time.Time
}

// Option customises a Service
type Option func(*Service)

// WithSearchCache serves repeated searches from c
func WithSearchCache(c SearchCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithLogger sets the service logger
func WithLogger(logger logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for lastUpdated
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a lookup service. A nil enricher enriches through
// provider with default settings.
func NewService(provider Provider, enricher Enricher, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		enricher: enricher,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.GetGlobalLogger()
	}
	if s.enricher == nil {
		s.enricher = enrichers.NewEnricher(provider, enrichers.WithLogger(s.logger))
	}
	return s
}

// Lookup finds the best match for name. It returns (nil, false, nil) when
// the provider has no match. Only a missing token, an empty name or a
// failed search are errors; enrichment problems only thin out the record.
func (s *Service) Lookup(ctx context.Context, name string) (*models.NormalizedRecord, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, errors.ValidationError("name is required")
	}
	if err := s.provider.CheckCredentials(); err != nil {
		return nil, false, err
	}

	logger := s.logger.WithContext(ctx).WithFields(logging.String("query", name))

	results, err := s.search(ctx, name)
	if err != nil {
		logger.Error("Search failed", err)
		return nil, false, eris.Wrapf(err, "search for %q failed", name)
	}

	if len(results) == 0 || results[0] == nil {
		logger.Info("No prospect found")
		return nil, false, nil
	}

	match := results[0]
	logger.Info("Prospect found", logging.String("alias", match.String("alias")))

	bundle := s.enricher.Enrich(ctx, match)
	record := normalize.Normalize(match, bundle, name, s.now())

	logger.Debug("Prospect normalised",
		logging.Bool("has_detailed_data", record.HasDetailedData),
		logging.Any("data_sources", record.DataSourcesAvailable),
	)
	return record, true, nil
}

func (s *Service) search(ctx context.Context, name string) ([]models.Entity, error) {
	if s.cache != nil {
		if results, hit := s.cache.Get(ctx, name); hit {
			s.logger.WithContext(ctx).Debug("Search served from cache", logging.String("query", name))
			return results, nil
		}
	}

	results, err := s.provider.SearchUsers(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, name, results)
	}
	return results, nil
}

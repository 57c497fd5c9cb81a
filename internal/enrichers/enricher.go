// Package enrichers gathers the optional follow-up data for a matched
// profile: detailed profile, recent posts, recent reactions and email
// lookup. None of these lookups can fail the overall request.
package enrichers

import (
	"context"

	"golang.org/x/sync/errgroup"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/models"
)

// Lookups is the subset of the provider used for enrichment.
type Lookups interface {
	GetProfile(ctx context.Context, identifier string) (models.Entity, error)
	GetUserPosts(ctx context.Context, identifier string) ([]interface{}, error)
	GetUserReactions(ctx context.Context, identifier string) ([]interface{}, error)
	GetEmailUser(ctx context.Context, email string) ([]interface{}, error)
}

// Enricher runs the enrichment lookups for one entity
type Enricher struct {
	lookups    Lookups
	logger     logging.Logger
	concurrent bool
}

// Option customises an Enricher
type Option func(*Enricher)

// WithLogger sets the enricher logger
func WithLogger(logger logging.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// WithConcurrency runs the four lookup branches in parallel instead of one
// after another. The resulting bundle is the same either way.
func WithConcurrency(enabled bool) Option {
	return func(e *Enricher) {
		e.concurrent = enabled
	}
}

// NewEnricher creates an enricher over the given lookups
func NewEnricher(lookups Lookups, opts ...Option) *Enricher {
	e := &Enricher{lookups: lookups}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.GetGlobalLogger()
	}
	return e
}

// Enrich fetches everything that can be found about entity. Failed lookups
// leave their bundle field nil.
func (e *Enricher) Enrich(ctx context.Context, entity models.Entity) models.EnrichmentBundle {
	identifiers := ResolveIdentifiers(entity)
	email := entity.String("email")
	logger := e.logger.WithContext(ctx)

	logger.Debug("Enriching profile",
		logging.Any("identifiers", identifiers),
		logging.Bool("email_lookup", email != ""),
		logging.Bool("concurrent", e.concurrent),
	)

	var bundle models.EnrichmentBundle
	branches := []func(){
		func() {
			bundle.DetailedProfile, _ = TryEach(ctx, identifiers, e.lookups.GetProfile, e.failureLogger(logger, "profile"))
		},
		func() {
			bundle.Posts, _ = TryEach(ctx, identifiers, e.lookups.GetUserPosts, e.failureLogger(logger, "posts"))
		},
		func() {
			bundle.Reactions, _ = TryEach(ctx, identifiers, e.lookups.GetUserReactions, e.failureLogger(logger, "reactions"))
		},
	}
	if email != "" {
		branches = append(branches, func() {
			info, err := e.lookups.GetEmailUser(ctx, email)
			if err != nil {
				logger.Warn("Email lookup failed", logging.Err(err))
				return
			}
			bundle.EmailInfo = info
		})
	}

	if !e.concurrent {
		for _, branch := range branches {
			branch()
		}
		return bundle
	}

	// each branch writes a distinct bundle field
	var g errgroup.Group
	for _, branch := range branches {
		branch := branch
		g.Go(func() error {
			branch()
			return nil
		})
	}
	_ = g.Wait()
	return bundle
}

func (e *Enricher) failureLogger(logger logging.Logger, source string) func(string, error) {
	return func(identifier string, err error) {
		logger.Warn("Enrichment lookup failed",
			logging.String("source", source),
			logging.String("identifier", identifier),
			logging.Err(err),
		)
	}
}

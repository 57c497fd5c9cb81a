// Package handlers exposes the prospect lookup over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"prospect-finder/internal/circuitbreaker"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/config"
	"prospect-finder/internal/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// ProspectService looks up a prospect by name
type ProspectService interface {
	Lookup(ctx context.Context, name string) (*models.NormalizedRecord, bool, error)
}

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health() error
}

// BreakerReporter lists provider circuit breakers
type BreakerReporter interface {
	AllStats() []circuitbreaker.Stats
}

type Handlers struct {
	service      ProspectService
	config       *config.Config
	cacheEnabled bool
	cacheErr     error
	cache        HealthChecker
	breakers     BreakerReporter
	logger       logging.Logger
}

// Option customises Handlers
type Option func(*Handlers)

// WithCacheHealth reports the search cache backend in /health
func WithCacheHealth(checker HealthChecker) Option {
	return func(h *Handlers) {
		h.cache = checker
	}
}

// WithCacheState reports whether a search cache was built and the error that
// prevented its shared tier from starting, if any.
func WithCacheState(enabled bool, startupErr error) Option {
	return func(h *Handlers) {
		h.cacheEnabled = enabled
		h.cacheErr = startupErr
	}
}

// WithBreakers reports the provider circuit breakers in /health
func WithBreakers(reporter BreakerReporter) Option {
	return func(h *Handlers) {
		h.breakers = reporter
	}
}

// WithLogger sets the handler logger
func WithLogger(logger logging.Logger) Option {
	return func(h *Handlers) {
		h.logger = logger
	}
}

func New(service ProspectService, cfg *config.Config, opts ...Option) *Handlers {
	h := &Handlers{
		service: service,
		config:  cfg,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = logging.GetGlobalLogger()
	}
	return h
}

func (h *Handlers) sendJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode response", err)
	}
}

func (h *Handlers) sendError(w http.ResponseWriter, status int, message string) {
	h.sendJSONResponse(w, status, models.ErrorResponse{Error: message})
}

package handlers

import (
	"net/http"
	"time"

	"prospect-finder/internal/models"
)

// HealthCheck returns the health status of the application
// @Summary Health check
// @Description Returns the service status, which provider credentials are configured, the search cache state and the provider circuit breakers
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse "Health status"
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		Provider: models.ProviderHealth{
			TokenConfigured:   h.config.AccessToken != "",
			AccountConfigured: h.config.AccountID != "",
		},
		Cache: models.CacheHealth{
			Enabled: h.cacheEnabled,
			Healthy: h.cacheEnabled,
		},
		Breakers: []models.BreakerState{},
	}

	if h.cacheErr != nil {
		status.Cache.Healthy = false
		status.Cache.Error = h.cacheErr.Error()
		status.Status = "degraded"
	} else if h.cache != nil {
		if err := h.cache.Health(); err != nil {
			status.Cache.Healthy = false
			status.Cache.Error = err.Error()
			status.Status = "degraded"
		}
	}

	if h.breakers != nil {
		for _, s := range h.breakers.AllStats() {
			status.Breakers = append(status.Breakers, models.BreakerState{
				Name:      s.Name,
				State:     s.State,
				Failures:  s.Failures,
				Successes: s.Successes,
			})
			if s.State == "open" {
				status.Status = "degraded"
			}
		}
	}

	if !status.Provider.TokenConfigured {
		status.Status = "degraded"
	}

	h.sendJSONResponse(w, http.StatusOK, status)
}

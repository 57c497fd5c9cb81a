package models

import "strings"

// API request and response bodies, also referenced by the Swagger docs.

// ProspectRequest is the body of POST /api/prospect. Older clients send the
// name under "nom".
type ProspectRequest struct {
	Name string `json:"name"`
	Nom  string `json:"nom,omitempty"`
}

// SearchName returns the requested name, preferring "name" over "nom".
func (r ProspectRequest) SearchName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(r.Nom)
}

// MessageResponse is returned when the search found nobody
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx answer
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Version   string         `json:"version"`
	Provider  ProviderHealth `json:"provider"`
	Cache     CacheHealth    `json:"cache"`
	Breakers  []BreakerState `json:"breakers"`
}

// ProviderHealth reports which credentials are configured
type ProviderHealth struct {
	TokenConfigured   bool `json:"token_configured"`
	AccountConfigured bool `json:"account_configured"`
}

// CacheHealth reports the search cache state
type CacheHealth struct {
	Enabled bool   `json:"enabled"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// BreakerState reports one provider circuit breaker
type BreakerState struct {
	Name      string `json:"name"`
	State     string `json:"state"`
	Failures  int    `json:"failures"`
	Successes int    `json:"successes"`
}

// Package config loads prospect-finder settings from the environment.
// Values are read once at startup (after any .env file has been applied)
// and passed explicitly to the components that need them.
//
// Environment Variables:
//
// Application Settings:
//   - PORT: Server port (default: 8080)
//   - LOG_LEVEL: Logging level (default: info)
//   - APP_ENV: development, production or test (default: development).
//     Stack traces are only returned to callers outside production.
//   - CORS_ALLOWED_ORIGIN: Value of Access-Control-Allow-Origin (default: *)
//   - TLS_CERT_FILE / TLS_KEY_FILE: Serve HTTPS when both are set
//
// Provider (HorizonDataWave):
//   - HDW_ACCESS_TOKEN: Access token sent in the access-token header. Not
//     required at startup; lookups fail with a configuration error without it.
//   - HDW_ACCOUNT_ID: Account identifier, only reported for diagnostics
//   - HDW_BASE_URL: Provider base URL (default: https://api.horizondatawave.ai)
//   - HDW_DEFAULT_TIMEOUT: Timeout for calls without a dedicated one (default: 10s)
//
// Enrichment:
//   - ENRICH_CONCURRENTLY: Run the enrichment lookups in parallel (default: false)
//   - PROVIDER_BREAKER_ENABLED: Guard each provider endpoint with a circuit
//     breaker (default: false)
//
// Search cache (off unless REDIS_ADDRESS or SEARCH_CACHE_MEMORY is set;
// with both, the in-memory cache fronts Redis):
//   - SEARCH_CACHE_MEMORY: Keep search results in process memory (default: false)
//   - REDIS_ADDRESS: Redis server address
//   - REDIS_PASSWORD: Redis password
//   - REDIS_DB: Redis database number 0-15 (default: 0)
//   - SEARCH_CACHE_TTL: Lifetime of cached search results (default: 10m)
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"prospect-finder/internal/common/validation"
)

// DefaultBaseURL is the public HorizonDataWave API root.
const DefaultBaseURL = "https://api.horizondatawave.ai"

// Config holds all configuration values for the service.
type Config struct {
	// Application settings
	Port              string `json:"port" validate:"required,numeric"`
	LogLevel          string `json:"log_level"`
	Environment       string `json:"app_env" validate:"oneof=development production test"`
	CORSAllowedOrigin string `json:"cors_allowed_origin" validate:"required"`
	TLSCertFile       string `json:"tls_cert_file"`
	TLSKeyFile        string `json:"tls_key_file"`

	// Provider settings
	AccessToken    string        `json:"-"`
	AccountID      string        `json:"-"`
	BaseURL        string        `json:"hdw_base_url" validate:"required,url"`
	DefaultTimeout time.Duration `json:"hdw_default_timeout" validate:"gt=0"`

	// Enrichment behaviour
	EnrichConcurrently     bool `json:"enrich_concurrently"`
	ProviderBreakerEnabled bool `json:"provider_breaker_enabled"`

	// Search cache
	SearchCacheMemory bool          `json:"search_cache_memory"`
	RedisAddress      string        `json:"redis_address"`
	RedisPassword     string        `json:"-"`
	RedisDB           int           `json:"redis_db" validate:"min=0,max=15"`
	SearchCacheTTL    time.Duration `json:"search_cache_ttl" validate:"gt=0"`
}

// Load creates a Config from environment variables, falling back to defaults.
// It does not validate; call Validate on the result.
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		Environment:       getEnv("APP_ENV", "development"),
		CORSAllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "*"),
		TLSCertFile:       os.Getenv("TLS_CERT_FILE"),
		TLSKeyFile:        os.Getenv("TLS_KEY_FILE"),

		AccessToken:    os.Getenv("HDW_ACCESS_TOKEN"),
		AccountID:      os.Getenv("HDW_ACCOUNT_ID"),
		BaseURL:        getEnv("HDW_BASE_URL", DefaultBaseURL),
		DefaultTimeout: getDurationEnv("HDW_DEFAULT_TIMEOUT", 10*time.Second),

		EnrichConcurrently:     getBoolEnv("ENRICH_CONCURRENTLY", false),
		ProviderBreakerEnabled: getBoolEnv("PROVIDER_BREAKER_ENABLED", false),

		SearchCacheMemory: getBoolEnv("SEARCH_CACHE_MEMORY", false),
		RedisAddress:      os.Getenv("REDIS_ADDRESS"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getIntEnv("REDIS_DB", 0),
		SearchCacheTTL:    getDurationEnv("SEARCH_CACHE_TTL", 10*time.Minute),
	}
}

// Validate checks field formats and ranges. A missing access token is not an
// error here: it is reported per request so the service can still serve
// health checks and CORS preflights.
func (c *Config) Validate() error {
	if err := validation.NewCentralizedValidator().ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if port, _ := strconv.Atoi(c.Port); port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number between 1 and 65535")
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}

	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CacheEnabled reports whether any search cache tier is configured.
func (c *Config) CacheEnabled() bool {
	return c.SearchCacheMemory || c.RedisEnabled()
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddress != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv accepts anything strconv.ParseBool does; invalid values fall back to the default.
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

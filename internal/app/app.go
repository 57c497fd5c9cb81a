package app

import (
	"context"
	"net/http"

	"prospect-finder/internal/circuitbreaker"
	"prospect-finder/internal/common/cache"
	commonhttp "prospect-finder/internal/common/http"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/config"
	"prospect-finder/internal/enrichers"
	"prospect-finder/internal/prospect"
	"prospect-finder/internal/provider"
	"prospect-finder/internal/redis"
)

// App holds all the application dependencies
type App struct {
	Config      *config.Config
	HTTPClient  *http.Client
	Provider    *provider.Client
	Breakers    *circuitbreaker.GoBreakerManager
	RedisClient *redis.Client
	RedisErr    error
	SearchCache *cache.SearchCache
	Service     *prospect.Service
	Logger      logging.Logger
}

// New creates a new application instance with all dependencies
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logging.GetGlobalLogger().WithFields(logging.String("component", "app")),
	}

	if err := app.initializeRedis(); err != nil {
		// Redis only backs the search cache, so lookups keep working without
		// it; /health reports the error.
		app.RedisErr = err
		app.Logger.Warn("Redis initialization failed, continuing without Redis",
			logging.Err(err))
	}

	if err := app.initializeCache(); err != nil {
		return nil, err
	}

	app.initializeProvider()
	app.initializeService()

	return app, nil
}

func (app *App) initializeProvider() {
	// Each call carries its own deadline; the client timeout is only a backstop.
	outer := 2 * provider.EmailTimeout
	if d := 2 * app.Config.DefaultTimeout; d > outer {
		outer = d
	}
	app.HTTPClient = commonhttp.NewHTTPClient(commonhttp.WithTimeout(outer))

	opts := []provider.Option{provider.WithLogger(app.Logger)}
	if app.Config.ProviderBreakerEnabled {
		app.Breakers = circuitbreaker.NewGoBreakerManager(circuitbreaker.ProviderConfig, app.Logger)
		opts = append(opts, provider.WithGuard(app.Breakers))
		app.Logger.Info("Provider circuit breakers: Enabled")
	}

	app.Provider = provider.NewClient(provider.Config{
		BaseURL:        app.Config.BaseURL,
		AccessToken:    app.Config.AccessToken,
		DefaultTimeout: app.Config.DefaultTimeout,
	}, app.HTTPClient, opts...)

	if app.Config.AccessToken == "" {
		app.Logger.Warn("HDW_ACCESS_TOKEN is not set; prospect lookups will fail until it is configured")
	}
	app.Logger.Info("Provider configured",
		logging.String("base_url", app.Config.BaseURL),
		logging.Bool("token_configured", app.Config.AccessToken != ""),
		logging.Bool("account_configured", app.Config.AccountID != ""),
	)
}

func (app *App) initializeCache() error {
	var cacheType cache.Type
	switch {
	case app.RedisClient != nil && app.Config.SearchCacheMemory:
		cacheType = cache.TypeTwoTier
	case app.RedisClient != nil:
		cacheType = cache.TypeRedis
	case app.Config.SearchCacheMemory:
		cacheType = cache.TypeLocal
	default:
		if app.Config.CacheEnabled() {
			app.Logger.Warn("Search cache: configured but unavailable")
		} else {
			app.Logger.Info("Search cache: Disabled")
		}
		return nil
	}

	store, err := cache.New(cache.Config{
		Type:        cacheType,
		TTL:         app.Config.SearchCacheTTL,
		KeyPrefix:   cache.DefaultKeyPrefix,
		RedisClient: app.RedisClient,
	})
	if err != nil {
		return err
	}

	app.SearchCache = cache.NewSearchCache(store, app.Config.SearchCacheTTL, app.Logger)
	app.Logger.Info("Search cache: Enabled",
		logging.String("type", string(cacheType)),
		logging.Duration("ttl", app.Config.SearchCacheTTL),
	)
	return nil
}

func (app *App) initializeService() {
	enricher := enrichers.NewEnricher(app.Provider,
		enrichers.WithLogger(app.Logger),
		enrichers.WithConcurrency(app.Config.EnrichConcurrently),
	)

	opts := []prospect.Option{prospect.WithLogger(app.Logger)}
	if app.SearchCache != nil {
		opts = append(opts, prospect.WithSearchCache(app.SearchCache))
	}
	app.Service = prospect.NewService(app.Provider, enricher, opts...)
}

// Shutdown releases idle provider connections
func (app *App) Shutdown(ctx context.Context) error {
	if app.HTTPClient != nil {
		app.HTTPClient.CloseIdleConnections()
	}
	return nil
}

// Cleanup releases all resources
func (app *App) Cleanup() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"prospect-finder/internal/handlers"
	"prospect-finder/internal/server"
)

// Handlers builds the HTTP handlers over the application service
func (app *App) Handlers() *handlers.Handlers {
	opts := []handlers.Option{
		handlers.WithLogger(app.Logger),
		handlers.WithCacheState(app.SearchCache != nil, app.RedisErr),
	}
	if app.RedisClient != nil {
		opts = append(opts, handlers.WithCacheHealth(app.RedisClient))
	}
	if app.Breakers != nil {
		opts = append(opts, handlers.WithBreakers(app.Breakers))
	}
	return handlers.New(app.Service, app.Config, opts...)
}

// RunServer builds the router and the HTTP server around it
func (app *App) RunServer() (*server.Server, http.Handler) {
	router := mux.NewRouter()
	SetupRoutes(router, app.Handlers(), app.Config, app.Logger)

	srv := server.New(router, app.Config.Port, app.Config.TLSCertFile, app.Config.TLSKeyFile)
	return srv, router
}

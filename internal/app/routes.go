package app

import (
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/config"
	"prospect-finder/internal/handlers"
	"prospect-finder/internal/middleware"
)

// SetupRoutes configures all HTTP routes for the application
func SetupRoutes(router *mux.Router, h *handlers.Handlers, cfg *config.Config, logger logging.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	// The prospect handlers answer OPTIONS and 405 themselves so that the
	// middleware above also covers those responses.
	router.HandleFunc("/api/prospect", h.HandleProspect)
	router.HandleFunc("/api/prospect/vcard", h.HandleProspectVCard)

	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}

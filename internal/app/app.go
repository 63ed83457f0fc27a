// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/guttosm/checkout-service/internal/middleware"
)

// App is the wired checkout service.
type App struct {
	Router   *http.Router
	Services *ServiceComponents
	database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	services := InitializeServices(cfg)
	dbComponents := InitializeDatabase(cfg.Database)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.AsyncLoggerConfig{})
	}

	routerComponents := InitializeRouter(services, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		database: dbComponents,
	}
}

// Close stops the router's rate limiters, flushes pending log entries and
// disconnects from MongoDB.
func (a *App) Close(ctx context.Context) {
	a.Router.Close()
	middleware.StopAsyncLogger()
	if err := a.database.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}

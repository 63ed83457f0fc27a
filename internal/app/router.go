// Package app provides router configuration.
package app

import (
	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/http"
	"github.com/guttosm/checkout-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var loggingService service.LoggingService
	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker(logsBreakerName, dbComponents.LogsCircuitBreaker)
	}

	handler := http.NewHandler(services.Engine, services.Receipts,
		http.WithHistory(services.History),
		http.WithLoggingService(loggingService),
		http.WithMaxItemsLength(cfg.Pricing.MaxItemsLength),
	)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		MaxBodyBytes:      http.MaxBodyBytes(cfg.Pricing.MaxItemsLength),
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		SessionService:    services.Sessions,
		History:           services.History,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

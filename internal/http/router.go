package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	// MaxBodyBytes caps API request bodies. Zero or less disables the cap.
	MaxBodyBytes      int64
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
	// SessionService enables sessions. Without it the history routes answer 503.
	SessionService service.SessionService
	// History backs the history routes. Without it they are not registered.
	History service.HistoryStore
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		RequestTimeout:    middleware.DefaultTimeoutConfig().Timeout,
		MaxBodyBytes:      MaxBodyBytes(DefaultMaxItemsLength),
		EnableIdempotency: true,
	}
}

// maxBodyOverhead covers the JSON envelope around the items string.
const maxBodyOverhead = 1 << 10

// MaxBodyBytes returns the body size that fits an items string of
// maxItemsLength characters, each possibly written as a \uXXXX escape.
// A non-positive maxItemsLength falls back to DefaultMaxItemsLength.
func MaxBodyBytes(maxItemsLength int) int64 {
	if maxItemsLength <= 0 {
		maxItemsLength = DefaultMaxItemsLength
	}
	return int64(maxItemsLength)*int64(len(`\u0041`)) + maxBodyOverhead
}

// Router is the service's gin engine together with the rate limiters its
// middleware runs. Close stops the limiters' cleanup goroutines.
type Router struct {
	*gin.Engine
	limiters []*middleware.RateLimiter
}

// NewRouter creates and configures the Gin router for the checkout service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	router := &Router{Engine: gin.New()}

	router.configureGlobalMiddleware(&cfg)
	registerInfrastructureRoutes(router.Engine, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range router.routeGroups(handler, &cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

// Close stops background work owned by the router. It is safe to call
// more than once.
func (r *Router) Close() {
	for _, limiter := range r.limiters {
		limiter.Stop()
	}
}

func (r *Router) newLimiter(cfg *RouterConfig) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	r.limiters = append(r.limiters, limiter)
	return limiter
}

func (r *Router) routeGroups(handler *Handler, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if handler != nil {
		groups = append(groups, NewCheckoutRoutes(handler))
	}
	groups = append(groups, NewSessionRoutes(NewSessionHandler(cfg.SessionService, cfg.LoggingService)))
	if cfg.History != nil {
		var sessionLimiter *middleware.RateLimiter
		if cfg.RateLimit > 0 {
			sessionLimiter = r.newLimiter(cfg)
		}
		groups = append(groups, NewHistoryRoutes(NewHistoryHandler(cfg.History, cfg.LoggingService), sessionLimiter))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		r.Use(r.newLimiter(cfg).RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler == nil {
		healthHandler = NewHealthHandler()
	}
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	// before anything that reads the body
	api.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))

	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	// after auth, so a replay never skips the API key check
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// CheckoutRoutes registers the pricing and catalog routes. A session token
// is optional on them.
type CheckoutRoutes struct {
	handler *Handler
}

// NewCheckoutRoutes creates a new CheckoutRoutes instance.
func NewCheckoutRoutes(handler *Handler) *CheckoutRoutes {
	return &CheckoutRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *CheckoutRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	checkout := rg.Group("/checkout", middleware.SessionAuth(cfg.SessionService, false))
	{
		checkout.POST("/total", r.handler.Total)
		checkout.POST("/breakdown", r.handler.Breakdown)
		checkout.POST("/receipt", r.handler.Receipt)
	}

	rg.GET("/pricing-rules", r.handler.PricingRules)
	rg.GET("/examples", r.handler.Examples)
}

// SessionRoutes registers the session routes.
type SessionRoutes struct {
	handler *SessionHandler
}

// NewSessionRoutes creates a new SessionRoutes instance.
func NewSessionRoutes(handler *SessionHandler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

// RegisterRoutes implements RouteGroup.
func (r *SessionRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/sessions", r.handler.Create)
}

// HistoryRoutes registers the history routes. They require a session and
// are rate limited per session on top of the global per-IP limit.
type HistoryRoutes struct {
	handler *HistoryHandler
	limiter *middleware.RateLimiter
}

// NewHistoryRoutes creates a new HistoryRoutes instance. A nil limiter
// leaves only the global per-IP limit in place.
func NewHistoryRoutes(handler *HistoryHandler, limiter *middleware.RateLimiter) *HistoryRoutes {
	return &HistoryRoutes{handler: handler, limiter: limiter}
}

// RegisterRoutes implements RouteGroup.
func (r *HistoryRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	history := rg.Group("/history", middleware.SessionAuth(cfg.SessionService, true))
	if r.limiter != nil {
		history.Use(r.limiter.SessionRateLimit())
	}

	history.GET("", r.handler.List)
	history.DELETE("", r.handler.Clear)
}

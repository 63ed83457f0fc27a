//go:build !integration

package http

import (
	"net/http"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/checkout-service/internal/service"
)

func registeredRoutes(router *gin.Engine) []string {
	var routes []string
	for _, r := range router.Routes() {
		routes = append(routes, r.Method+" "+r.Path)
	}
	sort.Strings(routes)
	return routes
}

func TestRouteGroups_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := service.NewCheckoutService()
	history := service.NewHistoryService(service.HistoryConfig{})
	cfg := DefaultRouterConfig()

	tests := []struct {
		name     string
		group    RouteGroup
		expected []string
	}{
		{
			name:  "checkout",
			group: NewCheckoutRoutes(NewHandler(engine, nil)),
			expected: []string{
				"GET /api/examples",
				"GET /api/pricing-rules",
				"POST /api/checkout/breakdown",
				"POST /api/checkout/receipt",
				"POST /api/checkout/total",
			},
		},
		{
			name:     "sessions",
			group:    NewSessionRoutes(NewSessionHandler(nil, nil)),
			expected: []string{"POST /api/sessions"},
		},
		{
			name:     "history",
			group:    NewHistoryRoutes(NewHistoryHandler(history, nil), nil),
			expected: []string{"DELETE /api/history", "GET /api/history"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.group.RegisterRoutes(router.Group("/api"), &cfg)
			assert.Equal(t, tt.expected, registeredRoutes(router))
		})
	}
}

func TestRouteGroups_HistoryOnlyWithStore(t *testing.T) {
	engine := service.NewCheckoutService()
	router := &Router{}
	t.Cleanup(router.Close)

	cfg := DefaultRouterConfig()
	assert.Len(t, router.routeGroups(NewHandler(engine, nil), &cfg), 2)
	assert.Empty(t, router.limiters)

	cfg.History = service.NewHistoryService(service.HistoryConfig{})
	assert.Len(t, router.routeGroups(NewHandler(engine, nil), &cfg), 3)
	assert.Len(t, router.limiters, 1, "history gets a per-session limiter")

	cfg.RateLimit = 0
	assert.Len(t, router.routeGroups(nil, &cfg), 2)
	assert.Len(t, router.limiters, 1)
}

func TestRouteGroups_HistoryRequiresSession(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SessionService = service.NewSessionService(service.SessionConfig{SecretKey: "k"})
	router := gin.New()
	NewHistoryRoutes(NewHistoryHandler(service.NewHistoryService(service.HistoryConfig{}), nil), nil).
		RegisterRoutes(router.Group("/api"), &cfg)

	w := doRequest(router, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

//go:build integration

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/circuitbreaker"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/repository"
	"github.com/guttosm/checkout-service/internal/service"
	"github.com/guttosm/checkout-service/internal/testutil"
)

func setupMongoRouter(t *testing.T) (*Router, *repository.MongoDB, *circuitbreaker.CircuitBreaker) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{Name: "mongodb-logs"})
	loggingService := service.NewLoggingService(
		repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB),
	)

	sessions := service.NewSessionService(service.SessionConfig{SecretKey: "integration-secret"})
	history := service.NewHistoryService(service.HistoryConfig{})

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)
	health.RegisterCircuitBreaker("mongodb-logs", logsCB)

	cfg := DefaultRouterConfig()
	cfg.LoggingService = loggingService
	cfg.SessionService = sessions
	cfg.History = history

	handler := NewHandler(service.NewCheckoutService(), nil,
		WithHistory(history),
		WithLoggingService(loggingService),
	)
	router := NewRouter(handler, health, cfg)
	t.Cleanup(router.Close)
	return router, db, logsCB
}

func TestIntegration_ReadinessWithMongoDB(t *testing.T) {
	router, _, _ := setupMongoRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
}

func TestIntegration_AuditLogsReachMongoDB(t *testing.T) {
	router, db, _ := setupMongoRouter(t)
	ctx := context.Background()

	w := postJSON(router, "/api/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/total", bytes.NewBufferString(`{"items": "AAABBD"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get("X-Request-ID")

	logsRepo := repository.NewLogsRepository(db)
	require.Eventually(t, func() bool {
		n, err := logsRepo.Count(ctx, repository.LogQueryOptions{ActionType: model.ActionCalculate})
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond)

	docs, err := logsRepo.Query(ctx, repository.LogQueryOptions{RequestID: requestID})
	require.NoError(t, err)
	require.NotEmpty(t, docs)

	require.Eventually(t, func() bool {
		n, err := logsRepo.Count(ctx, repository.LogQueryOptions{ActionType: model.ActionSessionCreate})
		return err == nil && n == 1
	}, 5*time.Second, 50*time.Millisecond)
}

func TestIntegration_ClosedDatabaseOpensBreaker(t *testing.T) {
	router, db, logsCB := setupMongoRouter(t)
	require.NoError(t, db.Close(context.Background()))

	for i := 0; i < circuitbreaker.DefaultConfig().FailureThreshold+1; i++ {
		w := postJSON(router, "/api/checkout/total", `{"items": "A"}`, nil)
		require.Equal(t, http.StatusOK, w.Code, "pricing must not depend on the log store")
	}

	require.Eventually(t, logsCB.IsOpen, 10*time.Second, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

//go:build integration

package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/config"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/testutil"
)

func integrationConfig(t *testing.T) config.Config {
	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		URI:                            testutil.GetSharedContainerURI(),
		DatabaseName:                   testutil.SanitizeDBName(t.Name()),
		LogsTTL:                        30 * 24 * time.Hour,
		Enabled:                        true,
		CircuitBreakerFailureThreshold: 5,
		CircuitBreakerSuccessThreshold: 2,
		CircuitBreakerTimeout:          30 * time.Second,
	}
	return cfg
}

func TestInitializeApp_Integration(t *testing.T) {
	application := InitializeApp(integrationConfig(t))
	require.NotNil(t, application)
	t.Cleanup(func() { application.Close(context.Background()) })

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	assert.Contains(t, w.Body.String(), "mongodb_logs_circuit")
}

func TestInitializeApp_AuditTrail_Integration(t *testing.T) {
	cfg := integrationConfig(t)
	application := InitializeApp(cfg)
	t.Cleanup(func() { application.Close(context.Background()) })

	req := httptest.NewRequest(http.MethodPost, "/api/checkout/receipt", bytes.NewBufferString(`{"items": "AAAB"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	logging := application.database.LoggingService
	require.Eventually(t, func() bool {
		entries, err := logging.QueryLogs(context.Background(), model.LogQueryOptions{ActionType: model.ActionReceipt})
		return err == nil && len(entries) == 1 && entries[0].Fields["total"] != nil
	}, 5*time.Second, 50*time.Millisecond)
}

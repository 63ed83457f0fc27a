//go:build !integration

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/domain/dto"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		acceptLanguage  string
		handler         gin.HandlerFunc
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "string panic",
			handler:         func(c *gin.Context) { panic("catalog lookup failed") },
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "error panic is translated",
			acceptLanguage:  "nl",
			handler:         func(c *gin.Context) { panic(errors.New("receipt render failed")) },
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Er is een onverwachte fout opgetreden",
		},
		{
			name: "no panic",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, dto.TotalResponse{Items: "AB", Total: 80})
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Recovery())
			router.POST("/api/checkout/total", tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/checkout/total", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage == "" {
				return
			}

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInternal, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
			assert.NotContains(t, w.Body.String(), "goroutine")
		})
	}
}

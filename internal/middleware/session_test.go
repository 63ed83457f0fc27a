//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/mocks"
	"github.com/guttosm/checkout-service/internal/service"
)

func TestSessionAuth(t *testing.T) {
	tests := []struct {
		name           string
		required       bool
		authHeader     string
		setupMocks     func(*mocks.MockSessionService)
		expectedStatus int
		expectedBody   string
		wantSession    string
	}{
		{
			name:       "valid token sets session",
			required:   true,
			authHeader: "Bearer good-token",
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Validate", "good-token").Return(&dto.SessionClaims{SessionID: "sess-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			wantSession:    "sess-1",
		},
		{
			name:           "missing token on required route",
			required:       true,
			authHeader:     "",
			setupMocks:     func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "A checkout session token is required",
		},
		{
			name:           "missing token on optional route continues anonymously",
			required:       false,
			authHeader:     "",
			setupMocks:     func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusOK,
			wantSession:    "",
		},
		{
			name:           "wrong scheme",
			required:       false,
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(*mocks.MockSessionService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid or expired checkout session",
		},
		{
			name:       "invalid token on optional route is rejected",
			required:   false,
			authHeader: "Bearer stale",
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Validate", "stale").Return(nil, service.ErrInvalidSession)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid_session",
		},
		{
			name:       "token surrounded by spaces",
			required:   true,
			authHeader: "Bearer   spaced  ",
			setupMocks: func(m *mocks.MockSessionService) {
				m.On("Validate", "spaced").Return(&dto.SessionClaims{SessionID: "sess-2"}, nil)
			},
			expectedStatus: http.StatusOK,
			wantSession:    "sess-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			sessions := mocks.NewMockSessionService(t)
			tt.setupMocks(sessions)

			router := gin.New()
			router.Use(RequestID(), SessionAuth(sessions, tt.required))
			router.GET("/api/history", func(c *gin.Context) {
				c.String(http.StatusOK, GetSessionID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.wantSession, w.Body.String())
			}
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestSessionAuth_Disabled(t *testing.T) {
	tests := []struct {
		name           string
		required       bool
		expectedStatus int
	}{
		{name: "required route unavailable", required: true, expectedStatus: http.StatusServiceUnavailable},
		{name: "optional route passes", required: false, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(SessionAuth(nil, tt.required))
			router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", "Bearer ignored")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

//go:build !integration

package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkout-service/internal/domain/dto"
)

// countingReader records how much of a body was consumed.
type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const limit = 64

	tests := []struct {
		name           string
		limit          int64
		body           string
		announceLength bool
		expectedStatus int
		expectHandler  bool
		maxBytesRead   int
	}{
		{
			name:           "body under limit reaches handler",
			limit:          limit,
			body:           `{"items": "AAB"}`,
			announceLength: true,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
		{
			name:           "announced oversized body is not read",
			limit:          limit,
			body:           `{"items": "` + strings.Repeat("A", 4096) + `"}`,
			announceLength: true,
			expectedStatus: http.StatusRequestEntityTooLarge,
			maxBytesRead:   0,
		},
		{
			name:           "streamed oversized body stops at limit",
			limit:          limit,
			body:           `{"items": "` + strings.Repeat("A", 4096) + `"}`,
			expectedStatus: http.StatusRequestEntityTooLarge,
			maxBytesRead:   limit + 512,
		},
		{
			name:           "disabled limit",
			limit:          0,
			body:           `{"items": "` + strings.Repeat("A", 4096) + `"}`,
			announceLength: true,
			expectedStatus: http.StatusOK,
			expectHandler:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received string
			router := gin.New()
			router.Use(RequestID(), BodyLimit(tt.limit))
			router.POST("/api/checkout/total", func(c *gin.Context) {
				b, err := io.ReadAll(c.Request.Body)
				require.NoError(t, err)
				received = string(b)
				c.Status(http.StatusOK)
			})

			body := &countingReader{r: strings.NewReader(tt.body)}
			req := httptest.NewRequest(http.MethodPost, "/api/checkout/total", body)
			req.ContentLength = -1
			if tt.announceLength {
				req.ContentLength = int64(len(tt.body))
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectHandler {
				assert.Equal(t, tt.body, received)
				return
			}

			assert.Empty(t, received)
			assert.LessOrEqual(t, body.read, tt.maxBytesRead)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodePayloadTooLarge, resp.Error)
			assert.Equal(t, "Request body is too large", resp.Message)
		})
	}
}

func TestBodyLimit_EmptyBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/api/sessions", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

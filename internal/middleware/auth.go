package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to the api_key query parameter.
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(APIKeyHeader))
		if key == "" {
			key = strings.TrimSpace(c.Query(APIKeyQuery))
		}

		switch {
		case key == "":
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

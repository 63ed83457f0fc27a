package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/logger"
	"github.com/guttosm/checkout-service/internal/service"
)

const bearerPrefix = "Bearer "

// SessionAuth resolves the checkout session from an "Authorization: Bearer"
// token and stores its ID under SessionIDKey.
//
// With required set, a missing token is rejected with 401. Without it the
// request continues anonymously. A token that is present but invalid is
// always rejected, so a client never silently loses its history. A nil
// sessions service means sessions are disabled: required routes answer 503.
func SessionAuth(sessions service.SessionService, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions == nil {
			if required {
				abortWithError(c, http.StatusServiceUnavailable, i18n.ErrKeySessionsDisabled)
				return
			}
			c.Next()
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			if required {
				abortWithError(c, http.StatusUnauthorized, i18n.ErrKeySessionRequired)
				return
			}
			c.Next()
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidSession)
			return
		}

		claims, err := sessions.Validate(strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
		if err != nil {
			log := logger.Logger()
			log.Debug().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("Rejected checkout session token")
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyInvalidSession)
			return
		}

		c.Set(string(SessionIDKey), claims.SessionID)
		c.Next()
	}
}

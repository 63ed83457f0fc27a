package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON error
// response when the handler has not written one. Validation errors map to
// 400; everything else is a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		log := logger.Logger()
		log.Error().
			Str("request_id", GetRequestID(c)).
			Str("session_id", GetSessionID(c)).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		var validationErr *dto.ValidationError
		if errors.As(err.Err, &validationErr) {
			c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeInvalidRequest, validationErr.Error()).
				WithRequestID(GetRequestID(c)))
			return
		}
		abortWithError(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
	}
}

// abortWithError aborts the request with a translated error body whose
// code follows the status.
func abortWithError(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(status, errorResp)
}

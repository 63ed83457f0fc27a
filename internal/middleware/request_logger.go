package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/logger"
	"github.com/guttosm/checkout-service/internal/service"
)

// RequestLogger logs every request to the console and, when
// loggingService is set, ships it to the log store as well.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      getLogLevel(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			SessionID:  GetSessionID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		log := logger.Logger().With().
			Str("request_id", entry.RequestID).
			Str("session_id", entry.SessionID).
			Str("method", entry.Method).
			Str("path", entry.Path).
			Int("status_code", entry.StatusCode).
			Int64("duration_ms", entry.Duration).
			Str("ip", entry.IP).
			Str("user_agent", entry.UserAgent).
			Logger()

		switch entry.Level {
		case "error":
			log.Error().Msg(entry.Message)
		case "warn":
			log.Warn().Msg(entry.Message)
		default:
			log.Info().Msg(entry.Message)
		}

		if loggingService != nil {
			ship(loggingService, entry)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

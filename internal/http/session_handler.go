package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// SessionHandler opens checkout sessions.
type SessionHandler struct {
	sessions       service.SessionService
	loggingService service.LoggingService
}

// NewSessionHandler creates a new SessionHandler. A nil sessions service
// answers 503.
func NewSessionHandler(sessions service.SessionService, loggingService service.LoggingService) *SessionHandler {
	return &SessionHandler{
		sessions:       sessions,
		loggingService: loggingService,
	}
}

// Create handles POST /api/sessions requests.
//
// @Summary      Open a checkout session
// @Description  Issues a signed session token. Send it as "Authorization: Bearer <token>" on checkout requests to keep a calculation history.
// @Tags         Sessions
// @Produce      json
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session opened"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Sessions are not configured"
// @Security     ApiKeyAuth
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.sessions == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySessionsDisabled, nil)
		return
	}

	session, err := h.sessions.Create()
	if err != nil {
		middleware.AuditLogError(h.loggingService, c, model.ActionSessionCreate, "Session creation failed", err, nil)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Set(string(middleware.SessionIDKey), session.SessionID)
	middleware.AuditLog(h.loggingService, c, model.ActionSessionCreate, "Checkout session opened", nil)

	builder.SuccessCreated(session)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// HistoryHandler serves the calculation history of checkout sessions.
// Its routes sit behind SessionAuth, which sets the session ID.
type HistoryHandler struct {
	store          service.HistoryStore
	loggingService service.LoggingService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store service.HistoryStore, loggingService service.LoggingService) *HistoryHandler {
	return &HistoryHandler{
		store:          store,
		loggingService: loggingService,
	}
}

// List handles GET /api/history requests.
//
// @Summary      Get session history
// @Description  Returns the calculations made with the session token, oldest first. Entries expire with the session's history TTL.
// @Tags         History
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Success      200 {object} dto.SuccessResponse{data=dto.HistoryResponse} "Session history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Sessions are not configured"
// @Security     SessionAuth
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeySessionRequired, nil)
		return
	}

	builder.SuccessOK(dto.HistoryResponse{
		SessionID: sessionID,
		Entries:   h.store.List(sessionID),
	})
}

// Clear handles DELETE /api/history requests.
//
// @Summary      Clear session history
// @Description  Drops every calculation recorded for the session. Clearing an empty history succeeds.
// @Tags         History
// @Produce      json
// @Param        Authorization header string true "Bearer session token"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Success      200 {object} dto.SuccessResponse{data=dto.MessageResponse} "History cleared"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid session token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      503 {object} dto.ErrorResponse "Sessions are not configured"
// @Security     SessionAuth
// @Router       /api/history [delete]
func (h *HistoryHandler) Clear(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeySessionRequired, nil)
		return
	}

	had := h.store.Clear(sessionID)
	middleware.AuditLog(h.loggingService, c, model.ActionHistoryClear, "Calculation history cleared", map[string]interface{}{
		"had_entries": had,
	})

	builder.SuccessOK(dto.MessageResponse{
		Message: i18n.GetTranslator().Translate(i18n.SuccessKeyHistoryCleared, i18n.GetLocale(c)),
	})
}

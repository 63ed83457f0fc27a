package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkout-service/internal/domain/dto"
	"github.com/guttosm/checkout-service/internal/domain/model"
	"github.com/guttosm/checkout-service/internal/i18n"
	"github.com/guttosm/checkout-service/internal/metrics"
	"github.com/guttosm/checkout-service/internal/middleware"
	"github.com/guttosm/checkout-service/internal/service"
)

// DefaultMaxItemsLength is the longest item sequence accepted by default.
const DefaultMaxItemsLength = 1000

// Handler provides HTTP handlers for the checkout routes.
type Handler struct {
	engine         service.PricingEngine
	receipts       service.ReceiptService
	history        service.HistoryStore
	loggingService service.LoggingService
	maxItemsLength int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithHistory records totals and breakdowns of session requests in store.
func WithHistory(store service.HistoryStore) HandlerOption {
	return func(h *Handler) {
		h.history = store
	}
}

// WithLoggingService enables audit logging of checkout actions.
func WithLoggingService(ls service.LoggingService) HandlerOption {
	return func(h *Handler) {
		h.loggingService = ls
	}
}

// WithMaxItemsLength caps the length of item sequences. Zero or less disables the cap.
func WithMaxItemsLength(n int) HandlerOption {
	return func(h *Handler) {
		h.maxItemsLength = n
	}
}

// NewHandler creates a new Handler. A nil receipts service is built on top of engine.
func NewHandler(engine service.PricingEngine, receipts service.ReceiptService, opts ...HandlerOption) *Handler {
	if receipts == nil {
		receipts = service.NewReceiptService(engine)
	}
	h := &Handler{
		engine:         engine,
		receipts:       receipts,
		maxItemsLength: DefaultMaxItemsLength,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// bindItems reads and validates the checkout request and returns the
// normalized sequence. On failure the error response is already written.
func (h *Handler) bindItems(c *gin.Context, builder *ResponseBuilder) (string, bool) {
	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return "", false
	}

	if err := req.Validate(h.maxItemsLength); err != nil {
		metrics.RecordCalculation(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		return "", false
	}

	return service.NormalizeItems(req.Items), true
}

// record stores the calculation in the session's history, if any.
func (h *Handler) record(c *gin.Context, items string, total int) {
	sessionID := middleware.GetSessionID(c)
	if h.history == nil || sessionID == "" {
		return
	}
	h.history.Record(sessionID, model.HistoryEntry{
		Input:     items,
		Output:    total,
		CreatedAt: time.Now(),
	})
}

func (h *Handler) observe(items string, start time.Time) {
	metrics.RecordCalculation(time.Since(start), "success")
	metrics.RecordItems(h.engine.Catalog().Tally(items).ByName())
}

// Total handles POST /api/checkout/total requests.
//
// @Summary      Price a sequence of items
// @Description  Computes the checkout total for a sequence of scanned items. Items are case-folded to uppercase; characters without a pricing rule are ignored. With a session token the calculation is added to the session's history. Supports idempotency via the Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Authorization header string false "Bearer session token"
// @Param        request body dto.CheckoutRequest true "Scanned items"
// @Success      200 {object} dto.SuccessResponse{data=dto.TotalResponse} "Checkout total"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body or sequence too long"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key or session token"
// @Failure      413 {object} dto.ErrorResponse "Request body too large"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/checkout/total [post]
func (h *Handler) Total(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	start := time.Now()
	total := h.engine.Total(items)
	h.observe(items, start)

	h.record(c, items, total)
	middleware.AuditLog(h.loggingService, c, model.ActionCalculate, "Checkout total calculated", map[string]interface{}{
		"items": items,
		"total": total,
	})

	builder.SuccessOK(dto.TotalResponse{Items: items, Total: total})
}

// Breakdown handles POST /api/checkout/breakdown requests.
//
// @Summary      Itemize a sequence of items
// @Description  Returns per-item counts, the special and regular rows that make up the price, the ignored characters and the total. The rows always add up to the total.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        Authorization header string false "Bearer session token"
// @Param        request body dto.CheckoutRequest true "Scanned items"
// @Success      200 {object} dto.SuccessResponse{data=model.Checkout} "Itemized checkout"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body or sequence too long"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key or session token"
// @Failure      413 {object} dto.ErrorResponse "Request body too large"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/checkout/breakdown [post]
func (h *Handler) Breakdown(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	start := time.Now()
	checkout := h.engine.Breakdown(items)
	h.observe(items, start)

	h.record(c, items, checkout.Total)
	middleware.AuditLog(h.loggingService, c, model.ActionBreakdown, "Checkout breakdown calculated", map[string]interface{}{
		"items": items,
		"total": checkout.Total,
		"lines": len(checkout.Lines),
	})

	builder.SuccessOK(checkout)
}

// Receipt handles POST /api/checkout/receipt requests.
//
// @Summary      Download a receipt
// @Description  Prices the sequence and returns a plain-text receipt as a file attachment named receipt-<unix millis>.txt.
// @Tags         Checkout
// @Accept       json
// @Produce      plain
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "Scanned items"
// @Success      200 {string} string "Receipt text"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid body, sequence too long or no items"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key or session token"
// @Failure      413 {object} dto.ErrorResponse "Request body too large"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/checkout/receipt [post]
func (h *Handler) Receipt(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, ok := h.bindItems(c, builder)
	if !ok {
		return
	}

	start := time.Now()
	receipt, err := h.receipts.Issue(items)
	if err != nil {
		if errors.Is(err, service.ErrEmptyReceipt) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyReceipt, err)
			return
		}
		middleware.AuditLogError(h.loggingService, c, model.ActionReceipt, "Receipt failed", err, nil)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	h.observe(items, start)

	filename := h.receipts.Filename(receipt)
	middleware.AuditLog(h.loggingService, c, model.ActionReceipt, "Receipt issued", map[string]interface{}{
		"items":    items,
		"total":    receipt.Total,
		"filename": filename,
	})

	builder.Attachment(filename, h.receipts.Render(receipt))
}

// PricingRules handles GET /api/pricing-rules requests.
//
// @Summary      List pricing rules
// @Description  Returns the pricing table: unit price and special offer of every item, in ascending item order.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.PricingRuleRow} "Pricing table"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/pricing-rules [get]
func (h *Handler) PricingRules(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.PricingRows(h.engine.Catalog()))
}

// Examples handles GET /api/examples requests.
//
// @Summary      List example baskets
// @Description  Returns sample item sequences together with their totals under the active catalog.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ExampleResponse} "Example baskets"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Security     ApiKeyAuth
// @Router       /api/examples [get]
func (h *Handler) Examples(c *gin.Context) {
	examples := make([]dto.ExampleResponse, 0, len(service.ExampleInputs))
	for _, input := range service.ExampleInputs {
		examples = append(examples, dto.ExampleResponse{
			Input: input,
			Total: h.engine.Total(input),
		})
	}
	NewResponseBuilder(c).SuccessOK(examples)
}

package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a feature or dependency is not available.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodePayloadTooLarge indicates a request body over the size limit.
	ErrCodePayloadTooLarge = "payload_too_large"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	// Example: {"items": "AAB", "total": 130}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: must be at most 1000 characters"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	default:
		return ErrCodeInternal
	}
}

// TotalResponse is the result of pricing a sequence.
// @Description Checkout total for a sequence of items
// @Example {"items": "AAABBD", "total": 190}
type TotalResponse struct {
	// Items is the sequence that was priced, after case folding
	Items string `json:"items" example:"AAABBD"`
	// Total is the price of the whole sequence
	Total int `json:"total" example:"190"`
} // @name TotalResponse

// PricingRuleRow is one row of the pricing table.
// @Description Pricing table row
// @Example {"item": "A", "unit_price": 50, "special_offer": "3 for 130"}
type PricingRuleRow struct {
	Item         string `json:"item" example:"A"`
	UnitPrice    int    `json:"unit_price" example:"50"`
	SpecialOffer string `json:"special_offer" example:"3 for 130"`
} // @name PricingRuleRow

// PricingRows lists the catalog's rules in ascending item order.
func PricingRows(c *model.Catalog) []PricingRuleRow {
	ids := c.Identifiers()
	rows := make([]PricingRuleRow, 0, len(ids))
	for _, id := range ids {
		rule, _ := c.Lookup(id)
		rows = append(rows, PricingRuleRow{
			Item:         string(id),
			UnitPrice:    rule.UnitPrice,
			SpecialOffer: rule.Offer(),
		})
	}
	return rows
}

// ExampleResponse pairs an example input with its total.
// @Description Example input and its computed total
// @Example {"input": "AAAB", "total": 160}
type ExampleResponse struct {
	Input string `json:"input" example:"AAAB"`
	Total int    `json:"total" example:"160"`
} // @name ExampleResponse

// HistoryResponse lists the calculations made in a checkout session, oldest first.
// @Description Calculation history of a checkout session
type HistoryResponse struct {
	SessionID string               `json:"session_id" example:"3f2b8c1e-8d5e-4c1a-9a57-6f1f0f7f2a11"`
	Entries   []model.HistoryEntry `json:"entries"`
} // @name HistoryResponse

// MessageResponse carries a translated confirmation message.
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Calculation history cleared"`
} // @name MessageResponse

// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"strconv"
	"unicode/utf8"
)

// CheckoutRequest is the JSON body of the checkout endpoints.
//
// Items is the scanned sequence, one character per unit. An empty string is
// a valid, empty basket. Characters without a pricing rule are ignored.
//
// @Description Scanned items to price, one character per unit
// @Example {"items": "AAABBD"}
type CheckoutRequest struct {
	// Items is the scanned item sequence, e.g. "AAABBD".
	Items string `json:"items" example:"AAABBD" maxLength:"1000"`
} // @name CheckoutRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate rejects sequences longer than maxLength characters.
// A non-positive maxLength disables the check.
func (r *CheckoutRequest) Validate(maxLength int) error {
	if maxLength > 0 && utf8.RuneCountInString(r.Items) > maxLength {
		return &ValidationError{
			Field:   "items",
			Message: "must be at most " + strconv.Itoa(maxLength) + " characters",
		}
	}
	return nil
}

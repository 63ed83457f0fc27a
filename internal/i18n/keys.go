package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that is not valid JSON for the endpoint.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflicting request, such as a reused idempotency key.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyRequestTooLarge indicates a request body over the size limit.
	ErrKeyRequestTooLarge = "error.request_too_large"
	// ErrKeyValidationItems indicates an items field that is too long.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyEmptyReceipt indicates a receipt was requested for no items.
	ErrKeyEmptyReceipt = "error.empty_receipt"
	// ErrKeySessionRequired indicates that a session token is required.
	ErrKeySessionRequired = "error.session_required"
	// ErrKeyInvalidSession indicates an invalid or expired session token.
	ErrKeyInvalidSession = "error.invalid_session"
	// ErrKeySessionsDisabled indicates the service has no session signing key.
	ErrKeySessionsDisabled = "error.sessions_disabled"
)

// Success message translation keys.
const (
	// SuccessKeyHistoryCleared indicates a session's history was cleared.
	SuccessKeyHistoryCleared = "success.history_cleared"
)

package dto

// SessionResponse is returned when a checkout session is opened.
//
// @Description A new checkout session and the bearer token that identifies it
// @Example {"session_id": "6f1c2b7e-8a9d-4e3f-b2c1-0d9e8f7a6b5c", "token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "expires_in": 86400}
type SessionResponse struct {
	// SessionID identifies the session's calculation history.
	SessionID string `json:"session_id" example:"6f1c2b7e-8a9d-4e3f-b2c1-0d9e8f7a6b5c"`
	// Token is the HS256 bearer token to send as "Authorization: Bearer <token>".
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"86400"`
} // @name SessionResponse

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"sid"`
}

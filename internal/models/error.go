package models

// API error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeAIError        = "AI_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
)

// ErrorResponse keeps "error" a plain message string; clients that only
// read that field keep working.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// Package apierror provides the JSON error envelope of the API.
// Handlers never put storage errors or stack traces into these.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries one message per rejected request field.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed.", Fields: fields}
}

// Internal is the body of every 500 response.
func Internal() *APIError {
	return New("Internal server error.")
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeConnection represents transport-level failures reaching the provider
	ErrTypeConnection ErrorType = "connection"
	// ErrTypeValidation represents malformed inbound requests
	ErrTypeValidation ErrorType = "validation"
	// ErrTypeConfig represents missing or invalid configuration
	ErrTypeConfig ErrorType = "config"
	// ErrTypeUpstream represents a non-success status returned by the provider
	ErrTypeUpstream ErrorType = "upstream"
	// ErrTypeTimeout represents a provider call that exceeded its deadline
	ErrTypeTimeout ErrorType = "timeout"
	// ErrTypeInternal represents anything else
	ErrTypeInternal ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Status  int                    `json:"status,omitempty"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	parts := []string{string(e.Type), e.Message}

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code))
	}

	if e.Status != 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCode adds an error code
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// ConnectionError creates a new connection error
func ConnectionError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeConnection,
		Message: msg,
		Cause:   cause,
	}
}

// ValidationError creates a new validation error
func ValidationError(msg string) *AppError {
	return &AppError{
		Type:    ErrTypeValidation,
		Message: msg,
	}
}

// ConfigError creates a new configuration error
func ConfigError(msg string) *AppError {
	return &AppError{
		Type:    ErrTypeConfig,
		Message: msg,
	}
}

// UpstreamError records a non-2xx answer from the provider. The message is
// whatever the provider said, or the HTTP status text.
func UpstreamError(status int, msg string) *AppError {
	return &AppError{
		Type:    ErrTypeUpstream,
		Message: msg,
		Status:  status,
	}
}

// TimeoutError creates a new timeout error for a provider endpoint
func TimeoutError(timeout time.Duration, endpoint string) *AppError {
	return &AppError{
		Type:    ErrTypeTimeout,
		Message: fmt.Sprintf("timeout after %dms for %s", timeout.Milliseconds(), endpoint),
		Context: map[string]interface{}{
			"timeout_ms": timeout.Milliseconds(),
			"endpoint":   endpoint,
		},
	}
}

// InternalError creates a new internal error
func InternalError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}

// As finds the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr, ok := As(err)
	if !ok {
		return false
	}
	return appErr.Type == errType
}

// GetType returns the error type if it's an AppError, otherwise returns ErrTypeInternal
func GetType(err error) ErrorType {
	if err == nil {
		return ""
	}

	appErr, ok := As(err)
	if !ok {
		return ErrTypeInternal
	}

	return appErr.Type
}

// TimeoutOf reports the timeout and endpoint carried by a timeout error.
func TimeoutOf(err error) (time.Duration, string, bool) {
	appErr, ok := As(err)
	if !ok || appErr.Type != ErrTypeTimeout {
		return 0, "", false
	}
	ms, _ := appErr.Context["timeout_ms"].(int64)
	endpoint, _ := appErr.Context["endpoint"].(string)
	return time.Duration(ms) * time.Millisecond, endpoint, true
}

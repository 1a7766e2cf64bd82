package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Error codes for classifying provider failures
const (
	ErrCodeAuthentication   = "authentication_error"
	ErrCodeRateLimit        = "rate_limit_exceeded"
	ErrCodeModelNotFound    = "model_not_found"
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeServerError      = "server_error"
	ErrCodeTimeout          = "timeout"
	ErrCodeResponseTooLarge = "response_too_large"
	ErrCodeUnavailable      = "unavailable"
)

// ProviderError is a typed error from a text generation provider
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a typed provider error
func NewProviderError(code, message string, err error) *ProviderError {
	return &ProviderError{Code: code, Message: message, Err: err}
}

// ErrorCode returns the provider error code of err, or "" if err is not a
// ProviderError.
func ErrorCode(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsTimeoutError reports whether err is a timeout
func IsTimeoutError(err error) bool {
	return ErrorCode(err) == ErrCodeTimeout
}

// IsUnavailable reports whether the provider refused the call without trying
func IsUnavailable(err error) bool {
	return ErrorCode(err) == ErrCodeUnavailable
}

// isCallerError reports failures caused by the request rather than the provider
func isCallerError(err error) bool {
	switch ErrorCode(err) {
	case ErrCodeInvalidRequest, ErrCodeModelNotFound, ErrCodeResponseTooLarge:
		return true
	}
	return false
}

// statusError is an HTTP error response from the completions API
type statusError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("llm: %d %s: %s", e.StatusCode, e.Type, e.Message)
}

// mapError translates HTTP and network errors into ProviderError values
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewProviderError(ErrCodeTimeout, "request timed out or cancelled", err)
	}

	var se *statusError
	if errors.As(err, &se) {
		switch {
		case se.StatusCode == 401 || se.StatusCode == 403:
			return NewProviderError(ErrCodeAuthentication, se.Message, err)
		case se.StatusCode == 429:
			return NewProviderError(ErrCodeRateLimit, se.Message, err)
		case se.StatusCode == 404 && strings.Contains(strings.ToLower(se.Message), "model"):
			return NewProviderError(ErrCodeModelNotFound, se.Message, err)
		case se.StatusCode >= 500:
			return NewProviderError(ErrCodeServerError, se.Message, err)
		case se.StatusCode >= 400:
			return NewProviderError(ErrCodeInvalidRequest, se.Message, err)
		}
	}

	msg := err.Error()
	if strings.Contains(msg, "Client.Timeout") {
		return NewProviderError(ErrCodeTimeout, "request timed out", err)
	}
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial tcp") {
		return NewProviderError(ErrCodeServerError, "text generation server unreachable", err)
	}

	return NewProviderError(ErrCodeServerError, "text generation error", err)
}

package advisor

import "errors"

// Caller-facing errors. Text generation failures never surface as errors;
// every generated answer has a deterministic fallback.
var (
	ErrGameNotFound       = errors.New("game not found")
	ErrSpecsRequired      = errors.New("pc specs required")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRequired      = errors.New("email required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// errGenerationDisabled is returned internally when no generator is configured
var errGenerationDisabled = errors.New("text generation disabled")

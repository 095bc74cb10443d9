package llm

import (
	"errors"
	"fmt"
)

// ClientError is the base error type for this package.
type ClientError struct {
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ProviderError represents a transport-level failure from a model
// provider. The reasoning loop treats every ProviderError the same way:
// abort the run and surface it to the caller.
type ProviderError struct {
	ClientError
	Provider   string
	StatusCode int
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("[%s] %s (status=%d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s", e.Provider, e.Message)
}

// Concrete provider error types.

type AuthError struct{ ProviderError }
type RateLimitError struct{ ProviderError }
type ServerError struct{ ProviderError }

// Non-provider errors.

type NetworkError struct{ ClientError }
type TimeoutError struct{ ClientError }

// ConfigError reports invalid construction-time configuration.
type ConfigError struct{ ClientError }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{ClientError{Message: fmt.Sprintf(format, args...)}}
}

// IsProviderError reports whether err is (or wraps) any provider-side
// transport failure, including the network and timeout kinds.
func IsProviderError(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return true
	}
	var ae *AuthError
	var rle *RateLimitError
	var se *ServerError
	var ne *NetworkError
	var te *TimeoutError
	return errors.As(err, &ae) || errors.As(err, &rle) ||
		errors.As(err, &se) || errors.As(err, &ne) || errors.As(err, &te)
}

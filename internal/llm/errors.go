package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable indicates the AI service is unreachable.
	ErrProviderUnavailable = errors.New("ai provider unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRejected indicates the provider answered with an error status.
	ErrRejected = errors.New("ai provider rejected request")

	// ErrMissingAPIKey indicates no credential is configured.
	ErrMissingAPIKey = errors.New("api key not configured")

	// ErrUnknownProvider indicates an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown ai provider")
)

// ConfigurationError blocks drafting until the user supplies a credential.
// Title and Steps are already localized for display.
type ConfigurationError struct {
	Provider Provider
	Title    string
	Steps    []string
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// StatusError carries a non-success HTTP status from the provider.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrRejected
}

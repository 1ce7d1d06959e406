package campaigns

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidKPI       = errors.New("invalid campaign KPI")
	ErrInvalidChannel   = errors.New("invalid delivery channel")
	ErrInvalidRequest   = errors.New("invalid campaign request")
	ErrGenerationFailed = errors.New("campaign generation failed, please retry")
	ErrNotConfigured    = errors.New("generation service is not configured")
	ErrMissingPrompt    = errors.New("prompt must not be empty")
	ErrMissingEditInput = errors.New("email_html and instructions must not be empty")
)

// ErrInternal is the generic response body for errors that match no domain
// sentinel.
var ErrInternal = errors.New("internal server error")

var sentinels = []error{
	ErrInvalidKPI,
	ErrInvalidChannel,
	ErrInvalidRequest,
	ErrGenerationFailed,
	ErrNotConfigured,
	ErrMissingPrompt,
	ErrMissingEditInput,
}

// PublicError reduces err to its matching domain sentinel so provider and
// pipeline detail never reaches an HTTP response body. The full error chain
// stays in the server log.
func PublicError(err error) error {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrInternal
}

// MapHTTPStatus translates domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidKPI),
		errors.Is(err, ErrInvalidChannel),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrMissingPrompt),
		errors.Is(err, ErrMissingEditInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotConfigured),
		errors.Is(err, ErrGenerationFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

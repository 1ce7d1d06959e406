package mailer

import (
	"errors"
	"net/http"
)

var (
	ErrMissingBody   = errors.New("at least one of 'text' or 'html' must be provided")
	ErrMissingFields = errors.New("'to' and 'subject' are required")
	ErrNotConfigured = errors.New("email provider is not configured")
	ErrProvider      = errors.New("email provider error")
)

// MapHTTPStatus translates mailer errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingBody),
		errors.Is(err, ErrMissingFields):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

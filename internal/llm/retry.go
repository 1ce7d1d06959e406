package llm

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"
)

// Policy bounds retry behavior around model calls.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// DefaultPolicy mirrors the service defaults: four attempts with exponential
// backoff between one and thirty seconds.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:    4,
		InitialBackoff: time.Second,
		MaxBackoff:     30 * time.Second,
	}
}

// Do invokes fn, retrying on transient errors with exponential backoff.
// onRetry runs before each sleep with the attempt number just failed.
// The final error is returned unwrapped.
func (p Policy) Do(ctx context.Context, onRetry func(attempt int, err error), fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := p.InitialBackoff

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == attempts || !IsTransient(err) {
			return err
		}
		if onRetry != nil {
			onRetry(attempt, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
			backoff = p.MaxBackoff
		}
	}
	return err
}

// Status markers treated as retryable when present in provider error text.
var transientMarkers = []string{
	"429", "500", "502", "503", "504",
	"rate limit", "timeout", "timed out",
	"connection refused", "connection reset", "unavailable",
}

// IsTransient reports whether err represents a retryable provider failure:
// rate limiting, server-side errors, timeouts, and connection faults.
// Client-side request and configuration errors are not retryable.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

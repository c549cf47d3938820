package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// StatusError is a non-2xx response from the compute container.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("container %s returned status %d", e.Path, e.StatusCode)
}

// IsTransient reports whether a container call failure should be retried at
// the queue level: 5xx, 404 (blob/model not ready yet), transport errors,
// and per-call deadline expiry. All other failures — 4xx and malformed
// responses — are permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

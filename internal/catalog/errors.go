package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"bookagent/internal/platform/openlibrary"
)

var (
	// ErrInvalidRequest is returned before any upstream call for a blank query or
	// an empty work key.
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("work not found")
)

// UpstreamError is a failed required fetch. Status is the upstream status code, or
// 502 when no response was received.
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream status %d: %v", e.Op, e.Status, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamFailure(op string, err error) error {
	status := http.StatusBadGateway
	var statusErr *openlibrary.StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.StatusCode
	}
	return &UpstreamError{Op: op, Status: status, Err: err}
}

func isNotFound(err error) bool {
	var statusErr *openlibrary.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

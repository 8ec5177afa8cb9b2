package remote

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/triscore/internal/core/domain"
)

// ErrUnsupportedScheme indicates a source URI uses a scheme other than http, https or file.
var ErrUnsupportedScheme = errors.New("remote: unsupported URI scheme")

// StatusError represents a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote: HTTP %s (URL: %s)", e.Status, e.URL)
}

// Unwrap lets callers match the error with domain.ErrFetchFailed, and with
// domain.ErrNotFound or domain.ErrRateLimited for 404 and 429 responses.
func (e *StatusError) Unwrap() []error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return []error{domain.ErrFetchFailed, domain.ErrNotFound}
	case http.StatusTooManyRequests:
		return []error{domain.ErrFetchFailed, domain.ErrRateLimited}
	default:
		return []error{domain.ErrFetchFailed}
	}
}

package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork classifies transport failures and timeouts. Callers cannot
// distinguish the two; retry is always a manual user action.
var ErrNetwork = errors.New("network failure")

// APIError is a non-2xx response from the backend. Detail carries the
// backend's user-facing message verbatim when the body exposes one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("remote returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("remote returned %d", e.Status)
}

// IsNetwork reports whether err is a transport failure or timeout.
func IsNetwork(err error) bool {
	return errors.Is(err, ErrNetwork)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// Detail returns the backend's detail message, or "" when err carries none.
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

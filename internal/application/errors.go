package application

import (
	"errors"

	"github.com/microservices-manager/admin-console/internal/ports"
)

// ValidationError is a draft problem caught before any request is issued. It
// never reaches the collection controller, so callers display it directly
// instead of reading the controller's surfaced message.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// errorMessage prefers the server-supplied message and falls back to a fixed
// per-operation string for transport failures without one.
func errorMessage(err error, fallback string) string {
	var apiErr *ports.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

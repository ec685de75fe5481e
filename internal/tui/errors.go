package tui

import (
	"errors"

	"github.com/MKhiriev/go-kv-keeper/internal/adapter"
)

// ErrUserQuit is returned from Run when the user closed the program instead
// of the program terminating on its own.
var ErrUserQuit = errors.New("user quit the program")

func humanizeError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, log in again"
	case errors.Is(err, adapter.ErrNotFound):
		return "Key not found"
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Server is overloaded, try again later"
	case errors.Is(err, adapter.ErrRequestTimeout):
		return "Request timed out"
	default:
		return err.Error()
	}
}

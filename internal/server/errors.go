package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/skillgap-analyzer/internal/db"
)

// Sentinel errors for API failure modes.
var (
	// ErrInvalidRequest indicates a request body that failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidAPIKey indicates a token request with a wrong operator key.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrHistoryDisabled indicates the server is running without a database,
	// so analysis history endpoints are unavailable.
	ErrHistoryDisabled = errors.New("analysis history is not configured")
)

// HTTPStatus maps an error to the appropriate HTTP status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidAPIKey):
		return http.StatusUnauthorized
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

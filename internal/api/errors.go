package api

import (
	"errors"
	"net/http"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/domain/match"
	"github.com/gradepath/gradepath-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrCountryNotFound),
		errors.Is(err, store.ErrCareerNotFound):
		return http.StatusNotFound

	// Upstream data unavailable: the engine fails closed rather than
	// evaluating against empty requirements.
	case errors.Is(err, store.ErrCatalogUnavailable),
		errors.Is(err, store.ErrCareerUnavailable),
		errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, match.ErrNilRequirements),
		errors.Is(err, domain.ErrInvalidQualificationLevel):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrCountryNotFound):
		return "Country not found"

	case errors.Is(err, store.ErrCareerNotFound):
		return "Career not found"

	case errors.Is(err, store.ErrCatalogUnavailable):
		return "Subject catalog temporarily unavailable"

	case errors.Is(err, store.ErrCareerUnavailable):
		return "Career requirements temporarily unavailable"

	case errors.Is(err, store.ErrUnavailable):
		return "Data source temporarily unavailable"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidQualificationLevel):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

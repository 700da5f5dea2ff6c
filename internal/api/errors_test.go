package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/domain/match"
	"github.com/gradepath/gradepath-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"country not found", store.ErrCountryNotFound, http.StatusNotFound},
		{"career not found", store.ErrCareerNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrCareerNotFound), http.StatusNotFound},
		{"catalog unavailable", store.ErrCatalogUnavailable, http.StatusServiceUnavailable},
		{"career unavailable", store.ErrCareerUnavailable, http.StatusServiceUnavailable},
		{"generic unavailable", store.ErrUnavailable, http.StatusServiceUnavailable},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"nil requirements", match.ErrNilRequirements, http.StatusBadRequest},
		{"invalid level", domain.ErrInvalidQualificationLevel, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Country not found", GetSafeErrorMessage(store.ErrCountryNotFound))
	assert.Equal(t, "Career not found",
		GetSafeErrorMessage(fmt.Errorf("lookup: %w", store.ErrCareerNotFound)))
	assert.Equal(t, "Subject catalog temporarily unavailable",
		GetSafeErrorMessage(store.ErrCatalogUnavailable))

	// Internal details never leak through.
	leaky := errors.New("pq: connection to 10.0.0.5 refused")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(leaky))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation
	// before being stored or after being loaded. Check the wrapped
	// error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnavailable is returned when the backing data source cannot be
	// reached and no usable snapshot exists. Evaluation must fail
	// closed on this error: an empty requirement set is
	// indistinguishable from "no requirements" and would misclassify
	// every career as trivially qualified.
	ErrUnavailable = errors.New("data source unavailable")

	// Entity-specific "not found" errors

	// ErrCountryNotFound indicates that no subject catalog exists for
	// the requested country code.
	ErrCountryNotFound = fmt.Errorf("%w: country", ErrNotFound)

	// ErrCareerNotFound indicates that the requested career does not
	// exist for the given country.
	ErrCareerNotFound = fmt.Errorf("%w: career", ErrNotFound)

	// Entity-specific "unavailable" errors

	// ErrCatalogUnavailable indicates that the subject catalog could
	// not be retrieved and no cached snapshot exists.
	ErrCatalogUnavailable = fmt.Errorf("%w: subject catalog", ErrUnavailable)

	// ErrCareerUnavailable indicates that career requirement data could
	// not be retrieved and no cached snapshot exists.
	ErrCareerUnavailable = fmt.Errorf("%w: career requirements", ErrUnavailable)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailableError checks if the error is any kind of "unavailable"
// error.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

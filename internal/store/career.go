package store

import (
	"context"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// CareerStore defines the interface for retrieving career requirement
// records.
// Version: 1.0
type CareerStore interface {
	// GetCareer retrieves a career with its per-qualification-level
	// requirement sets and institution source records.
	//
	// Returns ErrCareerNotFound when no such career exists for the
	// country.
	GetCareer(ctx context.Context, name, countryCode string) (*domain.Career, error)

	// ListCareers returns the career names available for a country.
	ListCareers(ctx context.Context, countryCode string) ([]string, error)
}

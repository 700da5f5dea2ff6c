package store

import (
	"context"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// CatalogStore defines the interface for retrieving per-country subject
// catalogs.
// Version: 1.0
type CatalogStore interface {
	// GetCatalog retrieves the full subject catalog for a country:
	// subject list, alias table, either/or groups and mandatory
	// subjects. Country codes are ISO-style (e.g. "ZA", "KE", "NG").
	//
	// Returns ErrCountryNotFound when the country is unknown; an
	// unknown country must fail explicitly, never silently return an
	// empty catalog.
	GetCatalog(ctx context.Context, countryCode string) (*domain.CountryCatalog, error)

	// ListCountries returns the country codes for which a catalog
	// exists.
	ListCountries(ctx context.Context) ([]string, error)
}

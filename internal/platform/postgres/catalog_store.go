package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/store"
)

// PostgresCatalogStore implements the store.CatalogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCatalogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL implementation of
// the CatalogStore interface. It accepts a database connection or
// transaction that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresCatalogStore(db store.DBTX, logger *slog.Logger) *PostgresCatalogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

// Ensure PostgresCatalogStore implements store.CatalogStore
var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// GetCatalog implements store.CatalogStore.GetCatalog.
// Returns store.ErrCountryNotFound when no subjects exist for the
// country code: an unknown country fails explicitly rather than
// producing an empty catalog.
func (s *PostgresCatalogStore) GetCatalog(
	ctx context.Context,
	countryCode string,
) (*domain.CountryCatalog, error) {
	subjects, err := s.querySubjects(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrCountryNotFound, countryCode)
	}

	aliases, err := s.queryAliases(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	groups, err := s.queryGroups(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	mandatory, err := s.queryMandatory(ctx, countryCode)
	if err != nil {
		return nil, err
	}

	cat, err := domain.NewCountryCatalog(countryCode, subjects, aliases, groups, mandatory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.logger.DebugContext(ctx, "catalog loaded",
		slog.String("country_code", countryCode),
		slog.Int("subjects", len(subjects)),
		slog.Int("groups", len(groups)))

	return cat, nil
}

// ListCountries implements store.CatalogStore.ListCountries.
func (s *PostgresCatalogStore) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT country_code FROM subjects ORDER BY country_code`)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan country code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (s *PostgresCatalogStore) querySubjects(
	ctx context.Context,
	countryCode string,
) ([]domain.SubjectCatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT standard_name, display_name, required
		FROM subjects
		WHERE country_code = $1
		ORDER BY standard_name`, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subjects []domain.SubjectCatalogEntry
	for rows.Next() {
		var entry domain.SubjectCatalogEntry
		if err := rows.Scan(&entry.StandardName, &entry.DisplayName, &entry.Required); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, entry)
	}
	return subjects, rows.Err()
}

func (s *PostgresCatalogStore) queryAliases(
	ctx context.Context,
	countryCode string,
) (domain.AliasMap, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT alias, standard_name
		FROM subject_aliases
		WHERE country_code = $1`, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query aliases: %w", err)
	}
	defer func() { _ = rows.Close() }()

	aliases := make(domain.AliasMap)
	for rows.Next() {
		var alias, std string
		if err := rows.Scan(&alias, &std); err != nil {
			return nil, fmt.Errorf("failed to scan alias: %w", err)
		}
		aliases[alias] = std
	}
	return aliases, rows.Err()
}

func (s *PostgresCatalogStore) queryGroups(
	ctx context.Context,
	countryCode string,
) ([]domain.EitherOrGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.description, g.min_required, g.max_allowed, m.standard_name
		FROM either_or_groups g
		JOIN either_or_group_members m ON m.group_id = g.id
		WHERE g.country_code = $1
		ORDER BY g.id, m.position`, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query either/or groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []domain.EitherOrGroup
	var lastID string
	for rows.Next() {
		var (
			id, description, member string
			minRequired, maxAllowed int
		)
		if err := rows.Scan(&id, &description, &minRequired, &maxAllowed, &member); err != nil {
			return nil, fmt.Errorf("failed to scan either/or group: %w", err)
		}

		if id != lastID {
			groups = append(groups, domain.EitherOrGroup{
				Description: description,
				MinRequired: minRequired,
				MaxAllowed:  maxAllowed,
			})
			lastID = id
		}
		groups[len(groups)-1].Subjects = append(groups[len(groups)-1].Subjects, member)
	}
	return groups, rows.Err()
}

func (s *PostgresCatalogStore) queryMandatory(
	ctx context.Context,
	countryCode string,
) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT standard_name
		FROM mandatory_subjects
		WHERE country_code = $1
		ORDER BY standard_name`, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query mandatory subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan mandatory subject: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

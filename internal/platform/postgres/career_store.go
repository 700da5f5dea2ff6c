package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/store"
)

// PostgresCareerStore implements the store.CareerStore interface using
// a PostgreSQL database as the storage backend.
type PostgresCareerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCareerStore creates a new PostgreSQL implementation of the
// CareerStore interface. If logger is nil, the default logger is used.
func NewPostgresCareerStore(db store.DBTX, logger *slog.Logger) *PostgresCareerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCareerStore{
		db:     db,
		logger: logger.With(slog.String("component", "career_store")),
	}
}

// Ensure PostgresCareerStore implements store.CareerStore
var _ store.CareerStore = (*PostgresCareerStore)(nil)

// GetCareer implements store.CareerStore.GetCareer.
// Returns store.ErrCareerNotFound when no career matches the name and
// country. The name comparison is case-insensitive.
func (s *PostgresCareerStore) GetCareer(
	ctx context.Context,
	name, countryCode string,
) (*domain.Career, error) {
	career := &domain.Career{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, country_code
		FROM careers
		WHERE lower(name) = lower($1) AND country_code = $2`,
		name, countryCode,
	).Scan(&career.ID, &career.Name, &career.CountryCode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s (%s)", store.ErrCareerNotFound, name, countryCode)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query career: %w", err)
	}

	requirements, err := s.queryRequirements(ctx, career.ID)
	if err != nil {
		return nil, err
	}
	career.Requirements = requirements

	if err := career.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.logger.DebugContext(ctx, "career loaded",
		slog.String("career", career.Name),
		slog.String("country_code", career.CountryCode),
		slog.Int("levels", len(career.Requirements)))

	return career, nil
}

// ListCareers implements store.CareerStore.ListCareers.
func (s *PostgresCareerStore) ListCareers(
	ctx context.Context,
	countryCode string,
) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM careers WHERE country_code = $1 ORDER BY name`,
		countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan career name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PostgresCareerStore) queryRequirements(
	ctx context.Context,
	careerID uuid.UUID,
) ([]domain.CareerRequirement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, level, aps_floor
		FROM career_requirements
		WHERE career_id = $1
		ORDER BY id`, careerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type reqRow struct {
		id       uuid.UUID
		level    string
		apsFloor int
	}
	var reqRows []reqRow
	for rows.Next() {
		var rr reqRow
		if err := rows.Scan(&rr.id, &rr.level, &rr.apsFloor); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		reqRows = append(reqRows, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	requirements := make([]domain.CareerRequirement, 0, len(reqRows))
	for _, rr := range reqRows {
		minGrades, err := s.queryMinGrades(ctx, rr.id)
		if err != nil {
			return nil, err
		}

		institutions, err := s.queryInstitutions(ctx, rr.id)
		if err != nil {
			return nil, err
		}

		requirements = append(requirements, domain.CareerRequirement{
			Level:        domain.QualificationLevel(rr.level),
			MinGrades:    minGrades,
			APSFloor:     rr.apsFloor,
			Institutions: institutions,
		})
	}

	return requirements, nil
}

func (s *PostgresCareerStore) queryMinGrades(
	ctx context.Context,
	requirementID uuid.UUID,
) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT standard_name, min_grade
		FROM requirement_subjects
		WHERE requirement_id = $1`, requirementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requirement subjects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	minGrades := make(map[string]float64)
	for rows.Next() {
		var (
			name  string
			grade float64
		)
		if err := rows.Scan(&name, &grade); err != nil {
			return nil, fmt.Errorf("failed to scan requirement subject: %w", err)
		}
		minGrades[name] = grade
	}
	return minGrades, rows.Err()
}

func (s *PostgresCareerStore) queryInstitutions(
	ctx context.Context,
	requirementID uuid.UUID,
) ([]domain.InstitutionSource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(url, ''), COALESCE(aps_required, 0),
		       COALESCE(notes, ''), COALESCE(verified_date, 'epoch'::timestamptz)
		FROM institutions
		WHERE requirement_id = $1
		ORDER BY name`, requirementID)
	if err != nil {
		return nil, fmt.Errorf("failed to query institutions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var institutions []domain.InstitutionSource
	for rows.Next() {
		var src domain.InstitutionSource
		if err := rows.Scan(
			&src.ID, &src.Institution, &src.URL,
			&src.APSRequired, &src.Notes, &src.VerifiedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan institution: %w", err)
		}
		institutions = append(institutions, src)
	}
	return institutions, rows.Err()
}

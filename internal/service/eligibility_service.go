package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/domain/aps"
	"github.com/gradepath/gradepath-api/internal/domain/match"
)

// DataProvider supplies catalog and career data to the evaluators.
// Implemented by CatalogService.
type DataProvider interface {
	Catalog(ctx context.Context, countryCode string) (*domain.CountryCatalog, error)
	Career(ctx context.Context, name, countryCode string) (*domain.Career, error)
}

// LevelEligibility pairs a qualification level with its evaluation
// result.
type LevelEligibility struct {
	Level  domain.QualificationLevel `json:"level"`
	Result domain.EligibilityResult  `json:"result"`
}

// LevelImprovements pairs a qualification level with its improvement
// map.
type LevelImprovements struct {
	Level        domain.QualificationLevel `json:"level"`
	Improvements domain.ImprovementMap     `json:"improvements"`
}

// UniversityReport is the APS score plus the ranked institution list
// across all qualification levels of a career.
type UniversityReport struct {
	APS          int                            `json:"aps"`
	Institutions []domain.UniversityEligibility `json:"institutions"`
}

// EligibilityService runs the pure matching engine against catalog and
// career data retrieved through the caching layer.
type EligibilityService struct {
	data              DataProvider
	matcher           match.Service
	enforceCompulsory bool
	logger            *slog.Logger
}

// NewEligibilityService creates an EligibilityService.
// enforceCompulsory is the default for the "enforce compulsory
// subjects" preference, applied when a request does not carry an
// explicit value. If logger is nil, the default logger is used.
func NewEligibilityService(
	data DataProvider,
	matcher match.Service,
	enforceCompulsory bool,
	logger *slog.Logger,
) *EligibilityService {
	if data == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("data provider cannot be nil")
	}
	if matcher == nil {
		matcher = match.NewDefaultService()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &EligibilityService{
		data:              data,
		matcher:           matcher,
		enforceCompulsory: enforceCompulsory,
		logger:            logger.With(slog.String("component", "eligibility_service")),
	}
}

// options resolves the per-request preference against the configured
// default.
func (s *EligibilityService) options(enforce *bool) match.Options {
	opts := match.Options{EnforceCompulsory: s.enforceCompulsory}
	if enforce != nil {
		opts.EnforceCompulsory = *enforce
	}
	return opts
}

// Evaluate classifies the grade set against every qualification level
// of the career.
func (s *EligibilityService) Evaluate(
	ctx context.Context,
	grades domain.GradeSet,
	careerName, countryCode string,
	enforce *bool,
) ([]LevelEligibility, error) {
	cat, career, err := s.load(ctx, careerName, countryCode)
	if err != nil {
		return nil, err
	}

	opts := s.options(enforce)
	results := make([]LevelEligibility, 0, len(career.Requirements))
	for _, req := range career.Requirements {
		result, err := s.matcher.Evaluate(grades, req.MinGrades, cat, opts)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s %s: %w", careerName, req.Level, err)
		}
		results = append(results, LevelEligibility{Level: req.Level, Result: result})
	}

	s.logger.DebugContext(ctx, "career evaluated",
		slog.String("career", careerName),
		slog.String("country_code", countryCode),
		slog.Int("levels", len(results)))

	return results, nil
}

// Improvements computes per-level point deficits for requirements the
// student attempted but did not meet.
func (s *EligibilityService) Improvements(
	ctx context.Context,
	grades domain.GradeSet,
	careerName, countryCode string,
	enforce *bool,
) ([]LevelImprovements, error) {
	cat, career, err := s.load(ctx, careerName, countryCode)
	if err != nil {
		return nil, err
	}

	opts := s.options(enforce)
	results := make([]LevelImprovements, 0, len(career.Requirements))
	for _, req := range career.Requirements {
		improvements, err := s.matcher.Improvements(grades, req.MinGrades, cat, opts)
		if err != nil {
			return nil, fmt.Errorf("improvements %s %s: %w", careerName, req.Level, err)
		}
		results = append(results, LevelImprovements{
			Level:        req.Level,
			Improvements: improvements,
		})
	}

	return results, nil
}

// APS computes the admission point score for a grade set under a
// country's catalog.
func (s *EligibilityService) APS(
	ctx context.Context,
	grades domain.GradeSet,
	countryCode string,
) (int, error) {
	cat, err := s.data.Catalog(ctx, countryCode)
	if err != nil {
		return 0, err
	}
	return aps.Score(grades, cat), nil
}

// Universities computes the APS score and classifies every institution
// source of the career, per qualification level, into a single ranked
// list.
func (s *EligibilityService) Universities(
	ctx context.Context,
	grades domain.GradeSet,
	careerName, countryCode string,
	enforce *bool,
) (*UniversityReport, error) {
	cat, career, err := s.load(ctx, careerName, countryCode)
	if err != nil {
		return nil, err
	}

	userAPS := aps.Score(grades, cat)
	opts := s.options(enforce)

	institutions := []domain.UniversityEligibility{}
	for _, req := range career.Requirements {
		if len(req.Institutions) == 0 {
			continue
		}

		result, err := s.matcher.Evaluate(grades, req.MinGrades, cat, opts)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s %s: %w", careerName, req.Level, err)
		}

		institutions = append(institutions, aps.ClassifyInstitutions(
			userAPS, req.Level, req.Institutions, req.APSFloor, result.Status,
		)...)
	}

	// Levels were classified independently; order the combined list.
	aps.Sort(institutions)

	return &UniversityReport{APS: userAPS, Institutions: institutions}, nil
}

func (s *EligibilityService) load(
	ctx context.Context,
	careerName, countryCode string,
) (*domain.CountryCatalog, *domain.Career, error) {
	cat, err := s.data.Catalog(ctx, countryCode)
	if err != nil {
		return nil, nil, err
	}

	career, err := s.data.Career(ctx, careerName, countryCode)
	if err != nil {
		return nil, nil, err
	}

	return cat, career, nil
}

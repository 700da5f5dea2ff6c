package match

import (
	"errors"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// Common errors
var (
	ErrNilCatalog      = errors.New("country catalog cannot be nil")
	ErrNilRequirements = errors.New("requirement set cannot be nil")
)

// Service defines the interface for grade-matching operations.
type Service interface {
	// Evaluate classifies a grade set against a requirement set.
	Evaluate(
		grades domain.GradeSet,
		req map[string]float64,
		cat *domain.CountryCatalog,
		opts Options,
	) (domain.EligibilityResult, error)

	// Improvements computes per-subject point deficits for attempted,
	// unmet requirements.
	Improvements(
		grades domain.GradeSet,
		req map[string]float64,
		cat *domain.CountryCatalog,
		opts Options,
	) (domain.ImprovementMap, error)

	// Normalize maps a raw subject-name spelling to its standard name.
	Normalize(raw string, cat *domain.CountryCatalog) string
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct{}

// NewDefaultService creates the standard matching service.
func NewDefaultService() Service {
	return &defaultService{}
}

func (s *defaultService) Evaluate(
	grades domain.GradeSet,
	req map[string]float64,
	cat *domain.CountryCatalog,
	opts Options,
) (domain.EligibilityResult, error) {
	if cat == nil {
		return domain.EligibilityResult{}, ErrNilCatalog
	}
	if req == nil {
		return domain.EligibilityResult{}, ErrNilRequirements
	}

	return Evaluate(grades, req, cat, opts), nil
}

func (s *defaultService) Improvements(
	grades domain.GradeSet,
	req map[string]float64,
	cat *domain.CountryCatalog,
	opts Options,
) (domain.ImprovementMap, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if req == nil {
		return nil, ErrNilRequirements
	}

	return Improvements(grades, req, cat, opts), nil
}

func (s *defaultService) Normalize(raw string, cat *domain.CountryCatalog) string {
	return Normalize(raw, cat)
}

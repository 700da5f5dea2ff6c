package api

import (
	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/service"
)

// EvaluationRequest is the shared request body for the eligibility,
// improvement and university endpoints. Grades map raw subject names to
// raw values: numbers, numeric strings, or null for "not entered".
// Coercion happens at the ingestion boundary via domain.ParseGradeSet.
type EvaluationRequest struct {
	CountryCode string         `json:"country_code" validate:"required,len=2,alpha"`
	Career      string         `json:"career"       validate:"required,min=1"`
	Grades      map[string]any `json:"grades"       validate:"required"`

	// EnforceCompulsorySubjects overrides the server default when set.
	EnforceCompulsorySubjects *bool `json:"enforce_compulsory_subjects,omitempty"`
}

// EligibilityResponse carries per-qualification-level evaluation
// results.
type EligibilityResponse struct {
	Career      string                     `json:"career"`
	CountryCode string                     `json:"country_code"`
	Levels      []service.LevelEligibility `json:"levels"`
}

// ImprovementsResponse carries per-qualification-level point deficits.
type ImprovementsResponse struct {
	Career      string                      `json:"career"`
	CountryCode string                      `json:"country_code"`
	Levels      []service.LevelImprovements `json:"levels"`
}

// UniversitiesResponse carries the APS score and the ranked institution
// list.
type UniversitiesResponse struct {
	Career       string                         `json:"career"`
	CountryCode  string                         `json:"country_code"`
	APS          int                            `json:"aps"`
	Institutions []domain.UniversityEligibility `json:"institutions"`
}

// CatalogResponse carries a country's subject catalog for grade-entry
// forms.
type CatalogResponse struct {
	CountryCode       string                       `json:"country_code"`
	Subjects          []domain.SubjectCatalogEntry `json:"subjects"`
	EitherOrGroups    []domain.EitherOrGroup       `json:"either_or_groups"`
	MandatorySubjects []string                     `json:"mandatory_subjects"`
}

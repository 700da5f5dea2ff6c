package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Career-specific validation errors
var (
	// ErrCareerNameEmpty is returned when a career has no name.
	ErrCareerNameEmpty = errors.New("career name cannot be empty")

	// ErrCareerCountryEmpty is returned when a career has no country code.
	ErrCareerCountryEmpty = errors.New("career country code cannot be empty")

	// ErrInvalidQualificationLevel is returned for an unrecognized level.
	ErrInvalidQualificationLevel = errors.New("invalid qualification level")
)

// QualificationLevel names a track under which a career's requirements
// differ by rigor.
type QualificationLevel string

// Recognized qualification levels, from most to least demanding.
const (
	LevelDegree      QualificationLevel = "Degree"
	LevelBTech       QualificationLevel = "BTech"
	LevelDiploma     QualificationLevel = "Diploma"
	LevelCertificate QualificationLevel = "Certificate"
)

// QualificationLevels lists all recognized levels in rigor order.
var QualificationLevels = []QualificationLevel{
	LevelDegree,
	LevelBTech,
	LevelDiploma,
	LevelCertificate,
}

// IsValid reports whether the level is one of the recognized tracks.
func (l QualificationLevel) IsValid() bool {
	switch l {
	case LevelDegree, LevelBTech, LevelDiploma, LevelCertificate:
		return true
	}
	return false
}

// InstitutionSource is one externally sourced record of an institution
// offering a qualification for a career. APSRequired is 0 when the
// source did not state an admission-point-score requirement.
type InstitutionSource struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	URL          string    `json:"url,omitempty"`
	APSRequired  int       `json:"aps_required,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	VerifiedDate time.Time `json:"verified_date,omitempty"`
}

// CareerRequirement is the minimum-grade map for one qualification level
// of a career. Keys are standard subject names; values are minimum
// required percentages. APSFloor is an optional admission-point-score
// floor (0 means none declared).
type CareerRequirement struct {
	Level        QualificationLevel  `json:"level"`
	MinGrades    map[string]float64  `json:"min_grades"`
	APSFloor     int                 `json:"aps_floor,omitempty"`
	Institutions []InstitutionSource `json:"institutions,omitempty"`
}

// Career groups the per-level requirement sets for one career in one
// country.
type Career struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	CountryCode  string              `json:"country_code"`
	Requirements []CareerRequirement `json:"requirements"`
}

// Validate checks the career's identifying fields and levels.
func (c *Career) Validate() error {
	if c.Name == "" {
		return ErrCareerNameEmpty
	}
	if c.CountryCode == "" {
		return ErrCareerCountryEmpty
	}
	for _, r := range c.Requirements {
		if !r.Level.IsValid() {
			return ErrInvalidQualificationLevel
		}
	}
	return nil
}

// RequirementFor returns the requirement set for a level, or nil when
// the career declares none for it.
func (c *Career) RequirementFor(level QualificationLevel) *CareerRequirement {
	for i := range c.Requirements {
		if c.Requirements[i].Level == level {
			return &c.Requirements[i]
		}
	}
	return nil
}

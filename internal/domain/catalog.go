package domain

import (
	"errors"
	"strings"
)

// Catalog-specific validation errors
var (
	// ErrCountryCodeEmpty is returned when a catalog has no country code.
	ErrCountryCodeEmpty = errors.New("catalog country code cannot be empty")

	// ErrCatalogNoSubjects is returned when a catalog contains no subjects.
	ErrCatalogNoSubjects = errors.New("catalog must contain at least one subject")

	// ErrGroupTooSmall is returned when an either/or group declares fewer
	// than two subjects.
	ErrGroupTooSmall = errors.New("either/or group must contain at least two subjects")
)

// SubjectCatalogEntry describes one subject of a country's curriculum.
type SubjectCatalogEntry struct {
	StandardName string `json:"standard_name"`
	DisplayName  string `json:"display_name"`
	Required     bool   `json:"required"`
}

// AliasMap maps an arbitrary local spelling (including full display names)
// to a standard subject name. Many aliases may point at one standard name.
type AliasMap map[string]string

// EitherOrGroup declares a set of mutually substitutable subjects. A
// requirement expressed against any member of the group may be satisfied
// by the best grade among whichever members the student entered.
type EitherOrGroup struct {
	// Subjects is the ordered set of standard names in the group. At
	// least two are required.
	Subjects []string `json:"subjects"`

	// Description is the human-readable label used for the group in
	// missing/close lists (e.g. "Mathematics or Mathematical Literacy").
	Description string `json:"description"`

	// MinRequired and MaxAllowed bound how many group members may count
	// toward a requirement. Both default to 1.
	MinRequired int `json:"min_required"`
	MaxAllowed  int `json:"max_allowed"`
}

// Contains reports whether the group declares the given standard name.
func (g *EitherOrGroup) Contains(standardName string) bool {
	for _, s := range g.Subjects {
		if s == standardName {
			return true
		}
	}
	return false
}

// Label returns the display label for the group, falling back to a
// joined member list when no description was declared.
func (g *EitherOrGroup) Label() string {
	if g.Description != "" {
		return g.Description
	}
	return strings.Join(g.Subjects, " / ")
}

// CountryCatalog is the full subject catalog for one country: the subject
// list, the alias table, the declared either/or groups and the set of
// compulsory subjects. It is supplied as read-only data by an external
// store and treated as immutable by the engine.
type CountryCatalog struct {
	CountryCode       string                `json:"country_code"`
	Subjects          []SubjectCatalogEntry `json:"subjects"`
	Aliases           AliasMap              `json:"aliases"`
	EitherOrGroups    []EitherOrGroup       `json:"either_or_groups"`
	MandatorySubjects []string              `json:"mandatory_subjects"`
}

// NewCountryCatalog builds a catalog and applies group defaults.
// Returns an error if validation fails.
func NewCountryCatalog(
	countryCode string,
	subjects []SubjectCatalogEntry,
	aliases AliasMap,
	groups []EitherOrGroup,
	mandatory []string,
) (*CountryCatalog, error) {
	cat := &CountryCatalog{
		CountryCode:       countryCode,
		Subjects:          subjects,
		Aliases:           aliases,
		EitherOrGroups:    groups,
		MandatorySubjects: mandatory,
	}

	for i := range cat.EitherOrGroups {
		if cat.EitherOrGroups[i].MinRequired == 0 {
			cat.EitherOrGroups[i].MinRequired = 1
		}
		if cat.EitherOrGroups[i].MaxAllowed == 0 {
			cat.EitherOrGroups[i].MaxAllowed = 1
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Validate checks that the catalog is structurally sound.
func (c *CountryCatalog) Validate() error {
	if c.CountryCode == "" {
		return ErrCountryCodeEmpty
	}

	if len(c.Subjects) == 0 {
		return ErrCatalogNoSubjects
	}

	for _, g := range c.EitherOrGroups {
		if len(g.Subjects) < 2 {
			return ErrGroupTooSmall
		}
	}

	return nil
}

// GroupFor returns the either/or group containing the given standard
// name, or nil if the subject belongs to no group.
func (c *CountryCatalog) GroupFor(standardName string) *EitherOrGroup {
	for i := range c.EitherOrGroups {
		if c.EitherOrGroups[i].Contains(standardName) {
			return &c.EitherOrGroups[i]
		}
	}
	return nil
}

// DisplayNameFor returns the display name for a standard subject name,
// falling back to the name itself when the subject is not cataloged.
func (c *CountryCatalog) DisplayNameFor(standardName string) string {
	for _, s := range c.Subjects {
		if s.StandardName == standardName {
			if s.DisplayName != "" {
				return s.DisplayName
			}
			return s.StandardName
		}
	}
	return standardName
}

// Mandatory returns the set of compulsory standard names: every catalog
// entry flagged required plus the explicit mandatory-subject list.
func (c *CountryCatalog) Mandatory() map[string]bool {
	m := make(map[string]bool, len(c.MandatorySubjects))
	for _, s := range c.Subjects {
		if s.Required {
			m[s.StandardName] = true
		}
	}
	for _, name := range c.MandatorySubjects {
		m[name] = true
	}
	return m
}

package aps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepath/gradepath-api/internal/domain"
)

func TestNormalizeInstitution(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"filler words stripped", "University of Cape Town", "cape town"},
		{"leading article stripped", "The University of Pretoria", "pretoria"},
		{"case and whitespace collapsed", "  UNIVERSITY   OF   Johannesburg ", "johannesburg"},
		{"non-university names pass through", "Stellenbosch", "stellenbosch"},
		{"empty input", "", ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, NormalizeInstitution(tc.input))
		})
	}
}

func TestDedupe(t *testing.T) {
	t.Parallel()

	sources := []domain.InstitutionSource{
		{Institution: "University of Cape Town", APSRequired: 36, URL: "https://uct.example/a"},
		{Institution: "Stellenbosch University", APSRequired: 30},
		{Institution: "Cape Town University", APSRequired: 32, URL: "https://uct.example/b"},
		{Institution: "STELLENBOSCH", APSRequired: 33},
	}

	got := Dedupe(sources)

	assert.Len(t, got, 2)
	// The lower APS variant of each duplicate wins; first-seen order holds.
	assert.Equal(t, "Cape Town University", got[0].Institution)
	assert.Equal(t, 32, got[0].APSRequired)
	assert.Equal(t, "Stellenbosch University", got[1].Institution)
	assert.Equal(t, 30, got[1].APSRequired)
}

func TestCombineStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		aps      domain.EligibilityStatus
		subjects domain.EligibilityStatus
		expected domain.EligibilityStatus
	}{
		{"both qualified", domain.StatusQualified, domain.StatusQualified, domain.StatusQualified},
		{"aps qualified subjects close", domain.StatusQualified, domain.StatusClose, domain.StatusClose},
		{"aps close subjects qualified", domain.StatusClose, domain.StatusQualified, domain.StatusClose},
		{"aps short subjects qualified", domain.StatusNotEligible, domain.StatusQualified, domain.StatusClose},
		{"aps qualified subjects far off", domain.StatusQualified, domain.StatusNotEligible, domain.StatusClose},
		{"both out of reach", domain.StatusNotEligible, domain.StatusNeedsImprovement, domain.StatusNotEligible},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, combineStatus(tc.aps, tc.subjects))
		})
	}
}

func TestAPSStatusWindow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.StatusQualified, apsStatus(0))
	assert.Equal(t, domain.StatusQualified, apsStatus(5))
	assert.Equal(t, domain.StatusClose, apsStatus(-1))
	assert.Equal(t, domain.StatusClose, apsStatus(-3))
	assert.Equal(t, domain.StatusNotEligible, apsStatus(-4))
}

func TestClassifyInstitutions(t *testing.T) {
	t.Parallel()

	sources := []domain.InstitutionSource{
		{Institution: "University of Cape Town", APSRequired: 36},
		{Institution: "University of Pretoria", APSRequired: 30},
		{Institution: "Walter Sisulu University", APSRequired: 0},
		{Institution: "University of the Witwatersrand", APSRequired: 34},
	}

	got := ClassifyInstitutions(32, domain.LevelDegree, sources, 26, domain.StatusQualified)

	assert.Len(t, got, 4)

	// Ordered by accessibility, ties by ascending APS requirement.
	assert.Equal(t, "Walter Sisulu University", got[0].Institution)
	assert.Equal(t, 26, got[0].APSRequired, "zero requirement falls back to the level floor")
	assert.Equal(t, domain.StatusQualified, got[0].Status)
	assert.Equal(t, 6, got[0].APSDifference)

	assert.Equal(t, "University of Pretoria", got[1].Institution)
	assert.Equal(t, domain.StatusQualified, got[1].Status)

	assert.Equal(t, "University of the Witwatersrand", got[2].Institution)
	assert.Equal(t, domain.StatusClose, got[2].Status)
	assert.Equal(t, -2, got[2].APSDifference)

	assert.Equal(t, "University of Cape Town", got[3].Institution)
	assert.Equal(t, domain.StatusClose, got[3].Status,
		"subject-qualified keeps an out-of-reach APS within close")

	for _, u := range got {
		assert.Equal(t, 32, u.UserAPS)
		assert.Equal(t, domain.LevelDegree, u.QualificationLevel)
	}
}

func TestClassifyInstitutionsSubjectsNotEligible(t *testing.T) {
	t.Parallel()

	sources := []domain.InstitutionSource{
		{Institution: "University of Pretoria", APSRequired: 40},
	}

	got := ClassifyInstitutions(20, domain.LevelDiploma, sources, 0, domain.StatusNeedsImprovement)

	assert.Len(t, got, 1)
	assert.Equal(t, domain.StatusNotEligible, got[0].Status)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareerValidate(t *testing.T) {
	t.Parallel()

	valid := Career{
		Name:        "Engineer",
		CountryCode: "ZA",
		Requirements: []CareerRequirement{
			{Level: LevelDegree, MinGrades: map[string]float64{"Math": 70}},
		},
	}
	assert.NoError(t, valid.Validate())

	noName := Career{CountryCode: "ZA"}
	assert.ErrorIs(t, noName.Validate(), ErrCareerNameEmpty)

	noCountry := Career{Name: "Engineer"}
	assert.ErrorIs(t, noCountry.Validate(), ErrCareerCountryEmpty)

	badLevel := Career{
		Name:         "Engineer",
		CountryCode:  "ZA",
		Requirements: []CareerRequirement{{Level: "Masters"}},
	}
	assert.ErrorIs(t, badLevel.Validate(), ErrInvalidQualificationLevel)
}

func TestCareerRequirementFor(t *testing.T) {
	t.Parallel()

	career := Career{
		Name:        "Engineer",
		CountryCode: "ZA",
		Requirements: []CareerRequirement{
			{Level: LevelDegree, APSFloor: 30},
			{Level: LevelDiploma, APSFloor: 24},
		},
	}

	degree := career.RequirementFor(LevelDegree)
	assert.NotNil(t, degree)
	assert.Equal(t, 30, degree.APSFloor)

	assert.Nil(t, career.RequirementFor(LevelCertificate))
}

func TestQualificationLevelIsValid(t *testing.T) {
	t.Parallel()

	for _, l := range QualificationLevels {
		assert.True(t, l.IsValid(), "level %q", l)
	}
	assert.False(t, QualificationLevel("Masters").IsValid())
	assert.False(t, QualificationLevel("").IsValid())
}

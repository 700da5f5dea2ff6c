package aps

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

func TestBand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		grade    float64
		expected int
	}{
		{100, 7},
		{80, 7},
		{79.9, 6},
		{70, 6},
		{69, 5},
		{60, 5},
		{59, 4},
		{50, 4},
		{49, 3},
		{40, 3},
		{39, 2},
		{30, 2},
		{29, 1},
		{0, 1},
		{-5, 1},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Band(tc.grade), "Band(%v)", tc.grade)
	}
}

func TestScore(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	testCases := []struct {
		name     string
		grades   domain.GradeSet
		expected int
	}{
		{
			name: "six subjects plus Life Orientation",
			grades: domain.GradeSet{
				"Math":            80,
				"English":         75,
				"Physics":         68,
				"Biology":         55,
				"Geography":       42,
				"Accounting":      31,
				"LifeOrientation": 65,
			},
			// 7+6+5+4+3+2 = 27, plus LO banded at 5.
			expected: 32,
		},
		{
			name: "Life Orientation points capped at six",
			grades: domain.GradeSet{
				"Math":             90,
				"Life Orientation": 95,
			},
			expected: 13,
		},
		{
			name: "only the top six non-LO subjects count",
			grades: domain.GradeSet{
				"Math":       80,
				"English":    80,
				"Physics":    80,
				"Biology":    80,
				"Geography":  80,
				"Accounting": 80,
				"History":    25,
			},
			expected: 42,
		},
		{
			name:     "fewer than six subjects",
			grades:   domain.GradeSet{"Math": 70, "English": 55},
			expected: 10,
		},
		{
			name:     "empty grade set",
			grades:   domain.GradeSet{},
			expected: 0,
		},
		{
			name: "LO alias spelling is recognized",
			grades: domain.GradeSet{
				"Math": 70,
				"LO":   65,
			},
			expected: 11,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Score(tc.grades, cat))
		})
	}
}

func TestScoreNilCatalog(t *testing.T) {
	t.Parallel()

	// Without a catalog the literal standard spelling still matches.
	grades := domain.GradeSet{"Math": 70, "LifeOrientation": 95}
	assert.Equal(t, 12, Score(grades, nil))
}

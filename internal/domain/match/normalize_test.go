package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "exact alias match",
			raw:      "Mathematics",
			expected: "Math",
		},
		{
			name:     "alias keys are exact, casing falls through to other rules",
			raw:      "maths",
			expected: "Math", // via the generic fallback table
		},
		{
			name:     "standard name case-insensitive",
			raw:      "mAtH",
			expected: "Math",
		},
		{
			name:     "display name exact",
			raw:      "Physical Sciences",
			expected: "Physics",
		},
		{
			name:     "display name case-insensitive",
			raw:      "physical sciences",
			expected: "Physics",
		},
		{
			name:     "generic fallback",
			raw:      "Computer Studies",
			expected: "IT",
		},
		{
			name:     "unknown name passes through unchanged",
			raw:      "Woodwork",
			expected: "Woodwork",
		},
		{
			name:     "empty string passes through",
			raw:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Normalize(tc.raw, cat))
		})
	}
}

func TestNormalizeNilCatalog(t *testing.T) {
	t.Parallel()

	// Without a catalog only the generic table applies.
	assert.Equal(t, "Math", Normalize("mathematics", nil))
	assert.Equal(t, "Biology", Normalize("Life Sciences", nil))
	assert.Equal(t, "Unknown Subject", Normalize("Unknown Subject", nil))
}

func TestNormalizeAliasWinsOverCatalog(t *testing.T) {
	t.Parallel()

	// An exact alias entry takes precedence over every other rule.
	cat, err := domain.NewCountryCatalog(
		"KE",
		[]domain.SubjectCatalogEntry{
			{StandardName: "Math", DisplayName: "Mathematics"},
			{StandardName: "Physics", DisplayName: "Physics"},
		},
		domain.AliasMap{"Physics": "Math"},
		nil,
		nil,
	)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	assert.Equal(t, "Math", Normalize("Physics", cat))
}

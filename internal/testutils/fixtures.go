package testutils

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// NewTestLogger returns a logger that discards output, for constructors
// that require one.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ZACatalog builds the ZA (South Africa) subject catalog used across
// engine tests: common subjects, alias spellings, the Math/MathLiteracy
// and English home/first-additional-language either/or groups, and the
// compulsory-subject set.
func ZACatalog(t *testing.T) *domain.CountryCatalog {
	t.Helper()

	cat, err := domain.NewCountryCatalog(
		"ZA",
		[]domain.SubjectCatalogEntry{
			{StandardName: "Math", DisplayName: "Mathematics", Required: true},
			{StandardName: "MathLiteracy", DisplayName: "Mathematical Literacy"},
			{StandardName: "English", DisplayName: "English Home Language", Required: true},
			{StandardName: "EnglishFAL", DisplayName: "English First Additional Language"},
			{StandardName: "Physics", DisplayName: "Physical Sciences"},
			{StandardName: "Biology", DisplayName: "Life Sciences"},
			{StandardName: "Geography", DisplayName: "Geography"},
			{StandardName: "Accounting", DisplayName: "Accounting"},
			{StandardName: "IT", DisplayName: "Information Technology"},
			{StandardName: "CAT", DisplayName: "Computer Applications Technology"},
			{StandardName: "LifeOrientation", DisplayName: "Life Orientation", Required: true},
		},
		domain.AliasMap{
			"Mathematics":           "Math",
			"Maths":                 "Math",
			"Mathematical Literacy": "MathLiteracy",
			"Physical Sciences":     "Physics",
			"Life Sciences":         "Biology",
			"Life Orientation":      "LifeOrientation",
			"LO":                    "LifeOrientation",
		},
		[]domain.EitherOrGroup{
			{
				Subjects:    []string{"Math", "MathLiteracy"},
				Description: "Mathematics or Mathematical Literacy",
			},
			{
				Subjects:    []string{"English", "EnglishFAL"},
				Description: "English Home Language or First Additional Language",
			},
		},
		[]string{"Math", "English", "LifeOrientation"},
	)
	require.NoError(t, err)

	return cat
}

// GrouplessCatalog builds a minimal catalog without either/or groups,
// for tests that exercise standalone-subject paths only.
func GrouplessCatalog(t *testing.T) *domain.CountryCatalog {
	t.Helper()

	cat, err := domain.NewCountryCatalog(
		"ZA",
		[]domain.SubjectCatalogEntry{
			{StandardName: "Math", DisplayName: "Mathematics"},
			{StandardName: "English", DisplayName: "English Home Language"},
			{StandardName: "Physics", DisplayName: "Physical Sciences"},
			{StandardName: "Biology", DisplayName: "Life Sciences"},
		},
		domain.AliasMap{},
		nil,
		nil,
	)
	require.NoError(t, err)

	return cat
}

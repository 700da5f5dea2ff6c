package match

import (
	"strings"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// genericAliases covers common cross-curriculum spellings used as a
// fallback when a country's own alias table has no entry. Keys are
// lowercased; values are standard names.
//
// This table is the single source of truth for generic normalization.
// Other components resolve names through Normalize rather than keeping
// alias tables of their own.
var genericAliases = map[string]string{
	"mathematics":                      "Math",
	"maths":                            "Math",
	"pure mathematics":                 "Math",
	"mathematical literacy":            "MathLiteracy",
	"mathematics literacy":             "MathLiteracy",
	"maths literacy":                   "MathLiteracy",
	"physical science":                 "Physics",
	"physical sciences":                "Physics",
	"life science":                     "Biology",
	"life sciences":                    "Biology",
	"natural science":                  "Biology",
	"computer":                         "IT",
	"computers":                        "IT",
	"computer science":                 "IT",
	"computer studies":                 "IT",
	"information technology":           "IT",
	"computer applications technology": "CAT",
	"english language":                 "English",
	"english home language":            "English",
	"life orientation":                 "LifeOrientation",
	"accountancy":                      "Accounting",
	"business":                         "BusinessStudies",
	"business studies":                 "BusinessStudies",
	"economic":                         "Economics",
	"economics":                        "Economics",
	"geo":                              "Geography",
	"bio":                              "Biology",
}

// Normalize maps any raw subject-name spelling or casing to a standard
// name. Resolution order, first match wins:
//
//  1. exact key in the country's alias table
//  2. case-insensitive match against a cataloged standard name
//  3. exact, then case-insensitive, match against a display name
//  4. the generic cross-curriculum alias table, case-insensitively
//  5. pass-through: the raw name unchanged
//
// Normalization is advisory, not authoritative: an unrecognized name
// degrades to pass-through rather than failing, so this function is
// total and never errors.
func Normalize(raw string, cat *domain.CountryCatalog) string {
	if cat != nil {
		if std, ok := cat.Aliases[raw]; ok {
			return std
		}

		for _, s := range cat.Subjects {
			if strings.EqualFold(s.StandardName, raw) {
				return s.StandardName
			}
		}

		for _, s := range cat.Subjects {
			if s.DisplayName == raw || strings.EqualFold(s.DisplayName, raw) {
				return s.StandardName
			}
		}
	}

	if std, ok := genericAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return std
	}

	return raw
}

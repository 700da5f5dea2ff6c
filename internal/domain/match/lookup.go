package match

import (
	"strings"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// itCatAliases is the bidirectional alias between the information-
// technology subject families that are mutually substitutable in some
// curricula.
var itCatAliases = map[string]string{
	"IT":  "CAT",
	"CAT": "IT",
}

// GradeFor resolves a grade for a subject out of a raw grade set.
// Resolution order: exact key, normalized standard name as key,
// case-insensitive scan of the keys' normalized forms, the IT/CAT
// bidirectional alias, and finally any sibling in the subject's
// either/or group. Returns 0 when nothing is found; never errors.
func GradeFor(grades domain.GradeSet, subject string, cat *domain.CountryCatalog) float64 {
	if grade, ok := directGrade(grades, subject, cat); ok {
		return grade
	}

	std := Normalize(subject, cat)
	if cat != nil {
		if grp := cat.GroupFor(std); grp != nil {
			if grade, ok := bestSiblingGrade(grades, grp, std, cat); ok {
				return grade
			}
		}
	}

	return 0
}

// IsEntered mirrors GradeFor's resolution order but reports existence
// rather than value. It additionally returns true when any sibling in
// the subject's either/or group is entered, which is what decides
// whether a requirement should be scored at all: unattempted subjects
// are excluded from scoring, not penalized.
func IsEntered(grades domain.GradeSet, subject string, cat *domain.CountryCatalog) bool {
	if _, ok := directGrade(grades, subject, cat); ok {
		return true
	}

	std := Normalize(subject, cat)
	if cat != nil {
		if grp := cat.GroupFor(std); grp != nil {
			if _, ok := bestSiblingGrade(grades, grp, std, cat); ok {
				return true
			}
		}
	}

	return false
}

// directGrade resolves a subject without consulting either/or groups.
// The bool result distinguishes "entered with grade 0" from "absent".
func directGrade(
	grades domain.GradeSet,
	subject string,
	cat *domain.CountryCatalog,
) (float64, bool) {
	if grade, ok := rawGrade(grades, subject, cat); ok {
		return grade, ok
	}

	// IT and CAT substitute for each other in either direction.
	std := Normalize(subject, cat)
	if alias, ok := itCatAliases[std]; ok {
		return rawGrade(grades, alias, cat)
	}

	return 0, false
}

// rawGrade performs the key-level resolution: exact key, normalized
// standard name, then a scan comparing every key's normalized form
// case-insensitively. When several keys normalize to the same subject,
// the best grade among them wins so the result does not depend on map
// iteration order.
func rawGrade(
	grades domain.GradeSet,
	subject string,
	cat *domain.CountryCatalog,
) (float64, bool) {
	if grade, ok := grades[subject]; ok {
		return grade, true
	}

	std := Normalize(subject, cat)
	if grade, ok := grades[std]; ok {
		return grade, true
	}

	best, found := 0.0, false
	for key, grade := range grades {
		if strings.EqualFold(Normalize(key, cat), std) {
			if !found || grade > best {
				best = grade
			}
			found = true
		}
	}
	return best, found
}

// bestSiblingGrade returns the best grade among the entered siblings of
// a subject within its either/or group.
func bestSiblingGrade(
	grades domain.GradeSet,
	grp *domain.EitherOrGroup,
	std string,
	cat *domain.CountryCatalog,
) (float64, bool) {
	best, found := 0.0, false
	for _, sibling := range grp.Subjects {
		if sibling == std {
			continue
		}
		if grade, ok := directGrade(grades, sibling, cat); ok {
			if !found || grade > best {
				best = grade
			}
			found = true
		}
	}
	return best, found
}

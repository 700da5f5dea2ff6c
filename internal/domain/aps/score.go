package aps

import (
	"sort"
	"strings"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/domain/match"
)

// lifeOrientationStandard is the standard name of the Life
// Orientation-equivalent subject after normalization.
const lifeOrientationStandard = "LifeOrientation"

// lifeOrientationCap is the maximum points Life Orientation may add to
// an APS. The subject is excluded from the top-six selection and its
// banded value is capped separately.
const lifeOrientationCap = 6

// scoredSubjects is how many subjects, excluding Life Orientation,
// contribute their banded values to the APS.
const scoredSubjects = 6

// Band converts a percentage grade to its admission point value using
// the fixed monotonic step function used by ZA-style admission systems.
func Band(grade float64) int {
	switch {
	case grade >= 80:
		return 7
	case grade >= 70:
		return 6
	case grade >= 60:
		return 5
	case grade >= 50:
		return 4
	case grade >= 40:
		return 3
	case grade >= 30:
		return 2
	default:
		return 1
	}
}

// Score derives an integer admission point score from a grade set: the
// Life Orientation-equivalent subject is set aside, the top six
// remaining subjects by grade are banded and summed, and Life
// Orientation's banded value (capped at 6) is added if it was entered.
// Recomputed on every grade change; never persisted.
func Score(grades domain.GradeSet, cat *domain.CountryCatalog) int {
	var rest []float64
	lifeOrientation, hasLifeOrientation := 0.0, false

	for subject, grade := range grades {
		if isLifeOrientation(subject, cat) {
			// Multiple spellings of the subject may appear; keep the best.
			if !hasLifeOrientation || grade > lifeOrientation {
				lifeOrientation = grade
			}
			hasLifeOrientation = true
			continue
		}
		rest = append(rest, grade)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(rest)))
	if len(rest) > scoredSubjects {
		rest = rest[:scoredSubjects]
	}

	score := 0
	for _, grade := range rest {
		score += Band(grade)
	}

	if hasLifeOrientation {
		points := Band(lifeOrientation)
		if points > lifeOrientationCap {
			points = lifeOrientationCap
		}
		score += points
	}

	return score
}

// isLifeOrientation reports whether a raw subject name normalizes to
// the Life Orientation-equivalent subject.
func isLifeOrientation(subject string, cat *domain.CountryCatalog) bool {
	std := match.Normalize(subject, cat)
	return strings.EqualFold(std, lifeOrientationStandard) ||
		strings.EqualFold(std, "Life Orientation")
}

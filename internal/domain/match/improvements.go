package match

import (
	"math"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// Improvements computes, for each unmet requirement the student has
// actually attempted, the exact point deficit: required minus current
// (for an either/or group, the group's minimum required minus the best
// entered grade). Fractional shortfalls round up so a real deficit is
// never reported as zero.
//
// Unattempted requirements never appear. The tool reports how far the
// student is only for subjects they have already chosen, not for every
// possible subject they might add.
func Improvements(
	grades domain.GradeSet,
	req map[string]float64,
	cat *domain.CountryCatalog,
	opts Options,
) domain.ImprovementMap {
	improvements := make(domain.ImprovementMap)
	if len(req) == 0 {
		return improvements
	}

	normalized := normalizeRequirements(req, cat)
	resolutions, processed := resolveGroups(normalized, grades, cat)

	var mandatory map[string]bool
	if cat != nil {
		mandatory = cat.Mandatory()
	}

	for _, res := range resolutions {
		if skipMandatoryUnit(res.group.Subjects, mandatory, opts) {
			continue
		}
		if deficit := pointDeficit(res.bestGrade, res.minRequired); deficit > 0 {
			improvements[res.group.Label()] = deficit
		}
	}

	for _, subject := range sortedKeys(normalized) {
		if processed[subject] {
			continue
		}
		if skipMandatoryUnit([]string{subject}, mandatory, opts) {
			continue
		}
		if !IsEntered(grades, subject, cat) {
			continue
		}

		current := GradeFor(grades, subject, cat)
		if deficit := pointDeficit(current, normalized[subject]); deficit > 0 {
			improvements[displayLabel(subject, cat)] = deficit
		}
	}

	return improvements
}

// pointDeficit returns the positive integer shortfall, or 0 when the
// requirement is met.
func pointDeficit(current, required float64) int {
	if current >= required {
		return 0
	}
	return int(math.Ceil(required - current))
}

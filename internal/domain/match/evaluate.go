package match

import (
	"math"
	"sort"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// NoRequirementsLabel is the sentinel missing entry reported when a
// career declares no subject requirements at all.
const NoRequirementsLabel = "No subject requirements available"

// closeWindow is the fraction of the required grade that still counts
// as "close": within 10% of target.
const closeWindow = 0.9

// closeScoreFloor is the minimum match score at which a candidate with
// missing subjects is still classified close rather than
// needs-improvement.
const closeScoreFloor = 60

// Options control evaluation behavior.
type Options struct {
	// EnforceCompulsory controls whether requirement units composed
	// entirely of compulsory subjects are scored. When disabled, such
	// units are skipped so students can explore eligibility without
	// first providing compulsory-subject grades.
	EnforceCompulsory bool
}

// outcome is the three-way classification of one requirement unit.
type outcome int

const (
	outcomeMet outcome = iota
	outcomeClose
	outcomeMissing
)

// classify applies the three-way threshold: met at or above the
// required grade, close within 10% below it, missing otherwise.
// Grades are compared literally; out-of-range values are not clamped.
func classify(current, required float64) outcome {
	switch {
	case current >= required:
		return outcomeMet
	case current >= required*closeWindow:
		return outcomeClose
	default:
		return outcomeMissing
	}
}

// Evaluate scores a grade set against a career requirement set and
// produces a classification, a match score, and the missing/close
// subject labels. It is a pure function of its inputs.
func Evaluate(
	grades domain.GradeSet,
	req map[string]float64,
	cat *domain.CountryCatalog,
	opts Options,
) domain.EligibilityResult {
	if len(req) == 0 {
		return domain.EligibilityResult{
			Status:          domain.StatusNeedsImprovement,
			MatchScore:      0,
			MissingSubjects: []string{NoRequirementsLabel},
			CloseSubjects:   []string{},
		}
	}

	normalized := normalizeRequirements(req, cat)
	resolutions, processed := resolveGroups(normalized, grades, cat)

	var mandatory map[string]bool
	if cat != nil {
		mandatory = cat.Mandatory()
	}

	total, met := 0, 0
	missingSubjects := []string{}
	closeSubjects := []string{}

	for _, res := range resolutions {
		if skipMandatoryUnit(res.group.Subjects, mandatory, opts) {
			continue
		}

		total++
		switch classify(res.bestGrade, res.minRequired) {
		case outcomeMet:
			met++
		case outcomeClose:
			closeSubjects = append(closeSubjects, res.group.Label())
		case outcomeMissing:
			missingSubjects = append(missingSubjects, res.group.Label())
		}
	}

	for _, subject := range sortedKeys(normalized) {
		if processed[subject] {
			continue
		}
		if skipMandatoryUnit([]string{subject}, mandatory, opts) {
			continue
		}

		// Unattempted subjects are invisible to scoring, not failures.
		if !IsEntered(grades, subject, cat) {
			continue
		}

		total++
		current := GradeFor(grades, subject, cat)
		label := displayLabel(subject, cat)
		switch classify(current, normalized[subject]) {
		case outcomeMet:
			met++
		case outcomeClose:
			closeSubjects = append(closeSubjects, label)
		case outcomeMissing:
			missingSubjects = append(missingSubjects, label)
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(met) / float64(total)))
	}

	return domain.EligibilityResult{
		Status:          decideStatus(total, score, missingSubjects, closeSubjects),
		MatchScore:      score,
		MissingSubjects: missingSubjects,
		CloseSubjects:   closeSubjects,
	}
}

// decideStatus applies the status rule in its fixed order. Note the
// asymmetry: a candidate with zero missing subjects is always at least
// close regardless of score, but a candidate with any missing subject
// needs a match score of at least 60 to reach close.
func decideStatus(total, score int, missing, closeSubjects []string) domain.EligibilityStatus {
	switch {
	case total == 0:
		return domain.StatusNeedsImprovement
	case len(missing) == 0 && len(closeSubjects) == 0:
		return domain.StatusQualified
	case len(missing) == 0:
		return domain.StatusClose
	case score >= closeScoreFloor:
		return domain.StatusClose
	default:
		return domain.StatusNeedsImprovement
	}
}

// normalizeRequirements maps every requirement key to its standard name
// once, up front. When two raw keys collapse to the same standard name
// the lower requirement wins, consistent with the either/or tie-break.
func normalizeRequirements(
	req map[string]float64,
	cat *domain.CountryCatalog,
) map[string]float64 {
	normalized := make(map[string]float64, len(req))
	for raw, required := range req {
		std := Normalize(raw, cat)
		if existing, ok := normalized[std]; !ok || required < existing {
			normalized[std] = required
		}
	}
	return normalized
}

// skipMandatoryUnit reports whether a requirement unit composed
// entirely of compulsory subjects should be skipped under the current
// preference.
func skipMandatoryUnit(subjects []string, mandatory map[string]bool, opts Options) bool {
	if opts.EnforceCompulsory || len(mandatory) == 0 {
		return false
	}
	for _, s := range subjects {
		if !mandatory[s] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func displayLabel(standardName string, cat *domain.CountryCatalog) string {
	if cat == nil {
		return standardName
	}
	return cat.DisplayNameFor(standardName)
}

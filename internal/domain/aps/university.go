package aps

import (
	"sort"
	"strings"

	"github.com/gradepath/gradepath-api/internal/domain"
)

// closeAPSWindow is how many points below an institution's APS
// requirement still counts as close.
const closeAPSWindow = 3

// strippedWords are dropped from institution names before comparing
// them for deduplication.
var strippedWords = map[string]bool{
	"university": true,
	"of":         true,
	"the":        true,
}

// NormalizeInstitution reduces an institution name to its comparison
// key: lowercased, trimmed, whitespace collapsed, common filler words
// stripped.
func NormalizeInstitution(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	kept := fields[:0]
	for _, f := range fields {
		if !strippedWords[f] {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// Dedupe collapses institution source records that resolve to the same
// normalized name, retaining the record with the lower APS requirement
// (the more accessible one). Input order is otherwise preserved.
func Dedupe(sources []domain.InstitutionSource) []domain.InstitutionSource {
	byKey := make(map[string]int)
	var out []domain.InstitutionSource

	for _, src := range sources {
		key := NormalizeInstitution(src.Institution)
		if i, ok := byKey[key]; ok {
			if src.APSRequired < out[i].APSRequired {
				out[i] = src
			}
			continue
		}
		byKey[key] = len(out)
		out = append(out, src)
	}

	return out
}

// apsStatus classifies the distance between the user's APS and an
// institution's requirement: at or above is qualified, within three
// points below is close, further is not eligible.
func apsStatus(diff int) domain.EligibilityStatus {
	switch {
	case diff >= 0:
		return domain.StatusQualified
	case diff >= -closeAPSWindow:
		return domain.StatusClose
	default:
		return domain.StatusNotEligible
	}
}

// combineStatus merges the APS-distance status with the subject
// eligibility status. Overall qualified requires both; either side
// reaching qualified or close keeps the institution close; otherwise
// it is not eligible.
func combineStatus(aps, subjects domain.EligibilityStatus) domain.EligibilityStatus {
	if aps == domain.StatusQualified && subjects == domain.StatusQualified {
		return domain.StatusQualified
	}
	if withinReach(aps) || withinReach(subjects) {
		return domain.StatusClose
	}
	return domain.StatusNotEligible
}

func withinReach(s domain.EligibilityStatus) bool {
	return s == domain.StatusQualified || s == domain.StatusClose
}

// ClassifyInstitutions evaluates every institution source of one
// qualification level against the user's APS and the level's subject
// eligibility status. Duplicate sources are collapsed first. Records
// without a declared APS requirement fall back to the level's APS
// floor. The result is ordered by accessibility: qualified, then
// close, then not eligible, ties broken by ascending APS requirement.
func ClassifyInstitutions(
	userAPS int,
	level domain.QualificationLevel,
	sources []domain.InstitutionSource,
	apsFloor int,
	subjectStatus domain.EligibilityStatus,
) []domain.UniversityEligibility {
	deduped := Dedupe(sources)

	out := make([]domain.UniversityEligibility, 0, len(deduped))
	for _, src := range deduped {
		required := src.APSRequired
		if required == 0 {
			required = apsFloor
		}
		diff := userAPS - required

		out = append(out, domain.UniversityEligibility{
			Institution:        src.Institution,
			URL:                src.URL,
			APSRequired:        required,
			UserAPS:            userAPS,
			Status:             combineStatus(apsStatus(diff), subjectStatus),
			APSDifference:      diff,
			QualificationLevel: level,
		})
	}

	Sort(out)
	return out
}

// Sort orders eligibilities by accessibility: qualified first, then
// close, then not eligible, ties broken by ascending APS requirement.
func Sort(list []domain.UniversityEligibility) {
	sort.SliceStable(list, func(i, j int) bool {
		ri, rj := statusRank(list[i].Status), statusRank(list[j].Status)
		if ri != rj {
			return ri < rj
		}
		return list[i].APSRequired < list[j].APSRequired
	})
}

func statusRank(s domain.EligibilityStatus) int {
	switch s {
	case domain.StatusQualified:
		return 0
	case domain.StatusClose:
		return 1
	default:
		return 2
	}
}

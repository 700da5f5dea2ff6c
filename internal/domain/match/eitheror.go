package match

import (
	"github.com/gradepath/gradepath-api/internal/domain"
)

// groupResolution is the reduction of one either/or group to a single
// effective (current, required) pair against a requirement set.
type groupResolution struct {
	group *domain.EitherOrGroup

	// entered holds the standard names of the group members the student
	// actually entered (direct entry, not via siblings).
	entered []string

	// bestGrade is the highest grade among entered members.
	bestGrade float64

	// minRequired is the least demanding requirement value among the
	// entered members. The student is held to the most lenient
	// requirement variant among the alternatives they attempted.
	minRequired float64
}

// resolveGroups partitions a requirement set's subjects into those
// covered by a declared either/or group and standalone subjects. It
// returns one resolution per group that intersects the requirement set
// and has at least one entered member, plus the set of standard names
// processed by group handling (excluded from standalone scoring).
//
// Groups with no entered member contribute nothing: they are skipped
// entirely, not counted as missing. Their members are still marked
// processed so they never leak into standalone scoring, even when the
// minimum-required value differs per member.
func resolveGroups(
	req map[string]float64,
	grades domain.GradeSet,
	cat *domain.CountryCatalog,
) ([]groupResolution, map[string]bool) {
	processed := make(map[string]bool)
	var resolutions []groupResolution

	if cat == nil {
		return resolutions, processed
	}

	for i := range cat.EitherOrGroups {
		grp := &cat.EitherOrGroups[i]

		intersects := false
		for _, member := range grp.Subjects {
			if _, ok := req[member]; ok {
				intersects = true
				break
			}
		}
		if !intersects {
			continue
		}

		for _, member := range grp.Subjects {
			processed[member] = true
		}

		res := groupResolution{group: grp}
		for _, member := range grp.Subjects {
			grade, ok := directGrade(grades, member, cat)
			if !ok {
				continue
			}
			if len(res.entered) == 0 || grade > res.bestGrade {
				res.bestGrade = grade
			}
			res.entered = append(res.entered, member)
		}

		if len(res.entered) == 0 {
			continue
		}

		res.minRequired = minRequirement(req, res.entered, grp.Subjects)
		resolutions = append(resolutions, res)
	}

	return resolutions, processed
}

// minRequirement picks the least demanding requirement value among the
// entered members. When none of the entered members carries a
// requirement of its own (the student attempted only alternatives the
// requirement never names), the minimum across all declared members is
// used instead.
func minRequirement(req map[string]float64, entered, members []string) float64 {
	min, found := 0.0, false
	for _, member := range entered {
		if r, ok := req[member]; ok {
			if !found || r < min {
				min = r
			}
			found = true
		}
	}
	if found {
		return min
	}

	for _, member := range members {
		if r, ok := req[member]; ok {
			if !found || r < min {
				min = r
			}
			found = true
		}
	}
	return min
}

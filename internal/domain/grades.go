package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// GradeSet maps a subject name, in whatever casing or spelling the
// student typed it, to a numeric percentage. Keys are not guaranteed to
// be standard names. A subject is entered iff its key is present; a
// value of 0 still counts as entered.
//
// Values are used as-is: out-of-range grades (negative or above 100)
// are compared literally against requirements, never clamped.
type GradeSet map[string]float64

// Entered reports whether the exact key is present in the set.
func (g GradeSet) Entered(subject string) bool {
	_, ok := g[subject]
	return ok
}

// Clone returns a shallow copy of the grade set.
func (g GradeSet) Clone() GradeSet {
	out := make(GradeSet, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// ParseGradeSet coerces raw, externally supplied grade values into a
// GradeSet at the ingestion boundary. Numeric values and numeric-looking
// strings are used as-is, truly non-numeric values become 0, and null
// values are dropped entirely (a null grade means "not entered", not
// "scored zero").
func ParseGradeSet(raw map[string]any) GradeSet {
	grades := make(GradeSet, len(raw))
	for subject, value := range raw {
		key := strings.TrimSpace(subject)
		if key == "" {
			continue
		}

		switch v := value.(type) {
		case nil:
			// Not entered.
		case float64:
			grades[key] = numericOrZero(v)
		case int:
			grades[key] = float64(v)
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				f = 0
			}
			grades[key] = numericOrZero(f)
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				f = 0
			}
			grades[key] = numericOrZero(f)
		default:
			grades[key] = 0
		}
	}
	return grades
}

// numericOrZero collapses NaN and infinities to 0. Finite out-of-range
// values pass through untouched.
func numericOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

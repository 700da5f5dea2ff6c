package domain

// EligibilityStatus classifies how a student's grades stand against a
// requirement set or an institution's admission bar.
type EligibilityStatus string

const (
	// StatusQualified means every scored requirement is met.
	StatusQualified EligibilityStatus = "qualified"

	// StatusClose means the student is within reach: nothing missing but
	// something inside the 10% window, or enough requirements met to
	// clear the match-score bar.
	StatusClose EligibilityStatus = "close"

	// StatusNeedsImprovement means the student is not within reach of
	// the requirement set.
	StatusNeedsImprovement EligibilityStatus = "needs-improvement"

	// StatusNotEligible is used by the university classifier for
	// institutions out of reach on both subjects and APS.
	StatusNotEligible EligibilityStatus = "not-eligible"
)

// EligibilityResult is the outcome of evaluating one grade set against
// one career requirement set. It is computed fresh on every evaluation
// and immutable once returned.
type EligibilityResult struct {
	Status EligibilityStatus `json:"status"`

	// MatchScore is the percentage (rounded, 0-100) of scored
	// requirement units that are fully met.
	MatchScore int `json:"match_score"`

	// MissingSubjects and CloseSubjects hold display labels of the
	// subjects or either/or groups that fell short, and those inside
	// the 10% window, respectively.
	MissingSubjects []string `json:"missing_subjects"`
	CloseSubjects   []string `json:"close_subjects"`
}

// ImprovementMap maps a subject or group display label to the point
// deficit the student must close. Entries exist only for requirements
// the student actually attempted; values are always positive.
type ImprovementMap map[string]int

// UniversityEligibility classifies one deduplicated institution source
// for one qualification level.
type UniversityEligibility struct {
	Institution        string             `json:"institution"`
	URL                string             `json:"url,omitempty"`
	APSRequired        int                `json:"aps_required"`
	UserAPS            int                `json:"user_aps"`
	Status             EligibilityStatus  `json:"status"`
	APSDifference      int                `json:"aps_difference"`
	QualificationLevel QualificationLevel `json:"qualification_level"`
}

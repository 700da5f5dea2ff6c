package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

var enforceOpts = Options{EnforceCompulsory: true}

func TestEvaluateScenarios(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	testCases := []struct {
		name          string
		grades        domain.GradeSet
		req           map[string]float64
		wantStatus    domain.EligibilityStatus
		wantScore     int
		wantMissing   []string
		wantClose     []string
	}{
		{
			name:        "no grades entered",
			grades:      domain.GradeSet{},
			req:         map[string]float64{"Math": 60, "English": 50},
			wantStatus:  domain.StatusNeedsImprovement,
			wantScore:   0,
			wantMissing: []string{},
			wantClose:   []string{},
		},
		{
			name:        "all requirements met exactly",
			grades:      domain.GradeSet{"Math": 60, "English": 50},
			req:         map[string]float64{"Math": 60, "English": 50},
			wantStatus:  domain.StatusQualified,
			wantScore:   100,
			wantMissing: []string{},
			wantClose:   []string{},
		},
		{
			name:       "just below every target",
			grades:     domain.GradeSet{"Math": 59, "English": 49},
			req:        map[string]float64{"Math": 60, "English": 50},
			wantStatus: domain.StatusClose,
			wantScore:  0,
			wantClose: []string{
				"Mathematics or Mathematical Literacy",
				"English Home Language or First Additional Language",
			},
			wantMissing: []string{},
		},
		{
			name:        "either/or satisfied by one member",
			grades:      domain.GradeSet{"Math": 70},
			req:         map[string]float64{"Math": 60, "MathLiteracy": 60},
			wantStatus:  domain.StatusQualified,
			wantScore:   100,
			wantMissing: []string{},
			wantClose:   []string{},
		},
		{
			name:        "entered zero counts as missing, score carries to close",
			grades:      domain.GradeSet{"Math": 60, "English": 50, "Physics": 0},
			req:         map[string]float64{"Math": 60, "English": 50, "Physics": 60},
			wantStatus:  domain.StatusClose,
			wantScore:   67,
			wantMissing: []string{"Physical Sciences"},
			wantClose:   []string{},
		},
		{
			name:        "half met is not close",
			grades:      domain.GradeSet{"Math": 60, "English": 50, "Physics": 0, "Biology": 0},
			req:         map[string]float64{"Math": 60, "English": 50, "Physics": 60, "Biology": 60},
			wantStatus:  domain.StatusNeedsImprovement,
			wantScore:   50,
			wantMissing: []string{"Physical Sciences", "Life Sciences"},
			wantClose:   []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tc.grades, tc.req, cat, enforceOpts)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantScore, got.MatchScore)
			assert.ElementsMatch(t, tc.wantMissing, got.MissingSubjects)
			assert.ElementsMatch(t, tc.wantClose, got.CloseSubjects)
		})
	}
}

func TestEvaluateEmptyRequirements(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	got := Evaluate(domain.GradeSet{"Math": 90}, nil, cat, enforceOpts)
	assert.Equal(t, domain.StatusNeedsImprovement, got.Status)
	assert.Equal(t, 0, got.MatchScore)
	assert.Equal(t, []string{NoRequirementsLabel}, got.MissingSubjects)
	assert.Empty(t, got.CloseSubjects)
}

func TestEvaluateIdempotent(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	grades := domain.GradeSet{"Math": 59, "English": 50, "Physics": 72}
	req := map[string]float64{"Math": 60, "English": 50, "Physics": 60}

	first := Evaluate(grades, req, cat, enforceOpts)
	second := Evaluate(grades, req, cat, enforceOpts)
	assert.Equal(t, first, second)

	assert.Equal(t, Improvements(grades, req, cat, enforceOpts),
		Improvements(grades, req, cat, enforceOpts))
}

func TestEvaluateMonotonic(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	req := map[string]float64{"Math": 60, "English": 50, "Physics": 60}
	grades := domain.GradeSet{"Math": 40, "English": 50, "Physics": 55}

	before := Evaluate(grades, req, cat, enforceOpts)
	for _, bump := range []float64{45, 54, 60, 75, 100} {
		raised := grades.Clone()
		raised["Math"] = bump
		after := Evaluate(raised, req, cat, enforceOpts)
		assert.GreaterOrEqual(t, after.MatchScore, before.MatchScore,
			"raising Math to %v lowered the score", bump)
		before = after
	}
}

func TestEvaluateEitherOrSymmetry(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	req := map[string]float64{"Math": 60, "MathLiteracy": 60}

	viaMath := Evaluate(domain.GradeSet{"Math": 65}, req, cat, enforceOpts)
	viaLiteracy := Evaluate(domain.GradeSet{"MathLiteracy": 65}, req, cat, enforceOpts)

	assert.Equal(t, viaMath.Status, viaLiteracy.Status)
	assert.Equal(t, viaMath.MatchScore, viaLiteracy.MatchScore)
}

func TestEvaluateUnattemptedRequirementInvisible(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	grades := domain.GradeSet{"Physics": 70, "Biology": 55}
	req := map[string]float64{"Physics": 60, "Biology": 60}

	base := Evaluate(grades, req, cat, enforceOpts)

	extended := map[string]float64{"Physics": 60, "Biology": 60, "Geography": 50}
	got := Evaluate(grades, extended, cat, enforceOpts)

	assert.Equal(t, base, got)
}

func TestEvaluateOutOfRangeGradesComparedLiterally(t *testing.T) {
	t.Parallel()
	cat := testutils.GrouplessCatalog(t)

	over := Evaluate(domain.GradeSet{"Math": 150}, map[string]float64{"Math": 60}, cat, enforceOpts)
	assert.Equal(t, domain.StatusQualified, over.Status)
	assert.Equal(t, 100, over.MatchScore)

	under := Evaluate(domain.GradeSet{"Math": -10}, map[string]float64{"Math": 60}, cat, enforceOpts)
	assert.Equal(t, domain.StatusNeedsImprovement, under.Status)
	assert.Equal(t, 0, under.MatchScore)
}

func TestEvaluateCompulsoryToggle(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	grades := domain.GradeSet{"LifeOrientation": 40, "Physics": 70}
	req := map[string]float64{"LifeOrientation": 50, "Physics": 60}

	enforced := Evaluate(grades, req, cat, Options{EnforceCompulsory: true})
	assert.Equal(t, domain.StatusNeedsImprovement, enforced.Status)
	assert.Equal(t, 50, enforced.MatchScore)
	assert.ElementsMatch(t, []string{"Life Orientation"}, enforced.MissingSubjects)

	relaxed := Evaluate(grades, req, cat, Options{EnforceCompulsory: false})
	assert.Equal(t, domain.StatusQualified, relaxed.Status)
	assert.Equal(t, 100, relaxed.MatchScore)
	assert.Empty(t, relaxed.MissingSubjects)
}

func TestEvaluateDuplicateRequirementKeysCollapse(t *testing.T) {
	t.Parallel()
	cat := testutils.ZACatalog(t)

	// "Maths" and "Mathematics" both normalize to Math: one unit,
	// scored against the lower requirement value.
	grades := domain.GradeSet{"Math": 65}
	req := map[string]float64{"Maths": 70, "Mathematics": 65}

	got := Evaluate(grades, req, cat, enforceOpts)
	assert.Equal(t, domain.StatusQualified, got.Status)
	assert.Equal(t, 100, got.MatchScore)
}

func TestEvaluateNilCatalog(t *testing.T) {
	t.Parallel()

	got := Evaluate(
		domain.GradeSet{"Math": 70, "English": 40},
		map[string]float64{"Math": 60, "English": 50},
		nil,
		enforceOpts,
	)
	assert.Equal(t, domain.StatusNeedsImprovement, got.Status)
	assert.Equal(t, 50, got.MatchScore)
	assert.ElementsMatch(t, []string{"English"}, got.MissingSubjects)
}

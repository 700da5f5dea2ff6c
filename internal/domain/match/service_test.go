package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

func TestDefaultServiceGuards(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	cat := testutils.ZACatalog(t)

	_, err := svc.Evaluate(domain.GradeSet{}, map[string]float64{}, nil, Options{})
	assert.ErrorIs(t, err, ErrNilCatalog)

	_, err = svc.Evaluate(domain.GradeSet{}, nil, cat, Options{})
	assert.ErrorIs(t, err, ErrNilRequirements)

	_, err = svc.Improvements(domain.GradeSet{}, nil, cat, Options{})
	assert.ErrorIs(t, err, ErrNilRequirements)
}

func TestDefaultServiceDelegates(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	cat := testutils.ZACatalog(t)

	result, err := svc.Evaluate(
		domain.GradeSet{"Math": 70},
		map[string]float64{"Math": 60},
		cat,
		Options{EnforceCompulsory: true},
	)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQualified, result.Status)

	assert.Equal(t, "Math", svc.Normalize("Maths", cat))
}

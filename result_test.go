package accord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_CombineMonoidLaws(t *testing.T) {
	a := Failure(Violation{Value: 1, Constraint: "too small", Path: EmptyPath})
	b := Failure(Violation{Value: "x", Constraint: "not allowed", Path: Path{Indexed{Position: 2}}})
	c := Failure(Violation{Value: 3.5, Constraint: "too big", Path: Path{Named{Name: "amount"}}})

	for _, r := range []Result{Success(), a, b, c} {
		require.Equal(t, r, r.Combine(Success()), "Success must be a right identity")
		require.Equal(t, r, Success().Combine(r), "Success must be a left identity")
	}

	require.Equal(t, a.Combine(b).Combine(c), a.Combine(b.Combine(c)), "Combine must be associative")
}

func TestResult_CombineAccumulates(t *testing.T) {
	v1 := Violation{Value: 1, Constraint: "too small", Path: EmptyPath}
	v2 := Violation{Value: 2, Constraint: "too big", Path: EmptyPath}

	combined := Failure(v1).Combine(Failure(v2))
	require.True(t, combined.IsFailure())
	assert.Equal(t, []Violation{v1, v2}, combined.Violations())
}

func TestResult_CombineDeduplicates(t *testing.T) {
	v := Violation{Value: 1, Constraint: "too small", Path: EmptyPath}

	combined := Failure(v).Combine(Failure(v))
	assert.Len(t, combined.Violations(), 1)
}

func TestResult_ZeroValueIsSuccess(t *testing.T) {
	var r Result
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Nil(t, r.Violations())
	assert.NoError(t, r.Err())
}

func TestFailure_PanicsWithoutViolations(t *testing.T) {
	require.Panics(t, func() { Failure() })
}

func TestResult_Err(t *testing.T) {
	require.NoError(t, Success().Err())

	r := Failure(
		Violation{Value: "X", Constraint: "not allowed", Path: Path{Indexed{Position: 2}}},
		Violation{Value: 7, Constraint: "too big", Path: EmptyPath},
	)
	err := r.Err()
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	assert.EqualError(t, errs["2"], "not allowed")
	assert.EqualError(t, errs[""], "too big")
}

func TestResult_ViolationsIsACopy(t *testing.T) {
	r := Failure(Violation{Value: 1, Constraint: "too small", Path: EmptyPath})

	vs := r.Violations()
	vs[0].Constraint = "mutated"

	assert.Equal(t, "too small", r.Violations()[0].Constraint)
}

package accord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyNotEmpty(t *testing.T) {
	emptyTests := []struct {
		value       any
		expectError bool
	}{
		{value: []int{}, expectError: false},
		{value: []int(nil), expectError: false},
		{value: []int{1}, expectError: true},
		{value: map[string]int{}, expectError: false},
		{value: map[string]int{"a": 1}, expectError: true},
		{value: "", expectError: false},
		{value: "x", expectError: true},
		{value: 0, expectError: false}, // scalar zero values count as empty
		{value: 7, expectError: true},
	}
	for _, tt := range emptyTests {
		t.Run(fmt.Sprintf("empty:%v", tt.value), func(t *testing.T) {
			r := Empty[any]().Validate(tt.value)
			if tt.expectError {
				require.True(t, r.IsFailure())
			} else {
				require.True(t, r.IsSuccess())
			}
		})
	}

	notEmptyTests := []struct {
		value       any
		expectError bool
	}{
		{value: []int{1}, expectError: false},
		{value: []int{}, expectError: true},
		{value: map[string]int{"a": 1}, expectError: false},
		{value: map[string]int{}, expectError: true},
		{value: "x", expectError: false},
		{value: "", expectError: true},
	}
	for _, tt := range notEmptyTests {
		t.Run(fmt.Sprintf("notEmpty:%v", tt.value), func(t *testing.T) {
			r := NotEmpty[any]().Validate(tt.value)
			if tt.expectError {
				require.True(t, r.IsFailure())
			} else {
				require.True(t, r.IsSuccess())
			}
		})
	}
}

func TestEmpty_TypedSubject(t *testing.T) {
	require.True(t, Empty[[]string]().Validate(nil).IsSuccess())
	require.True(t, NotEmpty[[]string]().Validate([]string{"a"}).IsSuccess())

	r := NotEmpty[[]string]().Validate(nil)
	require.True(t, r.IsFailure())
	require.Equal(t, "cannot be blank", r.Violations()[0].Constraint)
}

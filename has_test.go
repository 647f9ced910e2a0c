package accord

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cart struct {
	items []string
	reads int
}

func (c *cart) Size() int {
	c.reads++
	return len(c.items)
}

func TestHasSize_ReportsOriginalSubject(t *testing.T) {
	rule := HasSize[*cart](GreaterThan(5))

	c := &cart{items: []string{"a", "b"}}
	r := rule.Validate(c)
	require.True(t, r.IsFailure())

	violations := r.Violations()
	require.Len(t, violations, 1)
	assert.Same(t, c, violations[0].Value, "violation must report the subject, not the extracted size")
	assert.Equal(t, "must be greater than 5", violations[0].Constraint)
}

func TestHasSize_ExtractionCalledExactlyOnce(t *testing.T) {
	rule := HasSize[*cart](GreaterThan(5))

	failing := &cart{items: []string{"a"}}
	rule.Validate(failing)
	assert.Equal(t, 1, failing.reads)

	passing := &cart{items: []string{"a", "b", "c", "d", "e", "f"}}
	rule.Validate(passing)
	assert.Equal(t, 1, passing.reads)
}

func TestHas_RewritesEveryViolation(t *testing.T) {
	type order struct{ tags []string }
	rule := Has(func(o order) []string { return o.tags }, All(
		NotEmpty[[]string](),
		HasLen[string](GreaterThan(2)),
	))

	o := order{}
	r := rule.Validate(o)
	require.True(t, r.IsFailure())
	for _, v := range r.Violations() {
		assert.Equal(t, o, v.Value)
	}
}

func TestHasLen(t *testing.T) {
	tests := []struct {
		value       []int
		expectError bool
	}{
		{value: []int{1, 2, 3}, expectError: false},
		{value: []int{1}, expectError: true},
		{value: nil, expectError: true},
	}
	for _, tt := range tests {
		rule := HasLen[int](Min(2))
		r := rule.Validate(tt.value)
		if tt.expectError {
			require.True(t, r.IsFailure(), "len %d", len(tt.value))
		} else {
			require.True(t, r.IsSuccess(), "len %d", len(tt.value))
		}
	}
}

func TestHas_PassesThroughSuccess(t *testing.T) {
	rule := Has(func(s string) int { return len(s) }, Min(1))
	require.True(t, rule.Validate("hi").IsSuccess())
}

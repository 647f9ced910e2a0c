package accord

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// In returns a validation rule that checks if a value is one of the allowed values.
// The allowed values are normalized into a canonical lexicographic order (by
// their formatted text, so In(2, 10) lists '10' before '2'), which keeps
// equal element sets equal as validators and failure messages stable.
func In[T comparable](values ...T) Validator[T] {
	allowed := make(map[T]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return newIn(allowed)
}

// InSet is [In] taking the allowed values as a set. Equal element sets
// produce equal validators regardless of which constructor built them.
func InSet[T comparable](set map[T]struct{}) Validator[T] {
	allowed := make(map[T]struct{}, len(set))
	for v := range set {
		allowed[v] = struct{}{}
	}
	return newIn(allowed)
}

// newIn normalizes the allowed set into a canonical ordering, so validator
// identity is defined by the element set rather than construction syntax.
func newIn[T comparable](allowed map[T]struct{}) inValidator[T] {
	values := make([]T, 0, len(allowed))
	for v := range allowed {
		values = append(values, v)
	}
	slices.SortFunc(values, func(a, b T) int {
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})

	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return inValidator[T]{
		allowed: allowed,
		values:  values,
		desc:    fmt.Sprintf("must be one of %s", strings.Join(want, ", ")),
	}
}

type inValidator[T comparable] struct {
	allowed map[T]struct{}
	values  []T
	desc    string
}

func (v inValidator[T]) Validate(value T) Result {
	if _, ok := v.allowed[value]; ok {
		return Success()
	}
	return fail(value, fmt.Sprintf("%s got '%v'", v.desc, value))
}

func (v inValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	enum := make([]any, len(v.values))
	for i := range v.values {
		enum[i] = v.values[i]
	}
	ref.Value.Enum = enum
	return nil
}

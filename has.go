package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Sized is the capability required by [HasSize]. Subject types expose their
// element count through it; building a size constraint for a type without
// the capability is a compile error.
type Sized interface {
	Size() int
}

// Has returns a validator that extracts a derived property from the subject
// with extract and validates it with inner. Violations are reported against
// the original subject, not the extracted property. The extract function is
// invoked exactly once per validated subject.
func Has[T, P any](extract func(value T) P, inner Validator[P]) Validator[T] {
	return &hasValidator[T, P]{extract: extract, inner: inner}
}

// HasSize returns a validator that checks the subject's size, e.g.
// HasSize[Cart](GreaterThan(5)). Violations report the subject itself.
func HasSize[T Sized](inner Validator[int]) Validator[T] {
	return Has(func(value T) int { return value.Size() }, inner)
}

// HasLen is HasSize for slices, using the built-in length.
func HasLen[E any](inner Validator[int]) Validator[[]E] {
	return Has(func(value []E) int { return len(value) }, inner)
}

type hasValidator[T, P any] struct {
	extract func(value T) P
	inner   Validator[P]
}

func (v *hasValidator[T, P]) Validate(value T) Result {
	result := v.inner.Validate(v.extract(value))
	if result.IsSuccess() {
		return result
	}
	violations := result.Violations()
	for i := range violations {
		violations[i].Value = value
	}
	return Failure(violations...)
}

func (v *hasValidator[T, P]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return v.inner.Describe(name, schema, ref)
}

package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Empty returns a validation rule that checks if a container has no
// elements. It works on anything with an emptiness notion: slices, maps,
// strings, and pointers to them. Scalar subjects follow ozzo's IsEmpty
// semantics, so a zero value (0, false) counts as empty.
func Empty[T any]() Validator[T] {
	return emptyValidator[T]{wantEmpty: true}
}

// NotEmpty returns a validation rule that checks if a container has at
// least one element. It is the negation of [Empty].
func NotEmpty[T any]() Validator[T] {
	return emptyValidator[T]{wantEmpty: false}
}

type emptyValidator[T any] struct {
	wantEmpty bool
}

func (v emptyValidator[T]) Validate(value T) Result {
	inner, _ := validation.Indirect(value)
	empty := validation.IsEmpty(inner)
	if empty == v.wantEmpty {
		return Success()
	}
	if v.wantEmpty {
		return fail(value, "must be empty")
	}
	return fail(value, "cannot be blank")
}

func (v emptyValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if v.wantEmpty {
		appendDescription(ref, "empty")
		return nil
	}
	appendDescription(ref, "required")
	return nil
}

package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type defaultValidator[T any] struct {
	value T
}

// Default returns a documentation-only rule that sets the schema default value.
func Default[T any](value T) Validator[T] {
	return defaultValidator[T]{value: value}
}

func (v defaultValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = v.value
	return nil
}

func (v defaultValidator[T]) Validate(_ T) Result {
	return Success()
}

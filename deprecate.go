package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type deprecateValidator[T any] struct{}

// Deprecate returns a documentation-only rule that marks the value as deprecated in the schema.
func Deprecate[T any]() Validator[T] {
	return deprecateValidator[T]{}
}

func (v deprecateValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (v deprecateValidator[T]) Validate(_ T) Result {
	return Success()
}

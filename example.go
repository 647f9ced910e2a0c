package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type exampleValidator[T any] struct {
	ex T
}

// Example returns a documentation-only rule that sets the schema example value.
func Example[T any](ex T) Validator[T] {
	return exampleValidator[T]{ex: ex}
}

func (v exampleValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = v.ex
	return nil
}

func (v exampleValidator[T]) Validate(_ T) Result {
	return Success()
}

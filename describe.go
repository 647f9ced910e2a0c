package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type describeValidator[T any] struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe[T any](desc string) Validator[T] {
	return describeValidator[T]{desc: desc}
}

func (v describeValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, v.desc)
	return nil
}

func (v describeValidator[T]) Validate(_ T) Result {
	return Success()
}

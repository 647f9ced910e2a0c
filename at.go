package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// At returns a validation rule that runs inner and relocates its violations
// under the named path element. Use it to label where inside a larger value
// a rule applies, e.g. At("expiry", Before(deadline)).
func At[T any](name string, inner Validator[T]) Validator[T] {
	return atValidator[T]{name: name, inner: inner}
}

type atValidator[T any] struct {
	name  string
	inner Validator[T]
}

func (v atValidator[T]) Validate(value T) Result {
	result := v.inner.Validate(value)
	if result.IsSuccess() {
		return result
	}
	violations := result.Violations()
	for i := range violations {
		violations[i] = violations[i].atPath(Named{Name: v.name})
	}
	return Failure(violations...)
}

func (v atValidator[T]) Describe(_ string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return v.inner.Describe(v.name, schema, ref)
}

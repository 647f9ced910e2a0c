package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotNil returns a validation rule that checks if a pointer is not nil.
func NotNil[E any]() Validator[*E] {
	return notNilValidator[E]{rule: validation.NotNil}
}

type notNilValidator[E any] struct {
	rule validation.Rule
}

func (v notNilValidator[E]) Validate(value *E) Result {
	if err := v.rule.Validate(value); err != nil {
		return fail(value, err.Error())
	}
	return Success()
}

func (v notNilValidator[E]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = false
	return nil
}

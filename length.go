package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthValidator struct {
	rule     validation.LengthRule
	min, max int
}

// Length returns a validation rule that checks if a string's rune length is within the specified range.
func Length(lo, hi int) Validator[string] {
	return lengthValidator{
		rule: validation.RuneLength(lo, hi),
		min:  lo,
		max:  hi,
	}
}

func (v lengthValidator) Validate(value string) Result {
	if err := v.rule.Validate(value); err != nil {
		return fail(value, err.Error())
	}
	return Success()
}

func (v lengthValidator) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	fmin := float64(v.min)
	fmax := float64(v.max)
	ref.Value.Max = &fmax
	ref.Value.Min = &fmin
	return nil
}

package accord

import (
	"fmt"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// Before returns a validation rule that checks if a time is strictly before right.
func Before(right time.Time) Validator[time.Time] {
	return beforeValidator{right: right}
}

// After returns a validation rule that checks if a time is strictly after right.
func After(right time.Time) Validator[time.Time] {
	return afterValidator{right: right}
}

type beforeValidator struct {
	right time.Time
}

func (v beforeValidator) Validate(value time.Time) Result {
	if value.Before(v.right) {
		return Success()
	}
	return fail(value, fmt.Sprintf("%v is not before %v", value, v.right))
}

func (v beforeValidator) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "date-time"
	appendDescription(ref, "< "+v.right.String())
	return nil
}

type afterValidator struct {
	right time.Time
}

func (v afterValidator) Validate(value time.Time) Result {
	if value.After(v.right) {
		return Success()
	}
	return fail(value, fmt.Sprintf("%v is not after %v", value, v.right))
}

func (v afterValidator) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = "date-time"
	appendDescription(ref, "> "+v.right.String())
	return nil
}

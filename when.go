package accord

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// WhenValidator validates conditionally: it applies one set of validators
// when the condition is true, and an optional alternative set (via
// [WhenValidator.Else]) when false. Use [When] to create one.
type WhenValidator[T any] struct {
	condition bool
	desc      string
	whenRules []Validator[T]
	elseRules []Validator[T]
}

// When returns a conditional validation rule that applies rules only when condition is true.
func When[T any](condition bool, desc string, rules ...Validator[T]) *WhenValidator[T] {
	return &WhenValidator[T]{
		condition: condition,
		desc:      desc,
		whenRules: rules,
	}
}

// Else specifies alternative rules to apply when the [When] condition is false.
func (v *WhenValidator[T]) Else(rules ...Validator[T]) *WhenValidator[T] {
	v.elseRules = rules
	return v
}

func (v *WhenValidator[T]) Validate(value T) Result {
	rules := v.whenRules
	if !v.condition {
		rules = v.elseRules
	}
	return All(rules...).Validate(value)
}

// describeRules calls Describe on each rule using a temporary schema/ref,
// then extracts a human-readable summary of the schema mutations.
func describeRules[T any](name string, rules []Validator[T]) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}

	for _, r := range rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}

	var parts []string

	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

// Describe implements [Validator] by appending a human-readable summary of
// the conditional rules to the schema description.
func (v *WhenValidator[T]) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if len(v.whenRules) > 0 {
		desc, err := describeRules(name, v.whenRules)
		if err != nil {
			return err
		}
		if desc != "" {
			if v.desc != "" {
				appendDescription(ref, fmt.Sprintf("when %s: %s", v.desc, desc))
			} else {
				appendDescription(ref, desc)
			}
		}
	}

	if len(v.elseRules) > 0 {
		desc, err := describeRules(name, v.elseRules)
		if err != nil {
			return err
		}
		if desc != "" {
			appendDescription(ref, "else: "+desc)
		}
	}
	return nil
}

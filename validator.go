package accord

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validator is the interface all validation combinators implement.
//
// Validate is a pure function from a subject value to a [Result]; it never
// panics for well-typed input and never mutates the subject. Describe
// documents the constraint on an OpenAPI schema, where name is the property
// name inside schema (empty for a standalone value) and ref is the
// property's own schema.
//
// Validators carry no per-invocation state, so a single validator value may
// be applied to many inputs, concurrently, without locking.
type Validator[T any] interface {
	Validate(value T) Result
	Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// By wraps a plain function into a [Validator], with desc appended to the
// schema description.
func By[T any](f func(value T) Result, desc string) Validator[T] {
	return &inlineValidator[T]{f: f, desc: desc}
}

type inlineValidator[T any] struct {
	f    func(value T) Result
	desc string
}

func (v *inlineValidator[T]) Validate(value T) Result {
	return v.f(value)
}

func (v *inlineValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, v.desc)
	return nil
}

// All returns a validator that applies every given validator to the same
// value and combines the outcomes. Later validators run regardless of
// earlier failures, so the result aggregates all violations.
func All[T any](validators ...Validator[T]) Validator[T] {
	return allValidator[T](validators)
}

type allValidator[T any] []Validator[T]

func (vs allValidator[T]) Validate(value T) Result {
	result := Success()
	for _, v := range vs {
		result = result.Combine(v.Validate(value))
	}
	return result
}

func (vs allValidator[T]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, v := range vs {
		if err := v.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

// appendDescription adds desc to the schema description, space-separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// Schema generates an OpenAPI schema for T and applies v's [Validator.Describe]
// to it, so a rule set documents the constraints it enforces.
func Schema[T any](v Validator[T]) (*openapi3.SchemaRef, error) {
	var zero T
	return SchemaForValue(zero, v)
}

// SchemaForValue is like [Schema] but derives the base schema from sample.
// Use it when the zero value of T loses shape, e.g. a nil pointer or an
// interface-typed subject.
func SchemaForValue[T any](sample T, v Validator[T]) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator()
	ref, err := g.NewSchemaRefForValue(sample, nil)
	if err != nil {
		return nil, err
	}
	if err := v.Describe("", ref.Value, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

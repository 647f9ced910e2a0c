package accord

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// Distinct is a validation rule that checks if all elements of a slice or
// array are distinct under structural equality. It is a single shared
// stateless instance; every use references the same value. On failure the
// violation references the container as a whole.
var Distinct Validator[any] = &distinctValidator{}

type distinctValidator struct{}

func (v *distinctValidator) Validate(value any) Result {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || ((rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil()) {
		return Success()
	}

	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if !allDistinct(rv) {
			return fail(value, "elements are not distinct")
		}
	default:
		return fail(value, "must be a slice or array")
	}
	return Success()
}

// allDistinct uses a set for basic element types and pairwise deep equality
// for the rest (nested containers, pointers, interfaces, structs), so
// equality stays structural and unhashable elements never panic.
func allDistinct(rv reflect.Value) bool {
	if basicKind(rv.Type().Elem().Kind()) {
		seen := make(map[any]struct{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			seen[rv.Index(i).Interface()] = struct{}{}
		}
		return len(seen) == rv.Len()
	}
	for i := 0; i < rv.Len(); i++ {
		for j := i + 1; j < rv.Len(); j++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), rv.Index(j).Interface()) {
				return false
			}
		}
	}
	return true
}

// basicKind reports whether values of kind k compare structurally with ==.
func basicKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	}
	return false
}

func (v *distinctValidator) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	return nil
}

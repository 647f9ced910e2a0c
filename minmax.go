package accord

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
func Min[T cmp.Ordered](threshold T) Validator[T] {
	return thresholdValidator[T]{threshold: threshold, want: 1, orEqual: true, desc: "must be no less than %v"}
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
func Max[T cmp.Ordered](threshold T) Validator[T] {
	return thresholdValidator[T]{threshold: threshold, want: -1, orEqual: true, desc: "must be no greater than %v"}
}

// GreaterThan returns a validation rule that checks if a value is strictly greater than the threshold.
func GreaterThan[T cmp.Ordered](threshold T) Validator[T] {
	return thresholdValidator[T]{threshold: threshold, want: 1, desc: "must be greater than %v"}
}

// LessThan returns a validation rule that checks if a value is strictly less than the threshold.
func LessThan[T cmp.Ordered](threshold T) Validator[T] {
	return thresholdValidator[T]{threshold: threshold, want: -1, desc: "must be less than %v"}
}

type thresholdValidator[T cmp.Ordered] struct {
	threshold T
	want      int
	orEqual   bool
	desc      string
}

func (v thresholdValidator[T]) Validate(value T) Result {
	c := cmp.Compare(value, v.threshold)
	if c == v.want || (v.orEqual && c == 0) {
		return Success()
	}
	return fail(value, fmt.Sprintf(v.desc, v.threshold))
}

func (v thresholdValidator[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type != nil && ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = fmt.Sprintf("%T", v.threshold)
	}
	f, err := getFloat(v.threshold)
	if err != nil {
		return err
	}
	if v.want > 0 {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	if !v.orEqual {
		ref.Value.ExclusiveMin = v.want > 0
		ref.Value.ExclusiveMax = v.want < 0
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}

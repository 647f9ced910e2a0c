package accord

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Each returns a validation rule that applies inner to every element of a
// slice. Violations carry the failing element's zero-based position as an
// [Indexed] path element. An empty slice succeeds vacuously; a nil slice
// fails with a single violation for the container itself.
func Each[E any](inner Validator[E]) Validator[[]E] {
	return eachValidator[E, E]{transform: nil, inner: inner}
}

// EachMap is [Each] with a transformation stage: every element is replaced
// by f(e) before validation. Path indexes refer to positions in the
// transformed sequence, which preserves the original order.
func EachMap[E, M any](f func(element E) M, inner Validator[M]) Validator[[]E] {
	return eachValidator[E, M]{
		transform: func(s []E) []M {
			out := make([]M, len(s))
			for i, e := range s {
				out[i] = f(e)
			}
			return out
		},
		inner: inner,
	}
}

// EachFlatMap is [Each] with a flattening stage: the validated sequence is
// the concatenation, in original element order, of f(e) for every element.
// Path indexes refer to positions in the flattened sequence. A flattened
// result with no elements succeeds vacuously.
func EachFlatMap[E, M any](f func(element E) []M, inner Validator[M]) Validator[[]E] {
	return eachValidator[E, M]{
		transform: func(s []E) []M {
			var out []M
			for _, e := range s {
				out = append(out, f(e)...)
			}
			return out
		},
		inner: inner,
	}
}

type eachValidator[E, M any] struct {
	transform func([]E) []M
	inner     Validator[M]
}

func (v eachValidator[E, M]) Validate(value []E) Result {
	if value == nil {
		return fail(value, "is required")
	}
	if v.transform != nil {
		return validateSeq(v.transform(value), v.inner)
	}
	// Without a transform E and M are the same type; see Each.
	seq := any(value).([]M)
	return validateSeq(seq, v.inner)
}

func (v eachValidator[E, M]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return v.inner.Describe(name, schema, ref)
}

// validateSeq aggregates the per-element results in element order, indexing
// each element's violations with its position.
func validateSeq[M any](seq []M, inner Validator[M]) Result {
	result := Success()
	for i, e := range seq {
		r := inner.Validate(e)
		if r.IsFailure() {
			violations := r.Violations()
			for j := range violations {
				violations[j] = violations[j].atPath(Indexed{Position: i})
			}
			r = Failure(violations...)
		}
		result = result.Combine(r)
	}
	return result
}

// Optional returns a validation rule that applies inner to the pointed-to
// value. A nil pointer is an absent optional and succeeds vacuously.
// Violations keep the inner validator's path: optionals carry no index.
func Optional[E any](inner Validator[E]) Validator[*E] {
	return optionalValidator[E]{inner: inner}
}

type optionalValidator[E any] struct {
	inner Validator[E]
}

func (v optionalValidator[E]) Validate(value *E) Result {
	if value == nil {
		return Success()
	}
	return v.inner.Validate(*value)
}

func (v optionalValidator[E]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return v.inner.Describe(name, schema, ref)
}

// EachKey returns a validation rule that applies inner to every key of a
// map, treating the keys as an unordered set. Keys have no stable position,
// so violations carry no index. A nil map fails for the container itself;
// an empty map succeeds vacuously.
func EachKey[K comparable, V any](inner Validator[K]) Validator[map[K]V] {
	return eachKeyValidator[K, V]{inner: inner}
}

type eachKeyValidator[K comparable, V any] struct {
	inner Validator[K]
}

func (v eachKeyValidator[K, V]) Validate(value map[K]V) Result {
	if value == nil {
		return fail(value, "is required")
	}
	result := Success()
	for k := range value {
		result = result.Combine(v.inner.Validate(k))
	}
	return result
}

func (v eachKeyValidator[K, V]) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	return v.inner.Describe(name, schema, ref)
}

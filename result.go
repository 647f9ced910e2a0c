package accord

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Result is the outcome of applying a validator to a value: either success,
// or failure carrying one or more violations.
//
// Results form a monoid under [Result.Combine] with [Success] as identity.
// The zero Result is a success.
type Result struct {
	violations []Violation
}

// Success returns the successful result. All successful results are equal.
func Success() Result {
	return Result{}
}

// Failure returns a failed result wrapping the given violations.
// Violations already present (by structural equality) are kept once.
// Calling Failure with no violations is a programming error and panics.
func Failure(violations ...Violation) Result {
	if len(violations) == 0 {
		panic("accord: Failure requires at least one violation")
	}
	r := Result{}
	for _, v := range violations {
		r = r.with(v)
	}
	return r
}

// IsSuccess reports whether the result carries no violations.
func (r Result) IsSuccess() bool {
	return len(r.violations) == 0
}

// IsFailure reports whether the result carries at least one violation.
func (r Result) IsFailure() bool {
	return !r.IsSuccess()
}

// Violations returns the recorded violations. The returned slice is a copy;
// callers may not mutate the result through it. A success returns nil.
func (r Result) Violations() []Violation {
	if len(r.violations) == 0 {
		return nil
	}
	out := make([]Violation, len(r.violations))
	copy(out, r.violations)
	return out
}

// Combine merges two results: success is the identity, and two failures
// accumulate their violations as a set union. Combine is associative, so any
// n-ary aggregation order produces the same result.
func (r Result) Combine(other Result) Result {
	if other.IsSuccess() {
		return r
	}
	if r.IsSuccess() {
		return other
	}
	merged := Result{violations: r.violations}
	for _, v := range other.violations {
		merged = merged.with(v)
	}
	return merged
}

// with appends v unless a structurally equal violation is already present.
// First occurrence order is preserved so equal violation sets built in any
// association order compare equal.
func (r Result) with(v Violation) Result {
	for _, have := range r.violations {
		if have.Equal(v) {
			return r
		}
	}
	return Result{violations: append(r.violations[:len(r.violations):len(r.violations)], v)}
}

// Err converts the result into an error for callers on an error-based
// surface: nil on success, otherwise a [ValidationErrors] map keyed by
// violation path. Violations sharing a path are joined.
func (r Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	errs := validation.Errors{}
	for _, v := range r.violations {
		key := v.Path.String()
		if prev, ok := errs[key]; ok {
			errs[key] = errors.Join(prev, errors.New(v.Constraint))
			continue
		}
		errs[key] = errors.New(v.Constraint)
	}
	return errs
}

// fail builds a single-violation failure at the empty path.
func fail(value any, constraint string) Result {
	return Failure(Violation{Value: value, Constraint: constraint, Path: EmptyPath})
}

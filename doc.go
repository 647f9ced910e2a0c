// Package accord provides composable validation rules with structured,
// aggregated failure reporting and automatic OpenAPI 3 schema descriptions.
//
// Build a validator from combinators, then apply it to a value:
//
//	rule := accord.All(
//	    accord.NotEmpty[[]string](),
//	    accord.Each(accord.Length(1, 100)),
//	)
//	result := rule.Validate(tags)
//
// A [Result] is either success or a set of [Violation] values, each carrying
// the offending value, a constraint description, and the [Path] at which the
// failure occurred (e.g. the index of a failing slice element). Results
// combine associatively, so aggregating across collection elements is
// order-independent.
//
// Validators are immutable values: build them once, reuse them freely,
// including from concurrent goroutines.
//
// Sub-packages:
//   - is – common string format validation rules
package accord

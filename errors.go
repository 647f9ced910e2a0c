package accord

import validation "github.com/go-ozzo/ozzo-validation/v4"

// ValidationErrors is the error type produced by [Result.Err]: a map of
// violation paths to their errors. It is an alias for [validation.Errors]
// from ozzo-validation and implements the error interface with a
// JSON-friendly string representation.
type ValidationErrors = validation.Errors

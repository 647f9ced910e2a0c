package accord

import (
	"fmt"
	"reflect"
)

// Violation is a single recorded constraint failure.
//
// Value always holds the original subject that failed validation, never a
// derived value: a size constraint built with [Has] or [HasSize] reports the
// object whose size was wrong, not the extracted size.
type Violation struct {
	Value      any
	Constraint string
	Path       Path
}

// Equal reports structural equality: same constraint, same path, and values
// equal under deep equality.
func (v Violation) Equal(other Violation) bool {
	return v.Constraint == other.Constraint &&
		v.Path.Equal(other.Path) &&
		reflect.DeepEqual(v.Value, other.Value)
}

func (v Violation) String() string {
	if len(v.Path) == 0 {
		return fmt.Sprintf("'%v' %s", v.Value, v.Constraint)
	}
	return fmt.Sprintf("%s: '%v' %s", v.Path, v.Value, v.Constraint)
}

// atPath returns a copy of the violation relocated under elem.
func (v Violation) atPath(elem PathElement) Violation {
	v.Path = v.Path.Prepend(elem)
	return v
}

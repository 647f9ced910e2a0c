package accord

import "strconv"

type (
	// PathElement is one step of a violation's location inside a composite
	// value. The concrete kinds are [Indexed] for positions inside ordered
	// sequences and [Named] for labeled parts of a value.
	PathElement interface {
		String() string
		pathElement()
	}

	// Indexed locates an element by its zero-based position in a sequence.
	Indexed struct {
		Position int
	}

	// Named locates a part of a value by label, e.g. a field or group name.
	Named struct {
		Name string
	}
)

// Path is an ordered sequence of path elements, outermost first.
// Paths are values: never mutate one in place, derive new ones with [Path.Prepend].
type Path []PathElement

// EmptyPath is the identity path, carrying no location information.
var EmptyPath = Path(nil)

func (e Indexed) String() string { return strconv.Itoa(e.Position) }
func (e Indexed) pathElement()   {}

func (e Named) String() string { return e.Name }
func (e Named) pathElement()   {}

// Prepend returns a new path with elem as the new outermost element.
// The receiver is not modified.
func (p Path) Prepend(elem PathElement) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, elem)
	return append(out, p...)
}

// Equal reports whether two paths have the same elements in the same order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the path as dot-separated elements, e.g. "items.2".
// The empty path renders as "".
func (p Path) String() string {
	var s string
	for i, e := range p {
		if i > 0 {
			s += "."
		}
		s += e.String()
	}
	return s
}

package disjointset

import "errors"

var (
	// ErrInvalidSize indicates New was asked for a negative number of elements.
	ErrInvalidSize = errors.New("disjointset: invalid size")
	// ErrInvalidElement indicates an element id outside [0, n).
	ErrInvalidElement = errors.New("disjointset: invalid element id")
)

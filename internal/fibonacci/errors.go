package fibonacci

import "errors"

var (
	// ErrIndexOutOfRange reports an index outside the range an algorithm can
	// serve: above the naive recursion guard, or beyond float64 for Binet.
	ErrIndexOutOfRange = errors.New("fibonacci: index out of range")

	// ErrInvalidModulus reports a nil or non-positive modulus.
	ErrInvalidModulus = errors.New("fibonacci: modulus must be positive")
)

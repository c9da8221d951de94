package valarray

import "errors"

var (
	// ErrInvalidArgument reports mismatched sizes, a negative size or a
	// write to an array that is not backed by storage.
	ErrInvalidArgument = errors.New("valarray: invalid argument")

	// ErrOutOfRange reports a lane or element index outside the array.
	ErrOutOfRange = errors.New("valarray: index out of range")

	// ErrOutOfMemory reports a size whose lane buffer cannot be addressed.
	ErrOutOfMemory = errors.New("valarray: out of memory")
)

package bitinfo

import "errors"

var (
	// ErrTypeMismatch is returned when an array does not have the element
	// type that an operation requires.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrShapeMismatch is returned when the shapes of arrays cannot be
	// broadcast together, or do not match the number of values they view.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidAxis is returned when an axis is not a dimension of an array.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrAxisTooShort is returned when computing the information along an
	// axis which has less than two elements.
	ErrAxisTooShort = errors.New("axis too short")
)

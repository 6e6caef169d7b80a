package funcs

import "errors"

// Sentinel errors returned by the function helpers.
var (
	// ErrNotCallable is returned when a value that must be a function is not
	// one (or is a nil function).
	ErrNotCallable = errors.New("funcs: value is not callable")

	// ErrArgType is returned by [Call] when an argument cannot be converted to
	// the corresponding parameter type.
	ErrArgType = errors.New("funcs: argument type mismatch")

	// ErrNotBindable is returned by [BindAll] when the target cannot hold
	// bound functions.
	ErrNotBindable = errors.New("funcs: target cannot hold bound functions")
)

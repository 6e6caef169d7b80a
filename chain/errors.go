package chain

import "errors"

var (
	// ErrUnknownOp is returned when a name is not in the wrapper's registry.
	ErrUnknownOp = errors.New("chain: unknown operation")

	// ErrNotSlice is returned by the slice operations when the held value is
	// neither a slice nor a pointer to one.
	ErrNotSlice = errors.New("chain: held value is not a slice")
)

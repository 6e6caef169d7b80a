package arr

import "errors"

// Sentinel errors returned by the array combinators.
var (
	// ErrNotIndexed is returned when an array function receives a value
	// without a length and integer indices.
	ErrNotIndexed = errors.New("arr: value is not an indexed collection")

	// ErrInvalidRange is returned by [Range] for missing, non-numeric or
	// zero-step bounds.
	ErrInvalidRange = errors.New("arr: invalid range bounds")

	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")
)

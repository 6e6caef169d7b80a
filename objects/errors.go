package objects

import "errors"

// Sentinel errors returned by the object helpers.
var (
	// ErrNotExtendable is returned when [Extend] receives a destination it
	// cannot write to.
	ErrNotExtendable = errors.New("objects: destination is not a map, record or struct pointer")

	// ErrFieldType is returned when [Extend] cannot store a source value in
	// the destination's key or value type.
	ErrFieldType = errors.New("objects: value does not fit destination")
)

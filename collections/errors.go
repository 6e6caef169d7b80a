package collections

import "errors"

// Sentinel errors returned by the dispatcher and value helpers.
var (
	// ErrNilCollection is returned when a nil value (untyped nil, nil pointer,
	// nil interface or nil function) is passed where a collection is required.
	ErrNilCollection = errors.New("collections: collection must not be nil")

	// ErrNotCollection is returned when a value cannot be resolved into any
	// collection shape.
	ErrNotCollection = errors.New("collections: value is not a collection")

	// ErrNilIterator is returned when the dispatcher is given a nil iterator.
	ErrNilIterator = errors.New("collections: iterator must not be nil")

	// ErrNotComparable is returned by [Compare] when two values have no
	// natural ordering relative to each other.
	ErrNotComparable = errors.New("collections: values are not comparable")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")
)

package collections

import "iter"

// Sequential is the capability of a value that iterates itself.
//
// The sequence yields (value, key) pairs; a value that has no natural key
// should yield its position.
//
// Portability note: this is the Go counterpart of a forEach / __iter__
// protocol.
type Sequential interface {
	All() iter.Seq2[any, any]
}

// Lengther is the capability of a value with a length and integer-indexed
// access. At is only called with indices in [0, Len()).
type Lengther interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at index i.
	At(i int) any
}

// KeyEnumerable is the capability of a record-like value with a finite set
// of keys. Keys determines the traversal order.
type KeyEnumerable interface {
	// Keys returns the keys in traversal order.
	Keys() []any

	// Get returns the value stored under key together with a presence flag.
	Get(key any) (any, bool)
}

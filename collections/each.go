package collections

// Control is the signal an [Iterator] returns to the dispatcher.
type Control uint8

const (
	// Continue asks the dispatcher for the next element.
	Continue Control = iota
	// Break stops the traversal. The dispatcher returns normally.
	Break
)

// Iterator is called once per element with the element, its index or key
// and the collection being traversed.
type Iterator func(value, key any, src Collection) Control

// Walk calls it for every element of c in traversal order until it returns
// [Break]:
//
//   - [Sequence]: the value's own iteration, unchanged;
//   - [Indexed]: indices 0 … Len()-1, ascending;
//   - [Keyed]: keys in the order reported by the collection.
//
// Walk never mutates c.
func Walk(c Collection, it Iterator) error {
	if c == nil {
		return ErrNilCollection
	}
	if it == nil {
		return ErrNilIterator
	}
	c.walk(func(value, key any) bool {
		return it(value, key, c) == Continue
	})
	return nil
}

// Each resolves v with [Of] and walks it. It returns v itself so that the
// call can be used as an expression in a chain.
func Each(v any, it Iterator) (any, error) {
	c, err := Of(v)
	if err != nil {
		return nil, err
	}
	if err := Walk(c, it); err != nil {
		return nil, err
	}
	return v, nil
}

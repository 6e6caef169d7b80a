package collections

import (
	"fmt"
	"iter"
	"reflect"
)

// Collection is a value resolved into exactly one traversal shape.
//
// The set of implementations is closed: [*Sequence], [*Indexed] and
// [*Keyed]. Obtain one with [Of]; the original value stays reachable
// through Source so that callers can return it unchanged.
type Collection interface {
	// Shape reports the traversal strategy.
	Shape() Shape

	// Source returns the value the collection was resolved from.
	Source() any

	walk(yield func(value, key any) bool)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Sequence is a collection that iterates itself.
type Sequence struct {
	src any
	seq iter.Seq2[any, any]
}

// Shape returns [ShapeSequence].
func (s *Sequence) Shape() Shape { return ShapeSequence }

// Source returns the value the sequence was resolved from.
func (s *Sequence) Source() any { return s.src }

// All returns the underlying (value, key) sequence. Note that the order of
// the pair follows the callback convention of this module, value first.
func (s *Sequence) All() iter.Seq2[any, any] { return s.seq }

func (s *Sequence) walk(yield func(value, key any) bool) { s.seq(yield) }

// ─────────────────────────────────────────────────────────────────────────────
// Indexed
// ─────────────────────────────────────────────────────────────────────────────

// Indexed is a collection with a length and integer-indexed access.
type Indexed struct {
	src any
	n   int
	at  func(i int) any
}

// Shape returns [ShapeIndexed].
func (c *Indexed) Shape() Shape { return ShapeIndexed }

// Source returns the value the collection was resolved from.
func (c *Indexed) Source() any { return c.src }

// Len returns the number of elements.
func (c *Indexed) Len() int { return c.n }

// At returns the element at index i together with a presence flag.
func (c *Indexed) At(i int) (any, bool) {
	if i < 0 || i >= c.n {
		return nil, false
	}
	return c.at(i), true
}

// Slice copies the elements into a new []any.
func (c *Indexed) Slice() []any {
	out := make([]any, c.n)
	for i := range out {
		out[i] = c.at(i)
	}
	return out
}

func (c *Indexed) walk(yield func(value, key any) bool) {
	for i := 0; i < c.n; i++ {
		if !yield(c.at(i), i) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Keyed
// ─────────────────────────────────────────────────────────────────────────────

// Keyed is a collection of values addressed by key.
type Keyed struct {
	src  any
	keys func() []any
	get  func(key any) (any, bool)
}

// Shape returns [ShapeKeyed].
func (c *Keyed) Shape() Shape { return ShapeKeyed }

// Source returns the value the collection was resolved from.
func (c *Keyed) Source() any { return c.src }

// Keys returns the keys in traversal order.
func (c *Keyed) Keys() []any { return c.keys() }

// Len returns the number of keys.
func (c *Keyed) Len() int { return len(c.keys()) }

// Get returns the value stored under key together with a presence flag.
func (c *Keyed) Get(key any) (any, bool) { return c.get(key) }

func (c *Keyed) walk(yield func(value, key any) bool) {
	for _, k := range c.keys() {
		v, _ := c.get(k)
		if !yield(v, k) {
			return
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

// Of resolves v into a [Collection]. A value that already is a Collection is
// returned as-is.
//
// Resolution order, first match wins:
//
//  1. native iteration: iter.Seq[any], iter.Seq2[any, any], [Sequential],
//     or any function type that can be ranged over;
//  2. length and index: slices, arrays, pointers to either, strings and
//     [Lengther] values;
//  3. keys: maps, structs, pointers to either and [KeyEnumerable] values.
//
// Returns [ErrNilCollection] for nil values and [ErrNotCollection] when no
// rule matches.
func Of(v any) (Collection, error) {
	if c, ok := v.(Collection); ok {
		return c, nil
	}
	if isNil(v) {
		return nil, ErrNilCollection
	}
	if seq, ok := sequenceOf(v); ok {
		return &Sequence{src: v, seq: seq}, nil
	}
	if c, ok := indexedOf(v); ok {
		return c, nil
	}
	if c, ok := keyedOf(v); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotCollection, v)
}

// isNil reports whether v is a nil reference. Nil slices and maps are empty
// collections, not nil ones.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func sequenceOf(v any) (iter.Seq2[any, any], bool) {
	switch s := v.(type) {
	case iter.Seq2[any, any]:
		return s, true
	case iter.Seq[any]:
		return positional(s), true
	case Sequential:
		return s.All(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return nil, false
	}
	if rv.Type().CanSeq2() {
		seq := rv.Seq2()
		return func(yield func(any, any) bool) {
			for k, val := range seq {
				if !yield(val.Interface(), k.Interface()) {
					return
				}
			}
		}, true
	}
	if rv.Type().CanSeq() {
		seq := rv.Seq()
		return positional(func(yield func(any) bool) {
			for val := range seq {
				if !yield(val.Interface()) {
					return
				}
			}
		}), true
	}
	return nil, false
}

// positional keys a single-valued sequence by position.
func positional(s iter.Seq[any]) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		i := 0
		for v := range s {
			if !yield(v, i) {
				return
			}
			i++
		}
	}
}

func indexedOf(v any) (*Indexed, bool) {
	if l, ok := v.(Lengther); ok {
		return &Indexed{src: v, n: l.Len(), at: l.At}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		runes := []rune(rv.String())
		return &Indexed{src: v, n: len(runes), at: func(i int) any { return string(runes[i]) }}, true
	case reflect.Pointer:
		if k := rv.Elem().Kind(); k != reflect.Array && k != reflect.Slice {
			return nil, false
		}
		rv = rv.Elem()
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	return &Indexed{src: v, n: rv.Len(), at: func(i int) any { return rv.Index(i).Interface() }}, true
}

func keyedOf(v any) (*Keyed, bool) {
	if e, ok := v.(KeyEnumerable); ok {
		return &Keyed{src: v, keys: e.Keys, get: e.Get}, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if k := rv.Elem().Kind(); k != reflect.Struct && k != reflect.Map {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		return &Keyed{
			src: v,
			keys: func() []any {
				keys := make([]any, 0, rv.Len())
				for _, k := range rv.MapKeys() {
					keys = append(keys, k.Interface())
				}
				SortKeys(keys)
				return keys
			},
			get: func(key any) (any, bool) {
				kv, ok := Convert(key, rv.Type().Key())
				if !ok {
					return nil, false
				}
				val := rv.MapIndex(kv)
				if !val.IsValid() {
					return nil, false
				}
				return val.Interface(), true
			},
		}, true
	case reflect.Struct:
		t := rv.Type()
		return &Keyed{
			src: v,
			keys: func() []any {
				keys := make([]any, 0, t.NumField())
				for i := 0; i < t.NumField(); i++ {
					if f := t.Field(i); f.IsExported() {
						keys = append(keys, f.Name)
					}
				}
				return keys
			},
			get: func(key any) (any, bool) {
				name, ok := key.(string)
				if !ok {
					return nil, false
				}
				f, ok := t.FieldByName(name)
				if !ok || !f.IsExported() || len(f.Index) != 1 {
					return nil, false
				}
				return rv.Field(f.Index[0]).Interface(), true
			},
		}, true
	}
	return nil, false
}

// Convert converts key to a value of type t. It never crosses value
// classes (an int does not turn into a one-rune string) and refuses lossy
// numeric conversions. A nil key converts to the zero value of nillable
// types only.
func Convert(key any, t reflect.Type) (reflect.Value, bool) {
	if key == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	kv := reflect.ValueOf(key)
	if kv.Type().AssignableTo(t) {
		return kv, true
	}
	if !kv.Type().ConvertibleTo(t) || classOfKind(kv.Kind()) != classOfKind(t.Kind()) {
		return reflect.Value{}, false
	}
	cv := kv.Convert(t)
	// Lossy numeric conversions (1.5 → 1) must not alias another key.
	if cv.Convert(kv.Type()).Interface() == key {
		return cv, true
	}
	return reflect.Value{}, false
}

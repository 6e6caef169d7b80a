package collections

import (
	"fmt"
	"reflect"
	"slices"
)

// Record is a keyed collection that remembers insertion order. It is the
// ordered counterpart of a Go map and satisfies [KeyEnumerable].
//
// Keys must be comparable: [Record.Put] rejects other keys with
// [ErrNotComparable] and Get reports them absent. Setting an existing key
// replaces its value and keeps its original position.
//
// A Record is not safe for concurrent mutation.
type Record struct {
	keys   []any
	values map[any]any
}

// NewRecord creates a Record from alternating key, value arguments.
//
//	r := collections.NewRecord("name", "Alice", "age", 30)
//
// A trailing key without a value is stored with a nil value. NewRecord
// panics on a non-comparable key, as [Record.Set] does.
func NewRecord(kv ...any) *Record {
	r := &Record{values: make(map[any]any, (len(kv)+1)/2)}
	for i := 0; i < len(kv); i += 2 {
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		r.Set(kv[i], v)
	}
	return r
}

// Set stores value under key and returns r for chaining. Like a map
// assignment it panics when key is not comparable; use [Record.Put] for
// keys of unknown type.
func (r *Record) Set(key, value any) *Record {
	if err := r.Put(key, value); err != nil {
		panic(err)
	}
	return r
}

// Put stores value under key. It returns [ErrNotComparable] when key cannot
// be used as a map key.
func (r *Record) Put(key, value any) error {
	if !hashable(key) {
		return fmt.Errorf("%w: record key of type %T", ErrNotComparable, key)
	}
	if r.values == nil {
		r.values = make(map[any]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return nil
}

// Get returns the value stored under key together with a presence flag.
func (r *Record) Get(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Delete removes key. It is a no-op when key is absent.
func (r *Record) Delete(key any) {
	if !hashable(key) {
		return
	}
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k any) bool { return k == key })
}

// hashable reports whether key can be stored in a map[any]any without
// panicking, looking through interfaces held inside structs and arrays.
func hashable(key any) bool {
	return key == nil || reflect.ValueOf(key).Comparable()
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []any { return slices.Clone(r.keys) }

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

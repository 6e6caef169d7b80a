package objects

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/funcs"
)

// ─────────────────────────────────────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────────────────────────────────────

// Keys returns the keys of obj in traversal order: map keys sorted, struct
// fields in declaration order, record keys in insertion order and indices
// for indexed collections.
func Keys(obj any) ([]any, error) {
	return pairs(obj, func(_, k any) any { return k })
}

// Values returns the values of obj in the same order as [Keys].
func Values(obj any) ([]any, error) {
	return pairs(obj, func(v, _ any) any { return v })
}

func pairs(obj any, pick func(v, k any) any) ([]any, error) {
	col, err := collections.Of(obj)
	if err != nil {
		return nil, err
	}
	out := []any{}
	err = collections.Walk(col, func(v, k any, _ collections.Collection) collections.Control {
		out = append(out, pick(v, k))
		return collections.Continue
	})
	return out, err
}

// Functions returns the sorted names of obj's function-valued keys together
// with the names of its Go methods.
func Functions(obj any) ([]string, error) {
	if collections.ClassOf(obj) == collections.ClassNil {
		return nil, collections.ErrNilCollection
	}
	var names []string
	if col, err := collections.Of(obj); err == nil {
		err = collections.Walk(col, func(v, k any, _ collections.Collection) collections.Control {
			if funcs.Callable(v) {
				names = append(names, fmt.Sprint(k))
			}
			return collections.Continue
		})
		if err != nil {
			return nil, err
		}
	}
	t := reflect.TypeOf(obj)
	for i := range t.NumMethod() {
		names = append(names, t.Method(i).Name)
	}
	names = lo.Uniq(names)
	slices.Sort(names)
	return names, nil
}

// Methods is an alias for [Functions].
func Methods(obj any) ([]string, error) { return Functions(obj) }

// ─────────────────────────────────────────────────────────────────────────────
// Extend & Clone
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every key of every source into dst, later sources winning,
// and returns dst. dst must be a non-nil map, a *Record or a pointer to a
// struct; struct destinations only accept keys naming exported fields.
func Extend(dst any, sources ...any) (any, error) {
	set, err := setter(dst)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		col, err := collections.Of(src)
		if err != nil {
			return nil, err
		}
		var setErr error
		err = collections.Walk(col, func(v, k any, _ collections.Collection) collections.Control {
			if setErr = set(k, v); setErr != nil {
				return collections.Break
			}
			return collections.Continue
		})
		if err != nil {
			return nil, err
		}
		if setErr != nil {
			return nil, setErr
		}
	}
	return dst, nil
}

// setter returns a function storing one key into dst.
func setter(dst any) (func(k, v any) error, error) {
	if r, ok := dst.(*collections.Record); ok {
		if r == nil {
			return nil, collections.ErrNilCollection
		}
		return r.Put, nil
	}

	rv := reflect.ValueOf(dst)
	switch {
	case rv.Kind() == reflect.Map && !rv.IsNil():
		t := rv.Type()
		return func(k, v any) error {
			kv, ok := collections.Convert(k, t.Key())
			if !ok {
				return fmt.Errorf("%w: key %v (%T) into %s", ErrFieldType, k, k, t)
			}
			vv, ok := collections.Convert(v, t.Elem())
			if !ok {
				return fmt.Errorf("%w: value %v (%T) into %s", ErrFieldType, v, v, t)
			}
			rv.SetMapIndex(kv, vv)
			return nil
		}, nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		s := rv.Elem()
		return func(k, v any) error {
			name, _ := k.(string)
			f, ok := s.Type().FieldByName(name)
			if !ok || !f.IsExported() || len(f.Index) != 1 {
				return fmt.Errorf("%w: %s has no field %v", ErrFieldType, s.Type(), k)
			}
			vv, ok := collections.Convert(v, f.Type)
			if !ok {
				return fmt.Errorf("%w: %v (%T) into %s.%s", ErrFieldType, v, v, s.Type(), name)
			}
			s.Field(f.Index[0]).Set(vv)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotExtendable, dst)
}

// Clone returns a shallow copy of v. Maps, slices and records are copied
// into new containers of the same type; struct pointers point to a copy of
// the struct. Values without reference semantics are returned as they are.
func Clone(v any) (any, error) {
	if r, ok := v.(*collections.Record); ok {
		if r == nil {
			return nil, collections.ErrNilCollection
		}
		out := collections.NewRecord()
		for _, k := range r.Keys() {
			val, _ := r.Get(k)
			out.Set(k, val)
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return nil, collections.ErrNilCollection
	case reflect.Map:
		if rv.IsNil() {
			return v, nil
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		entries := rv.MapRange()
		for entries.Next() {
			out.SetMapIndex(entries.Key(), entries.Value())
		}
		return out.Interface(), nil
	case reflect.Slice:
		if rv.IsNil() {
			return v, nil
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface(), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, collections.ErrNilCollection
		}
		out := reflect.New(rv.Type().Elem())
		out.Elem().Set(rv.Elem())
		return out.Interface(), nil
	}
	return v, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Tap
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls interceptor with v and returns v, so a side effect can be slotted
// into a chain. An error from interceptor is returned instead.
func Tap(v, interceptor any) (any, error) {
	if _, err := funcs.Call(interceptor, v); err != nil {
		return nil, err
	}
	return v, nil
}

package funcs

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/collections"
)

// Bind returns a function that calls fn with a fixed context and partial
// arguments in front of the arguments it is later called with.
//
// Go has no implicit receiver, so the context is passed as fn's first
// argument; this is exactly the shape of a method expression:
//
//	greet, _ := funcs.Bind((*User).Greet, alice, "Hello")
//	greet("!") // → alice.Greet("Hello", "!")
//
// A nil context binds only the partial arguments.
func Bind(fn any, context any, args ...any) (Func, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	bound := make([]any, 0, len(args)+1)
	if context != nil {
		bound = append(bound, context)
	}
	bound = append(bound, args...)
	return func(more ...any) (any, error) {
		all := make([]any, 0, len(bound)+len(more))
		all = append(all, bound...)
		all = append(all, more...)
		return Call(fn, all...)
	}, nil
}

// BindMethod binds the named method of obj together with partial
// arguments.
func BindMethod(obj any, name string, args ...any) (Func, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: method %q on nil", ErrNotCallable, name)
	}
	m := reflect.ValueOf(obj).MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %T has no method %q", ErrNotCallable, obj, name)
	}
	return Bind(m.Interface(), nil, args...)
}

// BindAll replaces function-valued members of obj with versions bound to obj
// itself. When names is empty every function-valued member is bound.
//
// obj must be a map with string keys whose element type can hold a [Func]
// (typically map[string]any) or a [*collections.Record]. Binding a name
// whose value is not a function returns [ErrNotCallable].
func BindAll(obj any, names ...string) error {
	switch o := obj.(type) {
	case *collections.Record:
		if o == nil {
			return collections.ErrNilCollection
		}
		return bindAll(o, o, names, func(k, v any) { o.Set(k, v) })
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String ||
		!reflect.TypeFor[Func]().AssignableTo(rv.Type().Elem()) {
		return fmt.Errorf("%w: %T", ErrNotBindable, obj)
	}
	if rv.IsNil() {
		return collections.ErrNilCollection
	}
	c, err := collections.Of(obj)
	if err != nil {
		return err
	}
	return bindAll(obj, c.(*collections.Keyed), names, func(k, v any) {
		rv.SetMapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()), reflect.ValueOf(v))
	})
}

func bindAll(self any, src collections.KeyEnumerable, names []string, set func(k, v any)) error {
	targets := src.Keys()
	if len(names) > 0 {
		targets = make([]any, len(names))
		for i, n := range names {
			targets[i] = n
		}
	}
	for _, k := range targets {
		v, _ := src.Get(k)
		if !Callable(v) {
			if len(names) == 0 {
				continue
			}
			return fmt.Errorf("%w: member %v", ErrNotCallable, k)
		}
		bound, err := Bind(v, self)
		if err != nil {
			return err
		}
		set(k, bound)
	}
	return nil
}

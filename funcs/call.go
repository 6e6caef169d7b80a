package funcs

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-underscore/collections"
)

// Func is the dynamic function form returned by the combinators in this
// package.
type Func func(args ...any) (any, error)

// Callback is a combinator callback: it receives an element, its index or
// key, and the collection being traversed.
type Callback func(value, key any, src collections.Collection) (any, error)

var errorType = reflect.TypeFor[error]()

// Callable reports whether fn is a non-nil function.
func Callable(fn any) bool {
	if fn == nil {
		return false
	}
	rv := reflect.ValueOf(fn)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// Identity returns v unchanged. It is the default iteratee of the
// predicate-style combinators.
func Identity(v any) any { return v }

// Call invokes fn with args following the package calling convention.
// Returns [ErrNotCallable] when fn is not a function.
func Call(fn any, args ...any) (any, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	switch f := fn.(type) {
	case Func:
		return f(args...)
	case func(...any) (any, error):
		return f(args...)
	case func(...any) any:
		return f(args...), nil
	case func(any) any:
		return f(arg(args, 0)), nil
	case func(any, any) any:
		return f(arg(args, 0), arg(args, 1)), nil
	}

	rv := reflect.ValueOf(fn)
	in, err := arguments(rv.Type(), args)
	if err != nil {
		return nil, err
	}
	return results(rv.Call(in))
}

// Iteratee adapts fn into a [Callback]. Common signatures avoid reflection;
// any other function goes through [Call] with (value, key, src).
func Iteratee(fn any) (Callback, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	switch f := fn.(type) {
	case Callback:
		return f, nil
	case func(value, key any) any:
		return func(v, k any, _ collections.Collection) (any, error) { return f(v, k), nil }, nil
	case func(any) any:
		return func(v, _ any, _ collections.Collection) (any, error) { return f(v), nil }, nil
	case func(any) bool:
		return func(v, _ any, _ collections.Collection) (any, error) { return f(v), nil }, nil
	case func(value, key any) bool:
		return func(v, k any, _ collections.Collection) (any, error) { return f(v, k), nil }, nil
	}
	return func(v, k any, src collections.Collection) (any, error) {
		return Call(fn, v, k, src)
	}, nil
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func arguments(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	fixed := n
	if t.IsVariadic() {
		fixed = n - 1
	}
	in := make([]reflect.Value, 0, max(n, len(args)))
	for i := 0; i < fixed; i++ {
		v, err := argument(arg(args, i), t.In(i), i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if t.IsVariadic() {
		elem := t.In(n - 1).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argument(args[i], elem, i)
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	return in, nil
}

func argument(a any, t reflect.Type, i int) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(t), nil
	}
	if v, ok := collections.Convert(a, t); ok {
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: argument %d: cannot use %T as %s", ErrArgType, i, a, t)
}

func results(out []reflect.Value) (any, error) {
	if len(out) == 0 {
		return nil, nil
	}
	var err error
	if last := out[len(out)-1]; last.Type() == errorType {
		if !last.IsNil() {
			err = last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil, err
	}
	return out[0].Interface(), err
}

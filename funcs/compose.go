package funcs

import "fmt"

// Compose returns the right-to-left composition of fns: the last function
// receives the original arguments and every function to its left receives
// the single result of its right neighbour.
//
//	f, _ := funcs.Compose(strings.ToUpper, strings.TrimSpace)
//	f("  hi ") // → "HI"
//
// The first error stops the pipeline. Composing zero functions yields a
// function that returns its first argument.
func Compose(fns ...any) (Func, error) {
	for i, fn := range fns {
		if !Callable(fn) {
			return nil, fmt.Errorf("%w: compose argument %d (%T)", ErrNotCallable, i, fn)
		}
	}
	return func(args ...any) (any, error) {
		if len(fns) == 0 {
			return arg(args, 0), nil
		}
		result, err := Call(fns[len(fns)-1], args...)
		for i := len(fns) - 2; i >= 0 && err == nil; i-- {
			result, err = Call(fns[i], result)
		}
		return result, err
	}, nil
}

// Wrap returns a function that calls wrapper with fn as its first argument,
// followed by the call-time arguments. The wrapper decides whether, when
// and how to invoke fn.
func Wrap(fn, wrapper any) (Func, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	if !Callable(wrapper) {
		return nil, fmt.Errorf("%w: wrapper %T", ErrNotCallable, wrapper)
	}
	return func(args ...any) (any, error) {
		all := make([]any, 0, len(args)+1)
		all = append(all, fn)
		all = append(all, args...)
		return Call(wrapper, all...)
	}, nil
}

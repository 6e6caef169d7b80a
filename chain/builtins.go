package chain

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/funcs"
	"github.com/hasbyte1/go-underscore/objects"
)

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// Adapters from combinator signatures to [Op]. The held value is always the
// first argument; missing call-time arguments are nil.

func unary[R any](fn func(any) (R, error)) Op {
	return func(held any, _ ...any) (any, error) { return fn(held) }
}

func binary[R any](fn func(any, any) (R, error)) Op {
	return func(held any, args ...any) (any, error) { return fn(held, arg(args, 0)) }
}

func ternary[R any](fn func(any, any, any) (R, error)) Op {
	return func(held any, args ...any) (any, error) { return fn(held, arg(args, 0), arg(args, 1)) }
}

func variadic[R any](fn func(any, ...any) (R, error)) Op {
	return func(held any, args ...any) (any, error) { return fn(held, args...) }
}

// spread passes held and args as one argument list.
func spread[R any](fn func(...any) (R, error)) Op {
	return func(held any, args ...any) (any, error) { return fn(append([]any{held}, args...)...) }
}

func predicate(fn func(any) bool) Op {
	return func(held any, _ ...any) (any, error) { return fn(held), nil }
}

func intArg(args []any, i int) (int, bool, error) {
	if i >= len(args) || args[i] == nil {
		return 0, false, nil
	}
	n, ok := collections.ToInt(args[i])
	if !ok {
		return 0, false, fmt.Errorf("%w: argument %d: want an integer, got %T", funcs.ErrArgType, i, args[i])
	}
	return n, true, nil
}

func stringArg(args []any, i int) (string, error) {
	switch s := arg(args, i).(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	}
	return "", fmt.Errorf("%w: argument %d: want a string, got %T", funcs.ErrArgType, i, args[i])
}

var durationType = reflect.TypeFor[time.Duration]()

func builtins() map[string]Op {
	return map[string]Op{
		// collections
		"each":        binary(arr.Each),
		"map":         binary(arr.Map),
		"reduce":      ternary(arr.Reduce),
		"reduceRight": ternary(arr.ReduceRight),
		"find":        binary(arr.Find),
		"filter":      binary(arr.Filter),
		"reject":      binary(arr.Reject),
		"every":       binary(arr.Every),
		"some":        binary(arr.Some),
		"includes":    binary(arr.Includes),
		"pluck":       binary(arr.Pluck),
		"invoke": func(held any, args ...any) (any, error) {
			name, err := stringArg(args, 0)
			if err != nil {
				return nil, err
			}
			var rest []any
			if len(args) > 1 {
				rest = args[1:]
			}
			return arr.Invoke(held, name, rest...)
		},
		"max":     binary(arr.Max),
		"min":     binary(arr.Min),
		"sortBy":  binary(arr.SortBy),
		"groupBy": binary(arr.GroupBy),
		"partition": func(held any, args ...any) (any, error) {
			pass, fail, err := arr.Partition(held, arg(args, 0))
			if err != nil {
				return nil, err
			}
			return []any{pass, fail}, nil
		},
		"toArray": unary(arr.ToArray),
		"size":    unary(arr.Size),

		// arrays
		"first": unary(arr.First),
		"last":  unary(arr.Last),
		"rest": func(held any, args ...any) (any, error) {
			i, ok, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			if !ok {
				return arr.Rest(held)
			}
			return arr.Rest(held, i)
		},
		"compact": unary(arr.Compact),
		"flatten": unary(arr.Flatten),
		"without": variadic(arr.Without),
		"uniq": func(held any, args ...any) (any, error) {
			return arr.Uniq(held, collections.Truthy(arg(args, 0)))
		},
		"intersect":   variadic(arr.Intersect),
		"zip":         spread(arr.Zip),
		"indexOf":     binary(arr.IndexOf),
		"lastIndexOf": binary(arr.LastIndexOf),
		"sortedIndex": ternary(arr.SortedIndex),
		"range":       spread(arr.Range),
		"chunk": func(held any, args ...any) (any, error) {
			size, _, err := intArg(args, 0)
			if err != nil {
				return nil, err
			}
			return arr.Chunk(held, size)
		},

		// objects
		"keys":      unary(objects.Keys),
		"values":    unary(objects.Values),
		"functions": unary(objects.Functions),
		"extend":    variadic(objects.Extend),
		"clone":     unary(objects.Clone),
		"tap":       binary(objects.Tap),
		"isEqual": func(held any, args ...any) (any, error) {
			return objects.IsEqual(held, arg(args, 0)), nil
		},
		"isEmpty":    predicate(objects.IsEmpty),
		"isArray":    predicate(objects.IsArray),
		"isFunction": predicate(objects.IsFunction),
		"isNil":      predicate(objects.IsNil),
		"isString":   predicate(objects.IsString),
		"isNumber":   predicate(objects.IsNumber),
		"isDate":     predicate(objects.IsDate),
		"isRegExp":   predicate(objects.IsRegExp),
		"isNaN":      predicate(objects.IsNaN),

		// functions
		"bind": func(held any, args ...any) (any, error) {
			var partials []any
			if len(args) > 1 {
				partials = args[1:]
			}
			return funcs.Bind(held, arg(args, 0), partials...)
		},
		"bindAll": func(held any, args ...any) (any, error) {
			names := make([]string, 0, len(args))
			for i := range args {
				s, err := stringArg(args, i)
				if err != nil {
					return nil, err
				}
				names = append(names, s)
			}
			if err := funcs.BindAll(held, names...); err != nil {
				return nil, err
			}
			return held, nil
		},
		"compose": spread(funcs.Compose),
		"wrap":    binary(funcs.Wrap),
		"memoize": binary(funcs.Memoize),
		"delay": func(held any, args ...any) (any, error) {
			wait, ok := collections.Convert(arg(args, 0), durationType)
			if !ok {
				return nil, fmt.Errorf("%w: argument 0: want a time.Duration, got %T", funcs.ErrArgType, arg(args, 0))
			}
			var rest []any
			if len(args) > 1 {
				rest = args[1:]
			}
			return funcs.Delay(held, wait.Interface().(time.Duration), rest...)
		},
		"defer": variadic(funcs.Defer),
	}
}

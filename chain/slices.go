package chain

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/funcs"
	"github.com/hasbyte1/go-underscore/objects"
)

// target is a held slice. Length changes are written back through ptr when
// the slice was held by pointer.
type target struct {
	s   reflect.Value
	ptr reflect.Value
}

func sliceOf(held any) (*target, error) {
	rv := reflect.ValueOf(held)
	switch {
	case rv.Kind() == reflect.Slice:
		return &target{s: rv}, nil
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Slice:
		return &target{s: rv.Elem(), ptr: rv}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotSlice, held)
}

// set replaces the slice header and returns the value to continue with.
func (t *target) set(s reflect.Value) any {
	if t.ptr.IsValid() {
		t.ptr.Elem().Set(s)
		return t.ptr.Interface()
	}
	return s.Interface()
}

// elems converts vs to the slice's element type.
func (t *target) elems(vs []any) (reflect.Value, error) {
	et := t.s.Type().Elem()
	out := reflect.MakeSlice(t.s.Type(), 0, len(vs))
	for i, v := range vs {
		ev, ok := collections.Convert(v, et)
		if !ok {
			return reflect.Value{}, fmt.Errorf("%w: argument %d: cannot use %T as %s", funcs.ErrArgType, i, v, et)
		}
		out = reflect.Append(out, ev)
	}
	return out, nil
}

// index resolves a possibly negative position against n, clamped to [0, n].
func index(i, n int) int {
	if i < 0 {
		i += n
	}
	return min(max(i, 0), n)
}

var mutators = map[string]Op{
	"push": func(held any, args ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		add, err := t.elems(args)
		if err != nil {
			return nil, err
		}
		return t.set(reflect.AppendSlice(t.s, add)), nil
	},
	"pop": func(held any, _ ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		if t.s.Len() == 0 {
			return held, nil
		}
		return t.set(t.s.Slice(0, t.s.Len()-1)), nil
	},
	"shift": func(held any, _ ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		if t.s.Len() == 0 {
			return held, nil
		}
		return t.set(t.s.Slice(1, t.s.Len())), nil
	},
	"unshift": func(held any, args ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		out, err := t.elems(args)
		if err != nil {
			return nil, err
		}
		return t.set(reflect.AppendSlice(out, t.s)), nil
	},
	"reverse": func(held any, _ ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		swap := reflect.Swapper(t.s.Interface())
		for i, j := 0, t.s.Len()-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
		return held, nil
	},
	"sort": func(held any, args ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		cmp := func(a, b any) (int, error) { return collections.Compare(a, b) }
		if fn := arg(args, 0); fn != nil {
			if !funcs.Callable(fn) {
				return nil, fmt.Errorf("%w: %T", funcs.ErrNotCallable, fn)
			}
			cmp = func(a, b any) (int, error) {
				res, err := funcs.Call(fn, a, b)
				if err != nil {
					return 0, err
				}
				f, ok := collections.ToFloat(res)
				if !ok {
					return 0, fmt.Errorf("%w: comparator returned %T", funcs.ErrArgType, res)
				}
				switch {
				case f < 0:
					return -1, nil
				case f > 0:
					return 1, nil
				}
				return 0, nil
			}
		}
		// Sorted on a copy so a failing comparator leaves held untouched.
		n := t.s.Len()
		work := reflect.MakeSlice(t.s.Type(), n, n)
		reflect.Copy(work, t.s)
		var sortErr error
		sort.SliceStable(work.Interface(), func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			c, err := cmp(work.Index(i).Interface(), work.Index(j).Interface())
			if err != nil {
				sortErr = err
			}
			return c < 0
		})
		if sortErr != nil {
			return nil, sortErr
		}
		reflect.Copy(t.s, work)
		return held, nil
	},
	"splice": func(held any, args ...any) (any, error) {
		t, err := sliceOf(held)
		if err != nil {
			return nil, err
		}
		n := t.s.Len()
		start, _, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		start = index(start, n)
		count, ok, err := intArg(args, 1)
		if err != nil {
			return nil, err
		}
		if !ok {
			count = n - start
		}
		end := start + min(max(count, 0), n-start)

		var items []any
		if len(args) > 2 {
			items = args[2:]
		}
		insert, err := t.elems(items)
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(t.s.Type(), 0, n-(end-start)+insert.Len())
		out = reflect.AppendSlice(out, t.s.Slice(0, start))
		out = reflect.AppendSlice(out, insert)
		out = reflect.AppendSlice(out, t.s.Slice(end, n))
		return t.set(out), nil
	},
}

var hostOps = map[string]Op{
	"concat": func(held any, args ...any) (any, error) {
		out, err := arr.ToArray(held)
		if err != nil {
			return nil, err
		}
		for _, a := range args {
			if objects.IsArray(a) {
				vs, err := arr.ToArray(a)
				if err != nil {
					return nil, err
				}
				out = append(out, vs...)
				continue
			}
			out = append(out, a)
		}
		return out, nil
	},
	"slice": func(held any, args ...any) (any, error) {
		all, err := arr.Rest(held, 0)
		if err != nil {
			return nil, err
		}
		n := len(all)
		start, _, err := intArg(args, 0)
		if err != nil {
			return nil, err
		}
		end, ok, err := intArg(args, 1)
		if err != nil {
			return nil, err
		}
		if !ok {
			end = n
		}
		start, end = index(start, n), index(end, n)
		if start >= end {
			return []any{}, nil
		}
		return all[start:end], nil
	},
	"join": func(held any, args ...any) (any, error) {
		all, err := arr.ToArray(held)
		if err != nil {
			return nil, err
		}
		sep := ","
		if len(args) > 0 && args[0] != nil {
			if sep, err = stringArg(args, 0); err != nil {
				return nil, err
			}
		}
		parts := make([]string, len(all))
		for i, v := range all {
			if v != nil {
				parts[i] = fmt.Sprint(v)
			}
		}
		return strings.Join(parts, sep), nil
	},
}

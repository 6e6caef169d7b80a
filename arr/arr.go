package arr

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/equality"
	"github.com/hasbyte1/go-underscore/funcs"
)

// Mapper is implemented by collections with their own map operation. [Map]
// delegates to it unchanged.
type Mapper interface {
	Map(fn func(value, key any) (any, error)) ([]any, error)
}

// visit walks col, feeding every callback result to step. The first callback
// error stops the walk and is returned.
func visit(col collections.Collection, cb funcs.Callback, step func(value, key, res any) collections.Control) error {
	var cbErr error
	err := collections.Walk(col, func(v, k any, src collections.Collection) collections.Control {
		res, err := cb(v, k, src)
		if err != nil {
			cbErr = err
			return collections.Break
		}
		return step(v, k, res)
	})
	if err != nil {
		return err
	}
	return cbErr
}

// prepare resolves c and adapts fn. A nil fn falls back to the identity
// callback when allowIdentity is set.
func prepare(c, fn any, allowIdentity bool) (collections.Collection, funcs.Callback, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, nil, err
	}
	if fn == nil && allowIdentity {
		return col, func(v, _ any, _ collections.Collection) (any, error) { return v, nil }, nil
	}
	cb, err := funcs.Iteratee(fn)
	if err != nil {
		return nil, nil, err
	}
	return col, cb, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every element of c and returns c itself. fn stops the
// iteration by returning [collections.Break].
func Each(c, fn any) (any, error) {
	col, cb, err := prepare(c, fn, false)
	if err != nil {
		return nil, err
	}
	err = visit(col, cb, func(_, _, res any) collections.Control {
		if ctl, ok := res.(collections.Control); ok {
			return ctl
		}
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ForEach is an alias for [Each].
func ForEach(c, fn any) (any, error) { return Each(c, fn) }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns the result of fn for every element, in traversal order.
func Map(c, fn any) ([]any, error) {
	if m, ok := c.(Mapper); ok {
		cb, err := funcs.Iteratee(fn)
		if err != nil {
			return nil, err
		}
		return m.Map(func(v, k any) (any, error) { return cb(v, k, nil) })
	}
	col, cb, err := prepare(c, fn, false)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, sizeHint(col))
	err = visit(col, cb, func(_, _, res any) collections.Control {
		out = append(out, res)
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Collect is an alias for [Map].
func Collect(c, fn any) ([]any, error) { return Map(c, fn) }

// Reduce folds c from the left: memo = fn(memo, value, key, source) for
// every element. The seed is mandatory; an empty collection returns it
// unchanged.
func Reduce(c, memo, fn any) (any, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, err
	}
	if !funcs.Callable(fn) {
		return nil, fmt.Errorf("%w: %T", funcs.ErrNotCallable, fn)
	}
	var cbErr error
	err = collections.Walk(col, func(v, k any, src collections.Collection) collections.Control {
		memo, cbErr = funcs.Call(fn, memo, v, k, src)
		if cbErr != nil {
			return collections.Break
		}
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return memo, nil
}

// Foldl is an alias for [Reduce].
func Foldl(c, memo, fn any) (any, error) { return Reduce(c, memo, fn) }

// Inject is an alias for [Reduce].
func Inject(c, memo, fn any) (any, error) { return Reduce(c, memo, fn) }

type entry struct {
	value, key any
}

// ReduceRight folds c from the right. The elements are first copied in
// reverse order and then folded left; callbacks still receive each
// element's original key.
func ReduceRight(c, memo, fn any) (any, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, err
	}
	if !funcs.Callable(fn) {
		return nil, fmt.Errorf("%w: %T", funcs.ErrNotCallable, fn)
	}
	var items []entry
	err = collections.Walk(col, func(v, k any, _ collections.Collection) collections.Control {
		items = append(items, entry{v, k})
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	for _, it := range lo.Reverse(items) {
		if memo, err = funcs.Call(fn, memo, it.value, it.key, col); err != nil {
			return nil, err
		}
	}
	return memo, nil
}

// Foldr is an alias for [ReduceRight].
func Foldr(c, memo, fn any) (any, error) { return ReduceRight(c, memo, fn) }

// Pluck returns the value stored under key in every element, nil where an
// element has no such key.
func Pluck(c, key any) ([]any, error) {
	return Map(c, func(v, _ any) any {
		val, _ := collections.Property(v, key)
		return val
	})
}

// Invoke calls the named method on every element with args and collects the
// results. The method is looked up as a Go method first, then as a
// function-valued key. An empty name calls each element itself.
func Invoke(c any, method string, args ...any) ([]any, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, sizeHint(col))
	var callErr error
	err = collections.Walk(col, func(v, _ any, _ collections.Collection) collections.Control {
		var fn any = v
		if method != "" {
			if fn, callErr = methodOf(v, method); callErr != nil {
				return collections.Break
			}
		}
		var res any
		if res, callErr = funcs.Call(fn, args...); callErr != nil {
			return collections.Break
		}
		out = append(out, res)
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	if callErr != nil {
		return nil, callErr
	}
	return out, nil
}

func methodOf(v any, name string) (any, error) {
	if v != nil {
		if m := reflect.ValueOf(v).MethodByName(name); m.IsValid() {
			return m.Interface(), nil
		}
	}
	if fn, ok := collections.Property(v, name); ok && funcs.Callable(fn) {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %T has no method %q", funcs.ErrNotCallable, v, name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element for which pred is truthy, or nil. The
// traversal stops at the first match.
func Find(c, pred any) (any, error) {
	col, cb, err := prepare(c, pred, false)
	if err != nil {
		return nil, err
	}
	var found any
	err = visit(col, cb, func(v, _, res any) collections.Control {
		if collections.Truthy(res) {
			found = v
			return collections.Break
		}
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Detect is an alias for [Find].
func Detect(c, pred any) (any, error) { return Find(c, pred) }

// Filter returns the elements for which pred is truthy.
func Filter(c, pred any) ([]any, error) {
	col, cb, err := prepare(c, pred, false)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, sizeHint(col))
	err = visit(col, cb, func(v, _, res any) collections.Control {
		if collections.Truthy(res) {
			out = append(out, v)
		}
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Select is an alias for [Filter].
func Select(c, pred any) ([]any, error) { return Filter(c, pred) }

// Reject returns the elements for which pred is falsy.
func Reject(c, pred any) ([]any, error) {
	col, cb, err := prepare(c, pred, false)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, sizeHint(col))
	err = visit(col, cb, func(v, _, res any) collections.Control {
		if !collections.Truthy(res) {
			out = append(out, v)
		}
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Every reports whether pred is truthy for every element, stopping at the
// first falsy result. A nil pred tests the elements themselves.
func Every(c, pred any) (bool, error) {
	col, cb, err := prepare(c, pred, true)
	if err != nil {
		return false, err
	}
	result := true
	err = visit(col, cb, func(_, _, res any) collections.Control {
		if !collections.Truthy(res) {
			result = false
			return collections.Break
		}
		return collections.Continue
	})
	return result && err == nil, err
}

// All is an alias for [Every].
func All(c, pred any) (bool, error) { return Every(c, pred) }

// Some reports whether pred is truthy for any element, stopping at the
// first truthy result. A nil pred tests the elements themselves.
func Some(c, pred any) (bool, error) {
	col, cb, err := prepare(c, pred, true)
	if err != nil {
		return false, err
	}
	result := false
	err = visit(col, cb, func(_, _, res any) collections.Control {
		if collections.Truthy(res) {
			result = true
			return collections.Break
		}
		return collections.Continue
	})
	return result && err == nil, err
}

// Any is an alias for [Some].
func Any(c, pred any) (bool, error) { return Some(c, pred) }

// Includes reports whether target is strictly equal to some element (for
// keyed collections: some value) of c.
func Includes(c, target any) (bool, error) {
	col, err := collections.Of(c)
	if err != nil {
		return false, err
	}
	if ix, ok := col.(*collections.Indexed); ok {
		return indexOf(ix, target) >= 0, nil
	}
	found := false
	err = collections.Walk(col, func(v, _ any, _ collections.Collection) collections.Control {
		if equality.StrictEqual(v, target) {
			found = true
			return collections.Break
		}
		return collections.Continue
	})
	return found, err
}

// Include is an alias for [Includes].
func Include(c, target any) (bool, error) { return Includes(c, target) }

// Contains is an alias for [Includes].
func Contains(c, target any) (bool, error) { return Includes(c, target) }

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// frame pairs an element with the key it is compared by.
type frame struct {
	value, computed any
}

// Max returns the element with the greatest key computed by fn (the element
// itself when fn is nil). Ties keep the first maximum.
//
// Returns [collections.ErrEmptyCollection] for an empty collection and
// [collections.ErrNotComparable] when two keys cannot be ordered.
func Max(c, fn any) (any, error) { return extreme(c, fn, 1) }

// Min returns the element with the smallest key computed by fn (the element
// itself when fn is nil). Ties keep the first minimum.
func Min(c, fn any) (any, error) { return extreme(c, fn, -1) }

func extreme(c, fn any, want int) (any, error) {
	col, cb, err := prepare(c, fn, true)
	if err != nil {
		return nil, err
	}
	if ix, ok := col.(*collections.Indexed); ok && fn == nil {
		if best, ok := numericExtreme(ix, want); ok {
			return best, nil
		}
	}

	var best *frame
	var cmpErr error
	err = visit(col, cb, func(v, _, computed any) collections.Control {
		if best == nil {
			best = &frame{value: v, computed: computed}
			return collections.Continue
		}
		c, err := collections.Compare(computed, best.computed)
		if err != nil {
			cmpErr = err
			return collections.Break
		}
		if c == want {
			best = &frame{value: v, computed: computed}
		}
		return collections.Continue
	})
	switch {
	case err != nil:
		return nil, err
	case cmpErr != nil:
		return nil, cmpErr
	case best == nil:
		return nil, collections.ErrEmptyCollection
	}
	return best.value, nil
}

// numericExtreme scans an all-numeric indexed collection by value. It
// reports false when the collection is empty or holds a non-number.
func numericExtreme(ix *collections.Indexed, want int) (any, bool) {
	if ix.Len() == 0 {
		return nil, false
	}
	var best any
	var bestF float64
	for i := range ix.Len() {
		v, _ := ix.At(i)
		f, ok := collections.ToFloat(v)
		if !ok {
			return nil, false
		}
		if i == 0 || (want > 0 && f > bestF) || (want < 0 && f < bestF) {
			best, bestF = v, f
		}
	}
	return best, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups elements by the key fn computes for them. Keys must be
// comparable.
func GroupBy(c, fn any) (map[any][]any, error) {
	col, cb, err := prepare(c, fn, false)
	if err != nil {
		return nil, err
	}
	groups := make(map[any][]any)
	var keyErr error
	err = visit(col, cb, func(v, _, k any) collections.Control {
		if k != nil && !reflect.TypeOf(k).Comparable() {
			keyErr = fmt.Errorf("%w: group key %T", collections.ErrNotComparable, k)
			return collections.Break
		}
		groups[k] = append(groups[k], v)
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	return groups, keyErr
}

// Partition splits c into the elements for which pred is truthy and those
// for which it is not.
func Partition(c, pred any) (pass, fail []any, err error) {
	col, cb, err := prepare(c, pred, true)
	if err != nil {
		return nil, nil, err
	}
	pass, fail = []any{}, []any{}
	err = visit(col, cb, func(v, _, res any) collections.Control {
		if collections.Truthy(res) {
			pass = append(pass, v)
		} else {
			fail = append(fail, v)
		}
		return collections.Continue
	})
	if err != nil {
		return nil, nil, err
	}
	return pass, fail, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the elements (for keyed collections: the values) of c as
// a new slice.
func ToArray(c any) ([]any, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, err
	}
	if ix, ok := col.(*collections.Indexed); ok {
		return ix.Slice(), nil
	}
	out := make([]any, 0, sizeHint(col))
	err = collections.Walk(col, func(v, _ any, _ collections.Collection) collections.Control {
		out = append(out, v)
		return collections.Continue
	})
	return out, err
}

// Size returns the number of elements in c.
func Size(c any) (int, error) {
	col, err := collections.Of(c)
	if err != nil {
		return 0, err
	}
	switch col := col.(type) {
	case *collections.Indexed:
		return col.Len(), nil
	case *collections.Keyed:
		return col.Len(), nil
	}
	n := 0
	err = collections.Walk(col, func(_, _ any, _ collections.Collection) collections.Control {
		n++
		return collections.Continue
	})
	return n, err
}

func sizeHint(col collections.Collection) int {
	if ix, ok := col.(*collections.Indexed); ok {
		return ix.Len()
	}
	return 0
}

// values returns the elements of an indexed collection without copying
// when it already is a []any.
func values(ix *collections.Indexed) []any {
	if s, ok := ix.Source().([]any); ok {
		return s
	}
	return ix.Slice()
}

// indexOf is the strict-equality scan shared by IndexOf and Includes.
func indexOf(ix *collections.Indexed, item any) int {
	return slices.IndexFunc(values(ix), func(v any) bool { return equality.StrictEqual(v, item) })
}

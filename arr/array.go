package arr

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/equality"
	"github.com/hasbyte1/go-underscore/funcs"
)

// indexed resolves array and requires it to be an indexed collection.
func indexed(array any) (*collections.Indexed, error) {
	col, err := collections.Of(array)
	if err != nil {
		return nil, err
	}
	ix, ok := col.(*collections.Indexed)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotIndexed, array)
	}
	return ix, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of array, or nil when it is empty.
func First(array any) (any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	v, _ := ix.At(0)
	return v, nil
}

// Head is an alias for [First].
func Head(array any) (any, error) { return First(array) }

// Last returns the last element of array, or nil when it is empty.
func Last(array any) (any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	v, _ := ix.At(ix.Len() - 1)
	return v, nil
}

// Rest returns the elements of array from index on (1 when omitted).
func Rest(array any, index ...int) ([]any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	from := 1
	if len(index) > 0 {
		from = index[0]
	}
	all := ix.Slice()
	from = min(max(from, 0), len(all))
	return all[from:], nil
}

// Tail is an alias for [Rest].
func Tail(array any, index ...int) ([]any, error) { return Rest(array, index...) }

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Compact returns the truthy elements of array.
func Compact(array any) ([]any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	return Filter(ix.Source(), collections.Truthy)
}

// Without returns array minus every element strictly equal to one of
// excluded.
func Without(array any, excluded ...any) ([]any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	return Reject(ix.Source(), func(v any) bool {
		return slices.ContainsFunc(excluded, func(x any) bool { return equality.StrictEqual(v, x) })
	})
}

// Uniq returns array with duplicates removed, keeping first occurrences.
// When isSorted is set each element is compared only against the last kept
// one, which is linear but only correct for sorted input.
func Uniq(array any, isSorted ...bool) ([]any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	sorted := len(isSorted) > 0 && isSorted[0]
	out := make([]any, 0, ix.Len())
	for i, v := range values(ix) {
		switch {
		case i == 0:
		case sorted && equality.StrictEqual(out[len(out)-1], v):
			continue
		case !sorted && slices.ContainsFunc(out, func(x any) bool { return equality.StrictEqual(x, v) }):
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Unique is an alias for [Uniq].
func Unique(array any, isSorted ...bool) ([]any, error) { return Uniq(array, isSorted...) }

// Intersect returns the distinct elements of array present in every one of
// others.
func Intersect(array any, others ...any) ([]any, error) {
	rest := make([]*collections.Indexed, 0, len(others))
	for _, o := range others {
		ix, err := indexed(o)
		if err != nil {
			return nil, err
		}
		rest = append(rest, ix)
	}
	distinct, err := Uniq(array)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(distinct, func(item any) bool {
		return slices.ContainsFunc(rest, func(other *collections.Indexed) bool { return indexOf(other, item) < 0 })
	}), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten recursively flattens nested slices and arrays into one slice.
// Strings are kept whole.
func Flatten(array any) ([]any, error) {
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, ix.Len())
	var flatten func(vs []any)
	flatten = func(vs []any) {
		for _, v := range vs {
			if nested, ok := nestedSlice(v); ok {
				flatten(nested.Slice())
				continue
			}
			out = append(out, v)
		}
	}
	flatten(values(ix))
	return out, nil
}

func nestedSlice(v any) (*collections.Indexed, bool) {
	if v == nil {
		return nil, false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		col, err := collections.Of(v)
		if err != nil {
			return nil, false
		}
		ix, ok := col.(*collections.Indexed)
		return ix, ok
	}
	return nil, false
}

// Zip groups the elements of arrays by index. The result has as many groups
// as the longest array; shorter arrays contribute nil.
func Zip(arrays ...any) ([][]any, error) {
	cols := make([]*collections.Indexed, 0, len(arrays))
	longest := 0
	for _, a := range arrays {
		ix, err := indexed(a)
		if err != nil {
			return nil, err
		}
		cols = append(cols, ix)
		longest = max(longest, ix.Len())
	}
	out := make([][]any, longest)
	for i := range out {
		group := make([]any, len(cols))
		for j, ix := range cols {
			group[j], _ = ix.At(i)
		}
		out[i] = group
	}
	return out, nil
}

// Chunk splits array into consecutive groups of size. The last group may
// hold fewer elements.
func Chunk(array any, size int) ([][]any, error) {
	if size <= 0 {
		return nil, ErrInvalidChunkSize
	}
	ix, err := indexed(array)
	if err != nil {
		return nil, err
	}
	return slices.Collect(slices.Chunk(ix.Slice(), size)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the position of the first element strictly equal to
// item, or -1.
func IndexOf(array, item any) (int, error) {
	ix, err := indexed(array)
	if err != nil {
		return -1, err
	}
	return indexOf(ix, item), nil
}

// LastIndexOf returns the position of the last element strictly equal to
// item, or -1.
func LastIndexOf(array, item any) (int, error) {
	ix, err := indexed(array)
	if err != nil {
		return -1, err
	}
	vs := values(ix)
	for i := len(vs) - 1; i >= 0; i-- {
		if equality.StrictEqual(vs[i], item) {
			return i, nil
		}
	}
	return -1, nil
}

// SortedIndex returns the leftmost position at which obj can be inserted
// into the sorted array without breaking its order. The order is that of
// the keys fn computes, or of the elements themselves when fn is nil.
func SortedIndex(array, obj, fn any) (int, error) {
	ix, err := indexed(array)
	if err != nil {
		return 0, err
	}
	key, err := criterion(fn)
	if err != nil {
		return 0, err
	}
	target, err := key(obj, nil)
	if err != nil {
		return 0, err
	}
	low, high := 0, ix.Len()
	for low < high {
		mid := int(uint(low+high) >> 1)
		v, _ := ix.At(mid)
		k, err := key(v, mid)
		if err != nil {
			return 0, err
		}
		c, err := collections.Compare(k, target)
		if err != nil {
			return 0, err
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid
		}
	}
	return low, nil
}

// SortBy returns the elements of c stably sorted by the keys fn computes.
// fn may also be a property name.
func SortBy(c, fn any) ([]any, error) {
	col, err := collections.Of(c)
	if err != nil {
		return nil, err
	}
	key, err := criterion(fn)
	if err != nil {
		return nil, err
	}
	var frames []frame
	var keyErr error
	err = collections.Walk(col, func(v, k any, _ collections.Collection) collections.Control {
		var computed any
		if computed, keyErr = key(v, k); keyErr != nil {
			return collections.Break
		}
		frames = append(frames, frame{value: v, computed: computed})
		return collections.Continue
	})
	if err != nil {
		return nil, err
	}
	if keyErr != nil {
		return nil, keyErr
	}

	var cmpErr error
	slices.SortStableFunc(frames, func(a, b frame) int {
		c, err := collections.Compare(a.computed, b.computed)
		if err != nil && cmpErr == nil {
			cmpErr = err
		}
		return c
	})
	if cmpErr != nil {
		return nil, cmpErr
	}
	out := make([]any, len(frames))
	for i, f := range frames {
		out[i] = f.value
	}
	return out, nil
}

// criterion adapts a sort key: nil is the identity and a string names a
// property.
func criterion(fn any) (func(v, k any) (any, error), error) {
	switch f := fn.(type) {
	case nil:
		return func(v, _ any) (any, error) { return v, nil }, nil
	case string:
		return func(v, _ any) (any, error) {
			val, _ := collections.Property(v, f)
			return val, nil
		}, nil
	}
	cb, err := funcs.Iteratee(fn)
	if err != nil {
		return nil, err
	}
	return func(v, k any) (any, error) { return cb(v, k, nil) }, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Generation
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the arithmetic progression [start, stop) by step. It takes
// (stop), (start, stop) or (start, stop, step); start defaults to 0 and
// step to 1. A progression that never reaches stop is empty.
//
// Integer bounds produce int elements; any float bound produces float64
// elements. Returns [ErrInvalidRange] for a wrong argument count, a
// non-numeric or non-finite bound or a zero step.
func Range(bounds ...any) ([]any, error) {
	if len(bounds) == 0 || len(bounds) > 3 {
		return nil, fmt.Errorf("%w: want 1 to 3 bounds, got %d", ErrInvalidRange, len(bounds))
	}
	args := []any{0, nil, 1}
	if len(bounds) == 1 {
		args[1] = bounds[0]
	} else {
		copy(args, bounds)
	}

	integral := true
	nums := make([]float64, 3)
	for i, b := range args {
		f, ok := collections.ToFloat(b)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T) is not a number", ErrInvalidRange, b, b)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v is not finite", ErrInvalidRange, b)
		}
		nums[i] = f
		integral = integral && isIntegerKind(b)
	}
	if nums[2] == 0 {
		return nil, fmt.Errorf("%w: step must not be zero", ErrInvalidRange)
	}

	if integral {
		return lo.ToAnySlice(lo.RangeWithSteps(int(nums[0]), int(nums[1]), int(nums[2]))), nil
	}
	return lo.ToAnySlice(lo.RangeWithSteps(nums[0], nums[1], nums[2])), nil
}

func isIntegerKind(v any) bool {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

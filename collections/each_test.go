package collections_test

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/collections"
)

// record collects every (value, key) pair the dispatcher produces.
func record(t *testing.T, v any) (values, keys []any) {
	t.Helper()
	_, err := collections.Each(v, func(value, key any, _ collections.Collection) collections.Control {
		values = append(values, value)
		keys = append(keys, key)
		return collections.Continue
	})
	require.NoError(t, err)
	return values, keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

func TestOfShapes(t *testing.T) {
	seq := iter.Seq[any](func(yield func(any) bool) { yield(1) })
	cases := []struct {
		name string
		in   any
		want collections.Shape
	}{
		{"slice", []int{1, 2}, collections.ShapeIndexed},
		{"nil slice", []int(nil), collections.ShapeIndexed},
		{"array", [2]string{"a", "b"}, collections.ShapeIndexed},
		{"array pointer", &[2]string{"a", "b"}, collections.ShapeIndexed},
		{"string", "héllo", collections.ShapeIndexed},
		{"map", map[string]int{"a": 1}, collections.ShapeKeyed},
		{"struct", struct{ A int }{1}, collections.ShapeKeyed},
		{"struct pointer", &struct{ A int }{1}, collections.ShapeKeyed},
		{"record", collections.NewRecord("a", 1), collections.ShapeKeyed},
		{"iter.Seq", seq, collections.ShapeSequence},
		{"typed iterator", slices.All([]string{"x"}), collections.ShapeSequence},
		{"map iterator", maps.Keys(map[int]bool{1: true}), collections.ShapeSequence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := collections.Of(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Shape())
		})
	}
}

func TestOfRejectsNil(t *testing.T) {
	var p *struct{ A int }
	var f func(func(any) bool)
	for _, v := range []any{nil, p, f} {
		_, err := collections.Of(v)
		assert.ErrorIs(t, err, collections.ErrNilCollection, "%T", v)
	}
}

func TestOfRejectsScalars(t *testing.T) {
	for _, v := range []any{42, true, 3.5, func() {}, make(chan int)} {
		_, err := collections.Of(v)
		assert.ErrorIs(t, err, collections.ErrNotCollection, "%T", v)
	}
}

func TestOfReturnsResolvedCollection(t *testing.T) {
	c, err := collections.Of([]int{1})
	require.NoError(t, err)
	again, err := collections.Of(c)
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "Indexed", collections.ShapeIndexed.String())
	assert.Equal(t, "Shape(0)", collections.Shape(0).String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch order
// ─────────────────────────────────────────────────────────────────────────────

func TestEachIndexedOrder(t *testing.T) {
	values, keys := record(t, []string{"a", "b", "c"})
	assert.Equal(t, []any{"a", "b", "c"}, values)
	assert.Equal(t, []any{0, 1, 2}, keys)
}

func TestEachStringByRune(t *testing.T) {
	values, _ := record(t, "hé!")
	assert.Equal(t, []any{"h", "é", "!"}, values)
}

func TestEachMapSortedKeys(t *testing.T) {
	values, keys := record(t, map[string]int{"b": 2, "c": 3, "a": 1})
	assert.Equal(t, []any{"a", "b", "c"}, keys)
	assert.Equal(t, []any{1, 2, 3}, values)
}

func TestEachStructFields(t *testing.T) {
	type point struct {
		X, Y   int
		hidden int
	}
	values, keys := record(t, point{X: 1, Y: 2, hidden: 3})
	assert.Equal(t, []any{"X", "Y"}, keys)
	assert.Equal(t, []any{1, 2}, values)
}

func TestEachRecordInsertionOrder(t *testing.T) {
	values, keys := record(t, collections.NewRecord("z", 1, "a", 2, "m", 3))
	assert.Equal(t, []any{"z", "a", "m"}, keys)
	assert.Equal(t, []any{1, 2, 3}, values)
}

func TestEachSequenceDelegates(t *testing.T) {
	values, keys := record(t, maps.All(map[string]int{"only": 7}))
	assert.Equal(t, []any{7}, values)
	assert.Equal(t, []any{"only"}, keys)

	seq := iter.Seq[any](func(yield func(any) bool) {
		for _, v := range []any{"x", "y"} {
			if !yield(v) {
				return
			}
		}
	})
	values, keys = record(t, seq)
	assert.Equal(t, []any{"x", "y"}, values)
	assert.Equal(t, []any{0, 1}, keys)
}

func TestEachPassesSource(t *testing.T) {
	in := []int{1}
	_, err := collections.Each(in, func(_, _ any, src collections.Collection) collections.Control {
		assert.Equal(t, collections.ShapeIndexed, src.Shape())
		assert.Equal(t, in, src.Source())
		return collections.Continue
	})
	require.NoError(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Identity and early termination
// ─────────────────────────────────────────────────────────────────────────────

func TestEachReturnsSameReference(t *testing.T) {
	noop := func(_, _ any, _ collections.Collection) collections.Control { return collections.Continue }

	s := []int{1, 2, 3}
	got, err := collections.Each(s, noop)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(s).Pointer(), reflect.ValueOf(got).Pointer())

	m := map[string]int{"a": 1}
	got, err = collections.Each(m, noop)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(m).Pointer(), reflect.ValueOf(got).Pointer())

	r := collections.NewRecord("a", 1)
	got, err = collections.Each(r, noop)
	require.NoError(t, err)
	assert.Same(t, r, got)
}

func TestEachBreakStopsIteration(t *testing.T) {
	var seen []any
	_, err := collections.Each([]int{10, 20, 30, 40}, func(v, i any, _ collections.Collection) collections.Control {
		seen = append(seen, v)
		if i.(int) == 1 {
			return collections.Break
		}
		return collections.Continue
	})
	require.NoError(t, err)
	assert.Equal(t, []any{10, 20}, seen)
}

func TestEachBreakOnSequence(t *testing.T) {
	calls := 0
	_, err := collections.Each(slices.Values([]int{1, 2, 3}), func(_, _ any, _ collections.Collection) collections.Control {
		calls++
		return collections.Break
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestEachNilIterator(t *testing.T) {
	_, err := collections.Each([]int{1}, nil)
	assert.ErrorIs(t, err, collections.ErrNilIterator)
}

func TestEachNilCollection(t *testing.T) {
	_, err := collections.Each(nil, func(_, _ any, _ collections.Collection) collections.Control {
		return collections.Continue
	})
	assert.ErrorIs(t, err, collections.ErrNilCollection)
}

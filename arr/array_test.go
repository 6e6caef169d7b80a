package arr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/arr"
	"github.com/hasbyte1/go-underscore/collections"
)

// ─── Accessors ────────────────────────────────────────────────────────────────

func TestFirstLastRest(t *testing.T) {
	in := []int{5, 4, 3, 2, 1}

	v, err := arr.First(in)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, _ = arr.Head([]int{})
	assert.Nil(t, v)

	v, _ = arr.Last(in)
	assert.Equal(t, 1, v)

	v, _ = arr.Last([]string{})
	assert.Nil(t, v)

	rest, _ := arr.Rest(in)
	assert.Equal(t, []any{4, 3, 2, 1}, rest)

	rest, _ = arr.Tail(in, 3)
	assert.Equal(t, []any{2, 1}, rest)

	rest, _ = arr.Rest(in, 10)
	assert.Empty(t, rest)

	_, err = arr.First(map[string]int{})
	assert.ErrorIs(t, err, arr.ErrNotIndexed)

	_, err = arr.Last(nil)
	assert.ErrorIs(t, err, collections.ErrNilCollection)
}

// ─── Filtering ────────────────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	got, err := arr.Compact([]any{0, 1, false, 2, "", 3, nil})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestWithout(t *testing.T) {
	got, err := arr.Without([]int{1, 2, 1, 0, 3, 1, 4}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3, 4}, got)
}

func TestUniq(t *testing.T) {
	got, err := arr.Uniq([]int{1, 2, 1, 3, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, got)

	got, err = arr.Unique([]int{1, 1, 2, 2, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, got)

	got, _ = arr.Uniq([]any{1, int64(1), "1"})
	assert.Len(t, got, 3, "strict equality keeps distinct types")

	got, _ = arr.Uniq([]int{})
	assert.Empty(t, got)
}

func TestIntersect(t *testing.T) {
	got, err := arr.Intersect([]int{1, 2, 3}, []int{2, 3, 4}, []int{3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []any{3}, got)

	got, err = arr.Intersect([]string{"a", "a", "b"}, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)

	got, err = arr.Intersect([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	_, err = arr.Intersect([]int{1}, 3)
	assert.ErrorIs(t, err, collections.ErrNotCollection)
}

// ─── Restructuring ────────────────────────────────────────────────────────────

func TestFlatten(t *testing.T) {
	got, err := arr.Flatten([]any{1, []int{2, 3}, []any{4, []any{5, [1]int{6}}}, "ab"})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, "ab"}, got)
}

func TestZip(t *testing.T) {
	got, err := arr.Zip([]int{1, 2, 3}, []string{"a"}, []bool{true, false})
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, "a", true}, {2, nil, false}, {3, nil, nil}}, got)

	got, err = arr.Zip()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChunk(t *testing.T) {
	got, err := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{1, 2}, {3, 4}, {5}}, got)

	got, err = arr.Chunk([]int{}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = arr.Chunk([]int{1}, 0)
	assert.ErrorIs(t, err, arr.ErrInvalidChunkSize)
}

// ─── Searching ────────────────────────────────────────────────────────────────

func TestIndexOf(t *testing.T) {
	in := []int{1, 2, 3, 1, 2, 3}

	i, err := arr.IndexOf(in, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	i, _ = arr.LastIndexOf(in, 2)
	assert.Equal(t, 4, i)

	i, _ = arr.IndexOf(in, 9)
	assert.Equal(t, -1, i)

	i, _ = arr.LastIndexOf(in, "2")
	assert.Equal(t, -1, i)

	i, _ = arr.IndexOf("héllo", "l")
	assert.Equal(t, 2, i)
}

// ─── Range ────────────────────────────────────────────────────────────────────

func TestRange(t *testing.T) {
	cases := []struct {
		name   string
		bounds []any
		want   []any
	}{
		{"stop only", []any{4}, []any{0, 1, 2, 3}},
		{"start stop", []any{1, 4}, []any{1, 2, 3}},
		{"step", []any{0, 10, 3}, []any{0, 3, 6, 9}},
		{"negative step", []any{10, 0, -3}, []any{10, 7, 4, 1}},
		{"empty", []any{0}, []any{}},
		{"wrong direction", []any{5, 0}, []any{}},
		{"mixed integer kinds", []any{uint8(1), int64(3)}, []any{1, 2}},
		{"float step", []any{0, 1, 0.25}, []any{0.0, 0.25, 0.5, 0.75}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := arr.Range(tc.bounds...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRangeInvalid(t *testing.T) {
	for _, bounds := range [][]any{
		{},
		{"10"},
		{0, nil},
		{0, 10, 0},
		{1, 2, 3, 4},
		{0.0, math.Inf(1)},
		{math.Inf(-1), 0},
		{0, math.NaN()},
		{0, 10, math.NaN()},
	} {
		_, err := arr.Range(bounds...)
		assert.ErrorIs(t, err, arr.ErrInvalidRange, "%v", bounds)
	}
}

package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underscore/chain"
	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/funcs"
)

func TestPushPopShiftUnshift(t *testing.T) {
	w := chain.Wrap([]int{2, 3})

	got, err := w.Apply("push", 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, got)

	held, _ := w.Value()
	assert.Equal(t, []int{2, 3, 4, 5}, held, "mutators update the handle")

	got, _ = w.Apply("unshift", 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	got, _ = w.Apply("pop")
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, _ = w.Apply("shift")
	assert.Equal(t, []int{2, 3, 4}, got)

	_, err = w.Apply("push", "x")
	assert.ErrorIs(t, err, funcs.ErrArgType)
}

func TestMutatorsThroughPointer(t *testing.T) {
	s := []string{"b", "c"}
	_, err := chain.Wrap(&s).Chain().Push("d").Unshift("a").Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s)

	_, err = chain.Wrap(&s).Splice(1, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, s)
}

func TestPopShiftEmpty(t *testing.T) {
	got, err := chain.Wrap([]int{}).Pop().Shift().Value()
	require.NoError(t, err)
	assert.Equal(t, []int{}, got)
}

func TestReverseInPlace(t *testing.T) {
	s := []int{1, 2, 3}
	_, err := chain.Wrap(s).Reverse().Value()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, s)
}

func TestSort(t *testing.T) {
	s := []string{"pear", "fig", "apple"}
	_, err := chain.Wrap(s).Sort().Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "fig", "pear"}, s)

	byLen := func(a, b string) int { return len(a) - len(b) }
	_, err = chain.Wrap(s).Sort(byLen).Value()
	require.NoError(t, err)
	assert.Equal(t, []string{"fig", "pear", "apple"}, s)

	_, err = chain.Wrap([]any{1, "a"}).Sort().Value()
	assert.Error(t, err)

	_, err = chain.Wrap([]int{2, 1}).Sort(42).Value()
	assert.ErrorIs(t, err, funcs.ErrNotCallable)
}

func TestSortFailureLeavesSliceUntouched(t *testing.T) {
	s := []any{3, 2, 1, "x"}
	_, err := chain.Wrap(s).Sort().Value()
	require.ErrorIs(t, err, collections.ErrNotComparable)
	assert.Equal(t, []any{3, 2, 1, "x"}, s)

	boom := errors.New("boom")
	calls := 0
	n := []int{5, 4, 3, 2, 1}
	_, err = chain.Wrap(&n).Sort(func(a, b int) (int, error) {
		if calls++; calls > 3 {
			return 0, boom
		}
		return a - b, nil
	}).Value()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, n)
}

func TestSplice(t *testing.T) {
	cases := []struct {
		name  string
		start int
		count int
		items []any
		want  []int
	}{
		{"remove", 1, 2, nil, []int{1, 4, 5}},
		{"insert", 2, 0, []any{9, 8}, []int{1, 2, 9, 8, 3, 4, 5}},
		{"replace", 0, 1, []any{0}, []int{0, 2, 3, 4, 5}},
		{"negative start", -2, 1, nil, []int{1, 2, 3, 5}},
		{"count past end", 3, 10, nil, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := chain.Wrap([]int{1, 2, 3, 4, 5}).Splice(tc.start, tc.count, tc.items...).Value()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSliceOpsRejectNonSlices(t *testing.T) {
	for _, op := range []string{"push", "pop", "shift", "unshift", "reverse", "sort", "splice"} {
		_, err := chain.Wrap(map[string]int{}).Apply(op)
		assert.ErrorIs(t, err, chain.ErrNotSlice, op)
	}
}

// ─── Non-mutating ─────────────────────────────────────────────────────────────

func TestConcat(t *testing.T) {
	in := []int{1, 2}
	w := chain.Wrap(in)
	got, err := w.Concat([]int{3}, 4, [2]string{"a", "b"}).Value()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4, "a", "b"}, got)

	held, _ := w.Value()
	assert.Equal(t, []int{1, 2}, held)
}

func TestSlice(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	got, _ := chain.Wrap(in).Slice(1, 3).Value()
	assert.Equal(t, []any{2, 3}, got)

	got, _ = chain.Wrap(in).Slice(-2).Value()
	assert.Equal(t, []any{4, 5}, got)

	got, _ = chain.Wrap(in).Slice(3, 1).Value()
	assert.Equal(t, []any{}, got)

	got, _ = chain.Wrap(in).Apply("slice")
	assert.Equal(t, []any{1, 2, 3, 4, 5}, got)
}

func TestJoin(t *testing.T) {
	got, _ := chain.Wrap([]any{1, "a", nil, true}).Join().Value()
	assert.Equal(t, "1,a,,true", got)

	got, _ = chain.Wrap([]string{"x", "y"}).Join(" - ").Value()
	assert.Equal(t, "x - y", got)
}

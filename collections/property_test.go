package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underscore/collections"
)

func nested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"emails":  []string{"a@example.com", "alice@example.com"},
			"address": struct{ City string }{"London"},
		},
	}
}

func TestProperty(t *testing.T) {
	v, ok := collections.Property(map[string]int{"a": 1}, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = collections.Property([]string{"x", "y"}, 1)
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	v, ok = collections.Property([]string{"x", "y"}, "0")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = collections.Property([]string{"x"}, 5)
	assert.False(t, ok)

	_, ok = collections.Property(42, "a")
	assert.False(t, ok)
}

func TestPropertyMapKeyConversion(t *testing.T) {
	m := map[int64]string{1: "one"}
	v, ok := collections.Property(m, 1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	_, ok = collections.Property(m, 1.5)
	assert.False(t, ok, "lossy numeric key must not match")

	_, ok = collections.Property(map[string]int{"1": 1}, 1)
	assert.False(t, ok, "numbers must not convert to strings")
}

func TestPath(t *testing.T) {
	m := nested()

	v, ok := collections.Path(m, "user.name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)

	v, ok = collections.Path(m, "user.emails.1")
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", v)

	v, ok = collections.Path(m, "user.address.City")
	assert.True(t, ok)
	assert.Equal(t, "London", v)

	_, ok = collections.Path(m, "user.missing")
	assert.False(t, ok)

	v, ok = collections.Path(m, "")
	assert.True(t, ok)
	assert.Equal(t, m, v)
}

func TestHasPath(t *testing.T) {
	m := nested()
	assert.True(t, collections.HasPath(m, "user.emails"))
	assert.False(t, collections.HasPath(m, "user.name.first"))
}

func TestRecord(t *testing.T) {
	r := collections.NewRecord("b", 1, "a", 2)
	r.Set("b", 3).Set("c", 4)
	assert.Equal(t, []any{"b", "a", "c"}, r.Keys())

	v, ok := r.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	r.Delete("a")
	r.Delete("missing")
	assert.Equal(t, []any{"b", "c"}, r.Keys())
	assert.Equal(t, 2, r.Len())

	odd := collections.NewRecord("k")
	v, ok = odd.Get("k")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestRecordRejectsNonComparableKeys(t *testing.T) {
	r := collections.NewRecord("a", 1)

	err := r.Put([]int{1}, "x")
	assert.ErrorIs(t, err, collections.ErrNotComparable)
	assert.Equal(t, []any{"a"}, r.Keys())

	type wrapper struct{ V any }
	assert.ErrorIs(t, r.Put(wrapper{[]int{1}}, "x"), collections.ErrNotComparable)
	assert.NoError(t, r.Put(wrapper{1}, "y"))

	_, ok := r.Get(map[string]int{})
	assert.False(t, ok)
	r.Delete([]int{1})
	assert.Equal(t, 2, r.Len())

	assert.Panics(t, func() { r.Set([]int{1}, "x") })

	_, ok = collections.Property(r, []int{1})
	assert.False(t, ok)
}

package equality

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hasbyte1/go-underscore/collections"
)

// Equaler is implemented by values that define their own equality. IsEqual
// delegates to it entirely.
type Equaler interface {
	IsEqual(other any) bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Strict & loose
// ─────────────────────────────────────────────────────────────────────────────

// StrictEqual reports whether a and b are identical: the same dynamic type
// and equal under ==. Slices and maps are identical only when they share
// the same backing storage (and, for slices, the same length). Functions are
// identical only when both are nil. Values that contain non-comparable parts
// are never identical.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	case reflect.Map:
		return ra.Pointer() == rb.Pointer()
	case reflect.Func:
		return ra.IsNil() && rb.IsNil()
	}
	if !ra.Comparable() || !rb.Comparable() {
		return false
	}
	return a == b
}

// LooseEqual reports whether a and b are equal after coercion:
//
//   - numbers of any Go numeric type compare by value;
//   - named types compare by their underlying basic value;
//   - a numeric string equals the number it parses to;
//   - true and false equal 1 and 0;
//   - an untyped nil equals a nil pointer, map, slice, function or channel.
//
// NaN is never loosely equal to anything.
func LooseEqual(a, b any) bool {
	if StrictEqual(a, b) {
		return true
	}
	ca, cb := collections.ClassOf(a), collections.ClassOf(b)
	switch {
	case ca == collections.ClassNil || cb == collections.ClassNil:
		return nilLike(a) && nilLike(b)
	case ca == cb && (ca == collections.ClassNumber || ca == collections.ClassString || ca == collections.ClassBool):
		c, err := collections.Compare(a, b)
		return err == nil && c == 0 && !isNaN(a)
	case ca == collections.ClassString && cb == collections.ClassNumber:
		return stringEqualsNumber(a, b)
	case ca == collections.ClassNumber && cb == collections.ClassString:
		return stringEqualsNumber(b, a)
	case ca == collections.ClassBool || cb == collections.ClassBool:
		return LooseEqual(boolToNumber(a), boolToNumber(b))
	}
	return false
}

func nilLike(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func stringEqualsNumber(s, n any) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(reflect.ValueOf(s).String()), 64)
	if err != nil {
		return false
	}
	x, _ := collections.ToFloat(n)
	return f == x
}

func boolToNumber(v any) any {
	if collections.ClassOf(v) != collections.ClassBool {
		return v
	}
	if reflect.ValueOf(v).Bool() {
		return 1
	}
	return 0
}

func isNaN(v any) bool {
	f, ok := collections.ToFloat(v)
	return ok && math.IsNaN(f)
}

// ─────────────────────────────────────────────────────────────────────────────
// Structural
// ─────────────────────────────────────────────────────────────────────────────

// IsEqual reports whether a and b are structurally equal. See the package
// documentation for the rule order.
func IsEqual(a, b any) bool {
	if StrictEqual(a, b) {
		return true
	}
	if collections.ClassOf(a) != collections.ClassOf(b) {
		return false
	}
	if LooseEqual(a, b) {
		return true
	}
	if e, ok := a.(Equaler); ok {
		return e.IsEqual(b)
	}
	if e, ok := b.(Equaler); ok {
		return e.IsEqual(a)
	}
	if ta, ok := asTime(a); ok {
		tb, ok := asTime(b)
		return ok && ta.Equal(tb)
	}
	if isNaN(a) && isNaN(b) {
		return true
	}
	if ra, ok := asRegexp(a); ok {
		rb, ok := asRegexp(b)
		return ok && ra.String() == rb.String() && longest(ra) == longest(rb)
	}
	if collections.ClassOf(a) != collections.ClassObject {
		return false
	}
	if opaque(a) || opaque(b) {
		return reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a, b)
	}
	return structurallyEqual(a, b)
}

// opaque reports whether v is, or points to, a struct with unexported
// fields that is not itself a collection. Such values carry state their
// keys do not show and are compared field by field, unexported ones
// included.
func opaque(v any) bool {
	switch v.(type) {
	case collections.Sequential, collections.Lengther, collections.KeyEnumerable:
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return false
	}
	t := rv.Type()
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return true
		}
	}
	return false
}

func structurallyEqual(a, b any) bool {
	ca, errA := collections.Of(a)
	cb, errB := collections.Of(b)
	if errA != nil || errB != nil {
		return pointeesEqual(a, b)
	}

	ia, aIndexed := ca.(*collections.Indexed)
	ib, bIndexed := cb.(*collections.Indexed)
	if aIndexed && bIndexed && ia.Len() != ib.Len() {
		return false
	}

	ka, getA, errA := entries(ca)
	kb, getB, errB := entries(cb)
	if errA != nil || errB != nil || len(ka) != len(kb) {
		return false
	}
	for _, k := range ka {
		va, _ := getA(k)
		vb, ok := getB(k)
		if !ok || !IsEqual(va, vb) {
			return false
		}
	}
	return true
}

// pointeesEqual compares what two non-collection pointers point at.
func pointeesEqual(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != reflect.Pointer || rb.Kind() != reflect.Pointer {
		return false
	}
	if ra.IsNil() || rb.IsNil() {
		return ra.IsNil() && rb.IsNil()
	}
	return IsEqual(ra.Elem().Interface(), rb.Elem().Interface())
}

// entries lists the keys of c and a lookup over them. Sequences are
// materialised, keyed by what they yield.
func entries(c collections.Collection) ([]any, func(any) (any, bool), error) {
	switch c := c.(type) {
	case *collections.Indexed:
		keys := make([]any, c.Len())
		for i := range keys {
			keys[i] = i
		}
		return keys, func(k any) (any, bool) {
			i, ok := k.(int)
			if !ok {
				return nil, false
			}
			return c.At(i)
		}, nil
	case *collections.Keyed:
		return c.Keys(), c.Get, nil
	}

	var keys []any
	values := make(map[any]any)
	err := collections.Walk(c, func(v, k any, _ collections.Collection) collections.Control {
		if reflect.TypeOf(k) == nil || reflect.TypeOf(k).Comparable() {
			keys = append(keys, k)
			values[k] = v
		}
		return collections.Continue
	})
	if err != nil {
		return nil, nil, err
	}
	return keys, func(k any) (any, bool) {
		if reflect.TypeOf(k) != nil && !reflect.TypeOf(k).Comparable() {
			return nil, false
		}
		v, ok := values[k]
		return v, ok
	}, nil
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	}
	return time.Time{}, false
}

// longest reports whether re was switched to leftmost-longest matching.
func longest(re *regexp.Regexp) bool {
	f := reflect.ValueOf(re).Elem().FieldByName("longest")
	return f.IsValid() && f.Bool()
}

func asRegexp(v any) (*regexp.Regexp, bool) {
	switch r := v.(type) {
	case *regexp.Regexp:
		return r, r != nil
	case regexp.Regexp:
		return &r, true
	}
	return nil, false
}

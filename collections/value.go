package collections

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
	"time"
)

// Class is the coarse kind of a value, independent of its concrete Go type.
// All integer, unsigned and floating-point types share [ClassNumber].
type Class uint8

const (
	ClassNil Class = iota
	ClassBool
	ClassNumber
	ClassString
	ClassFunc
	ClassChan
	ClassObject
)

// ClassOf returns the class of v. Typed nil pointers, maps and slices are
// still ClassObject; only an untyped nil is ClassNil.
func ClassOf(v any) Class {
	if v == nil {
		return ClassNil
	}
	return classOfKind(reflect.TypeOf(v).Kind())
}

func classOfKind(k reflect.Kind) Class {
	switch k {
	case reflect.Bool:
		return ClassBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return ClassNumber
	case reflect.String:
		return ClassString
	case reflect.Func:
		return ClassFunc
	case reflect.Chan:
		return ClassChan
	case reflect.Invalid:
		return ClassNil
	}
	return ClassObject
}

// Truthy reports whether v counts as true when used as a predicate result.
//
// Falsy values are: nil, false, numeric zero, NaN, the empty string and nil
// pointers, maps, slices, functions and channels. Everything else, empty
// slices and maps included, is truthy.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

// IsNumber reports whether v is of an integer, unsigned or floating-point
// kind.
func IsNumber(v any) bool { return ClassOf(v) == ClassNumber }

// ToFloat converts a numeric value to float64.
func ToFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// ToInt converts an integral numeric value to int. Floats are accepted only
// when they carry no fractional part.
func ToInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// Compare is the natural three-way ordering used by sorting, min/max and
// binary search: numbers by value (across Go numeric types), strings
// byte-wise, false before true and time.Time values by instant.
//
// Returns [ErrNotComparable] for any other pair.
func Compare(a, b any) (int, error) {
	ca, cb := ClassOf(a), ClassOf(b)
	switch {
	case ca == ClassNumber && cb == ClassNumber:
		return compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b)), nil
	case ca == ClassString && cb == ClassString:
		return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), nil
	case ca == ClassBool && cb == ClassBool:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0, nil
		case !x:
			return -1, nil
		}
		return 1, nil
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb), nil
		}
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
}

func compareNumbers(a, b reflect.Value) int {
	signed := func(k reflect.Kind) bool { return k >= reflect.Int && k <= reflect.Int64 }
	unsigned := func(k reflect.Kind) bool { return k >= reflect.Uint && k <= reflect.Uintptr }
	switch {
	case signed(a.Kind()) && signed(b.Kind()):
		return cmp.Compare(a.Int(), b.Int())
	case unsigned(a.Kind()) && unsigned(b.Kind()):
		return cmp.Compare(a.Uint(), b.Uint())
	}
	x, _ := ToFloat(a.Interface())
	y, _ := ToFloat(b.Interface())
	return cmp.Compare(x, y)
}

// SortKeys sorts keys in natural order, falling back to their formatted
// representation for pairs [Compare] cannot order.
func SortKeys(keys []any) {
	slices.SortStableFunc(keys, func(a, b any) int {
		if c, err := Compare(a, b); err == nil {
			return c
		}
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
}

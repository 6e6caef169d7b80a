package objects

import (
	"math"
	"reflect"
	"regexp"
	"time"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/equality"
)

// IsArray reports whether v is a slice or an array. Strings are not arrays.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// IsFunction reports whether v is a function value, nil or not.
func IsFunction(v any) bool { return collections.ClassOf(v) == collections.ClassFunc }

// IsNil reports whether v is nil or a nil pointer, map, slice, function,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsUndefined is an alias for [IsNil].
func IsUndefined(v any) bool { return IsNil(v) }

// IsString reports whether v has a string kind.
func IsString(v any) bool { return collections.ClassOf(v) == collections.ClassString }

// IsNumber reports whether v has an integer, unsigned or floating-point
// kind. NaN is a number.
func IsNumber(v any) bool { return collections.IsNumber(v) }

// IsDate reports whether v is a time.Time or a non-nil *time.Time.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}

// IsRegExp reports whether v is a non-nil *regexp.Regexp.
func IsRegExp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

// IsNaN reports whether v is a floating-point NaN.
func IsNaN(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}

// IsEmpty reports whether v holds no elements. nil values and empty strings
// are empty; collections are empty when a traversal yields nothing. Any
// other value is empty as well, having no elements to yield.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	col, err := collections.Of(v)
	if err != nil {
		return true
	}
	empty := true
	if err := collections.Walk(col, func(_, _ any, _ collections.Collection) collections.Control {
		empty = false
		return collections.Break
	}); err != nil {
		return true
	}
	return empty
}

// IsEqual reports whether a and b are deeply equal. See [equality.IsEqual].
func IsEqual(a, b any) bool { return equality.IsEqual(a, b) }

// Package funcs adapts arbitrary Go functions into the dynamic calling
// convention of go-underscore and provides the function combinators:
// [Bind], [BindAll], [Compose], [Wrap], [Memoize], [Delay] and [Defer].
//
// # Calling convention
//
// [Call] invokes any Go function with a list of dynamic arguments, the way
// a loosely typed caller would:
//
//   - missing arguments are passed as zero values;
//   - extra arguments are dropped;
//   - arguments are converted to the parameter type when they belong to the
//     same value class (an int into a float64 parameter, a string into a
//     named string type); other mismatches return [ErrArgType];
//   - a trailing error result is returned as the call's error and the first
//     other result as its value.
//
// So each of these is a valid callback for a combinator that passes
// (value, key, source):
//
//	func(v any) any
//	func(n int) bool
//	func(s string, i int) (string, error)
//
// # Fire-and-forget scheduling
//
// [Delay] and [Defer] hand the call to the runtime timer via time.AfterFunc.
// The call runs on its own goroutine; its result and error are discarded.
package funcs

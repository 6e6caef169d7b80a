// Package arr provides the collection and array combinators of
// go-underscore: map, reduce, find, filter, every/some, pluck, invoke,
// min/max, sortBy, uniq, intersect, zip, range and friends.
//
// # Collections
//
// Every combinator accepts any value [collections.Of] can resolve (slices,
// arrays, strings, maps, structs, records and iterator functions) and
// funnels it through [collections.Walk]:
//
//	evens, _ := arr.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
//	// → [2 4]
//
//	names, _ := arr.Pluck(users, "Name")
//	total, _ := arr.Reduce(map[string]int{"a": 1, "b": 2}, 0, func(sum, n int) int { return sum + n })
//
// Array functions (IndexOf, SortedIndex, Zip, Uniq, …) require an indexed
// collection and return [ErrNotIndexed] otherwise.
//
// # Callbacks
//
// Callbacks are plain Go functions adapted by [funcs.Iteratee]. They receive
// (value, key, source) and may declare fewer parameters or concrete
// parameter types. Predicate results are judged by [collections.Truthy]. A
// callback returning an error aborts the combinator with that error.
//
// Results are always fresh []any slices; inputs are never modified.
//
// # Absent values
//
// [Find], [First] and [Last] return nil when there is nothing to return, and
// [Zip] pads short arrays with nil.
package arr

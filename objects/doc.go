// Package objects provides the object helpers of go-underscore: key and
// value listing, extend/clone, tap, type predicates and unique ids.
//
// # Objects
//
// An object is any keyed collection [collections.Of] accepts: maps (keys in
// natural order), structs and struct pointers (exported fields in
// declaration order) and [collections.Record] (insertion order).
//
//	keys, _ := objects.Keys(map[string]int{"b": 2, "a": 1})   // [a b]
//	vals, _ := objects.Values(user)                           // exported field values
//
// # Mutation
//
// [Extend] writes into its destination, which must be a map, a *Record or a
// struct pointer. [Clone] makes a shallow copy and never aliases the
// top-level container of its input.
//
// # Predicates
//
// The Is* functions classify values the way the rest of the module does:
// [IsNil] treats typed nil references as nil, [IsArray] matches slices and
// arrays but not strings, and [IsEmpty] is true for anything without
// elements.
package objects

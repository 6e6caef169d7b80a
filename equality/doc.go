// Package equality implements the three equality relations used across
// go-underscore.
//
//   - [StrictEqual]: identity. Same type and ==, or the same reference
//     for slices and maps.
//   - [LooseEqual]: value equality with coercion between numeric Go types,
//     numeric strings and booleans.
//   - [IsEqual]: recursive structural equality over slices, arrays, maps,
//     structs, pointers and [collections.Record] values.
//
// IsEqual applies its rules in a fixed order and stops at the first decisive
// one: identity, class mismatch, loose equality, an [Equaler] on either side,
// time instants, NaN, regular expressions (source text and leftmost-longest
// mode), then length, key count and a per-key recursive comparison.
//
// Structs with unexported fields, such as the values behind errors.New or
// *big.Int, are opaque: they equal only a value of the same type whose
// fields, unexported ones included, are deeply equal.
//
// Two quirks are inherited on purpose. Loose equality makes IsEqual
// non-transitive across mixed numeric types (int(1), float64(1) and a named
// numeric type all compare equal pairwise, yet the same is not true of their
// strict counterparts). And other values are compared by their enumerable
// keys, so a struct with only exported fields can equal a map with the same
// keys.
//
// There is no cycle detection: comparing self-referential values recurses
// without bound.
package equality

// Package collections is the iteration core of go-underscore: it resolves
// arbitrary Go values into one of three collection shapes and walks them
// through a single dispatcher that every combinator in this module funnels
// through.
//
// # Shapes
//
// A value is resolved once, at the boundary, by [Of]:
//
//   - [Sequence]: values that already know how to iterate themselves,
//     iter.Seq / iter.Seq2 functions or types implementing [Sequential].
//   - [Indexed]: slices, arrays, strings (indexed by rune) and types
//     implementing [Lengther].
//   - [Keyed]: maps, structs, [*Record] values and types implementing
//     [KeyEnumerable].
//
// The first matching rule wins; there is no fallback re-check.
//
//	c, err := collections.Of([]int{1, 2, 3})
//	c.Shape() // → Indexed
//
// # Early termination
//
// An [Iterator] returns [Continue] or [Break]. The dispatcher checks the
// signal after every call and stops silently on [Break]; nothing unwinds,
// so the signal can never escape [Walk] or [Each].
//
//	collections.Each([]int{1, 2, 3, 4}, func(v, _ any, _ collections.Collection) collections.Control {
//	    if v.(int) > 2 {
//	        return collections.Break
//	    }
//	    return collections.Continue
//	})
//
// # Failing fast
//
// A nil collection, a non-collection value or a nil iterator is a contract
// violation and is reported as an error ([ErrNilCollection],
// [ErrNotCollection], [ErrNilIterator]) rather than treated as empty. Nil
// slices and nil maps are valid, empty collections.
//
// # Map ordering
//
// Go maps carry no insertion order, so map keys are visited in natural
// sorted order (see [Compare]). Use [Record] when insertion order matters.
package collections

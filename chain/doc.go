// Package chain wraps values in a fluent handle that forwards to the
// go-underscore combinators.
//
// # Overview
//
// [Wrap] captures a value. Every operation in a [Registry] receives the
// captured value as its first argument:
//
//	w := chain.Wrap([]int{1, 2, 3})
//	v, _ := w.Apply("map", func(n int) int { return n * 2 })   // []any{2, 4, 6}
//
// Without chain mode [Wrapper.Apply] returns the raw result. After
// [Wrapper.Chain] it returns a new *Wrapper instead, still in chain mode, so
// calls compose until [Wrapper.Value] ends the sequence:
//
//	v, err := chain.Wrap([]any{3, 1, 2}).Chain().Sort().First().Value()   // 1, nil
//
// The typed methods (Map, Filter, Sort, …) always return a *Wrapper so they
// can be strung together; call Value to unwrap.
//
// # Errors
//
// The first failing operation is recorded on the returned handle. Later
// operations are skipped and [Wrapper.Value] reports the error.
//
// # Registry
//
// The default registry holds every combinator under its lowerCamel name
// plus the aliases returned by [Aliases]. Registries are immutable:
// [Registry.With] returns an extended copy, so registering an operation
// never affects handles built from another registry.
//
// # Slice operations
//
// push, pop, shift, unshift, reverse, sort and splice mutate the held slice
// and continue with it. reverse and sort work in place; the others change
// the length, so the handle replaces its slice header, and a held *[]T is
// updated through the pointer. concat, slice and join leave the held value
// alone and continue with their own result.
package chain

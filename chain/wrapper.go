package chain

import (
	"fmt"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// Wrapper is a handle on a value. Create one with [Wrap] or
// [Registry.Wrap].
//
// A Wrapper is not safe for concurrent use.
type Wrapper struct {
	reg     Registry
	held    any
	chained bool
	err     error
}

// Wrap returns a handle on v backed by the default registry.
func Wrap(v any) *Wrapper { return defaultRegistry.Wrap(v) }

// Chain is shorthand for Wrap(v).Chain().
func Chain(v any) *Wrapper { return Wrap(v).Chain() }

// Chain switches w into chain mode and returns it. Chain mode is never
// switched off again for handles derived from w.
func (w *Wrapper) Chain() *Wrapper {
	w.chained = true
	return w
}

// Chained reports whether w is in chain mode.
func (w *Wrapper) Chained() bool { return w.chained }

// Value returns the held value, or the error of the first failed operation.
func (w *Wrapper) Value() (any, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.held, nil
}

// Err returns the error of the first failed operation, if any.
func (w *Wrapper) Err() error { return w.err }

// Apply runs the named operation with the held value prepended to args.
//
// In chain mode the result is a new *Wrapper (still chained) holding the
// operation's result; otherwise the raw result is returned.
func (w *Wrapper) Apply(name string, args ...any) (any, error) {
	next := w.then(name, args...)
	if next.err != nil {
		return nil, next.err
	}
	if w.chained {
		return next, nil
	}
	return next.held, nil
}

// then runs one operation and returns the handle to continue with.
func (w *Wrapper) then(name string, args ...any) *Wrapper {
	if w.err != nil {
		return w
	}
	m, ok := w.reg.methods[name]
	if !ok {
		return w.fail(fmt.Errorf("%w: %q", ErrUnknownOp, name))
	}
	res, err := m.op(w.held, args...)
	if err != nil {
		return w.fail(fmt.Errorf("%s: %w", name, err))
	}
	if m.mutates {
		w.held = res
	}
	return &Wrapper{reg: w.reg, held: res, chained: w.chained}
}

func (w *Wrapper) fail(err error) *Wrapper {
	return &Wrapper{reg: w.reg, chained: w.chained, err: err}
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// String renders the held value for debugging.
func (w *Wrapper) String() string {
	if w.err != nil {
		return "chain.Wrapper(error: " + w.err.Error() + ")"
	}
	return "chain.Wrapper(" + strings.TrimSpace(dumper.Sdump(w.held)) + ")"
}

// ─────────────────────────────────────────────────────────────────────────────
// Collections
// ─────────────────────────────────────────────────────────────────────────────

func (w *Wrapper) Each(fn any) *Wrapper              { return w.then("each", fn) }
func (w *Wrapper) ForEach(fn any) *Wrapper           { return w.then("forEach", fn) }
func (w *Wrapper) Map(fn any) *Wrapper               { return w.then("map", fn) }
func (w *Wrapper) Collect(fn any) *Wrapper           { return w.then("collect", fn) }
func (w *Wrapper) Reduce(memo, fn any) *Wrapper      { return w.then("reduce", memo, fn) }
func (w *Wrapper) Foldl(memo, fn any) *Wrapper       { return w.then("foldl", memo, fn) }
func (w *Wrapper) Inject(memo, fn any) *Wrapper      { return w.then("inject", memo, fn) }
func (w *Wrapper) ReduceRight(memo, fn any) *Wrapper { return w.then("reduceRight", memo, fn) }
func (w *Wrapper) Foldr(memo, fn any) *Wrapper       { return w.then("foldr", memo, fn) }
func (w *Wrapper) Find(pred any) *Wrapper            { return w.then("find", pred) }
func (w *Wrapper) Detect(pred any) *Wrapper          { return w.then("detect", pred) }
func (w *Wrapper) Filter(pred any) *Wrapper          { return w.then("filter", pred) }
func (w *Wrapper) Select(pred any) *Wrapper          { return w.then("select", pred) }
func (w *Wrapper) Reject(pred any) *Wrapper          { return w.then("reject", pred) }
func (w *Wrapper) Every(pred any) *Wrapper           { return w.then("every", pred) }
func (w *Wrapper) All(pred any) *Wrapper             { return w.then("all", pred) }
func (w *Wrapper) Some(pred any) *Wrapper            { return w.then("some", pred) }
func (w *Wrapper) Any(pred any) *Wrapper             { return w.then("any", pred) }
func (w *Wrapper) Includes(target any) *Wrapper      { return w.then("includes", target) }
func (w *Wrapper) Include(target any) *Wrapper       { return w.then("include", target) }
func (w *Wrapper) Contains(target any) *Wrapper      { return w.then("contains", target) }
func (w *Wrapper) Pluck(key any) *Wrapper            { return w.then("pluck", key) }
func (w *Wrapper) Max(fn any) *Wrapper               { return w.then("max", fn) }
func (w *Wrapper) Min(fn any) *Wrapper               { return w.then("min", fn) }
func (w *Wrapper) SortBy(fn any) *Wrapper            { return w.then("sortBy", fn) }
func (w *Wrapper) GroupBy(fn any) *Wrapper           { return w.then("groupBy", fn) }
func (w *Wrapper) Partition(pred any) *Wrapper       { return w.then("partition", pred) }
func (w *Wrapper) ToArray() *Wrapper                 { return w.then("toArray") }
func (w *Wrapper) Size() *Wrapper                    { return w.then("size") }
func (w *Wrapper) SortedIndex(obj, fn any) *Wrapper  { return w.then("sortedIndex", obj, fn) }
func (w *Wrapper) Invoke(method string, args ...any) *Wrapper {
	return w.then("invoke", append([]any{method}, args...)...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Arrays
// ─────────────────────────────────────────────────────────────────────────────

func (w *Wrapper) First() *Wrapper                  { return w.then("first") }
func (w *Wrapper) Head() *Wrapper                   { return w.then("head") }
func (w *Wrapper) Last() *Wrapper                   { return w.then("last") }
func (w *Wrapper) Compact() *Wrapper                { return w.then("compact") }
func (w *Wrapper) Flatten() *Wrapper                { return w.then("flatten") }
func (w *Wrapper) Without(values ...any) *Wrapper   { return w.then("without", values...) }
func (w *Wrapper) Intersect(others ...any) *Wrapper { return w.then("intersect", others...) }
func (w *Wrapper) Zip(others ...any) *Wrapper       { return w.then("zip", others...) }
func (w *Wrapper) IndexOf(item any) *Wrapper        { return w.then("indexOf", item) }
func (w *Wrapper) LastIndexOf(item any) *Wrapper    { return w.then("lastIndexOf", item) }
func (w *Wrapper) Chunk(size int) *Wrapper          { return w.then("chunk", size) }

// Range continues with an arithmetic progression whose first bound is the
// held value, as in [arr.Range].
func (w *Wrapper) Range(bounds ...any) *Wrapper { return w.then("range", bounds...) }

func (w *Wrapper) Rest(index ...int) *Wrapper { return w.then("rest", ints(index)...) }
func (w *Wrapper) Tail(index ...int) *Wrapper { return w.then("tail", ints(index)...) }

func (w *Wrapper) Uniq(isSorted ...bool) *Wrapper   { return w.then("uniq", bools(isSorted)...) }
func (w *Wrapper) Unique(isSorted ...bool) *Wrapper { return w.then("unique", bools(isSorted)...) }

// Push appends values to the held slice.
func (w *Wrapper) Push(values ...any) *Wrapper { return w.then("push", values...) }

// Pop removes the last element of the held slice.
func (w *Wrapper) Pop() *Wrapper { return w.then("pop") }

// Shift removes the first element of the held slice.
func (w *Wrapper) Shift() *Wrapper { return w.then("shift") }

// Unshift prepends values to the held slice.
func (w *Wrapper) Unshift(values ...any) *Wrapper { return w.then("unshift", values...) }

// Reverse reverses the held slice in place.
func (w *Wrapper) Reverse() *Wrapper { return w.then("reverse") }

// Sort stably sorts the held slice in place, by natural order or by a
// comparator returning a negative, zero or positive number.
func (w *Wrapper) Sort(comparator ...any) *Wrapper { return w.then("sort", comparator...) }

// Splice removes count elements at start and inserts items in their place.
// A negative start counts from the end.
func (w *Wrapper) Splice(start, count int, items ...any) *Wrapper {
	return w.then("splice", append([]any{start, count}, items...)...)
}

// Concat continues with the held elements followed by values, slices being
// flattened one level.
func (w *Wrapper) Concat(values ...any) *Wrapper { return w.then("concat", values...) }

// Slice continues with the elements from start up to end (exclusive).
// Negative positions count from the end.
func (w *Wrapper) Slice(start int, end ...int) *Wrapper {
	return w.then("slice", append([]any{start}, ints(end)...)...)
}

// Join continues with the elements formatted and joined by sep (default ",").
func (w *Wrapper) Join(sep ...string) *Wrapper {
	args := make([]any, len(sep))
	for i, s := range sep {
		args[i] = s
	}
	return w.then("join", args...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Objects & functions
// ─────────────────────────────────────────────────────────────────────────────

func (w *Wrapper) Keys() *Wrapper                 { return w.then("keys") }
func (w *Wrapper) Values() *Wrapper               { return w.then("values") }
func (w *Wrapper) Functions() *Wrapper            { return w.then("functions") }
func (w *Wrapper) Methods() *Wrapper              { return w.then("methods") }
func (w *Wrapper) Extend(sources ...any) *Wrapper { return w.then("extend", sources...) }
func (w *Wrapper) Clone() *Wrapper                { return w.then("clone") }
func (w *Wrapper) Tap(interceptor any) *Wrapper   { return w.then("tap", interceptor) }
func (w *Wrapper) IsEqual(other any) *Wrapper     { return w.then("isEqual", other) }
func (w *Wrapper) IsEmpty() *Wrapper              { return w.then("isEmpty") }
func (w *Wrapper) Compose(fns ...any) *Wrapper    { return w.then("compose", fns...) }
func (w *Wrapper) Memoize(hasher any) *Wrapper    { return w.then("memoize", hasher) }
func (w *Wrapper) Wrap(wrapper any) *Wrapper      { return w.then("wrap", wrapper) }
func (w *Wrapper) Bind(context any, args ...any) *Wrapper {
	return w.then("bind", append([]any{context}, args...)...)
}

func (w *Wrapper) IsArray() *Wrapper    { return w.then("isArray") }
func (w *Wrapper) IsFunction() *Wrapper { return w.then("isFunction") }
func (w *Wrapper) IsNil() *Wrapper      { return w.then("isNil") }
func (w *Wrapper) IsString() *Wrapper   { return w.then("isString") }
func (w *Wrapper) IsNumber() *Wrapper   { return w.then("isNumber") }
func (w *Wrapper) IsDate() *Wrapper     { return w.then("isDate") }
func (w *Wrapper) IsRegExp() *Wrapper   { return w.then("isRegExp") }
func (w *Wrapper) IsNaN() *Wrapper      { return w.then("isNaN") }

// BindAll binds the named methods of the held value to it, or every
// function-valued member when no names are given.
func (w *Wrapper) BindAll(names ...string) *Wrapper {
	args := make([]any, len(names))
	for i, n := range names {
		args[i] = n
	}
	return w.then("bindAll", args...)
}

// Delay schedules the held function after wait and continues with its
// *time.Timer.
func (w *Wrapper) Delay(wait time.Duration, args ...any) *Wrapper {
	return w.then("delay", append([]any{wait}, args...)...)
}

// Defer schedules the held function to run shortly and continues with its
// *time.Timer.
func (w *Wrapper) Defer(args ...any) *Wrapper { return w.then("defer", args...) }

func ints(vs []int) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func bools(vs []bool) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

package funcs

import (
	"fmt"
	"time"
)

// DeferDelay is the wait used by [Defer].
const DeferDelay = time.Millisecond

// Delay calls fn with args after wait, on the runtime timer's goroutine.
// The returned timer can be stopped before it fires. fn's result and error
// are discarded.
func Delay(fn any, wait time.Duration, args ...any) (*time.Timer, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	return time.AfterFunc(wait, func() { _, _ = Call(fn, args...) }), nil
}

// Defer calls fn with args as soon as the timer allows, after the current
// call returns.
func Defer(fn any, args ...any) (*time.Timer, error) {
	return Delay(fn, DeferDelay, args...)
}

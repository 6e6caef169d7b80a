package funcs

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/crypto/blake2b"
)

// keyDumper renders arguments deterministically: map keys sorted, no
// pointer addresses or capacities, no Stringer/error methods.
var keyDumper = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
}

// HashArgs is the default memoization key: a BLAKE2b-256 digest of a
// deterministic dump of args. Arguments with equal contents hash equally,
// whether or not they share storage.
func HashArgs(args ...any) string {
	sum := blake2b.Sum256([]byte(keyDumper.Sdump(args...)))
	return hex.EncodeToString(sum[:])
}

// Memoize returns a function that caches fn's results by key. The key is
// computed by hasher (called with the same arguments) or by [HashArgs] when
// hasher is nil. Results that come back with an error are not cached.
//
// The returned function is safe for concurrent use; concurrent first calls
// with the same key may each invoke fn.
func Memoize(fn any, hasher any) (Func, error) {
	if !Callable(fn) {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	if hasher != nil && !Callable(hasher) {
		return nil, fmt.Errorf("%w: hasher %T", ErrNotCallable, hasher)
	}

	var mu sync.Mutex
	cache := make(map[any]any)
	return func(args ...any) (any, error) {
		key, err := memoKey(hasher, args)
		if err != nil {
			return nil, err
		}

		mu.Lock()
		v, ok := cache[key]
		mu.Unlock()
		if ok {
			return v, nil
		}

		v, err = Call(fn, args...)
		if err != nil {
			return nil, err
		}
		mu.Lock()
		cache[key] = v
		mu.Unlock()
		return v, nil
	}, nil
}

func memoKey(hasher any, args []any) (any, error) {
	if hasher == nil {
		return HashArgs(args...), nil
	}
	k, err := Call(hasher, args...)
	if err != nil {
		return nil, err
	}
	if k != nil && !reflect.TypeOf(k).Comparable() {
		return HashArgs(k), nil
	}
	return k, nil
}

package collections

import (
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Property access
//
// Property reads one key from any keyed or indexed value; Path walks a
// dot-separated chain of keys through nested values:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name":   "Alice",
//	        "emails": []string{"a@example.com"},
//	    },
//	}
//
//	Path(m, "user.name")      → "Alice", true
//	Path(m, "user.emails.0")  → "a@example.com", true
//	Path(m, "user.missing")   → nil, false
// ─────────────────────────────────────────────────────────────────────────────

// Property returns the value stored under key in obj.
//
// Keyed values are looked up by key; indexed values accept an integer key or
// a string holding one. Sequences have no random access.
func Property(obj, key any) (any, bool) {
	c, err := Of(obj)
	if err != nil {
		return nil, false
	}
	switch c := c.(type) {
	case *Keyed:
		return c.Get(key)
	case *Indexed:
		i, ok := ToInt(key)
		if !ok {
			s, isString := key.(string)
			if !isString {
				return nil, false
			}
			if i, err = strconv.Atoi(s); err != nil {
				return nil, false
			}
		}
		return c.At(i)
	}
	return nil, false
}

// Path retrieves a nested value using a dot-notation key path. An empty path
// returns obj itself.
func Path(obj any, path string) (any, bool) {
	if path == "" {
		return obj, true
	}
	current := obj
	for _, seg := range strings.Split(path, ".") {
		val, ok := Property(current, seg)
		if !ok {
			return nil, false
		}
		current = val
	}
	return current, true
}

// HasPath reports whether the dot-notation key path exists in obj.
func HasPath(obj any, path string) bool {
	_, ok := Path(obj, path)
	return ok
}

package chain

import (
	"maps"
	"slices"
)

// Op is a chainable operation. held is the wrapped value; args are the
// call-time arguments.
type Op func(held any, args ...any) (any, error)

type method struct {
	op      Op
	mutates bool
}

// Registry is an immutable set of named operations. The zero value is an
// empty registry.
type Registry struct {
	methods map[string]method
}

// NewRegistry returns a registry holding ops. The map is copied.
func NewRegistry(ops map[string]Op) Registry {
	r := Registry{methods: make(map[string]method, len(ops))}
	for name, op := range ops {
		r.methods[name] = method{op: op}
	}
	return r
}

// With returns a copy of r in which name runs op. An existing operation of
// the same name is replaced in the copy only.
func (r Registry) With(name string, op Op) Registry {
	return r.with(name, method{op: op})
}

// WithMutator is like [Registry.With] for an operation that changes the
// held value: op returns the updated value, which replaces the one held by
// the calling handle.
func (r Registry) WithMutator(name string, op Op) Registry {
	return r.with(name, method{op: op, mutates: true})
}

func (r Registry) with(name string, m method) Registry {
	methods := make(map[string]method, len(r.methods)+1)
	maps.Copy(methods, r.methods)
	methods[name] = m
	return Registry{methods: methods}
}

// Has reports whether name is registered.
func (r Registry) Has(name string) bool {
	_, ok := r.methods[name]
	return ok
}

// Lookup returns the operation registered under name.
func (r Registry) Lookup(name string) (Op, bool) {
	m, ok := r.methods[name]
	return m.op, ok
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.methods))
}

// Wrap returns a handle on v backed by r.
func (r Registry) Wrap(v any) *Wrapper {
	return &Wrapper{reg: r, held: v}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aliases
// ─────────────────────────────────────────────────────────────────────────────

var aliases = map[string][]string{
	"each":        {"forEach"},
	"map":         {"collect"},
	"reduce":      {"foldl", "inject"},
	"reduceRight": {"foldr"},
	"find":        {"detect"},
	"filter":      {"select"},
	"every":       {"all"},
	"some":        {"any"},
	"includes":    {"include", "contains"},
	"uniq":        {"unique"},
	"first":       {"head"},
	"rest":        {"tail"},
	"functions":   {"methods"},
}

// Aliases returns the alias table of the default registry: canonical name
// to alternative names.
func Aliases() map[string][]string {
	out := make(map[string][]string, len(aliases))
	for k, v := range aliases {
		out[k] = slices.Clone(v)
	}
	return out
}

var defaultRegistry = buildDefault()

// Default returns the registry used by [Wrap].
func Default() Registry { return defaultRegistry }

func buildDefault() Registry {
	r := NewRegistry(builtins())
	for name, op := range mutators {
		r = r.WithMutator(name, op)
	}
	for name, op := range hostOps {
		r = r.With(name, op)
	}
	for canonical, alts := range aliases {
		m := r.methods[canonical]
		for _, alt := range alts {
			r = r.with(alt, m)
		}
	}
	return r
}

package tmpl

import (
	"fmt"
	"io"
	"strings"

	"github.com/hasbyte1/go-underscore/collections"
	"github.com/hasbyte1/go-underscore/objects"
)

// keyVar names the key of the innermost each block.
const keyVar = "$key"

// Template is a compiled template. It is immutable and safe for concurrent
// use.
type Template struct {
	src   string
	nodes []node
}

// Compile parses src into a Template.
func Compile(src string) (*Template, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	nodes, err := parse(toks)
	if err != nil {
		return nil, err
	}
	return &Template{src: src, nodes: nodes}, nil
}

// MustCompile is like [Compile] but panics on a syntax error. It is meant
// for templates held in package-level variables.
func MustCompile(src string) *Template {
	t, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return t
}

// Render compiles src and renders it against data in one step.
func Render(src string, data any) (string, error) {
	t, err := Compile(src)
	if err != nil {
		return "", err
	}
	return t.Render(data)
}

// Source returns the text the template was compiled from.
func (t *Template) Source() string { return t.src }

// Render renders the template against data.
func (t *Template) Render(data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Execute renders the template against data and writes the result to w.
// Nothing is written when rendering fails.
func (t *Template) Execute(w io.Writer, data any) error {
	r := &renderer{}
	if err := r.nodes(t.nodes, &scope{dot: data}); err != nil {
		return err
	}
	_, err := io.WriteString(w, r.b.String())
	return err
}

// ─────────────────────────────────────────────────────────────────────────────
// Evaluation
// ─────────────────────────────────────────────────────────────────────────────

// scope is one level of the lookup chain. The root holds the data passed to
// Render; each iteration of an each block pushes the element and its key.
type scope struct {
	dot    any
	key    any
	block  bool
	parent *scope
}

func (s *scope) push(value, key any) *scope {
	return &scope{dot: value, key: key, block: true, parent: s}
}

func (s *scope) lookup(path string) (any, bool) {
	switch {
	case path == ".":
		return s.dot, true
	case path == keyVar:
		for sc := s; sc != nil; sc = sc.parent {
			if sc.block {
				return sc.key, true
			}
		}
		return nil, false
	case strings.HasPrefix(path, "."):
		return collections.Path(s.dot, path[1:])
	}
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := collections.Path(sc.dot, path); ok {
			return v, true
		}
	}
	return nil, false
}

type renderer struct {
	b strings.Builder
}

func (r *renderer) nodes(nodes []node, s *scope) error {
	for _, n := range nodes {
		if err := n.render(r, s); err != nil {
			return err
		}
	}
	return nil
}

func (n *textNode) render(r *renderer, _ *scope) error {
	r.b.WriteString(n.text)
	return nil
}

func (n *valueNode) render(r *renderer, s *scope) error {
	v, _ := s.lookup(n.path)
	r.b.WriteString(format(v))
	return nil
}

func (n *ifNode) render(r *renderer, s *scope) error {
	v, _ := s.lookup(n.path)
	if collections.Truthy(v) {
		return r.nodes(n.then, s)
	}
	return r.nodes(n.els, s)
}

func (n *eachNode) render(r *renderer, s *scope) error {
	v, ok := s.lookup(n.path)
	if !ok || objects.IsNil(v) {
		return r.nodes(n.els, s)
	}
	c, err := collections.Of(v)
	if err != nil {
		return fmt.Errorf("%w: line %d: each %s: %w", ErrRender, n.line, n.path, err)
	}

	var (
		count   int
		bodyErr error
	)
	err = collections.Walk(c, func(value, key any, _ collections.Collection) collections.Control {
		count++
		if bodyErr = r.nodes(n.body, s.push(value, key)); bodyErr != nil {
			return collections.Break
		}
		return collections.Continue
	})
	switch {
	case err != nil:
		return err
	case bodyErr != nil:
		return bodyErr
	case count == 0:
		return r.nodes(n.els, s)
	}
	return nil
}

// format renders a resolved value. nil, including typed nil, renders empty.
func format(v any) string {
	if objects.IsNil(v) {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

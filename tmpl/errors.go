package tmpl

import "errors"

// Sentinel errors returned by Compile and Render.
var (
	// ErrSyntax is returned by [Compile] for unclosed tags, unknown
	// directives, unbalanced else/end and malformed paths.
	ErrSyntax = errors.New("tmpl: syntax error")

	// ErrRender is returned when a compiled template cannot be rendered
	// against the given data, such as each over a scalar.
	ErrRender = errors.New("tmpl: render error")
)

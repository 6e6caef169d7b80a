package tmpl

import (
	"fmt"
	"strings"
)

const (
	leftDelim  = "<%"
	rightDelim = "%>"
)

type tokenKind uint8

const (
	tokText tokenKind = iota
	tokValue
	tokIf
	tokEach
	tokElse
	tokEnd
)

func (k tokenKind) String() string {
	switch k {
	case tokText:
		return "text"
	case tokValue:
		return "value"
	case tokIf:
		return "if"
	case tokEach:
		return "each"
	case tokElse:
		return "else"
	case tokEnd:
		return "end"
	}
	return "unknown"
}

type token struct {
	kind tokenKind
	text string // literal text, or the path of value/if/each
	line int
}

// lex splits src into tokens. Comments are dropped.
func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	for src != "" {
		open := strings.Index(src, leftDelim)
		if open < 0 {
			toks = append(toks, token{kind: tokText, text: src, line: line})
			break
		}
		if open > 0 {
			toks = append(toks, token{kind: tokText, text: src[:open], line: line})
			line += strings.Count(src[:open], "\n")
		}
		src = src[open+len(leftDelim):]

		end := strings.Index(src, rightDelim)
		if end < 0 {
			return nil, fmt.Errorf("%w: line %d: unclosed tag", ErrSyntax, line)
		}
		body := src[:end]
		src = src[end+len(rightDelim):]

		tok, keep, err := lexTag(body, line)
		if err != nil {
			return nil, err
		}
		if keep {
			toks = append(toks, tok)
		}
		line += strings.Count(body, "\n")
	}
	return toks, nil
}

func lexTag(body string, line int) (token, bool, error) {
	switch {
	case strings.HasPrefix(body, "#"):
		return token{}, false, nil
	case strings.HasPrefix(body, "="):
		path, err := onePath("=", strings.Fields(body[1:]), line)
		return token{kind: tokValue, text: path, line: line}, true, err
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return token{}, false, fmt.Errorf("%w: line %d: empty tag", ErrSyntax, line)
	}
	switch fields[0] {
	case "if":
		path, err := onePath("if", fields[1:], line)
		return token{kind: tokIf, text: path, line: line}, true, err
	case "each":
		path, err := onePath("each", fields[1:], line)
		return token{kind: tokEach, text: path, line: line}, true, err
	case "else", "end":
		if len(fields) > 1 {
			return token{}, false, fmt.Errorf("%w: line %d: unexpected %q after %s", ErrSyntax, line, fields[1], fields[0])
		}
		kind := tokElse
		if fields[0] == "end" {
			kind = tokEnd
		}
		return token{kind: kind, line: line}, true, nil
	}
	return token{}, false, fmt.Errorf("%w: line %d: unknown directive %q", ErrSyntax, line, fields[0])
}

// onePath checks that a directive carries exactly one well-formed path.
func onePath(directive string, args []string, line int) (string, error) {
	switch len(args) {
	case 0:
		return "", fmt.Errorf("%w: line %d: missing path after %s", ErrSyntax, line, directive)
	case 1:
	default:
		return "", fmt.Errorf("%w: line %d: unexpected %q after %s %s", ErrSyntax, line, args[1], directive, args[0])
	}
	path := args[0]
	if !validPath(path) {
		return "", fmt.Errorf("%w: line %d: malformed path %q", ErrSyntax, line, path)
	}
	return path, nil
}

// validPath accepts ".", "$key", ".a.b" and "a.b".
func validPath(path string) bool {
	if path == "." || path == keyVar {
		return true
	}
	rest := strings.TrimPrefix(path, ".")
	if rest == "" {
		return false
	}
	for _, seg := range strings.Split(rest, ".") {
		if seg == "" || strings.ContainsAny(seg, "<>%$") {
			return false
		}
	}
	return true
}

package tmpl

import "fmt"

// node is one element of a parsed template.
type node interface {
	render(r *renderer, s *scope) error
}

type textNode struct {
	text string
}

type valueNode struct {
	path string
	line int
}

type ifNode struct {
	path string
	line int
	then []node
	els  []node
}

type eachNode struct {
	path string
	line int
	body []node
	els  []node // rendered when the collection is empty
}

type parser struct {
	toks []token
	pos  int
}

func parse(toks []token) ([]node, error) {
	p := &parser{toks: toks}
	nodes, stop, err := p.list()
	if err != nil {
		return nil, err
	}
	if stop != nil {
		return nil, fmt.Errorf("%w: line %d: unexpected %s", ErrSyntax, stop.line, stop.kind)
	}
	return nodes, nil
}

// list parses nodes up to and including the next else or end, which it
// returns as stop. stop is nil at end of input.
func (p *parser) list() (nodes []node, stop *token, err error) {
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		p.pos++
		switch tok.kind {
		case tokText:
			nodes = append(nodes, &textNode{text: tok.text})
		case tokValue:
			nodes = append(nodes, &valueNode{path: tok.text, line: tok.line})
		case tokIf:
			then, els, err := p.block(tok)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, &ifNode{path: tok.text, line: tok.line, then: then, els: els})
		case tokEach:
			body, els, err := p.block(tok)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, &eachNode{path: tok.text, line: tok.line, body: body, els: els})
		case tokElse, tokEnd:
			return nodes, &tok, nil
		}
	}
	return nodes, nil, nil
}

// block parses the body of an if or each opened by open, with an optional
// else branch, through its end.
func (p *parser) block(open token) (body, els []node, err error) {
	body, stop, err := p.list()
	if err != nil {
		return nil, nil, err
	}
	if stop == nil {
		return nil, nil, fmt.Errorf("%w: line %d: unclosed %s", ErrSyntax, open.line, open.kind)
	}
	if stop.kind == tokEnd {
		return body, nil, nil
	}

	els, stop, err = p.list()
	if err != nil {
		return nil, nil, err
	}
	switch {
	case stop == nil:
		return nil, nil, fmt.Errorf("%w: line %d: unclosed %s", ErrSyntax, open.line, open.kind)
	case stop.kind == tokElse:
		return nil, nil, fmt.Errorf("%w: line %d: second else in %s", ErrSyntax, stop.line, open.kind)
	}
	return body, els, nil
}

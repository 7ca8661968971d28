package sexpr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// parser walks the input with an explicit cursor. Each Parse/ParseAll call
// builds its own parser, so parsing is reentrant and concurrent calls on
// independent inputs need no coordination. Depth is not bounded; heavily
// nested adversarial input can exhaust the stack.
type parser struct {
	src string
	pos int
}

// Parse reads a single S-expression from text. It fails on empty input,
// unterminated tokens and content trailing the root expression.
func Parse(text string) (Node, error) {
	p := &parser{src: text}
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, fmt.Errorf("empty input")
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("unexpected content after expression at offset %d", p.pos)
	}
	return node, nil
}

// ParseAll reads every top-level S-expression from text. Snippets pasted
// from a schematic editor contain several sibling expressions with no
// common root, which Parse would reject.
func ParseAll(text string) ([]Node, error) {
	p := &parser{src: text}
	var result []Node
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			break
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, node)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	return result, nil
}

func (p *parser) parseExpr() (Node, error) {
	ch, _ := p.peek()
	switch ch {
	case '(':
		return p.parseList()
	case ')':
		return nil, fmt.Errorf("unexpected ')' at offset %d", p.pos)
	case '"':
		return p.parseString()
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseList() (Node, error) {
	open := p.pos
	p.next() // consume '('
	list := &List{}
	for {
		p.skipSpace()
		ch, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("unterminated list starting at offset %d", open)
		}
		if ch == ')' {
			p.next()
			return list, nil
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}

// parseString reads a quoted string. Escaping is deliberately literal: a
// backslash is dropped and the following character is kept verbatim, so
// \n becomes n and \" becomes ". This is not a conventional unescape
// scheme; downstream content depends on the literal behavior.
func (p *parser) parseString() (Node, error) {
	open := p.pos
	p.next() // consume '"'
	var out []rune
	for {
		ch, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unterminated string starting at offset %d", open)
		}
		if ch == '"' {
			return Str(out), nil
		}
		if ch == '\\' {
			esc, ok := p.next()
			if !ok {
				return nil, fmt.Errorf("unterminated string starting at offset %d", open)
			}
			out = append(out, esc)
			continue
		}
		out = append(out, ch)
	}
}

func (p *parser) parseAtom() (Node, error) {
	start := p.pos
	for {
		ch, ok := p.peek()
		if !ok || unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}
		p.next()
	}
	if p.pos == start {
		return nil, fmt.Errorf("empty atom at offset %d", start)
	}
	return Atom(p.src[start:p.pos]), nil
}

func (p *parser) skipSpace() {
	for {
		ch, ok := p.peek()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		p.next()
	}
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return ch, true
}

func (p *parser) next() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(p.src[p.pos:])
	p.pos += size
	return ch, true
}

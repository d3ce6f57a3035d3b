package tree

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ErrSyntax is returned (wrapped) by Parse when the input is not
// a valid tree.
var ErrSyntax = errors.New("tree: syntax error")

// Parse reads a tree written in compact notation: a node is a label
// optionally followed by its children in braces, separated by commas.
//
//	R{A{A1,A2},B}
//
// Labels are runs of characters other than whitespace and "{},".
// Whitespace between tokens is ignored and "A{}" is the same as "A".
// Errors wrap ErrSyntax and report the byte offset of the problem.
func Parse(s string) (*Node[string], error) {
	p := parser{s: s}

	p.skipSpace()
	n, err := p.node()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, p.errorf("unexpected %q after tree", p.s[p.pos:])
	}

	return n, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "offset %d: "+format,
		append([]interface{}{p.pos}, args...)...)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		r, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) label() string {
	start := p.pos
	for p.pos < len(p.s) {
		r, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if unicode.IsSpace(r) || strings.ContainsRune("{},", r) {
			break
		}
		p.pos += size
	}
	return p.s[start:p.pos]
}

func (p *parser) node() (*Node[string], error) {
	l := p.label()
	if l == "" {
		if p.pos >= len(p.s) {
			return nil, p.errorf("expected label, found end of input")
		}
		return nil, p.errorf("expected label, found %q", p.s[p.pos])
	}
	n := NodeOf(l)

	p.skipSpace()
	if p.peek() != '{' {
		return n, nil
	}
	p.pos++

	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return n, nil
	}

	for {
		p.skipSpace()
		c, err := p.node()
		if err != nil {
			return nil, err
		}
		n.Append(c)

		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, p.errorf("unterminated children of %q", l)
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return n, nil
		default:
			return nil, p.errorf("expected ',' or '}', found %q", p.s[p.pos])
		}
	}
}

package expr

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Parse reads the textual query surface into an expression tree. The grammar
// is, left-associative:
//
//	expr    = unary { ("+" | "-") unary }
//	unary   = "-" unary | primary
//	primary = "(" expr ")" | "[" number { "," number } "]" | word | quoted
//
// Words are bare (letters, digits after the first rune, "_", "'") or quoted
// with single or double quotes; bracketed vectors hold decimal numbers.
func Parse(input string) (Node, error) {
	p := &parser{input: input}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("expr: unexpected %q at offset %d", p.input[p.pos:], p.pos)
	}
	return n, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op, ok := p.peekOp()
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg{X: x}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("expr: unexpected end of input")
	}
	switch c := p.input[p.pos]; {
	case c == '(':
		p.pos++
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return n, nil
	case c == '[':
		return p.parseLiteral()
	case c == '\'' || c == '"':
		return p.parseQuoted(c)
	default:
		return p.parseWord()
	}
}

func (p *parser) parseLiteral() (Node, error) {
	p.pos++ // consume '['
	var vec Literal
	for {
		p.skipSpace()
		if p.pos < len(p.input) && p.input[p.pos] == ']' {
			p.pos++
			return vec, nil
		}
		if len(vec) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
			p.skipSpace()
		}
		start := p.pos
		for p.pos < len(p.input) && isNumberByte(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == start {
			return nil, fmt.Errorf("expr: expected number at offset %d", p.pos)
		}
		f, err := strconv.ParseFloat(p.input[start:p.pos], 32)
		if err != nil {
			return nil, fmt.Errorf("expr: invalid number %q at offset %d", p.input[start:p.pos], start)
		}
		vec = append(vec, float32(f))
	}
}

func (p *parser) parseQuoted(quote byte) (Node, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.input) {
		if p.input[p.pos] == quote {
			word := p.input[start+1 : p.pos]
			p.pos++
			if word == "" {
				return nil, fmt.Errorf("expr: empty quoted word at offset %d", start)
			}
			return Term(word), nil
		}
		p.pos++
	}
	return nil, fmt.Errorf("expr: unterminated quote at offset %d", start)
}

func (p *parser) parseWord() (Node, error) {
	start := p.pos
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isWordRune(r, p.pos > start) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return nil, fmt.Errorf("expr: unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return Term(p.input[start:p.pos]), nil
}

func (p *parser) peekOp() (Op, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	switch p.input[p.pos] {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	}
	return 0, false
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.pos >= len(p.input) || p.input[p.pos] != c {
		return fmt.Errorf("expr: expected %q at offset %d", string(c), p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return
		}
		p.pos++
	}
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E'
}

func isWordRune(r rune, interior bool) bool {
	if unicode.IsLetter(r) || r == '_' || r == '\'' {
		return true
	}
	return interior && unicode.IsDigit(r)
}

func isBareWord(w string) bool {
	if w == "" {
		return false
	}
	for i, r := range w {
		if !isWordRune(r, i > 0) {
			return false
		}
	}
	return true
}

// Package mathexpr evaluates the symbolic working attached to generated
// maths questions. Arithmetic is exact: every value is a big.Rat, so
// 1/3 + 1/3 + 1/3 is exactly 1 and fraction answers compare without
// floating-point drift.
package mathexpr

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrDivisionByZero is returned when an expression divides by zero.
var ErrDivisionByZero = errors.New("division by zero")

// Eval parses and evaluates an arithmetic expression over exact rationals.
// Supported syntax: integer and decimal literals, + - * /, unary minus,
// parentheses, and the unicode operators × and ÷. Fraction literals such as
// "3/4" fall out of the division operator.
func Eval(expr string) (*big.Rat, error) {
	p := &parser{input: expr}
	p.skipSpace()
	if p.eof() {
		return nil, errors.New("empty expression")
	}
	v, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}
	return v, nil
}

// parser is a recursive-descent parser over a byte offset into the input.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) skipSpace() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// peekOp returns the operator at the cursor, handling the multi-byte
// unicode forms, or 0 if none.
func (p *parser) peekOp() (byte, int) {
	if p.eof() {
		return 0, 0
	}
	rest := p.input[p.pos:]
	switch {
	case strings.HasPrefix(rest, "×"):
		return '*', len("×")
	case strings.HasPrefix(rest, "÷"):
		return '/', len("÷")
	}
	switch rest[0] {
	case '+', '-', '*', '/':
		return rest[0], 1
	}
	return 0, 0
}

func (p *parser) parseExpr() (*big.Rat, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op, width := p.peekOp()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos += width
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left = new(big.Rat).Add(left, right)
		} else {
			left = new(big.Rat).Sub(left, right)
		}
	}
}

func (p *parser) parseTerm() (*big.Rat, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op, width := p.peekOp()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos += width
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = new(big.Rat).Mul(left, right)
		} else {
			if right.Sign() == 0 {
				return nil, ErrDivisionByZero
			}
			left = new(big.Rat).Quo(left, right)
		}
	}
}

func (p *parser) parseFactor() (*big.Rat, error) {
	p.skipSpace()
	if p.eof() {
		return nil, errors.New("unexpected end of expression")
	}
	switch p.input[p.pos] {
	case '-':
		p.pos++
		v, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Neg(v), nil
	case '(':
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.eof() || p.input[p.pos] != ')' {
			return nil, errors.New("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (*big.Rat, error) {
	start := p.pos
	seenDot := false
	for !p.eof() {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		break
	}
	lit := p.input[start:p.pos]
	if lit == "" || lit == "." {
		return nil, fmt.Errorf("expected number at position %d", start)
	}
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", lit)
	}
	return r, nil
}

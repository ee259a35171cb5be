// Package eval implements a recursive-descent evaluator for pure
// numeric expressions with the usual precedence:
//
//	AddSub := MulDiv (('+'|'-') MulDiv)*
//	MulDiv := Power  (('*'|'/'|'%') Power)*
//	Power  := Unary  (('^'|'**') Unary)*
//	Unary  := ('-'|'+')? Atom
//	Atom   := Number | '(' AddSub ')'
//
// Division and modulo follow IEEE double semantics; a non-finite final
// result is rejected. A bare signed number is deliberately not an
// expression: it is passed through untouched by the caller.
package eval

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/querycalc/querycalc/pkg/domain"
)

var reBareNumber = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?$`)

// Evaluate computes the value of an arithmetic expression, or returns
// domain.ErrNoMatch when the query is not one.
func Evaluate(query string) (float64, error) {
	expr := stripSpace(query)
	if !looksArithmetic(expr) {
		return 0, domain.ErrNoMatch
	}

	p := &parser{src: expr}
	v, ok := p.addSub()
	// Unconsumed trailing characters mean a malformed fragment, not a
	// partial expression worth accepting.
	if !ok || p.pos != len(p.src) {
		return 0, domain.ErrNoMatch
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, domain.ErrNoMatch
	}
	return v, nil
}

func stripSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// looksArithmetic is the entry guard: at least one digit, no letters,
// at least one operator character, and not a bare signed number.
func looksArithmetic(expr string) bool {
	if expr == "" || reBareNumber.MatchString(expr) {
		return false
	}
	hasDigit := false
	hasOp := false
	for _, r := range expr {
		switch {
		case unicode.IsLetter(r):
			return false
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune("+-*/%^()", r):
			hasOp = true
		}
	}
	return hasDigit && hasOp
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) addSub() (float64, bool) {
	v, ok := p.mulDiv()
	if !ok {
		return 0, false
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, ok := p.mulDiv()
			if !ok {
				return 0, false
			}
			v += rhs
		case '-':
			p.pos++
			rhs, ok := p.mulDiv()
			if !ok {
				return 0, false
			}
			v -= rhs
		default:
			return v, true
		}
	}
}

func (p *parser) mulDiv() (float64, bool) {
	v, ok := p.power()
	if !ok {
		return 0, false
	}
	for {
		switch p.peek() {
		case '*':
			// "**" belongs to the power level.
			if p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
				return v, true
			}
			p.pos++
			rhs, ok := p.power()
			if !ok {
				return 0, false
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, ok := p.power()
			if !ok {
				return 0, false
			}
			v /= rhs
		case '%':
			p.pos++
			rhs, ok := p.power()
			if !ok {
				return 0, false
			}
			v = math.Mod(v, rhs)
		default:
			return v, true
		}
	}
}

func (p *parser) power() (float64, bool) {
	v, ok := p.unary()
	if !ok {
		return 0, false
	}
	for {
		if p.peek() == '^' {
			p.pos++
		} else if p.peek() == '*' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
			p.pos += 2
		} else {
			return v, true
		}
		rhs, ok := p.unary()
		if !ok {
			return 0, false
		}
		v = math.Pow(v, rhs)
	}
}

func (p *parser) unary() (float64, bool) {
	switch p.peek() {
	case '-':
		p.pos++
		v, ok := p.atom()
		return -v, ok
	case '+':
		p.pos++
		return p.atom()
	default:
		return p.atom()
	}
}

func (p *parser) atom() (float64, bool) {
	if p.peek() == '(' {
		p.pos++
		v, ok := p.addSub()
		if !ok || p.peek() != ')' {
			return 0, false
		}
		p.pos++
		return v, true
	}
	return p.number()
}

func (p *parser) number() (float64, bool) {
	start := p.pos
	seenDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
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
	if p.pos == start {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

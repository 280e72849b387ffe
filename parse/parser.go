// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse implements the recursive-descent expression grammar:
// additive, multiplicative (including spaced E), unary minus, tight
// scientific notation, factorials, and exponentiation
// (both "^" and the multiplicative "**"), dispatching to decode for
// every literal and applying the promotion step (component D) after
// every operator. Ported in style from robpike.io/ivy/parse -- a
// Parser struct driving recursive methods named after the grammar
// rules, an errorf that raises through the same rmerr panic/recover
// discipline the rest of the module uses -- but over a plain string
// cursor instead of a channel-fed token scanner, since this grammar has
// no statements, variables, or interactive loop to drive.
package parse

import (
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/decode"
	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// maxDepth bounds recursive descent, to keep pathological nesting from
// exhausting the stack.
const maxDepth = 500

// Parser holds the state of one parse. It is not safe for concurrent
// use, and not meant to be reused across calls -- a parse is a pure,
// synchronous, single-threaded computation with no state surviving
// between calls.
type Parser struct {
	text  string
	pos   int
	cfg   *config.Config
	depth int
}

// Parse parses expression under cfg (which may be nil, yielding base-10
// type-aware defaults) and returns the single tagged value it
// evaluates to, or a structured *rmerr.Error. It is the one recover
// point for the panic discipline every decoder and operator uses
// internally.
func Parse(expression string, cfg *config.Config) (v number.Value, err error) {
	defer rmerr.Recover(&err)

	text := rewriteWhitespaceSentinels(expression)
	p := &Parser{text: text, cfg: cfg}
	p.skipSpace()
	if p.atEOF() {
		return number.Value{}, &rmerr.Error{Kind: rmerr.EmptyInput, Message: "empty expression"}
	}
	result := p.expr()
	p.skipSpace()
	if !p.atEOF() {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "unexpected trailing input")
	}
	return result, nil
}

func (p *Parser) rest() string {
	if p.pos >= len(p.text) {
		return ""
	}
	end := p.pos + 16
	if end > len(p.text) {
		end = len(p.text)
	}
	return p.text[p.pos:end]
}

func (p *Parser) atEOF() bool { return p.pos >= len(p.text) }

func (p *Parser) peekByte() byte {
	if p.atEOF() {
		return 0
	}
	return p.text[p.pos]
}

func (p *Parser) peekByteAt(n int) byte {
	if p.pos+n >= len(p.text) {
		return 0
	}
	return p.text[p.pos+n]
}

// skipSpace consumes ordinary insignificant whitespace. It must never
// consume the sentinel bytes rewriteWhitespaceSentinels introduced --
// those are tokens in their own right.
func (p *Parser) skipSpace() {
	for !p.atEOF() {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *Parser) enter() {
	p.depth++
	if p.depth > maxDepth {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expression nested too deeply")
	}
}

func (p *Parser) leave() { p.depth-- }

// expr := term (('+' | '-') term)*
func (p *Parser) expr() number.Value {
	p.enter()
	defer p.leave()

	v := p.term()
	for {
		p.skipSpace()
		switch p.peekByte() {
		case '+':
			p.pos++
			v = promote(number.Add(v, p.term()), p.cfg)
		case '-':
			p.pos++
			v = promote(number.Sub(v, p.term()), p.cfg)
		default:
			return v
		}
	}
}

// term := factor (('*' | '/' spaced-sentinel | 'E' spaced-sentinel) factor)*
func (p *Parser) term() number.Value {
	p.enter()
	defer p.leave()

	v := p.factor()
	for {
		p.skipSpace()
		switch {
		case p.peekByte() == '*' && p.peekByteAt(1) != '*':
			p.pos++
			v = promote(number.Mul(v, p.factor()), p.cfg)
		case p.peekByte() == '/' && p.peekByteAt(1) == spacedSlash:
			p.pos += 2
			v = promote(number.Div(v, p.factor()), p.cfg)
		case p.peekByte() == spacedE && p.peekByteAt(1) == 'E':
			p.pos += 2
			v = promote(number.Mul(v, p.factor()), p.cfg)
		default:
			return v
		}
	}
}

// factor := unary (('!' | '!!')* (('^' exponent) | ('**' exponent))?)
//
// Tight scientific notation has already been folded into the atom by
// the time factor looks at it (decode absorbs "E"/"_^" immediately
// adjacent to a literal, and p.atom re-applies the same rule right
// after a parenthesised group). That ordering is what makes
// "(2)E3!" parse as "((2)E3)!": the tight E suffix is part of the atom,
// factorial applies to the atom's value, and ^/** -- the
// tightest-binding operators overall -- apply last, on top of any
// factorial.
func (p *Parser) factor() number.Value {
	p.enter()
	defer p.leave()

	v := p.unary()

	for {
		p.skipSpace()
		if p.peekByte() != '!' {
			break
		}
		if p.peekByteAt(1) == '!' {
			p.pos += 2
			v = promote(number.DoubleFactorial(v), p.cfg)
		} else {
			p.pos++
			v = promote(number.Factorial(v), p.cfg)
		}
	}

	p.skipSpace()
	switch {
	case p.peekByte() == '*' && p.peekByteAt(1) == '*':
		p.pos += 2
		exp := p.exponent()
		v = promote(number.MPow(v, exp, p.cfg.Precision()), p.cfg)
	case p.peekByte() == '^':
		p.pos++
		exp := p.exponent()
		v = promote(number.Pow(v, exp, p.cfg.Precision()), p.cfg)
	}
	return v
}

// unary := '-' factor | atom
//
// A leading '-' belongs to the operator, recursively negating a whole
// factor -- including any postfix '!'/'!!' and '^'/'**' that factor
// goes on to apply, per the grammar's own "'-' factor" production --
// UNLESS the literal immediately following it is shaped like an
// uncertainty bracket or an explicit ':' interval -- the one case where
// a leading '-' is accepted but does not act as the negation operator.
// In that one case the sign belongs to the
// literal itself: Neg(decode("3[...]")) and decode("-3[...]") are
// different numbers (the offsets are anchored to a different center),
// so only the literal decoder may consume that sign. An ordinary
// negative number has no such exception -- "-5!" is -(5!) = -120, not
// an error, and "-2^2" is -(2^2) = -4, not (-2)^2 = 4.
func (p *Parser) unary() number.Value {
	p.enter()
	defer p.leave()

	if p.peekByte() == '-' && p.negationBelongsToLiteral() {
		return p.atom()
	}
	if p.peekByte() == '-' {
		p.pos++
		return promote(number.Neg(p.factor()), p.cfg)
	}
	return p.atom()
}

// negationBelongsToLiteral reports whether the literal starting at the
// current '-' decodes to an Interval -- the uncertainty-bracket,
// continued-fraction-interval, or explicit ':' shapes that must keep
// their sign, as opposed to every other literal shape, which decodes to
// a plain Integer or Rational and so falls under the ordinary
// negation-operator rule above.
func (p *Parser) negationBelongsToLiteral() bool {
	if !p.isDigitAt(1) {
		return false
	}
	v, _, err := decode.DecodeLiteral(p.text, p.pos, p.cfg)
	if err != nil {
		return false
	}
	return v.Kind() == number.IntervalKind
}

// isDigitAt reports whether the byte at p.pos+offset is a valid digit
// of the current input base, under its digit-scan (case-folded) view.
func (p *Parser) isDigitAt(offset int) bool {
	if p.pos+offset >= len(p.text) {
		return false
	}
	bs := p.cfg.InputBase()
	r := rune(p.text[p.pos+offset])
	return bs.ForDigitScan().IsValid(string(r))
}

// startsLiteral reports whether the parser's current position begins a
// numeric literal: a bare digit, or a '-' immediately followed by one
// (the sign then belongs to the literal -- see unary's doc comment).
func (p *Parser) startsLiteral() bool {
	if p.isDigitAt(0) {
		return true
	}
	return p.peekByte() == '-' && p.isDigitAt(1)
}

// atom := '(' expr ')' tightSuffix? | function-call | literal
func (p *Parser) atom() number.Value {
	p.enter()
	defer p.leave()

	p.skipSpace()
	if p.atEOF() {
		rmerr.Errorf(rmerr.SyntaxError, "", "expected an expression")
	}

	if p.peekByte() == '(' {
		p.pos++
		v := p.expr()
		p.skipSpace()
		if p.peekByte() != ')' {
			rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected ')'")
		}
		p.pos++
		return p.applyTightSuffix(v)
	}

	if name, ok := p.peekFunctionName(); ok {
		return p.functionCall(name)
	}

	if p.startsLiteral() {
		v, end, err := decode.DecodeLiteral(p.text, p.pos, p.cfg)
		if err != nil {
			panic(toRmerr(err))
		}
		p.pos = end
		return v
	}

	rmerr.Errorf(rmerr.SyntaxError, p.rest(), "unexpected token")
	panic("unreachable")
}

func toRmerr(err error) error {
	if _, ok := err.(*rmerr.Error); ok {
		return err
	}
	return &rmerr.Error{Kind: rmerr.SyntaxError, Message: err.Error()}
}

// applyTightSuffix folds a scientific suffix directly following a
// parenthesised group into its value, the same way decode folds one
// onto a bare literal: tight E/_^ binds to the adjacent literal or
// parenthesised group tighter than ^.
func (p *Parser) applyTightSuffix(v number.Value) number.Value {
	bs := p.cfg.InputBase()
	if p.peekByte() == spacedE {
		return v // belongs to term(), not a tight suffix
	}
	k, end, ok := decode.PeekScientificSuffix(p.text, p.pos, bs)
	if !ok {
		return v
	}
	decimalMarker := p.text[p.pos] == 'E'
	p.pos = end
	return decode.ApplyScientificSuffix(v, k, decimalMarker, bs)
}

// exponent := integer-literal | '(' expr ')' | factor
//
// An integer literal is preferred when one is present so that "2^3"
// takes the fast repeated-squaring path in number.Pow rather than the
// general rational/transcendental one; any other shape just recurses
// into factor.
func (p *Parser) exponent() number.Value {
	p.enter()
	defer p.leave()

	p.skipSpace()
	if p.peekByte() == '(' {
		p.pos++
		v := p.expr()
		p.skipSpace()
		if p.peekByte() != ')' {
			rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected ')'")
		}
		p.pos++
		return v
	}
	return p.factor()
}

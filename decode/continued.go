// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"

	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// ParseContinuedFraction is the standalone public utility that parses a
// complete continued-fraction literal "signed-int.~a1~a2~...~an" into
// its integer sequence [a0, a1, ..., an]. It does not reduce the
// sequence to a rational -- that reduction lives in
// number.RationalFromContinuedFraction, a distinct concern from parsing
// the literal's text.
func ParseContinuedFraction(text string) ([]*big.Int, error) {
	c := newCursor(text, 0)
	terms, end, err := decodeContinuedFractionTerms(c)
	if err != nil {
		return nil, err
	}
	if end != len(text) {
		return nil, rmerrSyntax(text, "trailing characters after continued fraction")
	}
	return terms, nil
}

func rmerrSyntax(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.SyntaxError, Context: context, Message: msg}
}

// decodeContinuedFractionTerms scans "signed-int(.~positive-int)*" at
// c's current position and returns the integer sequence and the byte
// offset just past what was consumed. Forbids a double '~' and a
// trailing '~'.
func decodeContinuedFractionTerms(c *cursor) ([]*big.Int, int, error) {
	start := c.pos
	c.accept("-")
	intStart := c.pos
	c.acceptRun("0123456789")
	if c.pos == intStart {
		return nil, 0, rmerrSyntax(c.text[start:], "continued fraction requires a leading integer")
	}
	a0, ok := new(big.Int).SetString(c.text[start:c.pos], 10)
	if !ok {
		return nil, 0, rmerrSyntax(c.text[start:c.pos], "invalid leading integer")
	}
	terms := []*big.Int{a0}

	if !c.acceptString(".~") {
		return nil, 0, rmerrSyntax(c.text[start:], "continued fraction requires \".~\"")
	}

	for {
		digitsStart := c.pos
		c.acceptRun("0123456789")
		if c.pos == digitsStart {
			return nil, 0, rmerrSyntax(c.text[start:c.pos], "expected positive integer after '~'")
		}
		a, ok := new(big.Int).SetString(c.text[digitsStart:c.pos], 10)
		if !ok || a.Sign() < 0 {
			return nil, 0, rmerrSyntax(c.text[digitsStart:c.pos], "continued fraction terms must be non-negative")
		}
		terms = append(terms, a)
		if !c.accept("~") {
			break
		}
		if c.peek() == '~' {
			return nil, 0, rmerrSyntax(c.text[start:c.pos], "repeated '~' in continued fraction")
		}
		if c.atEOF() {
			return nil, 0, rmerrSyntax(c.text[start:c.pos], "trailing '~' in continued fraction")
		}
	}

	// x.~0 means the bare integer x -- the one shape where a term after
	// a0 may be zero.
	if len(terms) == 2 && terms[1].Sign() == 0 {
		return terms[:1], c.pos, nil
	}
	for _, a := range terms[1:] {
		if a.Sign() == 0 {
			return nil, 0, rmerrSyntax(c.text[start:c.pos], "continued fraction terms after a0 must be positive, except a lone trailing '~0'")
		}
	}
	return terms, c.pos, nil
}

// DecodeContinuedFraction decodes one continued-fraction literal (or
// two colon-separated continued fractions forming an interval) starting
// at pos, returning the reduced exact value and the offset just past
// what was consumed.
func DecodeContinuedFraction(text string, pos int) (number.Value, int, error) {
	c := newCursor(text, pos)
	loTerms, end, err := decodeContinuedFractionTerms(c)
	if err != nil {
		return number.Value{}, pos, err
	}
	lo := number.RationalFromContinuedFraction(loTerms)

	if c.text[end:] != "" && len(c.text) > end && c.text[end] == ':' {
		c2 := newCursor(text, end+1)
		if looksLikeContinuedFractionStart(c2) {
			hiTerms, end2, err := decodeContinuedFractionTerms(c2)
			if err != nil {
				return number.Value{}, pos, err
			}
			hi := number.RationalFromContinuedFraction(hiTerms)
			loR := ratOf(lo)
			hiR := ratOf(hi)
			return number.NewInterval(loR, hiR).WithExplicitInterval(), end2, nil
		}
	}
	return lo, end, nil
}

func looksLikeContinuedFractionStart(c *cursor) bool {
	save := *c
	_, _, err := decodeContinuedFractionTerms(c)
	*c = save
	return err == nil
}

func ratOf(v number.Value) *big.Rat {
	if v.Kind() == number.IntegerKind {
		return new(big.Rat).SetInt(v.Int())
	}
	return v.Rat()
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"

	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// DecodeRepeatingDecimal decodes "integer.fractional#repeat". This form
// is always base 10: the '#' notation is a decimal-specific
// convenience, not something every BaseSystem need support. "repeat" of
// "0" collapses to the plain terminating
// rational. The leading sign, if any, is handled here (unlike some
// other decoders that leave the sign to the caller) because the
// negation has to apply after the exact rational is built, not to the
// individual digit runs.
func DecodeRepeatingDecimal(text string, pos int) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos
	neg := c.accept("-")

	intStart := c.pos
	c.acceptRun("0123456789")
	intPart := c.text[intStart:c.pos]
	if intPart == "" {
		intPart = "0"
	}

	if !c.accept(".") {
		return number.Value{}, pos, syntaxErr(c.text[start:c.pos], "repeating decimal requires '.'")
	}

	fracStart := c.pos
	c.acceptRun("0123456789")
	fractional := c.text[fracStart:c.pos]

	if !c.accept("#") {
		return number.Value{}, pos, syntaxErr(c.text[start:c.pos], "repeating decimal requires '#'")
	}

	repStart := c.pos
	c.acceptRun("0123456789")
	repeat := c.text[repStart:c.pos]
	if repeat == "" {
		return number.Value{}, pos, syntaxErr(c.text[start:c.pos], "repeating decimal requires digits after '#'")
	}

	r, err := number.RationalFromRepeatingDecimal(intPart, fractional, repeat)
	if err != nil {
		return number.Value{}, pos, invalidFormat(c.text[start:c.pos], err.Error())
	}
	if neg {
		r.Neg(r)
	}
	return reduceRat(r), c.pos, nil
}

func syntaxErr(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.SyntaxError, Context: context, Message: msg}
}

func invalidFormat(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.InvalidNumberFormat, Context: context, Message: msg}
}

func unsupportedComposition(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.UnsupportedComposition, Context: context, Message: msg}
}

func deprecatedBracketBase(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.DeprecatedBracketBase, Context: context, Message: msg}
}

// reduceRat wraps a big.Rat as the narrowest unflagged Value: Integer
// when the denominator is 1, otherwise Rational. This is the literal
// decoder's own reduction, distinct from the parser's promotion step
// (component D, which also consults provenance flags after operator
// evaluation) -- mirrors robpike.io/ivy/value/bigrat.go's eager
// "shrink" on every constructed BigRat.
func reduceRat(r *big.Rat) number.Value {
	if r.IsInt() {
		return number.NewInteger(r.Num())
	}
	return number.NewRational(r.Num(), r.Denom())
}

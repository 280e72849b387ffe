// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/number"
)

// peekScientificExponent recognizes a scientific-notation suffix at
// pos -- "E" (only meaningful for base 10) or "_^" (any base) followed
// by a signed integer in bs -- without requiring the caller to already
// know which form applies. It returns the exponent value, the offset
// just past the suffix, and whether a suffix was found at all.
func peekScientificExponent(text string, pos int, bs *base.System) (k int, newpos int, ok bool) {
	c := newCursor(text, pos)
	var marker string
	switch {
	case c.acceptString("_^"):
		marker = "_^"
	case bs.Base() == 10 && c.accept("E"):
		marker = "E"
	default:
		return 0, pos, false
	}
	neg := c.accept("-")
	if !neg {
		c.accept("+")
	}
	expText := scanDigitRun(c, bs)
	if expText == "" {
		return 0, pos, false // not actually an exponent; let caller treat literally
	}
	z, err := bs.ForDigitScan().ToInteger(expText)
	if err != nil {
		return 0, pos, false
	}
	if neg {
		z.Neg(z)
	}
	_ = marker
	return int(z.Int64()), c.pos, true
}

// PeekScientificSuffix is the exported form of peekScientificExponent,
// used by parse to fold a scientific suffix onto a parenthesised group:
// tight E/_^ binds to the adjacent literal or parenthesised group.
func PeekScientificSuffix(text string, pos int, bs *base.System) (k int, newpos int, ok bool) {
	return peekScientificExponent(text, pos, bs)
}

// ApplyScientificSuffix multiplies v by B^k where B is 10 for the "E"
// marker and bs.Base() for "_^". It lets the dispatcher handle any
// literal followed by a scientific suffix, after one of the other
// decoders has produced a scalar or an explicit point interval.
func ApplyScientificSuffix(v number.Value, k int, decimalMarker bool, bs *base.System) number.Value {
	radix := bs.Base()
	if decimalMarker {
		radix = 10
	}
	scale := new(big.Int).Exp(big.NewInt(int64(radix)), absInt(k), nil)
	scaleRat := new(big.Rat).SetInt(scale)
	if k < 0 {
		scaleRat.Inv(scaleRat)
	}
	switch v.Kind() {
	case number.IntegerKind:
		r := new(big.Rat).SetInt(v.Int())
		r.Mul(r, scaleRat)
		if r.IsInt() {
			return number.NewInteger(r.Num())
		}
		return number.NewRational(r.Num(), r.Denom())
	case number.RationalKind:
		r := new(big.Rat).Mul(v.Rat(), scaleRat)
		if r.IsInt() {
			return number.NewInteger(r.Num())
		}
		return number.NewRational(r.Num(), r.Denom())
	case number.IntervalKind:
		lo, hi := v.Bounds()
		loR := new(big.Rat).Mul(lo, scaleRat)
		hiR := new(big.Rat).Mul(hi, scaleRat)
		out := number.NewInterval(loR, hiR)
		if v.ExplicitInterval() {
			out = out.WithExplicitInterval()
		}
		return out
	}
	panic("decode: ApplyScientificSuffix unknown kind")
}

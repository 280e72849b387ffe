// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"github.com/jostylr/ratmath/rmerr"
)

// Add, Sub, Mul, Div dispatch on the pair of operand kinds: arithmetic
// is a set of binary functions dispatched by the pair of tags, not by
// virtual calls. Integer+Integer stays Integer (using big.Int directly,
// mirroring the BigInt-specific fast paths in
// robpike.io/ivy/value/binary.go); anything touching a Rational
// promotes both sides to big.Rat; anything touching an Interval
// promotes both sides to intervals and applies standard interval
// arithmetic. None of these functions read or set the promotion flags
// -- that happens once, afterward, in the parser's own promotion step.

func Add(a, b Value) Value { return binaryOp(a, b, addInt, addRat, addIval) }
func Sub(a, b Value) Value { return binaryOp(a, b, subInt, subRat, subIval) }
func Mul(a, b Value) Value { return binaryOp(a, b, mulInt, mulRat, mulIval) }

func Div(a, b Value) Value {
	if b.kind != IntervalKind && b.IsZero() {
		rmerr.Errorf(rmerr.DivisionByZero, "", "division by zero")
	}
	if b.kind == IntervalKind && b.StraddlesZero() && !b.IsPoint() {
		rmerr.Errorf(rmerr.IntervalDivisionByZero, "", "division by interval containing zero")
	}
	if b.kind == IntervalKind && b.IsPoint() {
		lo, _ := b.Bounds()
		if lo.Sign() == 0 {
			rmerr.Errorf(rmerr.DivisionByZero, "", "division by point interval zero")
		}
	}
	return binaryOp(a, b, divInt, divRat, divIval)
}

func addInt(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func subInt(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func mulInt(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func divInt(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	return nil // signals "not exact"; caller falls back to rational division
}

func addRat(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func subRat(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func mulRat(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func divRat(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

type ivalFn func(alo, ahi, blo, bhi *big.Rat) (lo, hi *big.Rat)

func addIval(alo, ahi, blo, bhi *big.Rat) (*big.Rat, *big.Rat) {
	return addRat(alo, blo), addRat(ahi, bhi)
}

func subIval(alo, ahi, blo, bhi *big.Rat) (*big.Rat, *big.Rat) {
	return subRat(alo, bhi), subRat(ahi, blo)
}

func mulIval(alo, ahi, blo, bhi *big.Rat) (*big.Rat, *big.Rat) {
	candidates := []*big.Rat{
		mulRat(alo, blo), mulRat(alo, bhi),
		mulRat(ahi, blo), mulRat(ahi, bhi),
	}
	return minMax(candidates)
}

func divIval(alo, ahi, blo, bhi *big.Rat) (*big.Rat, *big.Rat) {
	candidates := []*big.Rat{
		divRat(alo, blo), divRat(alo, bhi),
		divRat(ahi, blo), divRat(ahi, bhi),
	}
	return minMax(candidates)
}

func minMax(rs []*big.Rat) (*big.Rat, *big.Rat) {
	lo, hi := rs[0], rs[0]
	for _, r := range rs[1:] {
		if r.Cmp(lo) < 0 {
			lo = r
		}
		if r.Cmp(hi) > 0 {
			hi = r
		}
	}
	return lo, hi
}

func binaryOp(a, b Value, fi func(a, b *big.Int) *big.Int, fr func(a, b *big.Rat) *big.Rat, fv ivalFn) Value {
	if a.kind == IntegerKind && b.kind == IntegerKind {
		if fi != nil {
			if z := fi(a.i, b.i); z != nil {
				return NewInteger(z)
			}
		}
		// Division that isn't exact: fall through to rational.
		ra, rb := a.asRat(), b.asRat()
		return rationalFromRat(fr(ra, rb))
	}
	if a.kind != IntervalKind && b.kind != IntervalKind {
		ra, rb := a.asRat(), b.asRat()
		return rationalFromRat(fr(ra, rb))
	}
	av, bv := a.ToInterval(), b.ToInterval()
	alo, ahi := av.Bounds()
	blo, bhi := bv.Bounds()
	lo, hi := fv(alo, ahi, blo, bhi)
	return NewInterval(lo, hi)
}

// Neg negates a value, preserving its kind and flags.
func Neg(v Value) Value {
	switch v.kind {
	case IntegerKind:
		z := new(big.Int).Neg(v.i)
		nv := NewInteger(z)
		return nv
	case RationalKind:
		r := new(big.Rat).Neg(v.r)
		nv := rationalFromRat(r)
		nv.explicitFraction = v.explicitFraction
		return nv
	case IntervalKind:
		lo, hi := v.Bounds()
		nv := NewInterval(new(big.Rat).Neg(hi), new(big.Rat).Neg(lo))
		nv.explicitInterval = v.explicitInterval
		nv.skipPromotion = v.skipPromotion
		return nv
	}
	panic("number: Neg unknown kind")
}

// Abs returns the absolute value of v.
func Abs(v Value) Value {
	switch v.kind {
	case IntegerKind:
		if v.i.Sign() < 0 {
			return Neg(v)
		}
		return v
	case RationalKind:
		if v.r.Sign() < 0 {
			return Neg(v)
		}
		return v
	case IntervalKind:
		lo, hi := v.Bounds()
		if lo.Sign() >= 0 {
			return v
		}
		if hi.Sign() <= 0 {
			return Neg(v)
		}
		negLo := new(big.Rat).Neg(lo)
		top := hi
		if negLo.Cmp(top) > 0 {
			top = negLo
		}
		return NewInterval(big.NewRat(0, 1), top)
	}
	panic("number: Abs unknown kind")
}

// Equal reports mathematical equality, comparing across kinds.
func Equal(a, b Value) bool {
	if a.kind == IntervalKind || b.kind == IntervalKind {
		av, bv := a.ToInterval(), b.ToInterval()
		alo, ahi := av.Bounds()
		blo, bhi := bv.Bounds()
		return alo.Cmp(blo) == 0 && ahi.Cmp(bhi) == 0
	}
	return a.asRat().Cmp(b.asRat()) == 0
}

// Compare orders two scalar (non-Interval) values: -1, 0, or 1.
func Compare(a, b Value) int {
	return a.asRat().Cmp(b.asRat())
}

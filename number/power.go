// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"github.com/jostylr/ratmath/rmerr"
)

// Pow implements the standard '^' operator. Integer exponents use
// repeated squaring exactly (no precision loss); non-integer exponents
// defer to the transcendental power-interval routine at the ambient
// precision. 0^0 is a ZeroToZero error in every representation.
func Pow(base, exp Value, precision int) Value {
	if exp.kind != IntervalKind {
		if exp.kind == IntegerKind || (exp.kind == RationalKind && exp.r.IsInt()) {
			k := exponentInt(exp)
			if base.IsZero() && k.Sign() == 0 {
				rmerr.Errorf(rmerr.ZeroToZero, "", "0^0 is undefined")
			}
			return integerPow(base, k)
		}
	} else if exp.IsPoint() {
		lo, _ := exp.Bounds()
		if lo.IsInt() {
			k := new(big.Int).Set(lo.Num())
			if base.IsZero() && k.Sign() == 0 {
				rmerr.Errorf(rmerr.ZeroToZero, "", "0^0 is undefined")
			}
			return integerPow(base, k)
		}
	}
	if base.IsZero() {
		rmerr.Errorf(rmerr.ZeroToZero, "", "0 to a non-integer power is undefined")
	}
	return RationalIntervalPower(base, exp, precision)
}

func exponentInt(exp Value) *big.Int {
	if exp.kind == IntegerKind {
		return exp.i
	}
	return exp.r.Num()
}

// integerPow raises base to an integer exponent k by repeated squaring,
// exactly, for Integer and Rational bases, and endpoint-wise (honoring
// orientation) for Interval bases.
func integerPow(base Value, k *big.Int) Value {
	neg := k.Sign() < 0
	absK := new(big.Int).Abs(k)
	switch base.kind {
	case IntegerKind:
		z := new(big.Int).Exp(base.i, absK, nil)
		if neg {
			return NewRational(big.NewInt(1), z)
		}
		return NewInteger(z)
	case RationalKind:
		num := new(big.Int).Exp(base.r.Num(), absK, nil)
		den := new(big.Int).Exp(base.r.Denom(), absK, nil)
		if neg {
			num, den = den, num
		}
		return NewRational(num, den)
	case IntervalKind:
		lo, hi := base.Bounds()
		rlo := ratPowInt(lo, absK)
		rhi := ratPowInt(hi, absK)
		if neg {
			if rlo.Sign() == 0 || rhi.Sign() == 0 {
				rmerr.Errorf(rmerr.DivisionByZero, "", "negative power of interval touching zero")
			}
			rlo, rhi = new(big.Rat).Inv(rlo), new(big.Rat).Inv(rhi)
		}
		evenExp := absK.Bit(0) == 0
		if evenExp && lo.Sign() < 0 && hi.Sign() > 0 {
			// Even power of a straddling interval: minimum is 0.
			top := rlo
			if rhi.Cmp(top) > 0 {
				top = rhi
			}
			return NewInterval(big.NewRat(0, 1), top)
		}
		return NewInterval(rlo, rhi)
	}
	panic("number: integerPow unknown kind")
}

func ratPowInt(r *big.Rat, k *big.Int) *big.Rat {
	num := new(big.Int).Exp(r.Num(), k, nil)
	den := new(big.Int).Exp(r.Denom(), k, nil)
	return new(big.Rat).SetFrac(num, den)
}

// MPow implements the multiplicative exponentiation operator '**'. An
// integer exponent k != 0 raises an interval
// endpoint-wise as [lo^k, hi^k], swapped for negative k; a rational
// exponent p/q with 1 < q <= 10 invokes the Newton-root routine and
// then integer-raises to p. A zero exponent is always an error. The
// result always carries skip_promotion, set here on both return paths.
func MPow(base, exp Value, precision int) Value {
	iv := base.ToInterval()
	lo, hi := iv.Bounds()

	if isIntegerValue(exp) {
		k := exponentInt(exp)
		if k.Sign() == 0 {
			rmerr.Errorf(rmerr.ZeroToZero, "", "** requires at least one factor (zero exponent)")
		}
		neg := k.Sign() < 0
		absK := new(big.Int).Abs(k)
		rlo, rhi := ratPowInt(lo, absK), ratPowInt(hi, absK)
		if neg {
			rlo, rhi = new(big.Rat).Inv(rlo), new(big.Rat).Inv(rhi)
			rlo, rhi = rhi, rlo
		}
		return NewInterval(rlo, rhi).WithSkipPromotion()
	}

	p, q, ok := rationalExponentParts(exp)
	if !ok || q.Cmp(big.NewInt(1)) <= 0 || q.Cmp(big.NewInt(10)) > 0 {
		rmerr.Errorf(rmerr.DomainError, "", "** exponent must be an integer or p/q with 1<q<=10")
	}
	rooted := NewtonRoot(iv, q, precision)
	return integerPow(rooted, p).WithSkipPromotion()
}

func isIntegerValue(v Value) bool {
	switch v.kind {
	case IntegerKind:
		return true
	case RationalKind:
		return v.r.IsInt()
	case IntervalKind:
		if !v.IsPoint() {
			return false
		}
		lo, _ := v.Bounds()
		return lo.IsInt()
	}
	return false
}

func rationalExponentParts(v Value) (p, q *big.Int, ok bool) {
	switch v.kind {
	case RationalKind:
		return new(big.Int).Set(v.r.Num()), new(big.Int).Set(v.r.Denom()), true
	case IntervalKind:
		if !v.IsPoint() {
			return nil, nil, false
		}
		lo, _ := v.Bounds()
		return new(big.Int).Set(lo.Num()), new(big.Int).Set(lo.Denom()), true
	}
	return nil, nil, false
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"github.com/jostylr/ratmath/rmerr"
)

// Transcendental functions are opaque operators producing intervals at
// a requested precision: the caller never sees irrational values, only
// a Rational Interval guaranteed to bracket the true value within the
// requested error bound. Internally we use math/big.Float the same way
// robpike.io/ivy/value/sin.go, log.go, power.go, and bigfloat.go do --
// Newton iteration and Taylor series over big.Float -- then widen the
// computed float by the requested epsilon and convert both bounds to
// exact big.Rat endpoints.

// precisionBits picks a working big.Float precision comfortably beyond
// what's needed to resolve 10^precision, carrying extra guard digits
// through a Newton loop the way robpike.io/ivy's float routines do.
func precisionBits(precision int) uint {
	p := precision
	if p < 0 {
		p = -p
	}
	bits := uint(p)*4 + 64
	if bits < 128 {
		bits = 128
	}
	return bits
}

func newF(precision int) *big.Float {
	return new(big.Float).SetPrec(precisionBits(precision))
}

// epsilon returns 10^precision as a big.Float, the target error bound.
func epsilon(precision int) *big.Float {
	e := newF(precision)
	ten := newF(precision).SetInt64(10)
	e.SetInt64(1)
	if precision >= 0 {
		for i := 0; i < precision; i++ {
			e.Mul(e, ten)
		}
		return e
	}
	for i := 0; i < -precision; i++ {
		e.Quo(e, ten)
	}
	return e
}

// widen converts a computed center value into a Rational Interval of
// width at most 2*epsilon(precision), flagged explicit_interval: every
// interval a transcendental function returns carries that flag.
func widen(center *big.Float, precision int) Value {
	eps := epsilon(precision)
	lo := new(big.Float).Sub(center, eps)
	hi := new(big.Float).Add(center, eps)
	loR, _ := lo.Rat(nil)
	hiR, _ := hi.Rat(nil)
	return NewInterval(loR, hiR).WithExplicitInterval()
}

func scalarToFloat(v Value, precision int) *big.Float {
	f := newF(precision)
	switch v.kind {
	case IntegerKind:
		return f.SetInt(v.i)
	case RationalKind:
		return f.SetRat(v.r)
	case IntervalKind:
		lo, hi := v.Bounds()
		mid := new(big.Rat).Add(lo, hi)
		mid.Quo(mid, big.NewRat(2, 1))
		return f.SetRat(mid)
	}
	panic("number: scalarToFloat unknown kind")
}

// PI returns an interval bracketing pi, via Machin's arctangent formula
// (4*(4*arctan(1/5) - arctan(1/239))), which converges well enough at
// the modest precisions this parser targets.
func PI(precision int) Value {
	prec := precisionBits(precision)
	// Machin's formula: pi/4 = 4*arctan(1/5) - arctan(1/239).
	a := arctanFloat(big.NewRat(1, 5), prec)
	b := arctanFloat(big.NewRat(1, 239), prec)
	pi := new(big.Float).SetPrec(prec)
	pi.Mul(a, big.NewFloat(4))
	pi.Sub(pi, b)
	pi.Mul(pi, big.NewFloat(4))
	return widen(pi, precision)
}

// E returns an interval bracketing Euler's number.
func E(precision int) Value {
	prec := precisionBits(precision)
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	return widen(exponential(one, prec), precision)
}

// EXP returns an interval bracketing e^x.
func EXP(x Value, precision int) Value {
	prec := precisionBits(precision)
	xf := scalarToFloat(x, precision)
	xf.SetPrec(prec)
	return widen(exponential(xf, prec), precision)
}

// exponential computes exp(x) via its Taylor series, exactly as
// robpike.io/ivy/value/power.go's exponential helper does, bounded to
// a fixed iteration count since callers only need modest precision.
func exponential(x *big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	xN := new(big.Float).SetPrec(prec).Set(x)
	term := new(big.Float).SetPrec(prec)
	n := new(big.Float).SetPrec(prec).Set(one)
	nFactorial := new(big.Float).SetPrec(prec).Set(one)
	z := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := new(big.Float).SetPrec(prec)
	threshold.SetMantExp(new(big.Float).SetPrec(prec).SetInt64(1), -int(prec)+8)

	for i := 0; i < 10000; i++ {
		term.Quo(xN, nFactorial)
		z.Add(z, term)
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
		xN.Mul(xN, x)
		n.Add(n, one)
		nFactorial.Mul(nFactorial, n)
	}
	return z
}

func absFloat(f *big.Float) *big.Float {
	return new(big.Float).Abs(f)
}

// LN returns an interval bracketing the natural log of x via a Newton
// iteration on exp, the approach robpike.io/ivy/value/log.go uses.
func LN(x Value, precision int) Value {
	if !positiveScalar(x) {
		rmerr.Errorf(rmerr.DomainError, "", "LN requires a positive argument")
	}
	prec := precisionBits(precision)
	xf := scalarToFloat(x, precision)
	xf.SetPrec(prec)
	return widen(floatLog(xf, prec), precision)
}

func floatLog(x *big.Float, prec uint) *big.Float {
	// Newton's method on f(y) = exp(y) - x: y -= 1 - x/exp(y).
	y := new(big.Float).SetPrec(prec)
	mant := new(big.Float).SetPrec(prec)
	exp := x.MantExp(mant)
	y.SetInt64(int64(exp))
	ln2 := lnTwo(prec)
	y.Mul(y, ln2)

	one := new(big.Float).SetPrec(prec).SetInt64(1)
	for i := 0; i < 200; i++ {
		ey := exponential(y, prec)
		ratio := new(big.Float).Quo(x, ey)
		delta := new(big.Float).Sub(ratio, one)
		y.Add(y, delta)
		if absFloat(delta).Cmp(smallThreshold(prec)) < 0 {
			break
		}
	}
	return y
}

func smallThreshold(prec uint) *big.Float {
	t := new(big.Float).SetPrec(prec)
	t.SetMantExp(new(big.Float).SetPrec(prec).SetInt64(1), -int(prec)+8)
	return t
}

// lnTwo computes ln(2) via the Taylor series for ln(1+x) at x = -1/2
// is slow to converge; instead use atanh(1/3)*2: ln(2) = 2*atanh(1/3).
func lnTwo(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Mul(atanhFloat(big.NewRat(1, 3), prec), big.NewFloat(2))
}

func atanhFloat(x *big.Rat, prec uint) *big.Float {
	// atanh(x) = x + x^3/3 + x^5/5 + ...
	xf := new(big.Float).SetPrec(prec).SetRat(x)
	xN := new(big.Float).SetPrec(prec).Set(xf)
	x2 := new(big.Float).SetPrec(prec).Mul(xf, xf)
	z := new(big.Float).SetPrec(prec).Set(xf)
	term := new(big.Float).SetPrec(prec)
	threshold := smallThreshold(prec)
	for n := int64(3); n < 10000; n += 2 {
		xN.Mul(xN, x2)
		term.Quo(xN, new(big.Float).SetPrec(prec).SetInt64(n))
		z.Add(z, term)
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
	}
	return z
}

// LOG returns an interval bracketing log base b of x; LN(x)/LN(b).
func LOG(x, b Value, precision int) Value {
	if !positiveScalar(x) || !positiveScalar(b) {
		rmerr.Errorf(rmerr.DomainError, "", "LOG requires positive arguments")
	}
	prec := precisionBits(precision)
	lnx := floatLog(scalarToFloat(x, precision), prec)
	lnb := floatLog(scalarToFloat(b, precision), prec)
	z := new(big.Float).SetPrec(prec).Quo(lnx, lnb)
	return widen(z, precision)
}

func positiveScalar(v Value) bool {
	switch v.kind {
	case IntegerKind:
		return v.i.Sign() > 0
	case RationalKind:
		return v.r.Sign() > 0
	case IntervalKind:
		lo, _ := v.Bounds()
		return lo.Sign() > 0
	}
	return false
}

// arctanFloat computes arctan(x) for a small rational x via its Taylor
// series, as robpike.io/ivy/value/asin.go does for related inverse
// trig functions.
func arctanFloat(x *big.Rat, prec uint) *big.Float {
	xf := new(big.Float).SetPrec(prec).SetRat(x)
	x2 := new(big.Float).SetPrec(prec).Mul(xf, xf)
	xN := new(big.Float).SetPrec(prec).Set(xf)
	z := new(big.Float).SetPrec(prec).Set(xf)
	term := new(big.Float).SetPrec(prec)
	threshold := smallThreshold(prec)
	sign := -1
	for n := int64(3); n < 20000; n += 2 {
		xN.Mul(xN, x2)
		term.Quo(xN, new(big.Float).SetPrec(prec).SetInt64(n))
		if sign < 0 {
			z.Sub(z, term)
		} else {
			z.Add(z, term)
		}
		sign = -sign
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
	}
	return z
}

// SIN, COS, TAN, ARCSIN, ARCCOS, ARCTAN bracket the respective
// trigonometric functions within the requested precision. Arguments
// and results are treated as radians, matching the convention in
// robpike.io/ivy/value/sin.go.
func SIN(x Value, precision int) Value {
	prec := precisionBits(precision)
	return widen(floatSin(scalarToFloat(x, precision), prec), precision)
}

func COS(x Value, precision int) Value {
	prec := precisionBits(precision)
	return widen(floatCos(scalarToFloat(x, precision), prec), precision)
}

func TAN(x Value, precision int) Value {
	prec := precisionBits(precision)
	s := floatSin(scalarToFloat(x, precision), prec)
	c := floatCos(scalarToFloat(x, precision), prec)
	if c.Sign() == 0 {
		rmerr.Errorf(rmerr.DomainError, "", "TAN undefined at pi/2 + k*pi")
	}
	return widen(new(big.Float).SetPrec(prec).Quo(s, c), precision)
}

func floatSin(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	xN := new(big.Float).SetPrec(prec).Set(x)
	z := new(big.Float).SetPrec(prec).Set(x)
	term := new(big.Float).SetPrec(prec)
	fact := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := smallThreshold(prec)
	sign := -1
	for n := int64(2); n < 1000; n += 2 {
		xN.Mul(xN, x2)
		fact.Mul(fact, new(big.Float).SetPrec(prec).SetInt64(n))
		fact.Mul(fact, new(big.Float).SetPrec(prec).SetInt64(n+1))
		term.Quo(xN, fact)
		if sign < 0 {
			z.Sub(z, term)
		} else {
			z.Add(z, term)
		}
		sign = -sign
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
	}
	return z
}

func floatCos(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	xN := new(big.Float).SetPrec(prec).SetInt64(1)
	z := new(big.Float).SetPrec(prec).SetInt64(1)
	term := new(big.Float).SetPrec(prec)
	fact := new(big.Float).SetPrec(prec).SetInt64(1)
	threshold := smallThreshold(prec)
	sign := -1
	for n := int64(1); n < 1000; n += 2 {
		xN.Mul(xN, x2)
		fact.Mul(fact, new(big.Float).SetPrec(prec).SetInt64(n))
		fact.Mul(fact, new(big.Float).SetPrec(prec).SetInt64(n+1))
		term.Quo(xN, fact)
		if sign < 0 {
			z.Sub(z, term)
		} else {
			z.Add(z, term)
		}
		sign = -sign
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
	}
	return z
}

func ARCSIN(x Value, precision int) Value {
	prec := precisionBits(precision)
	xf := scalarToFloat(x, precision)
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	if absFloat(xf).Cmp(one) > 0 {
		rmerr.Errorf(rmerr.DomainError, "", "ARCSIN domain is [-1,1]")
	}
	return widen(arcsinFloat(xf, prec), precision)
}

func arcsinFloat(x *big.Float, prec uint) *big.Float {
	// arcsin(x) = arctan(x / sqrt(1-x^2))
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	rest := new(big.Float).SetPrec(prec).Sub(one, x2)
	root := floatSqrtFloat(rest, prec)
	if root.Sign() == 0 {
		quarter := new(big.Float).SetPrec(prec)
		quarter.Mul(piRough(prec), big.NewFloat(0.5))
		if x.Sign() < 0 {
			quarter.Neg(quarter)
		}
		return quarter
	}
	ratio := new(big.Float).SetPrec(prec).Quo(x, root)
	return arctanFloatArg(ratio, prec)
}

func ARCCOS(x Value, precision int) Value {
	prec := precisionBits(precision)
	half := new(big.Float).SetPrec(prec)
	half.Mul(piRough(prec), big.NewFloat(0.5))
	asin := arcsinFloat(scalarToFloat(x, precision), prec)
	z := new(big.Float).SetPrec(prec).Sub(half, asin)
	return widen(z, precision)
}

func ARCTAN(x Value, precision int) Value {
	prec := precisionBits(precision)
	return widen(arctanFloatArg(scalarToFloat(x, precision), prec), precision)
}

// arctanFloatArg computes arctan for an arbitrary big.Float argument by
// range reduction to |x|<=1 (arctan(x) = pi/2 - arctan(1/x) for x>1).
func arctanFloatArg(x *big.Float, prec uint) *big.Float {
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	if absFloat(x).Cmp(one) <= 0 {
		r, _ := x.Rat(nil)
		if r != nil && r.IsInt() && r.Sign() == 0 {
			return new(big.Float).SetPrec(prec)
		}
		return arctanSeries(x, prec)
	}
	inv := new(big.Float).SetPrec(prec).Quo(one, x)
	half := new(big.Float).SetPrec(prec)
	half.Mul(piRough(prec), big.NewFloat(0.5))
	z := arctanSeries(inv, prec)
	if x.Sign() < 0 {
		half.Neg(half)
		z.Neg(z)
	}
	return new(big.Float).SetPrec(prec).Sub(half, z)
}

func arctanSeries(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	xN := new(big.Float).SetPrec(prec).Set(x)
	z := new(big.Float).SetPrec(prec).Set(x)
	term := new(big.Float).SetPrec(prec)
	threshold := smallThreshold(prec)
	sign := -1
	for n := int64(3); n < 200000; n += 2 {
		xN.Mul(xN, x2)
		term.Quo(xN, new(big.Float).SetPrec(prec).SetInt64(n))
		if sign < 0 {
			z.Sub(z, term)
		} else {
			z.Add(z, term)
		}
		sign = -sign
		if absFloat(term).Cmp(threshold) < 0 {
			break
		}
	}
	return z
}

func piRough(prec uint) *big.Float {
	a := arctanFloat(big.NewRat(1, 5), prec)
	b := arctanFloat(big.NewRat(1, 239), prec)
	pi := new(big.Float).SetPrec(prec)
	pi.Mul(a, big.NewFloat(4))
	pi.Sub(pi, b)
	pi.Mul(pi, big.NewFloat(4))
	return pi
}

func floatSqrtFloat(x *big.Float, prec uint) *big.Float {
	if x.Sign() <= 0 {
		return new(big.Float).SetPrec(prec)
	}
	z := new(big.Float).SetPrec(prec)
	mant := new(big.Float).SetPrec(prec)
	exp := x.MantExp(mant)
	z.SetMantExp(mant, exp/2)
	two := new(big.Float).SetPrec(prec).SetInt64(2)
	for i := 0; i < 200; i++ {
		num := new(big.Float).SetPrec(prec).Mul(z, z)
		num.Sub(num, x)
		den := new(big.Float).SetPrec(prec).Mul(two, z)
		num.Quo(num, den)
		z.Sub(z, num)
		if absFloat(num).Cmp(smallThreshold(prec)) < 0 {
			break
		}
	}
	return z
}

// NewtonRoot computes the n-th root of an interval's midpoint by
// Newton's method and returns the result as a Rational Interval of
// width bounded by precision. Mirrors robpike.io/ivy/value/sqrt.go's
// floatSqrt Newton loop generalized to arbitrary integer roots.
func NewtonRoot(v Value, n *big.Int, precision int) Value {
	prec := precisionBits(precision)
	x := scalarToFloat(v, precision)
	x.SetPrec(prec)
	if x.Sign() < 0 && n.Bit(0) == 0 {
		rmerr.Errorf(rmerr.DomainError, "", "even root of a negative number")
	}
	nf := new(big.Float).SetPrec(prec).SetInt(n)
	if x.Sign() == 0 {
		return widen(new(big.Float).SetPrec(prec), precision)
	}
	neg := x.Sign() < 0
	if neg {
		x = new(big.Float).SetPrec(prec).Neg(x)
	}
	z := new(big.Float).SetPrec(prec)
	mant := new(big.Float).SetPrec(prec)
	exp := x.MantExp(mant)
	z.SetMantExp(mant, exp/int(n.Int64()+1))
	one := new(big.Float).SetPrec(prec).SetInt64(1)
	nMinus1 := new(big.Float).SetPrec(prec).Sub(nf, one)
	for i := 0; i < 200; i++ {
		// z_{k+1} = ((n-1)*z_k + x/z_k^(n-1)) / n
		zPow := new(big.Float).SetPrec(prec).SetInt64(1)
		for j := int64(0); j < n.Int64()-1; j++ {
			zPow.Mul(zPow, z)
		}
		term := new(big.Float).SetPrec(prec).Quo(x, zPow)
		next := new(big.Float).SetPrec(prec).Mul(nMinus1, z)
		next.Add(next, term)
		next.Quo(next, nf)
		delta := new(big.Float).SetPrec(prec).Sub(next, z)
		z = next
		if absFloat(delta).Cmp(smallThreshold(prec)) < 0 {
			break
		}
	}
	if neg {
		z.Neg(z)
	}
	return widen(z, precision)
}

// RationalIntervalPower computes base^exponent for a non-integer
// exponent: x^y = exp(y * ln(x)).
func RationalIntervalPower(base, exp Value, precision int) Value {
	if !positiveScalar(base) {
		rmerr.Errorf(rmerr.DomainError, "", "non-integer power requires a positive base")
	}
	prec := precisionBits(precision)
	lnx := floatLog(scalarToFloat(base, precision), prec)
	y := scalarToFloat(exp, precision)
	y.SetPrec(prec)
	prod := new(big.Float).SetPrec(prec).Mul(y, lnx)
	return widen(exponential(prod, prec), precision)
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package number implements the parser's tagged value type: exact
// arbitrary-precision Integer, exact reduced Rational, and closed
// Interval with exact Rational endpoints, plus the arithmetic the parser
// drives. This is a sum type dispatched by a pair of tags, not a family
// of types dispatched by virtual calls -- the opposite choice from
// robpike.io/ivy/value, which dispatches Value operations through a Go
// interface implemented by Int/BigInt/BigRat/Vector/Matrix. The
// lower-level idioms carry over (big.Int/big.Rat wrapping,
// Errorf-panics-a-structured-error, "shrink" style narrowing) but the
// type family folds into one struct with a Kind tag instead.
package number

import (
	"math/big"

	"github.com/jostylr/ratmath/rmerr"
)

// Kind identifies which of the three variants a Value currently holds.
type Kind int

const (
	IntegerKind Kind = iota
	RationalKind
	IntervalKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "Integer"
	case RationalKind:
		return "Rational"
	case IntervalKind:
		return "Interval"
	}
	return "Unknown"
}

// Value is the parser's single result type: an exact Integer, an exact
// reduced Rational, or a closed Interval with exact Rational endpoints.
// Flags are provenance markers, read only by the promotion step
// (parse.promote), never by arithmetic.
type Value struct {
	kind Kind

	i *big.Int // valid iff kind == IntegerKind
	r *big.Rat // valid iff kind == RationalKind; always reduced, denom > 0

	lo, hi *big.Rat // valid iff kind == IntervalKind; lo <= hi

	explicitInterval bool // literal written with ':' -- never silently collapsed
	explicitFraction bool // literal written as "a/1"
	skipPromotion    bool // produced by ** or a transcendental
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// ExplicitInterval reports the explicit_interval provenance flag.
func (v Value) ExplicitInterval() bool { return v.explicitInterval }

// ExplicitFraction reports the explicit_fraction provenance flag.
func (v Value) ExplicitFraction() bool { return v.explicitFraction }

// SkipPromotion reports the skip_promotion provenance flag.
func (v Value) SkipPromotion() bool { return v.skipPromotion }

// WithExplicitInterval returns v with the explicit_interval flag set.
func (v Value) WithExplicitInterval() Value { v.explicitInterval = true; return v }

// WithExplicitFraction returns v with the explicit_fraction flag set.
func (v Value) WithExplicitFraction() Value { v.explicitFraction = true; return v }

// WithSkipPromotion returns v with the skip_promotion flag set.
func (v Value) WithSkipPromotion() Value { v.skipPromotion = true; return v }

// NewInteger wraps a *big.Int as an Integer value.
func NewInteger(z *big.Int) Value {
	return Value{kind: IntegerKind, i: new(big.Int).Set(z)}
}

// NewIntegerInt64 wraps an int64 as an Integer value.
func NewIntegerInt64(z int64) Value {
	return NewInteger(big.NewInt(z))
}

// NewRational wraps p/q, reduced to lowest terms with a positive
// denominator, as a Rational value. q must be non-zero.
func NewRational(p, q *big.Int) Value {
	if q.Sign() == 0 {
		rmerr.Errorf(rmerr.DivisionByZero, "", "rational denominator is zero")
	}
	r := new(big.Rat).SetFrac(p, q)
	return rationalFromRat(r)
}

func rationalFromRat(r *big.Rat) Value {
	// big.Rat.SetFrac already reduces and keeps the denominator's sign
	// folded into the numerator, so r.Sign() carries the value's sign
	// and r.Denom() is always positive; zero always normalizes to 0/1
	// (no negative-zero rationals).
	return Value{kind: RationalKind, r: r}
}

// Int returns the big.Int value of an Integer Value. Panics if v is not
// an Integer; callers must check Kind first.
func (v Value) Int() *big.Int {
	if v.kind != IntegerKind {
		panic("number: Int() on non-Integer Value")
	}
	return v.i
}

// Rat returns the big.Rat value of a Rational Value. Panics if v is not
// a Rational.
func (v Value) Rat() *big.Rat {
	if v.kind != RationalKind {
		panic("number: Rat() on non-Rational Value")
	}
	return v.r
}

// Bounds returns the lo/hi big.Rat endpoints of an Interval Value.
// Panics if v is not an Interval.
func (v Value) Bounds() (lo, hi *big.Rat) {
	if v.kind != IntervalKind {
		panic("number: Bounds() on non-Interval Value")
	}
	return v.lo, v.hi
}

// NewInterval builds a closed Interval with exact Rational endpoints,
// swapping lo/hi if given in reverse order so that lo <= hi always
// holds.
func NewInterval(lo, hi *big.Rat) Value {
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	return Value{kind: IntervalKind, lo: new(big.Rat).Set(lo), hi: new(big.Rat).Set(hi)}
}

// NewPointInterval builds a degenerate Interval(r, r).
func NewPointInterval(r *big.Rat) Value {
	return NewInterval(r, r)
}

// IsPoint reports whether an Interval has lo == hi. Panics on non-Interval.
func (v Value) IsPoint() bool {
	lo, hi := v.Bounds()
	return lo.Cmp(hi) == 0
}

// asRat returns the Rational representation of v when v is an Integer
// or Rational; it panics for Interval, which callers must handle via
// interval-specific code paths.
func (v Value) asRat() *big.Rat {
	switch v.kind {
	case IntegerKind:
		return new(big.Rat).SetInt(v.i)
	case RationalKind:
		return v.r
	}
	panic("number: asRat() on Interval Value")
}

// ToRational converts v to a Rational-kind Value, losslessly, whatever
// variant it started as a scalar (Integer or Rational); it is an error
// to call on an Interval.
func (v Value) ToRational() Value {
	switch v.kind {
	case IntegerKind:
		return rationalFromRat(new(big.Rat).SetInt(v.i))
	case RationalKind:
		return v
	}
	panic("number: ToRational() on Interval Value")
}

// ToInterval widens any Value to an Interval, as a point interval for
// scalars.
func (v Value) ToInterval() Value {
	switch v.kind {
	case IntegerKind:
		r := new(big.Rat).SetInt(v.i)
		return NewPointInterval(r)
	case RationalKind:
		return NewPointInterval(v.r)
	case IntervalKind:
		return v
	}
	panic("number: ToInterval() unknown kind")
}

// IsZero reports whether a scalar Value is exactly zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case IntegerKind:
		return v.i.Sign() == 0
	case RationalKind:
		return v.r.Sign() == 0
	case IntervalKind:
		lo, hi := v.Bounds()
		return lo.Sign() == 0 && hi.Sign() == 0
	}
	return false
}

// StraddlesZero reports whether an Interval contains 0 in its (closed)
// range; the point interval [0,0] counts as containing 0.
func (v Value) StraddlesZero() bool {
	lo, hi := v.Bounds()
	return lo.Sign() <= 0 && hi.Sign() >= 0
}

var (
	zeroInt = big.NewInt(0)
	oneInt  = big.NewInt(1)
)

// Zero is the canonical Integer zero.
func Zero() Value { return NewInteger(zeroInt) }

// One is the canonical Integer one.
func One() Value { return NewInteger(oneInt) }

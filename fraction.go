// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratmath

import (
	"fmt"
	"math/big"

	"github.com/jostylr/ratmath/number"
)

// Fraction is the numerator/denominator view of a scalar result, used
// by EvalFraction for callers who want the numerator and denominator as
// separate integers. The pair is taken from the value's reduced
// big.Rat, so it is always in lowest terms; an un-reduced form is not
// available. An Integer n maps to Fraction{n,1}.
type Fraction struct {
	Num, Den *big.Int
}

func (f Fraction) String() string {
	return fmt.Sprintf("%s/%s", f.Num, f.Den)
}

// FractionInterval is the Fraction-domain counterpart of an Interval:
// both endpoints expressed as Num/Den pairs.
type FractionInterval struct {
	Lo, Hi Fraction
}

func (fi FractionInterval) String() string {
	return fmt.Sprintf("%s:%s", fi.Lo, fi.Hi)
}

// ToFractionDomain remaps a tagged Value into the Fraction/FractionInterval
// domain: Integer and Rational become Fraction, Interval becomes
// FractionInterval. Unlike number.Value, nothing here is reduced beyond
// what big.Rat already carried -- this is purely a presentation-layer
// adapter for EvalFraction, not a new arithmetic representation.
func ToFractionDomain(v Value) interface{} {
	switch v.Kind() {
	case number.IntegerKind:
		return Fraction{Num: v.Int(), Den: big.NewInt(1)}
	case number.RationalKind:
		r := v.Rat()
		return Fraction{Num: r.Num(), Den: r.Denom()}
	case number.IntervalKind:
		lo, hi := v.Bounds()
		return FractionInterval{
			Lo: Fraction{Num: lo.Num(), Den: lo.Denom()},
			Hi: Fraction{Num: hi.Num(), Den: hi.Denom()},
		}
	}
	panic("ratmath: ToFractionDomain: unknown value kind")
}

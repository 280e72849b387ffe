// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
)

// promote applies the type-aware promotion step to the result of one
// operator evaluation. It is called after every
// Add/Sub/Mul/Div/Pow/MPow/Factorial/DoubleFactorial/Neg in the
// grammar -- "after each operator step, apply once" -- never
// recursively, and never inside the number package itself, since
// promotion is a parser-level policy, not an arithmetic one.
//
// In non-type-aware (compatibility) mode, promotion does not run at
// all, and the parser leaves every result as whatever shape the
// decoder or operator produced. The only widening in that mode happens
// at decode time, where decode.DecodeDecimal turns a decimal literal
// into its uncertainty interval; integer, fraction, and other scalar
// results are not coerced to intervals.
func promote(v number.Value, cfg *config.Config) number.Value {
	if !cfg.TypeAware() {
		return v
	}
	if v.Kind() != number.IntervalKind {
		return demoteFraction(v)
	}
	lo, hi := v.Bounds()
	if lo.Cmp(hi) != 0 {
		return v
	}
	// Point interval.
	if lo.IsInt() && !v.ExplicitInterval() && !v.SkipPromotion() {
		return number.NewInteger(lo.Num())
	}
	if !lo.IsInt() {
		return demoteFraction(number.NewRational(lo.Num(), lo.Denom()))
	}
	return v
}

// demoteFraction implements promotion rule 3: a Rational with
// denominator 1 and no explicit_fraction flag collapses to Integer.
func demoteFraction(v number.Value) number.Value {
	if v.Kind() != number.RationalKind {
		return v
	}
	r := v.Rat()
	if r.IsInt() && !v.ExplicitFraction() {
		return number.NewInteger(r.Num())
	}
	return v
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// DecodeInteger decodes a bare signed integer literal in bs.
func DecodeInteger(text string, pos int, bs *base.System) (number.Value, int, error) {
	c := newCursor(text, pos)
	run := scanSignedDigitRun(c, bs)
	if run == "" || run == "-" {
		return number.Value{}, pos, syntaxErr(text[pos:], "expected an integer literal")
	}
	z, err := bs.ForDigitScan().ToInteger(run)
	if err != nil {
		return number.Value{}, pos, invalidDigit(run, err.Error())
	}
	return number.NewInteger(z), c.pos, nil
}

func invalidDigit(context, msg string) error {
	return &rmerr.Error{Kind: rmerr.InvalidBaseDigit, Context: context, Message: msg}
}

// DecodeFraction decodes "a/b" in bs, treating the "/" as a fraction
// separator. The dispatcher (decodeCore) only routes here when a digit
// directly follows the "/", so a "/" followed by parse's spaced-slash
// sentinel ("/ " marks "division operator, not fraction separator")
// never reaches this decoder from there.
func DecodeFraction(text string, pos int, bs *base.System) (number.Value, int, error) {
	c := newCursor(text, pos)
	numStart := c.pos
	run := scanSignedDigitRun(c, bs)
	if run == "" || run == "-" {
		return number.Value{}, pos, syntaxErr(text[pos:], "expected numerator")
	}
	if !c.accept("/") {
		return number.Value{}, pos, syntaxErr(text[numStart:c.pos], "expected '/'")
	}
	denStart := c.pos
	denRun := scanDigitRun(c, bs)
	if denRun == "" {
		return number.Value{}, pos, syntaxErr(text[denStart:c.pos], "expected denominator")
	}
	num, err := bs.ForDigitScan().ToInteger(run)
	if err != nil {
		return number.Value{}, pos, invalidDigit(run, err.Error())
	}
	den, err := bs.ForDigitScan().ToInteger(denRun)
	if err != nil {
		return number.Value{}, pos, invalidDigit(denRun, err.Error())
	}
	if den.Sign() == 0 {
		return number.Value{}, pos, divByZero(text[pos:c.pos])
	}
	v := number.NewRational(num, den)
	explicit := den.Cmp(big.NewInt(1)) == 0
	if explicit {
		v = v.WithExplicitFraction()
	}
	return v, c.pos, nil
}

func divByZero(context string) error {
	return &rmerr.Error{Kind: rmerr.DivisionByZero, Context: context, Message: "division by zero"}
}

// DecodeMixed decodes "integer..fraction" -- a mixed number whose
// magnitude is |integer| + numerator/denominator, with the sign of
// integer applied to the whole.
func DecodeMixed(text string, pos int, bs *base.System) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos
	neg := c.accept("-")
	intRun := scanDigitRun(c, bs)
	if intRun == "" {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "expected integer part of mixed number")
	}
	if !c.acceptString("..") {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "expected '..' in mixed number")
	}
	fracVal, end, err := DecodeFraction(c.text, c.pos, bs)
	if err != nil {
		return number.Value{}, pos, err
	}
	whole, err := bs.ForDigitScan().ToInteger(intRun)
	if err != nil {
		return number.Value{}, pos, invalidDigit(intRun, err.Error())
	}
	fracRat := valueAsRat(fracVal)
	total := new(big.Rat).Add(new(big.Rat).SetInt(whole), fracRat)
	if neg {
		total.Neg(total)
	}
	return reduceRat(total), end, nil
}

func valueAsRat(v number.Value) *big.Rat {
	if v.Kind() == number.IntegerKind {
		return new(big.Rat).SetInt(v.Int())
	}
	return v.Rat()
}

// DecodeDecimal decodes a base-native fractional literal
// "integer.fractional". In type-aware mode this is the exact rational
// integer + fractional/base^len(fractional). In non-type-aware
// (compatibility) mode, the same text denotes the uncertainty interval
// [d.dddd - 5*base^-(k+1), d.dddd + 5*base^-(k+1)] where k is the
// number of fractional digits -- the last written digit is understood
// as ± half a unit at the next place.
func DecodeDecimal(text string, pos int, bs *base.System, cfg *config.Config) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos
	neg := c.accept("-")
	intRun := scanDigitRun(c, bs)
	if !c.accept(".") {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "expected '.' in decimal literal")
	}
	fracRun := scanDigitRun(c, bs)
	if intRun == "" && fracRun == "" {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "empty decimal literal")
	}

	intZ := big.NewInt(0)
	if intRun != "" {
		z, err := bs.ForDigitScan().ToInteger(intRun)
		if err != nil {
			return number.Value{}, pos, invalidDigit(intRun, err.Error())
		}
		intZ = z
	}
	fracZ := big.NewInt(0)
	if fracRun != "" {
		z, err := bs.ForDigitScan().ToInteger(fracRun)
		if err != nil {
			return number.Value{}, pos, invalidDigit(fracRun, err.Error())
		}
		fracZ = z
	}
	radix := big.NewInt(int64(bs.Base()))
	denom := new(big.Int).Exp(radix, big.NewInt(int64(len(fracRun))), nil)
	center := new(big.Rat).SetFrac(new(big.Int).Add(new(big.Int).Mul(intZ, denom), fracZ), denom)
	if neg {
		center.Neg(center)
	}

	if cfg.TypeAware() || fracRun == "" {
		return reduceRat(center), c.pos, nil
	}

	// Compatibility mode: widen to the uncertainty interval implied by
	// the last written digit.
	halfUnit := new(big.Rat).SetFrac(big.NewInt(5), new(big.Int).Mul(denom, radix))
	lo := new(big.Rat).Sub(center, halfUnit)
	hi := new(big.Rat).Add(center, halfUnit)
	if neg {
		lo, hi = hi, lo
	}
	return number.NewInterval(lo, hi), c.pos, nil
}


// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"fmt"
	"math/big"
	"strings"
)

// String renders v in the most natural exact textual form: plain
// decimal digits for an Integer, repeating-decimal notation "a.b#c" for
// a Rational (the form that round-trips exactly through the decoder),
// and "lo:hi" for an Interval. This mirrors
// robpike.io/ivy/value.BigRat.String, which also renders through a
// textual form chosen for round-trip fidelity rather than raw
// numerator/denominator, though that one picks "num/denom" where
// repeating-decimal is the round-trip contract this package uses for
// Rational.
func (v Value) String() string {
	switch v.kind {
	case IntegerKind:
		return v.i.String()
	case RationalKind:
		return RepeatingDecimalString(v.r)
	case IntervalKind:
		lo, hi := v.Bounds()
		return fmt.Sprintf("%s:%s", RepeatingDecimalString(lo), RepeatingDecimalString(hi))
	}
	return "?"
}

// RepeatingDecimalString renders r as "integer.fractional#repeat", with
// "#0" when the expansion terminates. This is the standard
// long-division cycle-detection algorithm: track the remainder seen at
// each step; a repeated remainder marks the start of the repeating
// block.
func RepeatingDecimalString(r *big.Rat) string {
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // always positive

	intPart := new(big.Int)
	rem := new(big.Int)
	intPart.QuoRem(num, den, rem)

	var frac strings.Builder
	seenAt := make(map[string]int)
	var remainders []*big.Int
	ten := big.NewInt(10)
	repeatStart := -1

	for rem.Sign() != 0 {
		key := rem.String()
		if idx, ok := seenAt[key]; ok {
			repeatStart = idx
			break
		}
		seenAt[key] = len(remainders)
		remainders = append(remainders, new(big.Int).Set(rem))

		rem.Mul(rem, ten)
		digit := new(big.Int)
		digit.QuoRem(rem, den, rem)
		frac.WriteString(digit.String())
	}

	fracStr := frac.String()
	nonRepeating, repeating := fracStr, "0"
	if repeatStart >= 0 {
		nonRepeating = fracStr[:repeatStart]
		repeating = fracStr[repeatStart:]
	}
	if nonRepeating == "" && repeatStart < 0 {
		nonRepeating = "0"
	}

	sign := ""
	if neg && (intPart.Sign() != 0 || fracStr != "") {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%s#%s", sign, intPart.String(), nonRepeating, repeating)
}

// RationalFromRepeatingDecimal reconstructs the exact rational encoded
// by RepeatingDecimalString's output; decode.DecodeRepeatingDecimal uses
// it to decode "a.b#c" literals. Kept here, next to the encoder, rather than in
// decode, since both directions of this specific conversion are really
// one concern.
func RationalFromRepeatingDecimal(intPart, fractional, repeat string) (*big.Rat, error) {
	if repeat == "0" || repeat == "" {
		whole := intPart + fractional
		n, ok := new(big.Int).SetString(whole, 10)
		if !ok {
			return nil, fmt.Errorf("invalid repeating-decimal literal")
		}
		den := pow10(len(fractional))
		return new(big.Rat).SetFrac(n, den), nil
	}
	withRepeat := intPart + fractional + repeat
	withoutRepeat := intPart + fractional
	nWith, ok := new(big.Int).SetString(withRepeat, 10)
	if !ok {
		return nil, fmt.Errorf("invalid repeating-decimal literal")
	}
	nWithout, ok := new(big.Int).SetString(withoutRepeat, 10)
	if !ok {
		return nil, fmt.Errorf("invalid repeating-decimal literal")
	}
	numerator := new(big.Int).Sub(nWith, nWithout)
	denominator := new(big.Int).Sub(pow10(len(fractional)+len(repeat)), pow10(len(fractional)))
	return new(big.Rat).SetFrac(numerator, denominator), nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

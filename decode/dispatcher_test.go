// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"
	"testing"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

func wantKind(t *testing.T, err error, kind rmerr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %s error, got nil", kind)
	}
	rmErr, ok := err.(*rmerr.Error)
	if !ok {
		t.Fatalf("expected *rmerr.Error, got %T (%v)", err, err)
	}
	if rmErr.Kind != kind {
		t.Errorf("got kind %s, want %s", rmErr.Kind, kind)
	}
}

func mustDecode(t *testing.T, text string, cfg *config.Config) (number.Value, int) {
	t.Helper()
	v, end, err := DecodeLiteral(text, 0, cfg)
	if err != nil {
		t.Fatalf("DecodeLiteral(%q) = %v", text, err)
	}
	return v, end
}

func wantInt(t *testing.T, v number.Value, want int64) {
	t.Helper()
	if v.Kind() != number.IntegerKind {
		t.Fatalf("got kind %s, want Integer", v.Kind())
	}
	if v.Int().Cmp(big.NewInt(want)) != 0 {
		t.Errorf("got %s, want %d", v.Int(), want)
	}
}

func wantRat(t *testing.T, v number.Value, n, d int64) {
	t.Helper()
	var r *big.Rat
	switch v.Kind() {
	case number.RationalKind:
		r = v.Rat()
	case number.IntegerKind:
		r = new(big.Rat).SetInt(v.Int())
	default:
		t.Fatalf("got kind %s, want Rational or Integer", v.Kind())
	}
	want := big.NewRat(n, d)
	if r.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", r, want)
	}
}

func TestDecodeBareInteger(t *testing.T) {
	v, end := mustDecode(t, "1234", nil)
	wantInt(t, v, 1234)
	if end != 4 {
		t.Errorf("consumed %d bytes, want 4", end)
	}
}

func TestDecodeNegativeInteger(t *testing.T) {
	v, _ := mustDecode(t, "-42", nil)
	wantInt(t, v, -42)
}

func TestDecodeFraction(t *testing.T) {
	v, _ := mustDecode(t, "3/4", nil)
	wantRat(t, v, 3, 4)
}

func TestDecodeFractionExplicitDenomOne(t *testing.T) {
	v, _ := mustDecode(t, "5/1", nil)
	if v.Kind() != number.RationalKind {
		t.Fatalf("5/1 should decode as Rational (explicit_fraction), got %s", v.Kind())
	}
	if !v.ExplicitFraction() {
		t.Error("5/1 should carry explicit_fraction")
	}
}

func TestDecodeMixedNumber(t *testing.T) {
	v, _ := mustDecode(t, "2..1/3", nil)
	wantRat(t, v, 7, 3)
}

func TestDecodeMixedNumberNegative(t *testing.T) {
	v, _ := mustDecode(t, "-2..1/3", nil)
	wantRat(t, v, -7, 3)
}

func TestDecodeDecimal(t *testing.T) {
	v, _ := mustDecode(t, "1.5", nil)
	wantRat(t, v, 3, 2)
}

func TestDecodeDecimalNonTypeAwareWidensToInterval(t *testing.T) {
	cfg := config.New()
	cfg.SetTypeAware(false)
	v, _ := mustDecode(t, "1.5", cfg)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("non-type-aware 1.5 should decode as Interval, got %s", v.Kind())
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(145, 100)
	wantHi := big.NewRat(155, 100)
	if lo.Cmp(wantLo) != 0 || hi.Cmp(wantHi) != 0 {
		t.Errorf("1.5 -> [%s,%s], want [%s,%s]", lo, hi, wantLo, wantHi)
	}
}

func TestDecodeRepeatingDecimalTerminatesOnZero(t *testing.T) {
	v, _ := mustDecode(t, "1.5#0", nil)
	wantRat(t, v, 3, 2)
}

func TestDecodeRepeatingDecimalOneThird(t *testing.T) {
	// 0.#3 = 1/3
	v, _ := mustDecode(t, "0.#3", nil)
	wantRat(t, v, 1, 3)
}

func TestDecodeRepeatingDecimalTwoThirds(t *testing.T) {
	v, _ := mustDecode(t, "0.#6", nil)
	wantRat(t, v, 2, 3)
}

func TestDecodeContinuedFractionPiConvergent(t *testing.T) {
	v, _ := mustDecode(t, "3.~7~15~1~292", nil)
	wantRat(t, v, 103993, 33102)
}

func TestDecodeContinuedFractionZeroMeansInteger(t *testing.T) {
	v, _ := mustDecode(t, "5.~0", nil)
	wantInt(t, v, 5)
}

func TestDecodeContinuedFractionInterval(t *testing.T) {
	v, end, err := DecodeLiteral("3.~7:3.~7~16", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if v.Kind() != number.IntervalKind {
		t.Fatalf("got kind %s, want Interval", v.Kind())
	}
	if !v.ExplicitInterval() {
		t.Error("continued-fraction interval should carry explicit_interval")
	}
	if end != len("3.~7:3.~7~16") {
		t.Errorf("consumed %d, want %d", end, len("3.~7:3.~7~16"))
	}
}

func TestDecodePrefixHex(t *testing.T) {
	v, _ := mustDecode(t, "0xFF", nil)
	wantInt(t, v, 255)
}

func TestDecodePrefixBinary(t *testing.T) {
	v, _ := mustDecode(t, "0b101", nil)
	wantInt(t, v, 5)
}

func TestDecodePrefixOctal(t *testing.T) {
	v, _ := mustDecode(t, "0o17", nil)
	wantInt(t, v, 15)
}

func TestDecodePrefixNegativeHex(t *testing.T) {
	v, _ := mustDecode(t, "-0xFF", nil)
	wantInt(t, v, -255)
}

func TestDecodePrefixInheritsInputBase(t *testing.T) {
	cfg := config.New()
	three, err := base.FromBase(3)
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetInputBase(three)
	v, _ := mustDecode(t, "0D12", cfg)
	wantInt(t, v, 5) // "12" base 3 = 1*3+2 = 5
}

func TestDecodeUnprefixedUsesInputBase(t *testing.T) {
	cfg := config.New()
	three, err := base.FromBase(3)
	if err != nil {
		t.Fatal(err)
	}
	cfg.SetInputBase(three)
	v, _ := mustDecode(t, "12", cfg)
	wantInt(t, v, 5)
}

func TestDecodeUncertaintyRange(t *testing.T) {
	v, _, err := DecodeLiteral("1.23[56,67]", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if v.Kind() != number.IntervalKind {
		t.Fatalf("got kind %s, want Interval", v.Kind())
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(12356, 10000)
	wantHi := big.NewRat(12367, 10000)
	if lo.Cmp(wantLo) != 0 {
		t.Errorf("lo = %s, want %s", lo, wantLo)
	}
	if hi.Cmp(wantHi) != 0 {
		t.Errorf("hi = %s, want %s", hi, wantHi)
	}
}

func TestDecodeUncertaintySymmetric(t *testing.T) {
	// Center "1.5" has 1 fractional digit, so a symmetric offset scales
	// by inputBase^-(1+1) = 1/100; an integer offset of "1" therefore
	// widens by 0.01 on each side.
	v, _, err := DecodeLiteral("1.5[+-1]", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(149, 100)
	wantHi := big.NewRat(151, 100)
	if lo.Cmp(wantLo) != 0 || hi.Cmp(wantHi) != 0 {
		t.Errorf("1.5[+-1] -> [%s,%s], want [%s,%s]", lo, hi, wantLo, wantHi)
	}
}

func TestDecodeUncertaintyRelative(t *testing.T) {
	// Same 1/100 scale as the symmetric case; "+2" and "-1" give an
	// asymmetric interval around the center.
	v, _, err := DecodeLiteral("1.5[+2-1]", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(149, 100)
	wantHi := big.NewRat(152, 100)
	if lo.Cmp(wantLo) != 0 || hi.Cmp(wantHi) != 0 {
		t.Errorf("1.5[+2-1] -> [%s,%s], want [%s,%s]", lo, hi, wantLo, wantHi)
	}
}

func TestDecodeScientificDecimal(t *testing.T) {
	// 5E-3 = 5 * 10^-3 = 1/200
	v, _, err := DecodeLiteral("5E-3", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	wantRat(t, v, 1, 200)
}

func TestDecodeScientificUnderscoreCaret(t *testing.T) {
	cfg := config.New()
	sixteen := base.Hexadecimal()
	cfg.SetInputBase(sixteen)
	v, _, err := DecodeLiteral("2_^2", 0, cfg)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	// 2 * 16^2 = 512
	wantInt(t, v, 512)
}

func TestDecodeExplicitInterval(t *testing.T) {
	v, _, err := DecodeLiteral("5:1", 0, nil)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if v.Kind() != number.IntervalKind {
		t.Fatalf("got kind %s, want Interval", v.Kind())
	}
	lo, hi := v.Bounds()
	if lo.Cmp(big.NewRat(1, 1)) != 0 || hi.Cmp(big.NewRat(5, 1)) != 0 {
		t.Errorf("5:1 -> [%s,%s], want [1,5] (swapped)", lo, hi)
	}
	if !v.ExplicitInterval() {
		t.Error("a:b literal should carry explicit_interval")
	}
}

func TestDecodeFractionDivisionByZero(t *testing.T) {
	_, _, err := DecodeLiteral("1/0", 0, nil)
	if err == nil {
		t.Fatal("expected division-by-zero error for 1/0")
	}
}

func TestDecodeInvalidBaseDigit(t *testing.T) {
	_, _, err := DecodeLiteral("0b102", 0, nil)
	if err == nil {
		t.Fatal("expected an error for an invalid binary digit")
	}
}

func TestDecodeInvalidPrefix(t *testing.T) {
	_, _, err := DecodeLiteral("0q5", 0, nil)
	if err == nil {
		t.Fatal("expected an error for an unregistered prefix letter")
	}
}

func TestDecodeMixedCaseHexDigits(t *testing.T) {
	// Hex's natural alphabet is single-case (0-9a-f); scanning is
	// case-insensitive, so a run mixing both cases must still decode
	// (not just scan past without error).
	v, _ := mustDecode(t, "0xfF", nil)
	wantInt(t, v, 255)
}

func TestUnsupportedCompositionEAfterBareFraction(t *testing.T) {
	_, _, err := DecodeLiteral("1/2E3", 0, nil)
	wantKind(t, err, rmerr.UnsupportedComposition)
}

func TestUnsupportedCompositionEAfterMixedNumber(t *testing.T) {
	_, _, err := DecodeLiteral("2..1/3E1", 0, nil)
	wantKind(t, err, rmerr.UnsupportedComposition)
}

func TestUnsupportedCompositionScientificUncertaintyCenter(t *testing.T) {
	_, _, err := DecodeLiteral("2.5E-1[+-1]", 0, nil)
	wantKind(t, err, rmerr.UnsupportedComposition)
}

func TestUnsupportedCompositionNestedIntervalExplicit(t *testing.T) {
	_, _, err := DecodeLiteral("1:2[+-1]", 0, nil)
	wantKind(t, err, rmerr.UnsupportedComposition)
}

func TestUnsupportedCompositionNestedIntervalNonTypeAware(t *testing.T) {
	cfg := config.New()
	cfg.SetTypeAware(false)
	_, _, err := DecodeLiteral("1.5:2", 0, cfg)
	wantKind(t, err, rmerr.UnsupportedComposition)
}

func TestDeprecatedBracketBaseLegacyNotation(t *testing.T) {
	_, _, err := DecodeLiteral("255[16]", 0, nil)
	wantKind(t, err, rmerr.DeprecatedBracketBase)
}

func TestDecodeContinuedFractionRejectsZeroMidSequence(t *testing.T) {
	_, _, err := DecodeLiteral("3.~7~0~2", 0, nil)
	if err == nil {
		t.Fatal("expected an error for a mid-sequence zero term")
	}
}

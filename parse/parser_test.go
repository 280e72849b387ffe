// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"math/big"
	"testing"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
)

func mustParse(t *testing.T, expr string, cfg *config.Config) number.Value {
	t.Helper()
	v, err := Parse(expr, cfg)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", expr, err)
	}
	return v
}

func wantInteger(t *testing.T, v number.Value, want int64) {
	t.Helper()
	if v.Kind() != number.IntegerKind {
		t.Fatalf("got kind %s (%s), want Integer(%d)", v.Kind(), v, want)
	}
	if v.Int().Cmp(big.NewInt(want)) != 0 {
		t.Errorf("got %s, want %d", v.Int(), want)
	}
}

func wantRational(t *testing.T, v number.Value, n, d int64) {
	t.Helper()
	want := big.NewRat(n, d)
	var got *big.Rat
	switch v.Kind() {
	case number.RationalKind:
		got = v.Rat()
	case number.IntegerKind:
		got = new(big.Rat).SetInt(v.Int())
	default:
		t.Fatalf("got kind %s, want Rational/Integer", v.Kind())
	}
	if got.Cmp(want) != 0 {
		t.Errorf("got %s, want %s", got, want)
	}
}

// Worked scenarios covering the documented decoder/grammar shapes.

func TestFractionAdditionPromotesToInteger(t *testing.T) {
	wantInteger(t, mustParse(t, "3/4 + 1/4", nil), 1)
}

func TestMixedNumberLiteral(t *testing.T) {
	wantRational(t, mustParse(t, "2..1/3", nil), 7, 3)
}

func TestUncertaintyRangeLiteral(t *testing.T) {
	v := mustParse(t, "1.23[56,67]", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("got kind %s, want Interval", v.Kind())
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(12356, 10000)
	wantHi := big.NewRat(12367, 10000)
	if lo.Cmp(wantLo) != 0 || hi.Cmp(wantHi) != 0 {
		t.Errorf("1.23[56,67] = [%s,%s], want [%s,%s]", lo, hi, wantLo, wantHi)
	}
}

func TestRepeatingDecimalsSumToInteger(t *testing.T) {
	wantInteger(t, mustParse(t, "0.#3 + 0.#6", nil), 1)
}

func TestMultiplicativePowerStaysInterval(t *testing.T) {
	v := mustParse(t, "2**3", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("2**3 should stay Interval (skip_promotion), got %s (%s)", v.Kind(), v)
	}
	if !v.SkipPromotion() {
		t.Error("2**3 should carry skip_promotion")
	}
	lo, hi := v.Bounds()
	if lo.Cmp(big.NewRat(8, 1)) != 0 || hi.Cmp(big.NewRat(8, 1)) != 0 {
		t.Errorf("2**3 = [%s,%s], want [8,8]", lo, hi)
	}
}

func TestPrefixedBaseArithmetic(t *testing.T) {
	wantInteger(t, mustParse(t, "0xFF - 0b101", nil), 250)
}

func TestContinuedFractionPiConvergent(t *testing.T) {
	wantRational(t, mustParse(t, "3.~7~15~1~292", nil), 103993, 33102)
}

func TestScientificNotation(t *testing.T) {
	wantRational(t, mustParse(t, "5E-3", nil), 1, 200)
}

func TestBase3RegisteredPrefix(t *testing.T) {
	// A custom prefix letter 't' registered to ternary (base 3) -- 't' is
	// not one of the standard x/b/o prefixes, so register it on an
	// isolated Registry rather than mutating the process-wide default.
	three, err := base.FromBase(3)
	if err != nil {
		t.Fatal(err)
	}
	reg := base.NewRegistry()
	if err := reg.Register('t', three); err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.SetInputBase(three)
	cfg.SetRegistry(reg)
	wantInteger(t, mustParse(t, "0t12", cfg), 5) // "12" read in base 3 = 1*3+2
}

func TestBase3InputBaseInheritedByD(t *testing.T) {
	three, err := base.FromBase(3)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.SetInputBase(three)
	wantInteger(t, mustParse(t, "0D12", cfg), 5)
}

// Additional grammar coverage.

func TestOperatorPrecedence(t *testing.T) {
	wantInteger(t, mustParse(t, "2 + 3 * 4", nil), 14)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	wantInteger(t, mustParse(t, "(2 + 3) * 4", nil), 20)
}

func TestUnaryMinus(t *testing.T) {
	wantInteger(t, mustParse(t, "-5 + 3", nil), -2)
}

func TestFactorial(t *testing.T) {
	wantInteger(t, mustParse(t, "5!", nil), 120)
}

func TestDoubleFactorial(t *testing.T) {
	wantInteger(t, mustParse(t, "6!!", nil), 48) // 6*4*2
}

func TestUnaryMinusAppliesAfterFactorial(t *testing.T) {
	// '-' negates the whole factor that follows it, including any
	// postfix '!' that factor applies, so "-5!" is -(5!) = -120, not a
	// negative-factorial error. (Factorial itself still panics on a
	// literal negative operand; see number.TestFactorialNegativePanics.)
	wantInteger(t, mustParse(t, "-5!", nil), -120)
}

func TestUnaryMinusAppliesAfterExponent(t *testing.T) {
	// Likewise '-' binds more loosely than '^': "-2^2" is -(2^2) = -4,
	// not (-2)^2 = 4.
	wantInteger(t, mustParse(t, "-2^2", nil), -4)
}

func TestUnaryMinusBelongsToUncertaintyLiteral(t *testing.T) {
	// The one exception: a '-' immediately in front of an
	// uncertainty-bracket or explicit ':' interval literal is absorbed by
	// the literal itself, since negating the literal after the fact would
	// anchor the offsets to the wrong center.
	v := mustParse(t, "-3[+-1]", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("got kind %s, want Interval", v.Kind())
	}
	lo, hi := v.Bounds()
	wantLo := big.NewRat(-31, 10)
	wantHi := big.NewRat(-29, 10)
	if lo.Cmp(wantLo) != 0 || hi.Cmp(wantHi) != 0 {
		t.Errorf("-3[+-1] = [%s,%s], want [%s,%s]", lo, hi, wantLo, wantHi)
	}
}

func TestExponentiation(t *testing.T) {
	wantInteger(t, mustParse(t, "2^10", nil), 1024)
}

func TestRightAssociativeExponentiation(t *testing.T) {
	// 2^3^2 = 2^(3^2) = 2^9 = 512 (right-associative).
	wantInteger(t, mustParse(t, "2^3^2", nil), 512)
}

func TestSpacedEIsPlainMultiplication(t *testing.T) {
	// "2 E-1" (space before E): a spaced E drops to the multiplicative
	// operator's own precedence and behaves exactly like '*' -- "-1" is
	// parsed as an ordinary factor, not as a power-of-ten exponent, so
	// this is 2 * (-1) = -2, unlike tight "2E-1" which is scientific
	// notation.
	wantInteger(t, mustParse(t, "2 E-1", nil), -2)
}

func TestTightEIsScientificNotation(t *testing.T) {
	// Without the space, "2E-1" is tight scientific notation: 2 * 10^-1.
	wantRational(t, mustParse(t, "2E-1", nil), 1, 5)
}

func TestTightEBindsBeforeExponent(t *testing.T) {
	// Tight E binds to the literal before '^' applies: "2E1^2" = (2E1)^2
	// = 20^2 = 400, not 2*(1^2)=2E1 style surprises.
	wantInteger(t, mustParse(t, "2E1^2", nil), 400)
}

func TestDivisionVsFractionSentinel(t *testing.T) {
	// "1/2" is a fraction literal; "1/ 2" (slash-space) forces division.
	wantRational(t, mustParse(t, "1/2", nil), 1, 2)
	wantRational(t, mustParse(t, "1/ 2", nil), 1, 2)
}

func TestEmptyInputErrors(t *testing.T) {
	_, err := Parse("   ", nil)
	if err == nil {
		t.Fatal("expected EmptyInput error for blank expression")
	}
}

func TestUnbalancedParenErrors(t *testing.T) {
	_, err := Parse("(1 + 2", nil)
	if err == nil {
		t.Fatal("expected a syntax error for an unbalanced paren")
	}
}

func TestTrailingGarbageErrors(t *testing.T) {
	_, err := Parse("1 + 2 3", nil)
	if err == nil {
		t.Fatal("expected a syntax error for trailing input")
	}
}

func TestZeroToZeroErrors(t *testing.T) {
	_, err := Parse("0^0", nil)
	if err == nil {
		t.Fatal("expected an error for 0^0")
	}
}

func TestDivisionByZeroErrors(t *testing.T) {
	_, err := Parse("1/0", nil)
	if err == nil {
		t.Fatal("expected a division-by-zero error for the literal 1/0")
	}
}

func TestFunctionCallPI(t *testing.T) {
	v := mustParse(t, "PI", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("PI should be an Interval, got %s", v.Kind())
	}
	if !v.ExplicitInterval() {
		t.Error("PI should carry explicit_interval")
	}
	lo, hi := v.Bounds()
	// Bracket PI between 3.14 and 3.15 at the default precision.
	if lo.Cmp(big.NewRat(314, 100)) < 0 || hi.Cmp(big.NewRat(315, 100)) > 0 {
		t.Errorf("PI = [%s,%s], want a tight bracket around 3.14159...", lo, hi)
	}
}

func TestFunctionCallWithPrecisionBracket(t *testing.T) {
	v := mustParse(t, "PI[-10]", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("PI[-10] should be an Interval, got %s", v.Kind())
	}
	lo, hi := v.Bounds()
	width := new(big.Rat).Sub(hi, lo)
	if width.Sign() < 0 {
		t.Fatalf("PI[-10] interval has lo > hi")
	}
	tenToMinus6 := big.NewRat(1, 1000000)
	if width.Cmp(tenToMinus6) >= 0 {
		t.Errorf("PI[-10] width %s should be tighter than the default precision's %s", width, tenToMinus6)
	}
}

func TestNonTypeAwareOptionWidensDecimals(t *testing.T) {
	cfg := config.New()
	cfg.SetTypeAware(false)
	v := mustParse(t, "1.5", cfg)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("non-type-aware 1.5 should parse as Interval, got %s", v.Kind())
	}
}

func TestExplicitIntervalNeverCollapses(t *testing.T) {
	// "5:5" is an explicit point interval and must not collapse to
	// Integer(5) even though it is mathematically a point.
	v := mustParse(t, "5:5", nil)
	if v.Kind() != number.IntervalKind {
		t.Fatalf("5:5 should stay Interval, got %s", v.Kind())
	}
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"math/big"
	"testing"
)

func TestNewRejectsReservedSymbols(t *testing.T) {
	_, err := New("bad", []rune("01234567+9"))
	if err == nil {
		t.Fatal("expected an error for a digit set containing '+'")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New("bad", []rune("0123401"))
	if err == nil {
		t.Fatal("expected an error for duplicate digits")
	}
}

func TestNewRejectsTooFewDigits(t *testing.T) {
	_, err := New("bad", []rune("0"))
	if err == nil {
		t.Fatal("expected an error for fewer than 2 digits")
	}
}

func TestToIntegerFromIntegerRoundTrip(t *testing.T) {
	cases := []*System{Binary(), Octal(), Decimal(), Hexadecimal(), Base36(), Base62()}
	values := []int64{0, 1, 7, 255, 123456789, -42, -1}
	for _, bs := range cases {
		for _, v := range values {
			z := big.NewInt(v)
			s := bs.FromInteger(z)
			back, err := bs.ToInteger(s)
			if err != nil {
				t.Fatalf("%s: ToInteger(%q) after FromInteger(%d): %v", bs.Name(), s, v, err)
			}
			if back.Cmp(z) != 0 {
				t.Errorf("%s: round trip %d -> %q -> %s, want %d", bs.Name(), v, s, back, v)
			}
		}
	}
}

func TestToIntegerInvalidDigit(t *testing.T) {
	_, err := Hexadecimal().ToInteger("FG")
	if err == nil {
		t.Fatal("expected an error for 'G' in base 16")
	}
}

func TestIsValid(t *testing.T) {
	hex := Hexadecimal()
	if !hex.IsValid("ff") {
		t.Error("lowercase hex digits should be valid under the raw System")
	}
	if hex.IsValid("") {
		t.Error("empty string must not be valid")
	}
	if hex.IsValid("g") {
		t.Error("'g' is not a hex digit")
	}
}

func TestForDigitScanIsCaseInsensitiveUpTo36(t *testing.T) {
	hex := Hexadecimal()
	scan := hex.ForDigitScan()
	if !scan.IsValid("F") || !scan.IsValid("f") {
		t.Error("hex digit-scan view should accept both cases")
	}
}

func TestForDigitScanPreservesCaseAbove36(t *testing.T) {
	b62 := Base62()
	scan := b62.ForDigitScan()
	if scan != b62 {
		t.Error("base 62 must keep its case-sensitive alphabet for digit scanning")
	}
	if !scan.IsValid("a") || !scan.IsValid("A") {
		t.Error("both cases of a letter are distinct valid digits in base 62")
	}
}

func TestFromBaseRange(t *testing.T) {
	if _, err := FromBase(1); err == nil {
		t.Error("base 1 should be rejected")
	}
	if _, err := FromBase(63); err == nil {
		t.Error("base 63 should be rejected")
	}
	if _, err := FromBase(2); err != nil {
		t.Error("base 2 should be accepted")
	}
	if _, err := FromBase(62); err != nil {
		t.Error("base 62 should be accepted")
	}
}

func TestRomanIsNoveltyBaseSeven(t *testing.T) {
	r := Roman()
	if r.Base() != 7 {
		t.Errorf("Roman base = %d, want 7", r.Base())
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()
	if sys, ok := r.Lookup('x'); !ok || sys.Base() != 16 {
		t.Error("'x' should be registered to hexadecimal by default")
	}
	if sys, ok := r.Lookup('b'); !ok || sys.Base() != 2 {
		t.Error("'b' should be registered to binary by default")
	}
	if sys, ok := r.Lookup('o'); !ok || sys.Base() != 8 {
		t.Error("'o' should be registered to octal by default")
	}
}

func TestRegistryRejectsReservedLetters(t *testing.T) {
	r := NewRegistry()
	if err := r.Register('e', Decimal()); err == nil {
		t.Error("'e' must be rejected: it is the scientific-notation marker")
	}
	if err := r.Register('d', Decimal()); err == nil {
		t.Error("'d' must be rejected: it is the input-base sentinel")
	}
}

func TestIsInputBaseSentinel(t *testing.T) {
	if !IsInputBaseSentinel('d') || !IsInputBaseSentinel('D') {
		t.Error("'d'/'D' must be recognized as the input-base sentinel")
	}
	if IsInputBaseSentinel('x') {
		t.Error("'x' is not the sentinel")
	}
}

func TestRegistryRegisterAndUnregister(t *testing.T) {
	r := NewRegistry()
	ternary, _ := FromBase(3)
	if err := r.Register('t', ternary); err != nil {
		t.Fatalf("Register('t', ...) failed: %v", err)
	}
	if sys, ok := r.Lookup('t'); !ok || sys.Base() != 3 {
		t.Error("'t' should now resolve to a base-3 system")
	}
	r.Unregister('t')
	if _, ok := r.Lookup('t'); ok {
		t.Error("'t' should be gone after Unregister")
	}
}

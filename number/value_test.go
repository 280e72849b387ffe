// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"
	"testing"
)

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

func TestNewRationalReduces(t *testing.T) {
	v := NewRational(big.NewInt(6), big.NewInt(4))
	if v.Kind() != RationalKind {
		t.Fatalf("6/4 should reduce to a Rational, got %s", v.Kind())
	}
	r := v.Rat()
	if r.Num().Int64() != 3 || r.Denom().Int64() != 2 {
		t.Errorf("6/4 reduced to %s, want 3/2", r)
	}
}

func TestNewRationalDoesNotCollapseToInteger(t *testing.T) {
	// NewRational itself does not collapse denom-1 results to Integer --
	// that's promotion's job (component D) -- so this documents the
	// boundary: callers needing the narrowest shape go through promote.
	v := NewRational(big.NewInt(4), big.NewInt(2))
	if v.Kind() != RationalKind {
		t.Fatalf("NewRational never auto-narrows to Integer, got %s", v.Kind())
	}
	if !v.Rat().IsInt() {
		t.Error("4/2 should reduce to an integer-valued rational")
	}
}

func TestNewRationalZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic constructing p/0")
		}
	}()
	NewRational(big.NewInt(1), big.NewInt(0))
}

func TestNewIntervalSwapsReversedEndpoints(t *testing.T) {
	v := NewInterval(rat(5, 1), rat(1, 1))
	lo, hi := v.Bounds()
	if lo.Cmp(rat(1, 1)) != 0 || hi.Cmp(rat(5, 1)) != 0 {
		t.Errorf("NewInterval(5,1) = [%s,%s], want [1,5]", lo, hi)
	}
}

func TestIsPoint(t *testing.T) {
	if !NewPointInterval(rat(3, 2)).IsPoint() {
		t.Error("a point interval should report IsPoint")
	}
	if NewInterval(rat(1, 1), rat(2, 1)).IsPoint() {
		t.Error("a non-degenerate interval should not report IsPoint")
	}
}

func TestStraddlesZero(t *testing.T) {
	if !NewInterval(rat(-1, 1), rat(1, 1)).StraddlesZero() {
		t.Error("[-1,1] should straddle zero")
	}
	if NewInterval(rat(1, 1), rat(2, 1)).StraddlesZero() {
		t.Error("[1,2] should not straddle zero")
	}
}

func TestToIntervalWidensScalars(t *testing.T) {
	iv := NewIntegerInt64(5).ToInterval()
	lo, hi := iv.Bounds()
	if lo.Cmp(hi) != 0 || lo.Cmp(rat(5, 1)) != 0 {
		t.Errorf("ToInterval(5) = [%s,%s], want point interval at 5", lo, hi)
	}
}

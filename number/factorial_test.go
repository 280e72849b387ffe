// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"
	"testing"
)

func TestFactorialSmallValues(t *testing.T) {
	cases := []struct {
		n, want int64
	}{
		{0, 1}, {1, 1}, {2, 2}, {5, 120}, {10, 3628800},
	}
	for _, c := range cases {
		v := Factorial(NewIntegerInt64(c.n))
		if v.Kind() != IntegerKind || v.Int().Int64() != c.want {
			t.Errorf("%d! = %v, want %d", c.n, v, c.want)
		}
	}
}

func TestFactorialNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for (-1)!")
		}
	}()
	Factorial(NewIntegerInt64(-1))
}

func TestFactorialOnPointIntervalOfInteger(t *testing.T) {
	v := Factorial(NewPointInterval(big.NewRat(5, 1)))
	if v.Kind() != IntegerKind || v.Int().Int64() != 120 {
		t.Errorf("5! via point interval = %v, want Integer(120)", v)
	}
}

func TestFactorialOnIntegerValuedRational(t *testing.T) {
	// (6/1)! -- an integer-valued Rational (explicit_fraction from a
	// literal like "6/1") must be accepted the same as a plain Integer.
	v := Factorial(NewRational(big.NewInt(6), big.NewInt(1)))
	if v.Kind() != IntegerKind || v.Int().Int64() != 720 {
		t.Errorf("(6/1)! = %v, want Integer(720)", v)
	}
}

func TestDoubleFactorial(t *testing.T) {
	cases := []struct {
		n, want int64
	}{
		{0, 1}, {1, 1}, {5, 15}, {6, 48},
	}
	for _, c := range cases {
		v := DoubleFactorial(NewIntegerInt64(c.n))
		if v.Kind() != IntegerKind || v.Int().Int64() != c.want {
			t.Errorf("%d!! = %v, want %d", c.n, v, c.want)
		}
	}
}

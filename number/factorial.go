// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import (
	"math/big"

	"github.com/jostylr/ratmath/rmerr"
)

// Factorial and DoubleFactorial apply only to non-negative integers or
// point intervals thereof. The swinging-factorial algorithm below is
// ported from robpike.io/ivy/value/fac.go (Luschny's "swinging
// factorial", n!/floor(n/2)!^2), good for roughly a 2x speedup over
// naive repeated multiplication on big integers.

func primeGen(n int) func() int {
	marked := make([]bool, n+1)
	i := 2
	return func() int {
		for ; i <= n; i++ {
			if marked[i] {
				continue
			}
			for j := i; j <= n; j += i {
				marked[j] = true
			}
			return i
		}
		return 0
	}
}

func swing(n int) *big.Int {
	nextPrime := primeGen(n)
	var factors []int
	for {
		prime := nextPrime()
		if prime == 0 {
			break
		}
		q := n
		p := 1
		for q != 0 {
			q = q / prime
			if q&1 == 1 {
				p *= prime
			}
		}
		if p > 1 {
			factors = append(factors, p)
		}
	}
	return product(factors)
}

func product(f []int) *big.Int {
	switch len(f) {
	case 0:
		return big.NewInt(1)
	case 1:
		return big.NewInt(int64(f[0]))
	}
	n := len(f) / 2
	left := product(f[:n])
	right := product(f[n:])
	return left.Mul(left, right)
}

func intFactorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	s := swing(int(n))
	f2 := intFactorial(n / 2)
	f2.Mul(f2, f2)
	f2.Mul(f2, s)
	return f2
}

// Factorial computes n! for a non-negative Integer (or integer-valued
// point Interval) value v. Any other shape -- negative, or not an
// integer at all -- raises a NegativeFactorial error.
func Factorial(v Value) Value {
	z, ok := nonNegativeIntegerOf(v)
	if !ok {
		rmerr.Errorf(rmerr.NegativeFactorial, "", "factorial requires a non-negative integer")
	}
	if !z.IsInt64() {
		rmerr.Errorf(rmerr.NegativeFactorial, "", "factorial argument too large")
	}
	return NewInteger(intFactorial(z.Int64()))
}

// DoubleFactorial computes n!! (product of every second integer down to
// 1 or 2) for a non-negative Integer.
func DoubleFactorial(v Value) Value {
	z, ok := nonNegativeIntegerOf(v)
	if !ok {
		rmerr.Errorf(rmerr.NegativeFactorial, "", "double factorial requires a non-negative integer")
	}
	n := new(big.Int).Set(z)
	result := big.NewInt(1)
	two := big.NewInt(2)
	for n.Sign() > 0 {
		result.Mul(result, n)
		n.Sub(n, two)
	}
	return NewInteger(result)
}

// nonNegativeIntegerOf extracts a *big.Int from v if v is a
// non-negative Integer, a Rational that reduces to a non-negative
// integer (e.g. "(6/1)!"), or a point Interval whose value reduces to a
// non-negative integer.
func nonNegativeIntegerOf(v Value) (*big.Int, bool) {
	switch v.kind {
	case IntegerKind:
		if v.i.Sign() < 0 {
			return nil, false
		}
		return v.i, true
	case RationalKind:
		if !v.r.IsInt() || v.r.Sign() < 0 {
			return nil, false
		}
		return v.r.Num(), true
	case IntervalKind:
		if !v.IsPoint() {
			return nil, false
		}
		lo, _ := v.Bounds()
		if !lo.IsInt() || lo.Sign() < 0 {
			return nil, false
		}
		return lo.Num(), true
	}
	return nil, false
}

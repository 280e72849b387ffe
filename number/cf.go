// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package number

import "math/big"

// RationalFromContinuedFraction reduces a continued fraction
// [a0; a1, a2, ..., an] to its exact rational value via the standard
// recurrence:
//
//	p[-1]=1, p[0]=a0, p[k] = a[k]*p[k-1] + p[k-2]
//	q[-1]=0, q[0]=1,  q[k] = a[k]*q[k-1] + q[k-2]
//
// returning p[n]/q[n]. An empty slice is treated as [0].
func RationalFromContinuedFraction(terms []*big.Int) Value {
	if len(terms) == 0 {
		return Zero()
	}
	pPrev2, pPrev1 := big.NewInt(1), new(big.Int).Set(terms[0])
	qPrev2, qPrev1 := big.NewInt(0), big.NewInt(1)
	if len(terms) == 1 {
		return NewInteger(pPrev1)
	}
	var p, q *big.Int
	for _, a := range terms[1:] {
		p = new(big.Int).Mul(a, pPrev1)
		p.Add(p, pPrev2)
		q = new(big.Int).Mul(a, qPrev1)
		q.Add(q, qPrev2)
		pPrev2, pPrev1 = pPrev1, p
		qPrev2, qPrev1 = qPrev1, q
	}
	return NewRational(pPrev1, qPrev1)
}

// ContinuedFractionOf expands a rational into its canonical continued
// fraction [a0; a1, ..., an], forbidding a trailing term of 1 unless
// the expansion is just [a0].
func ContinuedFractionOf(r *big.Rat) []*big.Int {
	num := new(big.Int).Set(r.Num())
	den := new(big.Int).Set(r.Denom())
	var terms []*big.Int
	for {
		q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
		// Floor division: big.Int.QuoRem truncates toward zero, so
		// adjust for negative num with nonzero remainder.
		if rem.Sign() != 0 && (rem.Sign() < 0) != (den.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
			rem.Add(rem, den)
		}
		terms = append(terms, q)
		if rem.Sign() == 0 {
			break
		}
		num, den = den, rem
	}
	// Canonicalize: an...==1 with n>0 folds into the previous term.
	if n := len(terms); n > 1 && terms[n-1].Cmp(big.NewInt(1)) == 0 {
		terms[n-2].Add(terms[n-2], big.NewInt(1))
		terms = terms[:n-1]
	}
	return terms
}

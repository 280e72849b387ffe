// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base implements BaseSystem, an immutable digit alphabet used to
// decode and encode arbitrary-precision signed integers, and a process-wide
// prefix registry mapping single letters ("x", "b", "o", ...) to a
// registered BaseSystem. Modeled on the way robpike.io/ivy/config.Config
// holds small, nil-safe, nearly-immutable configuration values.
package base

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/jostylr/ratmath/rmerr"
)

// reservedSymbols are the grammar meta-characters a digit alphabet must
// never contain.
const reservedSymbols = "+-*/^!()[]:.#~"

// System is an immutable digit alphabet: an ordered list of distinct
// digit characters, their base, and the forward/reverse maps between
// digit characters and digit values.
type System struct {
	name    string
	digits  []rune       // digits[v] is the character for digit value v
	forward map[rune]int // char -> digit value
}

// New constructs a BaseSystem from an ordered list of distinct digit
// characters. It fails when any digit is a reserved grammar symbol
// (reporting every offender), on duplicate digits, or when there are
// fewer than two digits.
func New(name string, digits []rune) (*System, error) {
	if len(digits) < 2 {
		return nil, fmt.Errorf("base %q: need at least 2 digits, got %d", name, len(digits))
	}
	var bad []rune
	seen := make(map[rune]bool, len(digits))
	var dup []rune
	for _, d := range digits {
		if strings.ContainsRune(reservedSymbols, d) {
			bad = append(bad, d)
		}
		if seen[d] {
			dup = append(dup, d)
		}
		seen[d] = true
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("base %q: reserved grammar characters used as digits: %q", name, string(bad))
	}
	if len(dup) > 0 {
		return nil, fmt.Errorf("base %q: duplicate digits: %q", name, string(dup))
	}
	s := &System{
		name:    name,
		digits:  append([]rune(nil), digits...),
		forward: make(map[rune]int, len(digits)),
	}
	for v, d := range digits {
		s.forward[d] = v
	}
	return s, nil
}

// mustNew is New but panics; used only for the package's own presets,
// whose digit lists are known-good at compile time.
func mustNew(name string, digits []rune) *System {
	s, err := New(name, digits)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the BaseSystem's friendly name.
func (s *System) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Base returns the number of digits, i.e. the radix.
func (s *System) Base() int {
	if s == nil {
		return 10
	}
	return len(s.digits)
}

// IsValid reports whether every rune in s is a valid digit in this base.
// Used by decoders to peek at candidate digit runs before committing.
func (bs *System) IsValid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := bs.forward[r]; !ok {
			return false
		}
	}
	return true
}

// ToInteger parses a (possibly negative) digit run in this base into a
// signed big integer. On a bad digit it returns a plain error naming the
// first bad character and the base (decoders wrap it as InvalidBaseDigit).
func (s *System) ToInteger(str string) (*big.Int, error) {
	if str == "" {
		return nil, fmt.Errorf("empty integer literal")
	}
	neg := false
	i := 0
	if str[0] == '-' {
		neg = true
		i = 1
	}
	if i >= len(str) {
		return nil, fmt.Errorf("empty integer literal")
	}
	base := big.NewInt(int64(s.Base()))
	acc := new(big.Int)
	digit := new(big.Int)
	for _, r := range str[i:] {
		v, ok := s.forward[r]
		if !ok {
			return nil, fmt.Errorf("invalid character %q for base %d", r, s.Base())
		}
		digit.SetInt64(int64(v))
		acc.Mul(acc, base)
		acc.Add(acc, digit)
	}
	if neg {
		acc.Neg(acc)
	}
	return acc, nil
}

// FromInteger renders z in this base, standard repeated-division, most
// significant digit first. Zero renders as the base's zero digit alone.
func (s *System) FromInteger(z *big.Int) string {
	if z.Sign() == 0 {
		return string(s.digits[0])
	}
	neg := z.Sign() < 0
	n := new(big.Int).Abs(z)
	base := big.NewInt(int64(s.Base()))
	rem := new(big.Int)
	var out []rune
	for n.Sign() > 0 {
		n.QuoRem(n, base, rem)
		out = append(out, s.digits[rem.Int64()])
	}
	// Reverse into most-significant-first order.
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// CaseInsensitive returns a reduced BaseSystem keeping only one case per
// letter, for permissive parsing of hex-like bases whose canonical
// presentation mixes upper and lower case (e.g. base62's a-zA-Z).
// Lookup on the reduced system accepts either case of a folded letter;
// rendering always uses the case kept in the original list's first
// occurrence order.
func (s *System) CaseInsensitive() *System {
	out := &System{name: s.name + " (case-insensitive)", forward: make(map[rune]int, len(s.forward))}
	seen := make(map[rune]bool)
	for _, d := range s.digits {
		folded := foldLetter(d)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out.digits = append(out.digits, d)
	}
	for v, d := range out.digits {
		out.forward[d] = v
		out.forward[foldUpper(d)] = v
		out.forward[foldLower(d)] = v
	}
	return out
}

func foldLetter(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func foldUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func foldLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// ForDigitScan returns the BaseSystem decoders should use to recognize
// digit characters: a case-insensitive view when the base's natural
// alphabet spans only one case per letter (base <= 36, e.g. hex's
// a-f/A-F) -- digit recognition is case-insensitive whenever the base
// alphabet uses only one case. Bases above 36 use upper and lower case
// for distinct digit values, so case must be preserved.
func (s *System) ForDigitScan() *System {
	if s.Base() <= 36 {
		return s.CaseInsensitive()
	}
	return s
}

// Errorf is a thin adapter so base-system failures can be reported through
// the shared rmerr taxonomy by callers that already carry an offending
// token; base.New/ToInteger return plain errors for library-level use,
// while parse/decode wrap them as rmerr.InvalidBaseDigit or
// rmerr.InvalidPrefix as appropriate.
func Errorf(kind rmerr.Kind, context, format string, args ...interface{}) {
	rmerr.Errorf(kind, context, format, args...)
}

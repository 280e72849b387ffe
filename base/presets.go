// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

// digitAlphabet is the canonical digit order used to build FromBase(n)
// for 2 <= n <= 62: 0-9 then a-z then A-Z.
const digitAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FromBase returns the standard BaseSystem for radix n, 2 <= n <= 62,
// using digits 0-9a-zA-Z in that order.
func FromBase(n int) (*System, error) {
	if n < 2 || n > len(digitAlphabet) {
		return nil, errOutOfRange(n)
	}
	return New(presetName(n), []rune(digitAlphabet[:n]))
}

func errOutOfRange(n int) error {
	return &rangeError{n}
}

type rangeError struct{ n int }

func (e *rangeError) Error() string {
	return "base out of range [2,62]: " + itoa(e.n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func presetName(n int) string {
	switch n {
	case 2:
		return "binary"
	case 8:
		return "octal"
	case 10:
		return "decimal"
	case 16:
		return "hexadecimal"
	case 36:
		return "base-36"
	case 60:
		return "sexagesimal"
	case 62:
		return "base-62"
	}
	return "base-" + itoa(n)
}

// Named presets, built lazily so a package importer only pays for the
// ones it uses.

func Binary() *System      { s, _ := FromBase(2); return s }
func Octal() *System       { s, _ := FromBase(8); return s }
func Decimal() *System     { s, _ := FromBase(10); return s }
func Hexadecimal() *System { s, _ := FromBase(16); return s }
func Base36() *System      { s, _ := FromBase(36); return s }
func Base60() *System      { s, _ := FromBase(60); return s }
func Base62() *System      { s, _ := FromBase(62); return s }

// Roman is a novelty BaseSystem: digit set "IVXLCDM", base 7. It has no
// positional meaning as Roman numerals do, but it satisfies the
// BaseSystem contract (distinct digit alphabet, forward/reverse maps)
// the way the other presets do.
func Roman() *System {
	return mustNew("roman", []rune("IVXLCDM"))
}

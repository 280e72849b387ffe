// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"math/big"
	"strings"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
)

// DecodeUncertainty decodes "base[body]trailing?": a center literal
// immediately followed by a bracketed range, symmetric, or relative
// uncertainty specification, with an optional trailing scientific
// suffix that scales the whole resulting interval.
func DecodeUncertainty(text string, pos int, bs *base.System, cfg *config.Config) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos

	neg := c.accept("-")
	intRun := scanDigitRun(c, bs)
	hasDot := false
	fracRun := ""
	if c.peek() == '.' {
		save := *c
		c.next()
		fracRun = scanDigitRun(c, bs)
		if fracRun == "" {
			// Not actually a fractional part; back up, "." belongs to
			// something else (shouldn't happen for valid uncertainty
			// literals, but don't swallow it silently).
			*c = save
		} else {
			hasDot = true
		}
	}
	if intRun == "" && fracRun == "" {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "uncertainty literal requires a center value")
	}
	baseStr := text[start:c.pos] // includes leading '-' if present, for range-append concatenation

	center, err := centerValue(intRun, fracRun, bs, neg)
	if err != nil {
		return number.Value{}, pos, err
	}

	if !c.accept("[") {
		return number.Value{}, pos, syntaxErr(text[start:c.pos], "expected '[' to open uncertainty bracket")
	}

	bodyStart := c.pos
	closeIdx := strings.IndexByte(c.text[bodyStart:], ']')
	if closeIdx < 0 {
		return number.Value{}, pos, syntaxErr(text[start:], "unterminated uncertainty bracket")
	}
	body := c.text[bodyStart : bodyStart+closeIdx]
	c.pos = bodyStart + closeIdx + 1

	fractionalDigits := len(fracRun)
	if !hasDot {
		fractionalDigits = 0
	}

	lo, hi, err := decodeUncertaintyBody(body, baseStr, center, fractionalDigits, hasDot, bs)
	if err != nil {
		return number.Value{}, pos, err
	}

	// Optional trailing scientific part (E±k for base 10, _^±k
	// otherwise), applied by multiplying the final interval by
	// inputBase^k.
	if k, consumed, ok := peekScientificExponent(c.text, c.pos, bs); ok {
		c.pos = consumed
		scale := new(big.Int).Exp(big.NewInt(int64(bs.Base())), absInt(k), nil)
		scaleRat := new(big.Rat).SetInt(scale)
		if k < 0 {
			scaleRat.Inv(scaleRat)
		}
		lo = new(big.Rat).Mul(lo, scaleRat)
		hi = new(big.Rat).Mul(hi, scaleRat)
	}

	return number.NewInterval(lo, hi).WithExplicitInterval(), c.pos, nil
}

// isPlainDigitRun reports whether body is a non-empty run of plain
// ASCII digits with no sign, separator, or decimal point -- the shape
// of a legacy "value[base]" bracket (e.g. "255[16]"), as opposed to a
// well-formed range/symmetric/relative uncertainty body.
func isPlainDigitRun(body string) bool {
	if body == "" {
		return false
	}
	for _, r := range body {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func absInt(k int) *big.Int {
	if k < 0 {
		k = -k
	}
	return big.NewInt(int64(k))
}

func centerValue(intRun, fracRun string, bs *base.System, neg bool) (*big.Rat, error) {
	intZ := big.NewInt(0)
	if intRun != "" {
		z, err := bs.ForDigitScan().ToInteger(intRun)
		if err != nil {
			return nil, invalidDigit(intRun, err.Error())
		}
		intZ = z
	}
	if fracRun == "" {
		r := new(big.Rat).SetInt(intZ)
		if neg {
			r.Neg(r)
		}
		return r, nil
	}
	fracZ, err := bs.ForDigitScan().ToInteger(fracRun)
	if err != nil {
		return nil, invalidDigit(fracRun, err.Error())
	}
	radix := big.NewInt(int64(bs.Base()))
	denom := new(big.Int).Exp(radix, big.NewInt(int64(len(fracRun))), nil)
	r := new(big.Rat).SetFrac(new(big.Int).Add(new(big.Int).Mul(intZ, denom), fracZ), denom)
	if neg {
		r.Neg(r)
	}
	return r, nil
}

// decodeUncertaintyBody dispatches on the bracket body's shape: Range
// (comma/colon separated digit runs), Symmetric ("+-x"/"-+x"), or
// Relative ("+x", "-y", or both).
func decodeUncertaintyBody(body, baseStr string, center *big.Rat, fractionalDigits int, hasDot bool, bs *base.System) (lo, hi *big.Rat, err error) {
	switch {
	case strings.HasPrefix(body, "+-") || strings.HasPrefix(body, "-+"):
		return decodeSymmetric(body, center, fractionalDigits, hasDot, bs)
	case strings.ContainsAny(body, "+-") && (strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-")):
		return decodeRelative(body, center, fractionalDigits, hasDot, bs)
	default:
		return decodeRange(body, baseStr, bs)
	}
}

// decodeRange implements the Range form: two comma- or colon-separated
// digit runs, string-appended to baseStr and decoded as full literals
// in bs.
func decodeRange(body, baseStr string, bs *base.System) (lo, hi *big.Rat, err error) {
	var sep byte
	idx := strings.IndexAny(body, ",:")
	if idx < 0 {
		if isPlainDigitRun(body) {
			return nil, nil, deprecatedBracketBase(baseStr+"["+body+"]",
				"legacy value[base] notation is not supported; use a '0<letter>' prefix or a registered BaseSystem instead")
		}
		return nil, nil, syntaxErr(body, "range uncertainty requires ',' or ':' between endpoints")
	}
	sep = body[idx]
	_ = sep
	loRun, hiRun := body[:idx], body[idx+1:]
	if loRun == "" || hiRun == "" {
		return nil, nil, syntaxErr(body, "range uncertainty endpoints must not be empty")
	}
	if !strings.Contains(baseStr, ".") && !bs.ForDigitScan().IsValid(loRun) {
		return nil, nil, syntaxErr(body, "integer-range uncertainty append is not enabled for this literal")
	}
	loVal, _, err := decodeSimpleLiteral(baseStr+loRun, 0, bs)
	if err != nil {
		return nil, nil, err
	}
	hiVal, _, err := decodeSimpleLiteral(baseStr+hiRun, 0, bs)
	if err != nil {
		return nil, nil, err
	}
	loR, hiR := valueAsRat(loVal), valueAsRat(hiVal)
	if loR.Cmp(hiR) > 0 {
		loR, hiR = hiR, loR
	}
	return loR, hiR, nil
}

// decodeSymmetric implements "+-x" / "-+x": offset applies equally on
// both sides of center.
func decodeSymmetric(body string, center *big.Rat, fractionalDigits int, hasDot bool, bs *base.System) (lo, hi *big.Rat, err error) {
	offsetText := body[2:]
	offset, err := scaledOffset(offsetText, fractionalDigits, hasDot, bs)
	if err != nil {
		return nil, nil, err
	}
	lo = new(big.Rat).Sub(center, offset)
	hi = new(big.Rat).Add(center, offset)
	return lo, hi, nil
}

// decodeRelative implements "+x", "-y", or "+x-y"/"-y+x": asymmetric
// uncertainty, missing side defaulting to zero.
func decodeRelative(body string, center *big.Rat, fractionalDigits int, hasDot bool, bs *base.System) (lo, hi *big.Rat, err error) {
	var plusText, minusText string
	rest := body
	for len(rest) > 0 {
		sign := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "+-")
		var part string
		if end < 0 {
			part = rest
			rest = ""
		} else {
			part = rest[:end]
			rest = rest[end:]
		}
		if sign == '+' {
			plusText = part
		} else {
			minusText = part
		}
	}
	plus := new(big.Rat)
	if plusText != "" {
		plus, err = scaledOffset(plusText, fractionalDigits, hasDot, bs)
		if err != nil {
			return nil, nil, err
		}
	}
	minus := new(big.Rat)
	if minusText != "" {
		minus, err = scaledOffset(minusText, fractionalDigits, hasDot, bs)
		if err != nil {
			return nil, nil, err
		}
	}
	lo = new(big.Rat).Sub(center, minus)
	hi = new(big.Rat).Add(center, plus)
	return lo, hi, nil
}

// scaledOffset decodes an offset literal x and scales it: if the
// center has d fractional digits or none, scale by inputBase^-(d+1) (or
// inputBase^-d when x is itself a repeating-decimal literal). This is
// one of the decisions DESIGN.md records: the "base has none" case is
// pinned to behave like d=0.
func scaledOffset(text string, fractionalDigits int, hasDot bool, bs *base.System) (*big.Rat, error) {
	isRepeating := strings.ContainsRune(text, '#')
	val, _, err := decodeSimpleLiteral(text, 0, bs)
	if err != nil {
		return nil, err
	}
	x := valueAsRat(val)

	d := fractionalDigits
	exp := -(d + 1)
	if isRepeating {
		exp = -d
	}
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(int64(bs.Base())), absInt(exp), nil))
	if exp < 0 {
		scale.Inv(scale)
	}
	return new(big.Rat).Mul(x, scale), nil
}

// decodeSimpleLiteral decodes a plain numeric literal (integer,
// fraction, decimal, or repeating decimal) without uncertainty or
// interval shapes -- used internally to decode uncertainty-bracket
// endpoints and offsets, which may never themselves nest another
// uncertainty bracket.
func decodeSimpleLiteral(text string, pos int, bs *base.System) (number.Value, int, error) {
	if strings.ContainsRune(text[pos:], '#') {
		return DecodeRepeatingDecimal(text, pos)
	}
	if strings.ContainsRune(text[pos:], '.') {
		return DecodeDecimal(text, pos, bs, typeAwareCfg)
	}
	if strings.ContainsRune(text[pos:], '/') {
		return DecodeFraction(text, pos, bs)
	}
	return DecodeInteger(text, pos, bs)
}

// typeAwareCfg is a fixed type-aware configuration used internally by
// decoders (like decodeSimpleLiteral) that must always produce an
// exact scalar regardless of the caller's ambient TypeAware setting --
// uncertainty endpoints and offsets are never themselves subject to
// the non-type-aware "decimal becomes an interval" rule.
var typeAwareCfg = func() *config.Config {
	c := config.New()
	c.SetTypeAware(true)
	return c
}()

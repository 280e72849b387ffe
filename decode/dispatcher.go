// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"strings"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// DecodeLiteral is the single entry point the parser calls at an atom
// position. It classifies the literal at pos by a short lookahead and
// routes to the matching decoder, then applies any trailing scientific
// suffix and folds a following ':' into an explicit Interval. Each
// decoder it calls answers "this is mine / not mine / syntax error",
// chosen deterministically, rather than one deep if-ladder.
func DecodeLiteral(text string, pos int, cfg *config.Config) (number.Value, int, error) {
	if pos >= len(text) {
		return number.Value{}, pos, &rmerr.Error{Kind: rmerr.EmptyInput, Message: "no literal at end of input"}
	}
	bs := cfg.InputBase()

	c := newCursor(text, pos)
	c.accept("-") // a prefix literal may carry its own leading sign
	if c.peek() == '0' {
		letter := c.peekAt(1)
		if isLetterRune(letter) && letter != 'e' && letter != 'E' {
			return decodePrefixed(text, pos, cfg)
		}
	}

	return decodeCoreWithInterval(text, pos, bs, cfg)
}

// decodeCoreWithInterval decodes one scalar/uncertainty/CF/repeating
// literal, then -- unless that literal already closed itself off (an
// uncertainty bracket, which carries its own trailing scientific
// handling) -- checks for a following ':' introducing an explicit
// Interval, and for a trailing scientific suffix.
func decodeCoreWithInterval(text string, pos int, bs *base.System, cfg *config.Config) (number.Value, int, error) {
	left, end, err := decodeCore(text, pos, bs, cfg)
	if err != nil {
		return number.Value{}, pos, err
	}
	if left.Kind() == number.IntervalKind && left.ExplicitInterval() {
		// Already a complete explicit interval (uncertainty or CF
		// pair); nothing more to fold in.
		return left, end, nil
	}

	if end < len(text) && text[end] == ':' && end+1 < len(text) && looksDigitLike(text[end+1]) {
		right, end2, err := decodeCore(text, end+1, bs, cfg)
		if err != nil {
			return number.Value{}, pos, err
		}
		if left.Kind() == number.IntervalKind || right.Kind() == number.IntervalKind {
			return number.Value{}, pos, unsupportedComposition(text[pos:end2], "an explicit ':' interval cannot nest another interval as an endpoint")
		}
		loR, hiR := valueAsRat(left), valueAsRat(right)
		iv := number.NewInterval(loR, hiR).WithExplicitInterval()
		return applyTrailingScientific(iv, text, end2, bs)
	}

	if k, sciEnd, ok := peekScientificExponent(text, end, bs); ok && sciEnd < len(text) && text[sciEnd] == '[' {
		_ = k
		return number.Value{}, pos, unsupportedComposition(text[pos:sciEnd+1], "scientific notation is not allowed in an uncertainty-bracket center")
	}

	return applyTrailingScientific(left, text, end, bs)
}

// rejectTrailingScientific reports an error if a scientific-notation
// suffix immediately follows a bare fraction or mixed-number literal --
// "E"/"_^" never composes with those shapes, unlike decimals and
// integers.
func rejectTrailingScientific(v number.Value, text string, end int, bs *base.System, origPos int) (number.Value, int, error) {
	if _, sciEnd, ok := peekScientificExponent(text, end, bs); ok {
		return number.Value{}, origPos, unsupportedComposition(text[origPos:sciEnd], "scientific notation cannot follow a fraction or mixed-number literal")
	}
	return v, end, nil
}

func looksDigitLike(b byte) bool {
	return isASCIIDigit(rune(b)) || b == '-' || b == '.'
}

func applyTrailingScientific(v number.Value, text string, pos int, bs *base.System) (number.Value, int, error) {
	k, end, ok := peekScientificExponent(text, pos, bs)
	if !ok {
		return v, pos, nil
	}
	decimalMarker := strings.HasPrefix(text[pos:end], "E") || (len(text) > pos && text[pos] == 'E')
	return ApplyScientificSuffix(v, k, decimalMarker, bs), end, nil
}

// decodeCore classifies and decodes one of: continued fraction,
// uncertainty bracket, repeating decimal, mixed number, decimal,
// fraction, or bare integer, per the shared sign+digit-run prefix all
// of them start with.
func decodeCore(text string, pos int, bs *base.System, cfg *config.Config) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos
	c.accept("-")
	intRun := scanDigitRun(c, bs)

	if c.peek() != '.' {
		// No dot: could be uncertainty ("142[...]"), fraction
		// ("3/4"), or a bare integer.
		if c.peek() == '[' {
			return DecodeUncertainty(text, pos, bs, cfg)
		}
		// '/' is a fraction separator only when a digit follows it; a
		// '/' followed by anything else (such as parse's spaced-slash
		// sentinel) is left for the parser's division operator.
		if c.peek() == '/' && bs.ForDigitScan().IsValid(string(c.peekAt(1))) {
			v, end, err := DecodeFraction(text, pos, bs)
			if err != nil {
				return number.Value{}, pos, err
			}
			return rejectTrailingScientific(v, text, end, bs, pos)
		}
		if intRun == "" {
			return number.Value{}, pos, syntaxErr(text[start:c.pos], "expected a numeric literal")
		}
		return DecodeInteger(text, pos, bs)
	}

	// There's a dot. Peek what follows it to disambiguate continued
	// fraction, mixed number, or decimal (possibly repeating, possibly
	// carrying an uncertainty bracket).
	afterDot := c.peekAt(1)
	switch {
	case afterDot == '~':
		return DecodeContinuedFraction(text, pos)
	case afterDot == '.':
		v, end, err := DecodeMixed(text, pos, bs)
		if err != nil {
			return number.Value{}, pos, err
		}
		return rejectTrailingScientific(v, text, end, bs, pos)
	}

	// Plain decimal shape: scan past '.' and the fractional digit run
	// to see what immediately follows.
	c.next() // consume '.'
	scanDigitRun(c, bs)
	switch c.peek() {
	case '#':
		return DecodeRepeatingDecimal(text, pos)
	case '[':
		return DecodeUncertainty(text, pos, bs, cfg)
	default:
		return DecodeDecimal(text, pos, bs, cfg)
	}
}

// decodePrefixed handles "0<letter>..." literals: the prefix selects a
// BaseSystem, then the remainder decodes exactly like an unprefixed
// literal, but in the selected base. "0D..." inherits the caller's
// input base (the 'd'/'D' sentinel). A leading '-' before the "0x..."
// negates the whole result. A digit or letter directly after the decoded
// literal is not a digit of the selected base and is reported as
// InvalidBaseDigit.
func decodePrefixed(text string, pos int, cfg *config.Config) (number.Value, int, error) {
	c := newCursor(text, pos)
	start := c.pos
	neg := c.accept("-")
	if !c.accept("0") {
		return number.Value{}, pos, syntaxErr(text[start:], "expected '0' prefix")
	}
	letter := c.next()

	var bs *base.System
	if base.IsInputBaseSentinel(letter) {
		bs = cfg.InputBase()
	} else {
		sys, ok := cfg.Registry().Lookup(letter)
		if !ok {
			return number.Value{}, pos, &rmerr.Error{
				Kind:    rmerr.InvalidPrefix,
				Context: string(letter),
				Message: "no BaseSystem registered for prefix",
			}
		}
		bs = sys
	}

	bodyStart := c.pos
	v, end, err := decodeCoreWithInterval(text, bodyStart, bs, cfg)
	if err != nil {
		return number.Value{}, pos, err
	}
	if end < len(text) && (isASCIIDigit(rune(text[end])) || isLetterRune(rune(text[end]))) {
		return number.Value{}, pos, invalidDigit(text[start:end+1], "character is not a digit of the prefixed base")
	}
	if neg {
		v = number.Neg(v)
	}
	return v, end, nil
}

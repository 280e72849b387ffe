// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"strconv"

	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/rmerr"
)

// functionTable names every identifier the grammar recognizes as a
// function or named constant: PI, E (constant or EXP(...)), SIN, COS,
// TAN, ARCSIN, ARCCOS, ARCTAN, LN, LOG(x[,b]).
var functionTable = map[string]bool{
	"PI": true, "E": true, "EXP": true,
	"SIN": true, "COS": true, "TAN": true,
	"ARCSIN": true, "ARCCOS": true, "ARCTAN": true,
	"LN": true, "LOG": true,
}

// peekFunctionName reports the maximal uppercase-letter run at the
// parser's current position, if and only if it exactly matches a known
// function name. A longer or shorter run (e.g. "SINE", "ARC") matches
// nothing, so there is no partial-prefix ambiguity.
func (p *Parser) peekFunctionName() (string, bool) {
	if p.atEOF() {
		return "", false
	}
	c := p.text[p.pos]
	if c < 'A' || c > 'Z' {
		return "", false
	}
	end := p.pos
	for end < len(p.text) && p.text[end] >= 'A' && p.text[end] <= 'Z' {
		end++
	}
	name := p.text[p.pos:end]
	if functionTable[name] {
		return name, true
	}
	return "", false
}

// functionCall parses "NAME [±k]? (args)?" and evaluates it. The
// bracketed precision, when present -- "FN[±k]" -- overrides the
// ambient precision for this call only.
func (p *Parser) functionCall(name string) number.Value {
	p.enter()
	defer p.leave()

	p.pos += len(name)
	precision := p.cfg.Precision()

	p.skipSpace()
	if p.peekByte() == '[' {
		p.pos++
		precision = p.signedSmallInt()
		p.skipSpace()
		if p.peekByte() != ']' {
			rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected ']' closing precision bracket")
		}
		p.pos++
	}

	switch name {
	case "PI":
		p.optionalEmptyParens()
		return number.PI(precision)
	case "E":
		p.optionalEmptyParens()
		return number.E(precision)
	case "EXP":
		return number.EXP(p.parenArg(), precision)
	case "SIN":
		return number.SIN(p.parenArg(), precision)
	case "COS":
		return number.COS(p.parenArg(), precision)
	case "TAN":
		return number.TAN(p.parenArg(), precision)
	case "ARCSIN":
		return number.ARCSIN(p.parenArg(), precision)
	case "ARCCOS":
		return number.ARCCOS(p.parenArg(), precision)
	case "ARCTAN":
		return number.ARCTAN(p.parenArg(), precision)
	case "LN":
		return number.LN(p.parenArg(), precision)
	case "LOG":
		args := p.parenArgs(1, 2)
		base := number.NewIntegerInt64(10)
		if len(args) == 2 {
			base = args[1]
		}
		return number.LOG(args[0], base, precision)
	}
	panic("parse: unreachable function name " + name)
}

// signedSmallInt parses an optionally-signed decimal integer, used only
// for precision brackets, which are always small and always base 10
// regardless of the ambient input base (a precision is a count of
// digits, not a value in that base).
func (p *Parser) signedSmallInt() int {
	start := p.pos
	if p.peekByte() == '+' || p.peekByte() == '-' {
		p.pos++
	}
	digitsStart := p.pos
	for !p.atEOF() && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == digitsStart {
		rmerr.Errorf(rmerr.SyntaxError, p.text[start:p.pos], "expected a precision value")
	}
	n, err := strconv.Atoi(p.text[start:p.pos])
	if err != nil {
		rmerr.Errorf(rmerr.SyntaxError, p.text[start:p.pos], "precision value out of range")
	}
	return n
}

// optionalEmptyParens allows (but does not require) "()" after a
// zero-argument constant like PI or E.
func (p *Parser) optionalEmptyParens() {
	p.skipSpace()
	if p.peekByte() != '(' {
		return
	}
	p.pos++
	p.skipSpace()
	if p.peekByte() != ')' {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected ')'")
	}
	p.pos++
}

// parenArg parses exactly one parenthesised argument.
func (p *Parser) parenArg() number.Value {
	args := p.parenArgs(1, 1)
	return args[0]
}

// parenArgs parses "(" expr ("," expr)* ")" and enforces that the
// argument count falls within [min, max].
func (p *Parser) parenArgs(min, max int) []number.Value {
	p.skipSpace()
	if p.peekByte() != '(' {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected '(' to begin argument list")
	}
	p.pos++
	var args []number.Value
	p.skipSpace()
	if p.peekByte() != ')' {
		args = append(args, p.expr())
		p.skipSpace()
		for p.peekByte() == ',' {
			p.pos++
			args = append(args, p.expr())
			p.skipSpace()
		}
	}
	if p.peekByte() != ')' {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "expected ')' or ',' in argument list")
	}
	p.pos++
	if len(args) < min || len(args) > max {
		rmerr.Errorf(rmerr.SyntaxError, p.rest(), "wrong number of arguments")
	}
	return args
}

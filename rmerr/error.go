// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rmerr defines the flat error taxonomy shared by every decoder
// and operator in ratmath. It follows the same panic/recover discipline
// as robpike.io/ivy/value: deep code raises an rmerr.Error by panicking,
// and exactly one call site (parse.Parse) recovers it and turns it back
// into a normal Go error.
package rmerr

import "fmt"

// Kind identifies one of the error categories Parse can raise.
type Kind int

const (
	EmptyInput Kind = iota
	SyntaxError
	InvalidNumberFormat
	InvalidBaseDigit
	InvalidPrefix
	DeprecatedBracketBase
	DivisionByZero
	IntervalDivisionByZero
	ZeroToZero
	NegativeFactorial
	DomainError
	UnsupportedComposition
)

var kindName = [...]string{
	"EmptyInput",
	"SyntaxError",
	"InvalidNumberFormat",
	"InvalidBaseDigit",
	"InvalidPrefix",
	"DeprecatedBracketBase",
	"DivisionByZero",
	"IntervalDivisionByZero",
	"ZeroToZero",
	"NegativeFactorial",
	"DomainError",
	"UnsupportedComposition",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindName) {
		return "UnknownError"
	}
	return kindName[k]
}

// Error is the structured failure value returned from Parse. It is also
// the value panicked internally; Parse is the only recover point.
type Error struct {
	Kind    Kind
	Context string // offending token or short excerpt
	Message string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("ratmath: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("ratmath: %s: %s: %q", e.Kind, e.Message, e.Context)
}

// Errorf constructs an *Error and panics with it, exactly as
// robpike.io/ivy/value.Errorf panics with a value.Error for every
// deep-code failure.
func Errorf(kind Kind, context string, format string, args ...interface{}) {
	panic(&Error{
		Kind:    kind,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// Recover converts a panic value raised by Errorf (or any other panic,
// re-panicked if it's not ours) into an error. It is meant to be called
// from a deferred function guarding a single parse.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if e, ok := r.(*Error); ok {
			*errp = e
			return
		}
		panic(r)
	}
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratmath parses and evaluates expressions over exact rational
// arithmetic with interval support: integers, fractions, mixed
// numbers, decimals (terminating and repeating), uncertainty
// intervals, continued fractions, and scientific notation in bases
// 2 through 62, combined with the usual arithmetic, factorial, and
// exponentiation operators.
//
// The result of Parse is always one of three tagged shapes -- Integer,
// Rational, or Interval, all with exact rational endpoints -- never a
// float. There is no REPL, no CLI, and no output formatting beyond
// Value's own String method; those are left to callers, per the
// package's scope.
package ratmath

import (
	"fmt"
	"math/big"

	"github.com/jostylr/ratmath/base"
	"github.com/jostylr/ratmath/config"
	"github.com/jostylr/ratmath/decode"
	"github.com/jostylr/ratmath/number"
	"github.com/jostylr/ratmath/parse"
)

// Value is the tagged result type every evaluation returns: an exact
// Integer, Rational, or Interval. It is an alias for number.Value so
// that callers never have to import the number package directly for
// ordinary use.
type Value = number.Value

// Options customizes one Parse call. The zero value is the documented
// default: base 10 input, precision -6, type-aware promotion on.
type Options struct {
	// TypeAware governs whether the promotion step runs after every
	// operator. Defaults to true; set explicit to use false.
	TypeAware *bool

	// InputBase is the BaseSystem used to decode unprefixed digit
	// runs. Defaults to base 10.
	InputBase *base.System

	// Precision is the ambient precision context carried through
	// transcendental calls: target error <= 10^Precision, whatever
	// InputBase is. Defaults to -6.
	Precision *int

	// Registry overrides the prefix registry consulted for "0<letter>"
	// literals. Defaults to the process-wide registry (base.Default()).
	Registry *base.Registry
}

func (o *Options) toConfig() *config.Config {
	cfg := config.New()
	if o == nil {
		return cfg
	}
	if o.TypeAware != nil {
		cfg.SetTypeAware(*o.TypeAware)
	}
	if o.InputBase != nil {
		cfg.SetInputBase(o.InputBase)
	}
	if o.Precision != nil {
		cfg.SetPrecision(*o.Precision)
	}
	if o.Registry != nil {
		cfg.SetRegistry(o.Registry)
	}
	return cfg
}

// Parse evaluates expression and returns the single tagged value it
// computes to, or a structured error (see package rmerr's Kind for the
// taxonomy). options may be nil for the documented defaults.
func Parse(expression string, options *Options) (Value, error) {
	return parse.Parse(expression, options.toConfig())
}

// ParseContinuedFraction decodes a standalone continued-fraction
// literal "a0.~a1~a2~...~an" into its term sequence, independent of any
// surrounding expression.
func ParseContinuedFraction(text string) ([]*big.Int, error) {
	return decode.ParseContinuedFraction(text)
}

// Eval stitches parts and args together, in the style of fmt.Sprint --
// parts[0], args[0], parts[1], args[1], ... -- into one expression
// string and parses it with options, returning the native tagged
// value. This is the first of the two template-string helpers.
func Eval(options *Options, parts []string, args ...interface{}) (Value, error) {
	return Parse(stitch(parts, args), options)
}

// EvalFraction is Eval's non-type-aware counterpart: it forces
// TypeAware off for the parse (so every decimal literal becomes an
// uncertainty interval rather than an exact rational) and remaps the
// resulting tagged value into the Fraction/FractionInterval domain, for
// callers that want numerator and denominator as separate integers. The
// pairs are those of the reduced values the parse computed; no
// un-reduced form of the written literals is kept.
func EvalFraction(options *Options, parts []string, args ...interface{}) (interface{}, error) {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	nonTypeAware := false
	opts.TypeAware = &nonTypeAware

	v, err := Parse(stitch(parts, args), &opts)
	if err != nil {
		return nil, err
	}
	return ToFractionDomain(v), nil
}

func stitch(parts []string, args []interface{}) string {
	if len(parts) == 0 {
		return ""
	}
	s := parts[0]
	for i, a := range args {
		s += fmt.Sprint(a)
		if i+1 < len(parts) {
			s += parts[i+1]
		}
	}
	return s
}

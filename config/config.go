// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the small set of settings that customize a
// parse: the input base, the ambient precision used by transcendental
// calls, and whether promotion runs in type-aware mode. Modeled
// directly on robpike.io/ivy/config.Config -- a nil-safe struct whose
// zero value already supplies sane defaults, so callers can pass a nil
// *Config and get ordinary base-10, precision -6, type-aware behavior.
package config

import "github.com/jostylr/ratmath/base"

// DefaultPrecision is the precision used when a Config doesn't specify
// one: target error <= 10^-6, "one millionth".
const DefaultPrecision = -6

// Config holds per-parse settings. The zero value is valid and behaves
// as the documented default (base 10, precision -6, type-aware on).
type Config struct {
	inputBase  *base.System
	precision  int
	precisionSet bool
	typeAware  *bool
	registry   *base.Registry
	debug      map[string]bool
}

// New returns a pointer to a fresh zero Config, whose getters report
// the defaults; useful when a caller wants a mutable starting point.
func New() *Config {
	return &Config{}
}

// InputBase returns the configured input BaseSystem, defaulting to
// decimal.
func (c *Config) InputBase() *base.System {
	if c == nil || c.inputBase == nil {
		return base.Decimal()
	}
	return c.inputBase
}

// SetInputBase sets the input BaseSystem used to decode unprefixed
// digit runs.
func (c *Config) SetInputBase(b *base.System) {
	c.inputBase = b
}

// Precision returns the ambient precision context: target error <=
// 10^precision, whatever the input base. Defaults to -6.
func (c *Config) Precision() int {
	if c == nil || !c.precisionSet {
		return DefaultPrecision
	}
	return c.precision
}

// SetPrecision sets the ambient precision.
func (c *Config) SetPrecision(p int) {
	c.precision = p
	c.precisionSet = true
}

// TypeAware reports whether the type-aware promotion step is active.
// Defaults to true; promotion is skipped entirely when the caller
// requested non-type-aware (compatibility) parsing.
func (c *Config) TypeAware() bool {
	if c == nil || c.typeAware == nil {
		return true
	}
	return *c.typeAware
}

// SetTypeAware toggles type-aware promotion.
func (c *Config) SetTypeAware(v bool) {
	c.typeAware = &v
}

// Registry returns the prefix registry this Config uses, defaulting to
// the process-wide default registry (base.Default()).
func (c *Config) Registry() *base.Registry {
	if c == nil || c.registry == nil {
		return base.Default()
	}
	return c.registry
}

// SetRegistry overrides the prefix registry, e.g. to use an isolated
// registry in tests instead of the process-wide one.
func (c *Config) SetRegistry(r *base.Registry) {
	c.registry = r
}

// Debug reports whether a named trace flag is set, mirroring
// robpike.io/ivy/config.Config.Debug/SetDebug. The flags are only
// stored and reported here; no package of this module consults them or
// emits any trace output.
func (c *Config) Debug(name string) bool {
	if c == nil {
		return false
	}
	return c.debug[name]
}

// SetDebug sets or clears a named trace flag.
func (c *Config) SetDebug(name string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[name] = state
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decode implements the literal decoders: pure functions that
// consume one literal form, starting at a given offset in the input
// text, and return an exact value (Integer, Rational, or Interval) plus
// the offset just past what they consumed. The scanning style -- a
// cursor with next/peek/backup/accept/acceptRun -- is ported from
// robpike.io/ivy/scan.Scanner, minus the channel and goroutine:
// decoding is meant to be a pure, synchronous, single-threaded
// computation, so there is no run loop here, just a cursor a caller
// drives directly.
package decode

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

// cursor scans runes out of a string starting at a given byte offset,
// the same primitives as robpike.io/ivy/scan.Scanner but without the
// channel/goroutine plumbing an interactive lexer needs and a decoder
// does not.
type cursor struct {
	text  string
	pos   int // current position in text, in bytes
	start int // start of the byte range under consideration
	width int // width of the last rune read, for backup
}

func newCursor(text string, pos int) *cursor {
	return &cursor{text: text, pos: pos, start: pos}
}

func (c *cursor) next() rune {
	if c.pos >= len(c.text) {
		c.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(c.text[c.pos:])
	c.width = w
	c.pos += w
	return r
}

func (c *cursor) peek() rune {
	r := c.next()
	c.backup()
	return r
}

// peekAt looks ahead n runes without consuming (n=0 is same as peek).
func (c *cursor) peekAt(n int) rune {
	save := *c
	var r rune = eof
	for i := 0; i <= n; i++ {
		r = c.next()
		if r == eof {
			break
		}
	}
	*c = save
	return r
}

func (c *cursor) backup() {
	c.pos -= c.width
}

func (c *cursor) accept(valid string) bool {
	if strings.ContainsRune(valid, c.next()) {
		return true
	}
	c.backup()
	return false
}

func (c *cursor) acceptRun(valid string) {
	for strings.ContainsRune(valid, c.next()) {
	}
	c.backup()
}

// acceptFunc consumes a run of runes satisfying pred.
func (c *cursor) acceptFunc(pred func(rune) bool) {
	for {
		r := c.next()
		if r == eof || !pred(r) {
			c.backup()
			return
		}
	}
}

// acceptString consumes exactly s if the input matches it here.
func (c *cursor) acceptString(s string) bool {
	if strings.HasPrefix(c.text[c.pos:], s) {
		c.pos += len(s)
		return true
	}
	return false
}

// hasPrefix reports whether s appears at the current position without
// consuming it.
func (c *cursor) hasPrefix(s string) bool {
	return strings.HasPrefix(c.text[c.pos:], s)
}

// rest returns the unconsumed remainder of the text.
func (c *cursor) rest() string {
	return c.text[c.pos:]
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.text)
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import "github.com/jostylr/ratmath/base"

// scanDigitRun consumes the maximal run of runes starting at c's
// current position that are valid digits in bs (using its case-folding
// rules), returning the consumed text.
func scanDigitRun(c *cursor, bs *base.System) string {
	view := bs.ForDigitScan()
	start := c.pos
	c.acceptFunc(func(r rune) bool { return view.IsValid(string(r)) })
	return c.text[start:c.pos]
}

// scanSignedDigitRun is scanDigitRun but allows one leading '-'.
func scanSignedDigitRun(c *cursor, bs *base.System) string {
	start := c.pos
	c.accept("-")
	scanDigitRun(c, bs)
	return c.text[start:c.pos]
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetterRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import "strings"

// Sentinel bytes standing in for the two whitespace-sensitive markers
// the grammar needs: " E" (space then capital E) must keep meaning "the
// multiplicative E operator", and "/ " (slash then space) must keep
// meaning "division, not a fraction separator" -- both after ordinary
// whitespace has otherwise stopped mattering between tokens.
// Neither byte can occur in ordinary input text, so the rewrite is
// unambiguous and reversible in spirit (we never need to reverse it;
// only the parser ever sees these bytes).
const (
	spacedE     = '\x01'
	spacedSlash = '\x02'
)

// rewriteWhitespaceSentinels performs the textual preprocessing pass
// the grammar needs, before the grammar proper ever looks at the
// string. It must run once, before any parsing begins, because both
// patterns are genuinely ambiguous without it: "2 E3" and "2E3" would
// otherwise be indistinguishable once a later pass starts skipping
// whitespace between tokens.
func rewriteWhitespaceSentinels(s string) string {
	s = strings.ReplaceAll(s, " E", string(spacedE)+"E")
	s = strings.ReplaceAll(s, "/ ", "/"+string(spacedSlash))
	return s
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// normalize splits source into an ordered sequence of fstrings, one per
// source line, with line comments stripped and leading/trailing
// whitespace trimmed away. The line numbering is 1-based.
//
// Comment stripping is intentionally NOT quote-aware: everything from
// the first unquoted-or-not ';' to end of line is dropped before any
// string-directive tokenization occurs, so a literal ';' inside a
// .ascii/.asciiz string is treated as a comment delimiter. This mirrors
// the contract spelled out for the line normalizer: quoting is not
// tracked at this stage.
func normalize(source string) []fstring {
	rawLines := strings.Split(source, "\n")
	lines := make([]fstring, len(rawLines))
	for i, raw := range rawLines {
		raw = strings.TrimRight(raw, "\r")
		lines[i] = newFstring(i+1, raw).stripComment().trim()
	}
	return lines
}

// stripComment removes everything from the first ';' to the end of the
// line, without regard to string quoting.
func (l fstring) stripComment() fstring {
	i := l.scanUntil(func(c byte) bool { return c == ';' })
	return l.trunc(i)
}

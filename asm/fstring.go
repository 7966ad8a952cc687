// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// An fstring is a string that keeps track of its position within the
// source line it was parsed from, so that errors can point back at the
// exact column that caused them.
type fstring struct {
	row    int    // 1-based line number of substring
	column int    // 0-based column of start of substring
	str    string // the actual substring of interest
	full   string // the full line as originally read from the source
}

func newFstring(row int, str string) fstring {
	return fstring{row, 0, str, str}
}

func (l fstring) String() string {
	return l.str
}

func (l fstring) consume(n int) fstring {
	return fstring{l.row, l.column + n, l.str[n:], l.full}
}

func (l fstring) trunc(n int) fstring {
	return fstring{l.row, l.column, l.str[:n], l.full}
}

func (l fstring) isEmpty() bool {
	return len(l.str) == 0
}

func (l fstring) startsWith(fn func(c byte) bool) bool {
	return len(l.str) > 0 && fn(l.str[0])
}

func (l fstring) startsWithChar(c byte) bool {
	return len(l.str) > 0 && l.str[0] == c
}

func (l fstring) startsWithString(s string) bool {
	return len(l.str) >= len(s) && l.str[:len(s)] == s
}

func (l fstring) endsWithChar(c byte) bool {
	return len(l.str) > 0 && l.str[len(l.str)-1] == c
}

func (l fstring) consumeWhitespace() fstring {
	return l.consume(l.scanWhile(whitespace))
}

func (l fstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && fn(l.str[i]); i++ {
	}
	return i
}

func (l fstring) scanUntil(fn func(c byte) bool) int {
	i := 0
	for ; i < len(l.str) && !fn(l.str[i]); i++ {
	}
	return i
}

func (l fstring) consumeWhile(fn func(c byte) bool) (consumed, remain fstring) {
	i := l.scanWhile(fn)
	return l.trunc(i), l.consume(i)
}

func (l fstring) consumeUntil(fn func(c byte) bool) (consumed, remain fstring) {
	i := l.scanUntil(fn)
	return l.trunc(i), l.consume(i)
}

func (l fstring) consumeUntilChar(c byte) (consumed, remain fstring) {
	return l.consumeUntil(func(b byte) bool { return b == c })
}

// trim returns l with leading and trailing whitespace removed.
func (l fstring) trim() fstring {
	_, l = l.consumeWhile(whitespace)
	i := len(l.str)
	for i > 0 && whitespace(l.str[i-1]) {
		i--
	}
	return l.trunc(i)
}

//
// character helper functions
//

func whitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func alpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func decimal(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexadecimal(c byte) bool {
	return decimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func identStartChar(c byte) bool {
	return alpha(c) || c == '_'
}

func identChar(c byte) bool {
	return alpha(c) || decimal(c) || c == '_'
}

func stringQuote(c byte) bool {
	return c == '\'' || c == '"'
}

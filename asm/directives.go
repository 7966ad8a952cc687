// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// directive identifies a pseudo-op recognized by the classifier.
type directive byte

const (
	dirNone directive = iota
	dirOrigin
	dirReserve
	dirByte
	dirWord
	dirDword
	dirAscii
	dirAsciiz
	dirAlign
	dirExport
)

var directiveNames = map[string]directive{
	".org":     dirOrigin,
	".res":     dirReserve,
	".byte":    dirByte,
	".word":    dirWord,
	".dword":   dirDword,
	".ascii":   dirAscii,
	".asciiz":  dirAsciiz,
	".align":   dirAlign,
	".export":  dirExport,
}

// unitWidth is the per-value byte width of a data directive.
func (d directive) unitWidth() int {
	switch d {
	case dirWord:
		return 2
	case dirDword:
		return 4
	default:
		return 1
	}
}

// parseOrigin parses the operand of ".org", a single 16-bit value.
// The operand must be a numeric literal; identifiers are rejected, bound
// or not, since the location counter itself depends on it before any
// later label can be bound.
func parseOrigin(operandText fstring) (int, error) {
	v, err := parseValue(operandText, false)
	if err != nil {
		return 0, err
	}
	if v.isIdent {
		return 0, newError(kindSyntax, operandText, "'.org' requires a literal address")
	}
	if err := checkRange(operandText, v.num, 0, 0xffff, "origin"); err != nil {
		return 0, err
	}
	return int(v.num), nil
}

// parseReserve parses the operand of ".res", a literal byte count.
func parseReserve(operandText fstring) (int, error) {
	v, err := parseValue(operandText, false)
	if err != nil {
		return 0, err
	}
	if v.isIdent {
		return 0, newError(kindSyntax, operandText, "'.res' requires a literal count")
	}
	if err := checkRange(operandText, v.num, 0, 0xffff, "reserve count"); err != nil {
		return 0, err
	}
	return int(v.num), nil
}

// parseAlign parses the operand of ".align", a power-of-two boundary.
func parseAlign(operandText fstring) (int, error) {
	v, err := parseValue(operandText, false)
	if err != nil {
		return 0, err
	}
	if v.isIdent || v.num <= 0 || v.num&(v.num-1) != 0 {
		return 0, newError(kindSyntax, operandText, "'.align' requires a power-of-two literal")
	}
	return int(v.num), nil
}

// parseExport parses the operand of ".export", a single identifier that
// must already name a bound label by the time the directive executes
// forward exports of labels defined later in the file are rejected,
// since the exported address must be known at the point of export.
func parseExport(operandText fstring) (string, error) {
	operandText = operandText.trim()
	if operandText.isEmpty() || operandText.scanWhile(identChar) != len(operandText.str) || !identStartChar(operandText.str[0]) {
		return "", newError(kindSyntax, operandText, "'.export' requires an identifier")
	}
	return operandText.str, nil
}

// parseValueList splits a comma-separated list of value tokens, used by
// ".byte"/".word"/".dword". Each token is parsed as a value (literal,
// single-character literal, or identifier); resolution of identifiers is
// always deferred to Pass 2.
func parseValueList(operandText fstring) ([]value, error) {
	var values []value
	rest := operandText
	for {
		rest = rest.trim()
		if rest.isEmpty() {
			return nil, newError(kindSyntax, operandText, "expected a value")
		}
		tok, remain := rest.consumeUntilChar(',')
		v, err := parseValue(tok.trim(), true)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		if remain.isEmpty() {
			return values, nil
		}
		rest = remain.consume(1)
	}
}

// stringItem is one comma-separated element of a ".ascii"/".asciiz"
// operand list: either a literal run of characters from a quoted string,
// or a single value token (typically used to splice in a raw byte like a
// newline between two string runs).
type stringItem struct {
	text    fstring
	literal []byte // set when this item came from a quoted string
	val     *value // set when this item is a bare value token
}

// parseStringList parses the mixed quoted-string/value-token operand list
// accepted by ".ascii" and ".asciiz". Every character inside a quoted
// string must be 7-bit US-ASCII; an unterminated string is a Syntax
// error.
func parseStringList(operandText fstring) ([]stringItem, error) {
	var items []stringItem
	rest := operandText
	for {
		rest = rest.trim()
		if rest.isEmpty() {
			return nil, newError(kindSyntax, operandText, "expected a string or value")
		}
		if rest.startsWith(stringQuote) {
			quote := rest.str[0]
			body := rest.consume(1)
			i := body.scanUntil(func(c byte) bool { return c == quote })
			if i == len(body.str) {
				return nil, newError(kindSyntax, operandText, "unterminated string literal")
			}
			lit := body.trunc(i)
			bytes := make([]byte, len(lit.str))
			for j := 0; j < len(lit.str); j++ {
				c := lit.str[j]
				if c >= 0x80 {
					return nil, newError(kindSyntax, lit, "string literal is not 7-bit US-ASCII")
				}
				bytes[j] = c
			}
			items = append(items, stringItem{text: lit, literal: bytes})
			rest = body.consume(i + 1)
		} else {
			tok, remain := rest.consumeUntilChar(',')
			v, err := parseValue(tok.trim(), false)
			if err != nil {
				return nil, err
			}
			items = append(items, stringItem{text: tok, val: &v})
			rest = remain
		}
		rest = rest.trim()
		if rest.isEmpty() {
			return items, nil
		}
		if !rest.startsWithChar(',') {
			return nil, newError(kindSyntax, rest, "expected ',' between string list items")
		}
		rest = rest.consume(1)
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/sokoide/6502-assembler/isa"
)

// segKind identifies what a segment contributes to the final byte stream.
type segKind byte

const (
	segInstruction segKind = iota
	segData
	segReserve
	segAlign
)

// dataItem is one element of a data segment: either a literal byte
// already known in Pass 1 (from a quoted string) or a value that must be
// resolved against the symbol table in Pass 2.
type dataItem struct {
	isLiteral bool
	lit       byte
	val       value
}

// segment is one line's worth of located output, in source order. Every
// segment records the address it was located at (for symbol resolution
// and relative-branch math), but the final byte stream is simply the
// concatenation of every segment's encoded bytes in source order: a
// ".org" that moves the location counter backward or forward never
// inserts a gap or reorders output.
type segment struct {
	kind segKind
	addr int
	line fstring

	// segInstruction
	mnemonic string
	variant  *isa.Instruction
	operand  operand

	// segData
	width int
	items []dataItem

	// segReserve, segAlign
	size int
}

// layout is the Pass-1 state: a single left-to-right walk of the
// normalized source that binds every label to an address and fixes the
// size (and, for instructions, the addressing-mode variant) of every
// line. Pass 2 never revisits either decision.
type layout struct {
	lines    []fstring
	pc       int
	labels   map[string]int
	segments []segment
	exports  []Export
}

func newLayout(lines []fstring, origin int) *layout {
	return &layout{lines: lines, pc: origin, labels: map[string]int{}}
}

func (a *layout) run() error {
	for _, line := range a.lines {
		if err := a.classifyLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (a *layout) classifyLine(line fstring) error {
	rest := line
	if ident, remain, ok := tryLabel(rest); ok {
		if _, exists := a.labels[ident]; exists {
			return newError(kindSymbol, line, "label '%s' already defined", ident)
		}
		a.labels[ident] = a.pc
		rest = remain.trim()
	}
	if rest.isEmpty() {
		return nil
	}

	if rest.startsWithChar('*') {
		return a.classifyOriginShorthand(line, rest)
	}

	word, operandText := splitWord(rest)
	if word.startsWithChar('.') {
		return a.classifyDirective(line, word, operandText)
	}
	return a.classifyInstruction(line, word, operandText)
}

// classifyOriginShorthand handles the "* = $HHHH" alternate origin
// syntax some 6502 assemblers accept alongside ".org".
func (a *layout) classifyOriginShorthand(line, rest fstring) error {
	rest = rest.consume(1).trim()
	if !rest.startsWithChar('=') {
		return newError(kindSyntax, line, "expected '=' after '*'")
	}
	n, err := parseOrigin(rest.consume(1).trim())
	if err != nil {
		return err
	}
	a.pc = n
	return nil
}

// tryLabel recognizes a leading "IDENT:" at the start of a line.
func tryLabel(line fstring) (ident string, remain fstring, ok bool) {
	if !line.startsWith(identStartChar) {
		return "", line, false
	}
	n := line.scanWhile(identChar)
	name := line.trunc(n)
	rest := line.consume(n)
	if !rest.startsWithChar(':') {
		return "", line, false
	}
	return name.str, rest.consume(1), true
}

// splitWord extracts the leading directive or mnemonic token (a '.'
// directive keeps its leading dot) and returns the remaining operand
// text, trimmed.
func splitWord(line fstring) (word, operandText fstring) {
	line = line.trim()
	n := 0
	if line.startsWithChar('.') {
		n = 1 + line.consume(1).scanWhile(identChar)
	} else {
		n = line.scanWhile(identChar)
	}
	return line.trunc(n), line.consume(n).trim()
}

func (a *layout) classifyDirective(line, word, operandText fstring) error {
	d, ok := directiveNames[strings.ToLower(word.str)]
	if !ok {
		return newError(kindSyntax, line, "unknown directive '%s'", word.str)
	}

	switch d {
	case dirOrigin:
		n, err := parseOrigin(operandText)
		if err != nil {
			return err
		}
		a.pc = n

	case dirReserve:
		n, err := parseReserve(operandText)
		if err != nil {
			return err
		}
		a.segments = append(a.segments, segment{kind: segReserve, addr: a.pc, line: line, size: n})
		a.pc += n

	case dirByte, dirWord, dirDword:
		values, err := parseValueList(operandText)
		if err != nil {
			return err
		}
		width := d.unitWidth()
		items := make([]dataItem, len(values))
		for i, v := range values {
			items[i] = dataItem{val: v}
		}
		a.segments = append(a.segments, segment{kind: segData, addr: a.pc, line: line, width: width, items: items})
		a.pc += width * len(values)

	case dirAscii, dirAsciiz:
		strItems, err := parseStringList(operandText)
		if err != nil {
			return err
		}
		var items []dataItem
		for _, si := range strItems {
			if si.val != nil {
				items = append(items, dataItem{val: *si.val})
				continue
			}
			for _, b := range si.literal {
				items = append(items, dataItem{isLiteral: true, lit: b})
			}
		}
		if d == dirAsciiz {
			items = append(items, dataItem{isLiteral: true, lit: 0})
		}
		a.segments = append(a.segments, segment{kind: segData, addr: a.pc, line: line, width: 1, items: items})
		a.pc += len(items)

	case dirAlign:
		boundary, err := parseAlign(operandText)
		if err != nil {
			return err
		}
		pad := (boundary - (a.pc % boundary)) % boundary
		a.segments = append(a.segments, segment{kind: segAlign, addr: a.pc, line: line, size: pad})
		a.pc += pad

	case dirExport:
		name, err := parseExport(operandText)
		if err != nil {
			return err
		}
		addr, bound := a.labels[name]
		if !bound {
			return newError(kindSymbol, line, "'.export' target '%s' is not yet defined", name)
		}
		a.exports = append(a.exports, Export{Name: name, Address: uint16(addr)})

	default:
		return newError(kindInternal, line, "unhandled directive '%s'", word.str)
	}
	return nil
}

func (a *layout) classifyInstruction(line, word, operandText fstring) error {
	mnemonic := strings.ToUpper(word.str)
	if !isa.Valid(mnemonic) {
		return newError(kindSyntax, line, "unknown mnemonic '%s'", word.str)
	}
	candidates := isa.Lookup(mnemonic)

	op, err := parseOperand(operandText)
	if err != nil {
		return err
	}

	variant := selectVariant(candidates, op, a.labels)
	if variant == nil {
		return newError(kindMode, line, "'%s' does not support this addressing mode", mnemonic)
	}

	a.segments = append(a.segments, segment{
		kind: segInstruction, addr: a.pc, line: line,
		mnemonic: mnemonic, variant: variant, operand: op,
	})
	a.pc += int(variant.Length)
	return nil
}

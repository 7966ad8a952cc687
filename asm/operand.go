// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"

	"github.com/sokoide/6502-assembler/isa"
)

// indexKind is the ",X" / ",Y" index register suffix of an operand, if
// any.
type indexKind byte

const (
	indexNone indexKind = iota
	indexX
	indexY
)

// operandClass is the syntactic shape of an instruction operand, decided
// purely from its punctuation (before any symbol is resolved).
type operandClass byte

const (
	classImplied     operandClass = iota // no operand text
	classAccumulator                     // "A"
	classImmediate                       // "#..."
	classZeroPage                        // "$HH" (1-2 hex digits)
	classAbsolute                        // "$HHHH" (3-4 hex digits), unambiguous
	classIdentifier                      // bare identifier: zp/abs ambiguous, or a branch target
	classIndirect                        // "(...)"
	classIndirectX                       // "(...,X)"
	classIndirectY                       // "(...),Y"
)

// operand is the parsed form of an instruction's operand text.
type operand struct {
	text  fstring
	class operandClass
	index indexKind
	val   value // meaningful for every class except Implied/Accumulator
}

// parseOperand classifies the operand text following a mnemonic. It does
// not know which mnemonic it belongs to: mode selection against the
// instruction's candidate variants happens separately in selectVariant.
func parseOperand(line fstring) (operand, error) {
	line = line.trim()

	if line.isEmpty() {
		return operand{text: line, class: classImplied}, nil
	}

	if len(line.str) == 1 && (line.str[0] == 'A' || line.str[0] == 'a') {
		return operand{text: line, class: classAccumulator}, nil
	}

	switch {
	case line.startsWithChar('#'):
		return parseImmediateOperand(line)
	case line.startsWithChar('('):
		return parseIndirectOperand(line)
	default:
		return parseDirectOperand(line)
	}
}

func parseImmediateOperand(line fstring) (operand, error) {
	rest := line.consume(1)
	xf := xformNone
	switch {
	case rest.startsWithChar('<'):
		xf, rest = xformLow, rest.consume(1)
	case rest.startsWithChar('>'):
		xf, rest = xformHigh, rest.consume(1)
	}

	v, err := parseValue(rest, false)
	if err != nil {
		return operand{}, err
	}
	v.xform = xf
	return operand{text: line, class: classImmediate, val: v}, nil
}

func parseIndirectOperand(line fstring) (operand, error) {
	inner, after := line.consume(1).consumeUntilChar(')')
	if after.isEmpty() {
		return operand{}, newError(kindSyntax, line, "unterminated indirect operand '%s'", line.str)
	}
	after = after.consume(1) // consume ')'

	switch {
	case inner.endsWithChar('X') || inner.endsWithChar('x'):
		if !strings.HasSuffix(inner.str, ",X") && !strings.HasSuffix(inner.str, ",x") {
			return operand{}, newError(kindSyntax, line, "invalid indirect operand '%s'", line.str)
		}
		if !after.isEmpty() {
			return operand{}, newError(kindSyntax, line, "invalid indirect operand '%s'", line.str)
		}
		v, err := parseValue(inner.trunc(len(inner.str)-2), false)
		if err != nil {
			return operand{}, err
		}
		return operand{text: line, class: classIndirectX, val: v}, nil

	case after.startsWithString(",Y") || after.startsWithString(",y"):
		if len(after.str) != 2 {
			return operand{}, newError(kindSyntax, line, "invalid indirect operand '%s'", line.str)
		}
		v, err := parseValue(inner, false)
		if err != nil {
			return operand{}, err
		}
		return operand{text: line, class: classIndirectY, val: v}, nil

	case after.isEmpty():
		v, err := parseValue(inner, false)
		if err != nil {
			return operand{}, err
		}
		return operand{text: line, class: classIndirect, val: v}, nil

	default:
		return operand{}, newError(kindSyntax, line, "invalid indirect operand '%s'", line.str)
	}
}

func parseDirectOperand(line fstring) (operand, error) {
	base, suffix := line.consumeUntilChar(',')

	index := indexNone
	if !suffix.isEmpty() {
		switch {
		case suffix.startsWithString(",X") || suffix.startsWithString(",x"):
			index = indexX
		case suffix.startsWithString(",Y") || suffix.startsWithString(",y"):
			index = indexY
		default:
			return operand{}, newError(kindSyntax, line, "invalid index suffix '%s'", suffix.str)
		}
		if len(suffix.str) != 2 {
			return operand{}, newError(kindSyntax, line, "invalid index suffix '%s'", suffix.str)
		}
	}

	base = base.trim()
	if base.isEmpty() {
		return operand{}, newError(kindSyntax, line, "missing operand in '%s'", line.str)
	}

	var class operandClass
	switch {
	case base.startsWithChar('$'):
		digits := base.consume(1)
		switch n := len(digits.str); {
		case n == 0 || digits.scanWhile(hexadecimal) != n:
			return operand{}, newError(kindSyntax, line, "invalid hexadecimal literal '%s'", base.str)
		case n <= 2:
			class = classZeroPage
		case n <= 4:
			class = classAbsolute
		default:
			return operand{}, newError(kindSyntax, line, "hexadecimal literal '%s' too wide for an address", base.str)
		}

	case identStartChar(base.str[0]):
		class = classIdentifier

	default:
		return operand{}, newError(kindSyntax, line, "unknown addressing mode format '%s'", line.str)
	}

	v, err := parseValue(base, false)
	if err != nil {
		return operand{}, err
	}
	return operand{text: line, class: class, index: index, val: v}, nil
}

func findMode(candidates []*isa.Instruction, mode isa.Mode) *isa.Instruction {
	for _, c := range candidates {
		if c.Mode == mode {
			return c
		}
	}
	return nil
}

// selectVariant chooses the single addressing-mode variant a parsed
// operand resolves to, among a mnemonic's candidate variants. For a bare
// identifier operand whose mnemonic admits both a zero-page and an
// absolute encoding, the choice depends on whether the identifier is
// already bound (in the Pass-1-so-far symbol table) to an address
// 0xFF or below: if so the shorter zero-page encoding is chosen, and
// pinned from that point on; otherwise absolute is chosen, which is
// always safe for a forward reference. This choice is made exactly once
// during Pass 1 and Pass 2 never revisits it.
func selectVariant(candidates []*isa.Instruction, op operand, symtab map[string]int) *isa.Instruction {
	switch op.class {
	case classImplied:
		if inst := findMode(candidates, isa.IMP); inst != nil {
			return inst
		}
		return findMode(candidates, isa.ACC)

	case classAccumulator:
		return findMode(candidates, isa.ACC)

	case classImmediate:
		return findMode(candidates, isa.IMM)

	case classZeroPage:
		return findMode(candidates, zeroPageMode(op.index))

	case classAbsolute:
		return findMode(candidates, absoluteMode(op.index))

	case classIdentifier:
		zp := findMode(candidates, zeroPageMode(op.index))
		ab := findMode(candidates, absoluteMode(op.index))
		switch {
		case op.index == indexNone && zp == nil && ab == nil:
			for _, c := range candidates {
				if c.IsBranch() {
					return c
				}
			}
			return nil
		case zp != nil && ab != nil:
			if op.val.boundBelow256(symtab) {
				return zp
			}
			return ab
		case ab != nil:
			return ab
		default:
			return zp
		}

	case classIndirect:
		return findMode(candidates, isa.IND)
	case classIndirectX:
		return findMode(candidates, isa.IDX)
	case classIndirectY:
		return findMode(candidates, isa.IDY)
	default:
		return nil
	}
}

func zeroPageMode(index indexKind) isa.Mode {
	switch index {
	case indexX:
		return isa.ZPX
	case indexY:
		return isa.ZPY
	default:
		return isa.ZPG
	}
}

func absoluteMode(index indexKind) isa.Mode {
	switch index {
	case indexX:
		return isa.ABX
	case indexY:
		return isa.ABY
	default:
		return isa.ABS
	}
}

// encodeOperand resolves op against the symbol table and produces the
// operand bytes (everything after the opcode byte) for the chosen
// variant, range-checking the resolved value against its field width.
func encodeOperand(variant *isa.Instruction, op operand, addr int, symtab map[string]int) ([]byte, error) {
	switch variant.Mode {
	case isa.IMP, isa.ACC:
		return nil, nil

	case isa.REL:
		n, err := op.val.resolve(symtab)
		if err != nil {
			return nil, err
		}
		offset := int(n) - (addr + int(variant.Length))
		if offset < -128 || offset > 127 {
			return nil, newError(kindRange, op.text,
				"branch offset %d out of range -128..127", offset)
		}
		return []byte{byte(offset)}, nil

	case isa.IMM:
		n, err := op.val.resolve(symtab)
		if err != nil {
			return nil, err
		}
		if err := checkRange(op.text, n, 0, 0xff, "immediate"); err != nil {
			return nil, err
		}
		return []byte{byte(n)}, nil

	case isa.ZPG, isa.ZPX, isa.ZPY, isa.IDX, isa.IDY:
		n, err := op.val.resolve(symtab)
		if err != nil {
			return nil, err
		}
		if err := checkRange(op.text, n, 0, 0xff, "zero-page"); err != nil {
			return nil, err
		}
		return []byte{byte(n)}, nil

	case isa.ABS, isa.ABX, isa.ABY, isa.IND:
		n, err := op.val.resolve(symtab)
		if err != nil {
			return nil, err
		}
		if err := checkRange(op.text, n, 0, 0xffff, "absolute"); err != nil {
			return nil, err
		}
		return toBytes(2, int(n)), nil

	default:
		return nil, newError(kindInternal, op.text, "unhandled addressing mode %s", variant.Mode)
	}
}

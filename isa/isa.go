// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isa describes the documented MOS 6502 instruction set: every
// (mnemonic, addressing mode) pair, its opcode byte, and its encoded
// size. It carries no emulation behavior; it exists purely so that the
// asm package can classify operands and size instructions.
package isa

import "strings"

// Mode describes a memory addressing mode.
type Mode byte

// All addressing modes used by the documented 6502 instruction set.
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

var modeNames = [...]string{
	"IMM", "IMP", "REL", "ZPG", "ZPX", "ZPY",
	"ABS", "ABX", "ABY", "IND", "IDX", "IDY", "ACC",
}

// String returns the short mnemonic for a mode, e.g. "ZPG".
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "???"
}

// Instruction describes one (mnemonic, addressing mode) variant of the
// documented 6502 instruction set: its opcode byte and its total encoded
// size (opcode + operand bytes).
type Instruction struct {
	Name   string // all-caps mnemonic
	Mode   Mode   // addressing mode recognized by this variant
	Opcode byte   // opcode byte
	Length byte   // total encoded size in bytes: 1, 2, or 3
}

// IsBranch reports whether the instruction is a relative-addressed
// branch, whose operand is always a label resolved via the
// relative-offset law rather than an absolute or zero-page address.
func (i *Instruction) IsBranch() bool {
	return i.Mode == REL
}

type entry struct {
	name   string
	mode   Mode
	opcode byte
	length byte
}

// variants holds every documented (mnemonic, mode) pair of the NMOS 6502
// instruction set. 65C02 additions (BRA, PHX/PHY/PLX/PLY, STZ, TRB/TSB,
// the (zp) indirect modes on ADC/AND/CMP/EOR/ORA/SBC/STA/LDA, the
// immediate/absolute,X forms of BIT, and the accumulator forms of
// INC/DEC) are deliberately excluded: this assembler targets the
// documented 6502, not the 65C02 superset.
var variants = []entry{
	{"LDA", IMM, 0xa9, 2}, {"LDA", ZPG, 0xa5, 2}, {"LDA", ZPX, 0xb5, 2},
	{"LDA", ABS, 0xad, 3}, {"LDA", ABX, 0xbd, 3}, {"LDA", ABY, 0xb9, 3},
	{"LDA", IDX, 0xa1, 2}, {"LDA", IDY, 0xb1, 2},

	{"LDX", IMM, 0xa2, 2}, {"LDX", ZPG, 0xa6, 2}, {"LDX", ZPY, 0xb6, 2},
	{"LDX", ABS, 0xae, 3}, {"LDX", ABY, 0xbe, 3},

	{"LDY", IMM, 0xa0, 2}, {"LDY", ZPG, 0xa4, 2}, {"LDY", ZPX, 0xb4, 2},
	{"LDY", ABS, 0xac, 3}, {"LDY", ABX, 0xbc, 3},

	{"STA", ZPG, 0x85, 2}, {"STA", ZPX, 0x95, 2}, {"STA", ABS, 0x8d, 3},
	{"STA", ABX, 0x9d, 3}, {"STA", ABY, 0x99, 3}, {"STA", IDX, 0x81, 2},
	{"STA", IDY, 0x91, 2},

	{"STX", ZPG, 0x86, 2}, {"STX", ZPY, 0x96, 2}, {"STX", ABS, 0x8e, 3},

	{"STY", ZPG, 0x84, 2}, {"STY", ZPX, 0x94, 2}, {"STY", ABS, 0x8c, 3},

	{"ADC", IMM, 0x69, 2}, {"ADC", ZPG, 0x65, 2}, {"ADC", ZPX, 0x75, 2},
	{"ADC", ABS, 0x6d, 3}, {"ADC", ABX, 0x7d, 3}, {"ADC", ABY, 0x79, 3},
	{"ADC", IDX, 0x61, 2}, {"ADC", IDY, 0x71, 2},

	{"SBC", IMM, 0xe9, 2}, {"SBC", ZPG, 0xe5, 2}, {"SBC", ZPX, 0xf5, 2},
	{"SBC", ABS, 0xed, 3}, {"SBC", ABX, 0xfd, 3}, {"SBC", ABY, 0xf9, 3},
	{"SBC", IDX, 0xe1, 2}, {"SBC", IDY, 0xf1, 2},

	{"CMP", IMM, 0xc9, 2}, {"CMP", ZPG, 0xc5, 2}, {"CMP", ZPX, 0xd5, 2},
	{"CMP", ABS, 0xcd, 3}, {"CMP", ABX, 0xdd, 3}, {"CMP", ABY, 0xd9, 3},
	{"CMP", IDX, 0xc1, 2}, {"CMP", IDY, 0xd1, 2},

	{"CPX", IMM, 0xe0, 2}, {"CPX", ZPG, 0xe4, 2}, {"CPX", ABS, 0xec, 3},

	{"CPY", IMM, 0xc0, 2}, {"CPY", ZPG, 0xc4, 2}, {"CPY", ABS, 0xcc, 3},

	{"BIT", ZPG, 0x24, 2}, {"BIT", ABS, 0x2c, 3},

	{"CLC", IMP, 0x18, 1}, {"SEC", IMP, 0x38, 1},
	{"CLI", IMP, 0x58, 1}, {"SEI", IMP, 0x78, 1},
	{"CLD", IMP, 0xd8, 1}, {"SED", IMP, 0xf8, 1},
	{"CLV", IMP, 0xb8, 1},

	{"BCC", REL, 0x90, 2}, {"BCS", REL, 0xb0, 2},
	{"BEQ", REL, 0xf0, 2}, {"BNE", REL, 0xd0, 2},
	{"BMI", REL, 0x30, 2}, {"BPL", REL, 0x10, 2},
	{"BVC", REL, 0x50, 2}, {"BVS", REL, 0x70, 2},

	{"BRK", IMP, 0x00, 1},

	{"AND", IMM, 0x29, 2}, {"AND", ZPG, 0x25, 2}, {"AND", ZPX, 0x35, 2},
	{"AND", ABS, 0x2d, 3}, {"AND", ABX, 0x3d, 3}, {"AND", ABY, 0x39, 3},
	{"AND", IDX, 0x21, 2}, {"AND", IDY, 0x31, 2},

	{"ORA", IMM, 0x09, 2}, {"ORA", ZPG, 0x05, 2}, {"ORA", ZPX, 0x15, 2},
	{"ORA", ABS, 0x0d, 3}, {"ORA", ABX, 0x1d, 3}, {"ORA", ABY, 0x19, 3},
	{"ORA", IDX, 0x01, 2}, {"ORA", IDY, 0x11, 2},

	{"EOR", IMM, 0x49, 2}, {"EOR", ZPG, 0x45, 2}, {"EOR", ZPX, 0x55, 2},
	{"EOR", ABS, 0x4d, 3}, {"EOR", ABX, 0x5d, 3}, {"EOR", ABY, 0x59, 3},
	{"EOR", IDX, 0x41, 2}, {"EOR", IDY, 0x51, 2},

	{"INC", ZPG, 0xe6, 2}, {"INC", ZPX, 0xf6, 2},
	{"INC", ABS, 0xee, 3}, {"INC", ABX, 0xfe, 3},

	{"DEC", ZPG, 0xc6, 2}, {"DEC", ZPX, 0xd6, 2},
	{"DEC", ABS, 0xce, 3}, {"DEC", ABX, 0xde, 3},

	{"INX", IMP, 0xe8, 1}, {"INY", IMP, 0xc8, 1},
	{"DEX", IMP, 0xca, 1}, {"DEY", IMP, 0x88, 1},

	{"JMP", ABS, 0x4c, 3}, {"JMP", IND, 0x6c, 3},
	{"JSR", ABS, 0x20, 3}, {"RTS", IMP, 0x60, 1},

	{"RTI", IMP, 0x40, 1},

	{"NOP", IMP, 0xea, 1},

	{"TAX", IMP, 0xaa, 1}, {"TXA", IMP, 0x8a, 1},
	{"TAY", IMP, 0xa8, 1}, {"TYA", IMP, 0x98, 1},
	{"TXS", IMP, 0x9a, 1}, {"TSX", IMP, 0xba, 1},

	{"PHA", IMP, 0x48, 1}, {"PLA", IMP, 0x68, 1},
	{"PHP", IMP, 0x08, 1}, {"PLP", IMP, 0x28, 1},

	{"ASL", ACC, 0x0a, 1}, {"ASL", ZPG, 0x06, 2},
	{"ASL", ZPX, 0x16, 2}, {"ASL", ABS, 0x0e, 3}, {"ASL", ABX, 0x1e, 3},

	{"LSR", ACC, 0x4a, 1}, {"LSR", ZPG, 0x46, 2},
	{"LSR", ZPX, 0x56, 2}, {"LSR", ABS, 0x4e, 3}, {"LSR", ABX, 0x5e, 3},

	{"ROL", ACC, 0x2a, 1}, {"ROL", ZPG, 0x26, 2},
	{"ROL", ZPX, 0x36, 2}, {"ROL", ABS, 0x2e, 3}, {"ROL", ABX, 0x3e, 3},

	{"ROR", ACC, 0x6a, 1}, {"ROR", ZPG, 0x66, 2},
	{"ROR", ZPX, 0x76, 2}, {"ROR", ABS, 0x6e, 3}, {"ROR", ABX, 0x7e, 3},
}

var (
	byName map[string][]*Instruction
	all    []Instruction
)

func init() {
	all = make([]Instruction, len(variants))
	byName = make(map[string][]*Instruction, 64)
	for i, v := range variants {
		all[i] = Instruction{Name: v.name, Mode: v.mode, Opcode: v.opcode, Length: v.length}
		byName[v.name] = append(byName[v.name], &all[i])
	}
}

// Lookup returns every documented addressing-mode variant of the named
// mnemonic, or nil if the mnemonic doesn't exist. Mnemonic comparison is
// case-insensitive; the returned Instruction.Name is always upper-case.
func Lookup(mnemonic string) []*Instruction {
	return byName[strings.ToUpper(mnemonic)]
}

// Valid reports whether mnemonic names a documented 6502 instruction.
func Valid(mnemonic string) bool {
	return byName[strings.ToUpper(mnemonic)] != nil
}

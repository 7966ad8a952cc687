// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isa

import "testing"

func TestLookupFindsEveryVariant(t *testing.T) {
	variants := Lookup("LDA")
	if len(variants) != 8 {
		t.Fatalf("expected 8 LDA variants, got %d", len(variants))
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	if len(Lookup("lda")) != len(Lookup("LDA")) {
		t.Errorf("Lookup is not case-insensitive")
	}
}

func TestLookupUnknownMnemonic(t *testing.T) {
	if Lookup("FROB") != nil {
		t.Errorf("expected nil for unknown mnemonic")
	}
}

func TestValid(t *testing.T) {
	if !Valid("brk") {
		t.Errorf("expected BRK to be valid")
	}
	if Valid("bra") {
		t.Errorf("BRA is a 65C02 addition and should not be recognized")
	}
}

func TestOpcodeBytes(t *testing.T) {
	cases := []struct {
		mnemonic string
		mode     Mode
		opcode   byte
		length   byte
	}{
		{"LDA", IMM, 0xa9, 2},
		{"STA", ABS, 0x8d, 3},
		{"BRK", IMP, 0x00, 1},
		{"BNE", REL, 0xd0, 2},
		{"ASL", ACC, 0x0a, 1},
		{"JMP", IND, 0x6c, 3},
	}
	for _, c := range cases {
		var found *Instruction
		for _, v := range Lookup(c.mnemonic) {
			if v.Mode == c.mode {
				found = v
			}
		}
		if found == nil {
			t.Errorf("%s %s: no matching variant", c.mnemonic, c.mode)
			continue
		}
		if found.Opcode != c.opcode || found.Length != c.length {
			t.Errorf("%s %s: got opcode %#x length %d, want %#x %d",
				c.mnemonic, c.mode, found.Opcode, found.Length, c.opcode, c.length)
		}
	}
}

func TestIsBranch(t *testing.T) {
	for _, v := range Lookup("BEQ") {
		if !v.IsBranch() {
			t.Errorf("BEQ REL should report IsBranch")
		}
	}
	for _, v := range Lookup("LDA") {
		if v.IsBranch() {
			t.Errorf("LDA should never report IsBranch")
		}
	}
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"
	"testing"
)

// assemble is a test helper that assembles source starting at origin and
// fails the test immediately if assembly returns an error.
func assemble(t *testing.T, source string, origin uint16) *Result {
	t.Helper()
	r, err := Assemble(source, origin, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

// checkASM assembles source and compares the emitted bytes against a
// space-separated hex string, e.g. "A9 01 8D 00 03 00".
func checkASM(t *testing.T, source string, origin uint16, want string) {
	t.Helper()
	r := assemble(t, source, origin)
	got := byteString(r.Bytes)
	if got != want {
		t.Errorf("source:\n%s\ngot:  %s\nwant: %s", source, got, want)
	}
}

// checkASMError assembles source and requires it to fail, with an error
// message containing substr.
func checkASMError(t *testing.T, source string, origin uint16, substr string) {
	t.Helper()
	_, err := Assemble(source, origin, 0)
	if err == nil {
		t.Fatalf("expected an error for source:\n%s", source)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("error %q does not contain %q", err.Error(), substr)
	}
}

func TestBasicInstructions(t *testing.T) {
	checkASM(t, `
		.org $0200
		LDA #$01
		STA $0300
		BRK
	`, 0x0200, "A9 01 8D 00 03 00")
}

func TestZeroPageVsAbsolute(t *testing.T) {
	checkASM(t, `
		.org $0010
		VAL: .byte $42
		.org $0200
		LDA VAL
	`, 0x0010, "42 A5 10")
}

func TestForwardReferenceDefaultsAbsolute(t *testing.T) {
	checkASM(t, `
		.org $0200
		LDA TARGET
		TARGET: BRK
	`, 0x0200, "AD 03 02 00")
}

func TestOriginShorthandSyntax(t *testing.T) {
	checkASM(t, `
		* = $0300
		LDA #$01
	`, 0x0000, "A9 01")
}

func TestRelativeBranch(t *testing.T) {
	checkASM(t, `
		.org $0200
		LOOP: NOP
		BNE LOOP
	`, 0x0200, "EA D0 FD")
}

func TestLowHighByteImmediate(t *testing.T) {
	checkASM(t, `
		.org $1234
		TARGET: NOP
		.org $0200
		LDA #<TARGET
		LDA #>TARGET
	`, 0x0200, "EA A9 34 A9 12")
}

func TestLittleEndianWord(t *testing.T) {
	checkASM(t, `
		.org $0200
		.word $1234
	`, 0x0200, "34 12")
}

func TestDwordLittleEndian(t *testing.T) {
	checkASM(t, `
		.org $0200
		.dword $01020304
	`, 0x0200, "04 03 02 01")
}

func TestAsciizTerminator(t *testing.T) {
	checkASM(t, `
		.org $0200
		.asciiz "HI"
	`, 0x0200, "48 49 00")
}

func TestReserveEmitsNoBytes(t *testing.T) {
	checkASM(t, `
		.org $0200
		LDA #$01
		.res 4
		STA $10
	`, 0x0200, "A9 01 85 10")
}

func TestMultipleOriginsConcatenateInSourceOrder(t *testing.T) {
	checkASM(t, `
		.org $0300
		.byte $AA
		.org $0010
		.byte $BB
	`, 0x0000, "AA BB")
}

func TestDuplicateLabelIsSymbolError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		LOOP: NOP
		LOOP: NOP
	`, 0x0200, "already defined")
}

func TestUndefinedLabelIsSymbolError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		LDA MISSING
		BRK
	`, 0x0200, "not found")
}

func TestByteRangeError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		.byte 256
	`, 0x0200, "out of range")
}

func TestBranchOutOfRangeError(t *testing.T) {
	var b strings.Builder
	b.WriteString(".org $0200\nLOOP: NOP\n")
	for i := 0; i < 130; i++ {
		b.WriteString("NOP\n")
	}
	b.WriteString("BNE LOOP\n")
	checkASMError(t, b.String(), 0x0200, "out of range")
}

func TestUnknownMnemonicIsSyntaxError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		FROB #$01
	`, 0x0200, "unknown mnemonic")
}

func TestImpliedModeNotSupportedIsModeError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		LDA
	`, 0x0200, "addressing mode")
}

// A ';' inside a quoted string still starts a comment, because comment
// stripping runs before string tokenization and does not track quotes.
// This truncates the string literal before its closing quote, which is
// a Syntax error rather than the five-byte string a quote-aware
// assembler would emit.
func TestCommentStrippingIsNotQuoteAware(t *testing.T) {
	checkASMError(t, `
		.org $0200
		.ascii "AB;CD"
	`, 0x0200, "unterminated string")
}

func TestEmptySourceProducesNoBytes(t *testing.T) {
	r := assemble(t, "", 0x0200)
	if len(r.Bytes) != 0 {
		t.Errorf("expected no bytes, got %v", r.Bytes)
	}
}

func TestAssemblyIsDeterministic(t *testing.T) {
	source := ".org $0200\nLDA #$01\nSTA $10\n"
	r1 := assemble(t, source, 0x0200)
	r2 := assemble(t, source, 0x0200)
	if byteString(r1.Bytes) != byteString(r2.Bytes) {
		t.Errorf("non-deterministic output: %s vs %s", byteString(r1.Bytes), byteString(r2.Bytes))
	}
}

func TestOriginDoesNotChangeLength(t *testing.T) {
	source := "LDA #$01\nSTA $10\nBRK\n"
	r1 := assemble(t, source, 0x0200)
	r2 := assemble(t, source, 0x8000)
	if len(r1.Bytes) != len(r2.Bytes) {
		t.Errorf("length changed with origin: %d vs %d", len(r1.Bytes), len(r2.Bytes))
	}
}

func TestExportRecordsBoundAddress(t *testing.T) {
	r := assemble(t, `
		.org $0200
		START: NOP
		.export START
	`, 0x0200)
	if len(r.Exports) != 1 || r.Exports[0].Name != "START" || r.Exports[0].Address != 0x0200 {
		t.Errorf("unexpected exports: %+v", r.Exports)
	}
}

func TestExportOfUndefinedLabelIsSymbolError(t *testing.T) {
	checkASMError(t, `
		.org $0200
		.export MISSING
	`, 0x0200, "not yet defined")
}

func TestMnemonicCaseInsensitive(t *testing.T) {
	checkASM(t, `
		.org $0200
		lda #$01
	`, 0x0200, "A9 01")
}

func TestLabelNamesAreCaseSensitive(t *testing.T) {
	checkASMError(t, `
		.org $0200
		loop: NOP
		BNE LOOP
	`, 0x0200, "not found")
}

// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass cross-assembler for the documented
// NMOS 6502 instruction set. Source is normalized into comment-free,
// trimmed lines; Pass 1 walks those lines once to bind every label and
// fix the size of every instruction and data directive; Pass 2 resolves
// every operand against the completed symbol table and emits the final
// byte stream. Any error aborts the run: Assemble returns only the
// first diagnostic encountered, never a partial result.
package asm

import "fmt"

// Option is a bitmask of optional Assemble behaviors.
type Option int

// Verbose causes Assemble to print a trace of both passes to standard
// output as it runs.
const Verbose Option = 1 << iota

// Export records one symbol named by a ".export" directive, together
// with the address it was bound to by the end of Pass 1.
type Export struct {
	Name    string
	Address uint16
}

// Result is the outcome of a successful assembly.
type Result struct {
	Bytes   []byte
	Exports []Export
}

// Assemble assembles source, starting the location counter at origin,
// and returns the emitted bytes and any ".export"ed symbols. On error
// the returned Result is nil; the error's message is formatted exactly
// as "Line N: <message>. Original line: '<text>'".
func Assemble(source string, origin uint16, opts Option) (*Result, error) {
	verbose := opts&Verbose != 0
	lines := normalize(source)

	logSection(verbose, "pass 1: locating labels and instructions")
	loc := newLayout(lines, int(origin))
	if err := loc.run(); err != nil {
		return nil, err
	}
	logLabels(verbose, loc.labels)

	logSection(verbose, "pass 2: resolving operands and emitting code")
	bytes, err := generateCode(loc.segments, loc.labels)
	if err != nil {
		return nil, err
	}
	logLine(verbose, "%d bytes emitted: %s", len(bytes), byteString(bytes))

	return &Result{Bytes: bytes, Exports: loc.exports}, nil
}

func logSection(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	fmt.Println()
	fmt.Printf(format+"\n", args...)
}

func logLine(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf(format+"\n", args...)
}

func logLabels(verbose bool, labels map[string]int) {
	if !verbose || len(labels) == 0 {
		return
	}
	for name, addr := range labels {
		logLine(verbose, "  %-16s = $%04X", name, addr)
	}
}

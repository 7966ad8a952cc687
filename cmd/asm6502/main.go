// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sokoide/6502-assembler/asm"
	"github.com/sokoide/6502-assembler/console"
)

func main() {
	var (
		out     = flag.String("o", "", "output binary filename (one-shot mode only)")
		origin  = flag.Uint("origin", 0, "default origin address")
		verbose = flag.Bool("v", false, "trace both assembler passes")
	)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		console.New().RunCommands(os.Stdin, os.Stdout)
		return
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		exitOnError(err)
	}

	opts := asm.Option(0)
	if *verbose {
		opts |= asm.Verbose
	}

	result, err := asm.Assemble(string(source), uint16(*origin), opts)
	if err != nil {
		exitOnError(err)
	}

	if *out == "" {
		fmt.Printf("%d bytes assembled.\n", len(result.Bytes))
		return
	}

	if err := os.WriteFile(*out, result.Bytes, 0644); err != nil {
		exitOnError(err)
	}
	fmt.Printf("%d bytes written to '%s'.\n", len(result.Bytes), *out)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}

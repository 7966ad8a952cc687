// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console implements an interactive REPL front end for the
// assembler, built on the same command-tree library the emulator-hosting
// tool this assembler was adapted from uses for its own debugger shell.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/sokoide/6502-assembler/asm"
)

type state byte

const (
	stateProcessingCommands state = iota
	stateInteractiveAssembler
)

// errQuit signals RunCommands to stop after a "quit" command.
var errQuit = errors.New("quit")

// A Console drives the assembler from an interactive or scripted command
// stream, tracking the most recently assembled Result and a set of
// runtime-editable settings.
type Console struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	state       state
	pending     []string
	settings    *settings
	lastResult  *asm.Result
}

// New creates a Console with default settings.
func New() *Console {
	return &Console{
		state:    stateProcessingCommands,
		settings: newSettings(),
	}
}

// RunCommands reads commands from r and writes output to w until r is
// exhausted or a "quit" command is processed. When r is a terminal,
// prompts are displayed between commands.
func (c *Console) RunCommands(r io.Reader, w io.Writer) {
	c.input = bufio.NewScanner(r)
	c.output = bufio.NewWriter(w)

	if f, ok := r.(*os.File); ok {
		c.interactive = term.IsTerminal(int(f.Fd()))
	}

	for {
		c.prompt()

		line, err := c.getLine()
		if err != nil {
			break
		}

		var cmdErr error
		switch c.state {
		case stateProcessingCommands:
			cmdErr = c.processCommand(line)
		case stateInteractiveAssembler:
			cmdErr = c.processInteractiveLine(line)
		}
		if cmdErr == errQuit {
			break
		}
	}
	c.flush()
}

func (c *Console) processCommand(line string) error {
	var sel cmd.Selection
	if line != "" {
		var err error
		sel, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			c.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			c.println("Command is ambiguous.")
			return nil
		case err != nil:
			c.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if c.lastCmd != nil {
		sel = *c.lastCmd
	}

	if sel.Command == nil {
		return nil
	}
	if sel.Command.Data == nil && sel.Command.Subtree != nil {
		c.displayCommands(sel.Command.Subtree, sel.Command)
		return nil
	}

	c.lastCmd = &sel
	handler := sel.Command.Data.(func(*Console, cmd.Selection) error)
	return handler(c, sel)
}

func (c *Console) processInteractiveLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 1 && strings.ToUpper(fields[0]) == "END" {
		return c.assembleInteractive()
	}
	c.pending = append(c.pending, line)
	return nil
}

func (c *Console) assembleInteractive() error {
	defer func() {
		c.pending = nil
		c.state = stateProcessingCommands
	}()

	source := strings.Join(c.pending, "\n")
	opts := asm.Option(0)
	if c.settings.Verbose {
		opts |= asm.Verbose
	}

	result, err := asm.Assemble(source, c.settings.Origin, opts)
	if err != nil {
		c.printf("%v\n", err)
		return nil
	}

	c.lastResult = result
	c.printf("%d bytes assembled at $%04X.\n", len(result.Bytes), c.settings.Origin)
	return nil
}

func (c *Console) cmdHelp(sel cmd.Selection) error {
	if len(sel.Args) == 0 {
		c.displayCommands(cmds, nil)
		return nil
	}

	found, err := cmds.Lookup(strings.Join(sel.Args, " "))
	if err != nil {
		c.printf("%v\n", err)
		return nil
	}
	if found.Command.Subtree != nil {
		c.displayCommands(found.Command.Subtree, found.Command)
		return nil
	}
	c.displayUsage(found.Command)
	return nil
}

func (c *Console) cmdAssembleFile(sel cmd.Selection) error {
	if len(sel.Args) < 1 {
		c.displayUsage(sel.Command)
		return nil
	}

	filename := sel.Args[0]
	if filepath.Ext(filename) == "" {
		filename += ".asm"
	}

	opts := asm.Option(0)
	if c.settings.Verbose {
		opts |= asm.Verbose
	}
	if len(sel.Args) > 1 {
		verbose, err := strconv.ParseBool(sel.Args[1])
		if err != nil {
			c.displayUsage(sel.Command)
			return nil
		}
		if verbose {
			opts |= asm.Verbose
		}
	}

	source, err := os.ReadFile(filename)
	if err != nil {
		c.printf("Failed to open '%s': %v\n", filepath.Base(filename), err)
		return nil
	}

	result, err := asm.Assemble(string(source), c.settings.Origin, opts)
	if err != nil {
		c.printf("Failed to assemble '%s': %v\n", filepath.Base(filename), err)
		return nil
	}
	c.lastResult = result

	ext := filepath.Ext(filename)
	prefix := filename[:len(filename)-len(ext)]
	binFilename := filepath.Join(c.settings.OutDir, filepath.Base(prefix)+".bin")
	if err := os.WriteFile(binFilename, result.Bytes, 0644); err != nil {
		c.printf("Failed to write '%s': %v\n", filepath.Base(binFilename), err)
		return nil
	}

	c.printf("%d bytes written to '%s'.\n", len(result.Bytes), binFilename)
	return nil
}

func (c *Console) cmdAssembleInteractive(sel cmd.Selection) error {
	c.state = stateInteractiveAssembler
	c.pending = nil
	c.println("Entering interactive assembly mode. Type END to assemble.")
	return nil
}

func (c *Console) cmdExports(sel cmd.Selection) error {
	if c.lastResult == nil || len(c.lastResult.Exports) == 0 {
		c.println("No exports.")
		return nil
	}
	for _, e := range c.lastResult.Exports {
		c.printf("    %-24s $%04X\n", e.Name, e.Address)
	}
	return nil
}

func (c *Console) cmdSet(sel cmd.Selection) error {
	if len(sel.Args) == 0 {
		c.settings.Display(c.output)
		c.flush()
		return nil
	}
	if len(sel.Args) != 2 {
		c.displayUsage(sel.Command)
		return nil
	}

	key, raw := sel.Args[0], sel.Args[1]
	var value any
	switch {
	case raw == "true" || raw == "false":
		value, _ = strconv.ParseBool(raw)
	case strings.HasPrefix(raw, "$"):
		n, err := strconv.ParseUint(raw[1:], 16, 16)
		if err != nil {
			c.printf("Invalid hexadecimal value '%s'.\n", raw)
			return nil
		}
		value = uint16(n)
	default:
		value = raw
	}

	if err := c.settings.Set(key, value); err != nil {
		c.printf("Failed to set '%s': %v\n", key, err)
	}
	return nil
}

func (c *Console) cmdQuit(sel cmd.Selection) error {
	return errQuit
}

func (c *Console) displayCommands(tree *cmd.Tree, parent *cmd.Command) {
	c.printf("%s commands:\n", tree.Title)
	for _, command := range tree.Commands {
		if command.Brief != "" {
			c.printf("    %-15s  %s\n", command.Name, command.Brief)
		}
	}
	c.println()

	if parent != nil && len(parent.Shortcuts) > 0 {
		if len(parent.Shortcuts) > 1 {
			c.printf("Shortcuts: %s\n\n", strings.Join(parent.Shortcuts, ", "))
		} else {
			c.printf("Shortcut: %s\n\n", parent.Shortcuts[0])
		}
	}
}

func (c *Console) displayUsage(command *cmd.Command) {
	if command.Usage != "" {
		c.printf("Usage: %s\n", command.Usage)
	}
	if command.Description != "" {
		c.printf("%s\n", command.Description)
	}
	c.flush()
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.output, format, args...)
	c.flush()
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.output, args...)
	c.flush()
}

func (c *Console) flush() {
	c.output.Flush()
}

func (c *Console) getLine() (string, error) {
	if c.input.Scan() {
		return c.input.Text(), nil
	}
	if c.input.Err() != nil {
		return "", c.input.Err()
	}
	return "", io.EOF
}

func (c *Console) prompt() {
	if !c.interactive {
		return
	}
	switch c.state {
	case stateProcessingCommands:
		c.printf("* ")
	case stateInteractiveAssembler:
		c.printf("%2d  ", len(c.pending)+1)
	}
}

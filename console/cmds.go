// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("asm6502")

	root.AddCommand(cmd.Command{
		Name:        "help",
		Brief:       "Display help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Console).cmdHelp,
	})

	asmTree := cmd.NewTree("Assemble")
	root.AddCommand(cmd.Command{
		Name:    "assemble",
		Brief:   "Assemble commands",
		Subtree: asmTree,
	})
	asmTree.AddCommand(cmd.Command{
		Name:  "file",
		Brief: "Assemble a file from disk and save the binary to disk",
		Description: "Run the cross-assembler on the specified file," +
			" writing the emitted bytes to a .bin file of the same name.",
		Usage: "assemble file <filename> [<verbose>]",
		Data:  (*Console).cmdAssembleFile,
	})
	asmTree.AddCommand(cmd.Command{
		Name:  "interactive",
		Brief: "Start interactive assembly mode",
		Description: "Start interactive assembly mode. A new prompt will" +
			" appear, allowing you to enter lines of assembly source" +
			" interactively. Once you type END, the accumulated source is" +
			" assembled and the number of emitted bytes is displayed.",
		Usage: "assemble interactive",
		Data:  (*Console).cmdAssembleInteractive,
	})

	root.AddCommand(cmd.Command{
		Name:  "exports",
		Brief: "List exported addresses",
		Description: "Display every symbol bound by an '.export' directive" +
			" in the most recently assembled source, and the address it" +
			" resolved to.",
		Usage: "exports",
		Data:  (*Console).cmdExports,
	})

	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see the" +
			" current values of all configuration variables, type set" +
			" without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Console).cmdSet,
	})

	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Console).cmdQuit,
	})

	root.AddShortcut("a", "assemble file")
	root.AddShortcut("ai", "assemble interactive")
	root.AddShortcut("e", "exports")
	root.AddShortcut("?", "help")

	cmds = root
}

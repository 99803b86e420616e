// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"numword/cmd/numword/command"
	"numword/cmd/numword/replace"
	"numword/cmd/numword/stats"
	"numword/cmd/numword/text2digits"
)

var Numword = &command.Command{
	UsageLine: "numword",
	Long:      `Numword finds and normalizes spoken numbers in natural-language text.`,
}

func init() {
	Numword.Commands = []*command.Command{
		text2digits.Command,
		replace.Command,
		stats.Command,
	}
}

func mainUsage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", Numword.UsageLine)
	fmt.Fprintln(os.Stderr, "Available commands:")
	for _, c := range Numword.Commands {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", c.Name(), c.Short)
	}
	os.Exit(2)
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		mainUsage()
	}

	cmd := Numword.Lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "numword %s: unknown command\nRun 'numword' for usage.\n", args[0])
		os.Exit(2)
	}
	invoke(cmd, args)
	os.Exit(command.GetExitStatus())
}

func invoke(cmd *command.Command, args []string) {
	cmd.Flag.Usage = func() { cmd.Usage() }
	cmd.Flag.Parse(args[1:])
	ctx := context.Background()
	cmd.Run(ctx, cmd, cmd.Flag.Args())
}

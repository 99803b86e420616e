// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package command is numword's command-dispatch scaffolding, adapted from
// cmd/jindo/command: one *Command per verb, composed into a Commands tree
// and parsed with its own flag.FlagSet, the same shape cmd/go uses.
package command

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// A Command is one numword subcommand, like "numword replace" or
// "numword stats".
type Command struct {
	// Run runs the command. args are the arguments after the command name.
	Run func(ctx context.Context, cmd *Command, args []string)

	// UsageLine is the one-line usage message. The words between "numword"
	// and the first flag or argument are taken to be the command's name.
	UsageLine string

	// Short is the one-line description shown in the command list that
	// numword prints when run without a command.
	Short string

	// Long is the long description of the command; numword's usage output
	// does not print it.
	Long string

	// Flag is this command's own flag set.
	Flag flag.FlagSet

	// Commands lists subcommands, in the order numword's command list
	// prints them.
	Commands []*Command
}

// Lookup returns the subcommand named name, if any.
func (c *Command) Lookup(name string) *Command {
	for _, sub := range c.Commands {
		if sub.Name() == name && (len(sub.Commands) > 0 || sub.Runnable()) {
			return sub
		}
	}
	return nil
}

// LongName returns every word of UsageLine between "numword" and the first
// flag or argument.
func (c *Command) LongName() string {
	name := c.UsageLine
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	if name == "numword" {
		return ""
	}
	return strings.TrimPrefix(name, "numword ")
}

// Name returns the command's short name: the last word of LongName.
func (c *Command) Name() string {
	name := c.LongName()
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c *Command) Usage() {
	fmt.Fprintf(os.Stderr, "usage: %s\n", c.UsageLine)
	fmt.Fprintf(os.Stderr, "Run 'numword' with no arguments for the list of commands.\n")
	SetExitStatus(2)
	Exit()
}

// Runnable reports whether the command can itself be run, as opposed to
// being only a group of subcommands.
func (c *Command) Runnable() bool {
	return c.Run != nil
}

var atExitFuncs []func()

func AtExit(f func()) { atExitFuncs = append(atExitFuncs, f) }

func Exit() {
	for _, f := range atExitFuncs {
		f()
	}
	os.Exit(exitStatus)
}

func Fatalf(format string, args ...any) {
	Errorf(format, args...)
	Exit()
}

func Errorf(format string, args ...any) {
	log.Printf(format, args...)
	SetExitStatus(1)
}

func ExitIfErrors() {
	if exitStatus != 0 {
		Exit()
	}
}

var (
	exitStatus = 0
	exitMu     sync.Mutex
)

func SetExitStatus(n int) {
	exitMu.Lock()
	if exitStatus < n {
		exitStatus = n
	}
	exitMu.Unlock()
}

func GetExitStatus() int {
	return exitStatus
}

// Usage is a package-level usage hook. Package main does not set it; it
// points each command's Flag.Usage at that command's Usage method instead.
var Usage func()

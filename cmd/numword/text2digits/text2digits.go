// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package text2digits implements "numword text2digits": the strict parser
// CLI front end. The arguments are joined with spaces and the resulting
// phrase must be exactly one number.
package text2digits

import (
	"context"
	"fmt"
	"strings"

	"numword/cmd/numword/command"
	"numword/pkg/numword"
)

var Command = &command.Command{
	UsageLine: "numword text2digits [-lang code] phrase",
	Short:     "parse a single spoken number strictly",
	Long: `Text2digits parses its arguments, joined with a space, as exactly
one spoken number and prints its digit form, or reports the first error
(including an unresolved trailing connector) if the phrase isn't a valid
number on its own.`,
}

var langFlag string

func init() {
	Command.Run = run
	Command.Flag.StringVar(&langFlag, "lang", "en", "language code")
}

func run(ctx context.Context, cmd *command.Command, args []string) {
	if len(args) == 0 {
		cmd.Usage()
		return
	}
	interp, ok := numword.For(langFlag)
	if !ok {
		command.Fatalf("numword: unsupported language %q", langFlag)
		return
	}
	text, err := numword.Text2Digits(strings.Join(args, " "), interp)
	if err != nil {
		command.Fatalf("numword: %v", err)
		return
	}
	fmt.Println(text)
}

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package replace implements "numword replace": read text from stdin (or
// named files) and write it back with number words replaced by digits.
package replace

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"numword/cmd/numword/command"
	"numword/pkg/numword"
)

var Command = &command.Command{
	UsageLine: "numword replace [-lang code] [-threshold n] [file ...]",
	Short:     "replace spoken numbers with digits",
	Long: `Replace reads text from the named files, or from standard input if
none are given, and writes it back with every kept number occurrence
replaced by its digit form. -lang selects the language interpreter
(BCP-47, e.g. "en", "fr", "pt-BR"); -threshold sets the lone-number
suppression threshold (default 10).`,
}

var (
	langFlag      string
	thresholdFlag float64
)

func init() {
	Command.Run = run
	Command.Flag.StringVar(&langFlag, "lang", "en", "language code")
	Command.Flag.Float64Var(&thresholdFlag, "threshold", 10, "lone-number suppression threshold")
}

func run(ctx context.Context, cmd *command.Command, args []string) {
	interp, ok := numword.For(langFlag)
	if !ok {
		command.Fatalf("numword: unsupported language %q", langFlag)
		return
	}

	readers := []io.Reader{os.Stdin}
	if len(args) > 0 {
		readers = readers[:0]
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				command.Errorf("numword: %v", err)
				continue
			}
			defer f.Close()
			readers = append(readers, f)
		}
	}
	command.ExitIfErrors()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, r := range readers {
		text, err := io.ReadAll(r)
		if err != nil {
			command.Errorf("numword: %v", err)
			continue
		}
		fmt.Fprintln(w, numword.ReplaceNumbersInText(string(text), interp, thresholdFlag))
	}
}

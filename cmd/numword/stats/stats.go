// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package stats implements "numword stats": report how many number
// occurrences a file (or stdin) holds, and how much text they cover.
package stats

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"numword/cmd/numword/command"
	"numword/pkg/numword"
	"numword/pkg/numword/tok"
)

var Command = &command.Command{
	UsageLine: "numword stats [-lang code] [-threshold n] [file ...]",
	Short:     "report number-occurrence counts for a file or stdin",
	Long: `Stats reads text from the named files, or standard input if none
are given, and prints the count of kept number occurrences and the input
size for each, human-readable (via dustin/go-humanize).`,
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

	names := args
	if len(names) == 0 {
		names = []string{"-"}
	}

	var total int64
	for _, name := range names {
		var r io.Reader = os.Stdin
		if name != "-" {
			f, err := os.Open(name)
			if err != nil {
				command.Errorf("numword: %v", err)
				continue
			}
			defer f.Close()
			r = f
		}
		data, err := io.ReadAll(r)
		if err != nil {
			command.Errorf("numword: %v", err)
			continue
		}
		tokens := tok.Tokenize(string(data))
		occs := numword.FindNumbers(tokens, interp, thresholdFlag)
		fmt.Printf("%s: %s occurrence(s) in %s\n",
			name, humanize.Comma(int64(len(occs))), humanize.Bytes(uint64(len(data))))
		total += int64(len(occs))
	}
	if len(names) > 1 {
		fmt.Printf("total: %s occurrence(s)\n", humanize.Comma(total))
	}
	command.ExitIfErrors()
}

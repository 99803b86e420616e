// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package numwordtest holds small helpers shared by this module's own test
// files; it is not part of the public API.
package numwordtest

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStrings renders a unified diff between want and got, for assertions
// on long replaced strings where testify's default "expected vs actual"
// dump is too wide to read at a glance.
func DiffStrings(want, got string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "<diff unavailable: " + err.Error() + ">"
	}
	return strings.TrimRight(text, "\n")
}

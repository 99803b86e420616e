// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package de implements the German number interpreter. German spells most
// cardinals as a single run-together word ("einundzwanzig"), so Apply
// leans on pkg/numword/compound to split an unrecognized token into its
// known morphemes before interpreting them one at a time.
package de

import (
	"strings"

	"numword/pkg/numword/compound"
	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

var dictionary = compound.Dictionary(atomDictionary)

// German translates spoken German numbers into digit-buffer edits.
type German struct{}

func New() German { return German{} }

func (German) Code() string { return "de" }

func (g German) Apply(numFunc string, b *digitbuf.Buffer) error {
	if status := g.applyAtom(numFunc, b); status != digitbuf.NaN {
		return status
	}

	// A compound cardinal can itself carry an ordinal suffix
	// ("einundzwanzigste") that isn't one of the pre-enumerated irregular
	// forms; strip it, interpret the cardinal stem, then reattach it.
	stem := numFunc
	ordinal := false
	switch {
	case strings.HasSuffix(stem, "ste"):
		stem = strings.TrimSuffix(stem, "ste")
		ordinal = true
	case strings.HasSuffix(stem, "te"):
		stem = strings.TrimSuffix(stem, "te")
		ordinal = true
	}

	parts, ok := dictionary.Split(stem)
	if !ok {
		return digitbuf.NaN
	}
	ds, err := lang.ExecGroup(g, parts)
	if err != nil {
		return err
	}
	digits := ds.Digits()
	// Two known-whole-word segments meeting mid-magnitude (e.g. the "43"
	// landing inside "...dreiundvierzigtausend...") must not collide with
	// digits a prior segment already placed.
	if len(digits) > 3 && len(digits) <= 6 && !b.IsRangeFree(3, 5) {
		return digitbuf.Overlap
	}
	if err := b.Put(digits); err != nil {
		return err
	}
	if ordinal {
		b.Marker = g.GetMorphMarker(numFunc)
		b.Freeze()
	} else if !ds.Marker.IsNone() {
		b.Marker = ds.Marker
		b.Freeze()
	}
	return nil
}

// applyAtom interprets a single already-known morpheme. It returns NaN when
// numFunc is not a recognized atom at all, letting Apply fall through to
// the compound splitter.
func (g German) applyAtom(numFunc string, b *digitbuf.Buffer) error {
	if digits, ok := ordinalUnits[numFunc]; ok {
		if err := b.Put([]byte(digits)); err != nil {
			return err
		}
		b.Marker = g.GetMorphMarker(numFunc)
		b.Freeze()
		return nil
	}

	// excludeTens: a unit word was just placed, so a tens word may not follow.
	const excludeTens uint64 = 1
	var status error
	var toBlock uint64
	switch {
	case numFunc == "null":
		status = b.Put([]byte("0"))
	case teens[numFunc] != "":
		status = b.Put([]byte(teens[numFunc]))
	case tens[numFunc] != "":
		if digitbuf.Contains(b.Flags, excludeTens) {
			return digitbuf.Overlap
		}
		status = b.PutDigitAt(tens[numFunc][0], 1)
	case units[numFunc] != "":
		status = b.PutDigitAt(units[numFunc][0], 0)
		toBlock = excludeTens
		if status == nil && numFunc == "eins" {
			// "eins" (the standalone counting form) always terminates the
			// number; "ein" (the compound-prefix form) does not.
			b.Freeze()
			return nil
		}
	case numFunc == "und":
		if b.Len() >= 1 {
			status = digitbuf.Incomplete
		} else {
			status = digitbuf.NaN
		}
	case numFunc == "hundert":
		peek := b.Peek(2)
		if len(peek) == 1 || string(peek) < "20" {
			status = b.Shift(2)
		} else {
			status = digitbuf.Overlap
		}
	case numFunc == "tausend":
		status = b.Shift(3)
	case numFunc == "million" || numFunc == "millionen":
		status = b.Shift(6)
	case numFunc == "milliarde" || numFunc == "milliarden":
		status = b.Shift(9)
	case hasMagnitudeOrdinalSuffix(numFunc):
		status = g.applyMagnitudeOrdinal(numFunc, b)
	default:
		return digitbuf.NaN
	}
	if status == nil {
		b.Flags = toBlock
	} else {
		b.Flags = 0
	}
	return status
}

// magnitudeOrdinalStem maps a magnitude ordinal word back to its cardinal
// stem and the Shift it performs, since "hundertste"/"tausendste" are
// regular (stem + "ste") unlike the irregular 1-19 ordinals above.
var magnitudeOrdinalStem = map[string]int{
	"hundertste": 2, "tausendste": 3, "millionste": 6, "milliardste": 9,
}

func hasMagnitudeOrdinalSuffix(word string) bool {
	_, ok := magnitudeOrdinalStem[word]
	return ok
}

func (g German) applyMagnitudeOrdinal(numFunc string, b *digitbuf.Buffer) error {
	k := magnitudeOrdinalStem[numFunc]
	if err := b.Shift(k); err != nil {
		return err
	}
	b.Marker = g.GetMorphMarker(numFunc)
	b.Freeze()
	return nil
}

func (German) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	switch word {
	case "null":
		return b.Push([]byte("0"))
	case "eins", "ein":
		return b.Push([]byte("1"))
	case "zwei":
		return b.Push([]byte("2"))
	case "drei":
		return b.Push([]byte("3"))
	case "vier":
		return b.Push([]byte("4"))
	case "fünf":
		return b.Push([]byte("5"))
	case "sechs":
		return b.Push([]byte("6"))
	case "sieben":
		return b.Push([]byte("7"))
	case "acht":
		return b.Push([]byte("8"))
	case "neun":
		return b.Push([]byte("9"))
	default:
		return digitbuf.NaN
	}
}

func (German) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "komma" {
		return ',', true
	}
	return 0, false
}

func (German) GetMorphMarker(word string) digitbuf.Marker {
	if strings.HasSuffix(word, "ste") || strings.HasSuffix(word, "te") {
		return digitbuf.Ordinal(".")
	}
	return digitbuf.NoMarker
}

func (German) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (German) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (German) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package nl implements the Dutch number interpreter. Dutch runs most
// cardinals together into a single word ("tweeëndertig"), tolerantly
// accepting the same number spoken with a stray space too
// ("twee en dertig"), since speech-to-text transcripts often insert
// spurious breaks.
package nl

import (
	"strings"

	"numword/pkg/numword/compound"
	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

var splitter = compound.Dictionary(splitterStems)

// excludableTens blocks a following tens word once a unit digit has
// already landed at position 0 in the current word ("tweeën" commits
// the unit before the tens half of the compound is read).
const excludableTens uint64 = 1

// Dutch translates spoken Dutch numbers into digit-buffer edits.
type Dutch struct{}

func New() Dutch { return Dutch{} }

func (Dutch) Code() string { return "nl" }

func (n Dutch) Apply(numFunc string, b *digitbuf.Buffer) error {
	if parts, ok := splitter.SplitAround(numFunc); ok && !(len(parts) == 1 && parts[0] == numFunc) {
		ds, err := lang.ExecGroup(n, parts)
		if err != nil {
			return err
		}
		digits := ds.Digits()
		if len(digits) > 3 && len(digits) <= 6 && !b.IsRangeFree(3, 5) {
			return digitbuf.Overlap
		}
		if err := b.Put(digits); err != nil {
			return err
		}
		if ds.Marker.IsOrdinal() {
			b.Marker = ds.Marker
			b.Freeze()
		}
		return nil
	}

	blocked := digitbuf.Contains(b.Flags, excludableTens)
	var toBlock uint64

	var status error
	switch numFunc {
	case "nul":
		status = b.Put([]byte("0"))
	case "één", "een", "eerste":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("1"))
		} else {
			status = digitbuf.NaN
		}
	case "twee", "tweede":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("2"))
		} else {
			status = digitbuf.NaN
		}
	case "drie", "derde":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("3"))
		} else {
			status = digitbuf.NaN
		}
	case "vier", "vierde":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("4"))
		} else {
			status = digitbuf.NaN
		}
	case "vijf", "vijfde":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("5"))
		} else {
			status = digitbuf.NaN
		}
	case "zes", "zesde":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("6"))
		} else {
			status = digitbuf.NaN
		}
	case "zeven", "zevende":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("7"))
		} else {
			status = digitbuf.NaN
		}
	case "acht", "achtste":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("8"))
		} else {
			status = digitbuf.NaN
		}
	case "negen", "negende":
		if b.IsFree(2) {
			toBlock = excludableTens
			status = b.Put([]byte("9"))
		} else {
			status = digitbuf.NaN
		}
	case "tien", "tiende":
		status = b.Put([]byte("10"))
	case "elf", "elfde":
		status = b.Put([]byte("11"))
	case "twaalf", "twaalfde":
		status = b.Put([]byte("12"))
	case "dertien", "dertiende":
		status = b.Put([]byte("13"))
	case "veertien", "veertiende":
		status = b.Put([]byte("14"))
	case "vijftien", "vijftiende":
		status = b.Put([]byte("15"))
	case "zestien", "zestiende":
		status = b.Put([]byte("16"))
	case "zeventien", "zeventiende":
		status = b.Put([]byte("17"))
	case "achttien", "achttiende":
		status = b.Put([]byte("18"))
	case "negentien", "negentiende":
		status = b.Put([]byte("19"))
	case "twintig", "twintigste":
		if !blocked {
			status = b.PutDigitAt('2', 1)
		} else {
			status = digitbuf.NaN
		}
	case "dertig", "dertigste":
		if !blocked {
			status = b.PutDigitAt('3', 1)
		} else {
			status = digitbuf.NaN
		}
	case "veertig", "veertigste":
		if !blocked {
			status = b.PutDigitAt('4', 1)
		} else {
			status = digitbuf.NaN
		}
	case "vijftig", "vijftigste":
		if !blocked {
			status = b.PutDigitAt('5', 1)
		} else {
			status = digitbuf.NaN
		}
	case "zestig", "zestigste":
		if !blocked {
			status = b.PutDigitAt('6', 1)
		} else {
			status = digitbuf.NaN
		}
	case "zeventig", "zeventigste":
		if !blocked {
			status = b.PutDigitAt('7', 1)
		} else {
			status = digitbuf.NaN
		}
	case "tachtig", "tachtigste":
		if !blocked {
			status = b.PutDigitAt('8', 1)
		} else {
			status = digitbuf.NaN
		}
	case "negentig", "negentigste":
		if !blocked {
			status = b.PutDigitAt('9', 1)
		} else {
			status = digitbuf.NaN
		}
	case "honderd", "honderdste":
		peek := b.Peek(2)
		if len(peek) == 1 && peek[0] == '1' {
			status = digitbuf.Overlap
		} else {
			status = b.Shift(2)
		}
	case "duizend", "duizendste":
		if b.IsRangeFree(3, 5) {
			if string(b.Peek(2)) == "1" {
				status = digitbuf.Overlap
			} else {
				status = b.Shift(3)
			}
		} else {
			status = digitbuf.NaN
		}
	case "miljoen", "miljoenste":
		if b.IsRangeFree(6, 8) {
			status = b.Shift(6)
		} else {
			status = digitbuf.NaN
		}
	case "miljard", "miljardste":
		status = b.Shift(9)
	case "biljoen", "biljoenste":
		status = b.Shift(12)
	case "en", "ën":
		status = digitbuf.Incomplete
	default:
		status = digitbuf.NaN
	}

	if status == nil {
		b.Flags = toBlock
		if strings.HasSuffix(numFunc, "te") || strings.HasSuffix(numFunc, "de") {
			b.Marker = n.GetMorphMarker(numFunc)
			b.Freeze()
		}
	} else {
		b.Flags = 0
	}
	return status
}

func (n Dutch) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	return n.Apply(word, b)
}

func (Dutch) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "komma" {
		return ',', true
	}
	return 0, false
}

func (Dutch) GetMorphMarker(word string) digitbuf.Marker {
	if strings.HasSuffix(word, "ste") || strings.HasSuffix(word, "de") {
		return digitbuf.Ordinal("e")
	}
	return digitbuf.NoMarker
}

func (Dutch) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (Dutch) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (Dutch) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

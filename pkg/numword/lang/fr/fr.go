// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package fr implements the French number interpreter.
package fr

import (
	"strings"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

// French translates spoken French numbers, including the vigesimal
// "soixante-dix"/"quatre-vingt(s)" family, into digit-buffer edits.
type French struct{}

func New() French { return French{} }

func (French) Code() string { return "fr" }

func lemmatize(word string) string { return word }

func (f French) Apply(numFunc string, b *digitbuf.Buffer) error {
	if strings.Contains(numFunc, "-") {
		parts := strings.Split(numFunc, "-")
		ds, err := lang.ExecGroup(f, parts)
		if err != nil {
			return err
		}
		if err := b.Put(ds.Digits()); err != nil {
			return err
		}
		if !ds.Marker.IsNone() {
			b.Marker = ds.Marker
			b.Freeze()
		}
		return nil
	}

	word := lemmatize(numFunc)
	var status error
	switch word {
	case "zéro":
		status = b.Put([]byte("0"))
	case "un", "une", "unième", "premier", "première":
		status = b.Put([]byte("1"))
	case "deux", "deuxième", "second", "seconde":
		status = b.Put([]byte("2"))
	case "trois", "troisième":
		status = b.Put([]byte("3"))
	case "quatre", "quatrième":
		status = b.Put([]byte("4"))
	case "cinq", "cinquième":
		status = b.Put([]byte("5"))
	case "six", "sixième":
		status = b.Put([]byte("6"))
	case "sept", "septième":
		status = b.Put([]byte("7"))
	case "huit", "huitième":
		status = b.Put([]byte("8"))
	case "neuf", "neuvième":
		status = b.Put([]byte("9"))
	case "dix", "dixième":
		// "soixante" + "dix" -> 70, "quatre-vingt" + "dix" -> 90.
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("70"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("90"))
		} else {
			status = b.Put([]byte("10"))
		}
	case "onze", "onzième":
		// "soixante" + "onze" -> 71, "quatre-vingt" + "onze" -> 91.
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("71"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("91"))
		} else {
			status = b.Put([]byte("11"))
		}
	case "douze", "douzième":
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("72"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("92"))
		} else {
			status = b.Put([]byte("12"))
		}
	case "treize", "treizième":
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("73"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("93"))
		} else {
			status = b.Put([]byte("13"))
		}
	case "quatorze", "quatorzième":
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("74"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("94"))
		} else {
			status = b.Put([]byte("14"))
		}
	case "quinze", "quinzième":
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("75"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("95"))
		} else {
			status = b.Put([]byte("15"))
		}
	case "seize", "seizième":
		if string(b.Peek(2)) == "60" {
			status = b.FPut([]byte("76"))
		} else if string(b.Peek(2)) == "80" {
			status = b.FPut([]byte("96"))
		} else {
			status = b.Put([]byte("16"))
		}
	case "vingt", "vingts", "vingtième":
		// "quatre-vingt" spelled unit-first: a lone "4" already committed
		// becomes 80 when "vingt" follows.
		peek := string(b.Peek(2))
		if peek == "04" || peek == "4" {
			status = b.FPut([]byte("80"))
		} else {
			status = b.Put([]byte("20"))
		}
	case "trente", "trentième":
		status = b.Put([]byte("30"))
	case "quarante", "quarantième":
		status = b.Put([]byte("40"))
	case "cinquante", "cinquantième":
		status = b.Put([]byte("50"))
	case "soixante", "soixantième":
		status = b.Put([]byte("60"))
	case "cent", "cents", "centième":
		peek := b.Peek(2)
		if len(peek) == 1 || string(peek) < "20" {
			status = b.Shift(2)
		} else {
			status = digitbuf.Overlap
		}
	case "mille", "millième":
		status = b.Shift(3)
	case "million", "millions", "millionième":
		status = b.Shift(6)
	case "milliard", "milliards", "milliardième":
		status = b.Shift(9)
	case "et":
		if b.Len() >= 1 {
			status = digitbuf.Incomplete
		} else {
			status = digitbuf.NaN
		}
	default:
		status = digitbuf.NaN
	}

	if status == nil {
		if marker := f.GetMorphMarker(numFunc); !marker.IsNone() {
			b.Marker = marker
			b.Freeze()
		}
	}

	return status
}

func (French) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	switch word {
	case "zéro":
		return b.Push([]byte("0"))
	case "un", "une":
		return b.Push([]byte("1"))
	case "deux":
		return b.Push([]byte("2"))
	case "trois":
		return b.Push([]byte("3"))
	case "quatre":
		return b.Push([]byte("4"))
	case "cinq":
		return b.Push([]byte("5"))
	case "six":
		return b.Push([]byte("6"))
	case "sept":
		return b.Push([]byte("7"))
	case "huit":
		return b.Push([]byte("8"))
	case "neuf":
		return b.Push([]byte("9"))
	default:
		return digitbuf.NaN
	}
}

func (French) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "virgule" {
		return ',', true
	}
	return 0, false
}

func (French) GetMorphMarker(word string) digitbuf.Marker {
	switch word {
	case "premier", "première":
		return digitbuf.Ordinal("er")
	case "second", "seconde":
		return digitbuf.Ordinal("e")
	}
	if strings.HasSuffix(word, "ième") {
		return digitbuf.Ordinal("e")
	}
	return digitbuf.NoMarker
}

func (French) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (French) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (French) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

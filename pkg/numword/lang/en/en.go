// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package en implements the English number interpreter.
package en

import (
	"strings"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
)

// English translates spoken English numbers into digit-buffer edits.
type English struct{}

// New returns an English interpreter. English carries no state.
func New() English { return English{} }

func (English) Code() string { return "en" }

// lemmatize is a brute, blind removal of a trailing 's', except "seconds"
// which must stay distinct from the ordinal "second".
func lemmatize(word string) string {
	if strings.HasSuffix(word, "s") && word != "seconds" {
		return strings.TrimSuffix(word, "s")
	}
	return word
}

func (e English) Apply(numFunc string, b *digitbuf.Buffer) error {
	// English compounds with a hyphen: "twenty-one", "eighty-five".
	if strings.Contains(numFunc, "-") {
		parts := strings.Split(numFunc, "-")
		ds, err := lang.ExecGroup(e, parts)
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

	lemma := lemmatize(numFunc)
	var status error
	switch lemma {
	case "zero", "o", "nought":
		status = b.Put([]byte("0"))
	case "one", "first", "oneth":
		status = putIfNotTeen(b, "1")
	case "two", "second":
		status = putIfNotTeen(b, "2")
	case "three", "third":
		status = putIfNotTeen(b, "3")
	case "four", "fourth":
		status = putIfNotTeen(b, "4")
	case "five", "fifth":
		status = putIfNotTeen(b, "5")
	case "six", "sixth":
		status = putIfNotTeen(b, "6")
	case "seven", "seventh":
		status = putIfNotTeen(b, "7")
	case "eight", "eighth":
		status = putIfNotTeen(b, "8")
	case "nine", "ninth":
		status = putIfNotTeen(b, "9")
	case "ten", "tenth":
		status = b.Put([]byte("10"))
	case "eleven", "eleventh":
		status = b.Put([]byte("11"))
	case "twelve", "twelfth":
		status = b.Put([]byte("12"))
	case "thirteen", "thirteenth":
		status = b.Put([]byte("13"))
	case "fourteen", "fourteenth":
		status = b.Put([]byte("14"))
	case "fifteen", "fifteenth":
		status = b.Put([]byte("15"))
	case "sixteen", "sixteenth":
		status = b.Put([]byte("16"))
	case "seventeen", "seventeenth":
		status = b.Put([]byte("17"))
	case "eighteen", "eighteenth":
		status = b.Put([]byte("18"))
	case "nineteen", "nineteenth":
		status = b.Put([]byte("19"))
	case "twenty", "twentieth":
		status = b.Put([]byte("20"))
	case "thirty", "thirtieth":
		status = b.Put([]byte("30"))
	case "fourty", "forty", "fortieth", "fourtieth":
		status = b.Put([]byte("40"))
	case "fifty", "fiftieth":
		status = b.Put([]byte("50"))
	case "sixty", "sixteeth":
		status = b.Put([]byte("60"))
	case "seventy", "seventieth":
		status = b.Put([]byte("70"))
	case "eighty", "eightieth":
		status = b.Put([]byte("80"))
	case "ninety", "ninetieth":
		status = b.Put([]byte("90"))
	case "hundred", "hundredth":
		peek := b.Peek(2)
		if len(peek) == 1 || string(peek) < "20" {
			status = b.Shift(2)
		} else {
			status = digitbuf.Overlap
		}
	case "thousand", "thousandth":
		status = b.Shift(3)
	case "million", "millionth":
		status = b.Shift(6)
	case "billion", "billionth":
		status = b.Shift(9)
	case "and":
		if b.Len() >= 2 {
			status = digitbuf.Incomplete
		} else {
			status = digitbuf.NaN
		}
	default:
		status = digitbuf.NaN
	}

	if status == nil && (strings.HasSuffix(lemma, "th") || numFunc == "first" || numFunc == "second" || lemma == "third") {
		b.Marker = e.GetMorphMarker(numFunc)
		b.Freeze()
	}

	return status
}

func putIfNotTeen(b *digitbuf.Buffer, digit string) error {
	if string(b.Peek(2)) == "10" {
		return digitbuf.NaN
	}
	return b.Put([]byte(digit))
}

func (English) ApplyDecimal(decimalFunc string, b *digitbuf.Buffer) error {
	switch decimalFunc {
	case "zero", "o", "nought":
		return b.Push([]byte("0"))
	case "one":
		return b.Push([]byte("1"))
	case "two":
		return b.Push([]byte("2"))
	case "three":
		return b.Push([]byte("3"))
	case "four":
		return b.Push([]byte("4"))
	case "five":
		return b.Push([]byte("5"))
	case "six":
		return b.Push([]byte("6"))
	case "seven":
		return b.Push([]byte("7"))
	case "eight":
		return b.Push([]byte("8"))
	case "nine":
		return b.Push([]byte("9"))
	default:
		return digitbuf.NaN
	}
}

func (English) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "point" {
		return '.', true
	}
	return 0, false
}

func (English) GetMorphMarker(word string) digitbuf.Marker {
	if strings.HasSuffix(word, "ths") {
		return digitbuf.Fraction("ths")
	}
	if strings.HasSuffix(word, "th") {
		return digitbuf.Ordinal("th")
	}
	switch word {
	case "first":
		return digitbuf.Ordinal("st")
	case "second":
		return digitbuf.Ordinal("nd")
	case "third":
		return digitbuf.Ordinal("rd")
	case "thirds":
		return digitbuf.Fraction("rds")
	default:
		return digitbuf.NoMarker
	}
}

func (English) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (English) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (English) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package it implements the Italian number interpreter. Like German,
// Italian runs most cardinals together into a single word
// ("duecentoquarantatré"); unlike German, the ordinal/fraction marker is
// always read off the single outer word Apply was called with, never off
// a sub-word produced by splitting it.
package it

import (
	"strings"

	"numword/pkg/numword/compound"
	"numword/pkg/numword/digitbuf"
)

var splitter = compound.Dictionary(wordSplitterStems)

// ordinalStems are the bare singular stems lemmatize recognizes: an
// ordinal word minus its trailing vowel run.
var ordinalStems = map[string]struct{}{
	"prim": {}, "second": {}, "terz": {}, "quart": {}, "quint": {},
	"sest": {}, "settim": {}, "ottav": {}, "ttav": {}, "non": {}, "decim": {},
}

// lemmatize strips the trailing vowel run of an ordinal word down to its
// bare stem ("quinto" -> "quint", "quinta" -> "quint"), leaving every
// other word untouched.
func lemmatize(word string) string {
	candidate := strings.TrimRight(word, "oaei")
	_, isOrdinalStem := ordinalStems[candidate]
	if (isOrdinalStem && word != "secondi") || strings.HasSuffix(candidate, "esim") {
		return candidate
	}
	return word
}

// Italian translates spoken Italian numbers into digit-buffer edits.
type Italian struct{}

func New() Italian { return Italian{} }

func (Italian) Code() string { return "it" }

func (it Italian) Apply(numFunc string, b *digitbuf.Buffer) error {
	status := it.applyCore(numFunc, b)
	if status == nil {
		if marker := it.GetMorphMarker(numFunc); marker.IsOrdinal() {
			b.Marker = marker
			b.Freeze()
		}
	}
	return status
}

// applyCore does the actual digit-buffer edit, with no marker handling:
// Apply always resolves the marker from the single outer word, whether or
// not that word turned out to be a compound split into several parts.
func (it Italian) applyCore(numFunc string, b *digitbuf.Buffer) error {
	lemma := lemmatize(numFunc)

	if parts, ok := splitter.SplitAround(lemma); ok && !(len(parts) == 1 && parts[0] == lemma) {
		ds, err := it.execParts(parts)
		if err != nil {
			return err
		}
		digits := ds.Digits()
		if len(digits) > 3 && len(digits) <= 6 && !b.IsRangeFree(3, 5) {
			return digitbuf.Overlap
		}
		return b.Put(digits)
	}

	peek2 := string(b.Peek(2))
	notTeen := peek2 != "10"
	switch lemma {
	case "zero":
		return b.Put([]byte("0"))
	case "un", "uno", "una", "unesim":
		if b.IsFree(2) {
			return b.Put([]byte("1"))
		}
		return digitbuf.NaN
	case "prim":
		if b.IsEmpty() {
			return b.Put([]byte("1"))
		}
		return digitbuf.NaN
	case "due", "duesim":
		if notTeen {
			return b.Put([]byte("2"))
		}
		return digitbuf.NaN
	case "second":
		if b.IsEmpty() {
			return b.Put([]byte("2"))
		}
		return digitbuf.NaN
	case "tre", "tré", "treesim":
		if notTeen {
			return b.Put([]byte("3"))
		}
		return digitbuf.NaN
	case "terz":
		if b.IsEmpty() {
			return b.Put([]byte("3"))
		}
		return digitbuf.NaN
	case "quattro", "quattresim":
		if notTeen {
			return b.Put([]byte("4"))
		}
		return digitbuf.NaN
	case "quart":
		if b.IsEmpty() {
			return b.Put([]byte("4"))
		}
		return digitbuf.NaN
	case "cinque", "cinquesim":
		if notTeen {
			return b.Put([]byte("5"))
		}
		return digitbuf.NaN
	case "quint":
		if b.IsEmpty() {
			return b.Put([]byte("5"))
		}
		return digitbuf.NaN
	case "sei", "seiesim":
		if notTeen {
			return b.Put([]byte("6"))
		}
		return digitbuf.NaN
	case "sest":
		if b.IsEmpty() {
			return b.Put([]byte("6"))
		}
		return digitbuf.NaN
	case "sette", "settesim":
		if notTeen {
			return b.Put([]byte("7"))
		}
		return digitbuf.NaN
	case "settim":
		if b.IsEmpty() {
			return b.Put([]byte("7"))
		}
		return digitbuf.NaN
	case "otto", "tto", "ottesim", "ttesim":
		if b.IsFree(2) {
			return b.Put([]byte("8"))
		}
		return digitbuf.NaN
	case "ottav":
		if b.IsEmpty() {
			return b.Put([]byte("8"))
		}
		return digitbuf.NaN
	case "nove", "novesim":
		if notTeen {
			return b.Put([]byte("9"))
		}
		return digitbuf.NaN
	case "non":
		if b.IsEmpty() && numFunc != "non" {
			return b.Put([]byte("9"))
		}
		return digitbuf.NaN
	case "dieci", "decim":
		return b.Put([]byte("10"))
	case "undici", "undicesim":
		return b.Put([]byte("11"))
	case "dodici", "dodicesim":
		return b.Put([]byte("12"))
	case "tredici", "tredicesim":
		return b.Put([]byte("13"))
	case "quattordici", "quattordicesim":
		return b.Put([]byte("14"))
	case "quindici", "quindicesim":
		return b.Put([]byte("15"))
	case "sedici", "dedicesim":
		return b.Put([]byte("16"))
	case "diciassette", "diciassettesim":
		return b.Put([]byte("17"))
	case "diciotto", "diciottesim":
		return b.Put([]byte("18"))
	case "diciannove", "diciannovesim":
		return b.Put([]byte("19"))
	case "venti", "ventesim":
		return b.Put([]byte("20"))
	case "ventuno", "ventun", "ventunesim":
		return b.Put([]byte("21"))
	case "ventotto", "ventottesim":
		return b.Put([]byte("28"))
	case "trenta", "trentesim":
		return b.Put([]byte("30"))
	case "trentuno", "trentun", "trentunesim":
		return b.Put([]byte("31"))
	case "trentotto", "trentottesim":
		return b.Put([]byte("38"))
	case "quaranta", "quarantesim":
		return b.Put([]byte("40"))
	case "quarantuno", "quarantun", "quarantunesim":
		return b.Put([]byte("41"))
	case "quarantotto", "quarantottesim":
		return b.Put([]byte("48"))
	case "cinquanta", "cinquantesim":
		return b.Put([]byte("50"))
	case "cinquantuno", "cinquantun", "cinquantunesim":
		return b.Put([]byte("51"))
	case "cinquantotto", "cinquantottesim":
		return b.Put([]byte("58"))
	case "sessanta", "sessantesim":
		return b.Put([]byte("60"))
	case "sessantuno", "sessantun", "sessantunesim":
		return b.Put([]byte("61"))
	case "sessantotto", "sessantottesim":
		return b.Put([]byte("68"))
	case "settanta", "settantesim":
		return b.Put([]byte("70"))
	case "settantuno", "settantun", "settanunesim":
		return b.Put([]byte("71"))
	case "settantotto", "settantottesim":
		return b.Put([]byte("78"))
	case "ottanta", "ottantesim", "ttanta", "ttantesim":
		return b.Put([]byte("80"))
	case "ottantuno", "ottantun", "ottantunesim":
		return b.Put([]byte("81"))
	case "ottantotto", "ottantottesim":
		return b.Put([]byte("88"))
	case "novanta", "novantesim":
		return b.Put([]byte("90"))
	case "novantuno", "novantun", "novantunesim":
		return b.Put([]byte("91"))
	case "novantotto", "novantottesim":
		return b.Put([]byte("98"))
	case "cento", "centesim":
		peek := b.Peek(2)
		if len(peek) == 0 || (len(peek) == 1 && peek[0] != '1') || (len(peek) == 2 && peek[0] == '0' && peek[1] != '1') {
			return b.Shift(2)
		}
		return digitbuf.Overlap
	case "centuno", "centun", "centunesimo":
		return b.Put([]byte("101"))
	case "mille":
		if b.IsRangeFree(3, 5) {
			return b.Put([]byte("1000"))
		}
		return digitbuf.Overlap
	case "mila":
		if !b.IsRangeFree(3, 5) {
			return digitbuf.Overlap
		}
		peek := string(b.Peek(3))
		if peek == "1" || peek == "001" || peek == "" || peek == "000" {
			return digitbuf.NaN
		}
		return b.Shift(3)
	case "millesim":
		if !b.IsRangeFree(3, 5) {
			return digitbuf.Overlap
		}
		peek := string(b.Peek(3))
		if peek == "1" || peek == "001" {
			return digitbuf.NaN
		}
		return b.Shift(3)
	case "milione":
		if !b.IsRangeFree(6, 8) {
			return digitbuf.Overlap
		}
		if b.Len() != 1 || string(b.Peek(1)) != "1" {
			return digitbuf.NaN
		}
		return b.Shift(6)
	case "milionesim":
		if !b.IsRangeFree(6, 8) {
			return digitbuf.Overlap
		}
		if b.Len() == 1 && string(b.Peek(1)) == "1" {
			return digitbuf.NaN
		}
		return b.Shift(6)
	case "milioni":
		if !b.IsRangeFree(6, 8) {
			return digitbuf.Overlap
		}
		if b.IsEmpty() || (b.Len() == 1 && string(b.Peek(1)) == "1") {
			return digitbuf.NaN
		}
		return b.Shift(6)
	case "miliardo":
		if b.Len() != 1 || string(b.Peek(1)) != "1" {
			return digitbuf.NaN
		}
		return b.Shift(9)
	case "miliardesim":
		if b.Len() == 1 && string(b.Peek(1)) == "1" {
			return digitbuf.NaN
		}
		return b.Shift(9)
	case "miliardi":
		if b.IsEmpty() || (b.Len() == 1 && string(b.Peek(1)) == "1") {
			return digitbuf.NaN
		}
		return b.Shift(9)
	case "bilione":
		if b.Len() != 1 || string(b.Peek(1)) != "1" {
			return digitbuf.NaN
		}
		return b.Shift(12)
	case "bilionesim":
		if b.Len() == 1 && string(b.Peek(1)) == "1" {
			return digitbuf.NaN
		}
		return b.Shift(12)
	case "bilioni":
		if b.IsEmpty() || (b.Len() == 1 && string(b.Peek(1)) == "1") {
			return digitbuf.NaN
		}
		return b.Shift(12)
	case "e":
		if b.Len() >= 2 {
			return digitbuf.Incomplete
		}
		return digitbuf.NaN
	default:
		return digitbuf.NaN
	}
}

func (it Italian) execParts(parts []string) (*digitbuf.Buffer, error) {
	ds := digitbuf.New()
	for i, p := range parts {
		err := it.applyCore(p, ds)
		if err == nil {
			continue
		}
		if err == digitbuf.Incomplete {
			if i == len(parts)-1 {
				return nil, err
			}
			continue
		}
		return nil, err
	}
	return ds, nil
}

func (Italian) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	it := Italian{}
	return it.applyCore(word, b)
}

func (Italian) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "virgola" {
		return ',', true
	}
	return 0, false
}

func (Italian) GetMorphMarker(word string) digitbuf.Marker {
	base := lemmatize(word)
	if base == word {
		return digitbuf.NoMarker
	}
	last := word[len(word)-1]
	switch last {
	case 'o', 'i':
		return digitbuf.Ordinal("º")
	case 'a', 'e':
		return digitbuf.Ordinal("ª")
	default:
		return digitbuf.NoMarker
	}
}

func (Italian) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (Italian) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (Italian) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

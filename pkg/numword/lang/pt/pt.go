// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package pt implements the Portuguese number interpreter. Portuguese
// marks gender on nearly every ordinal ("décimo"/"décima"/"décimos"/
// "décimas"), so the marker is computed and checked word by word: a
// buffer already carrying a marker rejects any further word whose own
// marker disagrees with it.
package pt

import (
	"strings"

	"numword/pkg/numword/digitbuf"
)

// restriction bits travel in Buffer.Flags across words of the same
// number: a bare "cem" must only ever be followed by a multiplier
// ("cem mil", never "cem e um"), and "e" is only legal once the buffer
// holds at least two digits and no marker; the conjunction bit it leaves
// lets the next word skip the smaller-number check.
const (
	restrictionConjunction     uint64 = 1
	restrictionOnlyMultipliers uint64 = 2
)

// lemmatize strips the gendered/plural ordinal suffix down to a bare
// stem ("décimo" / "décima" / "décimos" / "décimas" all -> "décim"),
// except where doing so would collide with an unrelated cardinal
// ("zero", "duas").
func lemmatize(word string) string {
	switch {
	case strings.HasSuffix(word, "a"):
		return strings.TrimSuffix(word, "a")
	case strings.HasSuffix(word, "as") && word != "duas":
		return strings.TrimSuffix(word, "as")
	case strings.HasSuffix(word, "o") && word != "zero":
		return strings.TrimSuffix(word, "o")
	case strings.HasSuffix(word, "os"):
		return strings.TrimSuffix(word, "os")
	default:
		return word
	}
}

// Portuguese translates spoken Portuguese numbers into digit-buffer
// edits.
type Portuguese struct{}

func New() Portuguese { return Portuguese{} }

func (Portuguese) Code() string { return "pt" }

func (p Portuguese) Apply(numFunc string, b *digitbuf.Buffer) error {
	numMarker := p.GetMorphMarker(numFunc)
	if !b.IsEmpty() && numMarker != b.Marker {
		return digitbuf.Overlap
	}

	onlyMultipliers := digitbuf.Contains(b.Flags, restrictionOnlyMultipliers)
	hasConjunction := digitbuf.Contains(b.Flags, restrictionConjunction)
	smallerBlocked := onlyMultipliers ||
		(!hasConjunction && numMarker.IsNone() && !b.IsFree(4))
	var nextRestrictions uint64

	peek2 := string(b.Peek(2))
	lemma := lemmatize(numFunc)
	var status error
	switch lemma {
	case "zero":
		status = b.Put([]byte("0"))
	case "um":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("1"))
		} else {
			status = digitbuf.NaN
		}
	case "primeir":
		status = b.Put([]byte("1"))
	case "dois", "duas":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("2"))
		} else {
			status = digitbuf.NaN
		}
	case "segund":
		status = b.Put([]byte("2"))
	case "três", "tres":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("3"))
		} else {
			status = digitbuf.NaN
		}
	case "terceir":
		status = b.Put([]byte("3"))
	case "quatr":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("4"))
		} else {
			status = digitbuf.NaN
		}
	case "quart":
		status = b.Put([]byte("4"))
	case "cinc":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("5"))
		} else {
			status = digitbuf.NaN
		}
	case "quint":
		status = b.Put([]byte("5"))
	case "seis":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("6"))
		} else {
			status = digitbuf.NaN
		}
	case "sext":
		status = b.Put([]byte("6"))
	case "sete":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("7"))
		} else {
			status = digitbuf.NaN
		}
	case "sétim":
		status = b.Put([]byte("7"))
	case "oit":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("8"))
		} else {
			status = digitbuf.NaN
		}
	case "oitav":
		status = b.Put([]byte("8"))
	case "nove":
		if peek2 != "10" && !smallerBlocked {
			status = b.Put([]byte("9"))
		} else {
			status = digitbuf.NaN
		}
	case "non":
		if !smallerBlocked {
			status = b.Put([]byte("9"))
		} else {
			status = digitbuf.NaN
		}
	case "dez", "décim":
		if !smallerBlocked {
			status = b.Put([]byte("10"))
		} else {
			status = digitbuf.NaN
		}
	case "onze":
		if !smallerBlocked {
			status = b.Put([]byte("11"))
		} else {
			status = digitbuf.NaN
		}
	case "doze":
		if !smallerBlocked {
			status = b.Put([]byte("12"))
		} else {
			status = digitbuf.NaN
		}
	case "treze":
		if !smallerBlocked {
			status = b.Put([]byte("13"))
		} else {
			status = digitbuf.NaN
		}
	case "catorze", "quatorze":
		if !smallerBlocked {
			status = b.Put([]byte("14"))
		} else {
			status = digitbuf.NaN
		}
	case "quinze":
		if !smallerBlocked {
			status = b.Put([]byte("15"))
		} else {
			status = digitbuf.NaN
		}
	case "dezasseis", "dezesseis":
		if !smallerBlocked {
			status = b.Put([]byte("16"))
		} else {
			status = digitbuf.NaN
		}
	case "dezassete", "dezessete":
		if !smallerBlocked {
			status = b.Put([]byte("17"))
		} else {
			status = digitbuf.NaN
		}
	case "dezoit":
		if !smallerBlocked {
			status = b.Put([]byte("18"))
		} else {
			status = digitbuf.NaN
		}
	case "dezanove", "dezenove":
		if !smallerBlocked {
			status = b.Put([]byte("19"))
		} else {
			status = digitbuf.NaN
		}
	case "vinte", "vigésim":
		if !smallerBlocked {
			status = b.Put([]byte("20"))
		} else {
			status = digitbuf.NaN
		}
	case "trint", "trigésim":
		if !smallerBlocked {
			status = b.Put([]byte("30"))
		} else {
			status = digitbuf.NaN
		}
	case "quarent", "quadragésim":
		if !smallerBlocked {
			status = b.Put([]byte("40"))
		} else {
			status = digitbuf.NaN
		}
	case "cinquent", "cinqüent", "quinquagésim", "qüinquagésim":
		if !smallerBlocked {
			status = b.Put([]byte("50"))
		} else {
			status = digitbuf.NaN
		}
	case "sessent", "sexagésim":
		if !smallerBlocked {
			status = b.Put([]byte("60"))
		} else {
			status = digitbuf.NaN
		}
	case "setent", "septuagésim", "setuagésim":
		if !smallerBlocked {
			status = b.Put([]byte("70"))
		} else {
			status = digitbuf.NaN
		}
	case "oitent", "octogésim":
		if !smallerBlocked {
			status = b.Put([]byte("80"))
		} else {
			status = digitbuf.NaN
		}
	case "novent", "nonagésim":
		if !smallerBlocked {
			status = b.Put([]byte("90"))
		} else {
			status = digitbuf.NaN
		}
	case "cem":
		if !onlyMultipliers {
			nextRestrictions = restrictionOnlyMultipliers
			status = b.Put([]byte("100"))
		} else {
			status = digitbuf.NaN
		}
	case "cent", "centésim":
		if !onlyMultipliers {
			status = b.Put([]byte("100"))
		} else {
			status = digitbuf.NaN
		}
	case "duzent", "ducentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("200"))
		} else {
			status = digitbuf.NaN
		}
	case "trezent", "trecentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("300"))
		} else {
			status = digitbuf.NaN
		}
	case "quatrocent", "quadringentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("400"))
		} else {
			status = digitbuf.NaN
		}
	case "quinhent", "quingentésim", "qüingentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("500"))
		} else {
			status = digitbuf.NaN
		}
	case "seiscent", "sexcentésim", "seiscentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("600"))
		} else {
			status = digitbuf.NaN
		}
	case "setecent", "septingentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("700"))
		} else {
			status = digitbuf.NaN
		}
	case "oitocent", "octingentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("800"))
		} else {
			status = digitbuf.NaN
		}
	case "novecent", "noningentésim", "nongentésim":
		if !onlyMultipliers {
			status = b.Put([]byte("900"))
		} else {
			status = digitbuf.NaN
		}
	case "mil", "milésim":
		if b.IsRangeFree(3, 5) && (onlyMultipliers || string(b.Peek(3)) != "100") {
			if string(b.Peek(2)) == "1" {
				status = digitbuf.Overlap
			} else {
				status = b.Shift(3)
			}
		} else {
			status = digitbuf.NaN
		}
	case "milhã", "milhões", "milionésim":
		if b.IsRangeFree(6, 8) {
			status = b.Shift(6)
		} else {
			status = digitbuf.NaN
		}
	case "bilhã", "biliã", "bilhões", "biliões", "bilionésim":
		status = b.Shift(9)
	case "e":
		if b.Len() >= 2 && b.Marker.IsNone() && !onlyMultipliers {
			status = digitbuf.Incomplete
		} else {
			status = digitbuf.NaN
		}
	default:
		status = digitbuf.NaN
	}

	switch {
	case status == nil:
		b.Marker = numMarker
		b.Flags = nextRestrictions
	case status == digitbuf.Incomplete:
		b.Flags = restrictionConjunction
	default:
		b.Flags = 0
	}
	return status
}

func (p Portuguese) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	return p.Apply(word, b)
}

func (Portuguese) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "vírgula" {
		return ',', true
	}
	return 0, false
}

func (Portuguese) GetMorphMarker(word string) digitbuf.Marker {
	var probable digitbuf.Marker
	switch {
	case strings.HasSuffix(word, "as"):
		probable = digitbuf.Ordinal("ᵃˢ")
	case strings.HasSuffix(word, "a"):
		probable = digitbuf.Ordinal("ª")
	case strings.HasSuffix(word, "os"):
		probable = digitbuf.Ordinal("ᵒˢ")
	case strings.HasSuffix(word, "o"):
		probable = digitbuf.Ordinal("º")
	default:
		return digitbuf.NoMarker
	}
	lemma := lemmatize(word)
	switch lemma {
	case "primeir", "segund", "terceir", "quart", "quint", "sext", "sétim", "oitav", "non":
		return probable
	}
	if strings.HasSuffix(lemma, "im") {
		return probable
	}
	return digitbuf.NoMarker
}

func (Portuguese) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (Portuguese) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (Portuguese) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

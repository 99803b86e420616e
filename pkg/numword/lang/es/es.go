// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package es implements the Spanish number interpreter.
package es

import (
	"strings"

	"numword/pkg/numword/digitbuf"
)

// Spanish translates spoken Spanish numbers into digit-buffer edits.
type Spanish struct{}

func New() Spanish { return Spanish{} }

func (Spanish) Code() string { return "es" }

// lemmatize is a brute, blind removal of a trailing 's', with the same
// exceptions the cardinals themselves need ("dos", "tres" must not lose a
// final letter that is part of the word, not a plural marker).
func lemmatize(word string) string {
	switch {
	case (strings.HasSuffix(word, "os") && word != "dos") || strings.HasSuffix(word, "as"):
		return strings.TrimSuffix(word, "s")
	case strings.HasSuffix(word, "es") && word != "tres":
		return strings.TrimSuffix(word, "es")
	default:
		return word
	}
}

func (s Spanish) Apply(numFunc string, b *digitbuf.Buffer) error {
	word := lemmatize(numFunc)
	peek := string(b.Peek(2))
	notTeenOrTwenties := peek != "10" && peek != "20"

	var status error
	switch word {
	case "cero":
		status = b.Put([]byte("0"))
	case "un", "uno":
		if notTeenOrTwenties {
			status = b.Put([]byte("1"))
		} else {
			status = digitbuf.NaN
		}
	case "primer", "primero", "primera":
		status = b.Put([]byte("1"))
	case "dos":
		if notTeenOrTwenties {
			status = b.Put([]byte("2"))
		} else {
			status = digitbuf.NaN
		}
	case "segundo", "segunda":
		status = b.Put([]byte("2"))
	case "tres":
		if notTeenOrTwenties {
			status = b.Put([]byte("3"))
		} else {
			status = digitbuf.NaN
		}
	case "tercer", "tercero", "tercera":
		status = b.Put([]byte("3"))
	case "cuatro":
		if notTeenOrTwenties {
			status = b.Put([]byte("4"))
		} else {
			status = digitbuf.NaN
		}
	case "cuarto", "cuarta":
		status = b.Put([]byte("4"))
	case "cinco":
		if notTeenOrTwenties {
			status = b.Put([]byte("5"))
		} else {
			status = digitbuf.NaN
		}
	case "quinto", "quinta":
		status = b.Put([]byte("5"))
	case "seis":
		if notTeenOrTwenties {
			status = b.Put([]byte("6"))
		} else {
			status = digitbuf.NaN
		}
	case "sexto", "sexta":
		status = b.Put([]byte("6"))
	case "siete":
		if notTeenOrTwenties {
			status = b.Put([]byte("7"))
		} else {
			status = digitbuf.NaN
		}
	case "séptimo", "séptima":
		status = b.Put([]byte("7"))
	case "ocho":
		if notTeenOrTwenties {
			status = b.Put([]byte("8"))
		} else {
			status = digitbuf.NaN
		}
	case "octavo", "octava":
		status = b.Put([]byte("8"))
	case "nueve":
		if notTeenOrTwenties {
			status = b.Put([]byte("9"))
		} else {
			status = digitbuf.NaN
		}
	case "noveno", "novena":
		status = b.Put([]byte("9"))
	case "diez", "décimo", "décima":
		status = b.Put([]byte("10"))
	case "once", "undécimo", "undécima", "decimoprimero", "decimoprimera":
		status = b.Put([]byte("11"))
	case "doce", "duodécimo", "duodécima", "decimosegundo", "decimosegunda":
		status = b.Put([]byte("12"))
	case "trece", "decimotercero", "decimotercera":
		status = b.Put([]byte("13"))
	case "catorce", "decimocuarto", "decimocuarta":
		status = b.Put([]byte("14"))
	case "quince", "decimoquinto", "decimoquinta":
		status = b.Put([]byte("15"))
	case "dieciseis", "dieciséis", "decimosexto", "decimosexta":
		status = b.Put([]byte("16"))
	case "diecisiete", "decimoséptimo", "decimoséptima":
		status = b.Put([]byte("17"))
	case "dieciocho", "decimoctavo", "decimoctava":
		status = b.Put([]byte("18"))
	case "diecinueve", "decimonoveno", "decimonovena":
		status = b.Put([]byte("19"))
	case "veinte", "vigésimo", "vigésima":
		status = b.Put([]byte("20"))
	case "veintiuno":
		status = b.Put([]byte("21"))
	case "veintidós", "veintidos":
		status = b.Put([]byte("22"))
	case "veintitrés", "veintitres":
		status = b.Put([]byte("23"))
	case "veinticuatro":
		status = b.Put([]byte("24"))
	case "veinticinco":
		status = b.Put([]byte("25"))
	case "veintiseis", "veintiséis":
		status = b.Put([]byte("26"))
	case "veintisiete":
		status = b.Put([]byte("27"))
	case "veintiocho":
		status = b.Put([]byte("28"))
	case "veintinueve":
		status = b.Put([]byte("29"))
	case "treinta", "trigésimo", "trigésima":
		status = b.Put([]byte("30"))
	case "cuarenta", "cuadragésimo", "cuadragésima":
		status = b.Put([]byte("40"))
	case "cincuenta", "quincuagésimo", "quincuagésima":
		status = b.Put([]byte("50"))
	case "sesenta", "sexagésimo", "sexagésima":
		status = b.Put([]byte("60"))
	case "setenta", "septuagésimo", "septuagésima":
		status = b.Put([]byte("70"))
	case "ochenta", "octogésimo", "octogésima":
		status = b.Put([]byte("80"))
	case "noventa", "nonagésimo", "nonagésima":
		status = b.Put([]byte("90"))
	case "cien", "ciento", "centésimo", "centésima":
		status = b.Put([]byte("100"))
	case "dosciento", "ducentésimo", "ducentésima":
		status = b.Put([]byte("200"))
	case "tresciento", "tricentésimo", "tricentésima":
		status = b.Put([]byte("300"))
	case "cuatrociento", "quadringentésimo", "quadringentésima":
		status = b.Put([]byte("400"))
	case "quiniento", "quingentésimo", "quingentésima":
		status = b.Put([]byte("500"))
	case "seisciento", "sexcentésimo", "sexcentésima":
		status = b.Put([]byte("600"))
	case "seteciento", "septingentésimo", "septingentésima":
		status = b.Put([]byte("700"))
	case "ochociento", "octingentésimo", "octingentésima":
		status = b.Put([]byte("800"))
	case "noveciento", "noningentésimo", "noningentésima":
		status = b.Put([]byte("900"))
	case "mil", "milésimo", "milésima":
		status = b.Shift(3)
	case "millon", "millón", "millonésimo", "millonésima":
		status = b.Shift(6)
	case "y":
		if b.Len() >= 2 {
			status = digitbuf.Incomplete
		} else {
			status = digitbuf.NaN
		}
	default:
		status = digitbuf.NaN
	}

	// Unlike English/French, Spanish ordinals can span two words
	// ("vigésimo cuarto"): the marker is tracked on every accepted word,
	// not frozen, so a following unit word can still extend the buffer.
	if status == nil {
		if marker := s.GetMorphMarker(numFunc); !marker.IsNone() {
			b.Marker = marker
		}
	}

	return status
}

func (Spanish) ApplyDecimal(word string, b *digitbuf.Buffer) error {
	switch word {
	case "cero":
		return b.Push([]byte("0"))
	case "uno", "un":
		return b.Push([]byte("1"))
	case "dos":
		return b.Push([]byte("2"))
	case "tres":
		return b.Push([]byte("3"))
	case "cuatro":
		return b.Push([]byte("4"))
	case "cinco":
		return b.Push([]byte("5"))
	case "seis":
		return b.Push([]byte("6"))
	case "siete":
		return b.Push([]byte("7"))
	case "ocho":
		return b.Push([]byte("8"))
	case "nueve":
		return b.Push([]byte("9"))
	default:
		return digitbuf.NaN
	}
}

func (Spanish) CheckDecimalSeparator(word string) (rune, bool) {
	if word == "coma" {
		return ',', true
	}
	return 0, false
}

func (Spanish) GetMorphMarker(word string) digitbuf.Marker {
	lemma := lemmatize(word)
	plural := lemma != word
	sing := strings.TrimPrefix(lemma, "decimo")

	masc, fem := "º", "ª"
	if plural {
		masc, fem = "ᵒˢ", "ᵃˢ"
	}

	switch sing {
	case "primero", "segundo", "tercero", "cuarto", "quinto", "sexto",
		"séptimo", "octavo", "ctavo", "noveno":
		return digitbuf.Ordinal(masc)
	case "primera", "segunda", "tercera", "cuarta", "quinta", "sexta",
		"séptima", "octava", "ctava", "novena":
		return digitbuf.Ordinal(fem)
	}
	switch {
	case strings.HasSuffix(sing, "imo"):
		return digitbuf.Ordinal(masc)
	case strings.HasSuffix(sing, "ima"):
		return digitbuf.Ordinal(fem)
	}
	return digitbuf.NoMarker
}

func (Spanish) IsLinking(word string) bool {
	_, ok := insignificant[word]
	return ok
}

func (Spanish) FormatAndValue(b *digitbuf.Buffer) (string, float64) {
	return digitbuf.FormatAndValue(b)
}

func (Spanish) FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (string, float64) {
	return digitbuf.FormatDecimalAndValue(intPart, decPart, sep)
}

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package lang declares the interpreter contract implemented once per
// supported language. An interpreter is stateless: given the buffer built so
// far and the next lowercased word, it issues zero or more primitive edits
// on the buffer.
package lang

import "numword/pkg/numword/digitbuf"

// Interpreter translates a sequence of words into digit-buffer edits for one
// language. The set of interpreters is closed and known at build time: each
// concrete type lives in its own pkg/numword/lang/<code> package and is
// registered by the façade, not dynamically discovered.
type Interpreter interface {
	// Code is the ISO 639-1 code this interpreter answers to ("en", "fr", ...).
	Code() string

	// Apply interprets a single token of the integer part.
	Apply(word string, b *digitbuf.Buffer) error

	// ApplyDecimal interprets a token appearing after a decimal separator.
	// Italian, Dutch and Portuguese delegate to their integer rules. English,
	// French, German and Spanish accept only the single digit words (zero to
	// nine), each appended with Push; a compound such as
	// "quatre-vingt-dix-neuf" is not accepted after the separator.
	ApplyDecimal(word string, b *digitbuf.Buffer) error

	// CheckDecimalSeparator reports whether word is this language's
	// decimal separator word, and which character to render ('.', ',').
	CheckDecimalSeparator(word string) (sep rune, ok bool)

	// GetMorphMarker parses word's ordinal/fraction suffix, if any.
	GetMorphMarker(word string) digitbuf.Marker

	// IsLinking reports whether word is an "insignificant" token: it does
	// not break a contiguous number match but carries no numeric value.
	IsLinking(word string) bool

	// FormatAndValue renders a completed integer buffer to its digit text
	// and numeric value, placing any ordinal/fraction suffix.
	FormatAndValue(b *digitbuf.Buffer) (text string, value float64)

	// FormatDecimalAndValue renders a completed integer+decimal pair.
	FormatDecimalAndValue(intPart, decPart *digitbuf.Buffer, sep rune) (text string, value float64)
}

// Annotator is an optional pre-pass hook: some languages need whole-sequence
// context to resolve an ambiguous word (English "o" used as a letter, French
// "neuf" meaning "new") before the left-to-right scan begins. Annotate
// returns, for each word, whether it must be treated as not-a-number-part.
type Annotator interface {
	BasicAnnotate(words []string) []bool
}

// ExecGroup applies words to a fresh buffer as an all-or-nothing unit. An
// Incomplete result mid-sequence is tolerated (a trailing connector like
// "and" is only an error if the group ends on it).
//
// Once the whole phrase has landed, a suffix on the group's last word sets
// the ordinal/fraction marker and freezes the buffer, replacing any marker
// an earlier word's Apply left behind; in an ordinal spread across more
// than one token ("décimo primero") the last word decides the marker.
func ExecGroup(interp Interpreter, words []string) (*digitbuf.Buffer, error) {
	b := digitbuf.New()
	for i, w := range words {
		err := interp.Apply(w, b)
		if err == nil {
			continue
		}
		if err == digitbuf.Incomplete {
			if i == len(words)-1 {
				return nil, err
			}
			continue
		}
		return nil, err
	}
	if len(words) > 0 {
		if marker := interp.GetMorphMarker(words[len(words)-1]); !marker.IsNone() {
			b.Marker = marker
			b.Freeze()
		}
	}
	return b, nil
}

// Annotate runs interp's optional pre-pass, or returns an all-false mask
// when interp does not implement Annotator.
func Annotate(interp Interpreter, words []string) []bool {
	if a, ok := interp.(Annotator); ok {
		return a.BasicAnnotate(words)
	}
	return make([]bool, len(words))
}

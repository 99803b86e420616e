// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package tok implements the plain-text tokenizer the scanner runs against:
// maximal word runs (letters, digits, "-", "'") alternating with separator
// runs (everything else). The run boundaries are found by walking grapheme
// clusters rather than bare runes, using uniseg so combining marks in
// non-Latin scripts stay attached to the rune they modify instead of
// splitting a word mid-character.
package tok

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Kind classifies a Token as carrying potential numeric content or not.
type Kind uint8

const (
	Word Kind = iota
	Separator
)

// Token is one segment of a tokenized input: either a word candidate or a
// run of separator characters between words. BreakHint and Blocked are
// caller-settable annotations — the tokenizer itself never sets them.
type Token struct {
	Kind Kind
	Raw  string
	Low  string

	// BreakHint marks a semantic break before this token (e.g. a long pause
	// in the upstream ASR timeline). Plain text carries no such signal, so
	// Tokenize always leaves this false; callers with timing information
	// set it themselves before handing the stream to the scanner.
	BreakHint bool

	// Blocked marks this token as not-a-number-part, normally the result of
	// running a language's optional Annotate pre-pass.
	Blocked bool
}

func (t Token) Text() string          { return t.Raw }
func (t Token) TextLowercase() string { return t.Low }
func (t Token) NotANumberPart() bool  { return t.Blocked }

// NTSeparated reports whether a semantic break falls between previous and
// t. previous is accepted to match the external Token contract this method
// fulfills; this implementation carries no data beyond t.BreakHint.
func (t Token) NTSeparated(previous Token) bool { return t.BreakHint }

func isWordCluster(g string) bool {
	r := []rune(g)[0]
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\''
}

// Tokenize segments source into word and separator tokens: a maximal run of
// grapheme clusters starting with a letter, digit, '-', or '\'' is a Word;
// everything else is a Separator. This is the grapheme-aware equivalent of
// a char-by-char match_word/match_sep scan: it keeps a hyphenated compound
// like "twenty-one" as a single Word token the way the original tokenizer
// does, rather than breaking on the hyphen.
func Tokenize(source string) []Token {
	var out []Token
	var cur strings.Builder
	curKind := Separator
	has := false

	flush := func() {
		if !has {
			return
		}
		raw := cur.String()
		out = append(out, Token{Kind: curKind, Raw: raw, Low: strings.ToLower(raw)})
		cur.Reset()
		has = false
	}

	state := -1 // -1: no run yet, 0: separator, 1: word
	gr := uniseg.NewGraphemes(source)
	for gr.Next() {
		cluster := gr.Str()
		kind := Separator
		if isWordCluster(cluster) {
			kind = Word
		}
		wantState := 0
		if kind == Word {
			wantState = 1
		}
		if state != wantState {
			flush()
			state = wantState
			curKind = kind
		}
		cur.WriteString(cluster)
		has = true
	}
	flush()
	return out
}

// Words extracts the lowercased text of every Word-kind token, in order —
// the shape every language's Apply and BasicAnnotate consume.
func Words(tokens []Token) []string {
	words := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind == Word {
			words = append(words, t.Low)
		}
	}
	return words
}

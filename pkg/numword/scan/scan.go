// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package scan drives a language interpreter across a token stream,
// tracking maximal number spans and applying the lone-number suppression
// rule, the way the original replace_numbers pass does: a single active
// parser (an integer digit buffer plus an optional decimal digit buffer),
// a match window that extends word by word, and a one-slot held candidate
// that a later contiguous match can elevate to kept.
package scan

import (
	"iter"

	"github.com/google/uuid"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
	"numword/pkg/numword/tok"
)

// Occurrence is one number span the scanner decided to keep. ScanID
// correlates every occurrence emitted by a single Scanner.FindNumbers call
// (or ReplaceInStream's internal call) — useful for an embedder stitching
// replacement output back to the upstream ASR utterance it came from.
type Occurrence struct {
	ScanID     uuid.UUID
	StartIndex int
	EndIndex   int
	Text       string
	Value      float64
	IsOrdinal  bool
}

// Scanner finds and optionally replaces number spans in a token stream for
// one language, applying the lone-number suppression rule against
// Threshold. A Scanner holds no state between calls; Interp is immutable
// and Threshold is read-only, so a Scanner value is safe to share and reuse
// across scans, including concurrently.
type Scanner struct {
	Interp    lang.Interpreter
	Threshold float64
}

// New returns a Scanner for interp, keeping any candidate occurrence whose
// value is at least threshold regardless of the other lone-number rules.
func New(interp lang.Interpreter, threshold float64) *Scanner {
	return &Scanner{Interp: interp, Threshold: threshold}
}

type state uint8

const (
	stateIdle state = iota
	stateInNumber
	stateInDecimal
)

func isSkippable(t tok.Token) bool {
	return t.Kind == tok.Separator && (t.Raw == "-" || isBlank(t.Raw))
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

// FindNumbers runs the scanner's state machine over tokens and returns the
// kept occurrences in stream order.
func (s *Scanner) FindNumbers(tokens []tok.Token) []Occurrence {
	scanID := uuid.New()
	annotateBlocked(s.Interp, tokens)

	var kept []Occurrence
	var held *pending

	st := stateIdle
	intBuf := digitbuf.New()
	decBuf := digitbuf.New()
	var decSep rune
	matchStart, matchEnd := 0, 0

	finish := func() {
		if st == stateIdle {
			return
		}
		var text string
		var value float64
		if st == stateInDecimal {
			text, value = s.Interp.FormatDecimalAndValue(intBuf, decBuf, decSep)
		} else {
			text, value = s.Interp.FormatAndValue(intBuf)
		}
		occ := Occurrence{
			ScanID:     scanID,
			StartIndex: matchStart,
			EndIndex:   matchEnd,
			Text:       text,
			Value:      value,
			IsOrdinal:  intBuf.Marker.IsOrdinal() || intBuf.Marker.IsFraction(),
		}
		s.emit(&kept, &held, tokens, occ)
		st = stateIdle
		intBuf = digitbuf.New()
		decBuf = digitbuf.New()
		decSep = 0
	}

	n := len(tokens)
	for i := 0; i < n; {
		t := tokens[i]
		if isSkippable(t) {
			i++
			continue
		}

		if st != stateIdle {
			brokeByHint := t.NotANumberPart() || (i > 0 && t.NTSeparated(tokens[i-1]))
			if brokeByHint {
				finish()
				continue // retry this same token from Idle
			}
		}

		word := t.TextLowercase()
		switch st {
		case stateIdle:
			if t.NotANumberPart() {
				i++
				continue
			}
			switch err := s.Interp.Apply(word, intBuf); err {
			case nil:
				st = stateInNumber
				matchStart, matchEnd = i, i+1
			case digitbuf.Incomplete:
				intBuf.Reset()
			default:
				intBuf.Reset()
			}
			i++

		case stateInNumber:
			err := s.Interp.Apply(word, intBuf)
			switch err {
			case nil:
				matchEnd = i + 1
				i++
			case digitbuf.Incomplete:
				i++
			default:
				if sep, ok := s.Interp.CheckDecimalSeparator(word); ok {
					decSep = sep
					st = stateInDecimal
					i++
					continue
				}
				finish()
			}

		case stateInDecimal:
			if err := s.Interp.ApplyDecimal(word, decBuf); err == nil {
				matchEnd = i + 1
				i++
			} else {
				finish()
			}
		}
	}
	finish()
	return kept
}

// FindNumbersSeq is the lazy iterator form of FindNumbers. The held-
// candidate rule requires seeing one token past a candidate's end before
// its kept/held status is final, so this still runs the full scan up
// front; the laziness is only in how results are handed to the caller,
// which can stop consuming at any point (the scan itself is already done).
func (s *Scanner) FindNumbersSeq(tokens []tok.Token) iter.Seq[Occurrence] {
	occs := s.FindNumbers(tokens)
	return func(yield func(Occurrence) bool) {
		for _, occ := range occs {
			if !yield(occ) {
				return
			}
		}
	}
}

// ReplaceInStream rewrites tokens, replacing each kept occurrence's
// [start, end) range with a single synthesized Word token carrying the
// occurrence's digit text. Replacements are applied right to left so
// earlier indices stay valid as later ones are spliced in.
func (s *Scanner) ReplaceInStream(tokens []tok.Token) []tok.Token {
	occs := s.FindNumbers(tokens)
	out := append([]tok.Token(nil), tokens...)
	for i := len(occs) - 1; i >= 0; i-- {
		occ := occs[i]
		repl := tok.Token{Kind: tok.Word, Raw: occ.Text, Low: occ.Text}
		tail := append([]tok.Token{repl}, out[occ.EndIndex:]...)
		out = append(out[:occ.StartIndex], tail...)
	}
	return out
}

// pending is the scanner's single-slot lookback: the most recently finished
// occurrence, and whether it has already been emitted as kept. A candidate
// that turns out contiguous with a not-yet-kept pending occurrence elevates
// it; a candidate contiguous with an already-kept one is simply appended,
// since that rule chains to every run of mutually contiguous lone numbers,
// not only the first pair.
type pending struct {
	occ  Occurrence
	kept bool
}

// emit applies the lone-number suppression rule to a freshly finished
// candidate: it is kept outright if its text has more than one character
// and isn't an ordinal, or its value clears the threshold, or it turns out
// to be contiguous with the pending occurrence — elevating that one to
// kept first if it wasn't already. Otherwise it becomes (or replaces) the
// pending occurrence.
func (s *Scanner) emit(kept *[]Occurrence, held **pending, tokens []tok.Token, occ Occurrence) {
	mainCrit := (len(occ.Text) > 1 && !occ.IsOrdinal) || occ.Value >= s.Threshold

	contiguous := *held != nil &&
		(*held).occ.IsOrdinal == occ.IsOrdinal &&
		isContiguous(tokens, (*held).occ.EndIndex, occ.StartIndex, s.Interp)

	switch {
	case contiguous:
		if !(*held).kept {
			*kept = append(*kept, (*held).occ)
		}
		*kept = append(*kept, occ)
		*held = &pending{occ: occ, kept: true}
	case mainCrit:
		*kept = append(*kept, occ)
		*held = &pending{occ: occ, kept: true}
	default:
		*held = &pending{occ: occ, kept: false}
	}
}

// isContiguous reports whether every token in tokens[from:to] is either a
// non-alphabetic run (a bare "." excluded — it counts as breaking) or a
// linking word of interp's language.
func isContiguous(tokens []tok.Token, from, to int, interp lang.Interpreter) bool {
	for i := from; i < to; i++ {
		t := tokens[i]
		if t.Kind == tok.Word {
			if !interp.IsLinking(t.TextLowercase()) {
				return false
			}
			continue
		}
		if t.Raw == "." {
			return false
		}
	}
	return true
}

// annotateBlocked runs interp's optional whole-sequence pre-pass, if any,
// and marks the corresponding Word tokens as not-a-number-part in place.
func annotateBlocked(interp lang.Interpreter, tokens []tok.Token) {
	a, ok := interp.(lang.Annotator)
	if !ok {
		return
	}
	words := tok.Words(tokens)
	mask := a.BasicAnnotate(words)
	wi := 0
	for i := range tokens {
		if tokens[i].Kind != tok.Word {
			continue
		}
		if wi < len(mask) && mask[wi] {
			tokens[i].Blocked = true
		}
		wi++
	}
}

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package numword is the convenience façade over the lower-level
// digitbuf/lang/compound/tok/scan packages: a language-code registry, the
// strict text2digits parser, and the public replace/find entry points.
package numword

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"numword/pkg/numword/digitbuf"
	"numword/pkg/numword/lang"
	"numword/pkg/numword/lang/de"
	"numword/pkg/numword/lang/en"
	"numword/pkg/numword/lang/es"
	"numword/pkg/numword/lang/fr"
	"numword/pkg/numword/lang/it"
	"numword/pkg/numword/lang/nl"
	"numword/pkg/numword/lang/pt"
	"numword/pkg/numword/scan"
	"numword/pkg/numword/tok"
)

var registry = map[string]lang.Interpreter{
	de.New().Code(): de.New(),
	en.New().Code(): en.New(),
	es.New().Code(): es.New(),
	fr.New().Code(): fr.New(),
	it.New().Code(): it.New(),
	nl.New().Code(): nl.New(),
	pt.New().Code(): pt.New(),
}

var supportedTags = func() []language.Tag {
	tags := make([]language.Tag, 0, len(registry))
	for code := range registry {
		tags = append(tags, language.MustParse(code))
	}
	return tags
}()

var matcher = language.NewMatcher(supportedTags)

// For resolves a requested language to one of the seven supported
// interpreters. code is parsed as a BCP-47 tag, so full locale forms like
// "pt-BR" or "fr-CA" resolve to their base language ("pt", "fr") the same
// way a caller's Accept-Language header would; an unparsable or entirely
// unsupported tag reports ok == false.
func For(code string) (lang.Interpreter, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return nil, false
	}
	base, _ := supportedTags[index].Base()
	interp, ok := registry[base.String()]
	return interp, ok
}

// Text2Digits parses text as a single number, lowercasing and splitting on
// whitespace first. An Incomplete result at the end of the group (a
// trailing connector with nothing after it) is reported as an error, same
// as any other interpreter failure.
func Text2Digits(text string, interp lang.Interpreter) (string, error) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return "", errors.New("numword: empty input")
	}
	b, err := lang.ExecGroup(interp, words)
	if err != nil {
		return "", fmt.Errorf("numword: %w", err)
	}
	out, _ := interp.FormatAndValue(b)
	return out, nil
}

// ReplaceNumbersInText tokenizes text, replaces every kept number
// occurrence with its digit form, and reassembles the token stream back
// into a string.
func ReplaceNumbersInText(text string, interp lang.Interpreter, threshold float64) string {
	tokens := tok.Tokenize(text)
	out := scan.New(interp, threshold).ReplaceInStream(tokens)
	var b strings.Builder
	for _, t := range out {
		b.WriteString(t.Text())
	}
	return b.String()
}

// ReplaceNumbersInStream replaces every kept number occurrence in tokens
// with a single synthesized token carrying its digit form.
func ReplaceNumbersInStream(tokens []tok.Token, interp lang.Interpreter, threshold float64) []tok.Token {
	return scan.New(interp, threshold).ReplaceInStream(tokens)
}

// FindNumbers returns every kept number occurrence in tokens, in stream
// order, without rewriting the stream.
func FindNumbers(tokens []tok.Token, interp lang.Interpreter, threshold float64) []scan.Occurrence {
	return scan.New(interp, threshold).FindNumbers(tokens)
}

// FindNumbersSeq is the lazy iterator form of FindNumbers.
func FindNumbersSeq(tokens []tok.Token, interp lang.Interpreter, threshold float64) func(yield func(scan.Occurrence) bool) {
	return scan.New(interp, threshold).FindNumbersSeq(tokens)
}

// ReplaceNumbersInTextBatch runs ReplaceNumbersInText over every input
// concurrently. Per §5, independent scans need no coordination beyond
// fan-out/fan-in; errgroup.Group bounds how many run at once so a caller
// passing a large batch doesn't spawn one goroutine per input.
func ReplaceNumbersInTextBatch(texts []string, interp lang.Interpreter, threshold float64, concurrency int) []string {
	out := make([]string, len(texts))
	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			out[i] = ReplaceNumbersInText(text, interp, threshold)
			return nil
		})
	}
	_ = g.Wait() // ReplaceNumbersInText never errors; Wait only awaits completion.
	return out
}

// FindNumbersBatch runs FindNumbers over every input concurrently, same
// fan-out discipline as ReplaceNumbersInTextBatch.
func FindNumbersBatch(inputs [][]tok.Token, interp lang.Interpreter, threshold float64, concurrency int) [][]scan.Occurrence {
	out := make([][]scan.Occurrence, len(inputs))
	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, tokens := range inputs {
		i, tokens := i, tokens
		g.Go(func() error {
			out[i] = FindNumbers(tokens, interp, threshold)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// ErrorKind re-exports digitbuf's four-way failure taxonomy so callers of
// this package never need to import digitbuf directly just to compare
// against it.
type ErrorKind = digitbuf.ErrorKind

const (
	ErrOverlap    = digitbuf.Overlap
	ErrNaN        = digitbuf.NaN
	ErrIncomplete = digitbuf.Incomplete
	ErrFrozen     = digitbuf.Frozen
)

// Copyright 2024 The Jindo Authors. All rights reserved.
// This file is part of jindo and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package compound splits a single run-together number word (German
// "einundzwanzig", Dutch "eenentwintig", Italian "ventitré") into the
// sequence of known morphemes it is built from, so a language interpreter
// can drive the rest of its Apply logic one morpheme at a time. No
// Aho-Corasick or trie library is used here: nothing in the retrieved
// example pack depends on one, and a fixed, small per-language dictionary
// makes the plain greedy scan below exact and cheap.
package compound

import (
	"strings"
	"unicode/utf8"
)

// Dictionary is the closed set of morphemes recognized for one language,
// used for leftmost-longest matching. Order does not matter; Split always
// prefers the longest matching stem at each position.
type Dictionary []string

// Split decomposes word into dictionary stems, left to right, always
// consuming the longest matching stem available at the current position.
// It reports ok=false if some suffix of word matches no stem at all.
func (d Dictionary) Split(word string) (parts []string, ok bool) {
	for len(word) > 0 {
		best := ""
		for _, stem := range d {
			if len(stem) > len(best) && strings.HasPrefix(word, stem) {
				best = stem
			}
		}
		if best == "" {
			return nil, false
		}
		parts = append(parts, best)
		word = word[len(best):]
	}
	return parts, true
}

// SplitAround scans word for occurrences of dictionary stems (its
// magnitude/tens separators) and cuts around them, left to right, always
// preferring the longest stem available at the current position. Runs of
// characters between matches are kept verbatim as their own part, to be
// interpreted on their own terms by the caller. found reports whether any
// stem matched at all; a word with no recognizable separator is returned
// whole with found=false, and the caller should not treat it as a
// compound.
func (d Dictionary) SplitAround(word string) (parts []string, found bool) {
	var pending strings.Builder
	i := 0
	for i < len(word) {
		best := ""
		for _, stem := range d {
			if len(stem) > len(best) && strings.HasPrefix(word[i:], stem) {
				best = stem
			}
		}
		if best != "" {
			if pending.Len() > 0 {
				parts = append(parts, pending.String())
				pending.Reset()
			}
			parts = append(parts, best)
			i += len(best)
			found = true
			continue
		}
		r, size := utf8.DecodeRuneInString(word[i:])
		pending.WriteRune(r)
		i += size
	}
	if pending.Len() > 0 {
		parts = append(parts, pending.String())
	}
	return parts, found
}

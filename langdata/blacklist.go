// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import (
	"sort"
	"strings"
)

// wordSeparators maps characters that join words inside display names,
// such as "Belarusian (latin)" or "Sorbian (lower)", to spaces.
var wordSeparators = strings.NewReplacer("(", " ", ")", " ", "-", " ")

// Words splits a display name into its lowercase word tokens, treating
// parentheses and hyphens as separators.
func Words(name string) []string {
	return strings.Fields(strings.ToLower(wordSeparators.Replace(name)))
}

// BlacklistWords folds the display names of every given table into a new,
// deduplicated, lexicographically sorted word list. These words feed the
// same-word quality check: a translation identical to its source is
// expected when the text is a language name.
func BlacklistWords(tables ...[]Definition) []string {
	seen := make(map[string]struct{})

	for _, defs := range tables {
		for _, def := range defs {
			for _, word := range Words(string(def.Name)) {
				seen[word] = struct{}{}
			}
		}
	}

	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}

	sort.Strings(words)

	return words
}

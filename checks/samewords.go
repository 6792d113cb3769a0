// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package checks runs quality checks against translated units.

The only check implemented here is the same-word check, the consumer of
the generated language-name blacklist: a translation identical to its
source is usually an untranslated string, except when the text is made of
language names, which legitimately read the same across locales.
*/
package checks

import (
	"strings"

	"codeberg.org/langforge/langforge/langdata"
)

// Unit is a single source/target string pair as seen by quality checks.
type Unit struct {
	Source string
	Target string

	// Code is the target language code, for example "de" or "pt_BR".
	Code string
}

// Check is a quality check run against translated units.
type Check interface {
	// ID is the stable identifier of the check, used in reports.
	ID() string

	// Failing reports whether u fails the check.
	Failing(u Unit) bool
}

// Failing runs every given check against u and returns the IDs of those
// that fail, in the order the checks were given.
func Failing(u Unit, cs ...Check) []string {
	var ids []string

	for _, c := range cs {
		if c.Failing(u) {
			ids = append(ids, c.ID())
		}
	}

	return ids
}

// SameCheck flags units whose target is identical to the source. Units
// whose every word appears in the language-name blacklist are exempt.
type SameCheck struct {
	blacklist map[string]struct{}
}

// NewSameCheck builds a same-word check over the given blacklist words.
// Words are matched lowercase.
func NewSameCheck(words []string) *SameCheck {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}

	return &SameCheck{blacklist: m}
}

// DefaultSameCheck builds a same-word check over the generated
// langdata.SameBlacklist.
func DefaultSameCheck() *SameCheck {
	return NewSameCheck(langdata.SameBlacklist)
}

// ID implements Check.
func (c *SameCheck) ID() string {
	return "same"
}

// Failing implements Check. Empty sources never fail, and neither do
// units targeting the base language, where source and target are the
// same string by construction.
func (c *SameCheck) Failing(u Unit) bool {
	source := strings.TrimSpace(u.Source)
	if source == "" || u.Source != u.Target {
		return false
	}

	if code := strings.ToLower(u.Code); code == "en" || strings.HasPrefix(code, "en_") || strings.HasPrefix(code, "en-") {
		return false
	}

	// Tokenise the way the blacklist was derived, so "Belarusian (latin)"
	// matches its blacklist words.
	words := langdata.Words(source)
	if len(words) == 0 {
		return false
	}

	for _, w := range words {
		if _, ok := c.blacklist[w]; !ok {
			return true
		}
	}

	return false
}

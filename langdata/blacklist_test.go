// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want []string
	}{
		{"Belarusian (latin)", []string{"belarusian", "latin"}},
		{"West Flemish", []string{"west", "flemish"}},
		{"Sorbian (lower)", []string{"sorbian", "lower"}},
		{"Nahuatl-languages", []string{"nahuatl", "languages"}},
		{"English", []string{"english"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Words(tt.name), "Words(%q)", tt.name)
	}
}

func TestBlacklistWords(t *testing.T) {
	t.Parallel()

	defs := []Definition{
		{Code: "be@latin", Name: "Belarusian (latin)"},
		{Code: "vls", Name: "West Flemish"},
	}

	words := BlacklistWords(defs)

	assert.Equal(t, []string{"belarusian", "flemish", "latin", "west"}, words)

	for _, w := range words {
		assert.NotContains(t, []string{"(", ")", "-"}, w)
	}
}

// Blacklist ordering is part of the generated-artifact contract: the same
// word set sorts identically regardless of input row order.
func TestBlacklistWordsOrderIndependent(t *testing.T) {
	t.Parallel()

	forward := []Definition{
		{Name: "Belarusian (latin)"},
		{Name: "West Flemish"},
		{Name: "Belarusian"},
	}

	backward := []Definition{
		{Name: "West Flemish"},
		{Name: "Belarusian"},
		{Name: "Belarusian (latin)"},
	}

	assert.Equal(t, BlacklistWords(forward), BlacklistWords(backward))
	assert.True(t, sort.StringsAreSorted(BlacklistWords(forward)))
}

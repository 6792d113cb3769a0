// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameCheck(t *testing.T) {
	t.Parallel()

	check := DefaultSameCheck()

	tests := []struct {
		name string
		unit Unit
		want bool
	}{
		{
			name: "untranslated string is flagged",
			unit: Unit{Source: "Save your changes", Target: "Save your changes", Code: "de"},
			want: true,
		},
		{
			name: "translated string passes",
			unit: Unit{Source: "Save your changes", Target: "Änderungen speichern", Code: "de"},
			want: false,
		},
		{
			name: "language name is exempt",
			unit: Unit{Source: "Belarusian (latin)", Target: "Belarusian (latin)", Code: "de"},
			want: false,
		},
		{
			name: "multi-word language name is exempt",
			unit: Unit{Source: "West Flemish", Target: "West Flemish", Code: "cs"},
			want: false,
		},
		{
			name: "partially blacklisted text is still flagged",
			unit: Unit{Source: "West Flemish grammar", Target: "West Flemish grammar", Code: "cs"},
			want: true,
		},
		{
			name: "base language target is exempt",
			unit: Unit{Source: "Save your changes", Target: "Save your changes", Code: "en_GB"},
			want: false,
		},
		{
			name: "empty source passes",
			unit: Unit{Source: "", Target: "", Code: "de"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, check.Failing(tt.unit))
		})
	}
}

func TestFailing(t *testing.T) {
	t.Parallel()

	unit := Unit{Source: "Save", Target: "Save", Code: "fr"}

	ids := Failing(unit, DefaultSameCheck())
	assert.Equal(t, []string{"same"}, ids)

	translated := Unit{Source: "Save", Target: "Enregistrer", Code: "fr"}
	assert.Empty(t, Failing(translated, DefaultSameCheck()))
}

func TestNewSameCheckCustomBlacklist(t *testing.T) {
	t.Parallel()

	check := NewSameCheck([]string{"Widget"})

	// Custom words match case-insensitively.
	assert.False(t, check.Failing(Unit{Source: "widget", Target: "widget", Code: "de"}))
	assert.True(t, check.Failing(Unit{Source: "gadget", Target: "gadget", Code: "de"}))
}

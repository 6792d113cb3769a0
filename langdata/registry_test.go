// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := Default()

	tests := []struct {
		code     string
		wantName string
		wantOK   bool
	}{
		{"en", "English", true},
		{"pt_BR", "Portuguese (Brazil)", true},
		{"pt-BR", "Portuguese (Brazil)", true}, // separator-insensitive
		{"PT_br", "Portuguese (Brazil)", true}, // case-insensitive
		{"be@latin", "Belarusian (latin)", true},
		{"xx", "", false},
	}

	for _, tt := range tests {
		def, ok := r.Lookup(tt.code)
		require.Equal(t, tt.wantOK, ok, "Lookup(%q)", tt.code)

		if ok {
			assert.Equal(t, tt.wantName, string(def.Name), "Lookup(%q)", tt.code)
		}
	}
}

func TestRegistryOverridePrecedence(t *testing.T) {
	t.Parallel()

	r := Default()

	// pt_BR appears in both tables; the extra-plural entry must win.
	def, ok := r.Lookup("pt_BR")
	require.True(t, ok)
	assert.Equal(t, "n != 1", def.PluralRule)

	// ga is overridden to three forms.
	def, ok = r.Lookup("ga")
	require.True(t, ok)
	assert.Equal(t, "3", def.PluralCount)

	// br exists only in the override table but is still resolvable.
	def, ok = r.Lookup("br")
	require.True(t, ok)
	assert.Equal(t, "Breton", string(def.Name))
}

func TestRegistryCodes(t *testing.T) {
	t.Parallel()

	r := NewRegistry(
		[]Definition{{Code: "en"}, {Code: "fr"}},
		[]Definition{{Code: "fr"}, {Code: "br"}},
	)

	assert.Equal(t, []string{"en", "fr", "br"}, r.Codes())
	assert.Equal(t, 3, r.Len())
}

// The generated tables must be internally consistent: unique codes, a
// blacklist that matches a fresh derivation from the definitions, and
// sorted blacklist order.
func TestGeneratedTablesConsistent(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Languages)

	seen := make(map[string]struct{}, len(Languages))
	for _, def := range Languages {
		_, dup := seen[def.Code]
		require.False(t, dup, "duplicate code %q in Languages", def.Code)

		seen[def.Code] = struct{}{}

		assert.NotEmpty(t, def.Name, "empty name for %q", def.Code)
	}

	assert.True(t, sort.StringsAreSorted(SameBlacklist))
	assert.Equal(t, BlacklistWords(Languages, ExtraPlurals), SameBlacklist,
		"blacklist_gen.go is stale; re-run langgen")
}

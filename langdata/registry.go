// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import "strings"

// Registry resolves language codes to definitions.
//
// A registry is built from a base table and an override table. Overrides
// take precedence at lookup time: a locale listed in both tables resolves
// to its override entry, which typically carries a regional plural rule
// differing from the base language's default.
type Registry struct {
	byKey map[string]Definition
	codes []string // base-table order, then overrides not present in the base table
}

// NewRegistry builds a registry from a base table and an override table.
// Both slices are read, not retained.
func NewRegistry(base, overrides []Definition) *Registry {
	r := &Registry{
		byKey: make(map[string]Definition, len(base)+len(overrides)),
	}

	for _, def := range base {
		key := normalizeCode(def.Code)
		if _, dup := r.byKey[key]; !dup {
			r.codes = append(r.codes, def.Code)
		}

		r.byKey[key] = def
	}

	for _, def := range overrides {
		key := normalizeCode(def.Code)
		if _, known := r.byKey[key]; !known {
			r.codes = append(r.codes, def.Code)
		}

		r.byKey[key] = def
	}

	return r
}

// Default returns a registry over the generated Languages and ExtraPlurals
// tables.
func Default() *Registry {
	return NewRegistry(Languages, ExtraPlurals)
}

// Lookup resolves code to its definition. Codes match case-insensitively,
// and hyphen and underscore separators are interchangeable, so "pt-br"
// finds the "pt_BR" entry.
func (r *Registry) Lookup(code string) (Definition, bool) {
	def, ok := r.byKey[normalizeCode(code)]

	return def, ok
}

// Codes returns every known language code in registry order.
// The returned slice is a copy and safe to retain.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)

	return out
}

// Len returns the number of distinct languages in the registry.
func (r *Registry) Len() int {
	return len(r.byKey)
}

// normalizeCode maps a language code to its lookup key. Weblate-style
// modifiers such as "@latin" are preserved; only case and the
// hyphen/underscore separator are normalised.
func normalizeCode(code string) string {
	return strings.ToLower(strings.ReplaceAll(code, "-", "_"))
}

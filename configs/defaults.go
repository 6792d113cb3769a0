// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

// Default paths, relative to the project root. langgen runs with zero
// arguments when invoked from there.
const (
	DefaultLanguagesCSV    = "data/languages.csv"
	DefaultExtraPluralsCSV = "data/extraplurals.csv"
	DefaultDefinitionsOut  = "langdata/definitions_gen.go"
	DefaultBlacklistOut    = "langdata/blacklist_gen.go"
)

// SetDefaults populates the configuration with default values.
func (cfg *Config) SetDefaults() {
	cfg.Paths.LanguagesCSV = DefaultLanguagesCSV
	cfg.Paths.ExtraPluralsCSV = DefaultExtraPluralsCSV
	cfg.Paths.DefinitionsOut = DefaultDefinitionsOut
	cfg.Paths.BlacklistOut = DefaultBlacklistOut

	cfg.Generator.Package = "langdata"
	cfg.Generator.StrictRules = false

	cfg.Log.Level = "info"
	cfg.Log.Format = "console"

	cfg.Internationalization.StrictMissingKeys = false
}

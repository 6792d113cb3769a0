// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
langgen regenerates the language registry sources from the CSV registries.

Run from the project root with no arguments to rewrite
langdata/definitions_gen.go and langdata/blacklist_gen.go from
data/languages.csv and data/extraplurals.csv. Paths and behaviour can be
overridden by a YAML config file, LANGFORGE_* environment variables, or
flags, in that order of precedence.

Output is deterministic: re-running against unchanged registries produces
byte-identical files. Any malformed row or I/O failure aborts the run;
generated files are replaced atomically, so a failed run never leaves a
truncated artifact behind.
*/
package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/langforge/langforge/codegen"
	"codeberg.org/langforge/langforge/configs"
	"codeberg.org/langforge/langforge/langdata"
	"codeberg.org/langforge/langforge/plural"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Generation failed")
	}
}

func run() error {
	config.SetDefaultLogger()

	var (
		configPath   = flag.String("config", "./langforge.yaml", "path to a langforge configuration file in YAML format")
		languagesCSV = flag.String("languages", "", "override the languages registry path")
		extrasCSV    = flag.String("extraplurals", "", "override the extra-plurals registry path")
		defsOut      = flag.String("definitions-out", "", "override the generated definitions path")
		blacklistOut = flag.String("blacklist-out", "", "override the generated blacklist path")
		strict       = flag.Bool("strict", false, "compile every non-empty plural rule and fail on syntax errors")
	)

	flag.Parse()

	cfg := &config.Global
	if err := cfg.LoadConfig(*configPath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	applyFlagOverrides(cfg, *languagesCSV, *extrasCSV, *defsOut, *blacklistOut, *strict)

	if cfg.Log.Level == "debug" {
		cfg.Print()
	}

	// Read both registries fully before rendering anything, so a malformed
	// row fails the run with no output committed.
	var languages, extraPlurals []langdata.Definition

	g := new(errgroup.Group)
	g.Go(func() (err error) {
		languages, err = langdata.ReadTableFile(cfg.Paths.LanguagesCSV)

		return err
	})
	g.Go(func() (err error) {
		extraPlurals, err = langdata.ReadTableFile(cfg.Paths.ExtraPluralsCSV)

		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.Generator.StrictRules {
		if err := validateRules(cfg.Paths.LanguagesCSV, languages); err != nil {
			return err
		}

		if err := validateRules(cfg.Paths.ExtraPluralsCSV, extraPlurals); err != nil {
			return err
		}
	}

	src := codegen.Source{
		Package:      cfg.Generator.Package,
		LanguagesCSV: cfg.Paths.LanguagesCSV,
		ExtrasCSV:    cfg.Paths.ExtraPluralsCSV,
	}

	definitions, err := codegen.RenderDefinitions(src, languages, extraPlurals)
	if err != nil {
		return err
	}

	words := langdata.BlacklistWords(languages, extraPlurals)

	blacklist, err := codegen.RenderBlacklist(src, words)
	if err != nil {
		return err
	}

	if err := codegen.WriteFile(cfg.Paths.DefinitionsOut, definitions); err != nil {
		return err
	}

	if err := codegen.WriteFile(cfg.Paths.BlacklistOut, blacklist); err != nil {
		return err
	}

	log.Info().
		Int("languages", len(languages)).
		Int("extraplurals", len(extraPlurals)).
		Int("blacklist_words", len(words)).
		Str("definitions", cfg.Paths.DefinitionsOut).
		Str("blacklist", cfg.Paths.BlacklistOut).
		Msg("Wrote language tables")

	return nil
}

// applyFlagOverrides lets explicit flags win over config file and
// environment values.
func applyFlagOverrides(cfg *config.Config, languagesCSV, extrasCSV, defsOut, blacklistOut string, strict bool) {
	if languagesCSV != "" {
		cfg.Paths.LanguagesCSV = languagesCSV
	}

	if extrasCSV != "" {
		cfg.Paths.ExtraPluralsCSV = extrasCSV
	}

	if defsOut != "" {
		cfg.Paths.DefinitionsOut = defsOut
	}

	if blacklistOut != "" {
		cfg.Paths.BlacklistOut = blacklistOut
	}

	if strict {
		cfg.Generator.StrictRules = true
	}
}

// validateRules compiles every non-empty plural rule in defs, reporting
// the source file and 1-based row of the first failure. Empty rules pass:
// they are carried verbatim into the generated table.
func validateRules(source string, defs []langdata.Definition) error {
	for i, def := range defs {
		if def.PluralRule == "" {
			continue
		}

		if err := plural.Validate(def.PluralRule); err != nil {
			return fmt.Errorf("%s: row %d (%s): %w", source, i+1, def.Code, err)
		}
	}

	return nil
}

// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config holds the generator configuration, assembled from
// defaults, an optional YAML file and LANGFORGE_* environment variables,
// in that order of increasing precedence.
package config

import (
	"fmt"
)

// Global exposes the generator configuration.
var Global Config

// Config holds the langgen configuration.
type Config struct {
	Paths struct {
		// LanguagesCSV and ExtraPluralsCSV are the registry inputs.
		LanguagesCSV    string `env:"LANGFORGE_LANGUAGES_CSV,overwrite" yaml:"languagesCSV"`
		ExtraPluralsCSV string `env:"LANGFORGE_EXTRAPLURALS_CSV,overwrite" yaml:"extraPluralsCSV"`

		// DefinitionsOut and BlacklistOut are the generated sources.
		DefinitionsOut string `env:"LANGFORGE_DEFINITIONS_OUT,overwrite" yaml:"definitionsOut"`
		BlacklistOut   string `env:"LANGFORGE_BLACKLIST_OUT,overwrite" yaml:"blacklistOut"`
	} `yaml:"paths"`

	Generator struct {
		// Package is the package name of the generated sources.
		Package string `env:"LANGFORGE_PACKAGE,overwrite" yaml:"package"`

		// StrictRules makes langgen compile every non-empty plural rule
		// and fail on syntax errors. Off by default: rule fields are
		// normally carried verbatim.
		StrictRules bool `env:"LANGFORGE_STRICT_RULES,overwrite" yaml:"strictRules"`
	} `yaml:"generator"`

	Log struct {
		Level  string `env:"LANGFORGE_LOG_LEVEL,overwrite" yaml:"level"`
		Format string `env:"LANGFORGE_LOG_FORMAT,overwrite" yaml:"format"`
	} `yaml:"log"`

	Internationalization struct {
		StrictMissingKeys bool `env:"LANGFORGE_I18N_STRICT,overwrite" yaml:"strictMissingKeys"`
	} `yaml:"internationalization"`
}

// LoadConfig populates cfg from defaults, then the YAML file at
// configFilePath (skipped when missing), then environment variables.
// It finishes by validating the result and configuring logging.
func (cfg *Config) LoadConfig(configFilePath string) error {
	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	return nil
}

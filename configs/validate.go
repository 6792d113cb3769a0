// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"
)

// validation errors.
var (
	errEmptyPath          = errors.New("registry and output paths cannot be empty")
	errInvalidPackageName = errors.New("generator.package is not a valid Go package name")
	errInvalidLogLevel    = errors.New("invalid log.level value")
	errInvalidLogFormat   = errors.New("invalid log.format value")
)

var packageNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// validate checks the assembled configuration.
func (cfg *Config) validate() error {
	for _, p := range []string{
		cfg.Paths.LanguagesCSV,
		cfg.Paths.ExtraPluralsCSV,
		cfg.Paths.DefinitionsOut,
		cfg.Paths.BlacklistOut,
	} {
		if p == "" {
			return errEmptyPath
		}
	}

	if !packageNameRegexp.MatchString(cfg.Generator.Package) {
		return fmt.Errorf("%w: %q", errInvalidPackageName, cfg.Generator.Package)
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", errInvalidLogFormat, cfg.Log.Format)
	}

	return nil
}

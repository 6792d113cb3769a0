// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package codegen renders the generated registry sources: the definitions
module (Languages and ExtraPlurals tables) and the same-word blacklist
module.

Output is deterministic and diff-friendly: tables mirror input row order,
the blacklist is pre-sorted by the caller, and the rendered source is run
through go/format before being written. Every user-supplied field is
embedded with full Go string quoting, so quotes, backslashes and newlines
in registry data cannot corrupt the generated source. Files are replaced
atomically via write-to-temp-then-rename.
*/
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"codeberg.org/langforge/langforge/langdata"
)

// markerImport is the package providing the translatable-literal marker
// wrapped around display names in the definitions module.
const markerImport = "codeberg.org/langforge/langforge/i18n"

// header opens every generated file.
const header = "// Copyright 2024 - 2026, The langforge contributors\n" +
	"// SPDX-License-Identifier: AGPL-3.0-only\n"

// Source identifies where generated code comes from and where it lives.
type Source struct {
	// Package is the target package name of the generated files.
	Package string

	// LanguagesCSV and ExtrasCSV are the registry paths recorded in the
	// generated-file warning, slash-separated.
	LanguagesCSV string
	ExtrasCSV    string
}

func (s Source) generatedLine() string {
	return fmt.Sprintf("// Code generated by langgen from %s and %s; DO NOT EDIT.\n",
		filepath.ToSlash(s.LanguagesCSV), filepath.ToSlash(s.ExtrasCSV))
}

// RenderDefinitions renders the definitions module: two ordered Definition
// tables whose display names are wrapped in the i18n.MsgKey marker so the
// extraction tool collects them without translating them here.
func RenderDefinitions(src Source, languages, extras []langdata.Definition) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(src.generatedLine())
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", src.Package)
	fmt.Fprintf(&b, "import %q\n\n", markerImport)

	fmt.Fprintf(&b, "// Languages mirrors %s in row order.\n", filepath.ToSlash(src.LanguagesCSV))
	writeTable(&b, "Languages", languages)

	b.WriteString("\n")
	fmt.Fprintf(&b, "// ExtraPlurals mirrors %s in row order; entries here take precedence over Languages at lookup time.\n",
		filepath.ToSlash(src.ExtrasCSV))
	writeTable(&b, "ExtraPlurals", extras)

	return gofmt(b.String())
}

func writeTable(b *strings.Builder, name string, defs []langdata.Definition) {
	fmt.Fprintf(b, "var %s = []Definition{\n", name)

	for _, def := range defs {
		fmt.Fprintf(b, "\t{Code: %q, Name: i18n.MsgKey(%q), PluralCount: %q, PluralRule: %q},\n",
			def.Code, string(def.Name), def.PluralCount, def.PluralRule)
	}

	b.WriteString("}\n")
}

// RenderBlacklist renders the blacklist module: one deduplicated word list.
// The words must already be sorted; langdata.BlacklistWords produces them
// in the required order.
func RenderBlacklist(src Source, words []string) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(src.generatedLine())
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", src.Package)

	b.WriteString("// SameBlacklist holds every lowercase word occurring in a language display name, sorted lexicographically.\n")
	b.WriteString("// The same-word quality check skips units whose words all appear here.\n")
	b.WriteString("var SameBlacklist = []string{\n")

	for _, word := range words {
		fmt.Fprintf(&b, "\t%q,\n", word)
	}

	b.WriteString("}\n")

	return gofmt(b.String())
}

// gofmt formats rendered source, which also rejects output that would not
// compile as Go syntax.
func gofmt(src string) ([]byte, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("generated source is not valid Go: %w", err)
	}

	return out, nil
}

// WriteFile replaces path with content using write-to-temp-then-rename,
// so a failing run never leaves a truncated generated file behind.
func WriteFile(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

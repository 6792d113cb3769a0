// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/langforge/langforge/i18n"
	"codeberg.org/langforge/langforge/langdata"
)

var testSource = Source{
	Package:      "langdata",
	LanguagesCSV: "data/languages.csv",
	ExtrasCSV:    "data/extraplurals.csv",
}

func testTables() ([]langdata.Definition, []langdata.Definition) {
	languages := []langdata.Definition{
		{Code: "en", Name: "English", PluralCount: "2", PluralRule: "n != 1"},
		{Code: "ay", Name: "Aymará", PluralCount: "1", PluralRule: "0"},
		{Code: "be@latin", Name: "Belarusian (latin)", PluralCount: "3", PluralRule: ""},
	}
	extras := []langdata.Definition{
		{Code: "br", Name: "Breton", PluralCount: "2", PluralRule: "n > 1"},
	}

	return languages, extras
}

// parseTable parses rendered Go source and returns the composite-literal
// elements of the named top-level var.
func parseTable(t *testing.T, src []byte, name string) []ast.Expr {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err)

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}

		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Names) != 1 || vs.Names[0].Name != name {
				continue
			}

			require.Len(t, vs.Values, 1)

			cl, ok := vs.Values[0].(*ast.CompositeLit)
			require.True(t, ok)

			return cl.Elts
		}
	}

	t.Fatalf("var %s not found in rendered source", name)

	return nil
}

func TestRenderDefinitionsRowCounts(t *testing.T) {
	t.Parallel()

	languages, extras := testTables()

	out, err := RenderDefinitions(testSource, languages, extras)
	require.NoError(t, err)

	assert.Len(t, parseTable(t, out, "Languages"), len(languages))
	assert.Len(t, parseTable(t, out, "ExtraPlurals"), len(extras))

	text := string(out)
	assert.Contains(t, text, "Code generated by langgen from data/languages.csv and data/extraplurals.csv; DO NOT EDIT.")
	assert.Contains(t, text, "package langdata")
	assert.Contains(t, text, `import "codeberg.org/langforge/langforge/i18n"`)
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	languages, extras := testTables()

	first, err := RenderDefinitions(testSource, languages, extras)
	require.NoError(t, err)

	second, err := RenderDefinitions(testSource, languages, extras)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	words := langdata.BlacklistWords(languages, extras)

	firstBL, err := RenderBlacklist(testSource, words)
	require.NoError(t, err)

	secondBL, err := RenderBlacklist(testSource, words)
	require.NoError(t, err)

	assert.Equal(t, firstBL, secondBL)
}

// Display names are embedded with full Go quoting, so quotes, backslashes
// and newlines survive a render/parse round trip unchanged.
func TestRenderEscaping(t *testing.T) {
	t.Parallel()

	hostile := []string{
		"Aymará'",
		`Quoted "name"`,
		`Back\slash`,
		"New\nline",
	}

	for _, name := range hostile {
		languages := []langdata.Definition{
			{Code: "xx", Name: i18n.MsgKey(name), PluralCount: "1", PluralRule: "0"},
		}

		out, err := RenderDefinitions(testSource, languages, nil)
		require.NoError(t, err, "name %q", name)

		elts := parseTable(t, out, "Languages")
		require.Len(t, elts, 1)

		// Second field of the element is Name: i18n.MsgKey("...").
		lit := findStringArg(t, elts[0], "Name")
		got, err := strconv.Unquote(lit)
		require.NoError(t, err)
		assert.Equal(t, name, got, "name %q did not round-trip", name)
	}
}

// findStringArg extracts the quoted literal of the named field from a
// Definition composite literal element.
func findStringArg(t *testing.T, elt ast.Expr, field string) string {
	t.Helper()

	cl, ok := elt.(*ast.CompositeLit)
	require.True(t, ok)

	for _, e := range cl.Elts {
		kv, ok := e.(*ast.KeyValueExpr)
		if !ok || kv.Key.(*ast.Ident).Name != field {
			continue
		}

		// Name is wrapped: i18n.MsgKey("...").
		if call, ok := kv.Value.(*ast.CallExpr); ok {
			return call.Args[0].(*ast.BasicLit).Value
		}

		return kv.Value.(*ast.BasicLit).Value
	}

	t.Fatalf("field %s not found", field)

	return ""
}

func TestRenderBlacklist(t *testing.T) {
	t.Parallel()

	out, err := RenderBlacklist(testSource, []string{"belarusian", "flemish", "latin", "west"})
	require.NoError(t, err)

	elts := parseTable(t, out, "SameBlacklist")
	require.Len(t, elts, 4)

	assert.NotContains(t, string(out), "import")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out", "gen.go")

	require.NoError(t, WriteFile(path, []byte("package x\n")))

	// Overwriting replaces content wholesale.
	require.NoError(t, WriteFile(path, []byte("package y\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "package y\n", string(got))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)

	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover temp file %s", e.Name())
	}
}

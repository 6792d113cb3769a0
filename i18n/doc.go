// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n provides internationalisation utilities backed by GNU gettext
.po catalogues. It translates source message IDs (msgids) across locales
and supports both context and plural forms.

# Quick start

Use the original English UI text as the msgid; do not invent keys.

Translate strings with calls such as:

	i18n.Tr(ctx, "Generating language tables")
	i18n.TrC(ctx, "registry", "Code") // disambiguation via context
	i18n.TrN(ctx, "{{.Count}} language", "{{.Count}} languages", n, "Count", n)

Language display names in the generated registry are wrapped as
[MsgKey] values, so the English name stays the msgid and is collected
by cmd/potextract without being translated at the point of definition:

	langdata.Definition{Code: "de", Name: i18n.MsgKey("German"), ...}

Resolve such a name for the locale carried by a context with
Name.Tr(ctx).

# Missing translations

By default, missing translations return the msgid unchanged. When strict
mode is enabled via [SetStrict], missing lookups are logged once per
locale+key and the returned text is visibly wrapped as "⟦...⟧".

# Formatting

Translations can include placeholders that are processed by Go's standard
text/template package. Provide substitutions as alternating key-value pairs
to any of the Tr functions:

	i18n.Tr(ctx, "Loaded {{.Path}}", "Path", path)

Numbers are not localised automatically; convert values to strings
yourself if you need locale-specific presentation.
*/
package i18n

// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package langdata defines the language metadata registry: per-language
definitions (code, display name, plural-form count and gettext plural
rule) and the same-word blacklist derived from display names.

The authoritative data lives in two semicolon-delimited CSV registries,
data/languages.csv and data/extraplurals.csv. cmd/langgen reads them and
regenerates definitions_gen.go and blacklist_gen.go; both generated files
are checked in, so this package is usable without running the generator.

Definitions carry their display name as an [i18n.MsgKey], keeping the
English name as the gettext msgid while marking it for collection by
cmd/potextract. Resolve a localized name with def.Name.Tr(ctx).

Ordering is an explicit contract: Languages and ExtraPlurals mirror the
row order of their CSV sources, and the blacklist is sorted
lexicographically, so regenerating with unchanged inputs is a no-op diff.
*/
package langdata

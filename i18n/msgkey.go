// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import "context"

// Translatable is a value that can translate itself using a context.
// Types such as [MsgKey] implement Translatable.
type Translatable interface {
	Tr(ctx context.Context) string
}

// MsgKey is a source message id (msgid) string.
//
// Wrapping a string literal in MsgKey marks it as translatable: the
// extraction tool (cmd/potextract) collects MsgKey conversions and
// MsgKey-typed fields of composite literals into the POT template, while
// the literal itself is left untranslated at the point of definition.
//
// MsgKey should be the original English text, not an invented key.
type MsgKey string

// Tr translates this msgid within the current locale chain.
// It is equivalent to calling [Tr] with the same msgid.
// The ctx may be nil, in which case the base locale is used.
// Setup must be called successfully before using this.
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}

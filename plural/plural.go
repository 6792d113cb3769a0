// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package plural validates and evaluates gettext plural rules: C-style
expressions over an integer variable n, such as "n != 1" or the ternary
chains used by Slavic languages. The expression grammar is the one
accepted by gettext Plural-Forms headers.
*/
package plural

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext/plurals"
)

// ErrEmptyRule is returned by Compile for a blank rule expression.
// The registry tolerates empty rule fields, so callers decide whether a
// blank rule is acceptable before compiling.
var ErrEmptyRule = errors.New("plural: empty rule expression")

// Rule is a compiled plural rule.
type Rule struct {
	expr plurals.Expression
	src  string
}

// Compile parses a gettext plural expression over n.
func Compile(src string) (*Rule, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, ErrEmptyRule
	}

	expr, err := plurals.Compile(trimmed)
	if err != nil {
		return nil, fmt.Errorf("plural: rule %q: %w", src, err)
	}

	return &Rule{expr: expr, src: src}, nil
}

// Validate reports whether src is a syntactically valid plural rule.
func Validate(src string) error {
	_, err := Compile(src)

	return err
}

// Form returns the plural-form index the rule selects for count n.
// Negative counts evaluate by absolute value.
func (r *Rule) Form(n int) int {
	if n < 0 {
		n = -n
	}

	return r.expr.Eval(uint32(n))
}

// String returns the original rule expression.
func (r *Rule) String() string {
	return r.src
}

// Count resolves a registry plural-count field to an integer. Count fields
// are carried verbatim from the registry and are usually decimal literals;
// anything else (including formula expressions) reports ok false.
func Count(field string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

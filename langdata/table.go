// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"codeberg.org/langforge/langforge/i18n"
)

// fieldsPerRow is the fixed arity of a registry row:
// code, display name, plural count, plural rule.
const fieldsPerRow = 4

// Definition describes one language: its registry code (for example "en",
// "pt_BR" or "be@latin"), its English display name, the number of plural
// forms and the gettext plural rule selecting between them.
//
// PluralCount and PluralRule are carried verbatim from the registry. The
// rule may be empty; no expression validation happens at this layer.
type Definition struct {
	Code        string
	Name        i18n.MsgKey
	PluralCount string
	PluralRule  string
}

// ReadTable parses a semicolon-delimited language registry from r.
// Rows have exactly four fields and no header. Row order is preserved.
//
// Errors identify the offending source and 1-based row number via name.
func ReadTable(r io.Reader, name string) ([]Definition, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = fieldsPerRow
	// Display names may contain stray quote characters; they are data,
	// not CSV quoting.
	cr.LazyQuotes = true

	var defs []Definition

	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, row, err)
		}

		defs = append(defs, Definition{
			Code:        record[0],
			Name:        i18n.MsgKey(record[1]),
			PluralCount: record[2],
			PluralRule:  record[3],
		})
	}

	return defs, nil
}

// ReadTableFile reads a registry table from path.
func ReadTableFile(path string) ([]Definition, error) {
	f, err := os.Open(path) // #nosec G304 -- registry path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open registry %s: %w", path, err)
	}
	defer f.Close()

	return ReadTable(f, path)
}

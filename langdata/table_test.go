// Copyright 2024 - 2026, The langforge contributors
// SPDX-License-Identifier: AGPL-3.0-only

package langdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	t.Parallel()

	input := "en;English;2;n != 1\n" +
		"ja;Japanese;1;0\n" +
		"be@latin;Belarusian (latin);3;n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2\n"

	defs, err := ReadTable(strings.NewReader(input), "languages.csv")
	require.NoError(t, err)
	require.Len(t, defs, 3)

	assert.Equal(t, "en", defs[0].Code)
	assert.Equal(t, "English", string(defs[0].Name))
	assert.Equal(t, "2", defs[0].PluralCount)
	assert.Equal(t, "n != 1", defs[0].PluralRule)

	assert.Equal(t, "be@latin", defs[2].Code)
	assert.Equal(t, "Belarusian (latin)", string(defs[2].Name))
}

func TestReadTablePreservesRowOrder(t *testing.T) {
	t.Parallel()

	input := "zz;Last;1;0\naa;First;2;n != 1\nmm;Middle;1;0\n"

	defs, err := ReadTable(strings.NewReader(input), "order.csv")
	require.NoError(t, err)

	got := make([]string, len(defs))
	for i, d := range defs {
		got[i] = d.Code
	}

	assert.Equal(t, []string{"zz", "aa", "mm"}, got)
}

func TestReadTableEmptyRuleVerbatim(t *testing.T) {
	t.Parallel()

	defs, err := ReadTable(strings.NewReader("xx;Example;1;\n"), "languages.csv")
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Empty(t, defs[0].PluralRule)
}

func TestReadTableWrongArity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		row   string // expected row reference in the error
	}{
		{
			name:  "too few fields",
			input: "en;English;2;n != 1\nja;Japanese\n",
			row:   "row 2",
		},
		{
			name:  "too many fields",
			input: "en;English;2;n != 1;extra\n",
			row:   "row 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ReadTable(strings.NewReader(tt.input), "languages.csv")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "languages.csv")
			assert.Contains(t, err.Error(), tt.row)
		})
	}
}

func TestReadTableFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadTableFile("testdata/does-not-exist.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.csv")
}

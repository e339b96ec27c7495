// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of UDCONV.
//
//  UDCONV is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  UDCONV is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with UDCONV.  If not, see <https://www.gnu.org/licenses/>.

package deprel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTableValid(t *testing.T) {
	table := DefaultTable()
	assert.NoError(t, table.Validate())
	assert.Equal(t, CatArguments, table.CategoryOf("subj"))
	assert.Equal(t, CatSpecial, table.CategoryOf("root"))
	assert.Equal(t, CatPunctuation, table.CategoryOf("punct"))
	assert.Equal(t, CatFallback, table.CategoryOf("dep"))
}

func TestCategoryOfExactEntryWinsOverPrefix(t *testing.T) {
	table := &Table{
		Labels:   map[string]Category{"adjunct_qt": CatSpecial},
		Prefixes: map[string]Category{"adjunct_": CatAdjuncts},
	}
	assert.Equal(t, CatSpecial, table.CategoryOf("adjunct_qt"))
	assert.Equal(t, CatAdjuncts, table.CategoryOf("adjunct_loc"))
}

func TestCategoryOfPrefixFamilies(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, CatAdjuncts, table.CategoryOf("adjunct_dur"))
	assert.Equal(t, CatArguments, table.CategoryOf("obj_th"))
}

func TestCategoryOfUnknownLabel(t *testing.T) {
	assert.Equal(t, CatFallback, DefaultTable().CategoryOf("frobnicate"))
}

func TestTableValidateRejectsUnknownCategory(t *testing.T) {
	table := &Table{Labels: map[string]Category{"subj": "argumentz"}}
	err := table.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subj")
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relations.json")
	data := `{
		"labels": {"subj": "arguments", "punct": "punctuation"},
		"prefixes": {"adjunct_": "adjuncts"}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))
	table, err := LoadTable(path)
	assert.NoError(t, err)
	assert.Equal(t, CatArguments, table.CategoryOf("subj"))
	assert.Equal(t, CatAdjuncts, table.CategoryOf("adjunct_tmp"))
	assert.Equal(t, CatFallback, table.CategoryOf("comp"))
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadTableInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relations.json")
	assert.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))
	_, err := LoadTable(path)
	assert.Error(t, err)
}

func TestLoadTableUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relations.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"labels": {"subj": "argz"}}`), 0644))
	_, err := LoadTable(path)
	assert.Error(t, err)
}

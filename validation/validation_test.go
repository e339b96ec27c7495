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

package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"udconv/conll"
)

func TestCheckTokenClean(t *testing.T) {
	problems := CheckToken("NOUN", map[string]string{
		"Case":   "Loc",
		"Gender": "Masc",
		"Number": "Sing",
	})
	assert.Empty(t, problems)
}

func TestCheckTokenUnknownPOS(t *testing.T) {
	problems := CheckToken("NOMEN", nil)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "unknown POS category NOMEN")
}

func TestCheckTokenUnknownFeature(t *testing.T) {
	problems := CheckToken("NOUN", map[string]string{"Colour": "Blue"})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "unknown feature Colour")
}

func TestCheckTokenIllegalValue(t *testing.T) {
	problems := CheckToken("NOUN", map[string]string{"Case": "Erg"})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "illegal value Erg of feature Case")
}

func TestCheckTokenFeatureNotAllowedForPOS(t *testing.T) {
	problems := CheckToken("PART", map[string]string{"Case": "Nom"})
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "feature Case not allowed for POS PART")
}

func TestCheckTokenProblemsAreOrdered(t *testing.T) {
	problems := CheckToken("PART", map[string]string{
		"Case":    "Nom",
		"Animacy": "Hum",
	})
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], "Animacy")
	assert.Contains(t, problems[1], "Case")
}

func TestCheckDocument(t *testing.T) {
	doc := "1-2\tWdomu\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tW\tw\tADP\tprep:loc:nwok\tAdpType=Prep\t2\tcase\t_\t_\n" +
		"2\tdomu\tdom\tNOUN\tsubst:sg:loc:m\tCase=Loc|Mood=Ind\t0\troot\t_\t_\n"
	sentences, err := conll.ReadUD(strings.NewReader(doc))
	require.NoError(t, err)

	report := CheckDocument(sentences)
	assert.Equal(t, 1, report.NumSentences)
	assert.Equal(t, 2, report.NumTokens)
	require.Len(t, report.Violations, 1)
	assert.False(t, report.OK())

	v := report.Violations[0]
	assert.Equal(t, 1, v.Sentence)
	assert.Equal(t, "2", v.TokenID)
	assert.Contains(t, v.Problem, "Mood not allowed for POS NOUN")
	assert.Contains(t, v.String(), "sentence 1, token 2")
}

func TestCheckDocumentClean(t *testing.T) {
	doc := "1\tTak\ttak\tADV\tadv:pos\tDegree=Pos\t0\troot\t_\t_\n"
	sentences, err := conll.ReadUD(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, CheckDocument(sentences).OK())
}

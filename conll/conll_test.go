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

package conll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"udconv/deptree"
)

const sampleDoc = "# anything before a sentence is a comment\n" +
	"1\tW\tw\tprep\tprep:loc:nwok\tloc|nwok\t2\tadjunct\t1\t_\n" +
	"2\tdomu\tdom\tsubst\tsubst:sg:loc:m\tsg|loc|m\t3\tcomp\t1\t_\n" +
	"3\tbył\tbyć\tpraet\tpraet:sg:m:imperf\tsg|m|imperf\t0\troot\t1\t_\n" +
	"\n" +
	"1\tTak\ttak\tadv\tadv:pos\tpos\t0\troot\t2\tTak\n" +
	"2\t.\t.\tinterp\tinterp\t_\t1\tpunct\t2\t_\n"

func TestReadDocument(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	assert.Equal(t, 1, first.Index)
	require.NoError(t, first.Err)
	require.Len(t, first.Sentence.Tokens, 3)

	tok := first.Sentence.Tokens[1]
	assert.Equal(t, 2, tok.ID)
	assert.Equal(t, "domu", tok.Form)
	assert.Equal(t, "dom", tok.Lemma)
	assert.Equal(t, "subst:sg:loc:m", tok.RawTag)
	assert.Equal(t, "subst", tok.Class())
	assert.Equal(t, 3, tok.GovID)
	assert.Equal(t, "comp", tok.Rel)
	assert.False(t, tok.Malformed)

	second := entries[1]
	assert.Equal(t, 2, second.Index)
	require.NoError(t, second.Err)
	assert.Equal(t, "Tak", second.Sentence.Tokens[0].MiscFeat("Translit"))
}

func TestReadMalformedTagKeepsToken(t *testing.T) {
	doc := "1\tblabla\tblabla\txyz\txyz:what:ever\t_\t0\troot\t1\t_\n"
	entries, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, entries[0].Err)
	assert.True(t, entries[0].Sentence.Tokens[0].Malformed)
}

func TestReadStructuralFailureIsSkippable(t *testing.T) {
	doc := "1\tA\ta\tconj\tconj\t_\t2\tcoord\t1\t_\n" +
		"2\tB\tb\tsubst\tsubst:sg:nom:m\t_\t1\tconjunct\t1\t_\n" +
		"\n" +
		"1\tTak\ttak\tadv\tadv:pos\tpos\t0\troot\t2\t_\n"
	entries, err := Read(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Error(t, entries[0].Err)
	assert.Nil(t, entries[0].Sentence)
	assert.NoError(t, entries[1].Err)
	assert.Equal(t, 2, entries[1].Index)
}

func TestReadRejectsBrokenLine(t *testing.T) {
	doc := "1\tdomu\tdom\tsubst\n"
	_, err := Read(strings.NewReader(doc))
	assert.ErrorContains(t, err, "line 1")
}

func TestReadRejectsNonNumericGovernor(t *testing.T) {
	doc := "1\tdomu\tdom\tsubst\tsubst:sg:loc:m\t_\tx\tcomp\t1\t_\n"
	_, err := Read(strings.NewReader(doc))
	assert.ErrorContains(t, err, "governor")
}

func TestFormatFeatures(t *testing.T) {
	assert.Equal(t, "_", FormatFeatures(nil))
	assert.Equal(
		t,
		"Case=Loc|Gender=Masc|Number=Sing",
		FormatFeatures(map[string]string{
			"Number": "Sing",
			"Case":   "Loc",
			"Gender": "Masc",
		}),
	)
}

func TestWriteConvertedSentence(t *testing.T) {
	tok1 := &deptree.Token{
		ID: 1, Form: "W", Lemma: "w", RawTag: "prep:loc:nwok",
		GovID: 2, Rel: "adjunct",
		UPOS: "ADP", URel: "case",
		UFeats: map[string]string{"AdpType": "Prep"},
	}
	tok2 := &deptree.Token{
		ID: 2, Form: "domu", Lemma: "dom", RawTag: "subst:sg:loc:m",
		GovID: 3, Rel: "comp",
		UPOS: "NOUN", URel: "obl",
		UFeats: map[string]string{"Case": "Loc", "Gender": "Masc", "Number": "Sing"},
	}
	tok3 := &deptree.Token{
		ID: 3, Form: "był", Lemma: "być", RawTag: "praet:sg:m:imperf",
		GovID: 0, Rel: "root",
		UPOS: "VERB", URel: "root",
	}
	sent, err := deptree.NewSentence([]*deptree.Token{tok1, tok2, tok3})
	require.NoError(t, err)
	sent.SetMeta("text", "W domu był")

	var buf strings.Builder
	require.NoError(t, Write(&buf, []*deptree.Sentence{sent}))
	assert.Equal(
		t,
		"# text = W domu był\n"+
			"1\tW\tw\tADP\tprep:loc:nwok\tAdpType=Prep\t2\tcase\t_\t_\n"+
			"2\tdomu\tdom\tNOUN\tsubst:sg:loc:m\tCase=Loc|Gender=Masc|Number=Sing\t3\tobl\t_\t_\n"+
			"3\tbył\tbyć\tVERB\tpraet:sg:m:imperf\t_\t0\troot\t_\t_\n"+
			"\n",
		buf.String(),
	)
}

func TestWriteKeepsSourceRelationsWithoutConversion(t *testing.T) {
	tok := &deptree.Token{
		ID: 1, Form: "Tak", Lemma: "tak", RawTag: "adv:pos",
		GovID: 0, Rel: "root", UPOS: "ADV",
	}
	sent, err := deptree.NewSentence([]*deptree.Token{tok})
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Write(&buf, []*deptree.Sentence{sent}))
	assert.Equal(t, "1\tTak\ttak\tADV\tadv:pos\t_\t0\troot\t_\t_\n\n", buf.String())
}

func TestWriteMultiwordRange(t *testing.T) {
	tok1 := &deptree.Token{
		ID: 1, Form: "gdyby", Lemma: "gdyby", RawTag: "comp",
		GovID: 0, Rel: "root", UPOS: "SCONJ", URel: "root",
	}
	tok2 := &deptree.Token{
		ID: 2, Form: "m", Lemma: "być", RawTag: "aglt:sg:pri:imperf:nwok",
		GovID: 1, Rel: "aglt", UPOS: "AUX", URel: "aux",
	}
	sent, err := deptree.NewSentence([]*deptree.Token{tok1, tok2})
	require.NoError(t, err)
	sent.Ranges = append(sent.Ranges, deptree.Range{
		FirstID: 1, LastID: 2, Form: "gdybym", Translit: "gdybym",
	})

	var buf strings.Builder
	require.NoError(t, Write(&buf, []*deptree.Sentence{sent}))
	lines := strings.Split(buf.String(), "\n")
	require.True(t, len(lines) >= 3)
	assert.Equal(t, "1-2\tgdybym\t_\t_\t_\t_\t_\t_\t_\tTranslit=gdybym", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1\tgdyby"))
	assert.True(t, strings.HasPrefix(lines[2], "2\tm"))
}

func TestReadUD(t *testing.T) {
	doc := "# text = W domu\n" +
		"1-2\tWdomu\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tW\tw\tADP\tprep:loc:nwok\tAdpType=Prep\t2\tcase\t_\t_\n" +
		"2\tdomu\tdom\tNOUN\tsubst:sg:loc:m\tCase=Loc|Number=Sing\t0\troot\t_\tSpaceAfter=No\n"
	sentences, err := ReadUD(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, sentences, 1)
	require.Len(t, sentences[0], 3)

	assert.True(t, sentences[0][0].IsRange())
	row := sentences[0][2]
	assert.Equal(t, "NOUN", row.UPOS)
	assert.Equal(t, "subst:sg:loc:m", row.XPOS)
	assert.Equal(t, map[string]string{"Case": "Loc", "Number": "Sing"}, row.Feats)
	assert.Equal(t, map[string]string{"SpaceAfter": "No"}, row.Misc)
	assert.Equal(t, "root", row.Rel)
}

func TestReadUDRejectsBrokenFeatures(t *testing.T) {
	doc := "1\tW\tw\tADP\tprep\tAdpType\t2\tcase\t_\t_\n"
	_, err := ReadUD(strings.NewReader(doc))
	assert.ErrorContains(t, err, "Key=Value")
}

func TestRoundTripThroughBothReaders(t *testing.T) {
	entries, err := Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	sentences := make([]*deptree.Sentence, 0, len(entries))
	for _, e := range entries {
		require.NoError(t, e.Err)
		sentences = append(sentences, e.Sentence)
	}
	var buf strings.Builder
	require.NoError(t, Write(&buf, sentences))

	parsed, err := ReadUD(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, parsed, 2)
	assert.Equal(t, "subst:sg:loc:m", parsed[0][1].XPOS)
	assert.Equal(t, "comp", parsed[0][1].Rel)
	assert.Equal(t, map[string]string{"Translit": "Tak"}, parsed[1][0].Misc)
}

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

package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"udconv/conll"
	"udconv/uderror"
)

const sampleDoc = "1\tŚpi\tspać\tfin\tfin:sg:ter:imperf\t_\t0\troot\t1\t_\n" +
	"2\tw\tw\tprep\tprep:loc:nwok\t_\t1\tadjunct\t1\t_\n" +
	"3\tdomu\tdom\tsubst\tsubst:sg:loc:m\t_\t2\tcomp\t1\t_\n" +
	"4\t.\t.\tinterp\tinterp\t_\t1\tpunct\t1\t_\n"

func TestConvertTextProducesUDOutput(t *testing.T) {
	res := New(nil, false).ConvertText(sampleDoc)
	require.NoError(t, res.Err())
	assert.Equal(t, 4, res.NumTokens)
	require.Len(t, res.Reports, 1)
	assert.False(t, res.Reports[0].Skipped)
	assert.True(t, res.Reports[0].Warnings.Empty())
	assert.Equal(t, 0, res.Reports[0].NonProjectiveEdges)
	assert.Equal(t, 1, res.Reports.NumClean())
	assert.Equal(t, 0, res.Reports.NumSkipped())

	lines := strings.Split(strings.TrimRight(res.Output, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "1\tŚpi\tspać\tVERB\tfin:sg:ter:imperf\t"))
	assert.Contains(t, lines[1], "\tcase\t")
	assert.Contains(t, lines[1], "\tADP\t")
	assert.Contains(t, lines[2], "\tobl:arg\t")
	assert.Contains(t, lines[3], "\tpunct\t")
}

func TestConvertTextReportsNonProjectiveEdges(t *testing.T) {
	// "Co" hangs on the infinitive across the finite verb, so the
	// comp arc crosses arcs rooted in the main clause
	doc := "1\tCo\tco\tsubst\tsubst:sg:acc:n\t_\t4\tcomp\t1\t_\n" +
		"2\tJan\tjan\tsubst\tsubst:sg:nom:m\t_\t3\tsubj\t1\t_\n" +
		"3\tchce\tchcieć\tfin\tfin:sg:ter:imperf\t_\t0\troot\t1\t_\n" +
		"4\tczytać\tczytać\tinf\tinf:imperf\t_\t3\tcomp\t1\t_\n" +
		"5\t.\t.\tinterp\tinterp\t_\t3\tpunct\t1\t_\n"
	res := New(nil, false).ConvertText(doc)
	require.NoError(t, res.Err())
	require.Len(t, res.Reports, 1)
	assert.False(t, res.Reports[0].Skipped)
	assert.Positive(t, res.Reports[0].NonProjectiveEdges)
}

func TestConvertTextTagsOnly(t *testing.T) {
	res := New(nil, true).ConvertText(sampleDoc)
	require.NoError(t, res.Err())
	assert.True(t, res.TagsOnly)

	// POS and features are converted, the dependency layer is passed
	// through untouched
	assert.Contains(t, res.Output, "\tADP\t")
	assert.Contains(t, res.Output, "\tadjunct\t")
	assert.NotContains(t, res.Output, "\tcase\t")
}

func TestConvertTextSkipsBrokenSentence(t *testing.T) {
	doc := "1\tA\ta\tconj\tconj\t_\t2\tconjunct\t1\t_\n" +
		"2\tB\tb\tsubst\tsubst:sg:nom:m\t_\t1\tconjunct\t1\t_\n" +
		"\n" +
		"1\tTak\ttak\tadv\tadv:pos\t_\t0\troot\t2\t_\n" +
		"2\t.\t.\tinterp\tinterp\t_\t1\tpunct\t2\t_\n"
	res := New(nil, false).ConvertText(doc)
	require.NoError(t, res.Err())
	require.Len(t, res.Reports, 2)
	assert.True(t, res.Reports[0].Skipped)
	assert.NotEmpty(t, res.Reports[0].Error)
	assert.False(t, res.Reports[1].Skipped)
	assert.Equal(t, 1, res.Reports.NumSkipped())
	assert.Equal(t, 2, res.NumTokens)
	assert.Contains(t, res.Output, "Tak")
	assert.NotContains(t, res.Output, "\tA\t")
}

func TestConvertTextRejectsBrokenLine(t *testing.T) {
	res := New(nil, false).ConvertText("1\tonly\tfour\tcolumns\n")
	require.Error(t, res.Err())
	var inputErr uderror.InputError
	assert.ErrorAs(t, res.Err(), &inputErr)
	assert.Empty(t, res.Output)
}

func TestRunBatchSingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.conll")
	out := filepath.Join(dir, "doc.conllu")
	require.NoError(t, os.WriteFile(src, []byte(sampleDoc), 0644))

	summary, err := New(nil, false).RunBatch(src, out, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.NumFiles)
	assert.Equal(t, 1, summary.NumClean)
	assert.Equal(t, 0, summary.NumSkipped)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\tcase\t")
}

func TestRunBatchAppliesMetadata(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.conll")
	out := filepath.Join(dir, "doc.conllu")
	metaPath := filepath.Join(dir, "meta.json")
	require.NoError(t, os.WriteFile(src, []byte(sampleDoc), 0644))
	require.NoError(t, os.WriteFile(
		metaPath, []byte(`{"1": {"text": "Śpi w domu.", "par_id": 3}}`), 0644))

	_, err := New(nil, false).RunBatch(src, out, BatchOptions{MetaPath: metaPath})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# par_id = 3\n")
	assert.Contains(t, string(data), "# text = Śpi w domu.\n")
	// no space between "domu" and the full stop in the raw text
	assert.Contains(t, string(data), "SpaceAfter=No")
}

func TestRunBatchDirectory(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.conll"), []byte(sampleDoc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "b.conll"), []byte(sampleDoc), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("ignored"), 0644))

	summary, err := New(nil, false).RunBatch(srcDir, outDir, BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.NumFiles)
	assert.Equal(t, 2, summary.NumClean)

	assert.FileExists(t, filepath.Join(outDir, "a.conllu"))
	assert.FileExists(t, filepath.Join(outDir, "b.conllu"))
	assert.NoFileExists(t, filepath.Join(outDir, "notes.conllu"))
}

func TestRunBatchDirectoryRejectsMetadata(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.conll"), []byte(sampleDoc), 0644))
	_, err := New(nil, false).RunBatch(srcDir, t.TempDir(), BatchOptions{MetaPath: "meta.json"})
	assert.ErrorContains(t, err, "single input file")
}

func TestRunBatchMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := New(nil, false).RunBatch(
		filepath.Join(dir, "missing.conll"), filepath.Join(dir, "out.conllu"), BatchOptions{})
	assert.Error(t, err)
}

func TestLoadMetaMissingFile(t *testing.T) {
	_, err := LoadMeta(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to load metadata")
}

func TestMetaApply(t *testing.T) {
	entries, err := conll.Read(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	meta := Meta{
		"1": {"text": "Śpi w domu.", "par_id": float64(3), "checked": true},
		"2": {"text": "ignored, no such sentence"},
	}
	meta.Apply(entries)

	s := entries[0].Sentence
	assert.Equal(t, "Śpi w domu.", s.MetaValue("text"))
	assert.Equal(t, "3", s.MetaValue("par_id"))
	assert.Equal(t, "true", s.MetaValue("checked"))
}

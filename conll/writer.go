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
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"udconv/deptree"
)

// FormatFeatures renders a feature map as a sorted Key=Value list
// joined by '|', or the empty column marker when there is nothing to
// render.
func FormatFeatures(feats map[string]string) string {
	if len(feats) == 0 {
		return emptyMarker
	}
	items := make([]string, 0, len(feats))
	for k, v := range feats {
		items = append(items, k+"="+v)
	}
	sort.Strings(items)
	return strings.Join(items, "|")
}

// Write renders converted sentences as CoNLL-U: metadata comments
// first, then one row per token with the converted POS, features,
// governor and relation. The source positional tag is retained in the
// XPOS column. Multiword token ranges come out as first-last rows
// carrying only the surface form and misc. Sentences which did not go
// through the relation conversion keep their source relations and
// governors.
func Write(w io.Writer, sentences []*deptree.Sentence) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sentences {
		if err := writeSentence(bw, sent); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// WriteFile renders converted sentences into a file, creating or
// truncating it.
func WriteFile(path string, sentences []*deptree.Sentence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := Write(f, sentences); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeSentence(bw *bufio.Writer, sent *deptree.Sentence) error {
	for _, m := range sent.Meta {
		if _, err := fmt.Fprintf(bw, "# %s = %s\n", m.Key, m.Value); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
	}
	rangeAt := make(map[int]deptree.Range, len(sent.Ranges))
	for _, rng := range sent.Ranges {
		rangeAt[rng.FirstID] = rng
	}
	for _, t := range sent.Tokens {
		if rng, ok := rangeAt[t.ID]; ok {
			if _, err := fmt.Fprintln(bw, rangeRow(rng)); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw, tokenRow(t)); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func tokenRow(t *deptree.Token) string {
	rel := t.URel
	if rel == "" {
		rel = t.Rel
	}
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		blankToEmpty(t.Form),
		blankToEmpty(t.Lemma),
		blankToEmpty(t.UPOS),
		blankToEmpty(t.RawTag),
		FormatFeatures(t.UFeats),
		strconv.Itoa(t.EffGovID()),
		blankToEmpty(rel),
		emptyMarker,
		FormatFeatures(t.UMisc),
	}, "\t")
}

func rangeRow(rng deptree.Range) string {
	misc := emptyMarker
	if rng.Translit != "" {
		misc = "Translit=" + rng.Translit
	}
	return strings.Join([]string{
		fmt.Sprintf("%d-%d", rng.FirstID, rng.LastID),
		blankToEmpty(rng.Form),
		emptyMarker, emptyMarker, emptyMarker, emptyMarker,
		emptyMarker, emptyMarker, emptyMarker,
		misc,
	}, "\t")
}

func blankToEmpty(v string) string {
	if v == "" {
		return emptyMarker
	}
	return v
}

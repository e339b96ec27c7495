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
	"strings"
)

// UDRow is a single row of a converted CoNLL-U document. The id is
// kept as a string so that multiword range rows (first-last) pass
// through; IsRange tells the two kinds apart.
type UDRow struct {
	ID    string
	Form  string
	Lemma string
	UPOS  string
	XPOS  string
	Feats map[string]string
	Gov   string
	Rel   string
	Misc  map[string]string
}

// IsRange tests whether the row is a multiword token range rather
// than a syntactic word.
func (r UDRow) IsRange() bool {
	return strings.Contains(r.ID, "-")
}

// ReadUD parses a converted CoNLL-U document into sentences of rows.
// Comment lines are skipped, features and misc are decoded into maps.
// The reader is meant for checking tools, so it keeps rows it cannot
// interpret semantically and only fails on broken line structure.
func ReadUD(r io.Reader) ([][]UDRow, error) {
	var (
		sentences [][]UDRow
		rows      []UDRow
		lineNum   int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(rows) > 0 {
				sentences = append(sentences, rows)
				rows = nil
			}
			continue
		}
		row, err := parseUDRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if len(rows) > 0 {
		sentences = append(sentences, rows)
	}
	return sentences, nil
}

// ReadUDFile reads a converted CoNLL-U document from a file.
func ReadUDFile(path string) ([][]UDRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()
	sentences, err := ReadUD(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return sentences, nil
}

func parseUDRow(line string) (UDRow, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != numColumns {
		return UDRow{}, fmt.Errorf("expected %d columns, found %d", numColumns, len(cols))
	}
	feats, err := parseFeatureList(cols[5])
	if err != nil {
		return UDRow{}, fmt.Errorf("invalid features %s: %w", cols[5], err)
	}
	misc, err := parseFeatureList(cols[9])
	if err != nil {
		return UDRow{}, fmt.Errorf("invalid misc %s: %w", cols[9], err)
	}
	return UDRow{
		ID:    cols[0],
		Form:  emptyToBlank(cols[1]),
		Lemma: emptyToBlank(cols[2]),
		UPOS:  emptyToBlank(cols[3]),
		XPOS:  emptyToBlank(cols[4]),
		Feats: feats,
		Gov:   emptyToBlank(cols[6]),
		Rel:   emptyToBlank(cols[7]),
		Misc:  misc,
	}, nil
}

func parseFeatureList(v string) (map[string]string, error) {
	if v == emptyMarker || v == "" {
		return nil, nil
	}
	feats := make(map[string]string)
	for _, item := range strings.Split(v, "|") {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected Key=Value, found %s", item)
		}
		feats[key] = value
	}
	return feats, nil
}

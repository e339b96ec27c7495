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

// Package conll reads and writes the tabular formats of the converter:
// the source layout with positional tags on the input side and
// CoNLL-U on the output side. Sentences are separated by blank lines,
// comment lines start with '#', an underscore stands for an empty
// column.
package conll

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"udconv/deptree"
	"udconv/tagset"
)

const (
	numColumns  = 10
	emptyMarker = "_"
)

// Entry pairs a parsed sentence with its 1-based position in the
// input. Sentences whose tokens do not form a valid dependency tree
// keep their position but carry the error instead, so a caller can
// skip them and keep going with the rest of the document.
type Entry struct {
	Index    int
	Sentence *deptree.Sentence
	Err      error
}

// Read parses a document in the source layout: ten tab-separated
// columns per token (id, form, lemma, tag class, full positional tag,
// named features, governor id, relation, sentence id, misc). The tag
// class and named features columns duplicate information present in
// the full tag and are ignored; the misc column is carried over as the
// Translit entry of the token. A failure to parse a positional tag
// only marks the token, a failure to parse the line structure aborts
// the whole read.
func Read(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		tokens  []*deptree.Token
		lineNum int
	)
	flush := func() {
		if len(tokens) == 0 {
			return
		}
		idx := len(entries) + 1
		sent, err := deptree.NewSentence(tokens)
		if err != nil {
			entries = append(entries, Entry{Index: idx, Err: err})
		} else {
			entries = append(entries, Entry{Index: idx, Sentence: sent})
		}
		tokens = nil
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		token, err := parseToken(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	flush()
	return entries, nil
}

// ReadFile reads a document in the source layout from a file.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()
	entries, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

func parseToken(line string) (*deptree.Token, error) {
	cols := strings.Split(line, "\t")
	if len(cols) != numColumns {
		return nil, fmt.Errorf("expected %d columns, found %d", numColumns, len(cols))
	}
	id, err := strconv.Atoi(cols[0])
	if err != nil {
		return nil, fmt.Errorf("invalid token id %s", cols[0])
	}
	govID, err := strconv.Atoi(cols[6])
	if err != nil {
		return nil, fmt.Errorf("invalid governor id %s", cols[6])
	}
	token := &deptree.Token{
		ID:      id,
		Form:    cols[1],
		Lemma:   emptyToBlank(cols[2]),
		RawTag:  cols[4],
		GovID:   govID,
		Rel:     cols[7],
		RawMisc: cols[9],
	}
	attrs, err := tagset.Parse(cols[4])
	if err != nil {
		token.Malformed = true
	} else {
		token.Attrs = attrs
	}
	if misc := emptyToBlank(cols[9]); misc != "" {
		token.SetMiscFeat("Translit", misc)
	}
	return token, nil
}

func emptyToBlank(v string) string {
	if v == emptyMarker {
		return ""
	}
	return v
}

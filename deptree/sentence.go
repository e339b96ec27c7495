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

package deptree

import (
	"fmt"
	"strings"
)

// StructuralError describes a sentence whose annotation does not form
// a valid dependency tree. Such sentences are skipped by the pipeline
// rather than converted.
type StructuralError struct {
	Msg string
}

func (err StructuralError) Error() string {
	return err.Msg
}

// MetaItem is a single sentence-level metadata entry. Order of entries
// is preserved from the input.
type MetaItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Range is a multiword token span covering the tokens with ids
// FirstID through LastID. Ranges are kept outside the tree proper so
// they never interfere with governor lookups.
type Range struct {
	FirstID  int
	LastID   int
	Form     string
	Translit string
}

// Sentence is a single dependency tree plus its metadata. Tokens are
// kept in input order; ids are used for governor resolution.
type Sentence struct {
	Tokens []*Token
	Meta   []MetaItem
	Ranges []Range

	byID map[int]*Token
}

// NewSentence builds a sentence from the given tokens and checks that
// they form a single rooted tree. Tokens must be passed in input
// order. On success the tokens are linked back to the sentence so that
// tree queries on them work.
func NewSentence(tokens []*Token) (*Sentence, error) {
	if len(tokens) == 0 {
		return nil, StructuralError{Msg: "empty sentence"}
	}
	ans := &Sentence{
		Tokens: tokens,
		byID:   make(map[int]*Token, len(tokens)),
	}
	var root *Token
	for _, t := range tokens {
		if _, ok := ans.byID[t.ID]; ok {
			return nil, StructuralError{Msg: fmt.Sprintf("duplicate token id %d", t.ID)}
		}
		ans.byID[t.ID] = t
		if t.GovID == 0 {
			if root != nil {
				return nil, StructuralError{
					Msg: fmt.Sprintf("multiple roots (tokens %d and %d)", root.ID, t.ID),
				}
			}
			root = t
		}
	}
	if root == nil {
		return nil, StructuralError{Msg: "no root token"}
	}
	for _, t := range tokens {
		if t.GovID == t.ID {
			return nil, StructuralError{Msg: fmt.Sprintf("token %d governs itself", t.ID)}
		}
		if t.GovID != 0 {
			if _, ok := ans.byID[t.GovID]; !ok {
				return nil, StructuralError{
					Msg: fmt.Sprintf("token %d refers to unknown governor %d", t.ID, t.GovID),
				}
			}
		}
	}
	for i, t := range tokens {
		t.sentence = ans
		t.idx = i
	}
	if n := ans.countReachable(root); n != len(tokens) {
		return nil, StructuralError{
			Msg: fmt.Sprintf("tree is not connected (%d of %d tokens reachable from root)", n, len(tokens)),
		}
	}
	return ans, nil
}

func (s *Sentence) countReachable(root *Token) int {
	visited := make(map[int]bool, len(s.Tokens))
	queue := []*Token{root}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		if visited[t.ID] {
			continue
		}
		visited[t.ID] = true
		queue = append(queue, t.Children()...)
	}
	return len(visited)
}

// ByID returns the token with the given id or nil.
func (s *Sentence) ByID(id int) *Token {
	return s.byID[id]
}

// Root returns the root token of the sentence.
func (s *Sentence) Root() *Token {
	for _, t := range s.Tokens {
		if t.GovID == 0 {
			return t
		}
	}
	return nil
}

// EdgeLabel returns the raw relation label of the edge gov -> dep, or
// an empty string when dep is not attached to gov.
func (s *Sentence) EdgeLabel(gov, dep *Token) string {
	if dep == nil || gov == nil || dep.GovID != gov.ID {
		return ""
	}
	return dep.Rel
}

// MetaValue returns the value of a metadata entry ("" when absent).
func (s *Sentence) MetaValue(key string) string {
	for _, item := range s.Meta {
		if item.Key == key {
			return item.Value
		}
	}
	return ""
}

// SetMeta sets a metadata entry, replacing an existing entry of the
// same key in place and appending otherwise.
func (s *Sentence) SetMeta(key, value string) {
	for i, item := range s.Meta {
		if item.Key == key {
			s.Meta[i].Value = value
			return
		}
	}
	s.Meta = append(s.Meta, MetaItem{Key: key, Value: value})
}

// Text returns the raw sentence text from metadata when available and
// a space-joined concatenation of token forms otherwise.
func (s *Sentence) Text() string {
	if v := s.MetaValue("text"); v != "" {
		return v
	}
	forms := make([]string, len(s.Tokens))
	for i, t := range s.Tokens {
		forms[i] = t.Form
	}
	return strings.Join(forms, " ")
}

// RangeCovers tests whether the token id falls into any multiword
// token span of the sentence.
func (s *Sentence) RangeCovers(id int) bool {
	for _, r := range s.Ranges {
		if id >= r.FirstID && id <= r.LastID {
			return true
		}
	}
	return false
}

// NonProjectiveEdges returns the number of edges which cross at least
// one other edge of the tree when all arcs are drawn above the
// sentence, i.e. the usual measure of non-projectivity.
func (s *Sentence) NonProjectiveEdges() int {
	type arc struct {
		left, right int
	}
	arcs := make([]arc, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.GovID == 0 {
			continue
		}
		a := arc{left: t.ID, right: t.GovID}
		if a.left > a.right {
			a.left, a.right = a.right, a.left
		}
		arcs = append(arcs, a)
	}
	crossing := make(map[int]bool)
	for i := 0; i < len(arcs); i++ {
		for j := i + 1; j < len(arcs); j++ {
			a, b := arcs[i], arcs[j]
			if (a.left < b.left && b.left < a.right && a.right < b.right) ||
				(b.left < a.left && a.left < b.right && b.right < a.right) {
				crossing[i] = true
				crossing[j] = true
			}
		}
	}
	return len(crossing)
}

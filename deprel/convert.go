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

// Package deprel rewrites the raw dependency layer of analyzed
// sentences into Universal Dependencies relations. Rewiring happens on
// the converted side of each token; the structural passes mirror a
// promotion on the source side as well where later passes keep looking
// the construction up under its original relation (copulas being the
// main case).
package deprel

import (
	"udconv/deptree"
)

// Converter turns raw dependency relations into UD relations. A single
// converter may be shared by concurrent workers as long as its table
// is not modified.
type Converter struct {
	table *Table
}

// NewConverter creates a converter around the given relation table.
// Passing nil selects the built-in table.
func NewConverter(table *Table) *Converter {
	if table == nil {
		table = DefaultTable()
	}
	return &Converter{table: table}
}

// ConvertSentence runs the relation conversion over a sentence whose
// tokens already carry UD POS tags and features. The passes run in a
// fixed order: marker preconversion, structural rewiring (numerals,
// prepositions, copulas, subordination, coordination, ellipsis), the
// per-token label rules, edge corrections and a final sweep which
// guarantees every token ends up with some UD relation.
func (c *Converter) ConvertSentence(s *deptree.Sentence, warns *deptree.Warnings) {
	c.preconvert(s)
	c.convertNumerals(s, warns)
	c.convertPrepositions(s, warns)
	c.convertCopulas(s, warns)
	c.convertSubordinations(s, warns)
	c.convertCoordinations(s, warns)
	c.convertEllipses(s, warns)
	for _, t := range s.Tokens {
		t.URel = c.convertLabel(t, nil, nil, nil, warns)
	}
	c.correctEdges(s, warns)
	c.finalize(s, warns)
}

// unassigned tests whether a token still waits for its UD relation.
// Structural passes store "_" as an explicit placeholder which forces
// the label rules to derive the relation anew.
func unassigned(t *deptree.Token) bool {
	return t.URel == "" || t.URel == "_"
}

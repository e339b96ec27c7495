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
	"udconv/deptree"
)

// finalize resolves whatever the passes left behind: unconverted
// conjuncts (their coordination had nothing to promote), stranded
// pre-conjunctions and the mark_rel placeholder. Every token leaves
// this function with a non-empty UD relation.
func (c *Converter) finalize(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if unassigned(t) {
			switch t.Rel {
			case "conjunct":
				if t.UPOS == "ADP" {
					t.URel = "case"
				} else {
					t.URel = "conj"
				}
			case "pre_coord":
				t.URel = "cc:preconj"
			default:
				t.URel = "dep"
				warns.Addf(t.ID, "no conversion rule matched relation %q, falling back to dep", t.Rel)
			}
		}
		if t.URel == "mark_rel" {
			t.URel = "mark"
		}
	}
}

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
	"github.com/rs/zerolog/log"
	"udconv/deptree"
)

// convertEllipses handles clauses with an elided predicate, marked in
// the source tree by a punctuation token which governs the stranded
// dependents. One dependent gets promoted to head the clause, the
// remaining ones attach to it as orphans. Subjects win the promotion,
// then objects, then complements, then adjuncts.
func (c *Converter) convertEllipses(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if t.UPOS != "PUNCT" || t.Gov() == nil {
			continue
		}
		if t.Rel == "punct" || t.Rel == "abbrev_punct" || t.Rel == "item" {
			continue
		}
		if len(t.ChildrenWithRel("conjunct")) > 0 {
			continue
		}

		if subj := t.ChildrenWithRel("subj"); len(subj) == 1 {
			processEllipsis(t, subj[0])
			continue

		} else if len(subj) > 1 {
			warns.Addf(t.ID, "multiple subjects found for elliptical structure at %q", t.Form)
		}
		if obj := t.ChildrenWithRelContaining("obj"); len(obj) == 1 {
			processEllipsis(t, obj[0])
			continue

		} else if len(obj) > 1 {
			warns.Addf(t.ID, "multiple objects found for elliptical structure at %q", t.Form)
		}
		if comp := t.ChildrenWithRelContaining("comp"); len(comp) == 1 {
			processEllipsis(t, comp[0])
			continue

		} else if len(comp) > 1 {
			warns.Addf(t.ID, "multiple complements found for elliptical structure at %q", t.Form)
		}
		if adjunct := t.ChildrenWithRelContaining("adjunct"); len(adjunct) == 1 {
			processEllipsis(t, adjunct[0])
			continue

		} else if len(adjunct) > 1 {
			warns.Addf(t.ID, "multiple adjuncts found for elliptical structure at %q", t.Form)
		}
		if len(t.Children()) > 0 {
			warns.Addf(t.ID, "no suitable head found for elliptical structure at %q", t.Form)
		}
	}
}

// processEllipsis promotes head into the position of the punctuation
// placeholder and turns the remaining dependents into orphans.
// Promotion into the placeholder's converted position keeps gapping
// inside coordination intact ("Mary won gold and Peter bronze").
func processEllipsis(punct, head *deptree.Token) {
	if punct.Gov() != nil {
		head.SetUGov(punct.EffGovID())
		head.URel = punct.URel
	}
	punct.SetUGov(head.ID)
	punct.URel = "punct"

	for _, d := range punct.Children() {
		if d == head {
			continue
		}
		if d.UPOS == "PUNCT" {
			d.SetUGov(head.ID)
		} else {
			d.SetUGov(head.ID)
			d.URel = "orphan"
		}
	}
	log.Debug().
		Int("tokenId", punct.ID).
		Str("form", head.Form).
		Msg("converted elliptical structure")
}

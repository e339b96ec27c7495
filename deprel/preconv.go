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
	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
	"udconv/deptree"
)

var (
	comparMarkerLemmas = collections.NewSet("jak", "jakby")
	auxFrozenClasses   = collections.NewSet("aglt", "cond")
)

// preconvert adjusts POS tags and features which the tag-level
// conversion cannot decide without looking at the tree: comparative
// markers get their conjunction type and auxiliaries heading a clause
// of their own turn back into full verbs. The pass is idempotent, so
// feeding an already converted sentence through it changes nothing.
func (c *Converter) preconvert(s *deptree.Sentence) {
	for _, t := range s.Tokens {
		if t.UPOS == "VERB" && t.Rel == "aux" {
			continue
		}
		switch {
		case t.Gov() != nil && t.UPOS == "SCONJ" &&
			comparMarkerLemmas.Contains(t.Lemma) && t.Rel == "adjunct_compar":
			t.SetFeat("ConjType", "Comp")
			log.Debug().
				Int("tokenId", t.ID).
				Str("lemma", t.Lemma).
				Msg("marked comparative conjunction")

		case t.UPOS == "AUX" && !auxFrozenClasses.Contains(t.Class()) &&
			t.Rel != "aux" && t.Lemma != "to" && t.Lemma != "by" &&
			len(t.Children()) > 0 &&
			len(t.ChildrenWithURel("conj")) != 1 &&
			len(t.ChildrenWithURel("cc")) != 1:
			if len(t.ChildrenWithRel("pd")) != 1 {
				t.UPOS = "VERB"
				log.Debug().
					Int("tokenId", t.ID).
					Str("form", t.Form).
					Msg("promoted auxiliary with dependents to full verb")
			}

		case t.UPOS == "AUX" && !auxFrozenClasses.Contains(t.Class()) &&
			len(t.Children()) == 0 && t.Lemma == "być" &&
			t.Rel != "aux" && t.Rel != "aglt":
			t.UPOS = "VERB"
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("promoted leaf auxiliary to full verb")
		}
	}
}

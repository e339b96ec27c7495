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

// correctEdges enforces the UD constraints on which nodes may govern
// dependents. Auxiliaries, members of fixed expressions and function
// words (mark, case, cc) give their dependents up to a suitable
// content word, and flat structures get reordered so that they always
// run left to right.
func (c *Converter) correctEdges(s *deptree.Sentence, warns *deptree.Warnings) {
	c.liftAuxiliaryDependents(s)
	c.liftFixedDependents(s, warns)
	c.reorderFlat(s, warns)
	c.liftFunctionWordDependents(s)
}

func (c *Converter) liftAuxiliaryDependents(s *deptree.Sentence) {
	for _, t := range s.Tokens {
		if t.UPOS != "AUX" ||
			len(t.UChildrenWithURel("conj")) > 0 ||
			len(t.UChildrenWithURel("cc")) > 0 ||
			len(t.Children()) == 0 {
			continue
		}
		sgov := semanticGovernor(t)
		if sgov == nil {
			continue
		}
		for _, dep := range t.UChildren() {
			if dep.Lemma != "nie" && dep.Rel != "neg" && dep.URel != "conj" && dep != sgov {
				dep.SetUGov(sgov.ID)
				log.Debug().
					Int("tokenId", dep.ID).
					Str("form", dep.Form).
					Str("newHead", sgov.Form).
					Msg("lifted dependent off an auxiliary")
			}
		}
	}
}

// semanticGovernor walks up the converted tree past auxiliaries.
func semanticGovernor(t *deptree.Token) *deptree.Token {
	gov := t.EffGov()
	for gov != nil && gov.UPOS == "AUX" {
		gov = gov.EffGov()
	}
	return gov
}

func (c *Converter) liftFixedDependents(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if t.URel != "fixed" {
			continue
		}
		head := t
		for head != nil && head.URel == "fixed" {
			head = head.EffGov()
		}
		if head == nil {
			warns.Addf(t.ID, "fixed expression member %q has no head", t.Form)
			continue
		}
		for _, member := range collectFixed(head) {
			for _, dep := range member.UChildren() {
				if dep != head {
					dep.SetUGov(head.ID)
				}
			}
		}
	}
}

// collectFixed returns the members of the fixed expression headed by
// t, in depth-first order.
func collectFixed(t *deptree.Token) []*deptree.Token {
	var members []*deptree.Token
	for _, m := range t.UChildrenWithURel("fixed") {
		members = append(members, m)
		members = append(members, collectFixed(m)...)
	}
	return members
}

func (c *Converter) reorderFlat(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		for _, flat := range t.UChildrenWithURel("flat") {
			if flat.ID >= t.ID {
				continue
			}
			gov := t.EffGov()
			if gov == nil {
				warns.Addf(flat.ID, "flat token %q has no governor to reorder under", flat.Form)
				continue
			}
			flat.SetUGov(gov.ID)
			t.SetUGov(flat.ID)
			log.Debug().
				Int("tokenId", flat.ID).
				Str("form", flat.Form).
				Msg("reordered flat structure")
		}
	}
}

func (c *Converter) liftFunctionWordDependents(s *deptree.Sentence) {
	for _, t := range s.Tokens {
		if t.EffGov() == nil {
			continue
		}
		switch t.URel {
		case "mark", "case", "cc", "cc:preconj":
		default:
			continue
		}
		for _, ch := range t.UChildren() {
			switch ch.URel {
			case "punct", "advmod", "list", "cop", "obl", "aux:clitic", "advcl", "mark", "orphan":
				if ch.Rel != "abbrev_punct" {
					ch.SetUGov(t.EffGovID())
				}
			}
		}
	}
}

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

// convertPrepositions rewires prepositional phrases: the complement of
// the preposition becomes the head of the phrase and the preposition
// attaches to it via case. Prepositions inside multiword expressions
// are resolved through the topmost member of the mwe chain.
func (c *Converter) convertPrepositions(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if t.UPOS != "ADP" || t.Gov() == nil {
			continue
		}
		if t.Rel == "mwe" {
			superGov, member := t.SuperGovViaLabel("mwe")
			if superGov == nil {
				warns.Addf(t.ID, "no governor above the multiword chain of preposition %q", t.Form)
				continue
			}
			if unassigned(superGov) && (superGov.Rel == "adjunct_compar" || superGov.Rel == "adjunct_comment") {
				warns.Addf(t.ID, "keeping comparative or comment adjunct around preposition %q", t.Form)
				continue
			}
			c.convertPP(member, superGov, t, warns)
		} else {
			c.convertPP(t, t.Gov(), t, warns)
		}
		log.Debug().
			Int("tokenId", t.ID).
			Str("form", t.Form).
			Msg("converted prepositional phrase")
	}
}

// convertPP rewires a single prepositional phrase. prep is the token
// standing in for the whole preposition (the topmost mwe member for
// complex prepositions), gov the governor of the phrase and t the
// preposition whose children carry the complement.
func (c *Converter) convertPP(prep, gov, t *deptree.Token, warns *deptree.Warnings) {
	var comp []*deptree.Token
	for _, ch := range t.ChildrenWithRel("comp") {
		if ch.ID > prep.ID {
			comp = append(comp, ch)
		}
	}
	if len(comp) == 0 {
		mweComp := t.SuperChildViaLabel("comp", "mwe")
		if mweComp == nil {
			if prep.Rel == "conjunct" && gov.URel != "case" && t.Gov() != nil {
				c.conjoinedPrepPhrase(prep, gov, t, warns)
			} else {
				warns.Addf(t.ID, "preposition %q has no complement", prep.Form)
			}
			return
		}
		if prep.Lemma == "podczas" && prep.Next() != nil && prep.Next().Lemma == "gdy" {
			// "podczas gdy" acts as a subordinator, handled separately
			return
		}
		mweComp.SetUGov(gov.ID)
		mweComp.URel = prep.URel
		prep.SetUGov(mweComp.ID)
		prep.URel = "case"
		reattachPrepDependents(prep, mweComp)
		return
	}
	if len(comp) > 1 {
		warns.Addf(t.ID, "preposition %q has %d complements", prep.Form, len(comp))
		return
	}
	compT := comp[0]
	compT.SetUGov(gov.ID)
	compT.URel = prep.URel
	prep.SetUGov(compT.ID)
	prep.URel = "case"
	reattachPrepDependents(prep, compT)
}

// conjoinedPrepPhrase covers constructions like "obok lub zamiast
// jednostek" where conjoined prepositions share a single complement
// hanging off the conjunction.
func (c *Converter) conjoinedPrepPhrase(prep, gov, t *deptree.Token, warns *deptree.Warnings) {
	conjComp := t.Gov().ChildrenWithRel("comp")
	switch {
	case len(conjComp) == 0:
		warns.Addf(t.ID, "preposition %q has no complement", prep.Form)
	case len(conjComp) == 1:
		superGov := gov.Gov()
		if superGov == nil {
			return
		}
		conjComp[0].SetUGov(gov.GovID)
		conjComp[0].URel = gov.URel
		gov.SetUGov(conjComp[0].ID)
		gov.URel = "_"
	default:
		warns.Addf(t.ID, "preposition %q has %d shared complements", prep.Form, len(conjComp))
	}
}

// reattachPrepDependents moves the remaining dependents of a rewired
// preposition under its complement. They keep their raw relations for
// the label rules to resolve.
func reattachPrepDependents(prep, comp *deptree.Token) {
	for _, d := range prep.Children() {
		if d == comp || d.Rel == "mwe" || d.Rel == "abbrev_punct" {
			continue
		}
		d.SetUGov(comp.ID)
	}
}

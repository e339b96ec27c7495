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

// convertCopulas rewires predicative constructions. UD treats the
// nonverbal predicate as the head of the clause: the copula attaches
// to it via cop, the subject moves below it and so do the remaining
// dependents of the copula. The promoted token takes over the copula's
// slot on the source side too, so that the subordination and
// coordination passes keep finding the clause under its original
// relation.
func (c *Converter) convertCopulas(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		switch {
		case t.Lemma == "to" && t.Class() == "pred":
			if subj := t.ChildrenWithRel("subj"); len(subj) > 0 {
				pds := t.ChildrenWithRel("pd")
				if len(pds) == 1 && pds[0].UPOS == "ADJ" {
					c.predicativeAdj(t, t.GovID, warns)
				} else {
					c.predicativeOther(t, t.GovID, subj[0], warns)
				}
			} else {
				c.predicativeAdj(t, t.GovID, warns)
			}

		case t.UPOS == "AUX":
			if pds := t.ChildrenWithRel("pd"); len(pds) == 1 {
				c.predicativeAdj(t, t.GovID, warns)
			} else if len(pds) > 1 {
				warns.Addf(t.ID, "multiple predicative expressions below copula %q", t.Form)
			}

		case t.UPOS == "CCONJ" && len(t.ChildrenWithRel("conjunct")) > 1:
			conjuncts := t.ChildrenWithRel("conjunct")
			if conjuncts[0].Lemma != "być" && conjuncts[0].Lemma != "bywać" {
				continue
			}
			if pds := t.ChildrenWithRel("pd"); len(pds) == 1 && t.Gov() != nil {
				c.coordinatedCopula(t, t.Gov(), warns)
			} else if len(pds) > 1 {
				warns.Addf(t.ID, "multiple predicative expressions below coordinated copula %q", t.Form)
			}
		}
	}
}

// predicativeAdj handles clauses whose predicate is the single pd
// child of the copula ("To było piękne."): the pd takes over the
// copula's governor and relation.
func (c *Converter) predicativeAdj(cop *deptree.Token, govID int, warns *deptree.Warnings) {
	pds := cop.ChildrenWithRel("pd")
	if len(pds) > 1 {
		warns.Addf(cop.ID, "multiple predicative expressions below copula %q", cop.Form)
		return
	}
	if len(pds) == 0 {
		return
	}
	pd := pds[0]
	var subjT *deptree.Token
	if subj := cop.ChildrenWithRel("subj"); len(subj) > 0 {
		subjT = subj[0]
		subjT.URel = c.convertLabel(subjT, nil, nil, nil, warns)
		subjT.SetUGov(pd.ID)
		subjT.GovID = pd.ID
	}
	pd.SetUGov(govID)
	pd.GovID = govID
	pd.URel = cop.URel
	pd.Rel = cop.Rel
	cop.SetUGov(pd.ID)
	cop.GovID = pd.ID
	cop.URel = "cop"
	processCopulaDependents(cop, pd, subjT)
	log.Debug().
		Int("tokenId", cop.ID).
		Str("predicate", pd.Form).
		Msg("converted predicative clause")
}

// predicativeOther handles clauses with a non-adjectival predicate
// ("To jest miłość.", "Druga strefa to świat handlu."): the subject
// takes over the copula's slot and an eventual pd child turns into the
// subject's own subject dependent.
func (c *Converter) predicativeOther(cop *deptree.Token, govID int, subj *deptree.Token, warns *deptree.Warnings) {
	var pdT *deptree.Token
	if pds := cop.ChildrenWithRel("pd"); len(pds) > 0 {
		pdT = pds[0]
		pdT.SetUGov(subj.ID)
		pdT.GovID = subj.ID
		pdT.URel = c.convertLabel(subj, cop, pdT, nil, warns)
		pdT.Rel = "subj"
		subj.SetUGov(govID)
		subj.GovID = govID
		subj.URel = cop.URel
		subj.Rel = cop.Rel
	} else {
		subj.SetUGov(govID)
		subj.GovID = govID
		subj.URel = "_"
		subj.Rel = cop.Rel
	}
	cop.SetUGov(subj.ID)
	cop.GovID = subj.ID
	cop.URel = "cop"
	processCopulaDependents(cop, subj, pdT)
	log.Debug().
		Int("tokenId", cop.ID).
		Str("predicate", subj.Form).
		Msg("converted predicative clause")
}

// coordinatedCopula handles conjoined copula forms sharing one
// predicative complement ("Sztab jest i będzie czysty."). cop is the
// conjunction heading the copula forms; the pd takes over its slot and
// the conjunction drops below the pd, so the coordination pass later
// spreads cop over the conjuncts.
func (c *Converter) coordinatedCopula(cop, gov *deptree.Token, warns *deptree.Warnings) {
	pds := cop.ChildrenWithRel("pd")
	if len(pds) == 0 {
		return
	}
	pdT := pds[0]
	var subjT *deptree.Token
	if subj := cop.ChildrenWithRel("subj"); len(subj) > 0 {
		subjT = subj[0]
		subjT.URel = c.convertLabel(subjT, nil, nil, nil, warns)
		subjT.SetUGov(pdT.ID)
		subjT.GovID = pdT.ID

		pdT.SetUGov(gov.ID)
		pdT.GovID = gov.ID
		pdT.URel = cop.URel
		pdT.Rel = cop.Rel

		cop.SetUGov(pdT.ID)
		cop.GovID = pdT.ID
		cop.URel = "cop"
	}
	for _, ch := range cop.Children() {
		if ch == subjT || ch == pdT {
			continue
		}
		if ch.Rel == "neg" || ch.Rel == "cneg" || ch.Rel == "conjunct" || ch.Lemma == "nie" {
			continue
		}
		ch.SetUGov(pdT.ID)
		ch.GovID = pdT.ID
		ch.URel = "_"
	}
}

// processCopulaDependents moves the remaining dependents of a rewired
// copula under the new clause head. Negation and any further subject
// or predicative children stay with the copula.
func processCopulaDependents(cop, newHead, exclude *deptree.Token) {
	for _, dep := range cop.Children() {
		if dep == exclude {
			continue
		}
		switch dep.Rel {
		case "pd", "subj", "neg", "cneg":
			continue
		}
		dep.SetUGov(newHead.ID)
		dep.GovID = newHead.ID
	}
}

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

// complexConjPair tests the lemma pairs forming complex subordinating
// conjunctions like "jako że", "podczas gdy" or "mimo że".
func complexConjPair(t, gov *deptree.Token) bool {
	switch {
	case t.Lemma == "że" && gov.Lemma == "jako":
		return true
	case t.Lemma == "gdyby" && gov.Lemma == "jak":
		return true
	case t.Lemma == "gdy" && gov.Lemma == "podczas":
		return true
	case (t.Lemma == "że" || t.Lemma == "iż") && (gov.Lemma == "pomimo" || gov.Lemma == "mimo"):
		return true
	case t.Lemma == "więc" && gov.Lemma == "tak":
		return true
	}
	return false
}

// threewordConjPair tests the tails of three-word conjunctions like
// "w miarę jak" or "w przypadku gdy".
func threewordConjPair(t, gov *deptree.Token) bool {
	if t.Lemma == "jak" && gov.Lemma == "miara" {
		return true
	}
	switch t.Lemma {
	case "gdy", "gdyby", "kiedy", "jak":
		return gov.Lemma == "przypadek" || gov.Lemma == "wypadek"
	}
	return false
}

// convertSubordinations rewires subordinate clauses: the predicate of
// the clause becomes the head and the subordinating conjunction
// attaches to it via mark.
func (c *Converter) convertSubordinations(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if t.UPOS == "SCONJ" && t.Gov() != nil {
			switch {
			case t.Lemma == "jako" && len(t.ChildrenWithRel("mwe")) == 0:
				c.jako(t, warns)
			case t.Rel == "mwe" && complexConjPair(t, t.Gov()):
				if t.Gov().Gov() != nil {
					c.complexSubConj(t, warns)
				}
			case t.Rel == "mwe" && threewordConjPair(t, t.Gov()):
				c.threewordSubConj(t, warns)
			case t.Rel != "mwe" && len(t.ChildrenWithRel("mwe")) == 0 && unassigned(t):
				c.simpleSubConj(t, warns)
			default:
				continue
			}
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted subordinate clause")
		} else if t.Lemma == "o" {
			for _, ch := range t.Children() {
				if ch.Lemma == "ile" && ch.Rel == "mwe" {
					c.complexSubConj(ch, warns)
					break
				}
			}
		}
	}
}

// jako rewires attributive constructions: the pd child of "jako"
// becomes the head and "jako" its mark.
func (c *Converter) jako(t *deptree.Token, warns *deptree.Warnings) {
	pds := t.ChildrenWithRel("pd")
	if len(pds) == 0 {
		warns.Addf(t.ID, "attributive construction %q has no predicative dependent", t.Form)
		return
	}
	if len(pds) > 1 {
		warns.Addf(t.ID, "attributive construction %q has %d predicative dependents", t.Form, len(pds))
		return
	}
	pd := pds[0]
	if gov := t.Gov(); gov != nil {
		pd.SetUGov(gov.ID)
		pd.URel = t.URel
	} else {
		warns.Addf(t.ID, "attributive construction %q has no governor", t.Form)
	}
	t.SetUGov(pd.ID)
	t.URel = "mark"
}

// complexSubConj rewires a clause introduced by a two-word conjunction
// whose second part attaches to the first via mwe. The clause predicate
// moves above the whole conjunction and the first part becomes its
// mark.
func (c *Converter) complexSubConj(t *deptree.Token, warns *deptree.Warnings) {
	superGov, member := t.SuperGovViaLabel("mwe")
	if superGov == nil {
		warns.Addf(t.ID, "no governor above the complex conjunction at %q", t.Form)
		return
	}
	comp := c.findComplement(t, warns)
	if comp == nil {
		warns.Addf(t.ID, "complex conjunction %q has no complement", t.Lemma)
		return
	}
	comp.SetUGov(superGov.ID)
	comp.URel = member.URel
	member.SetUGov(comp.ID)
	member.URel = "mark"
	c.punctuationMarks(t, comp, warns)
}

// threewordSubConj rewires clauses introduced by three-word
// conjunctions ("w miarę jak"). Only finite complements count here.
func (c *Converter) threewordSubConj(t *deptree.Token, warns *deptree.Warnings) {
	superGov, member := t.SuperGovViaLabel("mwe")
	if superGov == nil {
		warns.Addf(t.ID, "no governor above the complex conjunction at %q", t.Form)
		return
	}
	comp := t.ChildrenWithRel("comp_fin")
	if len(comp) == 0 {
		warns.Addf(t.ID, "complex conjunction %q has no finite complement", t.Lemma)
		return
	}
	if len(comp) > 1 {
		warns.Addf(t.ID, "complex conjunction %q has %d finite complements", t.Lemma, len(comp))
		return
	}
	compT := comp[0]
	compT.SetUGov(superGov.ID)
	compT.URel = member.URel
	member.SetUGov(compT.ID)
	member.URel = "mark"
	for _, punct := range member.Children() {
		if punct.UPOS == "PUNCT" {
			punct.SetUGov(compT.ID)
			punct.URel = "punct"
		}
	}
}

// simpleSubConj rewires a clause introduced by a plain subordinating
// conjunction ("że", "żeby", "ponieważ").
func (c *Converter) simpleSubConj(t *deptree.Token, warns *deptree.Warnings) {
	gov := t.Gov()
	if gov == nil {
		warns.Addf(t.ID, "subordinating conjunction %q has no governor", t.Form)
		return
	}
	comp := c.findComplement(t, warns)
	if comp == nil {
		if t.Lemma != "to" && t.Lemma != "dopóty" && t.Rel != "dep" {
			warns.Addf(t.ID, "subordinating conjunction %q has no complement", t.Lemma)
		}
		return
	}
	comp.SetUGov(gov.ID)
	comp.URel = t.URel
	t.SetUGov(comp.ID)
	t.URel = "mark"
	c.punctuationMarks(t, comp, warns)
}

// findComplement picks the clause predicate below a subordinating
// conjunction, preferring finite over infinitive over other
// complements. Multiple candidates of the winning kind leave the
// construction alone.
func (c *Converter) findComplement(t *deptree.Token, warns *deptree.Warnings) *deptree.Token {
	for _, label := range []string{"comp_fin", "comp_inf", "comp"} {
		comp := t.ChildrenWithRel(label)
		if len(comp) == 0 {
			continue
		}
		if len(comp) != 1 {
			warns.Addf(t.ID, "conjunction %q has %d %s dependents", t.Lemma, len(comp), label)
			return nil
		}
		return comp[0]
	}
	return nil
}

// punctuationMarks moves punctuation off a rewired conjunction: mark
// must not govern punct in UD, so the clause predicate takes it over.
func (c *Converter) punctuationMarks(t, comp *deptree.Token, warns *deptree.Warnings) {
	for _, punct := range t.Children() {
		if punct.UPOS != "PUNCT" {
			continue
		}
		if len(punct.Children()) == 0 {
			punct.SetUGov(comp.ID)
			punct.URel = "punct"
		} else {
			warns.Addf(t.ID, "punctuation mark %q has dependents of its own", punct.Form)
		}
	}
}

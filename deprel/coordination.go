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
	"regexp"

	"github.com/rs/zerolog/log"
	"udconv/deptree"
)

var (
	// source relations marking a dependent shared by all conjuncts
	sharedRelRe = regexp.MustCompile(`^(subj|obj|adjunct|comp|cop|obl|cond|aux|vocative|app|pd|orphan|item|aglt|refl|imp|ne|cneg)`)
	// already converted labels marking a shared dependent
	sharedURelRe = regexp.MustCompile(`cop|case|mark|det:numgov|nummod`)
)

// convertCoordinations headifies coordination structures: the source
// tree hangs conjuncts under the conjunction (or under a punctuation
// mark acting as one), UD makes the first conjunct the head and
// attaches the conjunction to the immediately following conjunct.
func (c *Converter) convertCoordinations(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		switch {
		case t.UPOS == "CCONJ" && len(t.ChildrenWithRel("conjunct")) > 0 && t.Gov() != nil:
			c.coordination(t, false, "", warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted coordination structure")

		// compound conjunctions "przy czym", "przy tym"
		case t.Lemma == "przy" && t.Next() != nil && (t.Next().Form == "czym" || t.Next().Form == "tym") &&
			len(t.ChildrenWithRel("conjunct")) > 0 && t.Gov() != nil:
			if next := t.Next(); next.Gov() == t && next.Rel == "mwe" {
				next.URel = "fixed"
			}
			c.coordination(t, false, "", warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted coordination structure")

		// punctuation mark used as a conjunction, e.g. "Siedzi, czyta."
		case t.UPOS == "PUNCT" && len(t.ChildrenWithRel("conjunct")) > 0 && t.Gov() != nil:
			conjs := t.ChildrenWithRel("conjunct")
			if t.URel != "conj" && conjs[0].URel != "punct" && conjs[0].URel != "cc" {
				c.coordination(t, true, "", warns)
				log.Debug().
					Int("tokenId", t.ID).
					Str("form", t.Form).
					Msg("converted coordination structure")

			} else if t.URel == "conj" {
				// a conjunct realized as a coordination of its own,
				// e.g. "..., ale teraz to wszystko odrobi, nadgoni"
				c.coordination(t, true, "conj", warns)
				log.Debug().
					Int("tokenId", t.ID).
					Str("form", t.Form).
					Msg("converted nested coordination structure")

			} else {
				warns.Addf(t.ID, "cannot convert coordination structure at %q", t.Form)
			}
		}
	}
}

// coordination rewires a single coordination headed by the token t.
// With punctConj the coordinator is a punctuation mark rather than a
// conjunction. A non-empty udLabel forces the label of the promoted
// first conjunct.
func (c *Converter) coordination(t *deptree.Token, punctConj bool, udLabel string, warns *deptree.Warnings) {
	var conjuncts, preCoords, puncts, shared, other []*deptree.Token
	for _, ch := range t.Children() {
		switch {
		case ch.HasUGov():
			// an earlier pass already promoted this child out of the
			// coordination (shared complements of numeral and
			// prepositional phrases), so its new position stands
		case unassigned(ch) && ch.Rel == "conjunct":
			conjuncts = append(conjuncts, ch)
		case unassigned(ch) && ch.Rel == "pre_coord" && ch.ID < t.ID:
			preCoords = append(preCoords, ch)
		case ch.Rel == "punct":
			puncts = append(puncts, ch)
		case ch.URel != "fixed" &&
			(sharedRelRe.MatchString(ch.Rel) ||
				sharedURelRe.MatchString(ch.URel) ||
				(ch.Rel == "mwe" && ch.Class() == "brev") ||
				(ch.Rel == "mwe" && ch.Class() == "subst" && ch.Form != "czym")):
			shared = append(shared, ch)
		default:
			other = append(other, ch)
		}
	}
	if len(conjuncts) == 0 {
		return
	}
	// children come in sentence order, so the first conjunct is the
	// leftmost one and becomes the head
	mainC := conjuncts[0]

	if punctConj {
		if t.Gov() != nil {
			mainC.SetUGov(t.EffGovID())
			mainC.URel = udLabel
			if mainC.URel == "" {
				if eg := t.EffGov(); eg != nil {
					mainC.URel = eg.URel
				}
			}
		}
		puncts = append(puncts, t)

	} else {
		if t.Gov() != nil {
			mainC.SetUGov(t.EffGovID())
			// the coordinator hands its converted label over before
			// turning into a plain cc
			if udLabel != "" {
				mainC.URel = udLabel
			} else {
				mainC.URel = t.URel
			}
			t.URel = "cc"
		}
		// the conjunction goes under the immediately following
		// conjunct, or under the head when it closes the structure
		if next := nextAfter(conjuncts, t.ID); next != nil {
			t.SetUGov(next.ID)
		} else {
			t.SetUGov(mainC.ID)
		}
	}

	for _, p := range puncts {
		if next := nextAfter(conjuncts, p.ID); next != nil {
			p.SetUGov(next.ID)
		}
		p.URel = "punct"
	}
	for _, conj := range conjuncts {
		if conj != mainC {
			conj.SetUGov(mainC.ID)
			conj.URel = "conj"
		}
	}
	for _, pre := range preCoords {
		if next := nextAfter(conjuncts, pre.ID); next != nil {
			pre.SetUGov(next.ID)
			pre.URel = "cc:preconj"
		}
	}
	for _, sh := range shared {
		sh.SetUGov(mainC.ID)
		sh.URel = c.convertLabel(sh, nil, nil, nil, warns)
	}
	c.attachRemaining(other, mainC, t)
}

// attachRemaining deals with coordinator dependents outside the
// regular buckets.
func (c *Converter) attachRemaining(other []*deptree.Token, mainC, t *deptree.Token) {
	for _, o := range other {
		switch {
		case o.Rel == "mwe":
			// multiword expressions are handled by their own pass

		// a conjunction whose conjunct is itself a coordination,
		// e.g. "zaś" in "Mulla zaś ... pozostawał niewidzialny"
		case o.UPOS == "CCONJ" && o.URel == "cc":
			o.SetUGov(mainC.ID)
			o.URel = "cc"

		case o.Class() == "interp" && t.Class() == "conj" && o.Rel != "punct" && len(o.Children()) == 0:
			o.SetUGov(mainC.ID)
			o.URel = "punct"

		// a subordinator whose clause is realized as a coordination,
		// e.g. "bo" in "..., bo płyta uległa zgnieceniu, a wody zapełniły ..."
		case o.UPOS == "SCONJ" && o.URel == "mark":
			o.SetUGov(mainC.ID)
			o.URel = "mark"

		default:
			o.SetUGov(mainC.ID)
			o.URel = "mark"
		}
	}
}

// nextAfter returns the first of the tokens (kept in sentence order)
// whose position follows id.
func nextAfter(tokens []*deptree.Token, id int) *deptree.Token {
	for _, c := range tokens {
		if c.ID > id {
			return c
		}
	}
	return nil
}

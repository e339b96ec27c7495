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
	// modifying particles which stay attached to the numeral itself
	numModifierLemmas = collections.NewSet(
		"ani", "aż", "blisko", "bodaj", "co", "dopiero", "jedynie", "jeszcze",
		"chociaż", "coraz", "jak", "już", "najwyżej", "naprawdę", "nawet",
		"niemal", "niespełna", "około", "ponad", "prawie", "przeszło",
		"przynajmniej", "raptem", "tak", "tylko", "z", "za", "zaledwie",
		"zapewne", "zbyt", "znacznie")
	numDetLemmas = collections.NewSet("jakiś", "jaki", "ten", "wszystek")
)

// convertNumerals rewires numeral phrases: the source treebank hangs
// the counted noun below the numeral while UD makes the noun the head
// and the numeral its modifier.
func (c *Converter) convertNumerals(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		if t.Class() != "num" {
			continue
		}
		gov := t.Gov()
		switch {
		case len(t.ChildrenWithRel("comp")) > 0:
			c.standardNumeral(t, warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted standard numeral phrase")
		case gov != nil && (gov.UPOS == "CCONJ" || gov.UPOS == "PUNCT" && t.Rel == "conjunct") &&
			len(gov.ChildrenWithRel("comp")) > 0:
			c.coordinatedNumeral(t, warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted coordinated numeral phrase")
		case t.SuperChildViaLabel("mwe", "comp") != nil:
			c.mweNumeral(t, warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted multiword numeral phrase")
		case t.SuperChildViaLabel("ne", "comp") != nil:
			c.neNumeral(t, warns)
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("converted named entity numeral phrase")
		}
	}
}

// standardNumeral promotes the single comp child over the numeral and
// reattaches the numeral's remaining dependents to it. Modifying
// particles and determiners from a closed list keep their attachment
// to the numeral.
func (c *Converter) standardNumeral(t *deptree.Token, warns *deptree.Warnings) {
	comp := t.ChildrenWithRel("comp")
	if len(comp) != 1 {
		warns.Addf(t.ID, "expected a single comp child of numeral %q, found %d", t.Form, len(comp))
		return
	}
	compT := comp[0]
	if t.Gov() != nil {
		compT.SetUGov(t.GovID)
		compT.URel = "_"
	}
	t.SetUGov(compT.ID)
	t.URel = c.numeralLabel(t, warns)
	for _, ch := range t.Children() {
		if ch == compT || ch.Rel == "mwe" || ch.Rel == "adjunct_compar" {
			continue
		}
		if numModifierLemmas.Contains(ch.Lemma) && (ch.UPOS == "PART" || ch.UPOS == "X") &&
			(ch.Rel == "adjunct" || ch.Rel == "adjunct_emph") {
			continue
		}
		if numDetLemmas.Contains(ch.Lemma) && ch.UPOS == "DET" && ch.Rel == "adjunct" {
			continue
		}
		ch.SetUGov(compT.ID)
		ch.URel = c.convertLabel(ch, nil, nil, nil, warns)
	}
}

// coordinatedNumeral handles a numeral conjoined under a conjunction
// which shares a single comp child: the shared complement is promoted
// above the conjunction and the conjunction reattached below it.
func (c *Converter) coordinatedNumeral(t *deptree.Token, warns *deptree.Warnings) {
	gov := t.Gov()
	comp := gov.ChildrenWithRel("comp")
	if len(comp) != 1 {
		warns.Addf(t.ID, "expected a single shared comp child of coordinated numeral %q, found %d",
			t.Form, len(comp))
		return
	}
	compT := comp[0]
	if gov.Gov() != nil {
		compT.SetUGov(gov.GovID)
		compT.URel = c.convertLabel(gov, nil, nil, nil, warns)
		gov.SetUGov(compT.ID)
		gov.URel = c.numeralLabel(gov, warns)
	} else {
		warns.Addf(t.ID, "no governor above coordinated numeral phrase %q", t.Form)
	}
}

// mweNumeral promotes the multiword member reachable through the comp
// chain over the numeral.
func (c *Converter) mweNumeral(t *deptree.Token, warns *deptree.Warnings) {
	mweT := t.SuperChildViaLabel("mwe", "comp")
	if mweT == nil {
		warns.Addf(t.ID, "no multiword member found below numeral %q", t.Form)
		return
	}
	if gov := t.Gov(); gov != nil {
		mweT.SetUGov(t.GovID)
		mweT.URel = c.convertLabel(t, nil, nil, nil, warns)
	}
	t.SetUGov(mweT.ID)
	t.URel = c.numeralLabel(t, warns)
}

// neNumeral promotes the named entity child over the numeral, which
// keeps a flat attachment to it.
func (c *Converter) neNumeral(t *deptree.Token, warns *deptree.Warnings) {
	ne := t.ChildrenWithRel("ne")
	if len(ne) != 1 {
		warns.Addf(t.ID, "expected a single named entity child of numeral %q, found %d", t.Form, len(ne))
		return
	}
	neT := ne[0]
	if gov := t.Gov(); gov != nil {
		neT.SetUGov(t.GovID)
		neT.URel = c.convertLabel(t, nil, nil, nil, warns)
	}
	t.SetUGov(neT.ID)
	t.URel = "nummod:flat"
}

// numeralLabel picks the modifier relation of a rewired numeral.
func (c *Converter) numeralLabel(t *deptree.Token, warns *deptree.Warnings) string {
	if t.URel == "" && t.UPOS == "NUM" {
		return "nummod"
	}
	if t.URel == "" && t.UPOS == "DET" {
		return "det"
	}
	warns.Addf(t.ID, "no modifier relation for rewired numeral %q (%s)", t.Form, t.UPOS)
	return "_"
}

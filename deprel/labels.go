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
	"slices"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"udconv/deptree"
)

var (
	// lemmas which keep working as emphasizing particles no matter
	// how the tagger classified them
	particleLemmas = collections.NewSet(
		"a", "aby", "akurat", "ale", "ani", "azaliż", "aż", "ba", "blisko", "bodaj",
		"bodajże", "byle", "chociaż", "choć", "choćby", "chociażby", "chyba", "coraz",
		"czyli", "dopiero", "doprawdy", "dość", "dosyć", "gdzieś", "głównie", "i",
		"jak", "jakby", "jakoby", "jednak", "jednakowoż", "jednakże", "jedynie",
		"jeszcze", "już", "może", "nadto", "najwidoczniej", "najwyraźniej", "najwyżej",
		"naprawdę", "nawet", "niby", "nie", "niejako", "niemal", "niemalże",
		"niespełna", "niestety", "niemniej", "oczywiście", "około", "ot", "oto",
		"otóż", "pewnie", "podobnież", "podobno", "ponad", "ponadto", "poniekąd",
		"ponoć", "prawie", "przecie", "przecież", "przeszło", "przynajmniej",
		"raczej", "raptem", "również", "skądinąd", "szczególnie", "tak", "także",
		"to", "toż", "trochę", "tylko", "też", "tuż", "widać", "widocznie", "więc",
		"właśnie", "wprawdzie", "wprost", "wręcz", "wreszcie", "wszak", "wszakże",
		"wszelako", "z", "za", "zaledwie", "zapewne", "zaraz", "zarazem", "zaś",
		"zbyt", "zgoła", "znacznie", "znowu", "znowuż", "znów", "zresztą",
		"zwłaszcza", "że", "istotnie", "praktycznie",
	)

	impAuxLemmas = collections.NewSet("niech", "niechaj", "niechże", "niechby")

	// particle governors which take clausal complements
	complementGovParticles = collections.NewSet("tak", "chyba", "prawie", "pewnie", "zwłaszcza")

	// abbreviations acting as adjectival modifiers (lemmas come
	// normalized by the reader, multiword ones with underscores)
	amodAbbrevLemmas = collections.NewSet(
		"były", "dawny", "elektro", "habilitowany", "maksymalny", "nad_poziomem_morza",
		"parafialny", "pięcioprocentowy", "przed_naszą_erą", "północny", "starszy",
		"stumililitrowy", "świętej_pamięci", "święty", "urodzony", "wschodni",
		"wyżej_wymieniony", "zachodni", "zbudowany",
	)
)

func anyUPOS(t *deptree.Token, upos ...string) bool {
	return slices.Contains(upos, t.UPOS)
}

// jakoComparative tells whether the first mark dependent of t is the
// comparative conjunction "jako".
func jakoComparative(t *deptree.Token, mark []*deptree.Token, warns *deptree.Warnings) bool {
	if len(mark) > 1 {
		warns.Addf(t.ID, "multiple mark dependents below %q", t.Form)
	}
	return mark[0].Lemma == "jako" && mark[0].Feat("ConjType") != ""
}

// convertLabel maps the source relation of a token to its UD
// equivalent, taking the syntactic context into account. The token n
// carries the relation being converted, t supplies the part-of-speech
// context (the two differ when a structure pass moved a phrase label
// onto a promoted head) and relGov identifies the relation instance,
// so that an already converted relation is never recomputed. All
// three contexts default to the plain case n = t rooted at the
// effective governor of t.
func (c *Converter) convertLabel(t, gov, n, relGov *deptree.Token, warns *deptree.Warnings) string {
	if n == nil {
		n = t
	}
	if gov == nil {
		gov = t.EffGov()
	}
	if relGov == nil {
		relGov = t.EffGov()
	}
	if !unassigned(n) && n.HasUGov() && n.UGov() == relGov {
		return n.URel
	}

	// emojis and other symbols used as comments act as discourse
	// elements
	if t.Class() == "sym" && n.Rel == "adjunct_comment" {
		return "discourse"
	}
	// interjections always, except at the root
	if t.Class() == "interj" && n.Rel != "root" {
		return "discourse:intj"
	}
	// "o tyle" works as a subordinator
	if t.Lemma == "o" {
		tyle := t.ChildrenWithLemma("tyle")
		if len(tyle) == 1 && tyle[0].Rel == "mwe" {
			return "mark"
		}
		if len(tyle) > 1 {
			warns.Addf(t.ID, "multiple %q dependents below %q", "tyle", t.Form)
			return n.URel
		}
	}
	if t.UPOS == "DET" && t.Class() != "num" && (n.Rel == "adjunct" || n.Rel == "poss") {
		if t.Feat("Poss") == "Yes" {
			return "det:poss"
		}
		return "det"
	}

	switch c.table.CategoryOf(n.Rel) {
	case CatArguments:
		return c.argumentLabel(t, gov, n, warns)
	case CatAdjuncts:
		return c.adjunctLabel(t, gov, n, warns)
	case CatCoordination:
		return n.URel
	case CatMultiword:
		return multiwordLabel(t, n)
	case CatLoose:
		return looseLabel(t, n)
	case CatSpecial:
		return specialLabel(t, n)
	case CatPunctuation:
		return "punct"
	}
	if n.Rel != "dep" {
		warns.Addf(t.ID, "unknown dependency relation %q", n.Rel)
		return n.URel
	}
	return "dep"
}

func (c *Converter) argumentLabel(t, gov, n *deptree.Token, warns *deptree.Warnings) string {
	switch {
	case n.Rel == "aux":
		if eg := t.EffGov(); eg != nil && eg.Class() == "ppas" {
			return "aux:pass"
		}
		return "aux"

	case n.Rel == "subj":
		return subjectLabel(t, gov, n)

	case n.Rel == "obj":
		hasMark := len(t.UChildrenWithURel("mark")) > 0
		if hasMark && (t.UPOS == "ADJ" && t.Class() == "ppas" && len(t.ChildrenWithRel("aux")) > 0 ||
			anyUPOS(t, "ADJ", "NOUN", "PRON", "PROPN", "VERB", "ADV")) ||
			t.UPOS == "VERB" {
			return "ccomp:obj"
		}
		if t.UPOS == "SYM" && (t.Form == "%" || t.Form == "$") ||
			anyUPOS(t, "PROPN", "NOUN", "PRON", "ADJ", "NUM", "X", "DET") && len(t.UChildrenWithURel("case")) == 0 ||
			anyUPOS(t, "ADV", "PART") {
			return "obj"
		}

	case strings.HasPrefix(n.Rel, "obj_"):
		return "iobj"

	case n.Rel == "comp":
		return c.complementLabel(t, gov, n, warns)

	case n.Rel == "comp_fin":
		return "ccomp"

	case n.Rel == "comp_inf":
		return "xcomp"

	case n.Rel == "comp_ag":
		return "obl:agent"

	case n.Rel == "pd" && t.Lemma != "być" && t.Lemma != "bywać":
		eg := t.EffGov()
		if t.UPOS == "NOUN" && eg != nil && (eg.Lemma == "być" || eg.Lemma == "bywać") && eg.UPOS == "NOUN" {
			return "nmod:pred"
		}
		return "xcomp:pred"

	case n.Rel == "refl" && (t.Lemma == "się" || t.Lemma == "siebie"):
		return "expl:pv"

	case n.Rel == "imp" && impAuxLemmas.Contains(t.Lemma):
		return "aux:imp"

	case n.Rel == "cond" && t.Lemma == "by":
		return "aux:cnd"

	case n.Rel == "aglt" && t.Lemma == "być":
		return "aux:clitic"
	}
	return n.URel
}

func subjectLabel(t, gov, n *deptree.Token) string {
	hasMark := len(t.UChildrenWithURel("mark")) > 0
	hasCase := len(t.UChildrenWithURel("case")) > 0

	if eg := t.EffGov(); eg != nil && eg.UPOS == "ADJ" && eg.Feat("Voice") == "Pass" {
		if hasMark && (t.UPOS == "VERB" ||
			anyUPOS(t, "ADJ", "NOUN", "PRON", "PROPN") && len(t.UChildrenWithURel("cop")) > 0) {
			return "csubj:pass"
		}
		return "nsubj:pass"
	}
	switch {
	case hasMark && anyUPOS(t, "ADJ", "NOUN", "PRON", "PROPN", "VERB", "ADV") ||
		t.UPOS == "VERB" && t.Class() != "inf":
		return "csubj"

	case anyUPOS(t, "PROPN", "NOUN", "PRON", "ADJ", "NUM", "X", "DET") && !hasCase:
		// the subject of a gerund is its agent
		if gov != nil && strings.HasPrefix(gov.Class(), "ger") {
			return "obl:agent"
		}
		return "nsubj"

	case anyUPOS(t, "PROPN", "NOUN", "PRON", "NUM", "DET") && hasCase ||
		t.UPOS == "SYM" && t.Form == "%":
		return "nsubj"

	case t.UPOS == "ADV" || t.UPOS == "VERB" && t.Class() == "inf":
		return "xcomp:subj"
	}
	return n.URel
}

func (c *Converter) complementLabel(t, gov, n *deptree.Token, warns *deptree.Warnings) string {
	hasMark := len(t.UChildrenWithURel("mark")) > 0

	switch {
	case gov != nil && anyUPOS(gov, "PROPN", "NOUN", "X", "NUM", "SYM"):
		switch {
		case gov.Class() == "ger" ||
			t.UPOS == "VERB" && hasMark ||
			t.UPOS == "ADJ" && hasMark && (len(t.ChildrenWithRel("aux")) > 0 || len(t.UChildrenWithURel("cop")) > 0):
			return c.verbComplementLabel(t, false, warns)
		case t.UPOS == "ADJ" && !hasMark:
			return "nmod:arg"
		case t.UPOS == "ADV" && hasMark:
			return c.verbComplementLabel(t, false, warns)
		case anyUPOS(t, "PROPN", "NOUN", "PRON", "X", "ADJ", "DET", "NUM", "SYM"):
			if hasMark {
				return c.verbComplementLabel(t, false, warns)
			}
			return "nmod:arg"
		}

	case gov != nil && gov.UPOS == "ADJ":
		switch {
		case anyUPOS(t, "PROPN", "NOUN", "PRON", "X", "ADJ", "DET", "NUM", "SYM"):
			if hasMark {
				return c.verbComplementLabel(t, false, warns)
			}
			return "obl:arg"
		case t.UPOS == "VERB" && hasMark:
			return c.verbComplementLabel(t, false, warns)
		}

	case gov != nil && (anyUPOS(gov, "VERB", "ADV") ||
		gov.UPOS == "PART" && complementGovParticles.Contains(gov.Lemma) ||
		gov.UPOS == "DET" && (gov.Lemma == "ten" || gov.Lemma == "taki") ||
		gov.UPOS == "INTJ"):
		return c.verbComplementLabel(t, false, warns)

	case gov != nil && gov.UPOS == "PRON":
		// "to" governing a complement forms a cleft construction
		if gov.Lemma == "to" {
			return c.verbComplementLabel(t, true, warns)
		}
		return "nmod:arg"
	}
	return n.URel
}

func (c *Converter) adjunctLabel(t, gov, n *deptree.Token, warns *deptree.Warnings) string {
	switch n.Rel {
	case "adjunct_compar":
		if t.UPOS == "ADJ" && t.Class() == "ppas" && len(t.ChildrenWithRel("aux")) > 0 && len(t.UChildrenWithURel("mark")) > 0 ||
			anyUPOS(t, "ADJ", "NOUN", "PRON", "PROPN") && len(t.UChildrenWithURel("mark")) > 0 && len(t.UChildrenWithURel("cop")) > 0 ||
			t.UPOS == "VERB" {
			return "advcl:cmpr"
		}
		return "obl:cmpr"

	case "adjunct_qt": // direct speech
		return "parataxis:obj"

	case "adjunct_comment":
		return "parataxis:insert"

	case "adjunct_rc":
		if gov != nil && gov.UPOS == "VERB" {
			return "advcl:relcl"
		}
		return "acl:relcl"

	case "adjunct_poss":
		if anyUPOS(t, "NOUN", "PRON", "PROPN", "ADJ") {
			return "nmod:poss"
		}
		if t.UPOS == "DET" {
			return "det:poss"
		}
		return n.URel

	case "adjunct_emph":
		return "advmod:emph"

	case "adjunct_title":
		if gov != nil && (gov.UPOS == "NOUN" || gov.UPOS == "X") {
			return "nmod"
		}
		return n.URel

	case "neg", "cneg":
		return "advmod:neg"

	case "poss":
		return n.URel
	}
	return c.modifierLabel(t, gov, n.Rel, warns)
}

func multiwordLabel(t, n *deptree.Token) string {
	switch n.Rel {
	case "mwe":
		if eg := t.EffGov(); eg != nil &&
			(eg.UPOS == "NUM" ||
				eg.UPOS == "DET" && eg.Class() == "num" && t.UPOS != "ADV" ||
				eg.UPOS == "NOUN" && eg.Lemma == "setka" ||
				(eg.Class() == "dig" || eg.Class() == "brev") && t.Class() == "dig") {
			return "flat"
		}
		if t.UPOS == "PUNCT" {
			return "punct"
		}
		return "fixed"

	case "ne":
		switch {
		case t.UPOS == "PROPN" || t.UPOS == "X":
			return "flat"
		case t.UPOS == "ADJ" || t.UPOS == "DET" && t.Class() == "adj":
			return "amod:flat"
		case t.UPOS == "NOUN":
			return "nmod:flat"
		case t.UPOS == "NUM":
			return "nummod:flat"
		}
		return n.URel

	case "ne_foreign":
		return "flat:foreign"
	}
	return n.URel
}

func looseLabel(t, n *deptree.Token) string {
	switch n.Rel {
	case "app":
		return "appos"
	case "vocative":
		return "vocative"
	case "item":
		if t.UPOS == "PUNCT" {
			return "punct"
		}
		return "list"
	}
	return n.URel
}

func specialLabel(t, n *deptree.Token) string {
	switch n.Rel {
	case "orphan":
		return "orphan"
	case "reparandum":
		return "reparandum"
	case "parataxis":
		return "parataxis"
	case "parataxis_restart":
		return "parataxis:restart"
	case "discourse":
		if t.Class() == "fill" || t.Class() == "interp" {
			return "discourse"
		}
		return n.URel
	case "mark_rel":
		// a placeholder resolved once all relative clauses are rewired
		return "mark_rel"
	case "root":
		return "root"
	}
	return n.URel
}

// verbComplementLabel labels complements in verbal contexts,
// distinguishing open and plain clausal complements and, with cleft
// set, the complements of cleft constructions.
func (c *Converter) verbComplementLabel(t *deptree.Token, cleft bool, warns *deptree.Warnings) string {
	if cleft {
		switch {
		case t.UPOS == "VERB":
			if t.Feat("VerbForm") == "Inf" && len(t.ChildrenWithRel("aux")) == 0 {
				return "xcomp:cleft"
			}
			return "ccomp:cleft"

		case t.UPOS == "ADJ":
			if len(t.ChildrenWithRel("aux")) > 0 || len(t.UChildrenWithURel("cop")) > 0 {
				return "ccomp:cleft"
			}

		case anyUPOS(t, "NOUN", "PRON", "PROPN"):
			cop := t.UChildrenWithURel("cop")
			if len(cop) > 0 {
				if len(cop) > 1 {
					warns.Addf(t.ID, "multiple copula dependents below %q", t.Form)
				}
				if cop[0].Class() == "inf" {
					return "xcomp:cleft"
				}
				return "ccomp:cleft"
			}
			if t.UPOS == "NOUN" || t.UPOS == "PROPN" {
				return "ccomp:cleft"
			}
		}
		return t.URel
	}

	switch {
	case t.UPOS == "VERB" && len(t.UChildrenWithURel("mark")) > 0:
		if t.Feat("VerbForm") == "Inf" && len(t.ChildrenWithRel("aux")) == 0 {
			return "xcomp"
		}
		return "ccomp"

	case t.UPOS == "ADJ" && len(t.UChildrenWithURel("mark")) > 0:
		return "ccomp"

	case t.UPOS == "ADV":
		if len(t.UChildrenWithURel("mark")) > 0 {
			return "ccomp"
		}
		return "advmod:arg"

	case anyUPOS(t, "ADJ", "NOUN", "PRON", "PROPN", "DET", "ADV"):
		if len(t.UChildrenWithURel("mark")) > 0 {
			cop := t.UChildrenWithURel("cop")
			if len(cop) > 0 {
				if len(cop) > 1 {
					warns.Addf(t.ID, "multiple copula dependents below %q", t.Form)
				}
				if cop[0].Class() == "inf" {
					return "xcomp"
				}
				return "ccomp"
			}
			return "ccomp"
		}
		return "obl:arg"

	case t.UPOS == "NUM" && len(t.UChildrenWithURel("case")) > 0:
		return "obl:arg"

	case (t.UPOS == "X" || t.UPOS == "SYM") && len(t.UChildrenWithURel("case")) > 0:
		return "obl:arg"

	case t.UPOS == "PART" && len(t.ChildrenWithRel("mwe")) > 0:
		return "obl:arg"

	// a stranded preposition stands in for its elided complement
	case t.UPOS == "ADP" && len(t.UChildrenWithURel("comp")) == 0:
		return "obl:orphan"
	}
	return t.URel
}

// modifierLabel labels adjuncts and attributes by the part of speech
// of both ends of the relation.
func (c *Converter) modifierLabel(t, gov *deptree.Token, label string, warns *deptree.Warnings) string {
	mark := t.UChildrenWithURel("mark")
	hasCase := len(t.UChildrenWithURel("case")) > 0

	switch {
	case gov != nil && anyUPOS(gov, "PROPN", "NOUN", "PRON", "X", "NUM", "SYM"):
		switch {
		case t.UPOS == "ADJ":
			if t.Class() == "ppas" || t.Class() == "pact" {
				if len(mark) > 0 {
					if jakoComparative(t, mark, warns) {
						return "amod"
					}
					return c.adverbialLabel(t, warns)
				}
				return "acl"
			}
			if len(t.UChildrenWithURel("cop")) > 0 {
				if len(mark) > 0 {
					return c.adverbialLabel(t, warns)
				}
				return "acl"
			}
			if len(mark) > 0 {
				if jakoComparative(t, mark, warns) && gov.Class() != "ger" && label == "adjunct_attrib" {
					return "amod"
				}
				return c.adverbialLabel(t, warns)
			}
			if hasCase {
				return "nmod"
			}
			return "amod"

		case anyUPOS(t, "NOUN", "PRON", "PROPN"):
			if len(t.UChildrenWithURel("cop")) > 0 {
				if len(mark) > 0 {
					return c.adverbialLabel(t, warns)
				}
				return "acl"
			}
			if strings.HasPrefix(label, "adjunct_") && len(gov.UChildrenWithURel("cop")) > 0 {
				return c.adverbialLabel(t, warns)
			}
			return "nmod"

		case t.UPOS == "DET" && t.Class() == "num":
			if len(t.UChildrenWithURel("cop")) > 0 && len(mark) > 0 {
				return c.adverbialLabel(t, warns)
			}
			return "nmod"

		case t.UPOS == "DET" && t.Class() == "adj":
			if len(mark) > 0 {
				if jakoComparative(t, mark, warns) {
					return "amod"
				}
				if hasCase {
					return "nmod"
				}
				return "amod"
			}
			if hasCase {
				return "nmod"
			}
			return "amod"

		case t.UPOS == "NUM":
			return "nmod"

		case t.UPOS == "SYM":
			return "nmod"

		case t.Class() == "brev" && t.UPOS != "CCONJ":
			switch {
			case amodAbbrevLemmas.Contains(t.Lemma):
				return "amod"
			case t.Lemma == "około":
				t.UPOS = "PART"
				return "advmod:emph"
			}
			return "nmod"

		case t.UPOS == "PART" && particleLemmas.Contains(t.Lemma):
			if len(mark) == 0 {
				return "advmod:emph"
			}
			return c.adverbialLabel(t, warns)

		case t.UPOS == "VERB":
			if label == "adjunct_attrib" {
				return "acl"
			}
			return c.adverbialLabel(t, warns)

		case t.UPOS == "ADV":
			if label == "adjunct_attrib" {
				return "amod"
			}
			return c.adverbialLabel(t, warns)

		case t.UPOS == "X" && (t.Class() == "dig" || t.Class() == "romandig" || t.Class() == "ign"):
			return "amod"

		case t.UPOS == "ADP" && label == "adjunct_attrib":
			return "nmod"
		}
		return c.adverbialLabel(t, warns)

	case gov != nil && gov.UPOS == "DET" && (gov.Class() == "num" || gov.Class() == "adj"):
		switch {
		case t.UPOS == "ADJ":
			if t.Class() == "ppas" || t.Class() == "pact" {
				return "acl"
			}
			if hasCase {
				return "nmod"
			}
			return "amod"

		case anyUPOS(t, "NOUN", "PRON", "PROPN", "NUM", "SYM") ||
			t.UPOS == "DET" && t.Class() == "adj" ||
			t.Class() == "brev":
			return "nmod"

		case t.UPOS == "PART" && len(mark) == 0:
			if particleLemmas.Contains(t.Lemma) {
				return "advmod:emph"
			}
			return "advmod"

		case t.UPOS == "VERB":
			return c.adverbialLabel(t, warns)

		case t.UPOS == "ADV":
			if label == "adjunct_attrib" {
				return "amod"
			}
			return c.adverbialLabel(t, warns)
		}
		return c.adverbialLabel(t, warns)

	case gov != nil && gov.UPOS == "ADJ":
		if gov.Class() == "ppas" || gov.Class() == "pact" {
			if t.UPOS == "ADJ" && t.ID < gov.ID && !hasCase && len(mark) == 0 &&
				len(gov.ChildrenWithRel("aux")) == 0 {
				return "amod"
			}
			return c.adverbialLabel(t, warns)
		}
		if t.UPOS == "ADJ" {
			if t.Class() == "ppas" || t.Class() == "pact" {
				if len(mark) > 0 {
					return c.adverbialLabel(t, warns)
				}
				return "acl"
			}
			if len(mark) > 0 {
				return c.adverbialLabel(t, warns)
			}
			if hasCase {
				return "nmod"
			}
			return "amod"
		}
		return c.adverbialLabel(t, warns)

	case gov != nil && anyUPOS(gov, "VERB", "ADV", "PART", "INTJ", "SCONJ"):
		return c.adverbialLabel(t, warns)

	case gov != nil && gov.UPOS == "ADP" && len(t.ChildrenWithRel("mwe")) > 0:
		switch {
		case t.UPOS == "ADP":
			return "advmod"
		case t.UPOS == "ADV":
			return c.adverbialLabel(t, warns)
		case t.UPOS == "PART" && particleLemmas.Contains(t.Lemma) && len(mark) == 0:
			return "advmod:emph"
		case t.UPOS == "CCONJ" && len(gov.ChildrenWithRel("conjunct")) == 0:
			return "cc"
		}
	}
	return c.adverbialLabel(t, warns)
}

// adverbialLabel distinguishes adverbial clauses from plain adverbial
// modifiers and obliques.
func (c *Converter) adverbialLabel(t *deptree.Token, warns *deptree.Warnings) string {
	mark := t.UChildrenWithURel("mark")

	switch {
	case t.UPOS == "VERB":
		return "advcl"

	case t.UPOS == "ADV":
		if len(mark) > 0 {
			return "advcl"
		}
		return "advmod"

	case t.UPOS == "ADP" && len(t.ChildrenWithRel("mwe")) > 0:
		return "advmod"

	case t.UPOS == "PART":
		if len(mark) == 0 {
			if particleLemmas.Contains(t.Lemma) {
				return "advmod:emph"
			}
			return "advmod"
		}
		return "advcl"

	case anyUPOS(t, "PRON", "NOUN", "X", "PROPN", "NUM", "SYM"):
		if len(mark) > 0 {
			if jakoComparative(t, mark, warns) {
				return "obl"
			}
			return "advcl"
		}
		return "obl"

	case t.UPOS == "ADJ":
		if t.Class() == "ppas" || t.Class() == "pact" {
			if len(mark) > 0 {
				if jakoComparative(t, mark, warns) {
					return "obl"
				}
				return "advcl"
			}
			if len(t.UChildrenWithURel("case")) > 0 {
				return "obl"
			}
			return "xcomp"
		}
		if len(mark) > 0 {
			if jakoComparative(t, mark, warns) {
				return "obl"
			}
			return "advcl"
		}
		return "obl"

	case t.UPOS == "DET" && (t.Class() == "num" || t.Class() == "adj"):
		if len(mark) > 0 {
			if jakoComparative(t, mark, warns) {
				return "obl"
			}
			return "advcl"
		}
		return "obl"

	case (t.Lemma == "to" || t.Lemma == "dopóty") && (t.Class() == "comp" || t.Class() == "conj"):
		children := t.Children()
		if len(children) == 0 {
			return "mark"
		}
		closed := true
		for _, ch := range children {
			if ch.UPOS != "PUNCT" && ch.UPOS != "PART" {
				closed = false
				break
			}
		}
		if closed {
			return "mark"
		}

	case t.UPOS == "CCONJ" && len(t.ChildrenWithRel("conjunct")) == 0:
		return "cc"
	}
	return t.URel
}

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

// Package morph converts the morphosyntactic annotation of a sentence
// (source tag classes and their slot values) into UD part-of-speech
// tags and features. The conversion runs in three stages: lemma-based
// overrides, class-specific rules and sentence-level postprocessing
// (UPOS corrections, multiword token grouping, SpaceAfter detection).
// The dependency structure of the sentence is never consulted; a few
// adverb rules read the linear neighbours of a token.
package morph

import (
	"udconv/deptree"
)

// ConvertTags runs the full morphosyntactic conversion over a
// sentence, token by token in input order, followed by the
// sentence-level postprocessing. Warnings are collected into warns
// (which may be nil).
func ConvertTags(s *deptree.Sentence, warns *deptree.Warnings) {
	for _, t := range s.Tokens {
		t.Lemma = normalizeMWELemma(t.Lemma)
		if t.Malformed {
			t.UPOS = "X"
			t.SetFeat("Foreign", "Yes")
			warns.Addf(t.ID, "unparseable tag %s kept as X", t.RawTag)
			continue
		}
		lemmaBasedUPOS(t, warns)
		convertByClass(t, warns)
	}
	postConvert(s)
}

// convertByClass applies the class-specific conversion rules to a
// token which has not been assigned a UPOS yet.
func convertByClass(t *deptree.Token, warns *deptree.Warnings) {
	if t.UPOS != "" {
		return
	}
	switch t.Class() {
	case "subst":
		convertNoun(t, warns)
	case "adj":
		convertAdjClass(t, warns)
	case "adja":
		convertAdja(t)
	case "adjb":
		convertAdjb(t, warns)
	case "adv":
		convertAdverb(t)
	case "num", "numcol":
		convertNumeral(t, warns)
	case "adjnum":
		convertAdjnum(t, warns)
	case "advnum":
		convertAdvnum(t)
	case "fin":
		convertFin(t)
	case "bedzie":
		convertBedzie(t)
	case "praet", "plusq":
		convertPraet(t, warns)
	case "impt":
		convertImpt(t)
	case "imps":
		convertImps(t)
	case "inf":
		convertInf(t)
	case "ger":
		convertGer(t, warns)
	case "pcon":
		convertConverb(t, "Pres")
	case "pant":
		convertConverb(t, "Past")
	case "pact":
		convertParticiple(t, "Act", warns)
	case "pactb":
		convertParticiple(t, "Act", warns)
		t.SetFeat("Variant", "Short")
	case "ppas", "ppraet":
		convertParticiple(t, "Pass", warns)
	case "ppasb":
		convertParticiple(t, "Pass", warns)
		t.SetFeat("Variant", "Short")
	case "fut":
		convertFut(t)
	case "aglt", "agltaor":
		convertAglt(t)
	case "winien":
		convertWinien(t, warns)
	case "pred":
		convertPred(t)
	case "ppron12":
		convertPpron12(t)
	case "ppron3":
		convertPpron3(t, warns)
	case "siebie":
		convertSiebie(t)
	case "prep":
		convertPrep(t)
	case "conj":
		t.UPOS = "CCONJ"
	case "comp":
		t.UPOS = "SCONJ"
	case "interj":
		t.UPOS = "INTJ"
	case "part":
		convertParticle(t)
	case "brev":
		convertAbbreviation(t)
	case "frag":
		convertFragment(t)
	case "interp":
		convertPunctuation(t)
	case "xxx", "ign":
		t.UPOS = "X"
		t.SetFeat("Foreign", "Yes")
	case "ignndm":
		t.UPOS = "X"
		t.SetFeat("Foreign", "Yes")
		warns.Addf(t.ID, "class ignndm has no dedicated rule, treating as foreign material")
	case "dig":
		t.UPOS = "X"
		t.SetFeat("NumForm", "Digit")
	case "romandig":
		t.UPOS = "X"
		t.SetFeat("NumForm", "Roman")
	case "sym":
		t.UPOS = "SYM"
	case "incert":
		t.UPOS = "X"
	default:
		warns.Addf(t.ID, "unrecognised part of speech %s of token %s", t.Class(), t.Form)
	}
}

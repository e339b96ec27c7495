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

package morph

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/czcorpus/cnc-gokit/collections"
	"udconv/deptree"
)

var (
	romanNumRe  = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)
	arabicNumRe = regexp.MustCompile(`^\d+([.,]\d+)*$`)

	comparativeLemmas = collections.NewSet(
		"niż", "niżeli", "anizeli", "niźli", "jakby", "jakoby", "niczym", "niby")

	noComparativeClasses = collections.NewSet("subst", "part", "adv")
	noJakClasses         = collections.NewSet("subst", "conj", "adv")
	noOperatorClasses    = collections.NewSet("subst", "part")
	noArabicClasses      = collections.NewSet("subst", "ign")
	noRomanClasses       = collections.NewSet(
		"interj", "part", "conj", "ign", "brev", "subst", "prep", "xxx")
)

// lemmaBasedUPOS applies the conversion rules which depend on the
// lemma rather than the tag class: comparative conjunctions, the
// postposition temu, arithmetic operators, numbers written in digits
// or Roman numerals and proper names. The first matching rule wins.
func lemmaBasedUPOS(t *deptree.Token, warns *deptree.Warnings) {
	switch {
	case comparativeLemmas.Contains(t.Lemma) && !noComparativeClasses.Contains(t.Class()):
		t.UPOS = "SCONJ"
		t.SetFeat("ConjType", "Comp")
	case t.Lemma == "jak" && !noJakClasses.Contains(t.Class()):
		t.UPOS = "SCONJ"
		t.SetFeat("ConjType", "Comp")
	case t.Lemma == "temu":
		t.UPOS = "ADP"
		t.AddFeats(map[string]string{"AdpType": "Post", "Case": "Acc"})
	case (t.Lemma == "plus" || t.Lemma == "minus") && !noOperatorClasses.Contains(t.Class()):
		t.UPOS = "CCONJ"
		t.SetFeat("ConjType", "Oper")
	case !noArabicClasses.Contains(t.Class()) && arabicNumRe.MatchString(t.Lemma):
		assignNumeral(t, "Digit", warns)
	case t.Lemma != "" && !noRomanClasses.Contains(t.Class()) && romanNumRe.MatchString(t.Lemma):
		assignNumeral(t, "Roman", warns)
	case startsUpper(t.Lemma):
		convertByClass(t, warns)
		if t.Class() == "subst" {
			t.UPOS = "PROPN"
		}
	}
}

// assignNumeral routes a token whose lemma is a digit or Roman numeral
// into the numeral treatment. Adjectival and plain numeral classes run
// their regular rules first and are then overridden; the NumForm
// feature is merged in any case.
func assignNumeral(t *deptree.Token, numForm string, warns *deptree.Warnings) {
	if t.UPOS == "" {
		switch t.Class() {
		case "adj":
			convertByClass(t, warns)
			t.UPOS = "ADJ"
			t.SetFeat("NumType", "Ord")
		case "num":
			convertByClass(t, warns)
			t.UPOS = "NUM"
			t.SetFeat("NumType", "Card")
		case "dig", "romandig", "xxx":
			t.UPOS = "X"
		default:
			warns.Addf(
				t.ID, "unrecognised part of speech %s of the numeral %s",
				t.Class(), t.Lemma,
			)
		}
	}
	t.SetFeat("NumForm", numForm)
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

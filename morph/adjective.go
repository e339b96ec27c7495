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
	"github.com/czcorpus/cnc-gokit/collections"
	"udconv/deptree"
	"udconv/tagset"
)

var (
	intRelDeterminers = collections.NewSet("jaki", "który")
	intDeterminers    = collections.NewSet("czyj", "czyjże")
	empDeterminers    = collections.NewSet("któryż", "jakiż")
	indDeterminers    = collections.NewSet(
		"któryś", "którykolwiek", "jakiś", "jakikolwiek", "niejaki", "niektóry",
		"niejeden", "pewien")
	totDeterminers  = collections.NewSet("każdy", "wszelki", "wszystek")
	possDeterminers = collections.NewSet("czyjś", "czyjkolwiek")
	demDeterminers  = collections.NewSet("ten", "tamten", "ów", "taki", "takiż", "tenże")
	prsDeterminers  = collections.NewSet("mój", "twój", "swój", "nasz", "wasz")
)

func convertDeterminer(t *deptree.Token, warns *deptree.Warnings) {
	t.UPOS = "DET"
	updateGenderNumber(t, warns)
	addCaseDegree(t)
}

func convertAdjective(t *deptree.Token, warns *deptree.Warnings) {
	t.UPOS = "ADJ"
	updateGenderNumber(t, warns)
	addCaseDegree(t)
}

func addCaseDegree(t *deptree.Token) {
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	if v := t.UDSlot(tagset.CatDegree); v != "" {
		t.SetFeat("Degree", v)
	}
}

// convertAdja handles the prefixal adjective form used in compounds
// (e.g. polsko- in polsko-niemiecki). It carries no inflection.
func convertAdja(t *deptree.Token) {
	t.UPOS = "ADJ"
	t.SetFeat("Hyph", "Yes")
}

// convertAdjb handles the short (predicative) adjective form.
func convertAdjb(t *deptree.Token, warns *deptree.Warnings) {
	convertAdjective(t, warns)
	t.SetFeat("Variant", "Short")
}

// convertAdjClass handles the class adj. Closed lemma sets become
// determiners with an appropriate PronType, possessives get their
// possessor features, the rest are plain adjectives.
func convertAdjClass(t *deptree.Token, warns *deptree.Warnings) {
	switch {
	case intRelDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Int,Rel")
	case intDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Int")
	case empDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Emp")
	case indDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Ind")
	case totDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Tot")
	case possDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("Poss", "Yes")
	case t.Lemma == "żaden":
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Neg")
	case t.Lemma == "niczyj":
		convertDeterminer(t, warns)
		t.AddFeats(map[string]string{"Poss": "Yes", "PronType": "Neg"})
	case demDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.SetFeat("PronType", "Dem")
	case prsDeterminers.Contains(t.Lemma):
		convertDeterminer(t, warns)
		t.AddFeats(map[string]string{"Poss": "Yes", "PronType": "Prs"})
		switch t.Lemma {
		case "mój":
			t.AddFeats(map[string]string{"Number[psor]": "Sing", "Person": "1"})
		case "twój":
			t.AddFeats(map[string]string{"Number[psor]": "Sing", "Person": "2"})
		case "swój":
			t.SetFeat("Reflex", "Yes")
		case "nasz":
			t.AddFeats(map[string]string{"Number[psor]": "Plur", "Person": "1"})
		case "wasz":
			t.AddFeats(map[string]string{"Number[psor]": "Plur", "Person": "2"})
		}
	default:
		convertAdjective(t, warns)
	}
}

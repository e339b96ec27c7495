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
	intNumerals = collections.NewSet("ile", "ileż", "iluż")
	demNumerals = collections.NewSet("tyle", "tyleż")
	indNumerals = collections.NewSet(
		"mało", "niemało", "mniej", "najmniej", "dużo", "niedużo", "wiele",
		"niewiele", "więcej", "najwięcej", "kilka", "kilkanaście",
		"kilkadziesiąt", "kilkaset", "parę", "paręnaście", "oba",
		"parędziesiąt", "nieco", "sporo", "trochę", "ileś", "ilekolwiek",
		"pełno", "dość", "dosyć")
)

// convertNumeral handles the classes num and numcol. Indefinite and
// interrogative quantifiers become determiners, the rest numerals
// written as words.
func convertNumeral(t *deptree.Token, warns *deptree.Warnings) {
	updateGenderNumber(t, warns)
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	switch {
	case intNumerals.Contains(t.Lemma):
		t.UPOS = "DET"
		t.AddFeats(map[string]string{"NumType": "Card", "PronType": "Int"})
	case demNumerals.Contains(t.Lemma):
		t.UPOS = "DET"
		t.AddFeats(map[string]string{"NumType": "Card", "PronType": "Dem"})
	case indNumerals.Contains(t.Lemma):
		t.UPOS = "DET"
		t.AddFeats(map[string]string{"NumType": "Card", "PronType": "Ind"})
	default:
		t.UPOS = "NUM"
		t.SetFeat("NumForm", "Word")
	}
}

// convertAdjnum handles ordinal numerals inflected like adjectives.
func convertAdjnum(t *deptree.Token, warns *deptree.Warnings) {
	convertAdjClass(t, warns)
	t.SetFeat("NumType", "Ord")
}

// convertAdvnum handles ordinal numerals used adverbially.
func convertAdvnum(t *deptree.Token) {
	convertAdverb(t)
	t.SetFeat("NumType", "Ord")
}

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
	"udconv/deptree"
	"udconv/tagset"
)

func personalPronoun(t *deptree.Token) {
	t.UPOS = "PRON"
	t.SetFeat("PronType", "Prs")
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	if v := t.UDSlot(tagset.CatPerson); v != "" {
		t.SetFeat("Person", v)
	}
}

func addAccentVariant(t *deptree.Token) {
	if !t.HasSlot(tagset.CatAccentability) {
		return
	}
	if t.Slot(tagset.CatAccentability) == "akc" {
		t.SetFeat("Variant", "Long")
	} else {
		t.SetFeat("Variant", "Short")
	}
}

// convertPpron12 handles first and second person pronouns.
func convertPpron12(t *deptree.Token) {
	personalPronoun(t)
	if v := t.UDSlot(tagset.CatNumber); v != "" {
		t.SetFeat("Number", v)
	}
	addAccentVariant(t)
}

// convertPpron3 handles third person pronouns, including the special
// post-prepositional forms (niego, nim, ...).
func convertPpron3(t *deptree.Token, warns *deptree.Warnings) {
	personalPronoun(t)
	updateGenderNumber(t, warns)
	if v := t.UDSlot(tagset.CatPostPrep); v != "" {
		t.SetFeat("PrepCase", v)
	}
	addAccentVariant(t)
}

// convertSiebie handles the reflexive pronoun siebie.
func convertSiebie(t *deptree.Token) {
	t.UPOS = "PRON"
	t.AddFeats(map[string]string{"PronType": "Prs", "Reflex": "Yes"})
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
}

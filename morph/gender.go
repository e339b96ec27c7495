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

// updateGenderNumber maps the gender and number slots of a token to
// the UD Gender/Animacy/Number features. The masculine animate
// distinction becomes Animacy, the collective genders p1/p2 become
// pluralia tantum and the subgender pt forces Number=Ptan on top of
// whatever the gender produced.
func updateGenderNumber(t *deptree.Token, warns *deptree.Warnings) {
	switch t.Slot(tagset.CatGender) {
	case "manim1":
		t.AddFeats(map[string]string{"Gender": "Masc", "Animacy": "Hum"})
		addNumber(t)
	case "manim2":
		t.AddFeats(map[string]string{"Gender": "Masc", "Animacy": "Nhum"})
		addNumber(t)
	case "m":
		t.SetFeat("Gender", "Masc")
		addNumber(t)
	case "f":
		t.SetFeat("Gender", "Fem")
		addNumber(t)
	case "n":
		t.SetFeat("Gender", "Neut")
		addNumber(t)
	case "p1":
		t.AddFeats(map[string]string{"Gender": "Masc", "Animacy": "Hum", "Number": "Ptan"})
	case "p2":
		t.AddFeats(map[string]string{"Gender": "Neut", "Number": "Ptan"})
	default:
		warns.Addf(
			t.ID, "unknown gender %q in token %s with class %s",
			t.Slot(tagset.CatGender), t.Form, t.Class(),
		)
	}
	if t.Slot(tagset.CatSubgender) == "pt" {
		t.SetFeat("Number", "Ptan")
	}
}

func addNumber(t *deptree.Token) {
	if v := t.UDSlot(tagset.CatNumber); v != "" {
		t.SetFeat("Number", v)
	}
}

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
	imperativeParticles    = collections.NewSet("niech", "niechaj", "niechże", "niechby")
	interrogativeParticles = collections.NewSet("czy", "czyż", "czyżby", "azaliż")
)

// convertParticle handles the class part. Several lemmas leave the
// particle category entirely: the reflexive marker się, the
// conditional/imperative auxiliaries and the relative co.
func convertParticle(t *deptree.Token) {
	switch {
	case t.Lemma == "się":
		t.UPOS = "PRON"
		t.AddFeats(map[string]string{"PronType": "Prs", "Reflex": "Yes"})
	case t.Lemma == "by":
		t.UPOS = "AUX"
	case imperativeParticles.Contains(t.Lemma):
		t.UPOS = "AUX"
	case t.Lemma == "nie":
		t.UPOS = "PART"
		t.SetFeat("Polarity", "Neg")
	case interrogativeParticles.Contains(t.Lemma):
		t.UPOS = "PART"
		t.SetFeat("PartType", "Int")
	case t.Lemma == "może":
		t.UPOS = "PART"
		t.SetFeat("PartType", "Mod")
	case t.Lemma == "co":
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Rel")
	default:
		t.UPOS = "PART"
	}
}

// convertPrep handles the class prep. The governed case is not a
// feature of the preposition itself, so it goes into MISC.
func convertPrep(t *deptree.Token) {
	t.UPOS = "ADP"
	t.SetFeat("AdpType", "Prep")
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetMiscFeat("Case", v)
	}
	if t.HasSlot(tagset.CatVocalicity) {
		if t.Slot(tagset.CatVocalicity) == "wok" {
			t.SetFeat("Variant", "Long")
		} else {
			t.SetFeat("Variant", "Short")
		}
	}
}

// convertFragment handles the class frag: bound words surviving only
// in fixed phrases. Most of them are foreign material; a closed set of
// native petrified forms (do cna, na oścież, ...) is not.
func convertFragment(t *deptree.Token) {
	t.UPOS = "X"
	if !nativeFragments.Contains(t.Lemma) {
		t.SetFeat("Foreign", "Yes")
	}
}

var nativeFragments = collections.NewSet(
	"dala", "niemiara", "naprzeciwka", "ciemku", "mimo", "oścież",
	"dwójnasób", "wespół", "oślep", "trochu", "młodu", "cna", "bezcen",
	"dzieju", "łupnia", "mać", "schwał", "wskroś", "wznak", "zacz",
	"przemian", "zamian", "1a.")

// convertPunctuation handles the class interp.
func convertPunctuation(t *deptree.Token) {
	t.UPOS = "PUNCT"
	switch t.Lemma {
	case "[", "(", "⟨", "{":
		t.AddFeats(map[string]string{"PunctType": "Brck", "PunctSide": "Ini"})
	case "]", ")", "⟩", "}":
		t.AddFeats(map[string]string{"PunctType": "Brck", "PunctSide": "Fin"})
	case ":":
		t.SetFeat("PunctType", "Colo")
	case ",":
		t.SetFeat("PunctType", "Comm")
	case "—", "- -", "--", "–", "‒", "―", "‐", "-":
		t.SetFeat("PunctType", "Dash")
	case "…":
		t.SetFeat("PunctType", "Elip")
	case "!":
		t.SetFeat("PunctType", "Excl")
	case ".":
		t.SetFeat("PunctType", "Peri")
	case "?":
		t.SetFeat("PunctType", "Qest")
	case ";":
		t.SetFeat("PunctType", "Semi")
	case `"`, "'", "˝", "<<", ">>", "«", "»", "''":
		t.SetFeat("PunctType", "Quot")
	case "„", "‘", "“":
		t.AddFeats(map[string]string{"PunctType": "Quot", "PunctSide": "Ini"})
	case "”", "’", "’’":
		t.AddFeats(map[string]string{"PunctType": "Quot", "PunctSide": "Fin"})
	case "/", "⁄":
		t.SetFeat("PunctType", "Slsh")
	case `\`:
		t.SetFeat("PunctType", "Blsh")
	}
}

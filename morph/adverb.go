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
	demAdverbs = collections.NewSet(
		"tak", "tu", "tutaj", "tam", "ówdzie", "stąd", "stamtąd", "tędy",
		"tamtędy", "wtedy", "wówczas", "wtenczas", "odtąd", "dotąd", "dlatego")
	indAdverbs = collections.NewSet(
		"dokąd", "skąd", "jakkolwiek", "gdziekolwiek", "kiedykolwiek",
		"którędykolwiek", "niekiedy", "gdzieniegdzie")
	negAdverbs = collections.NewSet("nigdy", "nigdzie")
	totAdverbs = collections.NewSet("zawsze", "wszędzie", "zewsząd")
	intAdverbs = collections.NewSet(
		"dlaczego", "czemu", "odkąd", "którędy", "dlaczegoż", "dlaczegóż",
		"czemuż", "dokądże", "skądże", "jakże", "którędyż", "gdzież", "kiedyż")
)

// convertAdverb handles the class adv. Pronominal adverbs get a
// PronType from closed lemma sets; kiedy, gdzie, jak and ile are
// disambiguated by their linear neighbours (rzadko kiedy, gdzie
// indziej, jak followed by a superlative, o ile).
func convertAdverb(t *deptree.Token) {
	t.UPOS = "ADV"
	if v := t.UDSlot(tagset.CatDegree); v != "" {
		t.SetFeat("Degree", v)
	}
	switch {
	case t.Lemma == "kiedy" || t.Lemma == "gdzie":
		if prev := t.Prev(); prev != nil && prev.Lemma == "rzadko" {
			return
		}
		if next := t.Next(); next != nil && next.Lemma == "indziej" {
			return
		}
		t.SetFeat("PronType", "Int,Rel")
	case t.Lemma == "jak":
		if next := t.Next(); next == nil || next.Slot(tagset.CatDegree) != "sup" {
			t.SetFeat("PronType", "Int,Rel")
		} else {
			t.SetFeat("PronType", "Int")
		}
	case t.Lemma == "ile":
		if prev := t.Prev(); prev == nil || prev.Lemma != "o" {
			t.SetFeat("PronType", "Int,Rel")
		}
	case demAdverbs.Contains(t.Lemma):
		t.SetFeat("PronType", "Dem")
	case indAdverbs.Contains(t.Lemma):
		t.SetFeat("PronType", "Ind")
	case negAdverbs.Contains(t.Lemma):
		t.SetFeat("PronType", "Neg")
	case totAdverbs.Contains(t.Lemma):
		t.SetFeat("PronType", "Tot")
	case intAdverbs.Contains(t.Lemma):
		t.SetFeat("PronType", "Int")
	}
}

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
	intRelNouns = collections.NewSet("co", "kto")
	intNouns    = collections.NewSet("któż", "cóż")
	indNouns    = collections.NewSet("ktoś", "ktokolwiek", "coś", "cokolwiek")
	negNouns    = collections.NewSet("nikt", "nic")
	demNouns    = collections.NewSet("to", "tamto")
	totNouns    = collections.NewSet("wszyscy", "wszystko")
)

// convertNoun handles the class subst. A closed set of lemmas becomes
// pronouns, everything else a noun.
func convertNoun(t *deptree.Token, warns *deptree.Warnings) {
	updateGenderNumber(t, warns)
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	switch {
	case intRelNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Int,Rel")
	case intNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Int")
	case indNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Ind")
	case negNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Neg")
	case demNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Dem")
	case totNouns.Contains(t.Lemma):
		t.UPOS = "PRON"
		t.SetFeat("PronType", "Tot")
	default:
		t.UPOS = "NOUN"
	}
}

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

package validation

import (
	"sort"

	"github.com/czcorpus/cnc-gokit/collections"
)

// featValues lists, per feature key, the values the conversion rules
// can produce. The tables track the conversion rules, not the full UD
// inventory - a value UD allows but the converter never emits counts
// as a violation here, which is what makes the check useful for
// catching conversion drift.
var featValues = map[string]*collections.Set[string]{
	"Abbr":         collections.NewSet("Yes"),
	"AdpType":      collections.NewSet("Prep", "Post"),
	"Animacy":      collections.NewSet("Hum", "Nhum"),
	"Aspect":       collections.NewSet("Imp", "Perf", "XXX"),
	"Case":         collections.NewSet("Nom", "Gen", "Dat", "Acc", "Ins", "Loc", "Voc"),
	"ConjType":     collections.NewSet("Comp", "Oper"),
	"Degree":       collections.NewSet("Pos", "Cmp", "Sup"),
	"Foreign":      collections.NewSet("Yes"),
	"Gender":       collections.NewSet("Masc", "Fem", "Neut"),
	"Hyph":         collections.NewSet("Yes"),
	"Mood":         collections.NewSet("Imp", "Ind"),
	"NumForm":      collections.NewSet("Digit", "Roman", "Word"),
	"NumType":      collections.NewSet("Card", "Ord"),
	"Number":       collections.NewSet("Sing", "Plur", "Dual", "Ptan"),
	"Number[psor]": collections.NewSet("Sing", "Plur"),
	"PartType":     collections.NewSet("Int", "Mod"),
	"Person":       collections.NewSet("0", "1", "2", "3"),
	"Polarity":     collections.NewSet("Pos", "Neg"),
	"Poss":         collections.NewSet("Yes"),
	"PrepCase":     collections.NewSet("Npr", "Pre"),
	"PronType": collections.NewSet(
		"Dem", "Emp", "Ind", "Int", "Int,Rel", "Neg", "Prs", "Rel", "Tot"),
	"PunctSide": collections.NewSet("Ini", "Fin"),
	"PunctType": collections.NewSet(
		"Blsh", "Brck", "Colo", "Comm", "Dash", "Elip", "Excl", "Peri",
		"Qest", "Quot", "Semi", "Slsh"),
	"Reflex":   collections.NewSet("Yes"),
	"Tense":    collections.NewSet("Fut", "Past", "Pres"),
	"Variant":  collections.NewSet("Long", "Short"),
	"VerbForm": collections.NewSet("Conv", "Fin", "Inf", "Part", "Vnoun"),
	"VerbType": collections.NewSet("Mod", "Quasi"),
	"Voice":    collections.NewSet("Act", "Pass"),
}

// featsOfUPOS lists, per UD category, the feature keys the conversion
// rules can attach to it. Auxiliaries share the verbal inventory plus
// the agglutinate Variant; adjectives cover the participles.
var featsOfUPOS = map[string]*collections.Set[string]{
	"ADJ": collections.NewSet(
		"Abbr", "Animacy", "Aspect", "Case", "Degree", "Gender", "Hyph",
		"NumForm", "NumType", "Number", "Polarity", "Variant", "VerbForm",
		"Voice"),
	"ADP": collections.NewSet("Abbr", "AdpType", "Case", "Variant"),
	"ADV": collections.NewSet("Abbr", "Degree", "NumType", "PronType"),
	"AUX": collections.NewSet(
		"Animacy", "Aspect", "Gender", "Mood", "Number", "Person",
		"Polarity", "Tense", "Variant", "VerbForm", "VerbType", "Voice"),
	"CCONJ": collections.NewSet("ConjType"),
	"DET": collections.NewSet(
		"Animacy", "Case", "Degree", "Gender", "NumType", "Number",
		"Number[psor]", "Person", "Poss", "PronType", "Reflex"),
	"INTJ": collections.NewSet[string](),
	"NOUN": collections.NewSet(
		"Abbr", "Animacy", "Aspect", "Case", "Gender", "Number",
		"Polarity", "VerbForm"),
	"NUM": collections.NewSet(
		"Animacy", "Case", "Gender", "NumForm", "NumType", "Number"),
	"PART": collections.NewSet("PartType", "Polarity"),
	"PRON": collections.NewSet(
		"Animacy", "Case", "Gender", "Number", "Person", "PrepCase",
		"PronType", "Reflex", "Variant"),
	"PROPN": collections.NewSet("Abbr", "Animacy", "Case", "Gender", "Number"),
	"PUNCT": collections.NewSet("PunctSide", "PunctType"),
	"SCONJ": collections.NewSet("ConjType"),
	"SYM":   collections.NewSet[string](),
	"VERB": collections.NewSet(
		"Animacy", "Aspect", "Gender", "Mood", "Number", "Person",
		"Polarity", "Tense", "VerbForm", "VerbType", "Voice"),
	"X": collections.NewSet("Foreign", "NumForm"),
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

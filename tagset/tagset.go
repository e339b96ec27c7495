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

// Package tagset defines the positional morphological tagset of the
// source treebank (MPDT) - the class inventory, the per-class slot
// layout and the closed value sets - along with a parser turning raw
// colon-separated tags into attribute records.
package tagset

// Category is a morphological category a tag slot can express
// (number, case, gender etc.).
type Category string

const (
	CatNumber        Category = "number"
	CatCase          Category = "case"
	CatGender        Category = "gender"
	CatPerson        Category = "person"
	CatDegree        Category = "degree"
	CatSubgender     Category = "subgender"
	CatAccentability Category = "accentability"
	CatPostPrep      Category = "post-prepositionality"
	CatVocalicity    Category = "vocalicity"
	CatAspect        Category = "aspect"
	CatAgglutination Category = "agglutination"
	CatNegation      Category = "negation"
	CatFullstop      Category = "fullstoppedness"
)

// valueCategory maps each legal slot value to the category it belongs
// to. The mapping is total over the tagset - a value outside this table
// cannot appear in a well-formed tag.
var valueCategory = map[string]Category{
	"sg": CatNumber,
	"pl": CatNumber,
	"du": CatNumber,

	"nom":  CatCase,
	"gen":  CatCase,
	"dat":  CatCase,
	"acc":  CatCase,
	"inst": CatCase,
	"loc":  CatCase,
	"voc":  CatCase,

	"m":      CatGender,
	"f":      CatGender,
	"n":      CatGender,
	"manim1": CatGender,
	"manim2": CatGender,
	"p1":     CatGender,
	"p2":     CatGender,

	"pri": CatPerson,
	"sec": CatPerson,
	"ter": CatPerson,

	"pos": CatDegree,
	"com": CatDegree,
	"sup": CatDegree,

	"pt": CatSubgender,

	"akc":  CatAccentability,
	"nakc": CatAccentability,
	"neut": CatAccentability,

	"praep":  CatPostPrep,
	"npraep": CatPostPrep,

	"wok":  CatVocalicity,
	"nwok": CatVocalicity,

	"perf":   CatAspect,
	"imperf": CatAspect,
	"biasp":  CatAspect,

	"agl":  CatAgglutination,
	"nagl": CatAgglutination,

	"aff": CatNegation,
	"neg": CatNegation,

	"pun":  CatFullstop,
	"npun": CatFullstop,
}

// udValues maps source slot values to their Universal Dependencies
// feature values. Values without an entry (gender codes, subgender,
// vocalicity etc.) are expanded by dedicated rules instead of a plain
// rename.
var udValues = map[string]string{
	"nom":  "Nom",
	"gen":  "Gen",
	"dat":  "Dat",
	"acc":  "Acc",
	"loc":  "Loc",
	"inst": "Ins",
	"voc":  "Voc",

	"sg": "Sing",
	"pl": "Plur",
	"du": "Dual",

	"pos": "Pos",
	"com": "Cmp",
	"sup": "Sup",

	"perf":   "Perf",
	"imperf": "Imp",
	// the source tagset marks biaspectual verbs but their UD value is
	// not settled yet; the placeholder is kept so they stay findable
	"biasp": "XXX",

	"pri": "1",
	"sec": "2",
	"ter": "3",

	"aff": "Pos",
	"neg": "Neg",

	"praep":  "Pre",
	"npraep": "Npr",

	"akc":  "Long",
	"nakc": "Short",
}

// CategoryOf returns the category a slot value belongs to. The second
// return value is false for values outside the tagset.
func CategoryOf(value string) (Category, bool) {
	cat, ok := valueCategory[value]
	return cat, ok
}

// UDValue translates a source slot value to its UD feature value.
// Values without a direct UD counterpart are returned unchanged.
func UDValue(value string) string {
	if v, ok := udValues[value]; ok {
		return v
	}
	return value
}

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

package tagset

import (
	"fmt"
	"sort"
)

// classSlots is the schema registry: for each tag class, the ordered
// list of categories its positional slots express. A tag may omit any
// trailing suffix of the slots.
var classSlots = map[string][]Category{
	"subst":    {CatNumber, CatCase, CatGender, CatSubgender},
	"num":      {CatNumber, CatCase, CatGender},
	"numcol":   {CatNumber, CatCase, CatGender},
	"adjnum":   {CatNumber, CatCase, CatGender, CatDegree},
	"advnum":   {CatDegree},
	"adj":      {CatNumber, CatCase, CatGender, CatDegree},
	"adja":     {},
	"adjb":     {CatNumber, CatCase, CatGender, CatDegree},
	"adv":      {CatDegree},
	"ppron12":  {CatNumber, CatCase, CatGender, CatPerson, CatAccentability},
	"ppron3":   {CatNumber, CatCase, CatGender, CatPerson, CatAccentability, CatPostPrep},
	"siebie":   {CatCase},
	"prep":     {CatCase, CatVocalicity},
	"conj":     {},
	"comp":     {},
	"part":     {CatVocalicity},
	"interj":   {},
	"fin":      {CatNumber, CatPerson, CatAspect},
	"bedzie":   {CatNumber, CatPerson, CatAspect},
	"praet":    {CatNumber, CatGender, CatAspect, CatAgglutination},
	"impt":     {CatNumber, CatPerson, CatAspect},
	"imps":     {CatAspect},
	"inf":      {CatAspect},
	"ger":      {CatNumber, CatCase, CatGender, CatAspect, CatNegation},
	"pcon":     {CatAspect},
	"pant":     {CatAspect},
	"pact":     {CatNumber, CatCase, CatGender, CatDegree, CatAspect, CatNegation},
	"pactb":    {CatNumber, CatCase, CatGender, CatDegree, CatAspect, CatNegation},
	"ppas":     {CatNumber, CatCase, CatGender, CatDegree, CatAspect, CatNegation},
	"ppasb":    {CatNumber, CatCase, CatGender, CatDegree, CatAspect, CatNegation},
	"ppraet":   {CatNumber, CatCase, CatGender, CatDegree, CatAspect, CatNegation},
	"fut":      {CatNumber, CatPerson, CatAspect},
	"plusq":    {CatNumber, CatGender, CatAspect},
	"aglt":     {CatNumber, CatPerson, CatAspect, CatVocalicity},
	"agltaor":  {CatNumber, CatPerson, CatAspect, CatVocalicity},
	"winien":   {CatNumber, CatGender, CatAspect},
	"pred":     {},
	"brev":     {CatFullstop},
	"frag":     {},
	"interp":   {},
	"xxx":      {},
	"dig":      {},
	"romandig": {},
	"ignndm":   {},
	"ign":      {},
	"sym":      {},
	"incert":   {},
}

// IsClass tests whether name is a registered tag class.
func IsClass(name string) bool {
	_, ok := classSlots[name]
	return ok
}

// SlotsOf returns the ordered slot categories of a class. The second
// return value is false for unregistered classes. The returned slice
// must not be modified.
func SlotsOf(class string) ([]Category, bool) {
	slots, ok := classSlots[class]
	return slots, ok
}

// Classes returns all registered class names in lexicographic order.
func Classes() []string {
	ans := make([]string, 0, len(classSlots))
	for name := range classSlots {
		ans = append(ans, name)
	}
	sort.Strings(ans)
	return ans
}

// ValidateSchema checks internal consistency of the registry: every
// slot category must be backed by a non-empty value set. A failure
// here means the compiled-in tables are broken and nothing can be
// converted.
func ValidateSchema() error {
	valuesByCat := make(map[Category]int)
	for _, cat := range valueCategory {
		valuesByCat[cat]++
	}
	for class, slots := range classSlots {
		for i, cat := range slots {
			if valuesByCat[cat] == 0 {
				return fmt.Errorf(
					"tagset schema: class %s slot %d refers to category %s with no legal values",
					class, i, cat)
			}
		}
	}
	return nil
}

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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFullTag(t *testing.T) {
	rec, err := Parse("subst:sg:nom:m")
	assert.NoError(t, err)
	assert.Equal(t, "subst", rec.Class)
	assert.Equal(t, "subst:sg:nom:m", rec.Raw)
	assert.Equal(t, []string{"sg", "nom", "m"}, rec.Fields)
	assert.Equal(t, "sg", rec.Value(CatNumber))
	assert.Equal(t, "nom", rec.Value(CatCase))
	assert.Equal(t, "m", rec.Value(CatGender))
	assert.False(t, rec.Has(CatSubgender))
}

func TestParseTrailingSlotsOptional(t *testing.T) {
	rec, err := Parse("ppron3:sg:gen:f:ter:akc")
	assert.NoError(t, err)
	assert.Equal(t, "akc", rec.Value(CatAccentability))
	assert.False(t, rec.Has(CatPostPrep))
}

func TestParseBareClass(t *testing.T) {
	rec, err := Parse("interp")
	assert.NoError(t, err)
	assert.Equal(t, "interp", rec.Class)
	assert.Empty(t, rec.Fields)
}

func TestParseUnknownClass(t *testing.T) {
	_, err := Parse("qub:nwok")
	assert.Error(t, err)
	assert.IsType(t, MalformedTagError{}, err)
}

func TestParseTooManyFields(t *testing.T) {
	_, err := Parse("adv:pos:pos")
	assert.Error(t, err)
	assert.IsType(t, MalformedTagError{}, err)
}

func TestParseIllegalValue(t *testing.T) {
	_, err := Parse("subst:sg:nom:m4")
	assert.Error(t, err)
	assert.IsType(t, MalformedTagError{}, err)
}

func TestParseValueInWrongSlot(t *testing.T) {
	_, err := Parse("subst:nom:sg:m")
	assert.Error(t, err)
	assert.IsType(t, MalformedTagError{}, err)
}

func TestParseEmptyTag(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestParseNoFieldsForSlotlessClass(t *testing.T) {
	_, err := Parse("conj:wok")
	assert.Error(t, err)
}

func TestUDValueRename(t *testing.T) {
	assert.Equal(t, "Ins", UDValue("inst"))
	assert.Equal(t, "Plur", UDValue("pl"))
	assert.Equal(t, "XXX", UDValue("biasp"))
	assert.Equal(t, "1", UDValue("pri"))
}

func TestUDValuePassthrough(t *testing.T) {
	assert.Equal(t, "pt", UDValue("pt"))
	assert.Equal(t, "wok", UDValue("wok"))
}

func TestRecordUDValue(t *testing.T) {
	rec, err := Parse("fin:sg:ter:imperf")
	assert.NoError(t, err)
	assert.Equal(t, "Sing", rec.UDValue(CatNumber))
	assert.Equal(t, "3", rec.UDValue(CatPerson))
	assert.Equal(t, "Imp", rec.UDValue(CatAspect))
	assert.Equal(t, "", rec.UDValue(CatCase))
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf("manim2")
	assert.True(t, ok)
	assert.Equal(t, CatGender, cat)
	_, ok = CategoryOf("m3")
	assert.False(t, ok)
}

func TestClassesSortedAndComplete(t *testing.T) {
	classes := Classes()
	assert.Len(t, classes, 47)
	assert.IsIncreasing(t, classes)
	assert.Contains(t, classes, "subst")
	assert.Contains(t, classes, "agltaor")
	assert.Contains(t, classes, "ignndm")
}

func TestValidateSchema(t *testing.T) {
	assert.NoError(t, ValidateSchema())
}

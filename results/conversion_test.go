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

package results

import (
	"encoding/json"
	"testing"

	"udconv/deptree"

	"github.com/stretchr/testify/assert"
)

func testReports() SentenceReports {
	return SentenceReports{
		{Index: 1},
		{Index: 2, Warnings: []deptree.Warning{{TokenID: 3, Message: "no attested instances for class frag"}}},
		{Index: 3, Skipped: true, Error: "governor cycle at token 2"},
	}
}

func TestReportCounts(t *testing.T) {
	reports := testReports()
	assert.Equal(t, 1, reports.NumClean())
	assert.Equal(t, 1, reports.NumWithWarnings())
	assert.Equal(t, 1, reports.NumSkipped())
}

func TestConversionResultMarshal(t *testing.T) {
	res := ConversionResult{
		Output:  "1\tkot\tkot\tNOUN\tsubst:sg:nom:m:manim2\tAnimacy=Nhum|Case=Nom|Gender=Masc|Number=Sing\t0\troot\t_\t_\n",
		Reports: testReports(),
	}
	raw, err := json.Marshal(&res)
	assert.NoError(t, err)
	var decoded ConversionResponse
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 3, decoded.NumSentences)
	assert.Equal(t, 1, decoded.NumClean)
	assert.Equal(t, 1, decoded.NumWithWarnings)
	assert.Equal(t, 1, decoded.NumSkipped)
	assert.Equal(t, res.Output, decoded.Output)
	assert.Equal(t, "conversion", decoded.ResultType.String())
	assert.Empty(t, decoded.Error)
}

func TestConversionResultMarshalError(t *testing.T) {
	res := ConversionResult{Error: assert.AnError}
	raw, err := json.Marshal(&res)
	assert.NoError(t, err)
	var decoded ConversionResponse
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, assert.AnError.Error(), decoded.Error)
	assert.NotNil(t, decoded.Reports)
	assert.Equal(t, 0, decoded.NumSentences)
}

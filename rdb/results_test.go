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

package rdb

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQueryJSONRoundTrip(t *testing.T) {
	q := Query{
		Channel: "udconvResults:foo",
		Func:    FuncConvert,
		Args:    json.RawMessage(`{"text":"1\tw\tw\tsubst\tsubst:sg:nom:f\t_\t0\troot\t1\t_","tagsOnly":true}`),
	}
	raw, err := q.ToJSON()
	assert.NoError(t, err)
	q2, err := DecodeQuery(raw)
	assert.NoError(t, err)
	assert.Equal(t, q.Func, q2.Func)
	assert.Equal(t, q.Channel, q2.Channel)
	var args ConversionArgs
	assert.NoError(t, json.Unmarshal(q2.Args, &args))
	assert.True(t, args.TagsOnly)
	assert.Contains(t, args.Text, "subst:sg:nom:f")
}

func TestCreateWorkerResult(t *testing.T) {
	res, err := CreateWorkerResult(ErrorResult{Error: "conversion exploded", Func: FuncConvert})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, ResultTypeError, res.ResultType)
	var value ErrorResult
	assert.NoError(t, json.Unmarshal(res.Value, &value))
	assert.Equal(t, "conversion exploded", value.Error)
}

func TestWorkerResultFuncError(t *testing.T) {
	res, err := CreateWorkerResult(ErrorResult{Error: "no such function", Func: "bogus"})
	assert.NoError(t, err)
	assert.EqualError(t, res.FuncError(), "no such function")
}

func TestWorkerResultFuncErrorOnRegularResult(t *testing.T) {
	wr := WorkerResult{
		ResultType: ResultTypeConversion,
		Value:      json.RawMessage(`{"output":"..."}`),
	}
	assert.NoError(t, wr.FuncError())
}

func TestErrorResultErrEmpty(t *testing.T) {
	var res ErrorResult
	assert.NoError(t, res.Err())
}

func TestJobLogMarshal(t *testing.T) {
	jl := JobLog{
		WorkerID:     "w1",
		Func:         FuncConvert,
		Begin:        time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
		End:          time.Date(2025, 5, 2, 10, 0, 2, 0, time.UTC),
		NumSentences: 12,
		NumTokens:    180,
		Err:          errors.New("one sentence skipped"),
	}
	raw, err := jl.ToJSON()
	assert.NoError(t, err)
	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "one sentence skipped", decoded["error"])
	assert.Equal(t, float64(12), decoded["numSentences"])
	assert.Equal(t, 2*time.Second, jl.TimeSpent())
}

func TestJobLogMarshalNoError(t *testing.T) {
	jl := JobLog{WorkerID: "w1", Func: FuncConvert}
	raw, err := jl.ToJSON()
	assert.NoError(t, err)
	assert.NotContains(t, raw, `"error"`)
}

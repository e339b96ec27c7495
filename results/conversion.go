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

// Package results defines the payloads conversion workers produce
// and the API server serves to its clients.
package results

import (
	"udconv/deptree"
	"udconv/rdb"

	"github.com/bytedance/sonic"
)

func errToStr(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}

// SentenceReport describes the outcome of converting a single
// sentence of a document.
type SentenceReport struct {

	// Index is the 1-based position of the sentence in the input.
	Index int `json:"index"`

	// Skipped is true when the sentence failed structurally and
	// its conversion was abandoned.
	Skipped bool `json:"skipped"`

	// Error describes why the sentence was skipped.
	Error string `json:"error,omitempty"`

	// NonProjectiveEdges counts the crossing edges of the source
	// tree, a useful hint when inspecting surprising conversions.
	NonProjectiveEdges int `json:"nonProjectiveEdges,omitempty"`

	Warnings deptree.Warnings `json:"warnings,omitempty"`
}

type SentenceReports []SentenceReport

// NumClean counts sentences converted without any recorded problem.
func (reports SentenceReports) NumClean() int {
	var ans int
	for _, r := range reports {
		if !r.Skipped && len(r.Warnings) == 0 {
			ans++
		}
	}
	return ans
}

// NumWithWarnings counts converted sentences with recorded warnings.
func (reports SentenceReports) NumWithWarnings() int {
	var ans int
	for _, r := range reports {
		if !r.Skipped && len(r.Warnings) > 0 {
			ans++
		}
	}
	return ans
}

// NumSkipped counts sentences abandoned for structural failure.
func (reports SentenceReports) NumSkipped() int {
	var ans int
	for _, r := range reports {
		if r.Skipped {
			ans++
		}
	}
	return ans
}

// AlwaysAsList returns an empty list in case the original
// value is nil.
func (reports SentenceReports) AlwaysAsList() SentenceReports {
	if reports != nil {
		return reports
	}
	return SentenceReports{}
}

// ----

// ConversionResponse is the wire format of ConversionResult
// shared by the job queue and the HTTP API.
type ConversionResponse struct {
	Output          string          `json:"output"`
	Reports         SentenceReports `json:"reports"`
	NumSentences    int             `json:"numSentences"`
	NumTokens       int             `json:"numTokens"`
	NumClean        int             `json:"numClean"`
	NumWithWarnings int             `json:"numWithWarnings"`
	NumSkipped      int             `json:"numSkipped"`
	TagsOnly        bool            `json:"tagsOnly"`
	ResultType      rdb.ResultType  `json:"resultType"`
	Error           string          `json:"error,omitempty"`
}

// ConversionResult is a converted document along with per-sentence
// reports. Skipped sentences are absent from Output but present in
// Reports so a client can always pair the two.
type ConversionResult struct {
	Output    string
	Reports   SentenceReports
	NumTokens int
	TagsOnly  bool
	Error     error
}

func (res ConversionResult) Err() error {
	return res.Error
}

func (res ConversionResult) Type() rdb.ResultType {
	return rdb.ResultTypeConversion
}

func (res *ConversionResult) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(ConversionResponse{
		Output:          res.Output,
		Reports:         res.Reports.AlwaysAsList(),
		NumSentences:    len(res.Reports),
		NumTokens:       res.NumTokens,
		NumClean:        res.Reports.NumClean(),
		NumWithWarnings: res.Reports.NumWithWarnings(),
		NumSkipped:      res.Reports.NumSkipped(),
		TagsOnly:        res.TagsOnly,
		ResultType:      res.Type(),
		Error:           errToStr(res.Error),
	})
}

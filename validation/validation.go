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

// Package validation checks converted documents against the closed
// inventory of UD categories and features the conversion can produce.
// Three things are tested per token: the POS is a known UD category,
// every feature carries a producible value, and the feature keys are
// legal for the POS. The checks never mutate their input.
package validation

import (
	"fmt"

	"udconv/conll"
)

// Violation is a single breach of the UD legality rules found in a
// converted document.
type Violation struct {
	Sentence int    `json:"sentence"`
	TokenID  string `json:"tokenId"`
	Problem  string `json:"problem"`
}

func (v Violation) String() string {
	return fmt.Sprintf("sentence %d, token %s: %s", v.Sentence, v.TokenID, v.Problem)
}

// Report sums up a validation run over a whole document.
type Report struct {
	NumSentences int         `json:"numSentences"`
	NumTokens    int         `json:"numTokens"`
	Violations   []Violation `json:"violations"`
}

// OK tests whether the document passed without violations.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// CheckDocument validates all rows of a converted document. Multiword
// range rows carry no annotation of their own and are skipped.
func CheckDocument(sentences [][]conll.UDRow) *Report {
	report := &Report{NumSentences: len(sentences)}
	for i, rows := range sentences {
		for _, row := range rows {
			if row.IsRange() {
				continue
			}
			report.NumTokens++
			for _, problem := range CheckToken(row.UPOS, row.Feats) {
				report.Violations = append(report.Violations, Violation{
					Sentence: i + 1,
					TokenID:  row.ID,
					Problem:  problem,
				})
			}
		}
	}
	return report
}

// CheckToken validates a single POS/feature combination and returns a
// description of every problem found.
func CheckToken(upos string, feats map[string]string) []string {
	var problems []string
	legalKeys, knownPOS := featsOfUPOS[upos]
	if !knownPOS {
		problems = append(problems, fmt.Sprintf("unknown POS category %s", upos))
	}
	for _, key := range sortedKeys(feats) {
		value := feats[key]
		legal, knownKey := featValues[key]
		if !knownKey {
			problems = append(problems, fmt.Sprintf("unknown feature %s", key))
			continue
		}
		if !legal.Contains(value) {
			problems = append(
				problems, fmt.Sprintf("illegal value %s of feature %s", value, key))
		}
		if knownPOS && !legalKeys.Contains(key) {
			problems = append(
				problems, fmt.Sprintf("feature %s not allowed for POS %s", key, upos))
		}
	}
	return problems
}

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

// Package pipeline drives the conversion of whole documents: reading
// the source tabular format, running the morphosyntax pass and the two
// dependency passes over each sentence and writing the UD output.
// Sentences are independent of each other; a structural failure skips
// the affected sentence and the run continues.
package pipeline

import (
	"fmt"
	"strings"

	"udconv/conll"
	"udconv/deprel"
	"udconv/deptree"
	"udconv/morph"
	"udconv/results"
	"udconv/uderror"

	"github.com/rs/zerolog/log"
)

// Pipeline converts documents sentence by sentence. A single instance
// may be shared by concurrent goroutines; the underlying relation
// table is read-only after construction.
type Pipeline struct {
	conv     *deprel.Converter
	tagsOnly bool
}

// New creates a pipeline around the given relation table (nil selects
// the built-in one). With tagsOnly, the dependency passes are skipped
// and the raw relations are passed through to the output.
func New(table *deprel.Table, tagsOnly bool) *Pipeline {
	return &Pipeline{
		conv:     deprel.NewConverter(table),
		tagsOnly: tagsOnly,
	}
}

// ConvertEntries converts previously read entries in input order.
// Entries failed on reading are reported as skipped; the returned
// sentence list contains the remaining (converted) sentences.
func (p *Pipeline) ConvertEntries(entries []conll.Entry) ([]*deptree.Sentence, results.SentenceReports) {
	sentences := make([]*deptree.Sentence, 0, len(entries))
	reports := make(results.SentenceReports, 0, len(entries))
	for _, entry := range entries {
		if entry.Err != nil {
			log.Debug().
				Int("sentence", entry.Index).
				Err(entry.Err).
				Msg("skipping structurally broken sentence")
			reports = append(reports, results.SentenceReport{
				Index:   entry.Index,
				Skipped: true,
				Error:   entry.Err.Error(),
			})
			continue
		}
		nonProj := entry.Sentence.NonProjectiveEdges()
		var warns deptree.Warnings
		if err := p.convertSentence(entry.Sentence, &warns); err != nil {
			log.Error().
				Int("sentence", entry.Index).
				Err(err).
				Msg("conversion failed, skipping sentence")
			reports = append(reports, results.SentenceReport{
				Index:   entry.Index,
				Skipped: true,
				Error:   err.Error(),
			})
			continue
		}
		sentences = append(sentences, entry.Sentence)
		reports = append(reports, results.SentenceReport{
			Index:              entry.Index,
			NonProjectiveEdges: nonProj,
			Warnings:           warns,
		})
	}
	return sentences, reports
}

// convertSentence runs the enabled passes over a single sentence.
// A panicking conversion rule skips just the affected sentence.
func (p *Pipeline) convertSentence(s *deptree.Sentence, warns *deptree.Warnings) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = uderror.RecoveredError{Msg: uderror.PanicValueToErr(r).Error()}
		}
	}()
	morph.ConvertTags(s, warns)
	if !p.tagsOnly {
		p.conv.ConvertSentence(s, warns)
	}
	return nil
}

// ConvertText converts a whole document passed as a string. All the
// failure modes are captured in the returned result; the worker and
// the HTTP handlers just serialize it.
func (p *Pipeline) ConvertText(text string) *results.ConversionResult {
	entries, err := conll.Read(strings.NewReader(text))
	if err != nil {
		return &results.ConversionResult{
			TagsOnly: p.tagsOnly,
			Error:    uderror.InputError{Msg: fmt.Sprintf("failed to read document: %s", err)},
		}
	}
	sentences, reports := p.ConvertEntries(entries)
	var numTokens int
	for _, s := range sentences {
		numTokens += len(s.Tokens)
	}
	var buf strings.Builder
	if err := conll.Write(&buf, sentences); err != nil {
		return &results.ConversionResult{
			TagsOnly: p.tagsOnly,
			Error:    uderror.InternalError{Msg: fmt.Sprintf("failed to write document: %s", err)},
		}
	}
	return &results.ConversionResult{
		Output:    buf.String(),
		Reports:   reports,
		NumTokens: numTokens,
		TagsOnly:  p.tagsOnly,
	}
}

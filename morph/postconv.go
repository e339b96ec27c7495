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
	"strings"

	"github.com/rs/zerolog/log"
	"udconv/deptree"
)

// postConvert runs the sentence-level cleanup after the per-token
// conversion. The text-based steps require the raw sentence text from
// metadata and are skipped without it.
func postConvert(s *deptree.Sentence) {
	correctAuxiliaries(s)
	if text := s.MetaValue("text"); text != "" {
		addMWERanges(s, text)
		markSpaceAfter(s, text)
	}
}

// correctAuxiliaries downgrades verbs attached via the aux relation to
// AUX. The tag alone cannot tell an auxiliary use apart from a main
// verb, the attachment can.
func correctAuxiliaries(s *deptree.Sentence) {
	for _, t := range s.Tokens {
		if t.UPOS == "VERB" && t.Rel == "aux" {
			t.UPOS = "AUX"
			log.Debug().
				Int("tokenId", t.ID).
				Str("form", t.Form).
				Msg("upos changed from VERB to AUX")
		}
	}
}

func cliticLike(t *deptree.Token) bool {
	return t.UPOS == "AUX" || t.UPOS == "PART" ||
		(t.UPOS == "PRON" && t.Feat("Variant") == "Short")
}

// addMWERanges groups tokens written together in the raw text into
// multiword token ranges: a head word directly followed by clitic-like
// elements (AUX, PART or a short-variant PRON) with no intervening
// space. Matching works on bytes; forms not found in the text are
// skipped without advancing the scan position.
func addMWERanges(s *deptree.Sentence, text string) {
	tokens := s.Tokens
	pointer := 0
	for i := 0; i < len(tokens); i++ {
		first := tokens[i]
		pos := strings.Index(text[pointer:], first.Form)
		if pos == -1 {
			continue
		}
		pointer += pos + len(first.Form)
		groupEnd := i
		for groupEnd+1 < len(tokens) && pointer < len(text) {
			if text[pointer] == ' ' {
				break
			}
			if first.UPOS == "PUNCT" || !cliticLike(tokens[groupEnd+1]) {
				break
			}
			groupEnd++
			pointer += len(tokens[groupEnd].Form)
		}
		if groupEnd > i {
			s.Ranges = append(s.Ranges, newRange(tokens[i:groupEnd+1]))
			i = groupEnd
		}
	}
}

func newRange(group []*deptree.Token) deptree.Range {
	var form, translit strings.Builder
	for _, t := range group {
		form.WriteString(t.Form)
		if tr := t.MiscFeat("Translit"); tr != "" {
			translit.WriteString(tr)
		} else {
			translit.WriteString(t.Form)
		}
	}
	return deptree.Range{
		FirstID:  group[0].ID,
		LastID:   group[len(group)-1].ID,
		Form:     form.String(),
		Translit: translit.String(),
	}
}

// markSpaceAfter matches token forms against the raw text and records
// SpaceAfter=No wherever no space follows. Tokens covered by a
// multiword range are excluded; the last scanned token never carries
// the mark.
func markSpaceAfter(s *deptree.Sentence, text string) {
	scan := make([]*deptree.Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if !s.RangeCovers(t.ID) {
			scan = append(scan, t)
		}
	}
	pointer := 0
	for i, t := range scan {
		pos := strings.Index(text[pointer:], t.Form)
		if pos == -1 {
			continue
		}
		pointer += pos + len(t.Form)
		if i == len(scan)-1 {
			t.DropMiscFeat("SpaceAfter")
			continue
		}
		if pointer >= len(text) || text[pointer] != ' ' {
			t.SetMiscFeat("SpaceAfter", "No")
		} else {
			t.DropMiscFeat("SpaceAfter")
			pointer++
		}
	}
}

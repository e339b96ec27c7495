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

package main

import (
	"fmt"
	"os"

	"udconv/conll"
	"udconv/validation"

	"github.com/rs/zerolog/log"
)

func runValidate(srcPath string) {
	if srcPath == "" {
		log.Fatal().Msg("validate action requires a document path")
		return
	}
	sentences, err := conll.ReadUDFile(srcPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read document")
		return
	}
	report := validation.CheckDocument(sentences)
	for _, v := range report.Violations {
		fmt.Println(v)
	}
	log.Info().
		Int("sentences", report.NumSentences).
		Int("tokens", report.NumTokens).
		Int("violations", len(report.Violations)).
		Msg("validation finished")
	if !report.OK() {
		os.Exit(2)
	}
}

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
	"os"
	"time"

	"udconv/cnf"
	"udconv/pipeline"

	"github.com/rs/zerolog/log"
)

func runConvert(conf *cnf.Conf, srcPath, outPath string, tagsOnly bool, metaPath string) {
	if srcPath == "" || outPath == "" {
		log.Fatal().Msg("convert action requires a source and an output path")
		return
	}
	table := loadRelationTable(conf)
	t0 := time.Now()
	summary, err := pipeline.New(table, tagsOnly).RunBatch(
		srcPath,
		outPath,
		pipeline.BatchOptions{
			MetaPath:    metaPath,
			MaxParallel: conf.MaxNumConcurrentJobs,
		},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
		return
	}
	log.Info().
		Int("files", summary.NumFiles).
		Int("clean", summary.NumClean).
		Int("withWarnings", summary.NumWithWarnings).
		Int("skipped", summary.NumSkipped).
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Msg("conversion finished")
	if summary.NumSkipped > 0 {
		os.Exit(2)
	}
}

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

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"udconv/conll"
	"udconv/results"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	srcFileSuffix = ".conll"
	outFileSuffix = ".conllu"

	dfltMaxParallelFiles = 4
)

// BatchOptions configure a single batch conversion run.
type BatchOptions struct {

	// MetaPath is a path to a JSON metadata document. Metadata can
	// only be attached in the single file mode where sentence
	// positions are unambiguous.
	MetaPath string

	// MaxParallel limits the number of files converted at once.
	// Zero selects the default.
	MaxParallel int
}

// BatchSummary aggregates per-sentence outcomes over a whole run.
type BatchSummary struct {
	NumFiles        int
	NumClean        int
	NumWithWarnings int
	NumSkipped      int
}

func (bs *BatchSummary) add(reports results.SentenceReports) {
	bs.NumFiles++
	bs.NumClean += reports.NumClean()
	bs.NumWithWarnings += reports.NumWithWarnings()
	bs.NumSkipped += reports.NumSkipped()
}

// RunBatch converts a file or a directory of files. Directory entries
// are processed in lexicographic name order with a bounded number of
// files in flight; sentences within a file always keep their input
// order. The returned error means the run could not complete (as
// opposed to individual sentences being skipped, which the summary
// reports).
func (p *Pipeline) RunBatch(srcPath, outPath string, opts BatchOptions) (*BatchSummary, error) {
	isDir, err := fs.IsDir(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", srcPath, err)
	}
	if !isDir {
		return p.runSingleFile(srcPath, outPath, opts)
	}
	if opts.MetaPath != "" {
		return nil, fmt.Errorf("metadata attachment requires a single input file")
	}

	items, err := os.ReadDir(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", srcPath, err)
	}
	if err := os.MkdirAll(outPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outPath, err)
	}
	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = dfltMaxParallelFiles
	}

	fileReports := make([]results.SentenceReports, len(items))
	var eg errgroup.Group
	eg.SetLimit(maxParallel)
	for i, item := range items {
		if item.IsDir() || !strings.HasSuffix(item.Name(), srcFileSuffix) {
			continue
		}
		src := filepath.Join(srcPath, item.Name())
		out := filepath.Join(outPath, strings.TrimSuffix(item.Name(), srcFileSuffix)+outFileSuffix)
		eg.Go(func() error {
			reports, err := p.convertFile(src, out, nil)
			if err != nil {
				return err
			}
			fileReports[i] = reports
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summary := new(BatchSummary)
	for _, reports := range fileReports {
		if reports != nil {
			summary.add(reports)
		}
	}
	return summary, nil
}

func (p *Pipeline) runSingleFile(srcPath, outPath string, opts BatchOptions) (*BatchSummary, error) {
	var meta Meta
	if opts.MetaPath != "" {
		var err error
		meta, err = LoadMeta(opts.MetaPath)
		if err != nil {
			return nil, err
		}
	}
	reports, err := p.convertFile(srcPath, outPath, meta)
	if err != nil {
		return nil, err
	}
	summary := new(BatchSummary)
	summary.add(reports)
	return summary, nil
}

func (p *Pipeline) convertFile(srcPath, outPath string, meta Meta) (results.SentenceReports, error) {
	entries, err := conll.ReadFile(srcPath)
	if err != nil {
		return nil, err
	}
	meta.Apply(entries)
	sentences, reports := p.ConvertEntries(entries)
	if err := conll.WriteFile(outPath, sentences); err != nil {
		return nil, err
	}
	log.Info().
		Str("file", srcPath).
		Int("sentences", len(reports)).
		Int("skipped", reports.NumSkipped()).
		Msg("converted file")
	return reports, nil
}

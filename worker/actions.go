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

package worker

import (
	"udconv/pipeline"
	"udconv/rdb"
	"udconv/results"
)

// convertDocument runs the conversion pipeline on a single document
// and records the document size in the current job log.
func (w *Worker) convertDocument(args rdb.ConversionArgs) *results.ConversionResult {
	ans := pipeline.New(w.table, args.TagsOnly).ConvertText(args.Text)
	if w.currJobLog != nil {
		w.currJobLog.NumSentences = len(ans.Reports)
		w.currJobLog.NumTokens = ans.NumTokens
	}
	return ans
}

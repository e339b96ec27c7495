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

const (
	FuncConvert = "convert"
)

// ConversionArgs are the arguments of the `convert` job function.
type ConversionArgs struct {

	// Text is a whole source document in the tabular dependency
	// format (tokens on tab-separated lines, sentences separated
	// by blank lines).
	Text string `json:"text"`

	// TagsOnly restricts the processing to the morphosyntax pass;
	// dependency relations are passed through unconverted.
	TagsOnly bool `json:"tagsOnly"`
}

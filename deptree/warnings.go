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

package deptree

import "fmt"

// Warning is a non-fatal conversion problem tied to a single token.
// Warnings never stop the conversion; they are collected and reported
// so the output can be reviewed.
type Warning struct {
	TokenID int    `json:"tokenId"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("token %d: %s", w.TokenID, w.Message)
}

// Warnings collects conversion warnings for a single sentence. A nil
// collector discards everything, so the conversion passes can be
// called without one.
type Warnings []Warning

// Addf records a warning for the given token.
func (w *Warnings) Addf(tokenID int, format string, args ...any) {
	if w == nil {
		return
	}
	*w = append(*w, Warning{TokenID: tokenID, Message: fmt.Sprintf(format, args...)})
}

// Empty tests whether no warning has been recorded.
func (w Warnings) Empty() bool {
	return len(w) == 0
}

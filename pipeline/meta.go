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
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"udconv/conll"
)

// Meta holds per-sentence metadata the way the source JSON documents
// provide it: an object per sentence, keyed by the 1-based sentence
// position rendered as a string.
type Meta map[string]map[string]any

func LoadMeta(path string) (Meta, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}
	var ans Meta
	if err := json.Unmarshal(rawData, &ans); err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}
	return ans, nil
}

// Apply attaches metadata to the matching entries. It must run before
// the conversion so the `text` entry can drive multiword grouping and
// SpaceAfter detection. Within a sentence, keys are attached in
// alphabetical order to keep the output deterministic.
func (m Meta) Apply(entries []conll.Entry) {
	if m == nil {
		return
	}
	for _, entry := range entries {
		if entry.Sentence == nil {
			continue
		}
		values, ok := m[strconv.Itoa(entry.Index)]
		if !ok {
			continue
		}
		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			entry.Sentence.SetMeta(k, metaValueToStr(values[k]))
		}
	}
}

func metaValueToStr(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case float64:
		if tv == float64(int64(tv)) {
			return strconv.FormatInt(int64(tv), 10)
		}
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(tv)
	default:
		return fmt.Sprintf("%v", tv)
	}
}

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

package deprel

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category identifies the broad group a raw relation belongs to; the
// group decides which set of conversion rules applies to tokens
// attached via the relation.
type Category string

const (
	CatArguments    Category = "arguments"
	CatAdjuncts     Category = "adjuncts"
	CatCoordination Category = "coordination"
	CatMultiword    Category = "multiword"
	CatLoose        Category = "loose"
	CatSpecial      Category = "special"
	CatPunctuation  Category = "punctuation"
	CatFallback     Category = "fallback"
)

func (c Category) Validate() error {
	switch c {
	case CatArguments, CatAdjuncts, CatCoordination, CatMultiword,
		CatLoose, CatSpecial, CatPunctuation, CatFallback:
		return nil
	}
	return fmt.Errorf("unknown relation category: %s", c)
}

// Table partitions the closed inventory of raw relations into
// conversion categories. Labels maps exact relation names while
// Prefixes catches open subtype families (adjunct_*, obj_*); an exact
// entry always wins over a prefix. Relations missing from both fall
// into the fallback category.
type Table struct {
	Labels   map[string]Category `json:"labels"`
	Prefixes map[string]Category `json:"prefixes"`
}

// CategoryOf resolves the category of a raw relation label.
func (t *Table) CategoryOf(label string) Category {
	if cat, ok := t.Labels[label]; ok {
		return cat
	}
	for prefix, cat := range t.Prefixes {
		if strings.HasPrefix(label, prefix) {
			return cat
		}
	}
	return CatFallback
}

// Validate checks that every entry of the table names a known
// category.
func (t *Table) Validate() error {
	for label, cat := range t.Labels {
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("label %s: %w", label, err)
		}
	}
	for prefix, cat := range t.Prefixes {
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("prefix %s: %w", prefix, err)
		}
	}
	return nil
}

// LoadTable reads a relation table from a JSON file. This allows
// deployments to adjust the partition without rebuilding the binary.
func LoadTable(path string) (*Table, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load relation table: %w", err)
	}
	var table Table
	if err := json.Unmarshal(rawData, &table); err != nil {
		return nil, fmt.Errorf("failed to load relation table: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("failed to load relation table: %w", err)
	}
	return &table, nil
}

// DefaultTable returns the built-in partition of the relation
// inventory of the source treebank.
func DefaultTable() *Table {
	return &Table{
		Labels: map[string]Category{
			"subj":              CatArguments,
			"obj":               CatArguments,
			"comp":              CatArguments,
			"comp_fin":          CatArguments,
			"comp_inf":          CatArguments,
			"comp_ag":           CatArguments,
			"pd":                CatArguments,
			"aux":               CatArguments,
			"refl":              CatArguments,
			"imp":               CatArguments,
			"cond":              CatArguments,
			"aglt":              CatArguments,
			"adjunct":           CatAdjuncts,
			"adjunct_attrib":    CatAdjuncts,
			"adjunct_compar":    CatAdjuncts,
			"adjunct_comment":   CatAdjuncts,
			"adjunct_emph":      CatAdjuncts,
			"adjunct_poss":      CatAdjuncts,
			"adjunct_qt":        CatAdjuncts,
			"adjunct_rc":        CatAdjuncts,
			"adjunct_title":     CatAdjuncts,
			"poss":              CatAdjuncts,
			"neg":               CatAdjuncts,
			"cneg":              CatAdjuncts,
			"conjunct":          CatCoordination,
			"pre_coord":         CatCoordination,
			"mwe":               CatMultiword,
			"ne":                CatMultiword,
			"ne_foreign":        CatMultiword,
			"app":               CatLoose,
			"vocative":          CatLoose,
			"item":              CatLoose,
			"orphan":            CatSpecial,
			"reparandum":        CatSpecial,
			"parataxis":         CatSpecial,
			"parataxis_restart": CatSpecial,
			"discourse":         CatSpecial,
			"mark_rel":          CatSpecial,
			"root":              CatSpecial,
			"punct":             CatPunctuation,
			"abbrev_punct":      CatPunctuation,
			"dep":               CatFallback,
		},
		Prefixes: map[string]Category{
			"adjunct_": CatAdjuncts,
			"obj_":     CatArguments,
		},
	}
}

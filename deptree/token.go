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

import (
	"strings"

	"udconv/tagset"
)

// Token carries both the source-side annotation of a single token and
// its converted UD counterpart. The UD side (UPOS, UFeats, URel,
// UMisc) is filled in by the conversion passes; GovID and Rel may be
// reseated by structural passes which promote a token into another
// token's tree position, so Gov and Children always reflect the
// current state of the source tree.
type Token struct {
	ID        int
	Form      string
	Lemma     string
	RawTag    string
	Attrs     tagset.AttrRecord
	Malformed bool
	GovID     int
	Rel       string
	RawMisc   string

	UPOS   string
	UFeats map[string]string
	URel   string
	UMisc  map[string]string

	uGovID  int
	uGovSet bool

	sentence *Sentence
	idx      int
}

// Class returns the source tag class, or an empty string for tokens
// whose tag failed to parse.
func (t *Token) Class() string {
	return t.Attrs.Class
}

// Slot returns the raw value the source tag fills for the given
// category ("" when absent).
func (t *Token) Slot(cat tagset.Category) string {
	return t.Attrs.Value(cat)
}

// HasSlot tests whether the source tag fills the given category.
func (t *Token) HasSlot(cat tagset.Category) bool {
	return t.Attrs.Has(cat)
}

// UDSlot returns the UD rename of the slot value for the given
// category ("" when absent).
func (t *Token) UDSlot(cat tagset.Category) string {
	return t.Attrs.UDValue(cat)
}

// AddFeats merges the given entries into the token's UD feature map,
// overwriting values of keys already present.
func (t *Token) AddFeats(feats map[string]string) {
	if t.UFeats == nil {
		t.UFeats = make(map[string]string, len(feats))
	}
	for k, v := range feats {
		t.UFeats[k] = v
	}
}

// SetFeat sets a single UD feature.
func (t *Token) SetFeat(name, value string) {
	if t.UFeats == nil {
		t.UFeats = make(map[string]string)
	}
	t.UFeats[name] = value
}

// Feat returns a UD feature value ("" when unset).
func (t *Token) Feat(name string) string {
	return t.UFeats[name]
}

// SetMiscFeat sets a single entry of the UD MISC field.
func (t *Token) SetMiscFeat(name, value string) {
	if t.UMisc == nil {
		t.UMisc = make(map[string]string)
	}
	t.UMisc[name] = value
}

// MiscFeat returns an entry of the UD MISC field ("" when unset).
func (t *Token) MiscFeat(name string) string {
	return t.UMisc[name]
}

// DropMiscFeat removes an entry of the UD MISC field.
func (t *Token) DropMiscFeat(name string) {
	delete(t.UMisc, name)
}

// Gov returns the governing token or nil for the sentence root.
func (t *Token) Gov() *Token {
	if t.sentence == nil || t.GovID == 0 {
		return nil
	}
	return t.sentence.ByID(t.GovID)
}

// Children returns the tokens governed by t, in sentence order.
func (t *Token) Children() []*Token {
	if t.sentence == nil {
		return nil
	}
	var ans []*Token
	for _, n := range t.sentence.Tokens {
		if n.GovID == t.ID {
			ans = append(ans, n)
		}
	}
	return ans
}

// ChildrenWithRel returns the children attached to t via the given raw
// source relation.
func (t *Token) ChildrenWithRel(label string) []*Token {
	var ans []*Token
	for _, n := range t.Children() {
		if n.Rel == label {
			ans = append(ans, n)
		}
	}
	return ans
}

// ChildrenWithURel returns the children attached to t via the given
// converted UD relation. During the label sweep this only sees labels
// already assigned to earlier tokens.
func (t *Token) ChildrenWithURel(label string) []*Token {
	var ans []*Token
	for _, n := range t.Children() {
		if n.URel == label {
			ans = append(ans, n)
		}
	}
	return ans
}

// ChildrenWithLemma returns the children of t with the given lemma.
func (t *Token) ChildrenWithLemma(lemma string) []*Token {
	var ans []*Token
	for _, n := range t.Children() {
		if n.Lemma == lemma {
			ans = append(ans, n)
		}
	}
	return ans
}

// Prev returns the token with the directly preceding id, or nil at the
// sentence start.
func (t *Token) Prev() *Token {
	if t.sentence == nil {
		return nil
	}
	return t.sentence.ByID(t.ID - 1)
}

// Next returns the token with the directly following id, or nil at the
// sentence end.
func (t *Token) Next() *Token {
	if t.sentence == nil {
		return nil
	}
	return t.sentence.ByID(t.ID + 1)
}

// SuperGovViaLabel follows the chain of same-labelled edges upward
// from t and returns the first governor whose own incoming edge breaks
// the chain, along with the last chain member below it. It returns
// (nil, nil) when t itself is not attached via the label or when the
// chain runs into the root.
func (t *Token) SuperGovViaLabel(label string) (*Token, *Token) {
	if t.sentence == nil || t.Rel != label {
		return nil, nil
	}
	gov := t.Gov()
	if gov == nil {
		return nil, nil
	}
	if gov.Rel != label {
		return gov, t
	}
	return gov.SuperGovViaLabel(label)
}

// SameBranchLeaf resolves the terminal token of the chain of
// same-labelled edges starting at t: the first token, walking through
// governors, whose incoming edge does not carry the given label. Nil
// when t is not on such a chain at all.
func (t *Token) SameBranchLeaf(label string) *Token {
	gov, _ := t.SuperGovViaLabel(label)
	return gov
}

// SuperChildViaLabel descends the chain of via-labelled edges starting
// at t, stepping into the first child on each level, and returns the
// first descendant attached via the target label (nil when the chain
// breaks or t itself is not attached via the via label).
func (t *Token) SuperChildViaLabel(target, via string) *Token {
	if t.Rel != via {
		return nil
	}
	children := t.Children()
	if len(children) == 0 {
		return nil
	}
	if children[0].Rel == target {
		return children[0]
	}
	return children[0].SuperChildViaLabel(target, via)
}

// ChildrenWithRelContaining returns the children of t whose raw source
// relation contains the given substring.
func (t *Token) ChildrenWithRelContaining(sub string) []*Token {
	var ans []*Token
	for _, n := range t.Children() {
		if strings.Contains(n.Rel, sub) {
			ans = append(ans, n)
		}
	}
	return ans
}

// SetUGov rewires the converted-side governor of t to the token with
// the given id (0 promotes t to the root). The raw edge stays
// untouched so later passes can still query the source tree.
func (t *Token) SetUGov(govID int) {
	t.uGovID = govID
	t.uGovSet = true
}

// HasUGov tests whether some conversion pass rewired the governor of t.
func (t *Token) HasUGov() bool {
	return t.uGovSet
}

// UGov returns the rewired governor of t, or nil when no pass touched
// the edge or t was promoted to the root.
func (t *Token) UGov() *Token {
	if t.sentence == nil || !t.uGovSet || t.uGovID == 0 {
		return nil
	}
	return t.sentence.ByID(t.uGovID)
}

// EffGov returns the governor the converted tree attaches t to: the
// rewired one when set, the raw one otherwise. Nil for the root.
func (t *Token) EffGov() *Token {
	if t.uGovSet {
		return t.UGov()
	}
	return t.Gov()
}

// EffGovID returns the id of the node the converted tree attaches t to
// (0 for the root).
func (t *Token) EffGovID() int {
	if t.uGovSet {
		return t.uGovID
	}
	return t.GovID
}

// UChildren returns the tokens the converted tree attaches to t, in
// sentence order.
func (t *Token) UChildren() []*Token {
	if t.sentence == nil {
		return nil
	}
	var ans []*Token
	for _, n := range t.sentence.Tokens {
		if n != t && n.EffGovID() == t.ID {
			ans = append(ans, n)
		}
	}
	return ans
}

// UChildrenWithURel returns the converted-tree children of t attached
// via the given UD relation.
func (t *Token) UChildrenWithURel(label string) []*Token {
	var ans []*Token
	for _, n := range t.UChildren() {
		if n.URel == label {
			ans = append(ans, n)
		}
	}
	return ans
}

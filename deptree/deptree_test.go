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
	"testing"

	"github.com/stretchr/testify/assert"
	"udconv/tagset"
)

func testTok(id int, form, lemma string, gov int, rel string) *Token {
	return &Token{
		ID:    id,
		Form:  form,
		Lemma: lemma,
		GovID: gov,
		Rel:   rel,
	}
}

func testSent(t *testing.T, tokens ...*Token) *Sentence {
	s, err := NewSentence(tokens)
	assert.NoError(t, err)
	return s
}

func TestNewSentenceValid(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "Pan", "pan", 2, "subj"),
		testTok(2, "rzekł", "rzec", 0, "root"),
		testTok(3, ".", ".", 2, "punct"),
	)
	assert.Equal(t, 3, len(s.Tokens))
	assert.Equal(t, 2, s.Root().ID)
	assert.Equal(t, "rzec", s.ByID(1).Gov().Lemma)
	assert.Nil(t, s.ByID(2).Gov())
	children := s.ByID(2).Children()
	assert.Equal(t, 2, len(children))
	assert.Equal(t, 1, children[0].ID)
	assert.Equal(t, 3, children[1].ID)
}

func TestNewSentenceEmpty(t *testing.T) {
	_, err := NewSentence(nil)
	assert.Error(t, err)
	assert.IsType(t, StructuralError{}, err)
}

func TestNewSentenceDuplicateID(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 0, "root"),
		testTok(1, "b", "b", 1, "subj"),
	})
	assert.Error(t, err)
	assert.IsType(t, StructuralError{}, err)
}

func TestNewSentenceUnknownGovernor(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 9, "subj"),
	})
	assert.Error(t, err)
}

func TestNewSentenceMultipleRoots(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 0, "root"),
	})
	assert.Error(t, err)
}

func TestNewSentenceNoRoot(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 2, "subj"),
		testTok(2, "b", "b", 1, "obj"),
	})
	assert.Error(t, err)
}

func TestNewSentenceSelfGovernor(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 2, "subj"),
	})
	assert.Error(t, err)
}

func TestNewSentenceDisconnectedCycle(t *testing.T) {
	_, err := NewSentence([]*Token{
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 3, "subj"),
		testTok(3, "c", "c", 2, "obj"),
	})
	assert.Error(t, err)
}

func TestChildrenWithRel(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "on", "on", 2, "subj"),
		testTok(2, "widzi", "widzieć", 0, "root"),
		testTok(3, "dom", "dom", 2, "obj"),
		testTok(4, "wielki", "wielki", 3, "adjunct_attrib"),
	)
	subj := s.ByID(2).ChildrenWithRel("subj")
	assert.Equal(t, 1, len(subj))
	assert.Equal(t, "on", subj[0].Lemma)
	assert.Empty(t, s.ByID(2).ChildrenWithRel("pd"))
}

func TestChildrenWithURelSeesAssignedLabels(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "on", "on", 2, "subj"),
		testTok(2, "widzi", "widzieć", 0, "root"),
	)
	assert.Empty(t, s.ByID(2).ChildrenWithURel("nsubj"))
	s.ByID(1).URel = "nsubj"
	assert.Equal(t, 1, len(s.ByID(2).ChildrenWithURel("nsubj")))
}

func TestChildrenWithLemma(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "nie", "nie", 2, "neg"),
		testTok(2, "ma", "mieć", 0, "root"),
	)
	assert.Equal(t, 1, len(s.ByID(2).ChildrenWithLemma("nie")))
	assert.Empty(t, s.ByID(2).ChildrenWithLemma("tak"))
}

func TestPrevNext(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 2, "subj"),
		testTok(2, "b", "b", 0, "root"),
	)
	assert.Nil(t, s.ByID(1).Prev())
	assert.Equal(t, 2, s.ByID(1).Next().ID)
	assert.Equal(t, 1, s.ByID(2).Prev().ID)
	assert.Nil(t, s.ByID(2).Next())
}

func TestSuperGovViaLabel(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 1, "pd"),
		testTok(3, "c", "c", 2, "conjunct"),
		testTok(4, "d", "d", 3, "conjunct"),
	)
	gov, member := s.ByID(4).SuperGovViaLabel("conjunct")
	assert.Equal(t, 2, gov.ID)
	assert.Equal(t, 3, member.ID)

	gov, member = s.ByID(3).SuperGovViaLabel("conjunct")
	assert.Equal(t, 2, gov.ID)
	assert.Equal(t, 3, member.ID)

	gov, member = s.ByID(2).SuperGovViaLabel("conjunct")
	assert.Nil(t, gov)
	assert.Nil(t, member)
}

func TestSameBranchLeaf(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 1, "pd"),
		testTok(3, "c", "c", 2, "conjunct"),
	)
	leaf := s.ByID(3).SameBranchLeaf("conjunct")
	assert.Equal(t, 2, leaf.ID)
	assert.Nil(t, s.ByID(2).SameBranchLeaf("conjunct"))
}

func TestEdgeLabel(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 2, "subj"),
		testTok(2, "b", "b", 0, "root"),
	)
	assert.Equal(t, "subj", s.EdgeLabel(s.ByID(2), s.ByID(1)))
	assert.Equal(t, "", s.EdgeLabel(s.ByID(1), s.ByID(2)))
}

func TestTextFromMeta(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "Ala", "Ala", 2, "subj"),
		testTok(2, "śpi", "spać", 0, "root"),
	)
	assert.Equal(t, "Ala śpi", s.Text())
	s.SetMeta("text", "Ala śpi.")
	assert.Equal(t, "Ala śpi.", s.Text())
}

func TestSetMetaReplacesInPlace(t *testing.T) {
	s := testSent(t, testTok(1, "a", "a", 0, "root"))
	s.SetMeta("sent_id", "12")
	s.SetMeta("text", "a")
	s.SetMeta("sent_id", "13")
	assert.Equal(t, []MetaItem{{Key: "sent_id", Value: "13"}, {Key: "text", Value: "a"}}, s.Meta)
}

func TestTokenSlots(t *testing.T) {
	attrs, err := tagset.Parse("subst:sg:nom:m")
	assert.NoError(t, err)
	tok := testTok(1, "pan", "pan", 0, "root")
	tok.Attrs = attrs
	assert.Equal(t, "subst", tok.Class())
	assert.Equal(t, "nom", tok.Slot(tagset.CatCase))
	assert.Equal(t, "Nom", tok.UDSlot(tagset.CatCase))
	assert.True(t, tok.HasSlot(tagset.CatGender))
	assert.False(t, tok.HasSlot(tagset.CatAspect))
}

func TestAddFeatsMerges(t *testing.T) {
	tok := testTok(1, "a", "a", 0, "root")
	tok.AddFeats(map[string]string{"Case": "Nom", "Number": "Sing"})
	tok.AddFeats(map[string]string{"Case": "Gen"})
	assert.Equal(t, "Gen", tok.Feat("Case"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
}

func TestMiscFeatRoundtrip(t *testing.T) {
	tok := testTok(1, "a", "a", 0, "root")
	assert.Equal(t, "", tok.MiscFeat("SpaceAfter"))
	tok.SetMiscFeat("SpaceAfter", "No")
	assert.Equal(t, "No", tok.MiscFeat("SpaceAfter"))
	tok.DropMiscFeat("SpaceAfter")
	assert.Equal(t, "", tok.MiscFeat("SpaceAfter"))
}

func TestRangeCovers(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 1, "obj"),
		testTok(3, "c", "c", 1, "punct"),
	)
	s.Ranges = append(s.Ranges, Range{FirstID: 1, LastID: 2, Form: "ab"})
	assert.True(t, s.RangeCovers(1))
	assert.True(t, s.RangeCovers(2))
	assert.False(t, s.RangeCovers(3))
}

func TestNonProjectiveEdges(t *testing.T) {
	projective := testSent(
		t,
		testTok(1, "a", "a", 2, "subj"),
		testTok(2, "b", "b", 0, "root"),
		testTok(3, "c", "c", 2, "obj"),
	)
	assert.Equal(t, 0, projective.NonProjectiveEdges())

	crossed := testSent(
		t,
		testTok(1, "a", "a", 3, "adjunct"),
		testTok(2, "b", "b", 4, "adjunct"),
		testTok(3, "c", "c", 0, "root"),
		testTok(4, "d", "d", 3, "obj"),
	)
	assert.Equal(t, 2, crossed.NonProjectiveEdges())
}

func TestWarningsCollect(t *testing.T) {
	var warns Warnings
	warns.Addf(3, "unknown gender: %s", "m4")
	assert.Equal(t, 1, len(warns))
	assert.Equal(t, 3, warns[0].TokenID)
	assert.Equal(t, "unknown gender: m4", warns[0].Message)
	assert.False(t, warns.Empty())
}

func TestWarningsNilSafe(t *testing.T) {
	var warns *Warnings
	assert.NotPanics(t, func() { warns.Addf(1, "ignored") })
}

func TestSuperChildViaLabel(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 0, "root"),
		testTok(2, "b", "b", 1, "comp"),
		testTok(3, "c", "c", 2, "comp"),
		testTok(4, "d", "d", 3, "mwe"),
	)
	mwe := s.ByID(2).SuperChildViaLabel("mwe", "comp")
	assert.Equal(t, 4, mwe.ID)
	assert.Nil(t, s.ByID(1).SuperChildViaLabel("mwe", "comp"))
	assert.Nil(t, s.ByID(4).SuperChildViaLabel("mwe", "comp"))
}

func TestChildrenWithRelContaining(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "a", "a", 2, "adjunct_compar"),
		testTok(2, "b", "b", 0, "root"),
		testTok(3, "c", "c", 2, "comp_fin"),
		testTok(4, "d", "d", 2, "subj"),
	)
	comp := s.ByID(2).ChildrenWithRelContaining("comp")
	assert.Equal(t, 2, len(comp))
	assert.Equal(t, 1, comp[0].ID)
	assert.Equal(t, 3, comp[1].ID)
}

func TestEffGovFollowsRewiring(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "w", "w", 3, "adjunct"),
		testTok(2, "domu", "dom", 1, "comp"),
		testTok(3, "śpi", "spać", 0, "root"),
	)
	prep := s.ByID(1)
	noun := s.ByID(2)
	assert.False(t, prep.HasUGov())
	assert.Equal(t, 3, prep.EffGovID())

	noun.SetUGov(3)
	prep.SetUGov(2)
	assert.True(t, prep.HasUGov())
	assert.Equal(t, 2, prep.EffGovID())
	assert.Equal(t, noun, prep.EffGov())
	assert.Equal(t, noun, prep.UGov())
	// the raw edge still points at the verb
	assert.Equal(t, 3, prep.GovID)
	assert.Equal(t, "śpi", prep.Gov().Form)
}

func TestSetUGovZeroPromotesToRoot(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "to", "to", 0, "root"),
		testTok(2, "prawda", "prawda", 1, "pd"),
	)
	pd := s.ByID(2)
	pd.SetUGov(0)
	assert.True(t, pd.HasUGov())
	assert.Nil(t, pd.UGov())
	assert.Nil(t, pd.EffGov())
	assert.Equal(t, 0, pd.EffGovID())
}

func TestUChildrenMergeRawAndRewired(t *testing.T) {
	s := testSent(
		t,
		testTok(1, "w", "w", 3, "adjunct"),
		testTok(2, "domu", "dom", 1, "comp"),
		testTok(3, "śpi", "spać", 0, "root"),
		testTok(4, ".", ".", 3, "punct"),
	)
	s.ByID(2).SetUGov(3)
	s.ByID(1).SetUGov(2)
	s.ByID(1).URel = "case"

	verb := s.ByID(3).UChildren()
	assert.Equal(t, 2, len(verb))
	assert.Equal(t, 2, verb[0].ID)
	assert.Equal(t, 4, verb[1].ID)

	cases := s.ByID(2).UChildrenWithURel("case")
	assert.Equal(t, 1, len(cases))
	assert.Equal(t, 1, cases[0].ID)
}

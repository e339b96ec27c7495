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

package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"udconv/deptree"
	"udconv/tagset"
)

func convTok(t *testing.T, id int, form, lemma, tag string, gov int, rel string) *deptree.Token {
	tok := &deptree.Token{ID: id, Form: form, Lemma: lemma, RawTag: tag, GovID: gov, Rel: rel}
	if tag != "" {
		attrs, err := tagset.Parse(tag)
		assert.NoError(t, err)
		tok.Attrs = attrs
	}
	return tok
}

func convSent(t *testing.T, toks ...*deptree.Token) *deptree.Sentence {
	s, err := deptree.NewSentence(toks)
	assert.NoError(t, err)
	return s
}

// single builds a one-token sentence and converts it
func single(t *testing.T, form, lemma, tag string) *deptree.Token {
	tok := convTok(t, 1, form, lemma, tag, 0, "root")
	s := convSent(t, tok)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	return tok
}

func TestConvertNoun(t *testing.T) {
	tok := single(t, "domu", "dom", "subst:sg:gen:m")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "Masc", tok.Feat("Gender"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
	assert.Equal(t, "Gen", tok.Feat("Case"))
}

func TestConvertNounAnimate(t *testing.T) {
	tok := single(t, "chłopa", "chłop", "subst:sg:acc:manim1")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "Masc", tok.Feat("Gender"))
	assert.Equal(t, "Hum", tok.Feat("Animacy"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
}

func TestConvertNounPluraleTantum(t *testing.T) {
	tok := single(t, "drzwi", "drzwi", "subst:pl:nom:p2")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "Neut", tok.Feat("Gender"))
	assert.Equal(t, "Ptan", tok.Feat("Number"))
}

func TestConvertNounSubgenderForcesPtan(t *testing.T) {
	tok := single(t, "sanie", "sanie", "subst:pl:nom:n:pt")
	assert.Equal(t, "Neut", tok.Feat("Gender"))
	assert.Equal(t, "Ptan", tok.Feat("Number"))
}

func TestConvertPronominalNounLemma(t *testing.T) {
	tok := single(t, "kto", "kto", "subst:sg:nom:m")
	assert.Equal(t, "PRON", tok.UPOS)
	assert.Equal(t, "Int,Rel", tok.Feat("PronType"))
	assert.Equal(t, "Nom", tok.Feat("Case"))
}

func TestConvertCapitalizedNounBecomesProper(t *testing.T) {
	tok := single(t, "Wisła", "Wisła", "subst:sg:nom:f")
	assert.Equal(t, "PROPN", tok.UPOS)
	assert.Equal(t, "Fem", tok.Feat("Gender"))
	assert.Equal(t, "Nom", tok.Feat("Case"))
}

func TestComparativeConjunctionOverride(t *testing.T) {
	tok := single(t, "niż", "niż", "comp")
	assert.Equal(t, "SCONJ", tok.UPOS)
	assert.Equal(t, "Comp", tok.Feat("ConjType"))
}

func TestComparativeLemmaKeepsParticleClass(t *testing.T) {
	tok := single(t, "niby", "niby", "part")
	assert.Equal(t, "PART", tok.UPOS)
	assert.Equal(t, "", tok.Feat("ConjType"))
}

func TestTemuPostposition(t *testing.T) {
	tok := single(t, "temu", "temu", "adv")
	assert.Equal(t, "ADP", tok.UPOS)
	assert.Equal(t, "Post", tok.Feat("AdpType"))
	assert.Equal(t, "Acc", tok.Feat("Case"))
}

func TestOperatorConjunction(t *testing.T) {
	tok := single(t, "plus", "plus", "conj")
	assert.Equal(t, "CCONJ", tok.UPOS)
	assert.Equal(t, "Oper", tok.Feat("ConjType"))
}

func TestDigitLemma(t *testing.T) {
	tok := single(t, "5", "5", "dig")
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "Digit", tok.Feat("NumForm"))
}

func TestDigitLemmaOrdinalAdjective(t *testing.T) {
	tok := single(t, "10", "10", "adj:sg:nom:m:pos")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Ord", tok.Feat("NumType"))
	assert.Equal(t, "Digit", tok.Feat("NumForm"))
	assert.Equal(t, "Nom", tok.Feat("Case"))
}

func TestRomanNumeralLemma(t *testing.T) {
	tok := single(t, "IV", "IV", "romandig")
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "Roman", tok.Feat("NumForm"))
	assert.Equal(t, "", tok.Feat("Foreign"))
}

func TestDemonstrativeDeterminer(t *testing.T) {
	tok := single(t, "ten", "ten", "adj:sg:nom:m:pos")
	assert.Equal(t, "DET", tok.UPOS)
	assert.Equal(t, "Dem", tok.Feat("PronType"))
	assert.Equal(t, "Masc", tok.Feat("Gender"))
	assert.Equal(t, "Nom", tok.Feat("Case"))
}

func TestPossessiveDeterminer(t *testing.T) {
	tok := single(t, "mój", "mój", "adj:sg:nom:m:pos")
	assert.Equal(t, "DET", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Poss"))
	assert.Equal(t, "Prs", tok.Feat("PronType"))
	assert.Equal(t, "Sing", tok.Feat("Number[psor]"))
	assert.Equal(t, "1", tok.Feat("Person"))
}

func TestReflexivePossessiveDeterminer(t *testing.T) {
	tok := single(t, "swój", "swój", "adj:sg:acc:m:pos")
	assert.Equal(t, "DET", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Reflex"))
	assert.Equal(t, "", tok.Feat("Number[psor]"))
}

func TestPlainAdjective(t *testing.T) {
	tok := single(t, "wielkiego", "wielki", "adj:sg:gen:m:pos")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Pos", tok.Feat("Degree"))
	assert.Equal(t, "Gen", tok.Feat("Case"))
}

func TestShortAdjective(t *testing.T) {
	tok := single(t, "zdrów", "zdrowy", "adjb:sg:nom:m:pos")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Short", tok.Feat("Variant"))
}

func TestCompoundAdjectivePrefix(t *testing.T) {
	tok := single(t, "polsko", "polski", "adja")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Hyph"))
}

func TestAdverbJakBeforeSuperlative(t *testing.T) {
	jak := convTok(t, 1, "jak", "jak", "adv", 2, "adjunct")
	best := convTok(t, 2, "najlepiej", "dobrze", "adv:sup", 0, "root")
	s := convSent(t, jak, best)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, "ADV", jak.UPOS)
	assert.Equal(t, "Int", jak.Feat("PronType"))
	assert.Equal(t, "Sup", best.Feat("Degree"))
}

func TestAdverbJakPlain(t *testing.T) {
	tok := single(t, "jak", "jak", "adv")
	assert.Equal(t, "ADV", tok.UPOS)
	assert.Equal(t, "Int,Rel", tok.Feat("PronType"))
}

func TestAdverbGdzieIndziej(t *testing.T) {
	gdzie := convTok(t, 1, "gdzie", "gdzie", "adv", 2, "adjunct")
	indziej := convTok(t, 2, "indziej", "indziej", "adv", 0, "root")
	s := convSent(t, gdzie, indziej)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, "ADV", gdzie.UPOS)
	assert.Equal(t, "", gdzie.Feat("PronType"))
}

func TestDemonstrativeAdverb(t *testing.T) {
	tok := single(t, "tam", "tam", "adv")
	assert.Equal(t, "ADV", tok.UPOS)
	assert.Equal(t, "Dem", tok.Feat("PronType"))
}

func TestIndefiniteQuantifier(t *testing.T) {
	tok := single(t, "kilka", "kilka", "num:pl:nom:n")
	assert.Equal(t, "DET", tok.UPOS)
	assert.Equal(t, "Card", tok.Feat("NumType"))
	assert.Equal(t, "Ind", tok.Feat("PronType"))
}

func TestPlainNumeral(t *testing.T) {
	tok := single(t, "pięć", "pięć", "num:pl:acc:n")
	assert.Equal(t, "NUM", tok.UPOS)
	assert.Equal(t, "Word", tok.Feat("NumForm"))
	assert.Equal(t, "Acc", tok.Feat("Case"))
}

func TestFiniteVerbImperfective(t *testing.T) {
	tok := single(t, "robi", "robić", "fin:sg:ter:imperf")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "Fin", tok.Feat("VerbForm"))
	assert.Equal(t, "Pres", tok.Feat("Tense"))
	assert.Equal(t, "Imp", tok.Feat("Aspect"))
	assert.Equal(t, "3", tok.Feat("Person"))
	assert.Equal(t, "Act", tok.Feat("Voice"))
}

func TestFiniteVerbPerfectiveIsFuture(t *testing.T) {
	tok := single(t, "zrobi", "zrobić", "fin:sg:ter:perf")
	assert.Equal(t, "Fut", tok.Feat("Tense"))
	assert.Equal(t, "Perf", tok.Feat("Aspect"))
}

func TestFiniteBycIsAux(t *testing.T) {
	tok := single(t, "jest", "być", "fin:sg:ter:imperf")
	assert.Equal(t, "AUX", tok.UPOS)
}

func TestPastTense(t *testing.T) {
	tok := single(t, "robił", "robić", "praet:sg:m:imperf")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "Past", tok.Feat("Tense"))
	assert.Equal(t, "Masc", tok.Feat("Gender"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
}

func TestPluperfectSharesPastRules(t *testing.T) {
	tok := single(t, "robił", "robić", "plusq:sg:m:imperf")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "Past", tok.Feat("Tense"))
	assert.Equal(t, "Fin", tok.Feat("VerbForm"))
}

func TestImpersonal(t *testing.T) {
	tok := single(t, "robiono", "robić", "imps:imperf")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "0", tok.Feat("Person"))
	assert.Equal(t, "Past", tok.Feat("Tense"))
}

func TestGerund(t *testing.T) {
	tok := single(t, "robienia", "robić", "ger:sg:gen:n:imperf:aff")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "Vnoun", tok.Feat("VerbForm"))
	assert.Equal(t, "Pos", tok.Feat("Polarity"))
	assert.Equal(t, "Gen", tok.Feat("Case"))
}

func TestNegatedGerund(t *testing.T) {
	tok := single(t, "nierobienia", "robić", "ger:sg:gen:n:imperf:neg")
	assert.Equal(t, "Neg", tok.Feat("Polarity"))
}

func TestPassiveParticiple(t *testing.T) {
	tok := single(t, "zrobiony", "zrobić", "ppas:sg:nom:m:pos:perf:aff")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Part", tok.Feat("VerbForm"))
	assert.Equal(t, "Pass", tok.Feat("Voice"))
	assert.Equal(t, "Pos", tok.Feat("Degree"))
	assert.Equal(t, "Pos", tok.Feat("Polarity"))
}

func TestActiveParticipleShortVariant(t *testing.T) {
	tok := single(t, "robiąc", "robić", "pactb:sg:nom:m:pos:imperf:aff")
	assert.Equal(t, "ADJ", tok.UPOS)
	assert.Equal(t, "Act", tok.Feat("Voice"))
	assert.Equal(t, "Short", tok.Feat("Variant"))
}

func TestAgglutinate(t *testing.T) {
	tok := single(t, "m", "być", "aglt:sg:pri:imperf:wok")
	assert.Equal(t, "AUX", tok.UPOS)
	assert.Equal(t, "Long", tok.Feat("Variant"))
	assert.Equal(t, "1", tok.Feat("Person"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
}

func TestModalWinien(t *testing.T) {
	tok := single(t, "winien", "winien", "winien:sg:m:imperf")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "Mod", tok.Feat("VerbType"))
	assert.Equal(t, "Pres", tok.Feat("Tense"))
}

func TestQuasiVerbPredicative(t *testing.T) {
	tok := single(t, "trzeba", "trzeba", "pred")
	assert.Equal(t, "VERB", tok.UPOS)
	assert.Equal(t, "Quasi", tok.Feat("VerbType"))
}

func TestPredicativeToIsAux(t *testing.T) {
	tok := single(t, "to", "to", "pred")
	assert.Equal(t, "AUX", tok.UPOS)
}

func TestThirdPersonPronoun(t *testing.T) {
	tok := single(t, "niego", "on", "ppron3:sg:gen:m:ter:akc:praep")
	assert.Equal(t, "PRON", tok.UPOS)
	assert.Equal(t, "Prs", tok.Feat("PronType"))
	assert.Equal(t, "3", tok.Feat("Person"))
	assert.Equal(t, "Pre", tok.Feat("PrepCase"))
	assert.Equal(t, "Long", tok.Feat("Variant"))
	assert.Equal(t, "Masc", tok.Feat("Gender"))
}

func TestFirstPersonPronounShort(t *testing.T) {
	tok := single(t, "mi", "ja", "ppron12:sg:dat:m:pri:nakc")
	assert.Equal(t, "PRON", tok.UPOS)
	assert.Equal(t, "Short", tok.Feat("Variant"))
	assert.Equal(t, "Sing", tok.Feat("Number"))
	assert.Equal(t, "", tok.Feat("Gender"))
}

func TestReflexiveSiebie(t *testing.T) {
	tok := single(t, "siebie", "siebie", "siebie:acc")
	assert.Equal(t, "PRON", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Reflex"))
	assert.Equal(t, "Acc", tok.Feat("Case"))
}

func TestPrepositionCaseGoesToMisc(t *testing.T) {
	tok := single(t, "w", "w", "prep:loc:nwok")
	assert.Equal(t, "ADP", tok.UPOS)
	assert.Equal(t, "Prep", tok.Feat("AdpType"))
	assert.Equal(t, "Short", tok.Feat("Variant"))
	assert.Equal(t, "Loc", tok.MiscFeat("Case"))
	assert.Equal(t, "", tok.Feat("Case"))
}

func TestReflexiveParticle(t *testing.T) {
	tok := single(t, "się", "się", "part")
	assert.Equal(t, "PRON", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Reflex"))
}

func TestNegationParticle(t *testing.T) {
	tok := single(t, "nie", "nie", "part")
	assert.Equal(t, "PART", tok.UPOS)
	assert.Equal(t, "Neg", tok.Feat("Polarity"))
}

func TestImperativeParticleIsAux(t *testing.T) {
	tok := single(t, "niech", "niech", "part")
	assert.Equal(t, "AUX", tok.UPOS)
}

func TestAbbreviationNoun(t *testing.T) {
	tok := single(t, "r", "rok", "brev:pun")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Abbr"))
}

func TestAbbreviationAdposition(t *testing.T) {
	tok := single(t, "wg", "według", "brev:npun")
	assert.Equal(t, "ADP", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Abbr"))
}

func TestAbbreviationFallbackAdverb(t *testing.T) {
	tok := single(t, "itd", "i_tak_dalej", "brev:pun")
	assert.Equal(t, "ADV", tok.UPOS)
}

func TestPunctuationComma(t *testing.T) {
	tok := single(t, ",", ",", "interp")
	assert.Equal(t, "PUNCT", tok.UPOS)
	assert.Equal(t, "Comm", tok.Feat("PunctType"))
}

func TestPunctuationOpeningQuote(t *testing.T) {
	tok := single(t, "„", "„", "interp")
	assert.Equal(t, "PUNCT", tok.UPOS)
	assert.Equal(t, "Quot", tok.Feat("PunctType"))
	assert.Equal(t, "Ini", tok.Feat("PunctSide"))
}

func TestNativeFragmentNotForeign(t *testing.T) {
	tok := single(t, "cna", "cna", "frag")
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "", tok.Feat("Foreign"))
}

func TestForeignFragment(t *testing.T) {
	tok := single(t, "ad", "ad", "frag")
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Foreign"))
}

func TestUnknownTokenClass(t *testing.T) {
	tok := single(t, "xyz", "xyz", "ign")
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Foreign"))
}

func TestMalformedTagBecomesX(t *testing.T) {
	tok := convTok(t, 1, "foo", "foo", "", 0, "root")
	tok.RawTag = "nosuchclass:sg"
	tok.Malformed = true
	s := convSent(t, tok)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, "X", tok.UPOS)
	assert.Equal(t, "Yes", tok.Feat("Foreign"))
	assert.False(t, warns.Empty())
}

func TestAuxRelationCorrection(t *testing.T) {
	main := convTok(t, 1, "został", "zostać", "praet:sg:m:perf", 0, "root")
	aux := convTok(t, 2, "robić", "robić", "inf:imperf", 1, "aux")
	s := convSent(t, main, aux)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, "AUX", aux.UPOS)
	assert.Equal(t, "VERB", main.UPOS)
}

func TestMultiwordRangeGrouping(t *testing.T) {
	s := convSent(
		t,
		convTok(t, 1, "zrobił", "zrobić", "praet:sg:m:perf", 0, "root"),
		convTok(t, 2, "by", "by", "part", 1, "cond"),
		convTok(t, 3, "m", "być", "aglt:sg:pri:imperf:nwok", 1, "aglt"),
		convTok(t, 4, ".", ".", "interp", 1, "punct"),
	)
	s.SetMeta("text", "zrobiłbym.")
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, 1, len(s.Ranges))
	assert.Equal(t, 1, s.Ranges[0].FirstID)
	assert.Equal(t, 3, s.Ranges[0].LastID)
	assert.Equal(t, "zrobiłbym", s.Ranges[0].Form)
	assert.Equal(t, "", s.ByID(4).MiscFeat("SpaceAfter"))
}

func TestSpaceAfterDetection(t *testing.T) {
	s := convSent(
		t,
		convTok(t, 1, "Ala", "Ala", "subst:sg:nom:f", 2, "subj"),
		convTok(t, 2, "śpi", "spać", "fin:sg:ter:imperf", 0, "root"),
		convTok(t, 3, ".", ".", "interp", 2, "punct"),
	)
	s.SetMeta("text", "Ala śpi.")
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Equal(t, "", s.ByID(1).MiscFeat("SpaceAfter"))
	assert.Equal(t, "No", s.ByID(2).MiscFeat("SpaceAfter"))
	assert.Equal(t, "", s.ByID(3).MiscFeat("SpaceAfter"))
}

func TestGenderExpansionTotal(t *testing.T) {
	genders := []string{"m", "f", "n", "manim1", "manim2", "p1", "p2"}
	numbers := []string{"sg", "pl", "du"}
	for _, g := range genders {
		for _, num := range numbers {
			tok := &deptree.Token{
				ID: 1, Form: "x", Lemma: "x",
				Attrs: tagset.AttrRecord{
					Class: "subst",
					Values: map[tagset.Category]string{
						tagset.CatNumber: num,
						tagset.CatGender: g,
					},
				},
			}
			var warns deptree.Warnings
			updateGenderNumber(tok, &warns)
			assert.True(t, warns.Empty(), "gender %s number %s", g, num)
			assert.NotEmpty(t, tok.Feat("Gender"), "gender %s number %s", g, num)
			assert.NotEmpty(t, tok.Feat("Number"), "gender %s number %s", g, num)
		}
	}
}

func TestGenderExpansionP1OverridesNumber(t *testing.T) {
	for _, num := range []string{"sg", "pl", "du"} {
		tok := single(t, "państwo", "państwo", "subst:"+num+":nom:p1")
		assert.Equal(t, "Masc", tok.Feat("Gender"))
		assert.Equal(t, "Hum", tok.Feat("Animacy"))
		assert.Equal(t, "Ptan", tok.Feat("Number"))
	}
}

func TestDigitFormNounStaysNoun(t *testing.T) {
	tok := single(t, "12", "12", "subst:sg:nom:m")
	assert.Equal(t, "NOUN", tok.UPOS)
	assert.Equal(t, "", tok.Feat("NumForm"))
}

func TestNoTextMetaSkipsRanges(t *testing.T) {
	s := convSent(
		t,
		convTok(t, 1, "zrobił", "zrobić", "praet:sg:m:perf", 0, "root"),
		convTok(t, 2, "by", "by", "part", 1, "cond"),
	)
	var warns deptree.Warnings
	ConvertTags(s, &warns)
	assert.Empty(t, s.Ranges)
}

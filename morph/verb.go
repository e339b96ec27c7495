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
	"udconv/deptree"
	"udconv/tagset"
)

// verbOrAux gives AUX for forms of być and bywać, VERB otherwise.
func verbOrAux(t *deptree.Token) string {
	if t.Lemma == "być" || t.Lemma == "bywać" {
		return "AUX"
	}
	return "VERB"
}

func addAspect(t *deptree.Token) {
	if v := t.UDSlot(tagset.CatAspect); v != "" {
		t.SetFeat("Aspect", v)
	}
}

func addNumberPerson(t *deptree.Token) {
	if v := t.UDSlot(tagset.CatNumber); v != "" {
		t.SetFeat("Number", v)
	}
	if v := t.UDSlot(tagset.CatPerson); v != "" {
		t.SetFeat("Person", v)
	}
}

func addPolarity(t *deptree.Token) {
	if !t.HasSlot(tagset.CatNegation) {
		return
	}
	if t.Slot(tagset.CatNegation) == "neg" {
		t.SetFeat("Polarity", "Neg")
	} else {
		t.SetFeat("Polarity", "Pos")
	}
}

// convertFin handles the non-past finite form. Perfective verbs in
// this form express future tense.
func convertFin(t *deptree.Token) {
	t.UPOS = verbOrAux(t)
	addAspect(t)
	addNumberPerson(t)
	t.AddFeats(map[string]string{"VerbForm": "Fin", "Mood": "Ind", "Voice": "Act"})
	if t.Slot(tagset.CatAspect) == "perf" {
		t.SetFeat("Tense", "Fut")
	} else {
		t.SetFeat("Tense", "Pres")
	}
}

// convertBedzie handles the future auxiliary form będzie.
func convertBedzie(t *deptree.Token) {
	t.UPOS = "VERB"
	addAspect(t)
	addNumberPerson(t)
	t.AddFeats(map[string]string{"VerbForm": "Fin", "Mood": "Ind", "Tense": "Fut"})
}

// convertPraet handles the past tense form, shared with the
// pluperfect whose participle is formally identical.
func convertPraet(t *deptree.Token, warns *deptree.Warnings) {
	t.UPOS = verbOrAux(t)
	updateGenderNumber(t, warns)
	addAspect(t)
	t.AddFeats(map[string]string{
		"VerbForm": "Fin",
		"Tense":    "Past",
		"Voice":    "Act",
		"Mood":     "Ind",
	})
}

// convertImpt handles the imperative.
func convertImpt(t *deptree.Token) {
	t.UPOS = verbOrAux(t)
	addAspect(t)
	addNumberPerson(t)
	t.AddFeats(map[string]string{"VerbForm": "Fin", "Mood": "Imp", "Voice": "Act"})
}

// convertImps handles the impersonal -no/-to form.
func convertImps(t *deptree.Token) {
	t.UPOS = "VERB"
	addAspect(t)
	t.AddFeats(map[string]string{
		"Mood":     "Ind",
		"Person":   "0",
		"Tense":    "Past",
		"VerbForm": "Fin",
		"Voice":    "Act",
	})
}

// convertInf handles the infinitive.
func convertInf(t *deptree.Token) {
	t.UPOS = verbOrAux(t)
	addAspect(t)
	t.AddFeats(map[string]string{"VerbForm": "Inf", "Voice": "Act"})
}

// convertGer handles the gerund, which functions as a noun in UD.
func convertGer(t *deptree.Token, warns *deptree.Warnings) {
	t.UPOS = "NOUN"
	updateGenderNumber(t, warns)
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	addAspect(t)
	addPolarity(t)
	t.SetFeat("VerbForm", "Vnoun")
}

// convertConverb handles the contemporary (pcon) and anterior (pant)
// adverbial participles, distinguished only by tense.
func convertConverb(t *deptree.Token, tense string) {
	t.UPOS = verbOrAux(t)
	addAspect(t)
	t.AddFeats(map[string]string{"VerbForm": "Conv", "Voice": "Act", "Tense": tense})
}

// convertParticiple handles the adjectival participles: active (pact),
// passive (ppas) and the formally identical past participle ppraet.
func convertParticiple(t *deptree.Token, voice string, warns *deptree.Warnings) {
	t.UPOS = "ADJ"
	updateGenderNumber(t, warns)
	if v := t.UDSlot(tagset.CatCase); v != "" {
		t.SetFeat("Case", v)
	}
	addAspect(t)
	if v := t.UDSlot(tagset.CatDegree); v != "" {
		t.SetFeat("Degree", v)
	}
	addPolarity(t)
	t.AddFeats(map[string]string{"VerbForm": "Part", "Voice": voice})
}

// convertFut handles the analytic future auxiliary.
func convertFut(t *deptree.Token) {
	t.UPOS = "AUX"
	addAspect(t)
	addNumberPerson(t)
	t.AddFeats(map[string]string{"VerbForm": "Fin", "Mood": "Ind", "Tense": "Fut"})
}

// convertAglt handles the agglutinative forms of być (-m, -ś, -śmy),
// including the aorist-derived variants.
func convertAglt(t *deptree.Token) {
	t.UPOS = "AUX"
	addAspect(t)
	addNumberPerson(t)
	if t.HasSlot(tagset.CatVocalicity) {
		if t.Slot(tagset.CatVocalicity) == "wok" {
			t.SetFeat("Variant", "Long")
		} else {
			t.SetFeat("Variant", "Short")
		}
	}
}

// convertWinien handles the modal winien/powinien paradigm.
func convertWinien(t *deptree.Token, warns *deptree.Warnings) {
	t.UPOS = "VERB"
	updateGenderNumber(t, warns)
	addAspect(t)
	t.AddFeats(map[string]string{
		"VerbForm": "Fin",
		"Tense":    "Pres",
		"Voice":    "Act",
		"Mood":     "Ind",
		"VerbType": "Mod",
	})
}

// convertPred handles uninflected predicatives (trzeba, można, ...).
func convertPred(t *deptree.Token) {
	if t.Lemma == "to" {
		t.UPOS = "AUX"
	} else {
		t.UPOS = "VERB"
	}
	t.AddFeats(map[string]string{
		"Mood":     "Ind",
		"Tense":    "Pres",
		"VerbForm": "Fin",
		"VerbType": "Quasi",
	})
}

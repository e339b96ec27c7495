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
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
	"udconv/deptree"
)

// mweLemmas maps multiword lemmas, keyed by their space-joined
// spelling, to the canonical underscore-joined form used by the
// abbreviation lexicons and the relation rules. Inflected variants
// normalize to the base form as well.
var mweLemmas = map[string]string{
	"i tak dalej":                  "i_tak_dalej",
	"i tym podobne":                "i_tym_podobne",
	"to jest":                      "to_jest",
	"na przykład":                  "na_przykład",
	"tak zwany":                    "tak_zwany",
	"między innymi":                "między_innymi",
	"bieżącego rok":                "bieżący_rok",
	"bieżący rok":                  "bieżący_rok",
	"bieżący miesiąc":              "bieżący_miesiąc",
	"ubiegły rok":                  "ubiegły_rok",
	"do spraw":                     "do_spraw",
	"w sprawie":                    "w_sprawie",
	"na temat":                     "na_temat",
	"pod tytułem":                  "pod_tytułem",
	"pod nazwą":                    "pod_nazwą",
	"pod wezwaniem":                "pod_wezwaniem",
	"post scriptum":                "post_scriptum",
	"to znaczy":                    "to_znaczy",
	"spółka akcyjna":               "spółka_akcyjna",
	"świętej pamięci":              "świętej_pamięci",
	"kilometr kwadratowy":          "kilometr_kwadratowy",
	"nad poziomem morza":           "nad_poziomem_morza",
	"ograniczona odpowiedzialność": "ograniczona_odpowiedzialność",
	"Immunoglobina E":              "Immunoglobina_E",
	"wyżej wymieniony":             "wyżej_wymieniony",
	"przed naszą erą":              "przed_naszą_erą",
}

var mweKeyNormalizer = strings.NewReplacer(" ", " ", "_", " ")

// normalizeMWELemma rewrites known multiword lemma variants to their
// canonical form. Source data joins the words of such lemmas with
// spaces, non-breaking spaces or underscores in no particular system,
// so the lookup is insensitive to the joining character.
func normalizeMWELemma(lemma string) string {
	if !strings.ContainsAny(lemma, " _ ") {
		return lemma
	}
	if norm, ok := mweLemmas[mweKeyNormalizer.Replace(lemma)]; ok {
		return norm
	}
	return lemma
}

// convertAbbreviation handles the class brev. The part of speech of an
// abbreviation is decided by its expanded lemma; multiword lemmas are
// expected in their underscore-joined normalized form.
func convertAbbreviation(t *deptree.Token) {
	t.SetFeat("Abbr", "Yes")
	switch {
	case nounAbbrevs.Contains(t.Lemma):
		t.UPOS = "NOUN"
	case adjAbbrevs.Contains(t.Lemma):
		t.UPOS = "ADJ"
	case adpAbbrevs.Contains(t.Lemma):
		t.UPOS = "ADP"
	case propnAbbrevs.Contains(t.Lemma):
		t.UPOS = "PROPN"
	default:
		t.UPOS = "ADV"
	}
}

var nounAbbrevs = collections.NewSet(
	"rok", "stopień_Celsjusza", "stopień_Fahrenheita", "milimetr",
	"milimetr_kwadratowy", "milimetr_sześcienny", "centymetr",
	"centymetr_kwadratowy", "centymetr_sześcienny", "cubic_centimetre",
	"decymetr", "decymetr_kwadratowy", "decymetr_sześcienny", "metr",
	"metr_kwadratowy", "metr_sześcienny", "kilometr", "kilometr_kwadratowy",
	"kilometr_sześcienny", "mikrometr", "hektar", "dekagram", "gram",
	"miligram", "mikrogram", "kilogram", "megagram", "Celsjusz", "Celsjusza",
	"bilion", "miliard", "mililitr", "milion", "gigadżul", "gigaherc",
	"kiloherc", "megaherc", "kilobajt", "kilobajt_na_sekundę", "gigabajt",
	"megabajt", "megabajt_na_sekundę", "kilobit", "milimol", "megawat",
	"kilowolt", "kwintal", "litr", "mach", "gaus", "nanometr", "tesla",
	"tona", "tysiąc", "euro", "jen", "funt", "dolar", "złoty",
	"nowy_polski_złoty", "jen_japoński", "dolar_amerykański",
	"frank_belgijski", "korona_duńska", "United_States_Dollar", "strona",
	"aleja", "aluminium", "architekt", "archiwum", "artykuł", "artysta",
	"aspirant", "bieżący_miesiąc", "bieżący_rok", "brygada",
	"centralne_ogrzewanie", "ciąg_dalszy", "ciąg_dalszy_nastąpi", "cytat",
	"cześć", "departament", "doba", "docent", "doktor", "dolina", "druh",
	"dupa", "dyrekcja", "dyrektor", "dywizja", "dziennik", "dzień",
	"długość", "editor", "ekwiwalent_wodny", "era", "fotograf",
	"fotografia", "fundacja", "generał", "gmina", "godzina",
	"kilowatogodzina", "grosz", "głębokość", "harcmistrz", "hel",
	"homoseksualista", "hrabia", "ilustracja", "imienia", "informacja",
	"inspektor", "inteligencja", "inżynier", "jednostka_miary", "jezioro",
	"junior", "język", "kapitan", "kardynał", "karta", "kartka",
	"kategoria", "klasa", "kleryk", "kodeks",
	"kodeks_postępowania_cywilnego", "kodeks_prawa_cywilnego",
	"kodeks_wykroczeń", "kolega", "komandor", "komendant", "komisarz",
	"konstytucja", "kopalnia", "koło", "koń_mechaniczny", "kościół",
	"kościół_katolicki", "ksiądz", "książę", "lata", "lekarz", "liceum",
	"liczba", "litera", "magister", "mecenas", "medycyna", "miara",
	"miasto", "miasto_stołeczne", "miesiąc", "miesięcy", "mieszkanie",
	"mieszkaniec", "miligramorównoważnik", "milijednostka", "minimum",
	"minister", "ministerstwo", "minuta", "nadkomisarz", "nadinspektor",
	"nasza_era", "naszej_ery", "numer", "objętość", "obwód", "oddział",
	"odległość", "odpowiedzialność", "ograniczona_odpowiedzialność",
	"ojciec", "ojcowie", "okolica", "opatrzność", "opracowanie", "osiedle",
	"pan", "pani", "panie", "panowie", "papieros", "paragraf", "parsek",
	"państwo", "pełniący_obowiązki", "pikogram", "piątek", "piętro",
	"plac", "początek", "podkomisarz", "podporucznik", "podpunkt",
	"podpułkownik", "pojemność", "pokój", "poniedziałek", "porucznik",
	"poseł", "post_scriptum", "posterunkowy", "postscriptum", "powiat",
	"powierzchnia", "pozycja", "połowa", "południe", "praca", "procent",
	"profesor", "projekt", "projektant", "prokurator", "promil",
	"prywatna_wiadomość", "przebudowa", "przed_naszą_erą", "przyjazd",
	"przypis", "przypisek", "pseudonim", "punkt", "pułk", "pułkownik",
	"północ", "raz", "redakcja", "redaktor", "refren", "rezerwat",
	"reżyseria", "rotmistrz", "rozdział", "rycina", "rysunek", "rzeka",
	"sekunda", "senator", "siostra", "solidarność", "spółka",
	"spółka_akcyjna", "spółka_cywilna", "stopa", "stopień",
	"stowarzyszenie", "strony", "sygnatura", "szerokość", "sztuka",
	"tabela", "telefon", "temperatura", "tom", "towarzystwo",
	"towarzystwo_funduszy_inwestycyjnych", "towarzysz", "towarzyszka",
	"trade_mark", "trybuna", "tydzień", "ubiegłego_roku", "ubiegły_rok",
	"ulica", "uran", "ustawa", "ustęp", "ułan", "wartości_chrześcijańskie",
	"water_closet", "wejście", "wezwanie", "wiek", "wschód", "wkładka",
	"województwo", "wojna_światowa", "wolt", "wpierdol", "zachód",
	"zastępca", "zdjęcie", "zmiana", "znak", "związek", "Ściana_Wschodnia",
	"wszechświat", "wychowanie_fizyczne", "wydanie", "wyjście", "wysokość",
	"styczeń", "luty", "marzec", "kwiecień", "czerwiec", "lipiec",
	"sierpień", "wrzesień", "październik", "listopad", "grudzień",
	"Anno_Domini", "Immunoglobina_E", "Jednostka_Wojskowa", "Kodeks_Karny",
	"Krzyż_Walecznych", "Naczelna_Rada_Łowiecka",
	`Polska_Organizacja_Narodowa_R.P._im._Mjr._H._Dobrzańskiego_"Hubala"`,
	"Saint", "Solidarność", "Spółka_Akcyjna", "Sąd_Apelacyjny",
	"Turbine_Steam_Ship", "Wspólna_Polityka_Rybołówstwa",
	"Zasadnicza_Szkoła", "Dominikańskie_Centrum_Informacji_o_Sektach",
	"Dzieje_Apostolskie", "Dziennik_Ustaw", "Ewangelia_wg_świętego_Łukasza",
	"Ewangelia_świętego_Jana", "Ewangelia_świętego_Marka",
	"Ewangelia_świętego_Mateusza", "Kościół_Katolicki",
	"Kościół_Rzymskokatolicki", "Księga_Ezechiela", "Księga_Izajasza",
	"Księga_Joela", "Księga_Jonasza", "Księga_Mądrości",
	"Księga_Powtórzonego_Prawa", "Księga_Samuela", "Księga_Wyjścia",
	"List_do_Efezjan", "List_do_Kolosan", "List_do_Koryntian",
	"Nowy_Testament", "Radio_Maryja", "Stary_Testament",
	"Wniebowzięcia_Najświętszej_Marii_Panny", "arcybiskup", "biskup",
	"Ćwiczenia_Duchowe", "Święty")

var adjAbbrevs = collections.NewSet(
	"10-procentowy", "10-tysięczny", "2-procentowy", "30-procentowy",
	"400-tysięczny", "5-procentowy", "50-procentowy", "7-procentowy",
	"Gdański", "Opolski", "Wielki", "akcyjny", "angielski", "bardzo",
	"boży", "były", "centymetrowy", "cesarsko-królewski", "chrześcijański",
	"dawny", "dyskusyjny", "ekonomiczny", "elektryczny", "gdański",
	"geograficzny", "gminny", "grecki", "habilitowany", "inny", "innymi",
	"islandzki", "karny", "kaszubski", "katolicki", "kolejowy",
	"kwadratowy", "magnetyczny", "maksymalny", "minimalny", "młodszy",
	"najświętszy", "nasz", "nasza", "niemiecki", "odbudowany",
	"parafialny", "pięcioprocentowy", "podstawowy", "pojedynczy", "polski",
	"położony", "południowy", "procentowy", "przebudowany",
	"przeciwpancerny", "północny", "późniejszy", "rozbudowany", "różowy",
	"społeczny", "stumililitrowy", "starszy", "stary", "stołeczny",
	"szeregowy", "sześcienny", "ubiegły", "urodzony", "wagowy", "wielki",
	"wielkopolski", "wielmożny", "winien", "wschodni", "wyżej",
	"wyżej_wymieniony", "własna", "własny", "włoski", "zachodni",
	"zamieszkały", "zawodowy", "założony", "zbudowany", "zmarły",
	"łaciński", "średni", "świętej_pamięci", "święty", "żółty",
	"większy_niż_lub_równy")

var adpAbbrevs = collections.NewSet(
	"na_temat", "do_spraw", "koło", "około", "według")

var propnAbbrevs = collections.NewSet(
	"A", "AF", "B", "C", "Ch", "Cz", "D", "E", "F", "G", "H", "I", "J",
	"K", "L", "M", "N", "O", "P", "Q", "R", "Rz", "S", "St", "Sz", "T",
	"Th", "U", "V", "W", "X", "Z", "Ż", "Adam", "Agnieszka", "Andrzej",
	"Bernard", "Borowski", "Grażyna", "Krystyna", "Kublik", "Marek",
	"Mateusz", "Małgorzata", "Mister", "Przełęcz", "Stanisław", "Tadeusz",
	"Władysław", "Zenon", "Zygmunt", "Gazeta_Wyborcza", "Wiedza_i_Życie",
	"Wiedza_i_życie", "Wiedza_Życie", "Rzeczpospolita",
	"Rzeczpospolita_Polska", "Trybuna", "Trybuna_Ludu", "Matka_Boska",
	"Najświętsza_Maryja_Panna")

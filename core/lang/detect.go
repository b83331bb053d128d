package lang

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/textkit/lexi/core/script"
)

// Detect implements spec §4.2's contract:
//
//   - if allowed contains exactly one language, it is returned unscanned;
//   - if the script is Latin and allowed is empty, detection returns false
//     (Latin is too ambiguous to guess at);
//   - otherwise a trigram/character-set hybrid detector runs, constrained
//     to allowed when non-empty, and returns its best guess or false.
//
// Detect is called at most once per script-run by the orchestrator.
func Detect(text string, s script.Script, allowed []Language) (Language, bool) {
	if len(allowed) == 1 {
		return allowed[0], true
	}
	if s == script.Latin && len(allowed) == 0 {
		T().Debugf("lang: script Latin has no allow-list, declining to guess")
		return Und, false
	}
	candidates := allowed
	if len(candidates) == 0 {
		candidates = defaultCandidatesFor(s)
	}
	if len(candidates) == 0 {
		T().Debugf("lang: no trigram model for script %s, leaving language undetected", s)
		return Und, false
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return scoreTrigrams(text, candidates)
}

// defaultCandidatesFor returns the languages this detector has trigram
// models for within a script, when no allow-list constrains the call.
func defaultCandidatesFor(s script.Script) []Language {
	switch s {
	case script.Latin:
		return nil // ambiguous by contract unless allow-listed
	case script.Cyrillic:
		return []Language{Rus, Ukr}
	case script.Greek:
		return []Language{Ell}
	case script.Arabic:
		return []Language{Ara, Fas}
	case script.Hebrew:
		return []Language{Heb}
	case script.Devanagari:
		return []Language{Hin}
	case script.Bengali:
		return []Language{Ben}
	case script.Tamil:
		return []Language{Tam}
	case script.Thai:
		return []Language{Tha}
	case script.Khmer:
		return []Language{Khm}
	case script.Myanmar:
		return []Language{Mya}
	case script.Hangul:
		return []Language{Kor}
	case script.Cj:
		return []Language{Jpn, Zho}
	}
	return nil
}

var (
	modelsOnce sync.Once
	models     map[Language]map[string]float64 // trigram -> normalized frequency
)

// buildModels lazily constructs small trigram frequency tables for the
// languages the default candidate sets can disambiguate between, mirroring
// the teacher reference's lazy once-initialized tables.
func buildModels() {
	models = map[Language]map[string]float64{
		Rus: freqTable("и", "не", "то", "ст", "но", "ен", "на", "ка", "ет", "ре"),
		Ukr: freqTable("ї", "ть", "ов", "ен", "на", "ка", "ів", "ер", "ук", "ан"),
		Ara: freqTable("ال", "في", "من", "ها", "ان", "ون", "ين", "لا", "ما", "يا"),
		Fas: freqTable("ها", "در", "می", "که", "از", "با", "را", "ان", "ات", "آن"),
		Jpn: freqTable("です", "ます", "した", "ない", "こと", "この", "ので", "それ", "そし", "れる"),
		Zho: freqTable("的", "了", "是", "在", "我", "有", "和", "人", "这", "不"),
	}
}

// freqTable assigns a uniform decaying weight to an ordered list of the
// most discriminating n-grams for a language; order matters (earlier is
// more discriminating), weight is not a corpus frequency but a ranking
// signal, adequate for the short-run disambiguation this detector performs.
func freqTable(grams ...string) map[string]float64 {
	m := make(map[string]float64, len(grams))
	n := float64(len(grams))
	for i, g := range grams {
		m[g] = (n - float64(i)) / n
	}
	return m
}

type scoredLang struct {
	lang  Language
	score float64
}

// scoreTrigrams ranks candidates by the weighted count of the text's
// n-grams found in each candidate's model and returns the highest; when
// no n-gram matches any model, it returns the first candidate.
func scoreTrigrams(text string, candidates []Language) (Language, bool) {
	modelsOnce.Do(buildModels)
	grams := extractGrams(text)
	if len(grams) == 0 {
		return candidates[0], true
	}
	scores := make([]scoredLang, 0, len(candidates))
	var total float64
	for _, c := range candidates {
		model := models[c]
		var s float64
		for g, count := range grams {
			if w, ok := model[g]; ok {
				s += w * float64(count)
			}
		}
		scores = append(scores, scoredLang{c, s})
		total += s
	}
	if total == 0 {
		return candidates[0], true
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	return scores[0].lang, true
}

// extractGrams counts rune-bigrams (intentionally short, to stay cheap on
// the per-run call budget) over the run, skipping runs shorter than 2
// runes.
func extractGrams(text string) map[string]int {
	grams := make(map[string]int)
	runes := make([]rune, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		runes = append(runes, r)
	}
	for i := 0; i+1 < len(runes); i++ {
		grams[string(runes[i:i+2])]++
	}
	return grams
}

package normalize

import (
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

// JapaneseNormalizer folds Katakana to Hiragana so "ダメ" (Katakana) and
// "だめ" (Hiragana) share a lemma; ASCII passes through untouched so
// mixed Japanese/Latin tokens don't get their Latin half mangled.
type JapaneseNormalizer struct{}

func NewJapaneseNormalizer() *JapaneseNormalizer { return &JapaneseNormalizer{} }

func (*JapaneseNormalizer) Name() string { return "japanese" }

func (*JapaneseNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Cj
}

// Katakana block (U+30A1-U+30F6) sits exactly 0x60 above its Hiragana
// counterpart (U+3041-U+3096); long-vowel mark U+30FC and the
// iteration marks have no Hiragana equivalent and pass through unchanged.
func (*JapaneseNormalizer) NormalizeRune(r rune) []rune {
	if r >= 0x30A1 && r <= 0x30F6 {
		return []rune{r - 0x60}
	}
	return []rune{r}
}

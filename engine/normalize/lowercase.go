package normalize

import (
	"unicode"

	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/token"
)

// LowercaseNormalizer is cascade step 2: applies only to bicameral
// scripts (Latin, Cyrillic, Greek, Georgian, Armenian). It is
// locale-aware rather than a pure rune map, because Turkish casing
// (dotted/dotless I) depends on the original case and must be resolved
// here — the cascade's fixed order runs this stage before any
// script-specific folder sees the lemma, and it has no separate Turkish
// folder.
type LowercaseNormalizer struct{}

func NewLowercaseNormalizer() *LowercaseNormalizer { return &LowercaseNormalizer{} }

func (*LowercaseNormalizer) Name() string { return "lowercase" }

func (*LowercaseNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script.IsBicameral()
}

func (*LowercaseNormalizer) NormalizeToken(tok *token.Token) {
	fold := unicode.ToLower
	if tok.HasLang && tok.Language == lang.Tur {
		fold = foldTurkish
	}
	applyCharWise(tok, func(r rune) []rune { return []rune{fold(r)} })
}

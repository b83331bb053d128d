package normalize

import (
	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

// SwedishNormalizer recomposes base letter + combining ring/diaeresis
// (left over from NFKDNormalizer decomposing å/ä/ö) back into the
// precomposed Swedish letters. Unlike generic Latin diacritics, å/ä/ö
// are distinct letters of the Swedish alphabet, not accented variants of
// a/o — folding them away like French "café" would merge distinct words.
//
// It only runs when Language == Swe is detected (an explicit allow-list
// entry), since applying it to short, ambiguous Latin-script runs is
// noisy: "a" + combining ring is as likely a stray diacritic as an
// intended "å" without other Swedish evidence.
type SwedishNormalizer struct{}

func NewSwedishNormalizer() *SwedishNormalizer { return &SwedishNormalizer{} }

func (*SwedishNormalizer) Name() string { return "swedish" }

func (*SwedishNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Latin &&
		tok.HasLang && tok.Language == lang.Swe
}

const combiningRingAbove = '̊'

func (*SwedishNormalizer) NormalizeToken(tok *token.Token) {
	recomposePairs(tok, func(a, b rune) (rune, bool) {
		switch {
		case b == combiningRingAbove && a == 'A':
			return 'Å', true
		case b == combiningRingAbove && a == 'a':
			return 'å', true
		case b == combiningDiaeresis && a == 'A':
			return 'Ä', true
		case b == combiningDiaeresis && a == 'a':
			return 'ä', true
		case b == combiningDiaeresis && a == 'O':
			return 'Ö', true
		case b == combiningDiaeresis && a == 'o':
			return 'ö', true
		}
		return 0, false
	})
}

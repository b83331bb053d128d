package normalize

import (
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

// RussianNormalizer recomposes "Ё"/"ё" back down to plain "Е"/"е". By the
// time this stage runs, NFKDNormalizer (cascade step 1) has already
// canonically decomposed ё into е + combining diaeresis (U+0308), so the
// fold is a two-rune lookahead, not a single-rune map: е/Е followed by
// the diaeresis recomposes to е/Е alone, i.e. the diaeresis is dropped.
type RussianNormalizer struct{}

func NewRussianNormalizer() *RussianNormalizer { return &RussianNormalizer{} }

func (*RussianNormalizer) Name() string { return "russian" }

func (*RussianNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Cyrillic
}

const combiningDiaeresis = '̈'

func (*RussianNormalizer) NormalizeToken(tok *token.Token) {
	recomposePairs(tok, func(a, b rune) (rune, bool) {
		if b != combiningDiaeresis {
			return 0, false
		}
		switch a {
		case 'Е':
			return 'Е', true
		case 'е':
			return 'е', true
		}
		return 0, false
	})
}

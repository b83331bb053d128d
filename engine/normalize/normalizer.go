// Package normalize implements the normalizer cascade of spec §4.8: a
// fixed-order sequence of char-wise and whole-token rewrites that keep
// the token's char-map in lock-step with its lemma.
package normalize

import "github.com/textkit/lexi/core/token"

// Normalizer is either char-wise (CharNormalizer) or whole-token
// (TokenNormalizer). ShouldNormalize gates whether the cascade applies it
// to a given token, so script- or language-specific normalizers run only
// when applicable.
type Normalizer interface {
	Name() string
	ShouldNormalize(tok *token.Token) bool
}

// CharNormalizer maps a single input code point to zero, one, or many
// output code points.
type CharNormalizer interface {
	Normalizer
	NormalizeRune(r rune) []rune
}

// TokenNormalizer may rewrite the entire lemma (and char-map) in one
// pass — used where runs of multiple code points recompose or collapse.
type TokenNormalizer interface {
	Normalizer
	NormalizeToken(tok *token.Token)
}

package normalize

import "github.com/textkit/lexi/core/token"

// Cascade runs a fixed, ordered sequence of normalizers over a token.
type Cascade struct {
	stages []Normalizer
}

// NewCascade builds the cascade in the given order. A nil stage (e.g. a
// script-specific normalizer the caller doesn't want wired in) is
// dropped silently.
func NewCascade(stages ...Normalizer) *Cascade {
	c := &Cascade{}
	for _, s := range stages {
		if s != nil {
			c.stages = append(c.stages, s)
		}
	}
	return c
}

// DefaultCascade returns the cascade in spec §4.8's fixed order:
//  1. Compatibility decomposition (NFKD).
//  2. Lowercase (bicameral scripts only; Turkish-aware).
//  3. Script-specific folders: Chinese, Japanese, Greek, Russian,
//     Swedish, Vietnamese, Arabic/Persian, quote folding.
//  4. Control-character stripper.
//  5. Nonspacing-mark stripper.
func DefaultCascade() *Cascade {
	return NewCascade(
		NewNFKDNormalizer(),
		NewLowercaseNormalizer(),
		NewChineseNormalizer(),
		NewJapaneseNormalizer(),
		NewGreekNormalizer(),
		NewRussianNormalizer(),
		NewSwedishNormalizer(),
		NewVietnameseNormalizer(),
		NewPersianArabicNormalizer(),
		NewQuoteNormalizer(),
		NewControlNormalizer(),
		NewNonspacingNormalizer(),
	)
}

// Run applies every stage whose ShouldNormalize accepts tok, in order.
func (c *Cascade) Run(tok *token.Token) {
	for _, n := range c.stages {
		if !n.ShouldNormalize(tok) {
			continue
		}
		switch norm := n.(type) {
		case TokenNormalizer:
			norm.NormalizeToken(tok)
		case CharNormalizer:
			applyCharWise(tok, norm.NormalizeRune)
		}
	}
}

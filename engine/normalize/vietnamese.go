package normalize

import (
	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/token"
)

// VietnameseNormalizer folds the D-with-stroke letter (Đ/đ, and the
// look-alike Icelandic Eth Ð/ð that OCR and bad transliterations
// sometimes substitute) down to plain d, so "Đà Nẵng" and "Da Nang"
// index to comparable lemmas.
type VietnameseNormalizer struct{}

func NewVietnameseNormalizer() *VietnameseNormalizer { return &VietnameseNormalizer{} }

func (*VietnameseNormalizer) Name() string { return "vietnamese" }

func (*VietnameseNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.HasLang && tok.Language == lang.Vie
}

func (*VietnameseNormalizer) NormalizeRune(r rune) []rune {
	switch r {
	case 'Đ', 'Ð':
		return []rune{'D'}
	case 'đ', 'ð':
		return []rune{'d'}
	}
	return []rune{r}
}

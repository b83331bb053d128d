package normalize

import (
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

// PersianArabicNormalizer strips the tatweel elongation character and
// folds the alef and yā' presentation/dialect variants to their base
// forms, so "إسلام", "أسلام" and "اسلام" compare on the same stem and
// stylistic kashida stretching ("سلام" vs "س​ـ​لام") doesn't split a word.
type PersianArabicNormalizer struct{}

func NewPersianArabicNormalizer() *PersianArabicNormalizer { return &PersianArabicNormalizer{} }

func (*PersianArabicNormalizer) Name() string { return "persian_arabic" }

func (*PersianArabicNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Arabic
}

const tatweel = 'ـ'

var arabicFold = map[rune]rune{
	'أ': 'ا', // alef with hamza above
	'إ': 'ا', // alef with hamza below
	'آ': 'ا', // alef with madda above
	'ٱ': 'ا', // alef wasla
	'ى': 'ي', // alef maksura -> yeh
	'ئ': 'ي', // yeh with hamza above
	'ے': 'ي', // Urdu barree yeh
	'ک': 'ك', // Persian/Urdu keheh -> Arabic kaf
	'گ': 'ك', // Persian gaf -> Arabic kaf
}

func (*PersianArabicNormalizer) NormalizeRune(r rune) []rune {
	if r == tatweel {
		return nil
	}
	if folded, ok := arabicFold[r]; ok {
		return []rune{folded}
	}
	return []rune{r}
}

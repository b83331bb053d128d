package normalize

import "github.com/textkit/lexi/core/token"

// QuoteNormalizer folds the common curly/angled quote and apostrophe
// variants down to the ASCII ' and " a search index indexes on, so
// "café's" and "café's" (U+2019) hit the same posting list.
type QuoteNormalizer struct{}

func NewQuoteNormalizer() *QuoteNormalizer { return &QuoteNormalizer{} }

func (*QuoteNormalizer) Name() string { return "quote" }

func (*QuoteNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word
}

var quoteFold = map[rune]rune{
	'‘': '\'', // LEFT SINGLE QUOTATION MARK
	'’': '\'', // RIGHT SINGLE QUOTATION MARK
	'‚': '\'', // SINGLE LOW-9 QUOTATION MARK
	'‛': '\'', // SINGLE HIGH-REVERSED-9 QUOTATION MARK
	'′': '\'', // PRIME
	'`': '\'', // GRAVE ACCENT used as apostrophe
	'´': '\'', // ACUTE ACCENT used as apostrophe
	'“': '"',  // LEFT DOUBLE QUOTATION MARK
	'”': '"',  // RIGHT DOUBLE QUOTATION MARK
	'„': '"',  // DOUBLE LOW-9 QUOTATION MARK
	'‟': '"',  // DOUBLE HIGH-REVERSED-9 QUOTATION MARK
	'″': '"',  // DOUBLE PRIME
	'«': '"',  // LEFT-POINTING DOUBLE ANGLE QUOTATION MARK
	'»': '"',  // RIGHT-POINTING DOUBLE ANGLE QUOTATION MARK
}

func (*QuoteNormalizer) NormalizeRune(r rune) []rune {
	if folded, ok := quoteFold[r]; ok {
		return []rune{folded}
	}
	return []rune{r}
}

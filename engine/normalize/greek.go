package normalize

import (
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

// GreekNormalizer folds final sigma (ς) to medial sigma (σ) so "ὈΔΥΣΣΕΎΣ"
// and "οδυσσέας" compare on the same stem component. Accent stripping is
// already handled generically by NFKDNormalizer + NonspacingNormalizer.
type GreekNormalizer struct{}

func NewGreekNormalizer() *GreekNormalizer { return &GreekNormalizer{} }

func (*GreekNormalizer) Name() string { return "greek" }

func (*GreekNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Greek
}

func (*GreekNormalizer) NormalizeRune(r rune) []rune {
	if r == 'ς' {
		return []rune{'σ'}
	}
	return []rune{r}
}

package normalize

import (
	"golang.org/x/text/unicode/norm"

	"github.com/textkit/lexi/core/token"
)

// NFKDNormalizer applies Unicode compatibility decomposition (NFKD), the
// step that turns "é" (single code point) into "e" + combining acute, and
// ligatures like "ﬁ" into "f"+"i", ahead of the nonspacing-mark strip.
type NFKDNormalizer struct{}

func NewNFKDNormalizer() *NFKDNormalizer { return &NFKDNormalizer{} }

func (*NFKDNormalizer) Name() string { return "nfkd" }

func (*NFKDNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word
}

// NormalizeToken decomposes the lemma one code point at a time through
// applyCharWise: norm.NFKD can expand one input code point into several
// output code points (one-to-many), which applyCharWise's per-rune
// contract supports, so each char-map entry keeps its own decomposition.
func (n *NFKDNormalizer) NormalizeToken(tok *token.Token) {
	applyCharWise(tok, n.decomposeRune)
}

func (*NFKDNormalizer) decomposeRune(r rune) []rune {
	return []rune(norm.NFKD.String(string(r)))
}

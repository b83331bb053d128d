package normalize

import (
	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/core/token"
)

// NonspacingNormalizer drops combining marks left behind by NFKD
// decomposition (e.g. the combining acute left over from "é" -> "e" +
// U+0301), using core/tables.DefaultNonspacingMarks unless a caller-built
// set is substituted.
type NonspacingNormalizer struct {
	Marks *tables.NonspacingMarks
}

func NewNonspacingNormalizer() *NonspacingNormalizer {
	return &NonspacingNormalizer{Marks: tables.DefaultNonspacingMarks}
}

func (*NonspacingNormalizer) Name() string { return "nonspacing" }

func (*NonspacingNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word
}

func (n *NonspacingNormalizer) NormalizeRune(r rune) []rune {
	if n.Marks.Is(r) {
		return nil
	}
	return []rune{r}
}

package normalize

import (
	"unicode"

	"github.com/textkit/lexi/core/token"
)

// ControlNormalizer drops C0/C1 control characters other than newline and
// tab, and the BOM, which
// tokenizers upstream (HTML extraction, PDF text layers) routinely leak
// into the input stream.
type ControlNormalizer struct{}

func NewControlNormalizer() *ControlNormalizer { return &ControlNormalizer{} }

func (*ControlNormalizer) Name() string { return "control" }

func (*ControlNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word
}

const byteOrderMark = '\uFEFF'

func (*ControlNormalizer) NormalizeRune(r rune) []rune {
	if r == byteOrderMark || (unicode.IsControl(r) && r != '\n' && r != '\t') {
		return nil
	}
	return []rune{r}
}

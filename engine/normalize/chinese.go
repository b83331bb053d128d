package normalize

import (
	"sync"

	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/core/token"
)

// ChineseNormalizer folds Han K-variant ideographs to their canonical
// form, then folds traditional characters to simplified, a deterministic
// two-step choice among the open question's alternatives (K-variant
// alone vs. K-variant + Pinyin transliteration): this implementation
// stops at simplified Han, leaving Pinyin transliteration to a future
// pluggable normalizer rather than baking it into the core cascade.
type ChineseNormalizer struct {
	KVariants  *tables.KVariants
	Simplified *tables.KVariants // traditional -> simplified fold, same table shape
}

var (
	defaultChineseOnce sync.Once
	defaultChinese     *ChineseNormalizer
)

// NewChineseNormalizer returns the normalizer wired to the process-wide
// default K-variant and traditional->simplified tables. Both are empty
// (identity) until a caller loads real dictionary data via
// core/tables.ParseKVariants and replaces DefaultKVariants / DefaultSimplified.
func NewChineseNormalizer() *ChineseNormalizer {
	defaultChineseOnce.Do(func() {
		defaultChinese = &ChineseNormalizer{
			KVariants:  tables.DefaultKVariants,
			Simplified: tables.DefaultSimplified,
		}
	})
	return defaultChinese
}

func (*ChineseNormalizer) Name() string { return "chinese" }

func (*ChineseNormalizer) ShouldNormalize(tok *token.Token) bool {
	return tok.Kind == token.Word && tok.Script == script.Cj
}

func (c *ChineseNormalizer) NormalizeRune(r rune) []rune {
	r = c.KVariants.Fold(r)
	r = c.Simplified.Fold(r)
	return []rune{r}
}

// Package classify assigns a token's Kind before the normalizer cascade
// runs (spec §4.7): stop-word membership wins over separator membership
// when both match the same lemma (spec's tested invariant).
package classify

import (
	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/core/token"
)

// Classifier holds the configured stop-word and separator tables.
type Classifier struct {
	StopWords      *tables.StopWords
	SeparatorKinds map[string]tables.SeparatorKind // built by New; a nil map matches no separator
}

// New builds a Classifier. If seps is empty, the built-in default
// separator set is used (spec §4.7 step 2).
func New(stopWords *tables.StopWords, seps []tables.Separator) *Classifier {
	if len(seps) == 0 {
		seps = tables.DefaultSeparators
	}
	return &Classifier{StopWords: stopWords, SeparatorKinds: tables.ByText(seps)}
}

// Classify assigns tok.Kind in place. Tokens that already carry a Kind
// other than Unknown are left untouched.
func (c *Classifier) Classify(tok *token.Token) {
	if tok.Kind != token.Unknown {
		return
	}
	if c.StopWords.Contains(tok.Lemma) {
		tok.Kind = token.StopWord
		return
	}
	if kind, ok := c.SeparatorKinds[tok.Lemma]; ok {
		if kind == tables.Hard {
			tok.Kind = token.SeparatorHard
		} else {
			tok.Kind = token.SeparatorSoft
		}
		return
	}
	tok.Kind = token.Word
}

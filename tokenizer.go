package lexi

import (
	"github.com/textkit/lexi/core/token"
	"github.com/textkit/lexi/engine/pipeline"
)

// Tokenizer is immutable after construction: every shared table it
// references is read-only, so a single Tokenizer may be used from
// multiple goroutines concurrently (spec §5).
type Tokenizer struct {
	orchestrator *pipeline.Orchestrator
}

// Segment returns tokens with Lemma equal to the original slice and
// Kind left Unknown — the offset/script/language assignment pass only,
// without classification or normalization (spec §4.9 segment).
func (tz *Tokenizer) Segment(text string) []token.Token {
	return tz.orchestrator.Segments(text)
}

// Tokenize runs the full pipeline: segmentation, classification, and the
// normalizer cascade (spec §4.9 tokenize).
func (tz *Tokenizer) Tokenize(text string) []token.Token {
	return tz.orchestrator.Tokenize(text)
}

// Reconstructed pairs one final token with the original-text slice it
// was built from (spec §4.9 reconstruct).
type Reconstructed struct {
	Original string
	Token    token.Token
}

// Reconstruct runs the full pipeline and pairs each token with its
// original-text slice; concatenating every Original in order reproduces
// text exactly (spec §8 property 1).
func (tz *Tokenizer) Reconstruct(text string) []Reconstructed {
	toks := tz.orchestrator.Tokenize(text)
	out := make([]Reconstructed, len(toks))
	for i, tok := range toks {
		out[i] = Reconstructed{Original: text[tok.ByteStart:tok.ByteEnd], Token: tok}
	}
	return out
}

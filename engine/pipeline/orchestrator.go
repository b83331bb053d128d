package pipeline

import (
	"unicode/utf8"

	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
	"github.com/textkit/lexi/engine/classify"
	"github.com/textkit/lexi/engine/normalize"
	"github.com/textkit/lexi/engine/segment"
)

// Orchestrator composes the script-run splitter, per-run language
// detector and segmenter lookup, the separator interleaver, the token
// classifier, and the normalizer cascade into the single lazy pipeline
// of spec §2/§4.9. Classification runs before normalization: the
// classifier sees each token's pre-normalization lemma, per the system
// diagram's builder -> classify -> normalize ordering.
type Orchestrator struct {
	Registry      *segment.Registry
	AllowList     lang.AllowList
	Classifier    *classify.Classifier
	Cascade       *normalize.Cascade
	Separators    *SeparatorMatcher
	CreateCharMap bool
}

// Tokenize runs the full pipeline over text and returns the final token
// stream (spec §4.9 Tokenize()). Segment() (offsets only, no
// normalization/classification) is the same walk with the later stages
// skipped; callers needing that cheaper form should call
// (*Orchestrator).Segments directly — see lexi.Tokenizer.
func (o *Orchestrator) Tokenize(text string) []token.Token {
	var out []token.Token
	runs := NewScriptRuns(text)
	for {
		run, ok := runs.Next()
		if !ok {
			break
		}
		seg, detected, hasLang := o.resolveSegmenter(run)
		pairs := Interleave(run.Text, o.Separators)

		bytePos := run.ByteStart
		charPos := run.CharStart
		for _, p := range pairs {
			var spans []segment.Span
			if p.Kind == Match {
				spans = []segment.Span{{Start: 0, End: len(p.Text)}}
			} else {
				spans = seg.Segment(p.Text)
			}
			for _, sp := range spans {
				tk := token.New(text, bytePos+sp.Start, bytePos+sp.End,
					charPos+utf8.RuneCountInString(p.Text[:sp.Start]), run.Script)
				if hasLang {
					tk.Language = detected
					tk.HasLang = true
				}
				o.Classifier.Classify(&tk)
				if o.CreateCharMap {
					tk.InitCharMap(text)
				}
				o.Cascade.Run(&tk)
				out = append(out, tk)
			}
			bytePos += len(p.Text)
			charPos += utf8.RuneCountInString(p.Text)
		}
	}
	return out
}

// Segments returns only the offset-bearing spans of the pipeline (script
// classification, language detection, segmentation, interleaving) with
// classification and normalization skipped — the cheaper Segment() form
// of spec §4.9.
func (o *Orchestrator) Segments(text string) []token.Token {
	var out []token.Token
	runs := NewScriptRuns(text)
	for {
		run, ok := runs.Next()
		if !ok {
			break
		}
		seg, detected, hasLang := o.resolveSegmenter(run)
		pairs := Interleave(run.Text, o.Separators)

		bytePos := run.ByteStart
		charPos := run.CharStart
		for _, p := range pairs {
			var spans []segment.Span
			if p.Kind == Match {
				spans = []segment.Span{{Start: 0, End: len(p.Text)}}
			} else {
				spans = seg.Segment(p.Text)
			}
			for _, sp := range spans {
				tk := token.New(text, bytePos+sp.Start, bytePos+sp.End,
					charPos+utf8.RuneCountInString(p.Text[:sp.Start]), run.Script)
				if hasLang {
					tk.Language = detected
					tk.HasLang = true
				}
				out = append(out, tk)
			}
			bytePos += len(p.Text)
			charPos += utf8.RuneCountInString(p.Text)
		}
	}
	return out
}

func (o *Orchestrator) resolveSegmenter(run Run) (segment.Segmenter, lang.Language, bool) {
	if run.Script == script.Other {
		return o.Registry.Lookup(run.Script, lang.Und, false), lang.Und, false
	}
	allowed := o.AllowList.For(run.Script)
	detected, ok := lang.Detect(run.Text, run.Script, allowed)
	seg := o.Registry.Lookup(run.Script, detected, ok)
	return seg, detected, ok
}

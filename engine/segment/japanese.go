package segment

import (
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// JapaneseSegmenter wraps the kagome/v2 morphological analyzer with the
// bundled IPA dictionary (spec §4.5: "Morphological analyzer returning
// token text and byte offsets; the orchestrator trusts offsets"). The
// tokenizer is built lazily once, on first use, mirroring the teacher's
// lazy-singleton style for process-wide immutable resources.
type JapaneseSegmenter struct{}

func NewJapaneseSegmenter() *JapaneseSegmenter { return &JapaneseSegmenter{} }

var (
	kagomeOnce sync.Once
	kagomeTok  *tokenizer.Tokenizer
	kagomeErr  error
)

func kagomeTokenizer() (*tokenizer.Tokenizer, error) {
	kagomeOnce.Do(func() {
		kagomeTok, kagomeErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return kagomeTok, kagomeErr
}

func (*JapaneseSegmenter) Segment(run string) []Span {
	kg, err := kagomeTokenizer()
	if err != nil || kg == nil {
		return []Span{{Start: 0, End: len(run)}}
	}
	_, offsets := runeOffsets(run)
	var spans []Span
	for _, kt := range kg.Tokenize(run) {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		start, end := kt.Start, kt.End
		if start < 0 || end > len(offsets)-1 || start >= end {
			continue
		}
		spans = append(spans, Span{Start: offsets[start], End: offsets[end]})
	}
	if len(spans) == 0 {
		return []Span{{Start: 0, End: len(run)}}
	}
	return spans
}

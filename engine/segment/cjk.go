package segment

import "github.com/textkit/lexi/core/dict"

// FSTSegmenter wraps a longest-prefix dictionary (spec §4.6) as a
// Segmenter, used for CJK, Thai, Khmer and German (spec §4.5): scripts
// without whitespace word boundaries, or (German) where compound nouns
// benefit from dictionary-driven splitting over naive whitespace tokens.
type FSTSegmenter struct {
	fst *dict.FST
	cap int
}

// NewFSTSegmenter wraps fst. unmatchedCap bounds how many consecutive
// unmatched code points accumulate into one fallback span before being
// flushed (spec §4.6); 0 means unbounded.
func NewFSTSegmenter(fst *dict.FST, unmatchedCap int) *FSTSegmenter {
	return &FSTSegmenter{fst: fst, cap: unmatchedCap}
}

func (s *FSTSegmenter) Segment(run string) []Span {
	var capPtr *int
	if s.cap > 0 {
		c := s.cap
		capPtr = &c
	}
	pieces := s.fst.Segment(run, capPtr)
	var spans []Span
	pos := 0
	for _, p := range pieces {
		spans = append(spans, Span{Start: pos, End: pos + len(p)})
		pos += len(p)
	}
	return spans
}

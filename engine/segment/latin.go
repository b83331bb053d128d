package segment

// LatinSegmenter implements spec §4.5's Latin strategy: Unicode
// word-boundary split, then apostrophe split, then optionally
// camelCase and/or snake_case splitting — both off by default, since
// they only make sense for identifier-like text (source code, product
// codes), not prose.
type LatinSegmenter struct {
	CamelCase bool
	SnakeCase bool
}

// NewLatinSegmenter builds a LatinSegmenter with the given identifier
// splitting options enabled.
func NewLatinSegmenter(camelCase, snakeCase bool) *LatinSegmenter {
	return &LatinSegmenter{CamelCase: camelCase, SnakeCase: snakeCase}
}

func (s *LatinSegmenter) Segment(run string) []Span {
	spans := uax29Spans(run)
	spans = refineSpans(run, spans, splitApostrophe)
	if s.CamelCase {
		spans = refineSpans(run, spans, splitCamelCase)
	}
	if s.SnakeCase {
		spans = refineSpans(run, spans, splitSnakeCase)
	}
	return spans
}

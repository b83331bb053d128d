package segment

import "strings"

// ArabicSegmenter runs Unicode word-boundary segmentation, then splits
// on ASCII punctuation, then splits any resulting piece that begins with
// the definite article "ال" into the article and the remainder — a
// deliberate over-split (spec §4.5, §9 Open Question): real words
// starting with "ال" like "البانيا" (Albania) get split too, which is
// accepted recall-favoring behavior, not a bug to special-case away.
type ArabicSegmenter struct{}

func NewArabicSegmenter() *ArabicSegmenter { return &ArabicSegmenter{} }

const arabicDefiniteArticle = "ال"

func (*ArabicSegmenter) Segment(run string) []Span {
	spans := refineSpans(run, uax29Spans(run), splitASCIIPunctuationInclusive)
	return refineSpans(run, spans, splitArabicArticle)
}

// splitASCIIPunctuationInclusive splits s at every ASCII punctuation
// byte, keeping each punctuation character attached to the piece that
// precedes it (Rust's split_inclusive semantics).
func splitASCIIPunctuationInclusive(s string) []Span {
	var out []Span
	start := 0
	for i := 0; i < len(s); i++ {
		if isASCIIPunct(s[i]) {
			out = append(out, Span{Start: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, Span{Start: start, End: len(s)})
	}
	return out
}

func isASCIIPunct(b byte) bool {
	return (b >= '!' && b <= '/') || (b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}

func splitArabicArticle(s string) []Span {
	if rest, ok := strings.CutPrefix(s, arabicDefiniteArticle); ok && rest != "" {
		return []Span{{Start: 0, End: len(arabicDefiniteArticle)}, {Start: len(arabicDefiniteArticle), End: len(s)}}
	}
	return []Span{{Start: 0, End: len(s)}}
}

package segment

// HebrewSegmenter runs Unicode word-boundary segmentation plus
// apostrophe splitting (spec §4.5), the same apostrophe convention as
// Latin — Hebrew uses the ASCII/curly apostrophe to mark abbreviated
// forms (gershayim-adjacent usage) the same way Latin uses it for
// elision.
type HebrewSegmenter struct{}

func NewHebrewSegmenter() *HebrewSegmenter { return &HebrewSegmenter{} }

func (*HebrewSegmenter) Segment(run string) []Span {
	return refineSpans(run, uax29Spans(run), splitApostrophe)
}

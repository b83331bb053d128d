package segment

import "github.com/clipperhouse/uax29/words"

// uax29Spans runs the Unicode word-boundary algorithm (UAX #29) over run
// and returns each resulting word/punctuation/space span as a byte
// range. clipperhouse/uax29/words exposes its algorithm as a
// bufio.SplitFunc; calling it directly in a loop (rather than through
// bufio.Scanner, which doesn't expose byte offsets) gives the spans this
// package's Segmenter contract needs.
func uax29Spans(run string) []Span {
	data := []byte(run)
	var spans []Span
	pos := 0
	for pos < len(data) {
		advance, tok, err := words.SplitFunc(data[pos:], true)
		if err != nil || advance <= 0 {
			spans = append(spans, Span{Start: pos, End: len(data)})
			break
		}
		if len(tok) > 0 {
			spans = append(spans, Span{Start: pos, End: pos + advance})
		}
		pos += advance
	}
	return spans
}

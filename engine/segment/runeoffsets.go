package segment

import "unicode/utf8"

// runeOffsets decodes s into its runes alongside each rune's byte offset,
// with a trailing sentinel offset equal to len(s) — the shared scaffolding
// the camelCase and snake_case boundary scanners build their byte spans on.
func runeOffsets(s string) (runes []rune, offsets []int) {
	offsets = make([]int, 0, len(s)+1)
	pos := 0
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		runes = append(runes, r)
		offsets = append(offsets, pos)
		pos += size
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

// refineSpans re-splits each existing span's substring of text through
// splitter and re-bases the results to absolute offsets into text.
func refineSpans(text string, spans []Span, splitter func(string) []Span) []Span {
	var out []Span
	for _, sp := range spans {
		for _, piece := range splitter(text[sp.Start:sp.End]) {
			out = append(out, Span{Start: sp.Start + piece.Start, End: sp.Start + piece.End})
		}
	}
	return out
}

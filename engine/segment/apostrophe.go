package segment

import "unicode/utf8"

// splitApostrophe splits s on ASCII and curly apostrophes, attaching
// each apostrophe to the left piece (spec §4.5: French-style elision —
// "l'amour" segments to "l'", "amour").
func splitApostrophe(s string) []Span {
	var out []Span
	start := 0
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\'' || r == '’' {
			out = append(out, Span{Start: start, End: i})
			start = i
		}
	}
	if start < len(s) {
		out = append(out, Span{Start: start, End: len(s)})
	}
	return out
}

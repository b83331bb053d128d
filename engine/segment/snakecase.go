package segment

import "unicode"

// splitSnakeCase splits s into alternating runs of punctuation-connector
// characters (underscore and its Unicode relatives, category Pc) versus
// everything else; nonspacing marks stay attached to whichever run they
// trail. "snake_case" -> "snake", "_", "case"; "kebab-case" is untouched
// since '-' is category Pd, not Pc.
func splitSnakeCase(s string) []Span {
	runes, offsets := runeOffsets(s)
	if len(runes) == 0 {
		return nil
	}
	var out []Span
	start := 0
	lastWasConnector := unicode.Is(unicode.Pc, runes[0])
	for i := 1; i < len(runes); i++ {
		r := runes[i]
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		isConnector := unicode.Is(unicode.Pc, r)
		if isConnector != lastWasConnector {
			out = append(out, Span{Start: offsets[start], End: offsets[i]})
			start = i
			lastWasConnector = isConnector
		}
	}
	out = append(out, Span{Start: offsets[start], End: len(s)})
	return out
}

package segment

// KoreanSegmenter is the built-in fallback for Korean: it groups maximal
// runs of Hangul syllable-block code points (and attached Hangul Jamo)
// into single spans, with no morphological awareness. Spec §4.5 scopes
// concrete Korean morphological analyzers out as an external
// collaborator; production deployments should Register their own
// Segmenter over (script.Hangul, lang.Kor) in the pipeline's registry
// instead of relying on this default.
type KoreanSegmenter struct{}

func NewKoreanSegmenter() *KoreanSegmenter { return &KoreanSegmenter{} }

func isHangul(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
		return true
	case r >= 0x1100 && r <= 0x11FF: // Hangul Jamo
		return true
	case r >= 0x3130 && r <= 0x318F: // Hangul Compatibility Jamo
		return true
	}
	return false
}

func (*KoreanSegmenter) Segment(run string) []Span {
	runes, offsets := runeOffsets(run)
	if len(runes) == 0 {
		return nil
	}
	var spans []Span
	start := 0
	inHangul := isHangul(runes[0])
	for i := 1; i < len(runes); i++ {
		cur := isHangul(runes[i])
		if cur != inHangul {
			spans = append(spans, Span{Start: offsets[start], End: offsets[i]})
			start = i
			inHangul = cur
		}
	}
	spans = append(spans, Span{Start: offsets[start], End: len(run)})
	return spans
}

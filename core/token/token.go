// Package token defines the Token record and the char-map bijection that
// projects normalized-lemma byte offsets back onto original-text byte
// offsets (spec §3). Tokens are plain values: no shared ownership, no
// back-reference to the pipeline that built them.
package token

import (
	"unicode/utf8"

	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
)

// Kind classifies a token once it has passed through the classifier
// (engine/classify). Unknown is the pre-classification zero value.
type Kind uint8

const (
	Unknown Kind = iota
	Word
	SeparatorSoft
	SeparatorHard
	StopWord
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case SeparatorSoft:
		return "Separator(Soft)"
	case SeparatorHard:
		return "Separator(Hard)"
	case StopWord:
		return "StopWord"
	}
	return "Unknown"
}

// MapEntry is one (original_bytes, normalized_bytes) pair of the char-map.
// Summing original_bytes over a prefix gives the original-byte offset of
// the first k code points of the original substring; summing
// normalized_bytes gives the corresponding offset into the lemma.
type MapEntry struct {
	Orig       int
	Normalized int
}

// CharMap is the per-token incremental byte bijection of spec §3/§4.8.
type CharMap []MapEntry

// OrigTotal returns the sum of all Orig fields.
func (m CharMap) OrigTotal() int {
	var t int
	for _, e := range m {
		t += e.Orig
	}
	return t
}

// NormalizedTotal returns the sum of all Normalized fields.
func (m CharMap) NormalizedTotal() int {
	var t int
	for _, e := range m {
		t += e.Normalized
	}
	return t
}

// Token is a value: byte/char offsets into the original text never change
// after creation; lemma, kind, and char_map are rewritten by the
// normalizer cascade (engine/normalize).
type Token struct {
	Lemma      string
	ByteStart  int
	ByteEnd    int
	CharStart  int
	CharEnd    int
	Script     script.Script
	Language   lang.Language
	HasLang    bool
	Kind       Kind
	CharMap    CharMap // nil unless create_char_map is enabled
	HasCharMap bool
}

// New builds a Token whose lemma starts out equal to the slice of
// original text it covers, with Kind = Unknown, per the segment() method
// of the public API (spec §4.9).
func New(original string, byteStart, byteEnd int, charStart int, scr script.Script) Token {
	lemma := original[byteStart:byteEnd]
	return Token{
		Lemma:     lemma,
		ByteStart: byteStart,
		ByteEnd:   byteEnd,
		CharStart: charStart,
		CharEnd:   charStart + utf8.RuneCountInString(lemma),
		Script:    scr,
		Kind:      Unknown,
	}
}

// InitCharMap seeds an identity char-map (1 original byte : 1 original
// byte, and so on per code point) over the token's original slice,
// called once by the builder when create_char_map is enabled, before any
// normalizer runs.
func (t *Token) InitCharMap(original string) {
	slice := original[t.ByteStart:t.ByteEnd]
	m := make(CharMap, 0, t.CharEnd-t.CharStart)
	for _, r := range slice {
		n := utf8.RuneLen(r)
		m = append(m, MapEntry{Orig: n, Normalized: n})
	}
	t.CharMap = m
	t.HasCharMap = true
}

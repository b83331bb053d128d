package normalize

import (
	"strings"
	"unicode/utf8"

	"github.com/textkit/lexi/core/token"
)

// applyCharWise runs fn over every code point of tok.Lemma and rewrites
// the lemma in place. When tok.HasCharMap, each existing (orig,
// normalized_in) entry's chunk of the lemma is fed through fn in full,
// and the entry is rewritten to (orig, normalized_out) — the entry count
// never changes, so no original code point is ever split across two map
// entries (spec §4.8 "Char-map arithmetic").
func applyCharWise(tok *token.Token, fn func(rune) []rune) {
	if !tok.HasCharMap {
		tok.Lemma = mapRunes(tok.Lemma, fn)
		return
	}
	var out strings.Builder
	newMap := make(token.CharMap, len(tok.CharMap))
	pos := 0
	for i, e := range tok.CharMap {
		chunk := tok.Lemma[pos : pos+e.Normalized]
		pos += e.Normalized
		mapped := mapRunes(chunk, fn)
		out.WriteString(mapped)
		newMap[i] = token.MapEntry{Orig: e.Orig, Normalized: len(mapped)}
	}
	tok.Lemma = out.String()
	tok.CharMap = newMap
}

func mapRunes(s string, fn func(rune) []rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		for _, out := range fn(r) {
			b.WriteRune(out)
		}
	}
	return b.String()
}

// recomposePairs folds adjacent code points accepted by combine into one
// output code point (spec §4.8: "consume 2 code points of input -> 1
// code point of output", orig_bytes = sum, new_bytes = out_len). Two
// distinct cases produce an adjacent pair: an earlier cascade stage
// (NFKD) decomposed a single original character into a base+mark pair
// that still lives inside one char-map entry, or the input text already
// held the base and the combining mark as two separate original
// characters in two adjacent entries. Phase one folds the first case
// (within one entry, Orig untouched); phase two folds what's left across
// entry boundaries (Orig becomes the sum of both entries).
func recomposePairs(tok *token.Token, combine func(a, b rune) (rune, bool)) {
	if !tok.HasCharMap || len(tok.CharMap) == 0 {
		tok.Lemma = recomposeString(tok.Lemma, combine)
		return
	}

	chunks := make([]string, len(tok.CharMap))
	pos := 0
	for i, e := range tok.CharMap {
		chunks[i] = tok.Lemma[pos : pos+e.Normalized]
		pos += e.Normalized
	}
	for i := range chunks {
		chunks[i] = recomposeString(chunks[i], combine)
	}

	var out strings.Builder
	var newMap token.CharMap
	i := 0
	for i < len(chunks) {
		if i+1 < len(chunks) {
			a, aSize := lastRune(chunks[i])
			b, bSize := firstRune(chunks[i+1])
			if out2, ok := combine(a, b); ok {
				merged := chunks[i][:len(chunks[i])-aSize] + string(out2) + chunks[i+1][bSize:]
				out.WriteString(merged)
				newMap = append(newMap, token.MapEntry{
					Orig:       tok.CharMap[i].Orig + tok.CharMap[i+1].Orig,
					Normalized: len(merged),
				})
				i += 2
				continue
			}
		}
		out.WriteString(chunks[i])
		newMap = append(newMap, token.MapEntry{Orig: tok.CharMap[i].Orig, Normalized: len(chunks[i])})
		i++
	}
	tok.Lemma = out.String()
	tok.CharMap = newMap
}

func recomposeString(s string, combine func(a, b rune) (rune, bool)) string {
	runes := []rune(s)
	var out []rune
	i := 0
	for i < len(runes) {
		if i+1 < len(runes) {
			if r, ok := combine(runes[i], runes[i+1]); ok {
				out = append(out, r)
				i += 2
				continue
			}
		}
		out = append(out, runes[i])
		i++
	}
	return string(out)
}

func lastRune(s string) (rune, int) {
	r, size := utf8.DecodeLastRuneInString(s)
	return r, size
}

func firstRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size
}

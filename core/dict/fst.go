// Package dict implements the FST-style longest-prefix segmenter of spec
// §4.6, backed by github.com/derekparker/trie — a dependency the teacher
// repo already declares. CJK, Thai, Khmer, and German segmenters
// (engine/segment) all share this engine, each with its own word list.
package dict

import (
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// FST holds a word list in a trie supporting longest-prefix lookup.
type FST struct {
	t *trie.Trie
}

// NewFST builds an FST from a word list. Words are added as keys with no
// payload beyond marking the path as terminating.
func NewFST(words []string) *FST {
	t := trie.New()
	for _, w := range words {
		if w != "" {
			t.Add(w, nil)
		}
	}
	return &FST{t: t}
}

// Add supplements the dictionary with additional words (Builder.WordsDict,
// spec §4.9).
func (f *FST) Add(words []string) {
	for _, w := range words {
		if w != "" {
			f.t.Add(w, nil)
		}
	}
}

// LongestPrefix finds the longest prefix of s that is a key in the FST,
// walking the trie rune by rune from the root and remembering the
// deepest terminating node reached. It returns the matched byte length
// and true, or (0, false) if no key in the FST prefixes s.
func (f *FST) LongestPrefix(s string) (int, bool) {
	node := f.t.Root()
	var bestByteLen int
	var found bool
	byteLen := 0
	for _, r := range s {
		child, ok := node.Children()[r]
		if !ok {
			break
		}
		node = child
		byteLen += utf8.RuneLen(r)
		if node.Terminating() {
			bestByteLen = byteLen
			found = true
		}
	}
	return bestByteLen, found
}

// UnmatchedCap configures the FST segmenter's unmatched-run policy
// (spec §4.6): nil means accumulate until the next match or end of
// input; a non-nil value caps accumulation at that many code points.
type UnmatchedCap = *int

// Segment performs the longest-prefix segmentation loop of spec §4.6 over
// s, returning lemma substrings that, concatenated, reconstruct s
// exactly (offset preservation). cap, if non-nil, bounds how many
// code points of unmatched text accumulate before being flushed as a
// single lemma.
func (f *FST) Segment(s string, cap UnmatchedCap) []string {
	var out []string
	var pending []byte
	var pendingRunes int

	flushPending := func() {
		if len(pending) > 0 {
			out = append(out, string(pending))
			pending = pending[:0]
			pendingRunes = 0
		}
	}

	for len(s) > 0 {
		if n, ok := f.LongestPrefix(s); ok && n > 0 {
			n = snapToRuneBoundary(s, n)
			flushPending()
			out = append(out, s[:n])
			s = s[n:]
			continue
		}
		r, size := utf8.DecodeRuneInString(s)
		pending = append(pending, s[:size]...)
		pendingRunes++
		s = s[size:]
		_ = r
		if cap != nil && pendingRunes >= *cap {
			flushPending()
		}
	}
	flushPending()
	return out
}

// snapToRuneBoundary extends n forward until it lands on a code-point
// boundary of s (spec §4.6: "length boundaries are always snapped to
// code-point boundaries").
func snapToRuneBoundary(s string, n int) int {
	for n < len(s) && !utf8.RuneStart(s[n]) {
		n++
	}
	return n
}

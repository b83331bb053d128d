// Package segment implements the per-script dispatch of spec §4.5: a
// registry keyed by (Script, optional Language) selects which strategy
// splits a script-run into word-level spans — Unicode word-boundary
// segmentation, dictionary-FST longest-prefix matching, an external
// morphological analyzer, or a rule-based splitter.
package segment

import (
	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
)

// Span is a half-open byte range [Start, End) within the script-run text
// passed to Segment, identifying one segmented word.
type Span struct {
	Start, End int
}

// Segmenter splits run (a maximal script-run substring) into word spans.
// Implementations never fail: unsegmentable input is returned as a
// single span covering the whole run (spec §4.8 "normalizers never
// fail" applies equally to segmentation — random-input safety, spec §8).
type Segmenter interface {
	Segment(run string) []Span
}

type registryKey struct {
	scr script.Script
	lng lang.Language
	any bool // true: key is (scr, any language)
}

// Registry maps (Script, Language) to a Segmenter, with a language-agnostic
// fallback per script, and a final default for scripts with no entry at
// all (spec §4.5's fallback chain: (script,lang) -> (script,none) ->
// default Latin segmenter).
type Registry struct {
	entries map[registryKey]Segmenter
	def     Segmenter
}

// NewRegistry builds an empty registry whose Lookup returns def for any
// script with no registered entry.
func NewRegistry(def Segmenter) *Registry {
	return &Registry{entries: make(map[registryKey]Segmenter), def: def}
}

// Register wires seg for exactly (scr, l).
func (r *Registry) Register(scr script.Script, l lang.Language, seg Segmenter) {
	r.entries[registryKey{scr: scr, lng: l}] = seg
}

// RegisterDefault wires seg for (scr, any language) — used when a script
// has a single segmenter regardless of detected language.
func (r *Registry) RegisterDefault(scr script.Script, seg Segmenter) {
	r.entries[registryKey{scr: scr, any: true}] = seg
}

// Lookup resolves the fallback chain: exact (script, language), then
// (script, any), then the registry default.
func (r *Registry) Lookup(scr script.Script, l lang.Language, hasLang bool) Segmenter {
	if hasLang {
		if seg, ok := r.entries[registryKey{scr: scr, lng: l}]; ok {
			return seg
		}
	}
	if seg, ok := r.entries[registryKey{scr: scr, any: true}]; ok {
		return seg
	}
	return r.def
}

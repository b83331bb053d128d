// Package pipeline implements the script-run splitter, separator
// interleaver, and top-level orchestrator of spec §4.3/§4.4: the glue
// between raw input text and the per-script Segmenter/Normalizer stages.
package pipeline

import (
	"unicode/utf8"

	"github.com/textkit/lexi/core/script"
)

// Run is one maximal substring of the original text whose characters all
// belong to a single non-Other Script, with Other characters folded
// into whichever neighboring run they border (spec §4.3).
type Run struct {
	Text      string
	ByteStart int
	CharStart int
	Script    script.Script
}

// ScriptRuns lazily splits text into Runs. It never allocates per rune:
// each Run's Text is a slice of the original string.
type ScriptRuns struct {
	text      string
	byteStart int
	charStart int
}

// NewScriptRuns returns an iterator over text's script-runs.
func NewScriptRuns(text string) *ScriptRuns {
	return &ScriptRuns{text: text}
}

// Next advances the iterator and returns the next run, or false when
// the input is exhausted.
func (s *ScriptRuns) Next() (Run, bool) {
	if s.byteStart >= len(s.text) {
		return Run{}, false
	}

	start := s.byteStart
	startChar := s.charStart
	pos := s.byteStart
	charPos := s.charStart
	runScript := script.Other
	haveConcrete := false

	for pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[pos:])
		sc := script.Classify(r)

		if sc == script.Other {
			// Other folds into the current run regardless of what the
			// run's script is so far; it never starts a new run on its
			// own and never ends one.
			pos += size
			charPos++
			continue
		}

		if !haveConcrete {
			runScript = sc
			haveConcrete = true
			pos += size
			charPos++
			continue
		}

		if sc != runScript {
			break // a new concrete script starts a new run
		}
		pos += size
		charPos++
	}

	s.byteStart = pos
	s.charStart = charPos

	if !haveConcrete {
		// The whole remaining run-span is Other; emit it as Other rather
		// than looping forever, and latch nothing for the next call.
		runScript = script.Other
	}

	return Run{
		Text:      s.text[start:pos],
		ByteStart: start,
		CharStart: startChar,
		Script:    runScript,
	}, true
}

// Package lexi is the public API of the tokenization pipeline: a Builder
// assembles stop-word/separator tables, language allow-lists, and
// supplementary dictionaries into an immutable Tokenizer (spec §4.9).
package lexi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

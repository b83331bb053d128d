package pipeline

import (
	"testing"

	"github.com/textkit/lexi/core/script"
)

func runScripts(runs []Run) []script.Script {
	out := make([]script.Script, len(runs))
	for i, r := range runs {
		out[i] = r.Script
	}
	return out
}

func collectRuns(text string) []Run {
	var out []Run
	it := NewScriptRuns(text)
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}

func TestScriptRunsLatchesOtherOntoCurrentRun(t *testing.T) {
	runs := collectRuns("hello, world")
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	if runs[0].Text != "hello, world" {
		t.Fatalf("got %q", runs[0].Text)
	}
	if runs[0].Script != script.Latin {
		t.Fatalf("got script %v, want Latin", runs[0].Script)
	}
}

func TestScriptRunsSplitsOnConcreteScriptChange(t *testing.T) {
	runs := collectRuns("hello世界bye")
	want := []string{"hello", "世界", "bye"}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs %+v, want %v", len(runs), runs, want)
	}
	for i, w := range want {
		if runs[i].Text != w {
			t.Fatalf("run %d: got %q, want %q", i, runs[i].Text, w)
		}
	}
	wantScript := []script.Script{script.Latin, script.Cj, script.Latin}
	got := runScripts(runs)
	for i := range wantScript {
		if got[i] != wantScript[i] {
			t.Fatalf("run %d: got script %v, want %v", i, got[i], wantScript[i])
		}
	}
}

func TestScriptRunsLeadingOtherStaysWithFollowingRun(t *testing.T) {
	runs := collectRuns("  hello")
	if len(runs) != 1 {
		t.Fatalf("got %d runs: %+v", len(runs), runs)
	}
	if runs[0].Text != "  hello" {
		t.Fatalf("got %q", runs[0].Text)
	}
}

func TestScriptRunsAllOtherEmitsSingleOtherRun(t *testing.T) {
	runs := collectRuns("   \t  ")
	if len(runs) != 1 {
		t.Fatalf("got %d runs: %+v", len(runs), runs)
	}
	if runs[0].Script != script.Other {
		t.Fatalf("got %v, want Other", runs[0].Script)
	}
}

func TestScriptRunsByteAndCharOffsets(t *testing.T) {
	runs := collectRuns("a世b")
	if len(runs) != 3 {
		t.Fatalf("got %d runs: %+v", len(runs), runs)
	}
	if runs[1].ByteStart != 1 || runs[1].CharStart != 1 {
		t.Fatalf("got ByteStart=%d CharStart=%d, want 1,1", runs[1].ByteStart, runs[1].CharStart)
	}
	// 世 is 3 bytes.
	if runs[2].ByteStart != 4 || runs[2].CharStart != 2 {
		t.Fatalf("got ByteStart=%d CharStart=%d, want 4,2", runs[2].ByteStart, runs[2].CharStart)
	}
}

func TestInterleaveSplitsOnSeparator(t *testing.T) {
	m := NewSeparatorMatcher([]string{" ", ".", ","})
	pairs := Interleave("hello, world.", m)
	want := []Pair{
		{"hello", Interleave},
		{",", Match},
		{" ", Match},
		{"world", Interleave},
		{".", Match},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %+v, want %+v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d: got %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestInterleaveLeftmostLongestMatch(t *testing.T) {
	m := NewSeparatorMatcher([]string{"-", "--"})
	pairs := Interleave("a--b", m)
	want := []Pair{
		{"a", Interleave},
		{"--", Match},
		{"b", Interleave},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %+v, want %+v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d: got %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestInterleaveGluesNumericRunAcrossSeparator(t *testing.T) {
	m := NewSeparatorMatcher([]string{" ", "."})
	pairs := Interleave("version 32.3 released", m)
	want := []Pair{
		{"version", Interleave},
		{" ", Match},
		{"32.3", Interleave},
		{" ", Match},
		{"released", Interleave},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %+v, want %+v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Fatalf("pair %d: got %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestInterleaveDoesNotGlueTrailingPeriod(t *testing.T) {
	m := NewSeparatorMatcher([]string{" ", "."})
	pairs := Interleave("end of sentence.", m)
	last := pairs[len(pairs)-1]
	if last != (Pair{".", Match}) {
		t.Fatalf("trailing sentence period should stay a separator, got %+v", pairs)
	}
}

func TestInterleaveNoSeparatorsYieldsSingleInterleavePair(t *testing.T) {
	m := NewSeparatorMatcher(nil)
	pairs := Interleave("hello", m)
	if len(pairs) != 1 || pairs[0] != (Pair{"hello", Interleave}) {
		t.Fatalf("got %+v", pairs)
	}
}

package lexi

import (
	"strings"
	"testing"

	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/core/token"
)

func lemmas(toks []token.Token, kind token.Kind) []string {
	var out []string
	for _, tk := range toks {
		if kind == token.Unknown || tk.Kind == kind {
			out = append(out, tk.Lemma)
		}
	}
	return out
}

func TestTokenizeEnglishWordsOnly(t *testing.T) {
	tz, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := tz.Tokenize(`The quick ("brown") fox can't jump 32.3 feet, right? Brr, it's 29.3°F!`)
	got := lemmas(toks, token.Word)
	want := []string{
		"the", "quick", "brown", "fox", "can", "t", "jump", "32.3",
		"feet", "right", "brr", "it", "s", "29.3", "°", "f",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v (%d words), want %v (%d words)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("word %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTokenizeCamelCaseIdentifier(t *testing.T) {
	tz, err := NewBuilder().LatinOptions(true, false).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := tz.Tokenize("MongoDBDatabase")
	got := lemmas(toks, token.Word)
	want := []string{"mongo", "db", "database"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReconstructReproducesInput(t *testing.T) {
	tz, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	text := `The quick ("brown") fox can't jump 32.3 feet, right? Brr, it's 29.3°F!`
	pairs := tz.Reconstruct(text)
	var rebuilt strings.Builder
	for _, p := range pairs {
		rebuilt.WriteString(p.Original)
	}
	if rebuilt.String() != text {
		t.Fatalf("reconstruct mismatch:\n got: %q\nwant: %q", rebuilt.String(), text)
	}
}

func TestReconstructOffsetsAreMonotonic(t *testing.T) {
	tz, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := tz.Tokenize("hello, world! 32.3 feet")
	for i := 1; i < len(toks); i++ {
		if toks[i-1].ByteEnd > toks[i].ByteStart {
			t.Fatalf("token %d ends at %d but token %d starts at %d",
				i-1, toks[i-1].ByteEnd, i, toks[i].ByteStart)
		}
	}
}

func TestStopWordBeatsSeparatorClassification(t *testing.T) {
	tz, err := NewBuilder().StopWords([]string{"."}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := tz.Tokenize("end.")
	var found bool
	for _, tk := range toks {
		if tk.Lemma == "." {
			found = true
			if tk.Kind != token.StopWord {
				t.Fatalf("lemma %q in both stop-words and separators: got kind %v, want StopWord", tk.Lemma, tk.Kind)
			}
		}
	}
	if !found {
		t.Fatalf("expected a %q token", ".")
	}
}

func TestSegmentSkipsClassificationAndNormalization(t *testing.T) {
	tz, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	toks := tz.Segment("Hello world")
	for _, tk := range toks {
		if tk.Kind != token.Unknown {
			t.Fatalf("Segment() should leave Kind Unknown, got %v", tk.Kind)
		}
	}
	got := lemmas(toks, token.Unknown)
	want := []string{"Hello", " ", "world"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBuildRejectsConflictingSeparatorKinds(t *testing.T) {
	_, err := NewBuilder().Separators([]tables.Separator{
		{Text: "|", Kind: tables.Soft},
		{Text: "|", Kind: tables.Hard},
	}).Build()
	if err == nil {
		t.Fatalf("expected a configuration error for conflicting separator kinds")
	}
}

func TestLatinCompoundStaysUnsplitWithoutGermanDictionary(t *testing.T) {
	tz, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Without a German dictionary wired, Latin-script text segments on
	// Unicode word boundaries only: a compound noun stays one token.
	toks := tz.Tokenize("Lebensversicherung")
	got := lemmas(toks, token.Word)
	if len(got) != 1 || got[0] != "lebensversicherung" {
		t.Fatalf("got %v, want a single unsplit lemma", got)
	}
}

package classify

import (
	"testing"

	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/core/token"
)

func tok(lemma string) token.Token {
	return token.New(lemma, 0, len(lemma), 0, script.Latin)
}

func TestStopWordWinsOverSeparator(t *testing.T) {
	sw := tables.NewStopWords([]string{"."})
	c := New(sw, []tables.Separator{{".", tables.Hard}})
	tk := tok(".")
	c.Classify(&tk)
	if tk.Kind != token.StopWord {
		t.Fatalf("Kind = %v, want StopWord", tk.Kind)
	}
}

func TestHardVsSoftSeparator(t *testing.T) {
	c := New(nil, []tables.Separator{{".", tables.Hard}, {",", tables.Soft}})
	tk := tok(".")
	c.Classify(&tk)
	if tk.Kind != token.SeparatorHard {
		t.Fatalf("Kind = %v, want SeparatorHard", tk.Kind)
	}
	tk2 := tok(",")
	c.Classify(&tk2)
	if tk2.Kind != token.SeparatorSoft {
		t.Fatalf("Kind = %v, want SeparatorSoft", tk2.Kind)
	}
}

func TestWordFallback(t *testing.T) {
	c := New(nil, nil)
	tk := tok("fox")
	c.Classify(&tk)
	if tk.Kind != token.Word {
		t.Fatalf("Kind = %v, want Word", tk.Kind)
	}
}

func TestAlreadyClassifiedUntouched(t *testing.T) {
	c := New(nil, nil)
	tk := tok("fox")
	tk.Kind = token.SeparatorSoft
	c.Classify(&tk)
	if tk.Kind != token.SeparatorSoft {
		t.Fatalf("Classify should not override a pre-set Kind")
	}
}

package normalize

import (
	"testing"

	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/token"
)

func wordTok(lemma string, scr script.Script) token.Token {
	tk := token.New(lemma, 0, len(lemma), 0, scr)
	tk.Kind = token.Word
	tk.InitCharMap(lemma)
	return tk
}

func TestControlNormalizerStripsControlChars(t *testing.T) {
	tk := wordTok("a\x01b", script.Latin)
	c := NewControlNormalizer()
	applyCharWise(&tk, c.NormalizeRune)
	if tk.Lemma != "ab" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "ab")
	}
	assertConservation(t, tk, "a\x01b")
}

func TestQuoteNormalizerFoldsCurlyApostrophe(t *testing.T) {
	tk := wordTok("café’s", script.Latin)
	q := NewQuoteNormalizer()
	applyCharWise(&tk, q.NormalizeRune)
	if tk.Lemma != "café's" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "café's")
	}
}

func TestLowercaseNormalizerGeneric(t *testing.T) {
	tk := wordTok("CAFÉ", script.Latin)
	l := NewLowercaseNormalizer()
	if !l.ShouldNormalize(&tk) {
		t.Fatal("expected ShouldNormalize true for Latin word")
	}
	l.NormalizeToken(&tk)
	if tk.Lemma != "café" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "café")
	}
	assertConservation(t, tk, "CAFÉ")
}

func TestLowercaseNormalizerTurkishDottedI(t *testing.T) {
	tk := wordTok("İstanbul", script.Latin)
	tk.HasLang = true
	tk.Language = lang.Tur
	l := NewLowercaseNormalizer()
	l.NormalizeToken(&tk)
	if tk.Lemma != "istanbul" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "istanbul")
	}
}

func TestLowercaseNormalizerTurkishDotlessI(t *testing.T) {
	tk := wordTok("IŞIK", script.Latin)
	tk.HasLang = true
	tk.Language = lang.Tur
	l := NewLowercaseNormalizer()
	l.NormalizeToken(&tk)
	if tk.Lemma != "ışık" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "ışık")
	}
}

func TestLowercaseNormalizerSkipsNonBicameral(t *testing.T) {
	l := NewLowercaseNormalizer()
	tk := wordTok("漢", script.Cj)
	if l.ShouldNormalize(&tk) {
		t.Fatal("Cj is not bicameral, ShouldNormalize should be false")
	}
}

func TestGreekNormalizerFinalSigma(t *testing.T) {
	tk := wordTok("λόγος", script.Greek)
	g := NewGreekNormalizer()
	applyCharWise(&tk, g.NormalizeRune)
	if tk.Lemma != "λόγοσ" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "λόγοσ")
	}
}

func TestRussianNormalizerRecomposesYoAfterNFKD(t *testing.T) {
	tk := wordTok("ёлка", script.Cyrillic)
	nfkd := NewNFKDNormalizer()
	nfkd.NormalizeToken(&tk)
	r := NewRussianNormalizer()
	r.NormalizeToken(&tk)
	if tk.Lemma != "елка" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "елка")
	}
	assertConservation(t, tk, "ёлка")
}

func TestSwedishNormalizerRecomposesAfterNFKD(t *testing.T) {
	tk := wordTok("Åre", script.Latin)
	tk.HasLang = true
	tk.Language = lang.Swe
	nfkd := NewNFKDNormalizer()
	nfkd.NormalizeToken(&tk)
	sw := NewSwedishNormalizer()
	sw.NormalizeToken(&tk)
	if tk.Lemma != "Åre" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "Åre")
	}
	assertConservation(t, tk, "Åre")
}

func TestSwedishNormalizerSkippedWithoutLanguage(t *testing.T) {
	sw := NewSwedishNormalizer()
	tk := wordTok("Åre", script.Latin)
	if sw.ShouldNormalize(&tk) {
		t.Fatal("expected ShouldNormalize false without an explicit Swe language tag")
	}
}

func TestVietnameseNormalizerFoldsDStroke(t *testing.T) {
	tk := wordTok("Đà", script.Latin)
	tk.HasLang = true
	tk.Language = lang.Vie
	v := NewVietnameseNormalizer()
	applyCharWise(&tk, v.NormalizeRune)
	if tk.Lemma != "Dà" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "Dà")
	}
}

func TestPersianArabicNormalizerStripsTatweelAndFoldsAlef(t *testing.T) {
	tk := wordTok("أسـلام", script.Arabic)
	a := NewPersianArabicNormalizer()
	applyCharWise(&tk, a.NormalizeRune)
	if tk.Lemma != "اسلام" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "اسلام")
	}
	assertConservation(t, tk, "أسـلام")
}

func TestChineseNormalizerPassThroughWithoutTables(t *testing.T) {
	c := NewChineseNormalizer()
	tk := wordTok("漢字", script.Cj)
	applyCharWise(&tk, c.NormalizeRune)
	if tk.Lemma != "漢字" {
		t.Fatalf("Lemma = %q, want unchanged %q", tk.Lemma, "漢字")
	}
}

func TestJapaneseNormalizerFoldsKatakanaToHiragana(t *testing.T) {
	j := NewJapaneseNormalizer()
	tk := wordTok("ダメHi", script.Cj)
	applyCharWise(&tk, j.NormalizeRune)
	if tk.Lemma != "だめHi" {
		t.Fatalf("Lemma = %q, want %q", tk.Lemma, "だめHi")
	}
}

func TestDefaultCascadeIdempotent(t *testing.T) {
	c := DefaultCascade()
	tk := wordTok("CAFÉ’s", script.Latin)
	c.Run(&tk)
	first := tk.Lemma
	c.Run(&tk)
	if tk.Lemma != first {
		t.Fatalf("cascade not idempotent: %q then %q", first, tk.Lemma)
	}
}

func TestDefaultCascadeNonWordTokenUntouched(t *testing.T) {
	c := DefaultCascade()
	tk := wordTok(".", script.Latin)
	tk.Kind = token.SeparatorHard
	c.Run(&tk)
	if tk.Lemma != "." {
		t.Fatalf("separator token should not be rewritten, got %q", tk.Lemma)
	}
}

func assertConservation(t *testing.T, tk token.Token, original string) {
	t.Helper()
	if !tk.HasCharMap {
		return
	}
	if tk.CharMap.OrigTotal() != len(original) {
		t.Fatalf("OrigTotal = %d, want %d", tk.CharMap.OrigTotal(), len(original))
	}
	if tk.CharMap.NormalizedTotal() != len(tk.Lemma) {
		t.Fatalf("NormalizedTotal = %d, want len(Lemma) = %d", tk.CharMap.NormalizedTotal(), len(tk.Lemma))
	}
}

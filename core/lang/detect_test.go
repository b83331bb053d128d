package lang

import (
	"testing"

	"github.com/textkit/lexi/core/script"
)

func TestDetectAllowListSingleShortCircuits(t *testing.T) {
	got, ok := Detect("anything at all", script.Latin, []Language{Fra})
	if !ok || got != Fra {
		t.Fatalf("Detect() = %v,%v want Fra,true", got, ok)
	}
}

func TestDetectLatinNoAllowListReturnsNone(t *testing.T) {
	_, ok := Detect("the quick brown fox", script.Latin, nil)
	if ok {
		t.Fatalf("Detect() on unconstrained Latin should return false")
	}
}

func TestDetectRussianVsUkrainian(t *testing.T) {
	got, ok := Detect("это интересно и не то", script.Cyrillic, nil)
	if !ok {
		t.Fatalf("expected detection for Cyrillic text")
	}
	if got != Rus && got != Ukr {
		t.Fatalf("Detect() = %v, want Rus or Ukr", got)
	}
}

func TestFromCode(t *testing.T) {
	l, ok := FromCode("eng")
	if !ok || l != Eng {
		t.Fatalf("FromCode(eng) = %v,%v", l, ok)
	}
	if _, ok := FromCode("xx-bogus"); ok {
		t.Fatalf("FromCode should reject unknown codes")
	}
}

func TestAllowListFor(t *testing.T) {
	var a AllowList
	if a.For(script.Latin) != nil {
		t.Fatalf("nil AllowList.For should return nil")
	}
	a = AllowList{script.Latin: {Eng, Fra}}
	got := a.For(script.Latin)
	if len(got) != 2 {
		t.Fatalf("AllowList.For = %v", got)
	}
}

package script

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		r    rune
		want Script
	}{
		{'a', Latin},
		{'Z', Latin},
		{'A', Latin},
		{'漢', Cj},
		{'だ', Cj},
		{'ダ', Cj},
		{'ا', Arabic},
		{'ع', Arabic},
		{'а', Cyrillic}, // Cyrillic 'a'
		{'א', Hebrew},
		{'ท', Thai},
		{'ខ', Khmer},
		{'한', Hangul},
		{'σ', Greek},
		{'ς', Greek},
		{'3', Other},
		{'.', Other},
		{' ', Other},
	}
	for _, c := range cases {
		if got := Classify(c.r); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsBicameral(t *testing.T) {
	for _, s := range []Script{Latin, Cyrillic, Greek, Georgian, Armenian} {
		if !s.IsBicameral() {
			t.Errorf("%v should be bicameral", s)
		}
	}
	for _, s := range []Script{Cj, Arabic, Hebrew, Thai, Hangul} {
		if s.IsBicameral() {
			t.Errorf("%v should not be bicameral", s)
		}
	}
}

func TestString(t *testing.T) {
	if Latin.String() != "Latin" {
		t.Errorf("Latin.String() = %q", Latin.String())
	}
	if Other.String() != "Other" {
		t.Errorf("Other.String() = %q", Other.String())
	}
}

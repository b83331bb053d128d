// Package lang defines the Language tag and the n-gram/character-set
// hybrid detector used once per script-run (spec §4.2). The detector is
// grounded on the az-lang-nlp character-set + trigram-fallback detector,
// generalized from four hardcoded languages to a table-driven model.
package lang

import (
	"fmt"

	"github.com/textkit/lexi/core/script"
)

// Language is an ISO-639-3 code. Zho is the general (simplified) Chinese
// tag; traditionally-written Chinese has the separate tag ZhoHant, which
// Detect returns only when an allow-list names it.
type Language uint8

const (
	Und Language = iota // undetermined / zero value
	Eng
	Fra
	Deu
	Spa
	Por
	Ita
	Nld
	Swe
	Dan
	Nob
	Rus
	Ukr
	Ell
	Tur
	Ara
	Heb
	Fas
	Hin
	Ben
	Tam
	Tha
	Khm
	Mya
	Vie
	Jpn
	Kor
	Zho // simplified Chinese
	Cmn // Mandarin; a tag of its own, not equal to Zho
	ZhoHant
)

var codes = [...]string{
	Und: "und", Eng: "eng", Fra: "fra", Deu: "deu", Spa: "spa", Por: "por",
	Ita: "ita", Nld: "nld", Swe: "swe", Dan: "dan", Nob: "nob", Rus: "rus",
	Ukr: "ukr", Ell: "ell", Tur: "tur", Ara: "ara", Heb: "heb", Fas: "fas",
	Hin: "hin", Ben: "ben", Tam: "tam", Tha: "tha", Khm: "khm", Mya: "mya",
	Vie: "vie", Jpn: "jpn", Kor: "kor", Zho: "zho", Cmn: "cmn", ZhoHant: "zho-Hant",
}

var fromCode = func() map[string]Language {
	m := make(map[string]Language, len(codes))
	for l, c := range codes {
		m[c] = Language(l)
	}
	return m
}()

// String returns the canonical ISO-639-3 code, e.g. "eng", or "zho-Hant"
// for the distinguished traditional-Chinese tag.
func (l Language) String() string {
	if int(l) < len(codes) && codes[l] != "" {
		return codes[l]
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// FromCode is the normative accessor: it returns the Language for an
// ISO-639-3 code, or (Und, false) if the code is not recognized.
func FromCode(code string) (Language, bool) {
	l, ok := fromCode[code]
	return l, ok
}

// AllowList constrains detection to a set of candidate languages for a
// given script (spec §3 "Configuration values").
type AllowList map[script.Script][]Language

// For returns the allowed languages for a script, or nil if the script
// has no entry (meaning: unconstrained).
func (a AllowList) For(s script.Script) []Language {
	if a == nil {
		return nil
	}
	return a[s]
}

package tables

// SeparatorKind distinguishes separators that merely break word adjacency
// from ones that also break sentence/phrase context (spec glossary).
type SeparatorKind uint8

const (
	Soft SeparatorKind = iota
	Hard
)

// Separator is one entry of the configured separator list (spec §3).
type Separator struct {
	Text string
	Kind SeparatorKind
}

// DefaultSeparators is the built-in separator set spec §4.7 falls back to
// when the Builder supplies none. Hard separators are sentence
// terminators and line breaks; everything else classifies Soft.
var DefaultSeparators = []Separator{
	{" ", Soft}, {"\t", Soft}, {" ", Soft}, {"　", Soft},
	{",", Soft}, {";", Soft}, {":", Soft}, {"(", Soft}, {")", Soft},
	{"[", Soft}, {"]", Soft}, {"{", Soft}, {"}", Soft}, {"\"", Soft},
	{"'", Soft}, {"-", Soft}, {"/", Soft}, {"\\", Soft}, {"«", Soft},
	{"»", Soft}, {"‘", Soft}, {"’", Soft}, {"“", Soft}, {"”", Soft},

	{".", Hard}, {"!", Hard}, {"?", Hard}, {"\n", Hard}, {"\r\n", Hard},
	{"\r", Hard}, {"…", Hard}, {"．", Hard}, {"！", Hard}, {"？", Hard},
	{"。", Hard}, {"︒", Hard},
}

// ByText builds a lookup from separator text to its configured kind.
func ByText(seps []Separator) map[string]SeparatorKind {
	m := make(map[string]SeparatorKind, len(seps))
	for _, s := range seps {
		m[s.Text] = s.Kind
	}
	return m
}

// Strings returns just the separator text, in configured order, for
// feeding the multi-pattern matcher of engine/pipeline.
func Strings(seps []Separator) []string {
	out := make([]string, len(seps))
	for i, s := range seps {
		out[i] = s.Text
	}
	return out
}

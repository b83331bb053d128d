package tables

import "github.com/emirpasic/gods/sets/hashset"

// StopWords is an immutable, ordered stop-word set supporting Contains,
// backed by a gods hashset the same way the teacher's Knuth-Plass line
// breaker keeps a hashset.Set of feasible breakpoints.
type StopWords struct {
	set   *hashset.Set
	order []string
}

// NewStopWords builds an immutable stop-word set from a word list.
// Insertion order is preserved for callers that need deterministic
// iteration (e.g. dumping the configured set); membership tests go
// through the hashset.
func NewStopWords(words []string) *StopWords {
	set := hashset.New()
	order := make([]string, 0, len(words))
	for _, w := range words {
		if !set.Contains(w) {
			order = append(order, w)
		}
		set.Add(w)
	}
	return &StopWords{set: set, order: order}
}

// Contains reports whether lemma is a configured stop word.
func (s *StopWords) Contains(lemma string) bool {
	if s == nil {
		return false
	}
	return s.set.Contains(lemma)
}

// Words returns the stop words in insertion order.
func (s *StopWords) Words() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

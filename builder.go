package lexi

import (
	"github.com/textkit/lexi/core/dict"
	lexierrors "github.com/textkit/lexi/core/errors"
	"github.com/textkit/lexi/core/lang"
	"github.com/textkit/lexi/core/script"
	"github.com/textkit/lexi/core/tables"
	"github.com/textkit/lexi/engine/classify"
	"github.com/textkit/lexi/engine/normalize"
	"github.com/textkit/lexi/engine/pipeline"
	"github.com/textkit/lexi/engine/segment"
)

// dictEntry is one supplementary word list queued by WordsDict /
// WordsDictFor, resolved into an FST-backed Segmenter at Build time.
type dictEntry struct {
	scr     script.Script
	lang    lang.Language
	hasLang bool
	words   []string
}

// Builder assembles a Tokenizer (spec §4.9). Zero value is ready to use;
// every setter returns the Builder for chaining. Build() is the only
// method that can fail — tokenization itself never fails on input
// (spec §7).
type Builder struct {
	stopWords     []string
	separators    []tables.Separator
	allowList     lang.AllowList
	createCharMap bool
	camelCase     bool
	snakeCase     bool
	dicts         []dictEntry
}

// NewBuilder returns an empty Builder. All options default to spec's
// built-in behavior: DefaultSeparators, no stop words, no allow-list
// constraints, char-map tracking off, camelCase/snake_case splitting off.
func NewBuilder() *Builder {
	return &Builder{}
}

// StopWords sets the stop-word set (spec §4.9 stop_words).
func (b *Builder) StopWords(words []string) *Builder {
	b.stopWords = words
	return b
}

// Separators replaces the default separator set (spec §4.9 separators).
func (b *Builder) Separators(seps []tables.Separator) *Builder {
	b.separators = seps
	return b
}

// AllowList constrains language detection per script (spec §4.9 allow_list).
func (b *Builder) AllowList(al lang.AllowList) *Builder {
	b.allowList = al
	return b
}

// CreateCharMap enables or disables char-map tracking (spec §4.9
// create_char_map).
func (b *Builder) CreateCharMap(enabled bool) *Builder {
	b.createCharMap = enabled
	return b
}

// LatinOptions enables the Latin segmenter's optional camelCase and
// snake_case identifier splitting (spec §4.5); both default to off,
// since they only make sense for identifier-like text, not prose.
func (b *Builder) LatinOptions(camelCase, snakeCase bool) *Builder {
	b.camelCase = camelCase
	b.snakeCase = snakeCase
	return b
}

// WordsDict supplements the language-agnostic dictionary segmenter for
// scr (spec §4.9 words_dict) — the common case for Cj, Thai, and Khmer,
// which have no whitespace word boundaries and dispatch to a single FST
// segmenter regardless of detected language.
func (b *Builder) WordsDict(scr script.Script, words []string) *Builder {
	b.dicts = append(b.dicts, dictEntry{scr: scr, words: words})
	return b
}

// WordsDictFor supplements a dictionary segmenter scoped to one exact
// (script, language) pair — needed for German, whose compound-noun
// segmentation is dictionary-driven even though German text is Latin
// script (spec §4.5 "Thai/Khmer/German segmenters. FST-based"); a bare
// WordsDict(script.Latin, ...) would otherwise override the default
// Latin segmenter for every Latin-script language, not just German.
func (b *Builder) WordsDictFor(scr script.Script, l lang.Language, words []string) *Builder {
	b.dicts = append(b.dicts, dictEntry{scr: scr, lang: l, hasLang: true, words: words})
	return b
}

// Build finalizes the configuration into an immutable Tokenizer, or
// returns a configuration error (spec §7): the only case checked here is
// a separator string configured with two conflicting SeparatorKinds,
// which the classifier could not resolve deterministically.
func (b *Builder) Build() (*Tokenizer, error) {
	seps := b.separators
	if len(seps) == 0 {
		seps = tables.DefaultSeparators
	}
	if err := validateSeparators(seps); err != nil {
		return nil, err
	}

	stopWords := tables.NewStopWords(b.stopWords)
	classifier := classify.New(stopWords, seps)
	sepMatcher := pipeline.NewSeparatorMatcher(tables.Strings(seps))

	registry := segment.NewRegistry(segment.NewLatinSegmenter(b.camelCase, b.snakeCase))
	registry.RegisterDefault(script.Arabic, segment.NewArabicSegmenter())
	registry.RegisterDefault(script.Hebrew, segment.NewHebrewSegmenter())
	registry.RegisterDefault(script.Hangul, segment.NewKoreanSegmenter())
	registry.Register(script.Cj, lang.Jpn, segment.NewJapaneseSegmenter())
	registry.RegisterDefault(script.Cj, segment.NewFSTSegmenter(dict.NewFST(nil), 0))
	registry.RegisterDefault(script.Thai, segment.NewFSTSegmenter(dict.NewFST(nil), 0))
	registry.RegisterDefault(script.Khmer, segment.NewFSTSegmenter(dict.NewFST(nil), 0))

	type dictKey struct {
		scr     script.Script
		lang    lang.Language
		hasLang bool
	}
	fsts := make(map[dictKey]*dict.FST)
	for _, d := range b.dicts {
		key := dictKey{scr: d.scr, lang: d.lang, hasLang: d.hasLang}
		if fst, ok := fsts[key]; ok {
			fst.Add(d.words)
			continue
		}
		fst := dict.NewFST(d.words)
		fsts[key] = fst
		seg := segment.NewFSTSegmenter(fst, 0)
		if d.hasLang {
			registry.Register(d.scr, d.lang, seg)
		} else {
			registry.RegisterDefault(d.scr, seg)
		}
		T().Debugf("lexi: wired %d-word dictionary segmenter for %s/%v (hasLang=%v)",
			len(d.words), d.scr, d.lang, d.hasLang)
	}

	cascade := normalize.DefaultCascade()

	orch := &pipeline.Orchestrator{
		Registry:      registry,
		AllowList:     b.allowList,
		Classifier:    classifier,
		Cascade:       cascade,
		Separators:    sepMatcher,
		CreateCharMap: b.createCharMap,
	}
	T().Infof("lexi: tokenizer built: %d stop words, %d separators, char-map=%v",
		len(stopWords.Words()), len(seps), b.createCharMap)
	return &Tokenizer{orchestrator: orch}, nil
}

func validateSeparators(seps []tables.Separator) error {
	kinds := make(map[string]tables.SeparatorKind, len(seps))
	for _, s := range seps {
		if prev, ok := kinds[s.Text]; ok && prev != s.Kind {
			return lexierrors.Error(lexierrors.EINVALIDCONFIG,
				"separator %q configured with conflicting kinds", s.Text)
		}
		kinds[s.Text] = s.Kind
	}
	return nil
}

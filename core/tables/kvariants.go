package tables

import (
	"bufio"
	"strings"

	lexierrors "github.com/textkit/lexi/core/errors"
)

// KVariantRelation is the relation column of the K-variant dictionary
// (spec §6c): source_char, relation, destination_char.
type KVariantRelation string

const (
	RelWrong KVariantRelation = "wrong!"
	RelSem   KVariantRelation = "sem"
	RelSimp  KVariantRelation = "simp"
	RelOld   KVariantRelation = "old"
	RelEqual KVariantRelation = "="
)

// KVariants is the loaded, read-only Han-character variant map: source
// rune -> canonical destination rune. Duplicate source characters are
// forbidden and detected at load time (spec §6c).
type KVariants struct {
	fold map[rune]rune
}

// DefaultKVariants and DefaultSimplified are the process-wide tables the
// Chinese normalizer folds through. Both are nil (identity fold via the
// nil-receiver branch of Fold) until a caller loads real dictionary data
// with ParseKVariants and reassigns them at startup.
var (
	DefaultKVariants  *KVariants
	DefaultSimplified *KVariants
)

// Fold returns the canonical form of r, or r unchanged if it has no
// entry (spec §4.8: a folder that cannot transform a code point passes
// it through unchanged).
func (k *KVariants) Fold(r rune) rune {
	if k == nil {
		return r
	}
	if dst, ok := k.fold[r]; ok {
		return dst
	}
	return r
}

// ParseKVariants parses the CSV-like K-variant dictionary format:
// one "source_char,relation,destination_char" record per line, blank
// lines and lines starting with '#' ignored. It is fatal to load two
// records with the same source_char (spec §6c, §7 dictionary-load
// errors).
func ParseKVariants(data string) (*KVariants, error) {
	fold := make(map[rune]rune)
	sc := bufio.NewScanner(strings.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, lexierrors.Error(lexierrors.ECORRUPTDICT,
				"kvariants: line %d: expected 3 fields, got %d", lineNo, len(parts))
		}
		src := []rune(strings.TrimSpace(parts[0]))
		dst := []rune(strings.TrimSpace(parts[2]))
		if len(src) != 1 || len(dst) != 1 {
			return nil, lexierrors.Error(lexierrors.ECORRUPTDICT,
				"kvariants: line %d: source/destination must be single characters", lineNo)
		}
		rel := KVariantRelation(strings.TrimSpace(parts[1]))
		switch rel {
		case RelWrong, RelSem, RelSimp, RelOld, RelEqual:
		default:
			return nil, lexierrors.Error(lexierrors.ECORRUPTDICT,
				"kvariants: line %d: unknown relation %q", lineNo, parts[1])
		}
		if _, dup := fold[src[0]]; dup {
			return nil, lexierrors.Error(lexierrors.EDUPLICATEKEY,
				"kvariants: line %d: duplicate source character %q", lineNo, src[0])
		}
		fold[src[0]] = dst[0]
	}
	if err := sc.Err(); err != nil {
		return nil, lexierrors.WrapError(err, lexierrors.ECORRUPTDICT, "kvariants: scan failed")
	}
	return &KVariants{fold: fold}, nil
}

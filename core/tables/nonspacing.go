package tables

import (
	"encoding/binary"
	"unicode"

	lexierrors "github.com/textkit/lexi/core/errors"
)

// NonspacingMarks is the read-only set of code points the nonspacing-mark
// stripper removes (spec §4.8.5, §6b). When no packed blob is supplied,
// the set falls back to unicode.Mn, the standard nonspacing-mark
// category — the blob is documented as an input, not a requirement.
type NonspacingMarks struct {
	extra map[rune]struct{} // additions beyond unicode.Mn; no constructor here fills it
	only  map[rune]struct{} // non-nil: exact set from a loaded blob, ignoring unicode.Mn
}

// DefaultNonspacingMarks is the fallback set: exactly unicode.Mn.
var DefaultNonspacingMarks = &NonspacingMarks{}

// Is reports whether r should be stripped as a nonspacing mark.
func (n *NonspacingMarks) Is(r rune) bool {
	if n == nil {
		return unicode.Is(unicode.Mn, r)
	}
	if n.only != nil {
		_, ok := n.only[r]
		return ok
	}
	if unicode.Is(unicode.Mn, r) {
		return true
	}
	_, ok := n.extra[r]
	return ok
}

// ParseNonspacingMarks parses the packed-u32 binary format of spec §6b: a
// flat sequence of little-endian uint32 code points, replacing the
// standard unicode.Mn fallback entirely with an explicit set.
func ParseNonspacingMarks(data []byte) (*NonspacingMarks, error) {
	if len(data)%4 != 0 {
		return nil, lexierrors.Error(lexierrors.ECORRUPTDICT,
			"nonspacing-marks: blob length %d is not a multiple of 4", len(data))
	}
	only := make(map[rune]struct{}, len(data)/4)
	for i := 0; i < len(data); i += 4 {
		cp := binary.LittleEndian.Uint32(data[i : i+4])
		if cp > unicode.MaxRune {
			return nil, lexierrors.Error(lexierrors.ECORRUPTDICT,
				"nonspacing-marks: code point 0x%X exceeds unicode.MaxRune", cp)
		}
		only[rune(cp)] = struct{}{}
	}
	return &NonspacingMarks{only: only}, nil
}

package tagcheck

import (
	"strconv"
	"strings"
)

// versionPrefixes are candidate prefixes stripped before parsing.
// At most one strip is applied and the first match wins, so a plain
// "v" consumes the "v" of "version-..." too.
var versionPrefixes = [...]string{"v", "version-v", "version-"}

// Key is the comparable form of a tag: either an ordered run of
// numeric segments, or an opaque fallback that ranks above every
// numeric key. The zero Key is the opaque key of the empty string.
type Key struct {
	segments []uint64
	orig     string
	numeric  bool
}

// ParseKey derives the sort key for a tag.
//
// A recognized prefix is stripped case-insensitively, then the longest
// leading run of digits separated by "." / "-" / "_" is parsed into
// integer segments. Tags without such a run (or with a segment too
// large for uint64) fall back to an opaque key carrying the original
// string. Pure function: same input, same key.
func ParseKey(tag string) Key {
	cleaned := tag
	lower := strings.ToLower(tag)
	for _, p := range versionPrefixes {
		if strings.HasPrefix(lower, p) {
			cleaned = cleaned[len(p):]
			break
		}
	}

	if run := numRunRe.FindString(cleaned); run != "" {
		parts := numSepRe.Split(run, -1)
		segs := make([]uint64, 0, len(parts))
		for _, part := range parts {
			n, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return Key{orig: tag}
			}
			segs = append(segs, n)
		}

		return Key{segments: segs, orig: tag, numeric: true}
	}

	return Key{orig: tag}
}

// IsNumeric reports whether the key was parsed from a numeric run.
func (k Key) IsNumeric() bool {
	return k.numeric
}

// String returns the original tag the key was derived from.
func (k Key) String() string {
	return k.orig
}

// Compare defines the total order over keys: -1 if k < o, 0 if equal,
// +1 if k > o.
//
// Every numeric key sorts below every opaque key, so unparseable tags
// always rank newest. Numeric keys compare segment by segment, a
// strict prefix being lesser (no zero padding). Opaque keys compare by
// original string so repeated runs stay deterministic.
func (k Key) Compare(o Key) int {
	switch {
	case k.numeric && !o.numeric:
		return -1
	case !k.numeric && o.numeric:
		return 1
	case !k.numeric && !o.numeric:
		return strings.Compare(k.orig, o.orig)
	}

	n := len(k.segments)
	if len(o.segments) < n {
		n = len(o.segments)
	}

	for i := 0; i < n; i++ {
		switch {
		case k.segments[i] < o.segments[i]:
			return -1
		case k.segments[i] > o.segments[i]:
			return 1
		}
	}

	switch {
	case len(k.segments) < len(o.segments):
		return -1
	case len(k.segments) > len(o.segments):
		return 1
	default:
		return 0
	}
}

package shorten

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"
)

var sep = string(filepath.Separator)

// InvalidPrefixError is returned when a path cannot be made relative to the
// base it was matched against.
type InvalidPrefixError struct {
	Path string
	Base string
}

func (e *InvalidPrefixError) Error() string {
	return "path " + e.Path + " is not relative to " + e.Base
}

// Path returns the prompt-style form of path, relative to home as ~ or else
// to the root. Every segment but the last is cut with Abbrev.
func Path(path, home string) (string, error) {
	root, segs := Split(path)

	var homeRoot string
	var homeSegs []string
	if home != "" {
		homeRoot, homeSegs = Split(home)
		if root == homeRoot && slices.Equal(segs, homeSegs) {
			return "~", nil
		}
	}

	var prefix string
	var rest []string
	if home != "" && root == homeRoot && hasPrefix(segs, homeSegs) {
		prefix = "~" + sep
		rest = segs[len(homeSegs):]
	} else {
		if !strings.HasSuffix(root, sep) {
			return "", &InvalidPrefixError{Path: path, Base: sep}
		}
		prefix = sep
		rest = segs
	}

	parts := make([]string, len(rest))
	for i, s := range rest {
		if i == len(rest)-1 {
			parts[i] = s
		} else {
			parts[i] = Abbrev(s)
		}
	}

	return prefix + strings.Join(parts, sep), nil
}

// Abbrev cuts a segment to its first rune, or its first two runes when it
// starts with a dot.
func Abbrev(segment string) string {
	n := 1
	if strings.HasPrefix(segment, ".") {
		n = 2
	}
	for i := range segment {
		if n == 0 {
			return segment[:i]
		}
		n--
	}
	return segment
}

// Split breaks a path into its root (volume name plus leading separator,
// empty for relative paths) and its segments. Repeated and trailing
// separators are ignored and "." segments are dropped.
func Split(path string) (root string, segments []string) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	root = vol
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root += sep
	}

	for _, s := range strings.FieldsFunc(rest, isSep) {
		if s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return root, segments
}

func isSep(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}

// hasPrefix reports whether base is a strict component-wise prefix of segs.
func hasPrefix(segs, base []string) bool {
	return len(segs) > len(base) && slices.Equal(segs[:len(base)], base)
}

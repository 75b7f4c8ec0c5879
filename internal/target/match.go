package target

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sarpdag/boyermoore"
)

// Matching holds the view settings that affect string matching.
type Matching struct {
	IgnoreCase bool
	// Wildcard enables Single (matches one character) and, when non-zero and
	// different from Single, Multi (matches any run of characters) in needles.
	Wildcard      bool
	Single        rune
	Multi         rune
	MaxLineLength int
}

// FindString looks for needle in line, within zone. Searching forward, start is the
// first 0-based column a match may begin at; searching backward it is the last, so
// that repeated backward searches move strictly left. The returned Match has a 0-based
// column. Not finding needle is not an error.
func FindString(line []byte, needle string, start int, zone Zone, m Matching, backward bool) (Match, bool, error) {
	n, err := newNeedle(needle, m)
	if err != nil {
		return Match{}, false, err
	}
	return n.find(line, start, zone, backward)
}

// FindRegexp returns the leftmost match of re lying wholly inside zone and starting at
// or after the 0-based column start. The text searched begins at start, so ^ matches
// there as well as at the start of the zone. Regular expressions only search forward.
func FindRegexp(line []byte, re *regexp.Regexp, start int, zone Zone) (Match, bool) {
	lo, hi := zone.bounds(len(line))
	if start < lo {
		start = lo
	}
	if start > hi {
		return Match{}, false
	}

	loc := re.FindIndex(line[start:hi])
	if loc == nil {
		return Match{}, false
	}
	return Match{Found: true, Col: start + loc[0], Len: loc[1] - loc[0]}, true
}

// needle is a search string prepared for repeated matching against many lines.
type needle struct {
	text []byte
	// pad is set when the needle must be matched against a line padded with blanks
	// out to the working width.
	pad    bool
	glob   glob.Glob
	minLen int
	m      Matching
}

func newNeedle(s string, m Matching) (*needle, error) {
	if m.MaxLineLength > 0 && len(s) > m.MaxLineLength {
		return nil, fmt.Errorf("%w: needle of %d characters is wider than %d", ErrOutOfMemory, len(s), m.MaxLineLength)
	}

	n := &needle{
		text: []byte(s),
		pad:  s == "" || strings.HasSuffix(s, " "),
		m:    m,
	}
	if m.IgnoreCase {
		n.text = foldASCII(n.text)
		n.m.Single, n.m.Multi = foldRune(m.Single), foldRune(m.Multi)
	}

	if !n.wild() {
		n.minLen = len(n.text)
		return n, nil
	}

	var pat strings.Builder
	for _, r := range string(n.text) {
		switch {
		case r == n.m.Single:
			pat.WriteRune('?')
			n.minLen++
		case n.m.Multi != 0 && r == n.m.Multi:
			pat.WriteRune('*')
		default:
			pat.WriteString(glob.QuoteMeta(string(r)))
			n.minLen++
		}
	}

	g, err := glob.Compile(pat.String())
	if err != nil {
		return nil, &PatternError{Pattern: s, Err: err}
	}
	n.glob = g
	return n, nil
}

func (n *needle) wild() bool {
	if !n.m.Wildcard {
		return false
	}
	if bytes.ContainsRune(n.text, n.m.Single) {
		return true
	}
	return n.m.Multi != 0 && bytes.ContainsRune(n.text, n.m.Multi)
}

// haystack returns the bytes a needle is matched against: the line, folded when
// matching ignores case and padded with blanks when the needle asks for it.
func (n *needle) haystack(line []byte, zone Zone) []byte {
	width := len(line)
	if n.pad {
		width = zone.End
		if n.m.MaxLineLength > 0 && width > n.m.MaxLineLength {
			width = n.m.MaxLineLength
		}
		if width < len(line) {
			width = len(line)
		}
	}

	if width == len(line) && !n.m.IgnoreCase {
		return line
	}

	hay := make([]byte, width)
	copy(hay, line)
	for i := len(line); i < width; i++ {
		hay[i] = ' '
	}
	if n.m.IgnoreCase {
		hay = foldASCII(hay)
	}
	return hay
}

func (n *needle) find(line []byte, start int, zone Zone, backward bool) (Match, bool, error) {
	hay := n.haystack(line, zone)
	lo, hi := zone.bounds(len(hay))
	z := hay[lo:hi]
	start -= lo

	var col, length int
	if n.glob != nil {
		col, length = n.findWild(z, start, backward)
	} else {
		col, length = n.findLiteral(z, start, backward)
	}
	if col < 0 {
		return Match{}, false, nil
	}
	return Match{Found: true, Col: col + lo, Len: length}, true, nil
}

// at reports whether the needle matches starting exactly at the 0-based column col.
func (n *needle) at(line []byte, col int, zone Zone) (Match, bool) {
	hay := n.haystack(line, zone)
	lo, hi := zone.bounds(len(hay))
	if col < lo || col > hi {
		return Match{}, false
	}

	z := hay[col:hi]
	if n.glob != nil {
		if l := n.wildAt(z); l >= 0 {
			return Match{Found: true, Col: col, Len: l}, true
		}
		return Match{}, false
	}
	if bytes.HasPrefix(z, n.text) {
		return Match{Found: true, Col: col, Len: len(n.text)}, true
	}
	return Match{}, false
}

func (n *needle) findLiteral(z []byte, start int, backward bool) (col, length int) {
	l := len(n.text)

	if !backward {
		if start < 0 {
			start = 0
		}
		if start+l > len(z) {
			return -1, 0
		}
		if l == 0 {
			return start, 0
		}
		i := boyermoore.Index(z[start:], n.text)
		if i < 0 {
			return -1, 0
		}
		return start + i, l
	}

	if start > len(z)-l {
		start = len(z) - l
	}
	if start < 0 {
		return -1, 0
	}
	if l == 0 {
		return start, 0
	}
	i := boyermoore.IndexRev(z[:start+l], n.text)
	if i < 0 {
		return -1, 0
	}
	return i, l
}

func (n *needle) findWild(z []byte, start int, backward bool) (col, length int) {
	if !backward {
		if start < 0 {
			start = 0
		}
		for i := start; i+n.minLen <= len(z); i++ {
			if l := n.wildAt(z[i:]); l >= 0 {
				return i, l
			}
		}
		return -1, 0
	}

	if start > len(z)-n.minLen {
		start = len(z) - n.minLen
	}
	for i := start; i >= 0; i-- {
		if l := n.wildAt(z[i:]); l >= 0 {
			return i, l
		}
	}
	return -1, 0
}

// wildAt returns the length of the shortest prefix of z the wildcard needle matches,
// or -1.
func (n *needle) wildAt(z []byte) int {
	for l := n.minLen; l <= len(z); l++ {
		if n.glob.Match(string(z[:l])) {
			return l
		}
	}
	return -1
}

// foldASCII lower-cases ASCII letters in place of a copy of b. Other bytes are left
// alone so that columns keep their byte offsets.
func foldASCII(b []byte) []byte {
	f := make([]byte, len(b))
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		f[i] = c
	}
	return f
}

func foldRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}

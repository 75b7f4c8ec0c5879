// Package lines holds the line sequence of an open file: an index-addressable list of
// line records numbered from 1, bracketed by the top-of-file (0) and bottom-of-file
// (Len+1) sentinels, and a cursor for stepping over it.
package lines

import "bytes"

type Line struct {
	Text    []byte
	New     bool
	Changed bool
	Tagged  bool
	// Select is the selection level compared against the view's display range.
	Select int
}

func (l *Line) Len() int {
	return len(l.Text)
}

// Altered reports whether the line was added or changed since it was loaded.
func (l *Line) Altered() bool {
	return l.New || l.Changed
}

func (l *Line) String() string {
	return string(l.Text)
}

// Blank reports whether the columns lo..hi (0-based, half-open) hold only spaces.
// Columns past the end of the line count as spaces.
func (l *Line) Blank(lo, hi int) bool {
	if hi > len(l.Text) {
		hi = len(l.Text)
	}
	if lo >= hi {
		return true
	}
	return len(bytes.Trim(l.Text[lo:hi], " ")) == 0
}

// Sequence is the traversal interface the target engine consumes.
type Sequence interface {
	// Len returns the number of real lines, not counting the sentinels.
	Len() int
	// At returns line n for 1 <= n <= Len, and nil otherwise.
	At(n int) *Line
}

// Scope reports whether a line is visible to commands.
type Scope func(l *Line) bool

func Everything(l *Line) bool {
	return true
}

// SelectRange returns the scope of a view displaying selection levels lo through hi.
func SelectRange(lo, hi int) Scope {
	return func(l *Line) bool {
		return l.Select >= lo && l.Select <= hi
	}
}

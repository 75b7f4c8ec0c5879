package target

import (
	"fmt"
	"regexp"
	"strings"
)

// Term is one clause of a target.
type Term struct {
	Kind       Kind
	Negated    bool
	Backward   bool
	Connective Connective

	// Text is the needle of a String term and the name of a Point term.
	Text string
	// Source and Pattern hold a Regexp term.
	Source  string
	Pattern *regexp.Regexp
	// Number is the line (or column) of an Absolute or Point term and the signed
	// count of a Relative term.
	Number int

	Match Match
}

// Match records where a String or Regexp term matched during resolution.
type Match struct {
	Found bool
	// Col is the 0-based column of the match.
	Col int
	Len int
}

func (t *Term) String() string {
	var b strings.Builder
	b.WriteString(t.Connective.String())
	if t.Negated {
		b.WriteRune('~')
	}
	if t.Backward {
		b.WriteRune('-')
	}
	switch t.Kind {
	case KindString:
		fmt.Fprintf(&b, "string(%q)", t.Text)
	case KindRegexp:
		fmt.Fprintf(&b, "regexp(%q)", t.Source)
	case KindPoint:
		fmt.Fprintf(&b, "point(%s=%d)", t.Text, t.Number)
	case KindAbsolute, KindRelative:
		fmt.Fprintf(&b, "%s(%d)", t.Kind, t.Number)
	case KindSpare:
		fmt.Fprintf(&b, "spare(%q)", t.Text)
	default:
		b.WriteString(t.Kind.String())
	}
	return b.String()
}

// Target is a parsed target expression. It is built by ParseTarget for one command,
// filled in by ResolveTarget and then discarded.
type Target struct {
	Raw   string
	Terms []*Term

	// Spare is the text following the target when the caller allowed it.
	Spare    string
	HasSpare bool

	// Search selects search semantics: the reference line is searched too, starting
	// after StartColumn.
	Search      bool
	IgnoreScope bool
	// Line is the reference line (the reference column of a column target).
	Line int
	// StartColumn is the 1-based focus column left by the previous search, 0 if none.
	StartColumn int

	// Delta is the signed number of lines in scope moved from First to Last (columns
	// for a column target). A walk that ends on a sentinel is moved onto a real line and
	// Delta counts up to that line.
	Delta       int
	First       int
	Last        int
	FocusColumn int
	FocusLength int

	column bool
}

// Backward reports whether the target searches toward the top of file.
func (t *Target) Backward() bool {
	for _, term := range t.Terms {
		if term.Kind != KindSpare {
			return term.Backward
		}
	}
	return false
}

// Single returns the only evaluated term, or nil if there are several.
func (t *Target) Single() *Term {
	var single *Term
	for _, term := range t.Terms {
		if term.Kind == KindSpare {
			continue
		}
		if single != nil {
			return nil
		}
		single = term
	}
	return single
}

// Span returns First and Last in ascending order.
func (t *Target) Span() (lo, hi int) {
	if t.First <= t.Last {
		return t.First, t.Last
	}
	return t.Last, t.First
}

// Invalidate marks every term as an error. A target that failed to parse is left in
// this state.
func (t *Target) Invalidate() {
	for _, term := range t.Terms {
		term.Kind = KindError
		term.Pattern = nil
	}
	t.Spare = ""
	t.HasSpare = false
}

func (t *Target) Valid() bool {
	if len(t.Terms) == 0 {
		return false
	}
	for _, term := range t.Terms {
		if term.Kind == KindError {
			return false
		}
	}
	return true
}

func (t *Target) String() string {
	s := make([]string, 0, len(t.Terms))
	for _, term := range t.Terms {
		s = append(s, term.String())
	}
	return strings.Join(s, " ")
}

func (t *Target) clearMatches() {
	for _, term := range t.Terms {
		term.Match = Match{}
	}
}

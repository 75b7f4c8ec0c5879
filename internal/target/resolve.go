package target

import (
	"fmt"

	"github.com/jeffwilliams/xtarget/internal/lines"
)

// ResolveTarget finds the line t refers to. It walks from the reference line in the
// target's direction, counting the lines in scope, until the terms are satisfied.
// On success Delta, First, Last and, with search semantics, FocusColumn are set.
func (e *Engine) ResolveTarget(t *Target) error {
	if t.column {
		return fmt.Errorf("%w: '%s' is a column target", ErrInvalidOperand, t.Raw)
	}
	if !t.Valid() {
		return &OperandError{Text: t.Raw}
	}

	t.Delta, t.First, t.Last, t.FocusColumn, t.FocusLength = 0, 0, 0, 0, 0
	t.clearMatches()

	if single := t.Single(); single != nil {
		switch single.Kind {
		case KindAll:
			n := e.Lines.Len()
			t.First, t.Last, t.Delta = min(1, n), n, n
			dbg("target: ALL is lines %d to %d", t.First, t.Last)
			return nil
		case KindBlockCurrent, KindBlockAny:
			return e.resolveBlock(t, single)
		}
	}

	return e.resolveLines(t)
}

func (e *Engine) resolveBlock(t *Target, term *Term) error {
	b := e.Block
	if b == nil {
		return ErrNoMarkedBlock
	}
	if term.Kind == KindBlockCurrent && b.File != e.File {
		return fmt.Errorf("%w: block is in %s", ErrBlockNotInFile, b.File)
	}

	t.First, t.Last = b.StartLine, b.EndLine
	if t.First > t.Last {
		t.First, t.Last = t.Last, t.First
	}
	t.Delta = b.Lines()
	if b.Type == BoxBlock || b.Type == ColumnBlock {
		t.FocusColumn = b.StartCol
	}
	dbg("target: %s block is lines %d to %d", b.Type, t.First, t.Last)
	return nil
}

func (e *Engine) resolveLines(t *Target) error {
	back := t.Backward()
	m := e.Settings.matching()
	z := e.zone()

	needles := map[*Term]*needle{}
	for _, term := range t.Terms {
		if term.Kind != KindString {
			continue
		}
		n, err := newNeedle(term.Text, m)
		if err != nil {
			return err
		}
		needles[term] = n
	}

	l := lineWalk{e: e, t: t, back: back, zone: z, needles: needles}

	cur := lines.NewCursor(e.Lines, t.Line)
	ref := cur.Number()
	steps := 0
	for {
		l.atRef = cur.Number() == ref
		if l.atRef || e.inScope(t, cur) {
			if !l.atRef {
				steps++
			}
			ok, err := l.eval(cur, steps)
			if err != nil {
				return err
			}
			if ok {
				e.found(t, ref, cur, steps, back)
				return nil
			}
		}

		if !cur.Step(back) {
			dbg("target: '%s' not found after %d lines", t.Raw, steps)
			return ErrTargetNotFound
		}
	}
}

// found records the result of a successful walk.
func (e *Engine) found(t *Target, ref int, cur lines.Cursor, steps int, back bool) {
	t.First = e.realLine(t, ref)
	t.Last = e.realLine(t, cur.Number())

	// Steps off or onto a sentinel that realLine moved are not lines.
	if t.First != ref && steps > 0 {
		steps--
	}
	if t.Last != cur.Number() && steps > 0 {
		steps--
	}
	t.Delta = steps
	if back {
		t.Delta = -steps
	}

	if t.Search {
		for _, term := range t.Terms {
			if !term.Match.Found || term.Negated {
				continue
			}
			col := term.Match.Col + 1
			if t.FocusColumn == 0 || col < t.FocusColumn {
				t.FocusColumn = col
				t.FocusLength = term.Match.Len
			}
		}
	}
	dbg("target: '%s' found at line %d, delta %d, focus column %d", t.Raw, cur.Number(), t.Delta, t.FocusColumn)
}

// realLine moves n off a sentinel onto the nearest line in scope. It returns 0 when
// there is none.
func (e *Engine) realLine(t *Target, n int) int {
	c := lines.NewCursor(e.Lines, n)
	if !c.Sentinel() {
		return c.Number()
	}

	back := c.AtBottom()
	for c.Step(back) {
		if c.Sentinel() {
			return 0
		}
		if e.inScope(t, c) {
			return c.Number()
		}
	}
	return 0
}

// lineWalk evaluates a target's terms against the lines of a walk.
type lineWalk struct {
	e       *Engine
	t       *Target
	back    bool
	atRef   bool
	zone    Zone
	needles map[*Term]*needle
}

// eval folds the terms left to right. Every term is evaluated so that all matches on
// the line are known when choosing the focus column.
func (l *lineWalk) eval(cur lines.Cursor, steps int) (bool, error) {
	result := false
	for _, term := range l.t.Terms {
		if term.Kind == KindSpare {
			continue
		}

		v, err := l.evalTerm(term, cur, steps)
		if err != nil {
			return false, err
		}
		if term.Negated && l.applies(term, cur) {
			v = !v
		}

		switch term.Connective {
		case None:
			result = v
		case And:
			result = result && v
		case Or:
			result = result || v
		}
	}
	return result, nil
}

func (l *lineWalk) evalTerm(term *Term, cur lines.Cursor, steps int) (bool, error) {
	term.Match = Match{}

	switch term.Kind {
	case KindRelative:
		n := steps
		if l.back {
			n = -steps
		}
		return n == term.Number || l.atBoundary(cur), nil

	case KindAbsolute, KindPoint:
		return cur.Number() == term.Number, nil

	case KindBlank, KindNew, KindChanged, KindAltered, KindTagged:
		if !l.applies(term, cur) {
			return false, nil
		}
		return l.flag(term.Kind, cur.Line()), nil

	case KindString, KindRegexp:
		if !l.applies(term, cur) {
			return false, nil
		}
		return l.text(term, cur.Line())
	}
	return false, nil
}

// applies reports whether term can be tested on the line under cur. A term that does
// not apply is false whether or not it is negated.
func (l *lineWalk) applies(term *Term, cur lines.Cursor) bool {
	switch {
	case term.Kind.metadata():
		return !l.atRef && !cur.Sentinel()
	case term.Kind == KindString || term.Kind == KindRegexp:
		return !cur.Sentinel() && (!l.atRef || l.t.Search)
	}
	return true
}

func (l *lineWalk) atBoundary(cur lines.Cursor) bool {
	if l.back {
		return !cur.HasPrev()
	}
	return !cur.HasNext()
}

func (l *lineWalk) flag(k Kind, line *lines.Line) bool {
	switch k {
	case KindBlank:
		return line.Blank(l.zone.Start-1, l.zone.End)
	case KindNew:
		return line.New
	case KindChanged:
		return line.Changed
	case KindAltered:
		return line.Altered()
	case KindTagged:
		return line.Tagged
	}
	return false
}

func (l *lineWalk) text(term *Term, line *lines.Line) (bool, error) {
	var (
		m   Match
		ok  bool
		err error
	)

	if term.Kind == KindRegexp {
		start := 0
		if l.atRef {
			start = l.t.StartColumn
		}
		m, ok = FindRegexp(line.Text, term.Pattern, start, l.zone)
	} else {
		n := l.needles[term]
		start, search := l.startColumn(line, len(n.text))
		if !search {
			return false, nil
		}
		m, ok, err = n.find(line.Text, start, l.zone, l.back)
		if err != nil {
			return false, err
		}
	}

	if ok {
		term.Match = m
	}
	return ok, nil
}

// startColumn returns the 0-based column a string search of the line starts from. On
// the reference line a search continues from the previous focus column: forward from
// just after its start, backward strictly to its left.
func (l *lineWalk) startColumn(line *lines.Line, needleLen int) (start int, search bool) {
	if !l.atRef {
		if l.back {
			return line.Len() + needleLen, true
		}
		return 0, true
	}

	prev := l.t.StartColumn
	if !l.back {
		return prev, true
	}
	if prev == 0 {
		return line.Len() + needleLen, true
	}
	if prev-2 < 0 {
		return 0, false
	}
	return prev - 2, true
}

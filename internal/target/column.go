package target

import "fmt"

// ResolveColumnTarget finds the column of text that a column target refers to. The walk
// runs over the zone; the columns just outside it play the part of the top and bottom of
// file. A walk ending on one of them is moved back onto the nearest zone column, as is
// a reference column outside the zone. On success FocusColumn and Last are the 1-based
// column found and Delta the number of columns from First to Last.
func (e *Engine) ResolveColumnTarget(t *Target, text []byte) error {
	if !t.column {
		return fmt.Errorf("%w: '%s' is a line target", ErrInvalidOperand, t.Raw)
	}
	if !t.Valid() {
		return &OperandError{Text: t.Raw}
	}

	t.Delta, t.First, t.Last, t.FocusColumn, t.FocusLength = 0, 0, 0, 0, 0
	t.clearMatches()

	c := columnWalk{
		t:       t,
		text:    text,
		back:    t.Backward(),
		zone:    e.zone(),
		needles: map[*Term]*needle{},
	}
	if c.zone.End == maxColumn {
		c.zone.End = len(text) + 1
	}
	for _, term := range t.Terms {
		if term.Kind != KindString {
			continue
		}
		n, err := newNeedle(term.Text, e.Settings.matching())
		if err != nil {
			return err
		}
		c.needles[term] = n
	}
	lo, hi := c.zone.Start-1, c.zone.End+1

	ref := t.Line
	col := ref
	steps := 0
	for {
		c.atRef = col == ref
		if !c.atRef {
			steps++
		}

		ok, err := c.eval(col, steps)
		if err != nil {
			return err
		}
		if ok {
			t.First, t.Last = c.zone.clamp(ref), c.zone.clamp(col)
			t.Delta = t.Last - t.First
			t.FocusColumn = t.Last
			for _, term := range t.Terms {
				if term.Match.Found && !term.Negated {
					t.FocusLength = term.Match.Len
				}
			}
			dbg("target: column target '%s' found at column %d", t.Raw, col)
			return nil
		}

		if c.back {
			if col <= lo {
				break
			}
			col--
		} else {
			if col >= hi {
				break
			}
			col++
		}
	}

	dbg("target: column target '%s' not found", t.Raw)
	return ErrTargetNotFound
}

type columnWalk struct {
	t       *Target
	text    []byte
	back    bool
	atRef   bool
	zone    Zone
	needles map[*Term]*needle
}

func (c *columnWalk) eval(col, steps int) (bool, error) {
	result := false
	for _, term := range c.t.Terms {
		if term.Kind == KindSpare {
			continue
		}

		v, err := c.evalTerm(term, col, steps)
		if err != nil {
			return false, err
		}
		if term.Negated && c.applies(term, col) {
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

// applies reports whether term can be tested at col. Outside the zone, and on the
// reference column without search semantics, only positional terms apply.
func (c *columnWalk) applies(term *Term, col int) bool {
	switch term.Kind {
	case KindBlank:
		return !c.atRef && c.zone.Contains(col)
	case KindString:
		return c.zone.Contains(col) && (!c.atRef || c.t.Search)
	}
	return true
}

func (c *columnWalk) evalTerm(term *Term, col, steps int) (bool, error) {
	term.Match = Match{}

	switch term.Kind {
	case KindRelative:
		n := steps
		if c.back {
			n = -steps
		}
		return n == term.Number || c.atBoundary(col), nil

	case KindAbsolute:
		return col == term.Number, nil

	case KindBlank:
		if !c.applies(term, col) {
			return false, nil
		}
		return col > len(c.text) || c.text[col-1] == ' ', nil

	case KindString:
		if !c.applies(term, col) {
			return false, nil
		}
		m, ok := c.needles[term].at(c.text, col-1, c.zone)
		if ok {
			term.Match = m
		}
		return ok, nil
	}
	return false, nil
}

func (c *columnWalk) atBoundary(col int) bool {
	if c.back {
		return col <= c.zone.Start-1
	}
	return col >= c.zone.End+1
}

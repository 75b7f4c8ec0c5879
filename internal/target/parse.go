package target

// ParseTarget parses text as a line target relative to line ref. Only the kinds in
// allowed are accepted. With spareAllowed, text following a complete target is kept
// in Target.Spare instead of being an error.
//
// On failure the returned Target has every term marked KindError.
func (e *Engine) ParseTarget(text string, ref int, allowed KindMask, spareAllowed bool) (*Target, error) {
	last := e.Lines.Len()
	if ref < 0 {
		ref = 0
	}
	if ref > last+1 {
		ref = last + 1
	}
	t := &Target{Raw: text, Line: ref}
	err := e.parse(t, 1, last, allowed, spareAllowed)
	return t, err
}

// ParseColumnTarget parses text as a column target relative to column ref of the
// focus line.
func (e *Engine) ParseColumnTarget(text string, ref int, allowed KindMask) (*Target, error) {
	z := e.zone()
	if ref < z.Start-1 {
		ref = z.Start - 1
	}
	if ref > z.End+1 {
		ref = z.End + 1
	}
	t := &Target{Raw: text, Line: ref, column: true}
	err := e.parse(t, z.Start, z.End, allowed&ColumnKinds, false)
	return t, err
}

func (e *Engine) parse(t *Target, first, last int, allowed KindMask, spareAllowed bool) error {
	s := scanner{
		input:    []rune(t.Raw),
		target:   t,
		ref:      t.Line,
		first:    first,
		last:     last,
		settings: e.Settings,
		points:   e.Points,
		spare:    spareAllowed,
	}

	if err := s.scan(); err != nil {
		dbg("target: parse of '%s' failed: %v", t.Raw, err)
		return err
	}

	if err := validate(t, allowed); err != nil {
		dbg("target: '%s' is not valid here: %v", t.Raw, err)
		t.Invalidate()
		return err
	}

	dbg("target: parsed '%s' as %s", t.Raw, t)
	return nil
}

package target

// validate checks the combination of terms the scanner produced: that each kind is
// accepted by the caller, that ALL, BLOCK and REGEXP stand alone, and that every term
// searches in the same direction.
func validate(t *Target, allowed KindMask) error {
	bad := &OperandError{Text: t.Raw}

	var terms []*Term
	for i, term := range t.Terms {
		if term.Kind == KindSpare {
			if i != len(t.Terms)-1 {
				return bad
			}
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return bad
	}

	for _, term := range terms {
		if term.Kind == KindBlockCurrent && !allowed.Has(KindBlockCurrent) && allowed.Has(KindBlockAny) {
			term.Kind = KindBlockAny
		}
		if !allowed.Has(term.Kind) {
			return bad
		}

		switch term.Kind {
		case KindAll, KindBlockCurrent, KindBlockAny:
			if term.Negated || term.Backward {
				return bad
			}
		case KindRegexp:
			if term.Backward || term.Pattern == nil {
				return bad
			}
		}

		if term.Kind.sole() && len(terms) > 1 {
			return bad
		}

		if term.Backward != terms[0].Backward {
			return bad
		}
	}

	return nil
}

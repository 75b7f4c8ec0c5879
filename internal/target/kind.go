package target

// Kind is what a term matches.
type Kind int

const (
	KindString Kind = iota
	KindRegexp
	KindPoint
	KindAbsolute
	KindRelative
	KindBlank
	KindNew
	KindChanged
	KindAltered
	KindTagged
	KindAll
	KindBlockCurrent
	KindBlockAny
	KindSpare
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindRegexp:
		return "regexp"
	case KindPoint:
		return "point"
	case KindAbsolute:
		return "absolute"
	case KindRelative:
		return "relative"
	case KindBlank:
		return "blank"
	case KindNew:
		return "new"
	case KindChanged:
		return "changed"
	case KindAltered:
		return "altered"
	case KindTagged:
		return "tagged"
	case KindAll:
		return "all"
	case KindBlockCurrent:
		return "block"
	case KindBlockAny:
		return "block(any)"
	case KindSpare:
		return "spare"
	case KindError:
		return "error"
	}
	return "<unknown kind>"
}

// metadata kinds test a line's flags rather than its text.
func (k Kind) metadata() bool {
	switch k {
	case KindBlank, KindNew, KindChanged, KindAltered, KindTagged:
		return true
	}
	return false
}

// sole kinds can not be combined with any other term.
func (k Kind) sole() bool {
	switch k {
	case KindAll, KindBlockCurrent, KindBlockAny, KindRegexp:
		return true
	}
	return false
}

// KindMask is the set of kinds a caller accepts.
type KindMask uint32

func Mask(kinds ...Kind) KindMask {
	var m KindMask
	for _, k := range kinds {
		m |= 1 << uint(k)
	}
	return m
}

func (m KindMask) Has(k Kind) bool {
	return m&(1<<uint(k)) != 0
}

func (m KindMask) Without(kinds ...Kind) KindMask {
	return m &^ Mask(kinds...)
}

var (
	// LineKinds is everything LOCATE accepts.
	LineKinds = Mask(KindString, KindRegexp, KindPoint, KindAbsolute, KindRelative,
		KindBlank, KindNew, KindChanged, KindAltered, KindTagged, KindAll,
		KindBlockCurrent, KindBlockAny)
	// ColumnKinds is everything CLOCATE accepts.
	ColumnKinds = Mask(KindString, KindAbsolute, KindRelative, KindBlank)
)

// Connective joins a term to the result of the terms before it.
type Connective int

const (
	None Connective = iota
	And
	Or
)

func (c Connective) String() string {
	switch c {
	case None:
		return ""
	case And:
		return "&"
	case Or:
		return "|"
	}
	return "?"
}

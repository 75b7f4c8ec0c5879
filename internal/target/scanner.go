package target

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type scannerState int

const (
	stateStart scannerState = iota
	stateAfterNegate
	stateAfterSign
	stateString
	stateRegexpIntro
	stateRegexpBody
	stateDigits
	statePoint
	stateBoolean
	stateSpare
	stateError
	stateDone
)

func (s scannerState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateAfterNegate:
		return "after-negate"
	case stateAfterSign:
		return "after-sign"
	case stateString:
		return "string"
	case stateRegexpIntro:
		return "regexp-intro"
	case stateRegexpBody:
		return "regexp-body"
	case stateDigits:
		return "digits"
	case statePoint:
		return "point"
	case stateBoolean:
		return "boolean"
	case stateSpare:
		return "spare"
	case stateError:
		return "error"
	case stateDone:
		return "done"
	}
	return "?"
}

// stringDelimiters are the characters that may open a string term.
const stringDelimiters = `/\@#$%^()_={}[]'"<>,?!`

type keyword struct {
	name   string
	minLen int
	kind   Kind
}

var keywords = []keyword{
	{"ALL", 3, KindAll},
	{"ALTERED", 3, KindAltered},
	{"BLANK", 3, KindBlank},
	{"BLOCK", 3, KindBlockCurrent},
	{"CHANGED", 3, KindChanged},
	{"NEW", 3, KindNew},
	{"TAGGED", 3, KindTagged},
	{"REGEXP", 1, KindRegexp},
}

func lookupKeyword(word string) (keyword, bool) {
	for _, k := range keywords {
		if len(word) >= k.minLen && len(word) <= len(k.name) && strings.EqualFold(word, k.name[:len(word)]) {
			return k, true
		}
	}
	return keyword{}, false
}

// scanner is the state machine that turns a target expression into terms. Each state
// consumes input and chooses the next state; a completed term moves to stateBoolean.
type scanner struct {
	input []rune
	pos   int
	state scannerState

	target *Target
	term   *Term
	signed bool
	conn   Connective
	delim  rune

	// ref is the reference line (column), last the bottom-of-file line (zone end).
	ref      int
	first    int
	last     int
	settings Settings
	points   PointIndex
	spare    bool

	err error
}

func (s *scanner) scan() error {
	for {
		dbg("target scanner: state %s at %d", s.state, s.pos)
		switch s.state {
		case stateStart:
			s.start()
		case stateAfterNegate:
			s.afterNegate()
		case stateAfterSign:
			s.afterSign()
		case stateString:
			s.str()
		case stateRegexpIntro:
			s.regexpIntro()
		case stateRegexpBody:
			s.regexpBody()
		case stateDigits:
			s.digits()
		case statePoint:
			s.point()
		case stateBoolean:
			s.boolean()
		case stateSpare:
			s.spareText()
		case stateError:
			s.target.Invalidate()
			return s.err
		case stateDone:
			return nil
		}
	}
}

func (s *scanner) start() {
	s.skipSpace()
	if s.atEnd() {
		s.fail()
		return
	}

	s.term = &Term{Connective: s.conn}
	s.conn = None
	s.signed = false

	switch r := s.peek(); r {
	case '~':
		s.pos++
		s.term.Negated = true
		s.state = stateAfterNegate
	case '+', '-':
		s.pos++
		s.sign(r)
	default:
		s.operand()
	}
}

func (s *scanner) afterNegate() {
	if s.atEnd() {
		s.fail()
		return
	}

	switch r := s.peek(); r {
	case '~':
		s.fail()
	case '+', '-':
		s.pos++
		s.sign(r)
	default:
		s.operand()
	}
}

func (s *scanner) sign(r rune) {
	s.signed = true
	s.term.Backward = r == '-'
	s.state = stateAfterSign
}

func (s *scanner) afterSign() {
	if s.atEnd() {
		s.fail()
		return
	}

	switch s.peek() {
	case '~':
		if s.term.Negated {
			s.fail()
			return
		}
		s.pos++
		s.term.Negated = true
	case '+', '-':
		s.fail()
	default:
		s.operand()
	}
}

// operand chooses the state for the simple target starting at the current rune.
func (s *scanner) operand() {
	if s.atEnd() {
		s.fail()
		return
	}

	r := s.peek()
	switch {
	case unicode.IsDigit(r):
		s.state = stateDigits
	case r == '*':
		s.pos++
		s.term.Kind = KindRelative
		if s.term.Backward {
			s.term.Number = s.first - 1 - s.ref
		} else {
			s.term.Number = s.last + 1 - s.ref
		}
		s.complete()
	case r == ':' || r == ';':
		if s.signed {
			s.fail()
			return
		}
		s.pos++
		s.term.Kind = KindAbsolute
		s.state = stateDigits
	case r == '.':
		if s.signed {
			s.fail()
			return
		}
		s.pos++
		s.state = statePoint
	case unicode.IsLetter(r):
		s.word()
	case strings.ContainsRune(stringDelimiters, r):
		s.pos++
		s.delim = r
		s.term.Kind = KindString
		s.state = stateString
	default:
		s.fail()
	}
}

func (s *scanner) word() {
	p := s.pos
	for !s.atEnd() && unicode.IsLetter(s.peek()) {
		s.pos++
	}
	w := string(s.input[p:s.pos])

	k, ok := lookupKeyword(w)
	if !ok {
		s.fail()
		return
	}

	s.term.Kind = k.kind
	if k.kind == KindRegexp {
		s.state = stateRegexpIntro
		return
	}
	s.complete()
}

func (s *scanner) digits() {
	p := s.pos
	for !s.atEnd() && unicode.IsDigit(s.peek()) {
		s.pos++
	}
	if p == s.pos {
		s.fail()
		return
	}

	n, err := strconv.Atoi(string(s.input[p:s.pos]))
	if err != nil {
		s.fail()
		return
	}

	if s.term.Kind != KindAbsolute && !s.signed && s.settings.NumbersAbsolute {
		s.term.Kind = KindAbsolute
	}

	if s.term.Kind == KindAbsolute {
		s.absolute(n)
	} else {
		s.term.Kind = KindRelative
		s.term.Number = n
		if s.term.Backward {
			s.term.Number = -n
		}
	}
	s.complete()
}

// absolute stores line n, clamped to the file, and points the term toward it.
func (s *scanner) absolute(n int) {
	if n < s.first {
		n = s.first
	}
	if n > s.last {
		n = s.last
	}
	s.term.Number = n
	s.term.Backward = n < s.ref
}

func (s *scanner) point() {
	p := s.pos
	for !s.atEnd() && !s.atTermEnd() {
		s.pos++
	}
	name := string(s.input[p:s.pos])
	if name == "" {
		s.fail()
		return
	}

	s.term.Kind = KindPoint
	s.term.Text = name

	n, ok := 0, false
	if s.points != nil {
		n, ok = s.points.Lookup(name)
	}
	if !ok {
		s.err = fmt.Errorf("%w: .%s", ErrTargetNotFound, name)
		s.state = stateError
		return
	}

	s.term.Number = n
	s.term.Backward = n < s.ref
	s.complete()
}

func (s *scanner) str() {
	var buf strings.Builder
	for !s.atEnd() {
		r := s.next()
		if r == s.delim {
			break
		}
		buf.WriteRune(r)
	}

	s.term.Text = buf.String()
	s.complete()
}

func (s *scanner) regexpIntro() {
	s.skipSpace()
	if s.atEnd() {
		s.fail()
		return
	}

	r := s.next()
	if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '&' || r == '|' {
		s.fail()
		return
	}
	s.delim = r
	s.state = stateRegexpBody
}

// regexpBody reads up to the next unescaped delimiter. An escaped delimiter stands for
// itself; other escapes are kept for the regexp compiler.
func (s *scanner) regexpBody() {
	var buf strings.Builder

	escaped := false
	for !s.atEnd() {
		r := s.next()

		if !escaped && r == s.delim {
			break
		}

		if escaped && r != s.delim {
			buf.WriteRune('\\')
		}

		escaped = !escaped && r == '\\'

		if !escaped {
			buf.WriteRune(r)
		}
	}
	if escaped {
		buf.WriteRune('\\')
	}

	src := buf.String()
	s.term.Source = src

	expr := src
	if s.settings.CaseIgnore {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		s.err = &PatternError{Pattern: src, Err: err}
		s.state = stateError
		return
	}
	s.term.Pattern = re
	s.complete()
}

// complete adds the finished term to the target.
func (s *scanner) complete() {
	if s.settings.MaxTerms > 0 && len(s.target.Terms) >= s.settings.MaxTerms {
		s.err = fmt.Errorf("%w: more than %d terms in target", ErrOutOfMemory, s.settings.MaxTerms)
		s.state = stateError
		return
	}
	s.target.Terms = append(s.target.Terms, s.term)
	s.term = nil
	s.state = stateBoolean
}

func (s *scanner) boolean() {
	s.skipSpace()
	if s.atEnd() {
		s.state = stateDone
		return
	}

	switch s.peek() {
	case '&':
		s.pos++
		s.conn = And
		s.state = stateStart
	case '|':
		s.pos++
		s.conn = Or
		s.state = stateStart
	default:
		if s.spare {
			s.state = stateSpare
			return
		}
		s.fail()
	}
}

func (s *scanner) spareText() {
	text := string(s.input[s.pos:])
	s.pos = len(s.input)

	s.target.Spare = text
	s.target.HasSpare = true
	s.target.Terms = append(s.target.Terms, &Term{Kind: KindSpare, Text: text})
	s.state = stateDone
}

func (s *scanner) fail() {
	if s.err == nil {
		s.err = &OperandError{Text: s.target.Raw}
	}
	s.state = stateError
}

// atTermEnd reports whether the current rune ends a name.
func (s *scanner) atTermEnd() bool {
	r := s.peek()
	return unicode.IsSpace(r) || r == '&' || r == '|'
}

func (s *scanner) skipSpace() {
	for !s.atEnd() && unicode.IsSpace(s.peek()) {
		s.pos++
	}
}

func (s *scanner) peek() rune {
	return s.input[s.pos]
}

func (s *scanner) next() rune {
	r := s.input[s.pos]
	s.pos++
	return r
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

package target

import (
	"fmt"
	"unicode/utf8"

	"github.com/jeffwilliams/xtarget/internal/errs"
)

// Zone is the range of columns searched, 1-based and inclusive.
type Zone struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

// bounds returns the zone as 0-based half-open offsets into a buffer of n bytes.
func (z Zone) bounds(n int) (lo, hi int) {
	lo = z.Start - 1
	if lo < 0 {
		lo = 0
	}
	hi = z.End
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return
}

func (z Zone) Contains(col int) bool {
	return col >= z.Start && col <= z.End
}

// clamp moves col into the zone.
func (z Zone) clamp(col int) int {
	if col < z.Start {
		return z.Start
	}
	if col > z.End {
		return z.End
	}
	return col
}

// Settings are the view settings the engine reads. They replace the editor-wide
// state that SET ZONE, SET CASE, SET ARBCHAR and SET NUMBER manage.
type Settings struct {
	Zone Zone `toml:"zone"`
	// MaxLineLength is the width of the working buffer used for matching (SET WIDTH).
	MaxLineLength int `toml:"max-line-length"`
	// CaseIgnore makes String and Regexp terms case insensitive.
	CaseIgnore bool `toml:"case-ignore"`
	// Arbchar enables wildcards in String terms.
	Arbchar       bool   `toml:"arbchar"`
	ArbcharSingle string `toml:"arbchar-single"`
	ArbcharMulti  string `toml:"arbchar-multi"`
	// NumbersAbsolute makes an unsigned number an absolute line number instead of a
	// relative count.
	NumbersAbsolute bool `toml:"numbers-absolute"`
	// MaxTerms bounds the number of terms in one target.
	MaxTerms int `toml:"max-terms"`
}

func DefaultSettings() Settings {
	return Settings{
		Zone:          Zone{Start: 1, End: 255},
		MaxLineLength: 255,
		ArbcharSingle: "?",
		ArbcharMulti:  "$",
		MaxTerms:      32,
	}
}

func (s Settings) Validate() error {
	e := errs.New()
	if s.Zone.Start < 1 {
		e.Addf("zone start %d must be at least 1", s.Zone.Start)
	}
	if s.Zone.End < s.Zone.Start {
		e.Addf("zone end %d is before zone start %d", s.Zone.End, s.Zone.Start)
	}
	if s.MaxLineLength < 1 {
		e.Addf("max-line-length %d must be positive", s.MaxLineLength)
	}
	if s.Zone.End > s.MaxLineLength {
		e.Addf("zone end %d is past max-line-length %d", s.Zone.End, s.MaxLineLength)
	}
	if s.MaxTerms < 1 {
		e.Addf("max-terms %d must be positive", s.MaxTerms)
	}
	if s.Arbchar {
		if utf8.RuneCountInString(s.ArbcharSingle) != 1 {
			e.Addf("arbchar-single '%s' must be one character", s.ArbcharSingle)
		}
		if s.ArbcharMulti != "" && utf8.RuneCountInString(s.ArbcharMulti) != 1 {
			e.Addf("arbchar-multi '%s' must be one character", s.ArbcharMulti)
		}
	}
	return e.NilIfEmpty()
}

// matching returns the options the content matcher needs.
func (s Settings) matching() Matching {
	m := Matching{
		IgnoreCase:    s.CaseIgnore,
		MaxLineLength: s.MaxLineLength,
	}
	if s.Arbchar {
		m.Wildcard = true
		m.Single, _ = utf8.DecodeRuneInString(s.ArbcharSingle)
		if s.ArbcharMulti != "" {
			m.Multi, _ = utf8.DecodeRuneInString(s.ArbcharMulti)
		}
		if m.Multi == m.Single {
			m.Multi = 0
		}
	}
	return m
}

func (s Settings) String() string {
	return fmt.Sprintf("zone=%d:%d width=%d case-ignore=%v arbchar=%v(%s%s) numbers-absolute=%v",
		s.Zone.Start, s.Zone.End, s.MaxLineLength, s.CaseIgnore, s.Arbchar, s.ArbcharSingle, s.ArbcharMulti, s.NumbersAbsolute)
}

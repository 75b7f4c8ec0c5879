package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffwilliams/xtarget/internal/errs"
)

func TestSettingsValidate(t *testing.T) {
	assert.Nil(t, DefaultSettings().Validate())

	s := DefaultSettings()
	s.Zone = Zone{Start: 0, End: 300}
	s.MaxTerms = 0
	s.Arbchar = true
	s.ArbcharSingle = "??"

	err := s.Validate()
	var e errs.Errors
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, 4, e.Len())
}

func TestSettingsMatching(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Matching{MaxLineLength: 255}, s.matching())

	s.Arbchar = true
	s.CaseIgnore = true
	assert.Equal(t, Matching{IgnoreCase: true, Wildcard: true, Single: '?', Multi: '$', MaxLineLength: 255}, s.matching())

	s.ArbcharMulti = "?"
	assert.Equal(t, rune(0), s.matching().Multi)
}

func TestZone(t *testing.T) {
	z := Zone{Start: 3, End: 5}
	assert.True(t, z.Contains(3))
	assert.True(t, z.Contains(5))
	assert.False(t, z.Contains(6))

	lo, hi := z.bounds(10)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)

	lo, hi = z.bounds(1)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)

	assert.Equal(t, 3, z.clamp(2))
	assert.Equal(t, 4, z.clamp(4))
	assert.Equal(t, 5, z.clamp(6))
}

func TestEngineZoneDefaults(t *testing.T) {
	e := newTestEngine("a")
	e.Settings = Settings{MaxLineLength: 80}
	assert.Equal(t, Zone{Start: 1, End: 80}, e.zone())

	e.Settings = Settings{}
	assert.Equal(t, Zone{Start: 1, End: maxColumn}, e.zone())
}

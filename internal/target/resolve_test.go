package target

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/xtarget/internal/lines"
	"github.com/jeffwilliams/xtarget/internal/names"
)

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name  string
		text  []string
		input string
		ref   int
		delta int
		first int
		last  int
	}{
		{name: "string forward", text: []string{"foo", "bar", "foo", "baz"}, input: "/foo/", ref: 1, delta: 2, first: 1, last: 3},
		{name: "string backward", text: []string{"foo", "bar", "foo", "baz"}, input: "-/foo/", ref: 4, delta: -1, first: 4, last: 3},
		{name: "reference line skipped", text: []string{"foo", "foo"}, input: "/foo/", ref: 1, delta: 1, first: 1, last: 2},
		{name: "relative", text: tenLines(), input: "5", ref: 2, delta: 5, first: 2, last: 7},
		{name: "relative backward", text: tenLines(), input: "-2", ref: 6, delta: -2, first: 6, last: 4},
		{name: "zero", text: tenLines(), input: "0", ref: 6, delta: 0, first: 6, last: 6},
		{name: "relative past bottom", text: tenLines(), input: "20", ref: 8, delta: 2, first: 8, last: 10},
		{name: "relative past top", text: tenLines(), input: "-20", ref: 3, delta: -2, first: 3, last: 1},
		{name: "absolute forward", text: tenLines(), input: ":3", ref: 1, delta: 2, first: 1, last: 3},
		{name: "absolute backward", text: tenLines(), input: ":1", ref: 4, delta: -3, first: 4, last: 1},
		{name: "absolute at ref", text: tenLines(), input: ":4", ref: 4, delta: 0, first: 4, last: 4},
		{name: "star", text: tenLines(), input: "*", ref: 4, delta: 6, first: 4, last: 10},
		{name: "from top of file", text: []string{"foo", "bar"}, input: "/foo/", ref: 0, delta: 0, first: 1, last: 1},
		{name: "star from top of file", text: tenLines(), input: "*", ref: 0, delta: 9, first: 1, last: 10},
		{name: "star backward", text: tenLines(), input: "-*", ref: 4, delta: -3, first: 4, last: 1},
		{name: "regexp", text: []string{"#a", "b", "#c"}, input: "r/^#/", ref: 1, delta: 2, first: 1, last: 3},
		{name: "negated string", text: []string{"a", "a", "a", "b"}, input: "~/a/", ref: 1, delta: 3, first: 1, last: 4},
		{name: "left to right", text: []string{"x", "a", "b", "bc"}, input: "/a/|/b/&/c/", ref: 1, delta: 3, first: 1, last: 4},
		{name: "or", text: []string{"x", "y", "b", "a"}, input: "/a/ | /b/", ref: 1, delta: 2, first: 1, last: 3},
		{name: "blank", text: []string{"a", "b", "   ", "c"}, input: "blank", ref: 1, delta: 2, first: 1, last: 3},
		{name: "blank on reference line ignored", text: []string{"", "b", ""}, input: "blank", ref: 1, delta: 2, first: 1, last: 3},
		{name: "relative or string", text: tenLines(), input: "/line 9/ | 3", ref: 1, delta: 3, first: 1, last: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(tc.text...)
			tgt, err := e.ParseTarget(tc.input, tc.ref, LineKinds, false)
			require.NoError(t, err)
			require.NoError(t, e.ResolveTarget(tgt))

			assert.Equal(t, tc.delta, tgt.Delta)
			assert.Equal(t, tc.first, tgt.First)
			assert.Equal(t, tc.last, tgt.Last)
			assert.Equal(t, 0, tgt.FocusColumn)
		})
	}
}

func TestResolveTargetNotFound(t *testing.T) {
	tests := []struct {
		name  string
		text  []string
		input string
		ref   int
	}{
		{name: "ref past end", text: []string{"foo", "bar", "foo", "baz"}, input: "/foo/", ref: 5},
		{name: "no match", text: []string{"foo", "bar"}, input: "/baz/", ref: 1},
		{name: "match only above", text: []string{"foo", "bar"}, input: "/foo/", ref: 1},
		{name: "no match backward", text: []string{"foo", "bar"}, input: "-/bar/", ref: 2},
		{name: "regexp case sensitive", text: []string{"a", "FOO"}, input: "r/foo/", ref: 1},
		{name: "negation stops at end of file", text: []string{"a", "a"}, input: "~/a/", ref: 1},
		{name: "negated metadata", text: []string{"a", "b"}, input: "~tagged & ~blank", ref: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(tc.text...)
			tgt, err := e.ParseTarget(tc.input, tc.ref, LineKinds, false)
			assert.Nil(t, err)
			err = e.ResolveTarget(tgt)
			assert.True(t, errors.Is(err, ErrTargetNotFound), "error: %v", err)
		})
	}
}

func TestValidateTarget(t *testing.T) {
	e := newTestEngine(tenLines()...)

	tgt, err := e.ValidateTarget("5", 2, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 7, tgt.Last)

	_, err = e.ValidateTarget("~~foo", 2, LineKinds)
	assert.True(t, errors.Is(err, ErrInvalidOperand))
}

func TestResolveTargetScope(t *testing.T) {
	f := lines.FromStrings("test.txt", "a", "hidden", "b", "hidden", "c")
	f.At(2).Select = 1
	f.At(4).Select = 1

	e := NewEngine(f, DefaultSettings())
	e.Scope = lines.SelectRange(0, 0)

	tgt, err := e.ValidateTarget("2", 1, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 5, tgt.Last)
	assert.Equal(t, 2, tgt.Delta)

	tgt, err = e.ValidateTarget("/hidden/", 1, LineKinds)
	assert.True(t, errors.Is(err, ErrTargetNotFound))

	tgt, err = e.ParseTarget("/hidden/", 1, LineKinds, false)
	assert.Nil(t, err)
	tgt.IgnoreScope = true
	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 2, tgt.Last)

	// a sentinel reached outside the scope moves onto the nearest visible line.
	f.At(5).Select = 1
	tgt, err = e.ValidateTarget("9", 1, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 3, tgt.Last)
	assert.Equal(t, 1, tgt.Delta)
}

func TestResolveTargetMetadata(t *testing.T) {
	f := lines.FromStrings("test.txt", "a", "b", "c", "d")
	_, err := f.Insert(2, "inserted")
	assert.Nil(t, err)
	assert.Nil(t, f.Replace(4, "changed"))
	f.At(5).Tagged = true

	e := NewEngine(f, DefaultSettings())

	tests := []struct {
		input string
		ref   int
		last  int
	}{
		{input: "new", ref: 1, last: 3},
		{input: "changed", ref: 1, last: 4},
		{input: "altered", ref: 3, last: 4},
		{input: "-altered", ref: 5, last: 4},
		{input: "tagged", ref: 1, last: 5},
		{input: "~altered & ~tagged", ref: 3, last: 0},
		{input: "tag | new", ref: 1, last: 3},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			tgt, err := e.ValidateTarget(tc.input, tc.ref, LineKinds)
			if tc.last == 0 {
				assert.True(t, errors.Is(err, ErrTargetNotFound))
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.last, tgt.Last)
		})
	}
}

func TestResolveTargetPoint(t *testing.T) {
	f := lines.FromStrings("test.txt", tenLines()...)
	ix := names.New(f)
	assert.Nil(t, ix.Set("mark", f.At(3)))

	e := NewEngine(f, DefaultSettings())
	e.Points = ix

	tgt, err := e.ValidateTarget(".mark", 8, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 3, tgt.Last)
	assert.Equal(t, -5, tgt.Delta)
}

func TestResolveTargetAll(t *testing.T) {
	e := newTestEngine(tenLines()...)
	tgt, err := e.ValidateTarget("ALL", 4, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 1, tgt.First)
	assert.Equal(t, 10, tgt.Last)
	assert.Equal(t, 10, tgt.Delta)

	e = newTestEngine()
	tgt, err = e.ValidateTarget("ALL", 0, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 0, tgt.First)
	assert.Equal(t, 0, tgt.Last)
}

func TestResolveTargetBlock(t *testing.T) {
	e := newTestEngine(tenLines()...)

	_, err := e.ValidateTarget("block", 1, LineKinds)
	assert.True(t, errors.Is(err, ErrNoMarkedBlock))

	e.Block = &Block{Type: BoxBlock, File: "other.txt", StartLine: 6, EndLine: 3, StartCol: 4, EndCol: 9}
	_, err = e.ValidateTarget("block", 1, LineKinds)
	assert.True(t, errors.Is(err, ErrBlockNotInFile))

	tgt, err := e.ValidateTarget("block", 1, LineKinds.Without(KindBlockCurrent))
	assert.Nil(t, err)
	assert.Equal(t, 3, tgt.First)
	assert.Equal(t, 6, tgt.Last)
	assert.Equal(t, 4, tgt.Delta)
	assert.Equal(t, 4, tgt.FocusColumn)

	e.Block.File = "test.txt"
	e.Block.Type = LineBlock
	tgt, err = e.ValidateTarget("BLOCK", 1, LineKinds)
	assert.Nil(t, err)
	lo, hi := tgt.Span()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 6, hi)
	assert.Equal(t, 0, tgt.FocusColumn)
}

func TestResolveTargetSearch(t *testing.T) {
	e := newTestEngine("foo foo", "bar", "xfoo")

	tgt, err := e.ParseTarget("/foo/", 1, LineKinds, false)
	assert.Nil(t, err)
	tgt.Search = true

	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 1, tgt.Last)
	assert.Equal(t, 0, tgt.Delta)
	assert.Equal(t, 1, tgt.FocusColumn)
	assert.Equal(t, 3, tgt.FocusLength)

	tgt.StartColumn = tgt.FocusColumn
	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 1, tgt.Last)
	assert.Equal(t, 5, tgt.FocusColumn)

	tgt.StartColumn = tgt.FocusColumn
	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 3, tgt.Last)
	assert.Equal(t, 2, tgt.Delta)
	assert.Equal(t, 2, tgt.FocusColumn)
}

func TestResolveTargetSearchRegexp(t *testing.T) {
	e := newTestEngine("foo bar foo", "foo")

	tgt, err := e.ParseTarget("r/f.*o/", 1, LineKinds, false)
	require.NoError(t, err)
	tgt.Search = true
	tgt.StartColumn = 1

	require.NoError(t, e.ResolveTarget(tgt))
	assert.Equal(t, 1, tgt.Last)
	assert.Equal(t, 0, tgt.Delta)
	assert.Equal(t, 9, tgt.FocusColumn)
	assert.Equal(t, 3, tgt.FocusLength)
}

func TestResolveTargetSearchBackward(t *testing.T) {
	e := newTestEngine("foo", "afoo foo")

	tgt, err := e.ParseTarget("-/foo/", 2, LineKinds, false)
	assert.Nil(t, err)
	tgt.Search = true
	tgt.StartColumn = 6

	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 2, tgt.Last)
	assert.Equal(t, 2, tgt.FocusColumn)

	tgt.StartColumn = tgt.FocusColumn
	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 1, tgt.Last)
	assert.Equal(t, -1, tgt.Delta)
	assert.Equal(t, 1, tgt.FocusColumn)
}

func TestResolveTargetFocusColumn(t *testing.T) {
	e := newTestEngine("top", "xx b yy a")

	tgt, err := e.ParseTarget("/a/ & /b/", 1, LineKinds, false)
	assert.Nil(t, err)
	tgt.Search = true

	assert.Nil(t, e.ResolveTarget(tgt))
	assert.Equal(t, 2, tgt.Last)
	assert.Equal(t, 4, tgt.FocusColumn)
	assert.Equal(t, 1, tgt.FocusLength)
}

func TestResolveTargetZone(t *testing.T) {
	e := newTestEngine("top", "foo", "   foo")
	e.Settings.Zone = Zone{Start: 3, End: 10}

	tgt, err := e.ValidateTarget("/foo/", 1, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 3, tgt.Last)

	tgt, err = e.ValidateTarget("blank", 1, LineKinds)
	assert.True(t, errors.Is(err, ErrTargetNotFound))
}

func TestResolveTargetWildcard(t *testing.T) {
	e := newTestEngine("top", "cat", "cut")
	e.Settings.Arbchar = true

	tgt, err := e.ValidateTarget("/c?t/ & ~/a/", 1, LineKinds)
	assert.Nil(t, err)
	assert.Equal(t, 3, tgt.Last)
}

func TestResolveTargetRejectsColumnTarget(t *testing.T) {
	e := newTestEngine("abc")

	tgt, err := e.ParseColumnTarget("2", 1, ColumnKinds)
	assert.Nil(t, err)
	assert.True(t, errors.Is(e.ResolveTarget(tgt), ErrInvalidOperand))

	bad, _ := e.ParseTarget("~~x", 1, LineKinds, false)
	assert.True(t, errors.Is(e.ResolveTarget(bad), ErrInvalidOperand))
}

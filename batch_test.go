package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/xtarget/internal/errs"
	"github.com/jeffwilliams/xtarget/internal/lines"
	"github.com/jeffwilliams/xtarget/internal/target"
)

func TestResolveAll(t *testing.T) {
	file := lines.FromStrings("a.txt", "foo", "bar", "foo", "baz")
	eng, _, err := buildEngine(file, target.DefaultSettings(), engineOptions{names: "here=4"})
	require.NoError(t, err)

	results, err := resolveAll(eng, []string{"/foo/", "~~foo", ".here", "/nothing/"}, request{line: 1, column: -1})

	var all errs.Errors
	require.True(t, errors.As(err, &all))
	assert.Equal(t, 2, all.Len())
	assert.True(t, errors.Is(err, target.ErrInvalidOperand))
	assert.True(t, errors.Is(err, target.ErrTargetNotFound))

	require.Len(t, results, 4)
	assert.Equal(t, Result{Target: "/foo/", Line: 1, Delta: 2, First: 1, Last: 3}, results[0])
	assert.Equal(t, "Invalid operand: ~~foo", results[1].Error)
	assert.Equal(t, 4, results[2].Last)
	assert.Equal(t, target.ErrTargetNotFound.Error(), results[3].Error)
}

func TestResolveAllColumns(t *testing.T) {
	file := lines.FromStrings("a.txt", "one", "abc def")
	eng, _, err := buildEngine(file, target.DefaultSettings(), engineOptions{})
	assert.Nil(t, err)

	results, err := resolveAll(eng, []string{"/d/", "blank"}, request{line: 2, column: 1})
	assert.Nil(t, err)
	assert.Equal(t, 5, results[0].Focus)
	assert.Equal(t, 4, results[0].Delta)
	assert.Equal(t, 4, results[1].Focus)
}

func TestResolveAllSearch(t *testing.T) {
	file := lines.FromStrings("a.txt", "foo foo")
	eng, _, err := buildEngine(file, target.DefaultSettings(), engineOptions{})
	assert.Nil(t, err)

	results, err := resolveAll(eng, []string{"/foo/"}, request{line: 1, column: -1, search: true, startColumn: 1})
	assert.Nil(t, err)
	assert.Equal(t, 5, results[0].Focus)
	assert.Equal(t, 0, results[0].Delta)
}

func TestWriteResults(t *testing.T) {
	results := []Result{
		{Target: "/foo/", Line: 1, Delta: 2, First: 1, Last: 3},
		{Target: "~~x", Line: 1, Error: "Invalid operand: ~~x"},
	}

	var buf bytes.Buffer
	assert.Nil(t, writeResults(&buf, results, false))
	assert.Equal(t, "/foo/\tline 1 delta 2 first 1 last 3 focus 0\n~~x\terror: Invalid operand: ~~x\n", buf.String())

	buf.Reset()
	assert.Nil(t, writeResults(&buf, results, true))
	assert.Equal(t, "target,line,delta,first,last,focus,error\n"+
		"/foo/,1,2,1,3,0,\n"+
		"~~x,1,0,0,0,0,Invalid operand: ~~x\n", buf.String())
}

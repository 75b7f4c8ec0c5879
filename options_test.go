package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffwilliams/xtarget/internal/lines"
	"github.com/jeffwilliams/xtarget/internal/target"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input  string
		lo, hi int
		ok     bool
	}{
		{input: "1:3", lo: 1, hi: 3, ok: true},
		{input: " 2 : 2 ", lo: 2, hi: 2, ok: true},
		{input: "4", lo: 4, hi: 4, ok: true},
		{input: "3:1"},
		{input: "a:1"},
		{input: "1:"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			lo, hi, err := parseRange(tc.input)
			assert.Equal(t, tc.ok, err == nil)
			if tc.ok {
				assert.Equal(t, tc.lo, lo)
				assert.Equal(t, tc.hi, hi)
			}
		})
	}
}

func TestParseSelect(t *testing.T) {
	m, err := parseSelect("1:2, 3:0")
	assert.Nil(t, err)
	assert.Equal(t, map[int]int{1: 2, 3: 0}, m)

	m, err = parseSelect("")
	assert.Nil(t, err)
	assert.Empty(t, m)

	_, err = parseSelect("1")
	assert.NotNil(t, err)
}

func TestParseBlock(t *testing.T) {
	b, err := parseBlock("a.txt:3:6")
	assert.Nil(t, err)
	assert.Equal(t, &target.Block{Type: target.LineBlock, File: "a.txt", StartLine: 3, EndLine: 6}, b)

	b, err = parseBlock(`C:\dir\a.txt:1:2`)
	assert.Nil(t, err)
	assert.Equal(t, `C:\dir\a.txt`, b.File)

	_, err = parseBlock("a.txt:3")
	assert.NotNil(t, err)
}

func TestBuildEngine(t *testing.T) {
	file := lines.FromStrings("a.txt", "one", "two", "three", "four")

	eng, ix, err := buildEngine(file, target.DefaultSettings(), engineOptions{
		tag:     "2",
		added:   "3",
		changed: "3,4",
		selects: "1:1",
		display: "0:0",
		names:   "top=1,bottom=4",
		block:   "a.txt:2:3",
	})
	assert.Nil(t, err)

	assert.True(t, file.At(2).Tagged)
	assert.True(t, file.At(3).New)
	assert.True(t, file.At(4).Changed)
	assert.Equal(t, 1, file.At(1).Select)
	assert.False(t, eng.Scope(file.At(1)))
	assert.True(t, eng.Scope(file.At(2)))
	assert.Equal(t, []string{"bottom"}, ix.Complete("b"))
	assert.Equal(t, "a.txt", eng.Block.File)

	_, _, err = buildEngine(file, target.DefaultSettings(), engineOptions{tag: "9"})
	assert.NotNil(t, err)

	_, _, err = buildEngine(file, target.DefaultSettings(), engineOptions{names: "x=0"})
	assert.NotNil(t, err)
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeffwilliams/xtarget/internal/lines"
	"github.com/jeffwilliams/xtarget/internal/names"
	"github.com/jeffwilliams/xtarget/internal/target"
)

// parseRange parses "lo:hi". A single number n is the range n:n.
func parseRange(s string) (lo, hi int, err error) {
	a, b, found := strings.Cut(s, ":")
	lo, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range '%s': %w", s, err)
	}
	if !found {
		return lo, lo, nil
	}
	hi, err = strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range '%s': %w", s, err)
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("invalid range '%s': end is before start", s)
	}
	return
}

// parseLineList parses a comma separated list of line numbers.
func parseLineList(s string) ([]int, error) {
	var r []int
	for _, f := range fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid line number '%s': %w", f, err)
		}
		r = append(r, n)
	}
	return r, nil
}

// flagLines calls set on each line listed in s.
func flagLines(file *lines.File, s string, set func(l *lines.Line)) error {
	nums, err := parseLineList(s)
	if err != nil {
		return err
	}
	for _, n := range nums {
		l := file.At(n)
		if l == nil {
			return fmt.Errorf("no line %d in %s", n, file.Name())
		}
		set(l)
	}
	return nil
}

// parseSelect parses "line:level,..." into a map from line number to selection level.
func parseSelect(s string) (map[int]int, error) {
	r := map[int]int{}
	for _, f := range fields(s) {
		a, b, found := strings.Cut(f, ":")
		if !found {
			return nil, fmt.Errorf("invalid selection level '%s': expected line:level", f)
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid selection level '%s': %w", f, err)
		}
		level, err := strconv.Atoi(b)
		if err != nil {
			return nil, fmt.Errorf("invalid selection level '%s': %w", f, err)
		}
		r[n] = level
	}
	return r, nil
}

// buildIndex names the lines of file as listed in s, "name=line,...".
func buildIndex(file *lines.File, s string) (*names.Index, error) {
	ix := names.New(file)
	for _, f := range fields(s) {
		name, num, found := strings.Cut(f, "=")
		if !found {
			return nil, fmt.Errorf("invalid line name '%s': expected name=line", f)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("invalid line name '%s': %w", f, err)
		}
		l := file.At(n)
		if l == nil {
			return nil, fmt.Errorf("invalid line name '%s': no line %d in %s", f, n, file.Name())
		}
		if err := ix.Set(name, l); err != nil {
			return nil, err
		}
		log(LogCatgApp, "Line %d is named .%s\n", n, name)
	}
	return ix, nil
}

// parseBlock parses "file:start:end" as a line block. The file name may itself
// contain colons.
func parseBlock(s string) (*target.Block, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid block '%s': expected file:start:end", s)
	}

	start, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return nil, fmt.Errorf("invalid block '%s': %w", s, err)
	}
	end, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return nil, fmt.Errorf("invalid block '%s': %w", s, err)
	}

	return &target.Block{
		Type:      target.LineBlock,
		File:      strings.Join(parts[:len(parts)-2], ":"),
		StartLine: start,
		EndLine:   end,
	}, nil
}

func fields(s string) []string {
	var r []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			r = append(r, f)
		}
	}
	return r
}

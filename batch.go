package main

import (
	"fmt"

	"github.com/jeffwilliams/xtarget/internal/errs"
	"github.com/jeffwilliams/xtarget/internal/target"
)

// request holds what every target of one run is resolved from.
type request struct {
	line int
	// column is the reference column of column targets, or negative for line targets.
	column      int
	search      bool
	startColumn int
	ignoreScope bool
}

// resolveAll resolves each of targets independently. A result is returned for every
// target; the failures are also collected into the returned error.
func resolveAll(e *target.Engine, targets []string, req request) ([]Result, error) {
	var (
		results = make([]Result, 0, len(targets))
		all     = errs.New()
	)

	for _, text := range targets {
		r := Result{Target: text, Line: req.line}
		t, err := resolveOne(e, text, req)
		if err != nil {
			r.Error = err.Error()
			all.Add(fmt.Errorf("%s: %w", text, err))
		} else {
			r.Delta, r.First, r.Last, r.Focus = t.Delta, t.First, t.Last, t.FocusColumn
		}
		results = append(results, r)
	}
	return results, all.NilIfEmpty()
}

func resolveOne(e *target.Engine, text string, req request) (*target.Target, error) {
	if req.column >= 0 {
		return resolveColumn(e, text, req)
	}

	t, err := e.ParseTarget(text, req.line, target.LineKinds, false)
	if err != nil {
		return nil, err
	}
	t.Search = req.search
	t.StartColumn = req.startColumn
	t.IgnoreScope = req.ignoreScope

	log(LogCatgApp, "Resolving %s from line %d\n", t, req.line)
	return t, e.ResolveTarget(t)
}

func resolveColumn(e *target.Engine, text string, req request) (*target.Target, error) {
	var line []byte
	if l := e.Lines.At(req.line); l != nil {
		line = l.Text
	}

	t, err := e.ParseColumnTarget(text, req.column, target.ColumnKinds)
	if err != nil {
		return nil, err
	}
	t.Search = req.search

	log(LogCatgApp, "Resolving %s from column %d of line %d\n", t, req.column, req.line)
	return t, e.ResolveColumnTarget(t, line)
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
)

// Result is the outcome of resolving one target.
type Result struct {
	Target string `csv:"target"`
	Line   int    `csv:"line"`
	Delta  int    `csv:"delta"`
	First  int    `csv:"first"`
	Last   int    `csv:"last"`
	Focus  int    `csv:"focus"`
	Error  string `csv:"error,omitempty"`
}

func writeResults(w io.Writer, results []Result, asCsv bool) error {
	if asCsv {
		return writeCsv(w, results)
	}

	for _, r := range results {
		var err error
		if r.Error != "" {
			_, err = fmt.Fprintf(w, "%s\terror: %s\n", r.Target, r.Error)
		} else {
			_, err = fmt.Fprintf(w, "%s\tline %d delta %d first %d last %d focus %d\n",
				r.Target, r.Line, r.Delta, r.First, r.Last, r.Focus)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCsv(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

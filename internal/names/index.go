// Package names indexes the user-assigned names of lines (POINT names), so that a
// ".name" target can find its line and a partially typed name can be completed.
package names

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/armon/go-radix"

	"github.com/jeffwilliams/xtarget/internal/lines"
)

// Numberer maps a line back to its current line number; *lines.File implements it.
type Numberer interface {
	Number(l *lines.Line) int
}

type Index struct {
	tree  *radix.Tree
	lines Numberer
}

func New(n Numberer) *Index {
	return &Index{
		tree:  radix.New(),
		lines: n,
	}
}

func (ix *Index) Len() int {
	return ix.tree.Len()
}

// Set names line l, replacing any previous use of the name.
func (ix *Index) Set(name string, l *lines.Line) error {
	name = canonical(name)
	if name == "" {
		return fmt.Errorf("line name is empty")
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("line name '%s' contains blanks", name)
	}
	ix.tree.Insert(name, l)
	return nil
}

func (ix *Index) Remove(name string) bool {
	_, ok := ix.tree.Delete(canonical(name))
	return ok
}

// Lookup returns the line number currently carrying name. Names whose line has since
// been deleted from the file are not found.
func (ix *Index) Lookup(name string) (int, bool) {
	v, ok := ix.tree.Get(canonical(name))
	if !ok {
		return 0, false
	}
	n := ix.lines.Number(v.(*lines.Line))
	return n, n > 0
}

// Complete returns the names starting with prefix in sorted order.
func (ix *Index) Complete(prefix string) []string {
	var result []string
	ix.tree.WalkPrefix(canonical(prefix), func(s string, v interface{}) bool {
		result = append(result, s)
		return false
	})
	return result
}

// NamesOf returns the names given to l.
func (ix *Index) NamesOf(l *lines.Line) []string {
	var result []string
	ix.tree.Walk(func(s string, v interface{}) bool {
		if v.(*lines.Line) == l {
			result = append(result, s)
		}
		return false
	})
	sort.Strings(result)
	return result
}

func canonical(name string) string {
	return strings.TrimPrefix(name, ".")
}

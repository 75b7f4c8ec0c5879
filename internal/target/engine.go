package target

import (
	"github.com/jeffwilliams/xtarget/internal/lines"
)

// PointIndex finds the line carrying a name; *names.Index implements it.
type PointIndex interface {
	Lookup(name string) (int, bool)
}

// Engine parses and resolves targets against one view of one file.
type Engine struct {
	Lines lines.Sequence
	// File is the name of the file being edited, compared against the marked block.
	File string
	// Scope selects the lines commands may see. A nil Scope sees every line.
	Scope    lines.Scope
	Points   PointIndex
	Block    *Block
	Settings Settings
}

func NewEngine(seq lines.Sequence, settings Settings) *Engine {
	e := &Engine{Lines: seq, Settings: settings}
	if n, ok := seq.(interface{ Name() string }); ok {
		e.File = n.Name()
	}
	return e
}

// ValidateTarget parses text and resolves it from line ref in one step, for callers
// that only need the final position.
func (e *Engine) ValidateTarget(text string, ref int, allowed KindMask) (*Target, error) {
	t, err := e.ParseTarget(text, ref, allowed, false)
	if err != nil {
		return t, err
	}
	err = e.ResolveTarget(t)
	return t, err
}

func (e *Engine) inScope(t *Target, c lines.Cursor) bool {
	if t.IgnoreScope || e.Scope == nil || c.Sentinel() {
		return true
	}
	return e.Scope(c.Line())
}

// zone returns the configured zone, defaulting missing bounds to the whole line.
func (e *Engine) zone() Zone {
	z := e.Settings.Zone
	if z.Start < 1 {
		z.Start = 1
	}
	if z.End < 1 {
		z.End = e.Settings.MaxLineLength
		if z.End < 1 {
			z.End = maxColumn
		}
	}
	return z
}

const maxColumn = 1 << 30

package lines

// Cursor is a position in a Sequence, including the two sentinels.
type Cursor struct {
	seq Sequence
	n   int
}

// NewCursor returns a cursor on line n, clamped to the sentinels.
func NewCursor(seq Sequence, n int) Cursor {
	c := Cursor{seq: seq, n: n}
	if c.n < 0 {
		c.n = 0
	}
	if bottom := seq.Len() + 1; c.n > bottom {
		c.n = bottom
	}
	return c
}

func (c Cursor) Number() int {
	return c.n
}

// Line returns the line under the cursor, or nil on a sentinel.
func (c Cursor) Line() *Line {
	return c.seq.At(c.n)
}

func (c Cursor) AtTop() bool {
	return c.n == 0
}

func (c Cursor) AtBottom() bool {
	return c.n == c.seq.Len()+1
}

func (c Cursor) Sentinel() bool {
	return c.AtTop() || c.AtBottom()
}

func (c Cursor) HasNext() bool {
	return !c.AtBottom()
}

func (c Cursor) HasPrev() bool {
	return !c.AtTop()
}

// Next moves the cursor one line toward the bottom of file. It returns false, and
// does not move, when already on the bottom sentinel.
func (c *Cursor) Next() bool {
	if !c.HasNext() {
		return false
	}
	c.n++
	return true
}

// Prev moves the cursor one line toward the top of file.
func (c *Cursor) Prev() bool {
	if !c.HasPrev() {
		return false
	}
	c.n--
	return true
}

// Step moves the cursor backward when back is set and forward otherwise.
func (c *Cursor) Step(back bool) bool {
	if back {
		return c.Prev()
	}
	return c.Next()
}

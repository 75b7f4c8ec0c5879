package lines

import (
	"bufio"
	"fmt"
	"io"
)

type File struct {
	name  string
	lines []*Line
}

func New(name string) *File {
	return &File{name: name}
}

// Load reads the lines of r into a new File. Loaded lines carry no flags.
func Load(name string, r io.Reader) (*File, error) {
	f := New(name)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		f.Append(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return f, nil
}

// FromStrings is a convenience for building small files.
func FromStrings(name string, text ...string) *File {
	f := New(name)
	for _, t := range text {
		f.Append(t)
	}
	return f
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Len() int {
	return len(f.lines)
}

func (f *File) At(n int) *Line {
	if n < 1 || n > len(f.lines) {
		return nil
	}
	return f.lines[n-1]
}

// Append adds a line at the end of the file without flagging it.
func (f *File) Append(text string) *Line {
	l := &Line{Text: []byte(text)}
	f.lines = append(f.lines, l)
	return l
}

// Insert adds a new line after line n (0 inserts before the first line) and flags it New.
func (f *File) Insert(after int, text string) (*Line, error) {
	if after < 0 || after > len(f.lines) {
		return nil, fmt.Errorf("cannot insert after line %d of %d", after, len(f.lines))
	}
	l := &Line{Text: []byte(text), New: true}
	f.lines = append(f.lines, nil)
	copy(f.lines[after+1:], f.lines[after:])
	f.lines[after] = l
	return l, nil
}

// Replace sets the text of line n and flags it Changed.
func (f *File) Replace(n int, text string) error {
	l := f.At(n)
	if l == nil {
		return fmt.Errorf("no line %d", n)
	}
	l.Text = []byte(text)
	l.Changed = true
	return nil
}

func (f *File) Delete(n int) error {
	if f.At(n) == nil {
		return fmt.Errorf("no line %d", n)
	}
	f.lines = append(f.lines[:n-1], f.lines[n:]...)
	return nil
}

// Number returns the line number of l, or 0 if l is not in the file.
func (f *File) Number(l *Line) int {
	for i, x := range f.lines {
		if x == l {
			return i + 1
		}
	}
	return 0
}

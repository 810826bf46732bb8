// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package loc has routines for tracking source locations.
package loc

import "fmt"

// A Range is a start and end byte offset.
// Spawned AST nodes carry the Range of the text they captured.
type Range [2]int

// GetRange returns itself.
// This is useful so than Range can be embedded in a struct
// and that struct can implement interface{GetRange() Range}.
func (r Range) GetRange() Range { return r }

// Len returns the number of bytes in the range.
func (r Range) Len() int { return r[1] - r[0] }

// A Loc describes a file location.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Loc) String() string {
	switch {
	case l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1]:
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	default:
		return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
	}
}

// A File tracks line boundaries within one source text.
type File struct {
	Path  string
	Text  string
	lines []int // offset of newlines
}

// NewFile returns a File for the given path and text.
func NewFile(path, text string) *File {
	f := &File{Path: path, Text: text}
	for i, r := range text {
		if r == '\n' {
			f.lines = append(f.lines, i)
		}
	}
	return f
}

// Loc returns the Loc of a range,
// or nil if the range is not within the text.
// Lines and columns are 1-based; columns count bytes.
func (f *File) Loc(r Range) *Loc {
	if f == nil || r[0] < 0 || r[1] < r[0] || r[1] > len(f.Text) {
		return nil
	}
	l := Loc{Path: f.Path}
	l.Line[0], l.Col[0] = f.loc1(r[0])
	l.Line[1], l.Col[1] = f.loc1(r[1])
	return &l
}

func (f *File) loc1(p int) (int, int) {
	line, col1 := 1, -1
	for _, nl := range f.lines {
		if nl >= p {
			break
		}
		col1 = nl
		line++
	}
	return line, p - col1
}

// Slice returns the text within the range.
func (f *File) Slice(r Range) string {
	if f.Loc(r) == nil {
		return ""
	}
	return f.Text[r[0]:r[1]]
}

// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "github.com/eaburns/peggy/peg"

// A Stream is an immutable position within an input text.
// Advancing a Stream returns a new Stream;
// the old one remains valid, so backtracking is free.
type Stream struct {
	text string
	pos  int
}

// NewStream returns a Stream at the start of text.
func NewStream(text string) Stream { return Stream{text: text} }

// Text returns the whole input text.
func (s Stream) Text() string { return s.text }

// Pos returns the byte offset of s.
func (s Stream) Pos() int { return s.pos }

// Done returns whether s is at the end of the input.
func (s Stream) Done() bool { return s.pos >= len(s.text) }

// Next returns the rune at s and the Stream after it.
// It returns false at the end of the input.
func (s Stream) Next() (rune, Stream, bool) {
	if s.Done() {
		return 0, s, false
	}
	r, w := peg.DecodeRuneInString(s.text[s.pos:])
	return r, Stream{text: s.text, pos: s.pos + w}, true
}

// Since returns the text between start and s.
// start must be a Stream of the same text at or before s.
func (s Stream) Since(start Stream) string {
	if start.pos > s.pos {
		return ""
	}
	return s.text[start.pos:s.pos]
}

// Rest returns the text from s to the end of the input.
func (s Stream) Rest() string { return s.text[s.pos:] }

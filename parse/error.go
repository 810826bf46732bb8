// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import (
	"errors"
	"fmt"

	"github.com/eaburns/peggy/peg"
)

// A Code classifies a parse Error.
type Code int

const (
	// Mismatch is a Character that did not match the input.
	Mismatch Code = iota
	// Rejected is a Postfix whose precedence
	// is not greater than the context precedence.
	Rejected
	// Exhausted is an Alternation all of whose alternatives failed.
	Exhausted
	// Malformed is a grammar node that cannot be interpreted,
	// for example a Spawn with no child.
	// Malformed errors are never backtracked.
	Malformed
)

func (c Code) String() string {
	switch c {
	case Mismatch:
		return "mismatch"
	case Rejected:
		return "rejected"
	case Exhausted:
		return "exhausted"
	case Malformed:
		return "malformed grammar"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// An Error is the failure of one grammar node.
type Error struct {
	Code Code
	// Pos is the byte offset of the input where the node failed.
	Pos int
	Msg string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%d: %s: %s", err.Pos, err.Code, err.Msg)
}

// backtrack returns whether err is an expected failure
// after which another alternative may be tried.
func backtrack(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Code != Malformed
}

// A SyntaxError is the failure to parse an input.
type SyntaxError struct {
	Path string
	Text string
	Fail *peg.Fail
}

// Tree returns the tree of the farthest failures.
func (err *SyntaxError) Tree() *peg.Fail { return err.Fail }

func (err *SyntaxError) Error() string {
	e := peg.SimpleError(err.Text, err.Fail)
	e.FilePath = err.Path
	return e.Error()
}

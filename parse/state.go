// Copyright © 2020 The Pea Authors under an MIT-style license.

package parse

import "github.com/eaburns/forest/tree"

// State is the state of a parse.
// It is a value; handlers return new States rather than modifying one.
type State struct {
	// Root is the root of the AST.
	Root tree.Entity
	// Current is the AST node under which spawned nodes are adopted.
	// After a Spawn succeeds, it is the spawned node.
	Current tree.Entity
	// Stream is the input position.
	Stream Stream
	// Precedence is the precedence of the context;
	// only Postfix operators of higher precedence may match.
	Precedence float64
}

// NewState returns the initial State of parsing text into root.
func NewState(root tree.Entity, text string) State {
	return State{Root: root, Current: root, Stream: NewStream(text)}
}

func (st State) WithCurrent(e tree.Entity) State {
	st.Current = e
	return st
}

func (st State) WithStream(s Stream) State {
	st.Stream = s
	return st
}

func (st State) WithPrecedence(p float64) State {
	st.Precedence = p
	return st
}

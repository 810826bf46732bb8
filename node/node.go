// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package node defines the data of AST nodes,
// constructors for AST subtrees,
// and accessors for the children of each kind of AST node.
//
// AST nodes carry no data beyond their kind:
// a Tag component, an optional Text component holding
// the source text the node was parsed from (or its literal value),
// and, for parsed nodes, a loc.Range component.
// Their structure is entirely in their children.
package node

import (
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/loc"
	"github.com/eaburns/forest/tree"
)

// A Tag is the data of an AST node.
type Tag struct {
	K kind.Kind
}

// Kind returns the tagged kind.
func (t Tag) Kind() kind.Kind { return t.K }

// Text is the text of an AST node.
type Text string

// TextOf returns the Text of n.
func TextOf(n tree.View) (string, bool) {
	t, ok := tree.Get[Text](n.Store(), n.Entity())
	return string(t), ok
}

// RangeOf returns the source range of n, if n was parsed.
func RangeOf(n tree.View) (loc.Range, bool) {
	return tree.Get[loc.Range](n.Store(), n.Entity())
}

// Of returns a view of e if it is an AST node matching kinds.
func Of(s *tree.Store, e tree.Entity, kinds ...kind.Kind) (tree.View, bool) {
	n, ok := tree.ViewOf(s, e, kinds...)
	if !ok {
		return tree.View{}, false
	}
	if _, ok := n.Data().(Tag); !ok {
		return tree.View{}, false
	}
	return n, true
}

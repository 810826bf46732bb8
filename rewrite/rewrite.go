// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package rewrite has passes that rewrite an AST in place.
//
// Each pass looks for nodes of one kind and edits the matches it finds.
// The matches are collected before the pass edits anything,
// so nodes created by a pass are not revisited by it,
// and a match destroyed by an earlier edit of the same pass is skipped.
// Passes run once each, in order; they do not iterate to a fixed point.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
)

// A Pass is a single rewrite of an AST.
type Pass struct {
	Name string
	// Run rewrites the AST under root and returns the number of edits.
	Run func(f node.Factory, root tree.Entity) int
}

var all = []Pass{
	{Name: "remove-parenthesized", Run: RemoveParenthesized},
	{Name: "remove-nested-plus", Run: RemoveNestedUnary(kind.Plus)},
	{Name: "remove-nested-minus", Run: RemoveNestedUnary(kind.Minus)},
	{Name: "remove-nested-not", Run: RemoveNestedUnary(kind.Not)},
	{Name: "replace-minus-by-subtract", Run: ReplaceMinusBySubtract},
	{Name: "function-body-to-block", Run: FunctionBodyToBlock},
	{Name: "declare-variables", Run: DeclareVariables},
}

// DefaultNames are the names of the passes of the default pipeline, in order.
var DefaultNames = []string{
	"remove-parenthesized",
	"replace-minus-by-subtract",
	"function-body-to-block",
	"declare-variables",
}

// Names returns the names of all passes.
func Names() []string {
	var names []string
	for _, p := range all {
		names = append(names, p.Name)
	}
	return names
}

// Lookup returns the named pass.
func Lookup(name string) (Pass, bool) {
	for _, p := range all {
		if p.Name == name {
			return p, true
		}
	}
	return Pass{}, false
}

// Passes returns the named passes in the given order.
func Passes(names ...string) ([]Pass, error) {
	var ps []Pass
	for _, name := range names {
		p, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown pass %q (known passes: %s)",
				name, strings.Join(Names(), ", "))
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// Default returns the passes of the default pipeline.
func Default() []Pass {
	ps, err := Passes(DefaultNames...)
	if err != nil {
		panic("impossible: " + err.Error())
	}
	return ps
}

// Run runs each pass once, in order, over the AST under root.
// If logf is non-nil, it is called after each pass
// with the pass name and its number of edits.
func Run(f node.Factory, root tree.Entity, passes []Pass, logf func(string, ...interface{})) int {
	var total int
	for _, p := range passes {
		n := p.Run(f, root)
		if logf != nil {
			logf("%s: %d edits\n", p.Name, n)
		}
		total += n
	}
	return total
}

// matches returns the nodes under root of kind k.
// root itself is never a match, so passes never replace it.
func matches(f node.Factory, root tree.Entity, k kind.Kind) []tree.View {
	r, ok := node.Of(f.Store(), root)
	if !ok {
		return nil
	}
	return r.Descendants(tree.FromTop, k)
}

// alive returns whether the match n is still in the AST.
func alive(n tree.View) bool { return n.Store().Alive(n.Entity()) }

// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package compile drives the compilation of one source text:
// parsing, rewriting, evaluation, and generation
// of an AST in a store owned by the compilation.
package compile

import (
	"github.com/eaburns/forest/gen"
	"github.com/eaburns/forest/interp"
	"github.com/eaburns/forest/lang"
	"github.com/eaburns/forest/loc"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/parse"
	"github.com/eaburns/forest/rewrite"
	"github.com/eaburns/forest/tree"
)

// A Unit is the compilation of one source text.
// Its grammar and AST live in a store of its own;
// Close destroys them.
type Unit struct {
	file    *loc.File
	store   *tree.Store
	factory node.Factory
	grammar lang.Grammar
	root    tree.Entity
}

// New returns a new Unit of the text of the file at path.
// The path is used only for error messages and locations.
func New(path, text string) *Unit {
	s := tree.New()
	f := node.NewFactory(s)
	return &Unit{
		file:    loc.NewFile(path, text),
		store:   s,
		factory: f,
		grammar: lang.Build(s),
		root:    f.Root(),
	}
}

// Path returns the path of the source.
func (u *Unit) Path() string { return u.file.Path }

// Text returns the source text.
func (u *Unit) Text() string { return u.file.Text }

// Store returns the store of the AST.
func (u *Unit) Store() *tree.Store { return u.store }

// Root returns the root of the AST.
func (u *Unit) Root() tree.Entity { return u.root }

// Parse parses the source text under the root.
// The whole text must parse; otherwise a *parse.SyntaxError is returned
// and the AST is left empty.
func (u *Unit) Parse() error {
	return parse.Parse(u.store, u.grammar.Root, u.root, u.file.Path, u.file.Text)
}

// Rewrite runs the passes over the AST and returns the number of edits.
// logf, if non-nil, is called with the number of edits of each pass.
func (u *Unit) Rewrite(passes []rewrite.Pass, logf func(string, ...interface{})) int {
	return rewrite.Run(u.factory, u.root, passes, logf)
}

// Eval evaluates the AST in the scope and returns the value of its last expression.
func (u *Unit) Eval(sc *interp.Scope) (interface{}, error) {
	return interp.New(u.store).Eval(u.root, sc)
}

// Generate returns the source text of the AST.
func (u *Unit) Generate() (string, error) {
	return gen.New(u.store).Generate(u.root)
}

// Loc returns the source location of a parsed AST node,
// or nil if the node was not parsed, for example, if it was created by a rewrite.
func (u *Unit) Loc(e tree.Entity) *loc.Loc {
	n, ok := node.Of(u.store, e)
	if !ok {
		return nil
	}
	r, ok := node.RangeOf(n)
	if !ok {
		return nil
	}
	return u.file.Loc(r)
}

// A Node is a plain copy of an AST node, for printing.
type Node struct {
	Kind string
	Text string
	Loc  string
	Kids []Node
}

// Dump returns a copy of the AST.
func (u *Unit) Dump() Node {
	n, _ := node.Of(u.store, u.root)
	return u.dump(n)
}

func (u *Unit) dump(n tree.View) Node {
	d := Node{Kind: n.Kind().String()}
	d.Text, _ = node.TextOf(n)
	if l := u.Loc(n.Entity()); l != nil {
		d.Loc = l.String()
	}
	for _, kid := range n.Children() {
		d.Kids = append(d.Kids, u.dump(kid))
	}
	return d
}

// Close destroys the grammar and the AST.
// The Unit must not be used after Close.
func (u *Unit) Close() { u.store.Clear() }

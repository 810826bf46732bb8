// Copyright © 2020 The Pea Authors under an MIT-style license.

package node

import (
	"strconv"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// A Factory creates AST subtrees in a store.
// Children passed to a constructor are adopted in order,
// moving them from any previous parent.
type Factory struct {
	s *tree.Store
}

// NewFactory returns a Factory over s.
func NewFactory(s *tree.Store) Factory { return Factory{s: s} }

// Store returns the factory's store.
func (f Factory) Store() *tree.Store { return f.s }

// View returns a view of the AST node e.
// The zero View is returned if e is not an AST node.
func (f Factory) View(e tree.Entity) tree.View {
	n, _ := Of(f.s, e)
	return n
}

// Create returns a new node of kind k with the given children.
func (f Factory) Create(k kind.Kind, children ...tree.Entity) tree.Entity {
	e := f.s.Create()
	f.s.Set(e, Tag{K: k})
	f.s.Adopt(e, children...)
	return e
}

// CreateText is like Create, but also sets the node's Text.
func (f Factory) CreateText(k kind.Kind, text string, children ...tree.Entity) tree.Entity {
	e := f.Create(k, children...)
	f.s.Set(e, Text(text))
	return e
}

func (f Factory) Root(children ...tree.Entity) tree.Entity { return f.Create(kind.Root, children...) }

// Type returns a type annotation naming a type.
func (f Factory) Type(name string) tree.Entity { return f.Create(kind.Type, f.Ident(name)) }

func (f Factory) Name(name string) tree.Entity { return f.CreateText(kind.Name, name) }

func (f Factory) Global() tree.Entity { return f.CreateText(kind.Global, "global") }

// Number returns a number literal.
func (f Factory) Number(v float64) tree.Entity {
	return f.CreateText(kind.Number, strconv.FormatFloat(v, 'g', -1, 64))
}

func (f Factory) Bool(v bool) tree.Entity {
	return f.CreateText(kind.Boolean, strconv.FormatBool(v))
}

// Str returns a string literal.
func (f Factory) Str(v string) tree.Entity { return f.CreateText(kind.String, v) }

func (f Factory) Null() tree.Entity { return f.CreateText(kind.Null, "null") }

// Literal returns a literal expression of a literal node.
func (f Factory) Literal(lit tree.Entity) tree.Entity { return f.Create(kind.LiteralExpr, lit) }

// Num returns a literal expression of a number.
func (f Factory) Num(v float64) tree.Entity { return f.Literal(f.Number(v)) }

// Ident returns an identifier expression of a name.
func (f Factory) Ident(name string) tree.Entity { return f.Create(kind.IdentExpr, f.Name(name)) }

// IdentOf returns an identifier expression of an identifier node.
func (f Factory) IdentOf(id tree.Entity) tree.Entity { return f.Create(kind.IdentExpr, id) }

func (f Factory) Paren(e tree.Entity) tree.Entity { return f.Create(kind.ParenExpr, e) }

// Invoke returns an invocation of callee with args.
func (f Factory) Invoke(callee tree.Entity, args ...tree.Entity) tree.Entity {
	return f.Create(kind.Invocation, append([]tree.Entity{callee}, args...)...)
}

// Unary returns a unary expression; k must be a Unary kind.
func (f Factory) Unary(k kind.Kind, e tree.Entity) tree.Entity { return f.Create(k, e) }

// Binary returns a binary expression; k must be a Binary kind.
func (f Factory) Binary(k kind.Kind, left, right tree.Entity) tree.Entity {
	return f.Create(k, left, right)
}

// Access returns left.n0.n1...
// The accesses nest to the left: ((left.n0).n1).
func (f Factory) Access(left tree.Entity, names ...string) tree.Entity {
	for _, n := range names {
		left = f.Binary(kind.Access, left, f.Ident(n))
	}
	return left
}

func (f Factory) Block(stmts ...tree.Entity) tree.Entity { return f.Create(kind.Block, stmts...) }

func (f Factory) ExprStmt(e tree.Entity) tree.Entity { return f.Create(kind.ExprStmt, e) }

func (f Factory) Return(e tree.Entity) tree.Entity { return f.Create(kind.Return, e) }

// If returns an if statement with an optional else body.
func (f Factory) If(cond, body tree.Entity, els ...tree.Entity) tree.Entity {
	e := f.Create(kind.If, cond, body)
	for _, b := range els {
		f.s.Adopt(e, f.Create(kind.Else, b))
	}
	return e
}

func (f Factory) DeclStmt(decl tree.Entity) tree.Entity { return f.Create(kind.DeclStmt, decl) }

// Function returns a function declaration.
// body is a statement: a Block, or an ExprStmt for an expression-bodied function.
func (f Factory) Function(name, typ string, body tree.Entity, params ...tree.Entity) tree.Entity {
	e := f.Create(kind.Function, f.Name(name), f.Type(typ), body)
	f.s.Adopt(e, params...)
	return e
}

// Variable returns a variable declaration with an optional initializer.
func (f Factory) Variable(name, typ string, init ...tree.Entity) tree.Entity {
	return f.Create(kind.Variable, append([]tree.Entity{f.Name(name), f.Type(typ)}, init...)...)
}

// Parameter returns a parameter declaration with an optional default.
func (f Factory) Parameter(name, typ string, def ...tree.Entity) tree.Entity {
	return f.Create(kind.Parameter, append([]tree.Entity{f.Name(name), f.Type(typ)}, def...)...)
}

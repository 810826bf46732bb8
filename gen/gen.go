// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package gen generates source text from ASTs.
package gen

import (
	"fmt"
	"strings"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
	"github.com/eaburns/forest/visitor"
)

var ops = map[kind.Kind]string{
	kind.Plus:         "+",
	kind.Minus:        "-",
	kind.Not:          "~",
	kind.Add:          "+",
	kind.Subtract:     "-",
	kind.Multiply:     "*",
	kind.Divide:       "/",
	kind.Equal:        "==",
	kind.NotEqual:     "!=",
	kind.Greater:      ">",
	kind.GreaterEqual: ">=",
	kind.Lesser:       "<",
	kind.LesserEqual:  "<=",
	kind.Assign:       "=",
	kind.Access:       ".",
}

// A Generator generates source text.
type Generator struct {
	v *visitor.Visitor[struct{}, string]
}

// New returns a new Generator of ASTs in s.
func New(s *tree.Store) *Generator {
	g := &Generator{v: visitor.New[struct{}, string](s)}
	g.v.Add(kind.Root, g.root)
	g.v.Add(kind.Type, g.typ)
	g.v.Add(kind.Trivia, text)
	g.v.Add(kind.Literal, text)
	g.v.Add(kind.Name, text)
	g.v.Add(kind.Global, func(tree.View, struct{}) (string, error) { return "global", nil })
	g.declarations()
	g.statements()
	g.expressions()
	return g
}

// Visitor returns the handlers of the generator.
func (g *Generator) Visitor() *visitor.Visitor[struct{}, string] { return g.v }

// Generate returns the source text of the node e.
func (g *Generator) Generate(e tree.Entity) (string, error) {
	return g.v.Visit(e, struct{}{})
}

func (g *Generator) gen(n tree.View) (string, error) { return g.v.VisitView(n, struct{}{}) }

func (g *Generator) genAll(ns []tree.View) ([]string, error) {
	var ss []string
	for _, n := range ns {
		s, err := g.gen(n)
		if err != nil {
			return nil, err
		}
		ss = append(ss, s)
	}
	return ss, nil
}

// child generates the child of n returned by get.
func (g *Generator) child(n tree.View, what string, get func(tree.View) (tree.View, bool)) (string, error) {
	kid, ok := get(n)
	if !ok {
		return "", fmt.Errorf("%s: missing %s", n.Kind(), what)
	}
	return g.gen(kid)
}

func text(n tree.View, _ struct{}) (string, error) {
	t, ok := node.TextOf(n)
	if !ok {
		return "", fmt.Errorf("%s: missing text", n.Kind())
	}
	return t, nil
}

// root generates each child but trivia on its own line.
func (g *Generator) root(n tree.View, _ struct{}) (string, error) {
	var kids []tree.View
	for _, kid := range n.Children() {
		if !kid.Is(kind.Trivia) {
			kids = append(kids, kid)
		}
	}
	ss, err := g.genAll(kids)
	if err != nil {
		return "", err
	}
	return strings.Join(ss, "\n"), nil
}

func (g *Generator) typ(n tree.View, _ struct{}) (string, error) {
	return g.child(n, "type expression", node.Expr)
}

func (g *Generator) declarations() {
	g.v.Add(kind.Function, func(n tree.View, _ struct{}) (string, error) {
		name, ok := node.Name(n)
		if !ok {
			return "", fmt.Errorf("%s: missing name", n.Kind())
		}
		typ, err := g.child(n, "type", node.Type)
		if err != nil {
			return "", err
		}
		params, err := g.genAll(node.Params(n))
		if err != nil {
			return "", err
		}
		body, ok := node.Body(n)
		if !ok {
			return "", fmt.Errorf("%s: missing body", n.Kind())
		}
		b, err := g.gen(body)
		if err != nil {
			return "", err
		}
		arrow := " "
		if body.Kind() == kind.ExprStmt {
			arrow = " => "
		}
		return fmt.Sprintf("%s %s(%s)%s%s", typ, name, strings.Join(params, ", "), arrow, b), nil
	})
	// Variables and parameters are type name = value.
	typed := func(n tree.View, _ struct{}) (string, error) {
		name, ok := node.Name(n)
		if !ok {
			return "", fmt.Errorf("%s: missing name", n.Kind())
		}
		typ, err := g.child(n, "type", node.Type)
		if err != nil {
			return "", err
		}
		init, ok := node.Expr(n)
		if !ok {
			return typ + " " + name, nil
		}
		v, err := g.gen(init)
		if err != nil {
			return "", err
		}
		return typ + " " + name + " = " + v, nil
	}
	g.v.Add(kind.Variable, typed)
	g.v.Add(kind.Parameter, typed)
}

func (g *Generator) statements() {
	g.v.Add(kind.Block, func(n tree.View, _ struct{}) (string, error) {
		ss, err := g.genAll(node.Statements(n))
		if err != nil {
			return "", err
		}
		return "{ " + strings.Join(ss, " ") + " }", nil
	})
	g.v.Add(kind.DeclStmt, func(n tree.View, _ struct{}) (string, error) {
		s, err := g.child(n, "declaration", node.Decl)
		return s + ";", err
	})
	g.v.Add(kind.ExprStmt, func(n tree.View, _ struct{}) (string, error) {
		s, err := g.child(n, "expression", node.Expr)
		return s + ";", err
	})
	g.v.Add(kind.Return, func(n tree.View, _ struct{}) (string, error) {
		if _, ok := node.Expr(n); !ok {
			return "return;", nil
		}
		s, err := g.child(n, "expression", node.Expr)
		return "return " + s + ";", err
	})
	g.v.Add(kind.If, func(n tree.View, _ struct{}) (string, error) {
		cond, err := g.child(n, "condition", node.Expr)
		if err != nil {
			return "", err
		}
		body, err := g.child(n, "body", node.Body)
		if err != nil {
			return "", err
		}
		s := "if(" + cond + ") " + body
		if _, ok := node.Else(n); ok {
			els, err := g.child(n, "else", node.Else)
			if err != nil {
				return "", err
			}
			s += " " + els
		}
		return s, nil
	})
	g.v.Add(kind.Else, func(n tree.View, _ struct{}) (string, error) {
		body, err := g.child(n, "body", node.Body)
		return "else " + body, err
	})
}

func (g *Generator) expressions() {
	g.v.Add(kind.LiteralExpr, func(n tree.View, _ struct{}) (string, error) {
		return g.child(n, "literal", node.Value)
	})
	g.v.Add(kind.IdentExpr, func(n tree.View, _ struct{}) (string, error) {
		return g.child(n, "identifier", node.Value)
	})
	g.v.Add(kind.ParenExpr, func(n tree.View, _ struct{}) (string, error) {
		s, err := g.child(n, "expression", node.Expr)
		return "(" + s + ")", err
	})
	g.v.Add(kind.Invocation, func(n tree.View, _ struct{}) (string, error) {
		callee, err := g.child(n, "function", node.Expr)
		if err != nil {
			return "", err
		}
		args, err := g.genAll(node.Args(n))
		if err != nil {
			return "", err
		}
		return callee + "(" + strings.Join(args, ", ") + ")", nil
	})
	g.v.Add(kind.Unary, func(n tree.View, _ struct{}) (string, error) {
		s, err := g.child(n, "operand", node.Expr)
		return ops[n.Kind()] + s, err
	})
	g.v.Add(kind.Binary, g.binary)
	g.v.Add(kind.Access, g.access)
}

// binary generates a binary expression,
// parenthesized unless it is directly under a statement, a declaration,
// or parentheses.
func (g *Generator) binary(n tree.View, _ struct{}) (string, error) {
	l, err := g.child(n, "left operand", node.Left)
	if err != nil {
		return "", err
	}
	r, err := g.child(n, "right operand", node.Right)
	if err != nil {
		return "", err
	}
	s := l + " " + ops[n.Kind()] + " " + r
	if _, ok := n.Parent(kind.Statement, kind.Declaration, kind.ParenExpr); ok {
		return s, nil
	}
	return "(" + s + ")", nil
}

// access generates a.b, or global::b for an access of global.
func (g *Generator) access(n tree.View, _ struct{}) (string, error) {
	l, err := g.child(n, "left operand", node.Left)
	if err != nil {
		return "", err
	}
	r, err := g.child(n, "right operand", node.Right)
	if err != nil {
		return "", err
	}
	sep := "."
	if left, _ := node.Left(n); left.Kind() == kind.IdentExpr {
		if id, ok := node.Value(left); ok && id.Kind() == kind.Global {
			sep = "::"
		}
	}
	return l + sep + r, nil
}

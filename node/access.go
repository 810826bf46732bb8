// Copyright © 2020 The Pea Authors under an MIT-style license.

package node

import (
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// Expr returns the first expression child of n.
// This is the operand of a unary, the inner expression of a parenthesized expression,
// the callee of an invocation, the left of a binary,
// the expression of an ExprStmt or Return, the condition of an If,
// the initializer of a Variable, the default of a Parameter,
// and the type expression of a Type.
func Expr(n tree.View) (tree.View, bool) { return n.Child(kind.Expression) }

// Left returns the left operand of a binary expression.
func Left(n tree.View) (tree.View, bool) { return Expr(n) }

// Right returns the right operand of a binary expression.
func Right(n tree.View) (tree.View, bool) {
	es := n.Children(kind.Expression)
	if len(es) < 2 {
		return tree.View{}, false
	}
	return es[1], true
}

// Args returns the arguments of an invocation.
func Args(n tree.View) []tree.View {
	es := n.Children(kind.Expression)
	if len(es) == 0 {
		return nil
	}
	return es[1:]
}

// Value returns the literal of a literal expression
// or the identifier of an identifier expression.
func Value(n tree.View) (tree.View, bool) { return n.Child(kind.Literal, kind.Identifier) }

// Statements returns the statements of a block.
func Statements(n tree.View) []tree.View { return n.Children(kind.Statement) }

// Body returns the body statement of a function, if, or else.
func Body(n tree.View) (tree.View, bool) { return n.Child(kind.Statement) }

// Else returns the else clause of an if.
func Else(n tree.View) (tree.View, bool) { return n.Child(kind.Else) }

// Decl returns the declaration of a declaration statement.
func Decl(n tree.View) (tree.View, bool) { return n.Child(kind.Declaration) }

// Params returns the parameters of a function.
func Params(n tree.View) []tree.View { return n.Children(kind.Parameter) }

// Type returns the type annotation of a typed declaration.
func Type(n tree.View) (tree.View, bool) { return n.Child(kind.Type) }

// Name returns the name of a named declaration.
func Name(n tree.View) (string, bool) {
	name, ok := n.Child(kind.Name)
	if !ok {
		return "", false
	}
	return TextOf(name)
}

// Copyright © 2020 The Pea Authors under an MIT-style license.

package rewrite

import (
	"fmt"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
)

// DeclareVariables flattens the expressions of the statements of each block
// into a sequence of variable declarations.
//
// For each statement of a block,
// the expressions evaluated by the statement itself are visited bottom up.
// Each is replaced by an identifier v_i
// and moved into a declaration var v_i = expression;
// inserted just before the statement.
// The counter i starts at 0 in each block.
//
// The expressions evaluated by a statement are
// the expression of an expression statement or return,
// the initializer of a variable declaration,
// and the condition of an if.
// The bodies of ifs and functions are statements of their own
// and are flattened only if they are blocks.
// The assigned operand of an assignment and both operands of an access
// must remain names, so they are not replaced,
// though the assignment or access itself is.
func DeclareVariables(f node.Factory, root tree.Entity) int {
	s := f.Store()
	var n int
	for _, block := range matches(f, root, kind.Block) {
		if !alive(block) {
			continue
		}
		var i int
		for _, stmt := range node.Statements(block) {
			for _, expr := range evaluated(stmt) {
				name := fmt.Sprintf("v_%d", i)
				i++
				s.Replace(expr.Entity(), f.Ident(name))
				decl := f.DeclStmt(f.Variable(name, "var", expr.Entity()))
				s.AdoptAt(block.Entity(), s.Index(stmt.Entity()), decl)
				n++
			}
		}
	}
	return n
}

// evaluated returns the expressions evaluated by a statement, bottom up.
func evaluated(stmt tree.View) []tree.View {
	var top tree.View
	var ok bool
	switch stmt.Kind() {
	case kind.ExprStmt, kind.Return, kind.If:
		top, ok = node.Expr(stmt)
	case kind.DeclStmt:
		var decl tree.View
		if decl, ok = node.Decl(stmt); ok && decl.Kind() == kind.Variable {
			top, ok = node.Expr(decl)
		} else {
			ok = false
		}
	}
	if !ok {
		return nil
	}
	return postorder(top, nil)
}

func postorder(n tree.View, out []tree.View) []tree.View {
	switch n.Kind() {
	case kind.Assign:
		if r, ok := node.Right(n); ok {
			out = postorder(r, out)
		}
	case kind.Access:
	default:
		for _, kid := range n.Children(kind.Expression) {
			out = postorder(kid, out)
		}
	}
	return append(out, n)
}

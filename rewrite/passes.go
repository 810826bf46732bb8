// Copyright © 2020 The Pea Authors under an MIT-style license.

package rewrite

import (
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
)

// RemoveParenthesized replaces each parenthesized expression
// with the expression inside it.
func RemoveParenthesized(f node.Factory, root tree.Entity) int {
	s := f.Store()
	var n int
	for _, paren := range matches(f, root, kind.ParenExpr) {
		if !alive(paren) {
			continue
		}
		expr, ok := node.Expr(paren)
		if !ok {
			continue
		}
		s.Replace(paren.Entity(), expr.Entity())
		s.Destroy(paren.Entity())
		n++
	}
	return n
}

// ReplaceMinusBySubtract replaces each unary minus -E
// with the subtraction 0-E.
func ReplaceMinusBySubtract(f node.Factory, root tree.Entity) int {
	s := f.Store()
	var n int
	for _, minus := range matches(f, root, kind.Minus) {
		if !alive(minus) {
			continue
		}
		expr, ok := node.Expr(minus)
		if !ok {
			continue
		}
		sub := f.Binary(kind.Subtract, f.Num(0), expr.Entity())
		s.Replace(minus.Entity(), sub)
		s.Destroy(minus.Entity())
		n++
	}
	return n
}

// FunctionBodyToBlock replaces the body of each expression-bodied function
// with a block that returns the expression.
func FunctionBodyToBlock(f node.Factory, root tree.Entity) int {
	s := f.Store()
	var n int
	for _, fun := range matches(f, root, kind.Function) {
		if !alive(fun) {
			continue
		}
		if _, ok := node.Type(fun); !ok {
			continue
		}
		body, ok := node.Body(fun)
		if !ok || body.Kind() != kind.ExprStmt {
			continue
		}
		expr, ok := node.Expr(body)
		if !ok {
			continue
		}
		block := f.Block(f.Return(expr.Entity()))
		s.Replace(body.Entity(), block)
		s.DestroyTree(body.Entity())
		n++
	}
	return n
}

// RemoveNestedUnary returns a pass that replaces
// each pair of nested unary operators of kind k with the operand.
// It is not in the default pipeline:
// for Plus, which truncates to an integer, it changes the value of non-integers.
func RemoveNestedUnary(k kind.Kind) func(node.Factory, tree.Entity) int {
	return func(f node.Factory, root tree.Entity) int {
		s := f.Store()
		var n int
		for _, outer := range matches(f, root, k) {
			if !alive(outer) {
				continue
			}
			inner, ok := node.Expr(outer)
			if !ok || inner.Kind() != k {
				continue
			}
			nested, ok := node.Expr(inner)
			if !ok {
				continue
			}
			s.Replace(outer.Entity(), nested.Entity())
			s.DestroyTree(outer.Entity())
			n++
		}
		return n
	}
}

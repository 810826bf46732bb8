// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package lang is the grammar of a small expression language.
//
// A program is a sequence of expressions separated by white space.
// Expressions are literals (numbers, true, false, null),
// identifiers (names and global),
// the prefix operators + - ~, parentheses,
// invocations f(x, y), member access a.b,
// and the binary operators below, from tightest to loosest binding:
//
//	.  and invocation   left
//	*  /                left
//	+  -                left
//	>  >=  <  <=        right
//	==  !=              right
//	=                   right
//
// Spaces and tabs may appear between the tokens of an expression.
// Between expressions they spawn Space and Line trivia under the root.
package lang

import (
	"github.com/eaburns/forest/grammar"
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// Operator precedences.
const (
	Call       = 120
	Product    = 75
	Sum        = 70
	Comparison = 60
	Equality   = 55
	Assignment = 15
)

// A Grammar holds the entry points of the language grammar.
type Grammar struct {
	// Root matches a whole program.
	Root tree.Entity
	// Expression matches a single expression.
	Expression tree.Entity
}

// Build builds the grammar in s.
func Build(s *tree.Store) Grammar {
	b := grammar.NewBuilder(s)

	digit := func() tree.Entity { return b.Range('0', '9') }
	letter := func() tree.Entity { return b.Any(b.Char('_'), b.Range('a', 'z'), b.Range('A', 'Z')) }
	identChar := func() tree.Entity { return b.Any(letter(), digit()) }
	keyword := func(w string) tree.Entity { return b.Seq(b.String(w), b.Not(identChar())) }
	blank := func() tree.Entity { return b.Loop(b.Any(b.Char(' '), b.Char('\t'))) }

	trivia := b.Any(
		b.Spawn(kind.Space, b.Any(b.Char(' '), b.Char('\t'))),
		b.Spawn(kind.Line, b.Any(b.Char('\n'), b.Char('\r'))),
	)
	literal := b.Any(
		b.Spawn(kind.Boolean, b.Any(keyword("true"), keyword("false"))),
		b.Spawn(kind.Null, keyword("null")),
		b.Spawn(kind.Number,
			digit(), b.Loop(digit()),
			b.Option(b.Char('.'), digit(), b.Loop(digit()))),
	)
	identifier := b.Any(
		b.Spawn(kind.Global, keyword("global")),
		b.Spawn(kind.Name,
			b.Any(b.Char('@'), letter()),
			b.Loop(identChar())),
	)

	prefix, postfix := b.Declare(), b.Declare()
	expr := b.Precedence(prefix, postfix)
	unary := func(k kind.Kind, op rune) tree.Entity {
		return b.Spawn(k, b.Char(op), blank(), b.Ref(expr))
	}
	binary := func(k kind.Kind, prec float64, assoc grammar.Associativity, op string) tree.Entity {
		return b.Postfix(k, prec, assoc, blank(), b.String(op), blank(), b.Ref(expr))
	}
	arg := func() tree.Entity { return b.Group(b.Ref(expr)) }

	b.Define(prefix,
		unary(kind.Plus, '+'),
		unary(kind.Minus, '-'),
		unary(kind.Not, '~'),
		b.Spawn(kind.ParenExpr, b.Char('('), blank(), b.Group(b.Ref(expr)), blank(), b.Char(')')),
		b.Spawn(kind.LiteralExpr, b.Ref(literal)),
		b.Spawn(kind.IdentExpr, b.Ref(identifier)),
	)
	b.Define(postfix,
		b.Postfix(kind.Invocation, Call, grammar.Left,
			blank(), b.Char('('), blank(),
			b.Option(arg(), blank(), b.Loop(b.Char(','), blank(), arg(), blank())),
			b.Char(')')),
		binary(kind.Access, Call, grammar.Left, "."),
		binary(kind.Multiply, Product, grammar.Left, "*"),
		binary(kind.Divide, Product, grammar.Left, "/"),
		binary(kind.Add, Sum, grammar.Left, "+"),
		binary(kind.Subtract, Sum, grammar.Left, "-"),
		binary(kind.Greater, Comparison, grammar.Right, ">"),
		binary(kind.GreaterEqual, Comparison, grammar.Right, ">="),
		binary(kind.Lesser, Comparison, grammar.Right, "<"),
		binary(kind.LesserEqual, Comparison, grammar.Right, "<="),
		binary(kind.Equal, Equality, grammar.Right, "=="),
		binary(kind.NotEqual, Equality, grammar.Right, "!="),
		binary(kind.Assign, Assignment, grammar.Right, "="),
	)

	return Grammar{
		Root:       b.Loop(b.Any(b.Ref(expr), b.Ref(trivia))),
		Expression: expr,
	}
}

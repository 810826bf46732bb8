// Copyright © 2020 The Pea Authors under an MIT-style license.

package node

import (
	"math/rand"
	"strconv"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

type choice struct {
	weight float64
	make   func() tree.Entity
}

func pick(r *rand.Rand, cs ...choice) tree.Entity {
	var sum float64
	for _, c := range cs {
		sum += c.weight
	}
	x := r.Float64() * sum
	sum = 0
	for _, c := range cs {
		sum += c.weight
		if x < sum {
			return c.make()
		}
	}
	return cs[len(cs)-1].make()
}

// RandomLiteral returns a random number, boolean, or string literal expression.
func RandomLiteral(f Factory, r *rand.Rand) tree.Entity {
	return pick(r,
		choice{1, func() tree.Entity { return f.Num(float64(r.Intn(100))) }},
		choice{1, func() tree.Entity { return f.Literal(f.Bool(r.Float64() < 0.5)) }},
		choice{1, func() tree.Entity { return f.Literal(f.Str(strconv.Itoa(r.Intn(100)))) }},
	)
}

// RandomExpr returns a random expression.
// Deeper operators are less likely;
// at maxDepth only literals are generated.
func RandomExpr(f Factory, r *rand.Rand, maxDepth int) tree.Entity {
	return randomExpr(f, r, 1, maxDepth, RandomLiteral)
}

// RandomNumeric is like RandomExpr,
// but generates only number literals and the arithmetic operators.
func RandomNumeric(f Factory, r *rand.Rand, maxDepth int) tree.Entity {
	lit := func(f Factory, r *rand.Rand) tree.Entity { return f.Num(float64(r.Intn(100))) }
	return randomNumeric(f, r, 1, maxDepth, lit)
}

var (
	unaries  = []kind.Kind{kind.Plus, kind.Minus, kind.Not}
	binaries = []kind.Kind{
		kind.Add, kind.Subtract, kind.Divide, kind.Multiply,
		kind.Equal, kind.NotEqual,
		kind.Greater, kind.GreaterEqual, kind.Lesser, kind.LesserEqual,
	}
)

type literalFunc func(Factory, *rand.Rand) tree.Entity

func randomExpr(f Factory, r *rand.Rand, depth, maxDepth int, lit literalFunc) tree.Entity {
	if depth >= maxDepth {
		return lit(f, r)
	}
	d := float64(depth)
	sub := func() tree.Entity { return randomExpr(f, r, depth+1, maxDepth, lit) }
	var cs []choice
	for _, k := range unaries {
		k := k
		cs = append(cs, choice{3 / d, func() tree.Entity { return f.Unary(k, sub()) }})
	}
	for _, k := range binaries {
		k := k
		cs = append(cs, choice{1 / d, func() tree.Entity { return f.Binary(k, sub(), sub()) }})
	}
	cs = append(cs,
		choice{1 / d, func() tree.Entity { return f.Paren(sub()) }},
		choice{5, func() tree.Entity { return lit(f, r) }},
	)
	return pick(r, cs...)
}

func randomNumeric(f Factory, r *rand.Rand, depth, maxDepth int, lit literalFunc) tree.Entity {
	if depth >= maxDepth {
		return lit(f, r)
	}
	d := float64(depth)
	sub := func() tree.Entity { return randomNumeric(f, r, depth+1, maxDepth, lit) }
	cs := []choice{
		{3 / d, func() tree.Entity { return f.Unary(kind.Plus, sub()) }},
		{3 / d, func() tree.Entity { return f.Unary(kind.Minus, sub()) }},
		{1 / d, func() tree.Entity { return f.Paren(sub()) }},
		{5, func() tree.Entity { return lit(f, r) }},
	}
	for _, k := range []kind.Kind{kind.Add, kind.Subtract, kind.Multiply} {
		k := k
		cs = append(cs, choice{1 / d, func() tree.Entity { return f.Binary(k, sub(), sub()) }})
	}
	return pick(r, cs...)
}

// RandomProgram returns a Root holding a function Main of type int,
// whose body is a random expression,
// followed by an invocation of Main.
func RandomProgram(f Factory, r *rand.Rand, maxDepth int) tree.Entity {
	return f.Root(
		f.Function("Main", "int", f.ExprStmt(RandomExpr(f, r, maxDepth))),
		f.Invoke(f.Ident("Main")),
	)
}

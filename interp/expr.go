// Copyright © 2020 The Pea Authors under an MIT-style license.

package interp

import (
	"errors"
	"fmt"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
)

func (in *Interpreter) expressions() {
	// Literal, identifier, and parenthesized expressions
	// are the value of their only child.
	in.v.Add(kind.LiteralExpr, func(n tree.View, sc *Scope) (interface{}, error) {
		lit, ok := node.Value(n)
		if !ok {
			return nil, missing(n, "literal")
		}
		return in.visit(lit, sc)
	})
	in.v.Add(kind.IdentExpr, func(n tree.View, sc *Scope) (interface{}, error) {
		id, ok := node.Value(n)
		if !ok {
			return nil, missing(n, "identifier")
		}
		return in.visit(id, sc)
	})
	in.v.Add(kind.ParenExpr, func(n tree.View, sc *Scope) (interface{}, error) {
		expr, ok := node.Expr(n)
		if !ok {
			return nil, missing(n, "expression")
		}
		return in.visit(expr, sc)
	})

	in.v.Add(kind.Not, in.integer(func(x int64) interface{} { return float64(^x) }))
	in.v.Add(kind.Plus, in.integer(func(x int64) interface{} { return float64(x) }))
	in.v.Add(kind.Minus, in.unary(func(v interface{}) (interface{}, error) {
		x, err := Number(v)
		return -x, err
	}))

	in.v.Add(kind.Add, in.arith(func(x, y float64) interface{} { return x + y }))
	in.v.Add(kind.Subtract, in.arith(func(x, y float64) interface{} { return x - y }))
	in.v.Add(kind.Multiply, in.arith(func(x, y float64) interface{} { return x * y }))
	in.v.Add(kind.Divide, in.arith(func(x, y float64) interface{} { return x / y }))
	in.v.Add(kind.Greater, in.arith(func(x, y float64) interface{} { return x > y }))
	in.v.Add(kind.GreaterEqual, in.arith(func(x, y float64) interface{} { return x >= y }))
	in.v.Add(kind.Lesser, in.arith(func(x, y float64) interface{} { return x < y }))
	in.v.Add(kind.LesserEqual, in.arith(func(x, y float64) interface{} { return x <= y }))
	in.v.Add(kind.Equal, in.truth(func(x, y bool) bool { return x == y }))
	in.v.Add(kind.NotEqual, in.truth(func(x, y bool) bool { return x != y }))

	in.v.Add(kind.Assign, in.assign)
	in.v.Add(kind.Access, in.access)
	in.v.Add(kind.Invocation, in.invoke)
}

func (in *Interpreter) unary(op func(interface{}) (interface{}, error)) func(tree.View, *Scope) (interface{}, error) {
	return func(n tree.View, sc *Scope) (interface{}, error) {
		expr, ok := node.Expr(n)
		if !ok {
			return nil, missing(n, "operand")
		}
		v, err := in.value(expr, sc)
		if err != nil {
			return nil, err
		}
		return op(v)
	}
}

func (in *Interpreter) integer(op func(int64) interface{}) func(tree.View, *Scope) (interface{}, error) {
	return in.unary(func(v interface{}) (interface{}, error) {
		x, err := Integer(v)
		if err != nil {
			return nil, err
		}
		return op(x), nil
	})
}

func (in *Interpreter) binary(op func(l, r interface{}) (interface{}, error)) func(tree.View, *Scope) (interface{}, error) {
	return func(n tree.View, sc *Scope) (interface{}, error) {
		left, ok := node.Left(n)
		if !ok {
			return nil, missing(n, "left operand")
		}
		right, ok := node.Right(n)
		if !ok {
			return nil, missing(n, "right operand")
		}
		l, err := in.value(left, sc)
		if err != nil {
			return nil, err
		}
		r, err := in.value(right, sc)
		if err != nil {
			return nil, err
		}
		return op(l, r)
	}
}

func (in *Interpreter) arith(op func(x, y float64) interface{}) func(tree.View, *Scope) (interface{}, error) {
	return in.binary(func(l, r interface{}) (interface{}, error) {
		x, err := Number(l)
		if err != nil {
			return nil, err
		}
		y, err := Number(r)
		if err != nil {
			return nil, err
		}
		return op(x, y), nil
	})
}

func (in *Interpreter) truth(op func(x, y bool) bool) func(tree.View, *Scope) (interface{}, error) {
	return in.binary(func(l, r interface{}) (interface{}, error) {
		x, err := Bool(l)
		if err != nil {
			return nil, err
		}
		y, err := Bool(r)
		if err != nil {
			return nil, err
		}
		return op(x, y), nil
	})
}

// assign sets the value of the symbol on the left.
// Assigning an undeclared name declares it in the current scope.
func (in *Interpreter) assign(n tree.View, sc *Scope) (interface{}, error) {
	left, ok := node.Left(n)
	if !ok {
		return nil, missing(n, "left operand")
	}
	right, ok := node.Right(n)
	if !ok {
		return nil, missing(n, "right operand")
	}
	l, err := in.visit(left, sc)
	var nf *NotFoundError
	if errors.As(err, &nf) && left.Kind() == kind.IdentExpr {
		l, err = sc.Declare(nf.Name, nil, nil), nil
	}
	if err != nil {
		return nil, err
	}
	sym, ok := l.(*Symbol)
	if !ok {
		return nil, fmt.Errorf("cannot assign to %s", Format(l))
	}
	v, err := in.value(right, sc)
	if err != nil {
		return nil, err
	}
	sym.Value = v
	return v, nil
}

// access evaluates the right operand among the members of the left symbol.
func (in *Interpreter) access(n tree.View, sc *Scope) (interface{}, error) {
	left, ok := node.Left(n)
	if !ok {
		return nil, missing(n, "left operand")
	}
	right, ok := node.Right(n)
	if !ok {
		return nil, missing(n, "right operand")
	}
	l, err := in.visit(left, sc)
	if err != nil {
		return nil, err
	}
	sym, ok := l.(*Symbol)
	if !ok {
		return nil, fmt.Errorf("cannot access a member of %s", Format(l))
	}
	return in.visit(right, sym.Members)
}

func (in *Interpreter) invoke(n tree.View, sc *Scope) (interface{}, error) {
	callee, ok := node.Expr(n)
	if !ok {
		return nil, missing(n, "function")
	}
	f, err := in.value(callee, sc)
	if err != nil {
		return nil, err
	}
	fun, ok := f.(Func)
	if !ok {
		return nil, &TypeError{Value: f, Want: "function"}
	}
	var args []interface{}
	for _, arg := range node.Args(n) {
		v, err := in.value(arg, sc)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return fun(args...)
}

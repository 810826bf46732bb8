// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package interp is a tree-walking interpreter of ASTs.
//
// Values are float64 numbers, bools, strings, nil for null, and Funcs.
// Operators convert their operands dynamically:
// arithmetic and comparisons use Number,
// == and != compare the truth of their operands (Bool),
// and ~ and unary + operate on integers (Integer).
//
// Identifiers evaluate to *Symbols, so that they can be assigned
// and so that an access a.b can evaluate b among the members of a.
// Every other use of a symbol uses its value.
package interp

import (
	"fmt"
	"strconv"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
	"github.com/eaburns/forest/visitor"
)

// GlobalName is the name of the symbol of the global identifier.
// Its members are the top-level scope of a program.
const GlobalName = "<global>"

// returned is the value of a return statement
// until it reaches the enclosing function.
type returned struct {
	value interface{}
}

// An Interpreter evaluates AST nodes.
type Interpreter struct {
	v *visitor.Visitor[*Scope, interface{}]
}

// New returns a new Interpreter of ASTs in s.
func New(s *tree.Store) *Interpreter {
	in := &Interpreter{v: visitor.New[*Scope, interface{}](s)}
	in.v.Add(kind.Root, in.root)
	in.identifiers()
	in.literals()
	in.declarations()
	in.statements()
	in.expressions()
	return in
}

// Visitor returns the handlers of the interpreter.
func (in *Interpreter) Visitor() *visitor.Visitor[*Scope, interface{}] { return in.v }

// Eval evaluates the node e in scope and returns its value.
func (in *Interpreter) Eval(e tree.Entity, scope *Scope) (interface{}, error) {
	v, err := in.v.Visit(e, scope)
	if err != nil {
		return nil, err
	}
	if r, ok := v.(returned); ok {
		v = r.value
	}
	return unwrap(v), nil
}

func (in *Interpreter) visit(n tree.View, sc *Scope) (interface{}, error) {
	return in.v.VisitView(n, sc)
}

// value evaluates n and returns its value, not its symbol.
func (in *Interpreter) value(n tree.View, sc *Scope) (interface{}, error) {
	v, err := in.v.VisitView(n, sc)
	if err != nil {
		return nil, err
	}
	return unwrap(v), nil
}

func missing(n tree.View, what string) error {
	if r, ok := node.RangeOf(n); ok {
		return fmt.Errorf("%s at %d: missing %s", n.Kind(), r[0], what)
	}
	return fmt.Errorf("%s: missing %s", n.Kind(), what)
}

func (in *Interpreter) root(n tree.View, sc *Scope) (interface{}, error) {
	global, ok := sc.Lookup(GlobalName)
	if !ok {
		global = sc.Declare(GlobalName, NewScope(sc), nil)
	}
	var result interface{}
	for _, kid := range n.Children() {
		if kid.Is(kind.Trivia) {
			continue
		}
		v, err := in.visit(kid, global.Members)
		if err != nil {
			return nil, err
		}
		result = v
	}
	if r, ok := result.(returned); ok {
		result = r.value
	}
	return unwrap(result), nil
}

func (in *Interpreter) identifiers() {
	in.v.Add(kind.Global, func(n tree.View, sc *Scope) (interface{}, error) {
		return find(sc, GlobalName)
	})
	in.v.Add(kind.Name, func(n tree.View, sc *Scope) (interface{}, error) {
		text, ok := node.TextOf(n)
		if !ok {
			return nil, missing(n, "text")
		}
		return find(sc, text)
	})
}

// find returns the named symbol, or a nil interface if it is not found.
func find(sc *Scope, name string) (interface{}, error) {
	sym, err := sc.Find(name)
	if err != nil {
		return nil, err
	}
	return sym, nil
}

func (in *Interpreter) literals() {
	in.v.Add(kind.Number, func(n tree.View, _ *Scope) (interface{}, error) {
		text, _ := node.TextOf(n)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", text)
		}
		return f, nil
	})
	in.v.Add(kind.Boolean, func(n tree.View, _ *Scope) (interface{}, error) {
		text, _ := node.TextOf(n)
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("bad boolean %q", text)
		}
		return b, nil
	})
	in.v.Add(kind.String, func(n tree.View, _ *Scope) (interface{}, error) {
		text, _ := node.TextOf(n)
		return text, nil
	})
	in.v.Add(kind.Null, func(tree.View, *Scope) (interface{}, error) { return nil, nil })
}

func (in *Interpreter) declarations() {
	in.v.Add(kind.Function, func(n tree.View, sc *Scope) (interface{}, error) {
		name, ok := node.Name(n)
		if !ok {
			return nil, missing(n, "name")
		}
		body, ok := node.Body(n)
		if !ok {
			return nil, missing(n, "body")
		}
		members := NewScope(sc)
		var params []*Symbol
		for _, p := range node.Params(n) {
			v, err := in.visit(p, members)
			if err != nil {
				return nil, err
			}
			params = append(params, v.(*Symbol))
		}
		fun := Func(func(args ...interface{}) (interface{}, error) {
			locals := NewScope(sc)
			for i, p := range params {
				v := p.Value
				if i < len(args) {
					v = args[i]
				}
				locals.Declare(p.Name, nil, unwrap(v))
			}
			v, err := in.visit(body, locals)
			if err != nil {
				return nil, err
			}
			if r, ok := v.(returned); ok {
				v = r.value
			}
			return unwrap(v), nil
		})
		return sc.Declare(name, members, fun), nil
	})
	// Parameters and variables are declared with an initial value,
	// their default or initializer.
	declare := func(n tree.View, sc *Scope) (interface{}, error) {
		name, ok := node.Name(n)
		if !ok {
			return nil, missing(n, "name")
		}
		var v interface{}
		if init, ok := node.Expr(n); ok {
			var err error
			if v, err = in.value(init, sc); err != nil {
				return nil, err
			}
		}
		return sc.Declare(name, nil, v), nil
	}
	in.v.Add(kind.Parameter, declare)
	in.v.Add(kind.Variable, declare)
}

func (in *Interpreter) statements() {
	in.v.Add(kind.Block, func(n tree.View, sc *Scope) (interface{}, error) {
		locals := NewScope(sc)
		var result interface{}
		for _, stmt := range node.Statements(n) {
			v, err := in.visit(stmt, locals)
			if err != nil {
				return nil, err
			}
			if _, ok := v.(returned); ok {
				return v, nil
			}
			result = v
		}
		return result, nil
	})
	in.v.Add(kind.Return, func(n tree.View, sc *Scope) (interface{}, error) {
		expr, ok := node.Expr(n)
		if !ok {
			return returned{}, nil
		}
		v, err := in.value(expr, sc)
		if err != nil {
			return nil, err
		}
		return returned{value: v}, nil
	})
	in.v.Add(kind.DeclStmt, func(n tree.View, sc *Scope) (interface{}, error) {
		decl, ok := node.Decl(n)
		if !ok {
			return nil, missing(n, "declaration")
		}
		return in.value(decl, sc)
	})
	in.v.Add(kind.ExprStmt, func(n tree.View, sc *Scope) (interface{}, error) {
		expr, ok := node.Expr(n)
		if !ok {
			return nil, missing(n, "expression")
		}
		return in.value(expr, sc)
	})
	in.v.Add(kind.If, func(n tree.View, sc *Scope) (interface{}, error) {
		cond, ok := node.Expr(n)
		if !ok {
			return nil, missing(n, "condition")
		}
		v, err := in.value(cond, sc)
		if err != nil {
			return nil, err
		}
		b, err := Bool(v)
		if err != nil {
			return nil, err
		}
		if b {
			body, ok := node.Body(n)
			if !ok {
				return nil, missing(n, "body")
			}
			return in.visit(body, sc)
		}
		if els, ok := node.Else(n); ok {
			return in.visit(els, sc)
		}
		return nil, nil
	})
	in.v.Add(kind.Else, func(n tree.View, sc *Scope) (interface{}, error) {
		body, ok := node.Body(n)
		if !ok {
			return nil, missing(n, "body")
		}
		return in.visit(body, sc)
	})
}

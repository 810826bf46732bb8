package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
	"github.com/eaburns/forest/visitor"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func eval(t *testing.T, s *tree.Store, e tree.Entity, sc *Scope) interface{} {
	t.Helper()
	v, err := New(s).Eval(e, sc)
	if err != nil {
		t.Fatalf("Eval=%v", err)
	}
	return v
}

func TestExpressions(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	bin := func(k kind.Kind, l, r float64) tree.Entity { return f.Binary(k, f.Num(l), f.Num(r)) }
	tests := []struct {
		name string
		expr tree.Entity
		want interface{}
	}{
		{"number", f.Num(1.5), 1.5},
		{"true", f.Literal(f.Bool(true)), true},
		{"string", f.Literal(f.Str("hi")), "hi"},
		{"null", f.Literal(f.Null()), nil},
		{"add", bin(kind.Add, 1, 2), 3.0},
		{"subtract", bin(kind.Subtract, 1, 2), -1.0},
		{"multiply", bin(kind.Multiply, 3, 2), 6.0},
		{"divide", bin(kind.Divide, 3, 2), 1.5},
		{"divide by zero", bin(kind.Divide, 1, 0), math.Inf(1)},
		{"greater", bin(kind.Greater, 3, 2), true},
		{"greater equal", bin(kind.GreaterEqual, 2, 2), true},
		{"lesser", bin(kind.Lesser, 3, 2), false},
		{"lesser equal", bin(kind.LesserEqual, 3, 2), false},
		{"equal truth", bin(kind.Equal, 3, 2), true},
		{"not equal truth", bin(kind.NotEqual, 0, 2), true},
		{"minus", f.Unary(kind.Minus, f.Num(2.5)), -2.5},
		{"plus truncates", f.Unary(kind.Plus, f.Num(2.5)), 2.0},
		{"plus rounds", f.Unary(kind.Plus, f.Num(2.6)), 3.0},
		{"not", f.Unary(kind.Not, f.Num(0)), -1.0},
		{"bool arithmetic", f.Binary(kind.Add, f.Literal(f.Bool(true)), f.Num(1)), 2.0},
		{"string arithmetic", f.Binary(kind.Multiply, f.Literal(f.Str("4")), f.Num(2)), 8.0},
		{"paren", f.Paren(bin(kind.Add, 1, 1)), 2.0},
		{"left assoc", f.Binary(kind.Subtract, bin(kind.Subtract, 2, 3), f.Num(4)), -5.0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := eval(t, s, test.expr, NewScope(nil))
			if diff := cmp.Diff(test.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("value differs: %s", diff)
			}
		})
	}
}

func TestTypeError(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	_, err := New(s).Eval(f.Binary(kind.Add, f.Literal(f.Str("x")), f.Num(1)), NewScope(nil))
	var terr *TypeError
	if !errors.As(err, &terr) {
		t.Fatalf("Eval=%v, want *TypeError", err)
	}
	if terr.Want != "number" {
		t.Errorf("want=%q, want number", terr.Want)
	}
}

func TestAssign(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	sc := NewScope(nil)
	a := sc.Declare("a", nil, 6.0)
	// a=2-3--4
	e := f.Binary(kind.Assign, f.Ident("a"),
		f.Binary(kind.Subtract,
			f.Binary(kind.Subtract, f.Num(2), f.Num(3)),
			f.Unary(kind.Minus, f.Num(4))))
	if got := eval(t, s, e, sc); got != 3.0 {
		t.Errorf("a=2-3--4 is %v, want 3", got)
	}
	if a.Value != 3.0 {
		t.Errorf("a=%v, want 3", a.Value)
	}
}

func TestAssignDeclares(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	sc := NewScope(nil)
	root := f.Root(
		f.Binary(kind.Assign, f.Ident("x"), f.Num(2)),
		f.Binary(kind.Assign, f.Ident("y"), f.Binary(kind.Multiply, f.Ident("x"), f.Num(3))),
	)
	if got := eval(t, s, root, sc); got != 6.0 {
		t.Errorf("got %v, want 6", got)
	}
	// The declarations are in the global scope and persist.
	root2 := f.Root(f.Access(f.IdentOf(f.Global()), "y"))
	if got := eval(t, s, root2, sc); got != 6.0 {
		t.Errorf("global.y=%v, want 6", got)
	}
}

func TestUndeclared(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	tests := []struct {
		name string
		expr tree.Entity
		want string
	}{
		{"add", f.Binary(kind.Add, f.Ident("nope"), f.Num(1)), "nope"},
		{"minus", f.Unary(kind.Minus, f.Ident("x")), "x"},
		{"not", f.Unary(kind.Not, f.Ident("x")), "x"},
		{"missing member", f.Unary(kind.Minus, f.Access(f.Ident("a"), "b")), "b"},
		{"missing global", f.Access(f.IdentOf(f.Global()), "g"), "<global>"},
		{
			"chained assign",
			f.Binary(kind.Assign, f.Ident("a"), f.Binary(kind.Assign, f.Ident("b"), f.Ident("c"))),
			"c",
		},
		{"argument", f.Invoke(f.Ident("x")), "x"},
		{"condition", f.If(f.Ident("x"), f.ExprStmt(f.Num(1))), "x"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sc := NewScope(nil)
			sc.Declare("a", nil, 1.0)
			v, err := New(s).Eval(test.expr, sc)
			var nf *NotFoundError
			if !errors.As(err, &nf) || nf.Name != test.want {
				t.Errorf("Eval=%v, %v, want NotFoundError of %s", v, err, test.want)
			}
		})
	}
}

func TestFunctions(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	root := f.Root(
		// int add(int x, int y = 10) => x + y
		f.Function("add", "int",
			f.ExprStmt(f.Binary(kind.Add, f.Ident("x"), f.Ident("y"))),
			f.Parameter("x", "int"),
			f.Parameter("y", "int", f.Num(10))),
		// int sign(int x) { if(x < 0) return -1; else return 1; }
		f.Function("sign", "int",
			f.Block(
				f.If(f.Binary(kind.Lesser, f.Ident("x"), f.Num(0)),
					f.Return(f.Num(-1)),
					f.Return(f.Num(1))),
				f.ExprStmt(f.Num(99))),
			f.Parameter("x", "int")),
		f.Binary(kind.Multiply,
			f.Invoke(f.Ident("add"), f.Num(1), f.Num(2)),
			f.Binary(kind.Add,
				f.Invoke(f.Ident("add"), f.Num(1)),
				f.Invoke(f.Ident("sign"), f.Num(-5)))),
	)
	// (1+2) * ((1+10) + -1)
	if got := eval(t, s, root, NewScope(nil)); got != 30.0 {
		t.Errorf("got %v, want 30", got)
	}
}

func TestBlockScope(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	sc := NewScope(nil)
	x := sc.Declare("x", nil, 1.0)
	block := f.Block(
		f.DeclStmt(f.Variable("x", "var", f.Num(5))),
		f.ExprStmt(f.Binary(kind.Assign, f.Ident("x"), f.Num(7))),
		f.ExprStmt(f.Ident("x")),
	)
	if got := eval(t, s, block, sc); got != 7.0 {
		t.Errorf("block=%v, want 7", got)
	}
	if x.Value != 1.0 {
		t.Errorf("outer x=%v, want 1", x.Value)
	}
}

func TestMemberAccess(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	sc := NewScope(nil)
	members := NewScope(nil)
	members.Declare("n", nil, 4.0)
	sc.Declare("o", members, nil)
	if got := eval(t, s, f.Access(f.Ident("o"), "n"), sc); got != 4.0 {
		t.Errorf("o.n=%v, want 4", got)
	}
	_, err := New(s).Eval(f.Access(f.Num(1), "n"), sc)
	if err == nil {
		t.Errorf("1.n succeeded")
	}
}

func TestNoHandler(t *testing.T) {
	s := tree.New()
	f := node.NewFactory(s)
	_, err := New(s).Eval(f.Create(kind.Space), NewScope(nil))
	var nh *visitor.NoHandlerError
	if !errors.As(err, &nh) || nh.Kind != kind.Space {
		t.Errorf("Eval=%v, want NoHandlerError of Space", err)
	}
}

func TestScope(t *testing.T) {
	root := NewScope(nil)
	root.Declare("a", nil, 1.0)
	child := NewScope(root)
	child.Declare("b", nil, 2.0)
	if sym, err := child.Find("a"); err != nil || sym.Value != 1.0 {
		t.Errorf("Find(a)=%v,%v", sym, err)
	}
	if _, ok := child.Lookup("a"); ok {
		t.Errorf("Lookup(a) found a in the child")
	}
	if _, err := root.Find("b"); err == nil {
		t.Errorf("Find(b) in the parent succeeded")
	}
	if child.Root() != root {
		t.Errorf("Root is not the root")
	}
	if s := child.String(); s != "{b=2}" {
		t.Errorf("String=%q, want {b=2}", s)
	}
}

package visitor

import (
	"errors"
	"testing"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

type tag kind.Kind

func (t tag) Kind() kind.Kind { return kind.Kind(t) }

func mk(s *tree.Store, k kind.Kind) tree.Entity {
	e := s.Create()
	s.Set(e, tag(k))
	return e
}

func name(s string) Func[int, string] {
	return func(tree.View, int) (string, error) { return s, nil }
}

func TestDispatchPriority(t *testing.T) {
	s := tree.New()
	v := New[int, string](s)
	v.Add(kind.Expression, name("expression"))
	v.Add(kind.Binary, name("binary"))
	v.Add(kind.Subtract, name("subtract"))

	tests := []struct {
		kind kind.Kind
		want string
	}{
		{kind.Subtract, "subtract"},
		{kind.Add, "binary"},
		{kind.Multiply, "binary"},
		{kind.Minus, "expression"},
		{kind.LiteralExpr, "expression"},
	}
	for _, test := range tests {
		got, err := v.Visit(mk(s, test.kind), 0)
		if err != nil || got != test.want {
			t.Errorf("Visit(%s)=%q,%v, want %q,nil", test.kind, got, err, test.want)
		}
	}
}

func TestDispatchMultipleCategories(t *testing.T) {
	s := tree.New()
	v := New[int, string](s)
	v.Add(kind.Typed, name("typed"))
	v.Add(kind.Named, name("named"))
	// Function is {Declaration, Named, Typed}; Named is listed before Typed.
	if got, _ := v.Visit(mk(s, kind.Function), 0); got != "named" {
		t.Errorf("Visit(Function)=%q, want named", got)
	}
	v.Add(kind.Declaration, name("declaration"))
	if got, _ := v.Visit(mk(s, kind.Function), 0); got != "declaration" {
		t.Errorf("Visit(Function)=%q, want declaration", got)
	}
}

func TestNoHandler(t *testing.T) {
	s := tree.New()
	v := New[int, string](s)
	v.Add(kind.Statement, name("statement"))
	_, err := v.Visit(mk(s, kind.Add), 0)
	var nh *NoHandlerError
	if !errors.As(err, &nh) || nh.Kind != kind.Add {
		t.Errorf("Visit(Add) error=%v, want NoHandlerError{Add}", err)
	}

	_, err = v.Visit(s.Create(), 0)
	var nd *NoDataError
	if !errors.As(err, &nd) {
		t.Errorf("Visit(bare entity) error=%v, want NoDataError", err)
	}
}

func TestAddRemove(t *testing.T) {
	s := tree.New()
	v := New[int, string](s)
	if !v.Add(kind.Add, name("a")) {
		t.Errorf("first Add=false, want true")
	}
	if v.Add(kind.Add, name("b")) {
		t.Errorf("second Add=true, want false")
	}
	if got, _ := v.Visit(mk(s, kind.Add), 0); got != "b" {
		t.Errorf("Visit(Add)=%q, want b", got)
	}
	if !v.Remove(kind.Add) || v.Remove(kind.Add) {
		t.Errorf("Remove did not report the handler exactly once")
	}
	v.Add(kind.Add, name("a"))
	v.Clear()
	if _, ok := v.Lookup(kind.Add); ok {
		t.Errorf("Lookup(Add) succeeded after Clear")
	}
}

func TestInputThreading(t *testing.T) {
	s := tree.New()
	v := New[int, int](s)
	v.Add(kind.Node, func(n tree.View, depth int) (int, error) {
		deepest := depth
		for _, c := range n.Children() {
			d, err := v.VisitView(c, depth+1)
			if err != nil {
				return 0, err
			}
			if d > deepest {
				deepest = d
			}
		}
		return deepest, nil
	})
	r, a, b := mk(s, kind.Root), mk(s, kind.Minus), mk(s, kind.LiteralExpr)
	s.Adopt(r, a)
	s.Adopt(a, b)
	if d, err := v.Visit(r, 0); err != nil || d != 2 {
		t.Errorf("depth=%d,%v, want 2,nil", d, err)
	}
}

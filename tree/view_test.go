package tree

import (
	"testing"

	"github.com/eaburns/forest/kind"
)

type tag kind.Kind

func (t tag) Kind() kind.Kind { return kind.Kind(t) }

func kinds(vs []View) []kind.Kind {
	var ks []kind.Kind
	for _, v := range vs {
		ks = append(ks, v.Kind())
	}
	return ks
}

func eqKinds(a, b []kind.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// (1 + -x) as Add(Literal, Minus(Ident)), with an untagged entity under Add.
func buildView(t *testing.T) (*Store, View) {
	s := New()
	mk := func(k kind.Kind, kids ...Entity) Entity {
		e := s.Create()
		s.Set(e, tag(k))
		s.Adopt(e, kids...)
		return e
	}
	bare := s.Create()
	add := mk(kind.Add,
		mk(kind.LiteralExpr, mk(kind.Number)),
		bare,
		mk(kind.Minus, mk(kind.IdentExpr, mk(kind.Name))))
	root := mk(kind.Root, add)
	v, ok := ViewOf(s, root)
	if !ok {
		t.Fatalf("ViewOf(root) failed")
	}
	return s, v
}

func TestViewChildren(t *testing.T) {
	_, root := buildView(t)
	add, ok := root.Child(kind.Expression)
	if !ok || add.Kind() != kind.Add {
		t.Fatalf("root.Child(Expression)=%v,%v, want Add", add, ok)
	}
	if got, want := kinds(add.Children()), []kind.Kind{kind.LiteralExpr, kind.Minus}; !eqKinds(got, want) {
		t.Errorf("add.Children()=%v, want %v", got, want)
	}
	if got, want := kinds(add.Children(kind.Unary)), []kind.Kind{kind.Minus}; !eqKinds(got, want) {
		t.Errorf("add.Children(Unary)=%v, want %v", got, want)
	}
	if _, ok := add.Child(kind.Statement); ok {
		t.Errorf("add.Child(Statement) found a child")
	}
	if p, ok := add.Parent(kind.Root); !ok || p.Entity() != root.Entity() {
		t.Errorf("add.Parent(Root)=%v,%v, want %v", p, ok, root)
	}
	if _, ok := add.Parent(kind.Expression); ok {
		t.Errorf("add.Parent(Expression) found a parent")
	}
}

func TestViewDescendants(t *testing.T) {
	_, root := buildView(t)
	top := kinds(root.Descendants(FromTop, kind.Expression))
	if want := []kind.Kind{kind.Add, kind.LiteralExpr, kind.Minus, kind.IdentExpr}; !eqKinds(top, want) {
		t.Errorf("Descendants(FromTop, Expression)=%v, want %v", top, want)
	}
	bottom := kinds(root.Descendants(FromBottom, kind.Expression))
	if want := []kind.Kind{kind.LiteralExpr, kind.IdentExpr, kind.Minus, kind.Add}; !eqKinds(bottom, want) {
		t.Errorf("Descendants(FromBottom, Expression)=%v, want %v", bottom, want)
	}
	name, ok := root.Descendant(FromTop, kind.Identifier)
	if !ok || name.Kind() != kind.Name {
		t.Fatalf("Descendant(Identifier)=%v,%v, want Name", name, ok)
	}
	anc := kinds(name.Ancestors(kind.Expression))
	if want := []kind.Kind{kind.IdentExpr, kind.Minus, kind.Add}; !eqKinds(anc, want) {
		t.Errorf("Ancestors(Expression)=%v, want %v", anc, want)
	}
	if a, ok := name.Ancestor(kind.Unary); !ok || a.Kind() != kind.Minus {
		t.Errorf("Ancestor(Unary)=%v,%v, want Minus", a, ok)
	}
	if r := name.Root(); r.Entity() != root.Entity() {
		t.Errorf("Root()=%v, want %v", r, root)
	}
}

func TestViewAbsent(t *testing.T) {
	s, root := buildView(t)
	if _, ok := ViewOf(s, Entity{}); ok {
		t.Errorf("ViewOf(zero) succeeded")
	}
	if _, ok := ViewOf(s, root.Entity(), kind.Expression); ok {
		t.Errorf("ViewOf(root, Expression) succeeded")
	}
	if _, ok := root.Parent(); ok {
		t.Errorf("root.Parent() succeeded")
	}
	if vs := root.Ancestors(); len(vs) != 0 {
		t.Errorf("root.Ancestors()=%v, want none", vs)
	}
	var zero View
	if !zero.IsZero() || zero.Kind() != kind.Invalid {
		t.Errorf("zero View is not zero")
	}
}

package kind

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineage(t *testing.T) {
	tests := []struct {
		kind Kind
		want []Kind
	}{
		{Node, nil},
		{Add, []Kind{Binary, Expression, Node}},
		{Minus, []Kind{Unary, Expression, Node}},
		{Character, []Kind{Grammar, Node}},
		{Function, []Kind{Declaration, Named, Typed, Node}},
		{Invalid, nil},
	}
	for _, test := range tests {
		got := Lineage(test.kind)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Lineage(%s) mismatch (-want +got):\n%s", test.kind, diff)
		}
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		kind, cat Kind
		want      bool
	}{
		{Add, Add, true},
		{Add, Binary, true},
		{Add, Expression, true},
		{Add, Node, true},
		{Add, Unary, false},
		{Add, Statement, false},
		{Variable, Named, true},
		{Block, Statement, true},
		{Space, Trivia, true},
		{Reference, Grammar, true},
		{Reference, Expression, false},
		{Invalid, Invalid, false},
	}
	for _, test := range tests {
		if got := Is(test.kind, test.cat); got != test.want {
			t.Errorf("Is(%s, %s)=%v, want %v", test.kind, test.cat, got, test.want)
		}
	}
}

func TestIsAny(t *testing.T) {
	if !IsAny(Add) {
		t.Errorf("IsAny(Add)=false, want true")
	}
	if IsAny(Invalid) {
		t.Errorf("IsAny(Invalid)=true, want false")
	}
	if !IsAny(Number, Statement, Literal) {
		t.Errorf("IsAny(Number, Statement, Literal)=false, want true")
	}
	if IsAny(Number, Statement, Expression) {
		t.Errorf("IsAny(Number, Statement, Expression)=true, want false")
	}
}

func TestConcrete(t *testing.T) {
	want := []Kind{Plus, Minus, Not}
	if diff := cmp.Diff(want, Concrete(Unary)); diff != "" {
		t.Errorf("Concrete(Unary) mismatch (-want +got):\n%s", diff)
	}
	for _, k := range Concrete(Node) {
		if k.Category() {
			t.Errorf("Concrete(Node) contains category %s", k)
		}
	}
}

func TestString(t *testing.T) {
	for k := Invalid; k < numKinds; k++ {
		if names[k] == "" {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if s := Kind(-1).String(); s != "Kind(?)" {
		t.Errorf("Kind(-1).String()=%q, want Kind(?)", s)
	}
}

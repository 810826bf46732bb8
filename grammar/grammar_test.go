package grammar

import (
	"strings"
	"testing"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

func TestRange(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	r, _ := tree.ViewOf(s, b.Range('a', 'e'))
	if r.Kind() != kind.Alternation {
		t.Fatalf("kind=%s, want Alternation", r.Kind())
	}
	var got strings.Builder
	for _, c := range r.Children(kind.Character) {
		got.WriteRune(c.Data().(Character).Value)
	}
	if got.String() != "abcde" {
		t.Errorf("runes=%q, want abcde", got.String())
	}
}

func TestString(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	n, _ := tree.ViewOf(s, b.String("héllo"))
	if n.Kind() != kind.Sequence {
		t.Fatalf("kind=%s, want Sequence", n.Kind())
	}
	if k := len(n.Children()); k != 5 {
		t.Errorf("len(children)=%d, want 5", k)
	}
}

func TestLoopRefersToItself(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	loop := b.Loop(b.Char('x'))
	n, _ := tree.ViewOf(s, loop)
	ref, ok := n.Descendant(tree.FromTop, kind.Reference)
	if !ok {
		t.Fatalf("no reference")
	}
	if target := ref.Data().(Reference).Target; target != loop {
		t.Errorf("target=%s, want %s", target, loop)
	}
	if err := Validate(s, loop); err != nil {
		t.Errorf("Validate=%v", err)
	}
}

func TestResolve(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	ref := b.Ref(tree.Entity{})
	root := b.Seq(b.Char('a'), ref)
	if err := Validate(s, root); err == nil {
		t.Errorf("Validate with an unresolved reference=nil")
	}
	if !b.Resolve(ref, root) {
		t.Fatalf("Resolve=false")
	}
	if err := Validate(s, root); err != nil {
		t.Errorf("Validate=%v", err)
	}
	if b.Resolve(root, ref) {
		t.Errorf("Resolve(non-reference)=true")
	}
}

func TestDeclareDefine(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	expr := b.Declare()
	paren := b.Seq(b.Char('('), b.Ref(expr), b.Char(')'))
	b.Define(expr, paren, b.Char('1'))
	n, _ := tree.ViewOf(s, expr)
	if k := len(n.Children()); k != 2 {
		t.Errorf("len(alternatives)=%d, want 2", k)
	}
	if err := Validate(s, expr); err != nil {
		t.Errorf("Validate=%v", err)
	}
}

func TestPostfix(t *testing.T) {
	s := tree.New()
	b := NewBuilder(s)
	e := b.Postfix(kind.Add, 70, Left, b.Char('+'))
	n, _ := tree.ViewOf(s, e)
	if sp, ok := n.Data().(Spawn); !ok || sp.Output != kind.Add {
		t.Fatalf("data=%v, want Spawn of Add", n.Data())
	}
	pf, ok := n.Descendant(tree.FromTop, kind.Postfix)
	if !ok {
		t.Fatalf("no postfix")
	}
	if d := pf.Data().(Postfix); d.Precedence != 70 || d.Assoc != Left {
		t.Errorf("postfix=%+v", d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Builder) tree.Entity
		want  string
	}{
		{
			name: "spawn category",
			build: func(b *Builder) tree.Entity {
				return b.Spawn(kind.Expression, b.Char('a'))
			},
			want: "cannot spawn Expression",
		},
		{
			name: "spawn grammar kind",
			build: func(b *Builder) tree.Entity {
				return b.Spawn(kind.Sequence, b.Char('a'))
			},
			want: "cannot spawn Sequence",
		},
		{
			name: "precedence arity",
			build: func(b *Builder) tree.Entity {
				p := b.Precedence(b.Char('a'), b.Char('b'))
				b.Store().Adopt(p, b.Char('c'))
				return p
			},
			want: "precedence has 3 children",
		},
		{
			name: "bare spawn",
			build: func(b *Builder) tree.Entity {
				return b.node(Spawn{Output: kind.Number})
			},
			want: "spawn has 0 children",
		},
		{
			name: "destroyed target",
			build: func(b *Builder) tree.Entity {
				target := b.Char('a')
				ref := b.Ref(target)
				b.Store().Destroy(target)
				return b.Seq(ref)
			},
			want: "reference to destroyed node",
		},
		{
			name: "non-grammar child",
			build: func(b *Builder) tree.Entity {
				seq := b.Seq()
				b.Store().Adopt(seq, b.Store().Create())
				return seq
			},
			want: "not a grammar node",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := tree.New()
			err := Validate(s, test.build(NewBuilder(s)))
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("Validate=%v, want containing %q", err, test.want)
			}
		})
	}
}

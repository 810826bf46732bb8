// Copyright © 2020 The Pea Authors under an MIT-style license.

package grammar

import (
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// A Builder builds grammar nodes in a store.
//
// Recursive rules are built in two phases:
// either Declare a rule, refer to it, and Define it later,
// or build a Ref with no target and Resolve it later.
type Builder struct {
	s *tree.Store
}

// NewBuilder returns a Builder that builds into s.
func NewBuilder(s *tree.Store) *Builder { return &Builder{s: s} }

// Store returns the builder's store.
func (b *Builder) Store() *tree.Store { return b.s }

func (b *Builder) node(d tree.Data, children ...tree.Entity) tree.Entity {
	e := b.s.Create()
	b.s.Set(e, d)
	b.s.Adopt(e, children...)
	return e
}

// Char returns a Character matching r.
func (b *Builder) Char(r rune) tree.Entity { return b.node(Character{Value: r}) }

// Range returns an Alternation of every rune from lo to hi, inclusive.
func (b *Builder) Range(lo, hi rune) tree.Entity {
	var cs []tree.Entity
	for r := lo; r <= hi; r++ {
		cs = append(cs, b.Char(r))
	}
	return b.Any(cs...)
}

// String returns a Sequence of the runes of str.
func (b *Builder) String(str string) tree.Entity {
	var cs []tree.Entity
	for _, r := range str {
		cs = append(cs, b.Char(r))
	}
	return b.Seq(cs...)
}

// Seq returns a Sequence of children.
func (b *Builder) Seq(children ...tree.Entity) tree.Entity { return b.node(Sequence{}, children...) }

// Any returns an Alternation of children.
func (b *Builder) Any(children ...tree.Entity) tree.Entity {
	return b.node(Alternation{}, children...)
}

// Success returns a node that always matches the empty string.
func (b *Builder) Success() tree.Entity { return b.Seq() }

// Option matches the sequence of children or the empty string.
func (b *Builder) Option(children ...tree.Entity) tree.Entity {
	return b.Any(b.Seq(children...), b.Success())
}

// Loop matches the sequence of children zero or more times.
func (b *Builder) Loop(children ...tree.Entity) tree.Entity {
	loop := b.Any()
	b.s.Adopt(loop, b.Seq(b.Seq(children...), b.Ref(loop)), b.Success())
	return loop
}

// Ref returns a Reference to target.
// The zero target is allowed, to be set later with Resolve.
func (b *Builder) Ref(target tree.Entity) tree.Entity {
	return b.node(Reference{Target: target})
}

// Resolve sets the target of the Reference ref.
// It returns false if ref is not a Reference.
func (b *Builder) Resolve(ref, target tree.Entity) bool {
	if _, ok := tree.Get[Reference](b.s, ref); !ok {
		return false
	}
	b.s.Set(ref, Reference{Target: target})
	return true
}

// Declare returns an empty Alternation to be given its alternatives by Define.
func (b *Builder) Declare() tree.Entity { return b.Any() }

// Define adds alternatives to a declared rule.
func (b *Builder) Define(rule tree.Entity, alternatives ...tree.Entity) tree.Entity {
	b.s.Adopt(rule, alternatives...)
	return rule
}

// Spawn returns a Spawn of the sequence of children
// that creates nodes of kind k.
func (b *Builder) Spawn(k kind.Kind, children ...tree.Entity) tree.Entity {
	return b.node(Spawn{Output: k}, b.Seq(children...))
}

// Postfix returns an operator that spawns a node of kind k
// if prec is higher than the context precedence.
// right is the sequence matched after the left operand.
func (b *Builder) Postfix(k kind.Kind, prec float64, assoc Associativity, right ...tree.Entity) tree.Entity {
	return b.Spawn(k, b.node(Postfix{Precedence: prec, Assoc: assoc}, b.Seq(right...)))
}

// Precedence returns a Precedence of prefix and postfix.
func (b *Builder) Precedence(prefix, postfix tree.Entity) tree.Entity {
	return b.node(Precedence{}, prefix, postfix)
}

// Group returns a Group of the sequence of children.
func (b *Builder) Group(children ...tree.Entity) tree.Entity {
	return b.node(Group{}, b.Seq(children...))
}

// And matches the empty string if the sequence of children would match.
func (b *Builder) And(children ...tree.Entity) tree.Entity {
	return b.node(Predicate{}, b.Seq(children...))
}

// Not matches the empty string if the sequence of children would not match.
func (b *Builder) Not(children ...tree.Entity) tree.Entity {
	return b.node(Predicate{Negate: true}, b.Seq(children...))
}

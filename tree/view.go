// Copyright © 2020 The Pea Authors under an MIT-style license.

package tree

import (
	"fmt"

	"github.com/eaburns/forest/kind"
)

// A View is a read-only handle on an entity that has Data.
// Views are cheap values;
// they do not own the entity and may be rebuilt at any time.
//
// The navigation methods take optional kinds.
// With no kinds, they consider every entity that has Data.
// Otherwise they consider only entities whose kind
// is or belongs to one of the given kinds.
// Entities without Data are always skipped.
type View struct {
	store  *Store
	entity Entity
	data   Data
}

// ViewOf returns a View of e,
// or false if e is dead, has no Data, or does not match kinds.
func ViewOf(s *Store, e Entity, kinds ...kind.Kind) (View, bool) {
	d, ok := Get[Data](s, e)
	if !ok || !kind.IsAny(d.Kind(), kinds...) {
		return View{}, false
	}
	return View{store: s, entity: e, data: d}, true
}

// IsZero returns whether v is the zero View.
func (v View) IsZero() bool { return v.store == nil }

// Store returns the store of v.
func (v View) Store() *Store { return v.store }

// Entity returns the entity of v.
func (v View) Entity() Entity { return v.entity }

// Data returns the data of v, as it was when v was made.
func (v View) Data() Data { return v.data }

// Kind returns the kind of v's data.
func (v View) Kind() kind.Kind {
	if v.data == nil {
		return kind.Invalid
	}
	return v.data.Kind()
}

// Is returns whether v's kind is or belongs to any of kinds.
func (v View) Is(kinds ...kind.Kind) bool { return kind.IsAny(v.Kind(), kinds...) }

func (v View) String() string { return fmt.Sprintf("%s: %s", v.entity, v.Kind()) }

func (v View) views(es []Entity, kinds []kind.Kind) []View {
	var vs []View
	for _, e := range es {
		if w, ok := ViewOf(v.store, e, kinds...); ok {
			vs = append(vs, w)
		}
	}
	return vs
}

func first(vs []View) (View, bool) {
	if len(vs) == 0 {
		return View{}, false
	}
	return vs[0], true
}

// Parent returns the parent of v if it matches kinds.
func (v View) Parent(kinds ...kind.Kind) (View, bool) {
	return ViewOf(v.store, v.store.Parent(v.entity), kinds...)
}

// Children returns the children of v that match kinds, in order.
func (v View) Children(kinds ...kind.Kind) []View {
	return v.views(v.store.Children(v.entity), kinds)
}

// Child returns the first child of v that matches kinds.
func (v View) Child(kinds ...kind.Kind) (View, bool) {
	return first(v.Children(kinds...))
}

// Ancestors returns the ancestors of v that match kinds, nearest first.
func (v View) Ancestors(kinds ...kind.Kind) []View {
	return v.views(v.store.Ancestors(v.entity), kinds)
}

// Ancestor returns the nearest ancestor of v that matches kinds.
func (v View) Ancestor(kinds ...kind.Kind) (View, bool) {
	return first(v.Ancestors(kinds...))
}

// Descendants returns the descendants of v that match kinds in the given order.
func (v View) Descendants(from From, kinds ...kind.Kind) []View {
	return v.views(v.store.Descendants(v.entity, from), kinds)
}

// Descendant returns the first descendant of v in the given order that matches kinds.
func (v View) Descendant(from From, kinds ...kind.Kind) (View, bool) {
	return first(v.Descendants(from, kinds...))
}

// Root returns the farthest ancestor of v that has Data,
// following parents only while they have Data.
func (v View) Root() View {
	for {
		p, ok := v.Parent()
		if !ok {
			return v
		}
		v = p
	}
}

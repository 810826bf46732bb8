// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package tree is an arena of entities with typed components
// and ordered parent/children edges.
//
// Grammars and ASTs live in the same Store.
// An entity has no data of its own;
// data is attached as components, at most one per component type.
// Each entity has at most one parent and an ordered list of children.
//
// The Store does not guard against cycles:
// callers must never adopt an ancestor under one of its descendants.
// A Store is not safe for concurrent use.
package tree

import (
	"fmt"
	"reflect"

	"github.com/eaburns/forest/kind"
)

// An Entity is a handle to a node in a Store.
// The zero Entity refers to no node.
type Entity struct {
	index uint32
	gen   uint32
}

// IsZero returns whether e is the zero Entity.
func (e Entity) IsZero() bool { return e.gen == 0 }

func (e Entity) String() string {
	if e.IsZero() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", e.index, e.gen)
}

// Data is the component that gives an entity its kind.
type Data interface {
	Kind() kind.Kind
}

// From is a traversal order for descendants.
type From int

const (
	// FromTop visits a node before its children.
	FromTop From = iota
	// FromBottom visits a node after its children.
	FromBottom
)

type slot struct {
	gen      uint32
	alive    bool
	parent   Entity
	children []Entity
	comps    []interface{}
}

// A Store owns entities, their components, and their family edges.
type Store struct {
	slots []slot
	free  []uint32
	n     int
}

// New returns a new, empty Store.
func New() *Store { return &Store{} }

// Len returns the number of live entities.
func (s *Store) Len() int { return s.n }

// Create returns a new entity with no components, parent, or children.
func (s *Store) Create() Entity {
	s.n++
	if n := len(s.free); n > 0 {
		i := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[i]
		sl.alive = true
		return Entity{index: i, gen: sl.gen}
	}
	s.slots = append(s.slots, slot{gen: 1, alive: true})
	return Entity{index: uint32(len(s.slots) - 1), gen: 1}
}

// Alive returns whether e refers to a live entity of s.
func (s *Store) Alive(e Entity) bool {
	return s.slot(e) != nil
}

func (s *Store) slot(e Entity) *slot {
	if e.IsZero() || int(e.index) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[e.index]
	if !sl.alive || sl.gen != e.gen {
		return nil
	}
	return sl
}

// Destroy destroys e.
// e is removed from its parent's children,
// and its former children become roots; they are not destroyed.
// Destroying a dead entity is a no-op.
func (s *Store) Destroy(e Entity) {
	sl := s.slot(e)
	if sl == nil {
		return
	}
	s.Reject(e)
	for _, c := range sl.children {
		if csl := s.slot(c); csl != nil {
			csl.parent = Entity{}
		}
	}
	sl.children = nil
	sl.comps = nil
	sl.alive = false
	sl.gen++
	if sl.gen == 0 {
		// Never hand out the zero generation.
		sl.gen = 1
	}
	s.free = append(s.free, e.index)
	s.n--
}

// DestroyTree destroys e and all of its descendants.
func (s *Store) DestroyTree(e Entity) {
	if !s.Alive(e) {
		return
	}
	for _, d := range s.Descendants(e, FromBottom) {
		s.Destroy(d)
	}
	s.Destroy(e)
}

// Clear destroys every entity.
func (s *Store) Clear() {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.alive {
			continue
		}
		s.Destroy(Entity{index: uint32(i), gen: sl.gen})
	}
}

// Set attaches the component c to e,
// replacing any component of the same dynamic type.
// Setting a component on a dead entity is a no-op.
func (s *Store) Set(e Entity, c interface{}) {
	sl := s.slot(e)
	if sl == nil || c == nil {
		return
	}
	t := reflect.TypeOf(c)
	for i, d := range sl.comps {
		if reflect.TypeOf(d) == t {
			sl.comps[i] = c
			return
		}
	}
	sl.comps = append(sl.comps, c)
}

// Components returns all components of e.
func (s *Store) Components(e Entity) []interface{} {
	sl := s.slot(e)
	if sl == nil {
		return nil
	}
	return append([]interface{}(nil), sl.comps...)
}

// Get returns the first component of e that is a C.
// C may be an interface type; for example Get[Data] returns e's data.
func Get[C any](s *Store, e Entity) (C, bool) {
	if sl := s.slot(e); sl != nil {
		for _, d := range sl.comps {
			if c, ok := d.(C); ok {
				return c, true
			}
		}
	}
	var zero C
	return zero, false
}

// Has returns whether e has a component that is a C.
func Has[C any](s *Store, e Entity) bool {
	_, ok := Get[C](s, e)
	return ok
}

// Remove removes every component of e that is a C.
// It returns whether any component was removed.
func Remove[C any](s *Store, e Entity) bool {
	sl := s.slot(e)
	if sl == nil {
		return false
	}
	var i int
	for _, d := range sl.comps {
		if _, ok := d.(C); ok {
			continue
		}
		sl.comps[i] = d
		i++
	}
	removed := i < len(sl.comps)
	sl.comps = sl.comps[:i]
	return removed
}

// Parent returns the parent of e, or the zero Entity if e is a root.
func (s *Store) Parent(e Entity) Entity {
	if sl := s.slot(e); sl != nil {
		return sl.parent
	}
	return Entity{}
}

// Children returns a copy of the ordered children of e.
func (s *Store) Children(e Entity) []Entity {
	if sl := s.slot(e); sl != nil {
		return append([]Entity(nil), sl.children...)
	}
	return nil
}

// NumChildren returns the number of children of e.
func (s *Store) NumChildren(e Entity) int {
	if sl := s.slot(e); sl != nil {
		return len(sl.children)
	}
	return 0
}

// Index returns the position of e among its parent's children,
// or -1 if e is a root.
func (s *Store) Index(e Entity) int {
	p := s.slot(s.Parent(e))
	if p == nil {
		return -1
	}
	for i, c := range p.children {
		if c == e {
			return i
		}
	}
	return -1
}

// Adopt appends children to the children of parent.
// Each child is first removed from its previous parent.
func (s *Store) Adopt(parent Entity, children ...Entity) {
	for _, c := range children {
		s.AdoptAt(parent, -1, c)
	}
}

// AdoptAt inserts child among the children of parent at index i.
// The child is first removed from its previous parent;
// i is interpreted after that removal.
// An i that is negative or past the end appends.
func (s *Store) AdoptAt(parent Entity, i int, child Entity) {
	p, c := s.slot(parent), s.slot(child)
	if p == nil || c == nil || parent == child {
		return
	}
	s.Reject(child)
	if i < 0 || i > len(p.children) {
		i = len(p.children)
	}
	p.children = append(p.children, Entity{})
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = child
	c.parent = parent
}

// Reject removes e from its parent's children, making e a root.
func (s *Store) Reject(e Entity) {
	sl := s.slot(e)
	if sl == nil {
		return
	}
	if p := s.slot(sl.parent); p != nil {
		for i, c := range p.children {
			if c == e {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	sl.parent = Entity{}
}

// Replace puts with in the place of e among e's parent's children,
// and makes e a root.
// with is first removed from its own parent,
// so with may be a descendant of e.
// If e is a root, with simply becomes a root.
func (s *Store) Replace(e, with Entity) {
	if e == with || !s.Alive(e) || !s.Alive(with) {
		return
	}
	s.Reject(with)
	parent := s.Parent(e)
	p := s.slot(parent)
	if p == nil {
		return
	}
	i := s.Index(e)
	p.children[i] = with
	s.slot(with).parent = parent
	s.slot(e).parent = Entity{}
}

// Ancestors returns the ancestors of e, nearest first.
func (s *Store) Ancestors(e Entity) []Entity {
	var as []Entity
	for p := s.Parent(e); !p.IsZero(); p = s.Parent(p) {
		as = append(as, p)
	}
	return as
}

// Root returns the farthest ancestor of e, or e itself if it is a root.
func (s *Store) Root(e Entity) Entity {
	for p := s.Parent(e); !p.IsZero(); p = s.Parent(p) {
		e = p
	}
	return e
}

// Descendants returns the descendants of e, not including e,
// in depth-first order.
// FromTop lists a node before its children;
// FromBottom lists a node after its children.
func (s *Store) Descendants(e Entity, from From) []Entity {
	var ds []Entity
	var walk func(Entity)
	walk = func(e Entity) {
		sl := s.slot(e)
		if sl == nil {
			return
		}
		for _, c := range sl.children {
			if from == FromTop {
				ds = append(ds, c)
			}
			walk(c)
			if from == FromBottom {
				ds = append(ds, c)
			}
		}
	}
	walk(e)
	return ds
}

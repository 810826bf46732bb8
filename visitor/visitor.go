// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package visitor dispatches nodes to handlers registered by kind.
//
// A handler may be registered for a concrete kind or for a category.
// Dispatch uses the handler of the node's exact kind if there is one,
// and otherwise the handler of the nearest category of the kind
// (see kind.Lineage).
// The same mechanism drives the parser (grammar kinds),
// the interpreter and the source generator (AST kinds).
package visitor

import (
	"fmt"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// A Func handles one node.
type Func[In, Out any] func(n tree.View, in In) (Out, error)

// NoHandlerError is returned when no handler is registered
// for a kind or any of its categories.
type NoHandlerError struct {
	Kind kind.Kind
}

func (err *NoHandlerError) Error() string {
	return fmt.Sprintf("no handler for kind %s", err.Kind)
}

// NoDataError is returned when visiting an entity that has no Data.
type NoDataError struct {
	Entity tree.Entity
}

func (err *NoDataError) Error() string {
	return fmt.Sprintf("entity %s has no data", err.Entity)
}

// A Visitor is a table of handlers keyed by kind.
type Visitor[In, Out any] struct {
	store *tree.Store
	funcs map[kind.Kind]Func[In, Out]
}

// New returns a new Visitor with no handlers over the nodes of s.
func New[In, Out any](s *tree.Store) *Visitor[In, Out] {
	return &Visitor[In, Out]{store: s, funcs: make(map[kind.Kind]Func[In, Out])}
}

// Store returns the store whose nodes v visits.
func (v *Visitor[In, Out]) Store() *tree.Store { return v.store }

// Add registers f as the handler of k, replacing any previous one.
// It returns whether there was no previous handler.
func (v *Visitor[In, Out]) Add(k kind.Kind, f Func[In, Out]) bool {
	_, ok := v.funcs[k]
	v.funcs[k] = f
	return !ok
}

// Remove removes the handler of k, and returns whether there was one.
func (v *Visitor[In, Out]) Remove(k kind.Kind) bool {
	_, ok := v.funcs[k]
	delete(v.funcs, k)
	return ok
}

// Clear removes all handlers.
func (v *Visitor[In, Out]) Clear() {
	v.funcs = make(map[kind.Kind]Func[In, Out])
}

// Lookup returns the handler that serves k:
// the handler of k itself, else that of its nearest category.
func (v *Visitor[In, Out]) Lookup(k kind.Kind) (Func[In, Out], bool) {
	if f, ok := v.funcs[k]; ok {
		return f, true
	}
	for _, c := range kind.Lineage(k) {
		if f, ok := v.funcs[c]; ok {
			return f, true
		}
	}
	return nil, false
}

// Visit dispatches the entity e.
func (v *Visitor[In, Out]) Visit(e tree.Entity, in In) (Out, error) {
	n, ok := tree.ViewOf(v.store, e)
	if !ok {
		var zero Out
		return zero, &NoDataError{Entity: e}
	}
	return v.VisitView(n, in)
}

// VisitView dispatches the node n.
func (v *Visitor[In, Out]) VisitView(n tree.View, in In) (Out, error) {
	f, ok := v.Lookup(n.Kind())
	if !ok {
		var zero Out
		return zero, &NoHandlerError{Kind: n.Kind()}
	}
	return f(n, in)
}

// Copyright © 2020 The Pea Authors under an MIT-style license.

package interp

import (
	"fmt"
	"sort"
	"strings"
)

// A Symbol is a named value.
type Symbol struct {
	Name  string
	Value interface{}
	// Members is the scope in which an access through the symbol
	// (the right side of sym.x) is evaluated.
	Members *Scope
}

func (sym *Symbol) String() string { return fmt.Sprintf("{%s: %s}", sym.Name, Format(sym.Value)) }

// A Scope maps names to symbols.
// Names not found in a scope are looked up in its parent.
type Scope struct {
	Parent  *Scope
	symbols []*Symbol
	byName  map[string]*Symbol
}

// NewScope returns a new, empty scope with the given parent, which may be nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, byName: make(map[string]*Symbol)}
}

// Declare declares a new symbol in the scope,
// shadowing any symbol of the same name.
// If members is nil, the symbol gets a new, empty member scope.
func (s *Scope) Declare(name string, members *Scope, value interface{}) *Symbol {
	if members == nil {
		members = NewScope(nil)
	}
	sym := &Symbol{Name: name, Value: value, Members: members}
	s.symbols = append(s.symbols, sym)
	s.byName[name] = sym
	return sym
}

// Lookup returns the symbol of the name declared in this scope, not its parents.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// Find returns the symbol of the name in the scope or its nearest ancestor.
func (s *Scope) Find(name string) (*Symbol, error) {
	for sc := s; sc != nil; sc = sc.Parent {
		if sym, ok := sc.byName[name]; ok {
			return sym, nil
		}
	}
	return nil, &NotFoundError{Name: name}
}

// Symbols returns the symbols declared in this scope, in declaration order.
// A shadowed symbol is listed once for each declaration.
func (s *Scope) Symbols() []*Symbol { return append([]*Symbol(nil), s.symbols...) }

// Root returns the outermost ancestor of the scope.
func (s *Scope) Root() *Scope {
	for s.Parent != nil {
		s = s.Parent
	}
	return s
}

func (s *Scope) String() string {
	var names []string
	for name, sym := range s.byName {
		names = append(names, name+"="+Format(sym.Value))
	}
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}

// NotFoundError is returned when a name is not declared.
type NotFoundError struct {
	Name string
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("failed to find symbol named %q", err.Name)
}

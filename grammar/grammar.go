// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package grammar defines grammars as data.
//
// A grammar is a tree of combinator nodes in a tree.Store,
// the same store that holds the ASTs parsed with it.
// The combinators are interpreted by package parse.
package grammar

import (
	"fmt"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// Character matches a single rune.
type Character struct {
	Value rune
}

func (Character) Kind() kind.Kind { return kind.Character }

func (c Character) String() string { return fmt.Sprintf("%q", c.Value) }

// Sequence matches each of its children in order.
// A Sequence with no children always succeeds without consuming input.
type Sequence struct{}

func (Sequence) Kind() kind.Kind { return kind.Sequence }

// Alternation matches the first of its children that matches,
// trying them in order.
// An Alternation with no children always fails.
type Alternation struct{}

func (Alternation) Kind() kind.Kind { return kind.Alternation }

// Reference matches its Target.
// Target may be set after the Reference is built,
// which is how rules refer to themselves or to rules built later.
type Reference struct {
	Target tree.Entity
}

func (Reference) Kind() kind.Kind { return kind.Reference }

// Spawn matches its only child,
// creating an AST node of kind Output that holds the nodes spawned by the child.
type Spawn struct {
	Output kind.Kind
}

func (Spawn) Kind() kind.Kind { return kind.Spawn }

// Associativity is the associativity of a Postfix operator.
type Associativity int

const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Postfix matches its only child if Precedence
// is greater than the precedence of the enclosing context.
// The child is matched with the context precedence raised to Precedence,
// or just below it for right associative operators.
type Postfix struct {
	Precedence float64
	Assoc      Associativity
}

func (Postfix) Kind() kind.Kind { return kind.Postfix }

// Precedence has two children: a prefix and a postfix.
// It matches the prefix followed by zero or more postfixes,
// each postfix taking the result so far as its left operand.
type Precedence struct{}

func (Precedence) Kind() kind.Kind { return kind.Precedence }

// Group matches its only child with the context precedence reset,
// as within brackets.
type Group struct{}

func (Group) Kind() kind.Kind { return kind.Group }

// Predicate matches the empty string if its only child matches,
// or, if Negate is set, if its child does not match.
// It never consumes input or spawns nodes.
type Predicate struct {
	Negate bool
}

func (Predicate) Kind() kind.Kind { return kind.Predicate }

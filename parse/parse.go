// Copyright © 2020 The Pea Authors under an MIT-style license.

// Package parse interprets grammars built with package grammar.
//
// Parsing is a visitor over grammar nodes.
// Each handler takes the State before the node
// and returns the State after it, or an error if the node does not match.
// Spawn nodes create AST nodes as they match,
// adopting them under the Current node of the State.
package parse

import (
	"fmt"
	"strconv"

	"github.com/eaburns/forest/grammar"
	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/loc"
	"github.com/eaburns/forest/node"
	"github.com/eaburns/forest/tree"
	"github.com/eaburns/forest/visitor"
	"github.com/eaburns/peggy/peg"
)

const (
	// prefixCeiling is the precedence under which the prefix of a Precedence is parsed.
	// It is higher than any binary operator,
	// so that only tightly binding postfixes apply to a prefix operand.
	prefixCeiling = 100

	// rightBias is subtracted from the precedence of right associative operators.
	rightBias = 0.0001
)

// A Parser interprets grammar nodes.
type Parser struct {
	store *tree.Store
	v     *visitor.Visitor[State, State]

	// farthest is the greatest input offset of a mismatch,
	// and wants are what was expected there.
	farthest int
	wants    []string
}

// New returns a new Parser over grammars and ASTs in s.
func New(s *tree.Store) *Parser {
	p := &Parser{store: s, v: visitor.New[State, State](s), farthest: -1}
	p.v.Add(kind.Character, p.character)
	p.v.Add(kind.Sequence, p.sequence)
	p.v.Add(kind.Alternation, p.alternation)
	p.v.Add(kind.Reference, p.reference)
	p.v.Add(kind.Spawn, p.spawn)
	p.v.Add(kind.Postfix, p.postfix)
	p.v.Add(kind.Precedence, p.precedence)
	p.v.Add(kind.Group, p.group)
	p.v.Add(kind.Predicate, p.predicate)
	return p
}

// Visitor returns the handlers of the parser.
// Handlers may be added to it to interpret new kinds of grammar nodes.
func (p *Parser) Visitor() *visitor.Visitor[State, State] { return p.v }

// Visit parses the grammar node g from st.
func (p *Parser) Visit(g tree.Entity, st State) (State, error) {
	return p.v.Visit(g, st)
}

// Fail returns the tree of the farthest mismatches so far.
func (p *Parser) Fail() *peg.Fail {
	fail := &peg.Fail{Name: "input"}
	for _, w := range p.wants {
		fail.Kids = append(fail.Kids, &peg.Fail{Pos: p.farthest, Want: w})
	}
	return fail
}

func (p *Parser) mismatch(pos int, want string) {
	switch {
	case pos > p.farthest:
		p.farthest = pos
		p.wants = []string{want}
	case pos == p.farthest:
		for _, w := range p.wants {
			if w == want {
				return
			}
		}
		p.wants = append(p.wants, want)
	}
}

// rollback destroys the children of e after the first mark.
func (p *Parser) rollback(e tree.Entity, mark int) {
	kids := p.store.Children(e)
	if mark >= len(kids) {
		return
	}
	for _, k := range kids[mark:] {
		p.store.DestroyTree(k)
	}
}

func malformed(n tree.View, st State, format string, args ...interface{}) error {
	return &Error{
		Code: Malformed,
		Pos:  st.Stream.Pos(),
		Msg:  fmt.Sprintf("%s: ", n) + fmt.Sprintf(format, args...),
	}
}

func (p *Parser) character(n tree.View, st State) (State, error) {
	c, ok := n.Data().(grammar.Character)
	if !ok {
		return st, malformed(n, st, "bad data %T", n.Data())
	}
	r, next, ok := st.Stream.Next()
	if ok && r == c.Value {
		return st.WithStream(next), nil
	}
	p.mismatch(st.Stream.Pos(), strconv.QuoteRune(c.Value))
	found := "end of input"
	if ok {
		found = strconv.QuoteRune(r)
	}
	return st, &Error{
		Code: Mismatch,
		Pos:  st.Stream.Pos(),
		Msg:  fmt.Sprintf("expected %s, found %s", strconv.QuoteRune(c.Value), found),
	}
}

// sequence matches each child in turn.
// Every child spawns under the Current node of the sequence,
// so sibling Spawns become sibling AST nodes.
func (p *Parser) sequence(n tree.View, st State) (State, error) {
	mark := p.store.NumChildren(st.Current)
	cur := st
	for _, kid := range n.Children(kind.Grammar) {
		next, err := p.v.VisitView(kid, cur.WithCurrent(st.Current))
		if err != nil {
			p.rollback(st.Current, mark)
			return st, err
		}
		cur = next
	}
	return cur, nil
}

// alternation returns the first matching child.
// The AST nodes spawned by a failed alternative are destroyed
// before trying the next one.
func (p *Parser) alternation(n tree.View, st State) (State, error) {
	mark := p.store.NumChildren(st.Current)
	for _, kid := range n.Children(kind.Grammar) {
		next, err := p.v.VisitView(kid, st)
		if err == nil {
			return next, nil
		}
		p.rollback(st.Current, mark)
		if !backtrack(err) {
			return st, err
		}
	}
	return st, &Error{
		Code: Exhausted,
		Pos:  st.Stream.Pos(),
		Msg:  fmt.Sprintf("%s: no alternative matched", n),
	}
}

func (p *Parser) reference(n tree.View, st State) (State, error) {
	r, ok := n.Data().(grammar.Reference)
	if !ok {
		return st, malformed(n, st, "bad data %T", n.Data())
	}
	if r.Target.IsZero() {
		return st, malformed(n, st, "unresolved reference")
	}
	return p.v.Visit(r.Target, st)
}

// spawn creates an AST node, adopted under the Current node,
// and matches its child with the new node as Current.
// If the child fails, the new node and everything under it is destroyed.
func (p *Parser) spawn(n tree.View, st State) (State, error) {
	sp, ok := n.Data().(grammar.Spawn)
	if !ok {
		return st, malformed(n, st, "bad data %T", n.Data())
	}
	kid, ok := n.Child(kind.Grammar)
	if !ok {
		return st, malformed(n, st, "spawn has no child")
	}
	e := p.store.Create()
	p.store.Set(e, node.Tag{K: sp.Output})
	p.store.Adopt(st.Current, e)
	next, err := p.v.VisitView(kid, st.WithCurrent(e))
	if err != nil {
		p.store.DestroyTree(e)
		return st, err
	}
	p.store.Set(e, node.Text(next.Stream.Since(st.Stream)))
	p.store.Set(e, loc.Range{st.Stream.Pos(), next.Stream.Pos()})
	return next.WithCurrent(e), nil
}

func (p *Parser) postfix(n tree.View, st State) (State, error) {
	pf, ok := n.Data().(grammar.Postfix)
	if !ok {
		return st, malformed(n, st, "bad data %T", n.Data())
	}
	if pf.Precedence <= st.Precedence {
		return st, &Error{
			Code: Rejected,
			Pos:  st.Stream.Pos(),
			Msg:  fmt.Sprintf("precedence %g is not greater than %g", pf.Precedence, st.Precedence),
		}
	}
	kid, ok := n.Child(kind.Grammar)
	if !ok {
		return st, malformed(n, st, "postfix has no child")
	}
	prec := pf.Precedence
	if pf.Assoc == grammar.Right {
		prec -= rightBias
	}
	return p.v.VisitView(kid, st.WithPrecedence(prec))
}

// precedence matches a prefix then loops matching postfixes.
// Each postfix spawns under the result so far;
// the spawned node takes the place of the result so far
// and adopts it as its first child.
func (p *Parser) precedence(n tree.View, st State) (State, error) {
	kids := n.Children(kind.Grammar)
	if len(kids) != 2 {
		return st, malformed(n, st, "precedence has %d children, want 2", len(kids))
	}
	prefix, postfix := kids[0], kids[1]
	cur, err := p.v.VisitView(prefix, st.WithPrecedence(prefixCeiling))
	if err != nil {
		return st, err
	}
	for {
		next, err := p.v.VisitView(postfix, cur.WithPrecedence(st.Precedence))
		if err != nil {
			if !backtrack(err) {
				return st, err
			}
			break
		}
		if next.Current != cur.Current && cur.Current != st.Current {
			p.store.Replace(cur.Current, next.Current)
			p.store.AdoptAt(next.Current, 0, cur.Current)
		}
		progress := next.Stream.Pos() > cur.Stream.Pos()
		cur = next
		if !progress {
			break
		}
	}
	return cur.WithPrecedence(st.Precedence), nil
}

func (p *Parser) group(n tree.View, st State) (State, error) {
	kid, ok := n.Child(kind.Grammar)
	if !ok {
		return st, malformed(n, st, "group has no child")
	}
	next, err := p.v.VisitView(kid, st.WithPrecedence(0))
	if err != nil {
		return st, err
	}
	return next.WithPrecedence(st.Precedence), nil
}

// predicate matches its child without consuming input or keeping spawned nodes.
// Mismatches within the child are not reported as wanted input.
func (p *Parser) predicate(n tree.View, st State) (State, error) {
	pr, ok := n.Data().(grammar.Predicate)
	if !ok {
		return st, malformed(n, st, "bad data %T", n.Data())
	}
	kid, ok := n.Child(kind.Grammar)
	if !ok {
		return st, malformed(n, st, "predicate has no child")
	}
	farthest, wants := p.farthest, p.wants
	mark := p.store.NumChildren(st.Current)
	_, err := p.v.VisitView(kid, st)
	p.rollback(st.Current, mark)
	p.farthest, p.wants = farthest, wants
	if err != nil && !backtrack(err) {
		return st, err
	}
	if matched := err == nil; matched == pr.Negate {
		return st, &Error{Code: Mismatch, Pos: st.Stream.Pos(), Msg: fmt.Sprintf("%s: predicate failed", n)}
	}
	return st, nil
}

// Parse parses text with the grammar g,
// adopting the parsed AST nodes under root.
// The whole text must match.
// A text that does not match returns a *SyntaxError,
// and root is left as it was.
func Parse(s *tree.Store, g, root tree.Entity, path, text string) error {
	p := New(s)
	mark := s.NumChildren(root)
	st, err := p.Visit(g, NewState(root, text))
	switch {
	case err != nil && !backtrack(err):
		p.rollback(root, mark)
		return err
	case err != nil:
		p.rollback(root, mark)
		if p.farthest < 0 {
			p.mismatch(errPos(err), "anything else")
		}
		return &SyntaxError{Path: path, Text: text, Fail: p.Fail()}
	case !st.Stream.Done():
		p.rollback(root, mark)
		p.mismatch(st.Stream.Pos(), "EOF")
		return &SyntaxError{Path: path, Text: text, Fail: p.Fail()}
	}
	return nil
}

func errPos(err error) int {
	if perr, ok := err.(*Error); ok {
		return perr.Pos
	}
	return 0
}

// Copyright © 2020 The Pea Authors under an MIT-style license.

package grammar

import (
	"errors"
	"fmt"

	"github.com/eaburns/forest/kind"
	"github.com/eaburns/forest/tree"
)

// Validate returns an error describing every malformed node
// reachable from root, following references.
// It returns nil if the grammar is well formed.
func Validate(s *tree.Store, root tree.Entity) error {
	var errs []error
	seen := make(map[tree.Entity]bool)
	work := []tree.Entity{root}
	for len(work) > 0 {
		e := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[e] {
			continue
		}
		seen[e] = true
		n, ok := tree.ViewOf(s, e, kind.Grammar)
		if !ok {
			errs = append(errs, fmt.Errorf("%s: not a grammar node", e))
			continue
		}
		if err := check(n); err != nil {
			errs = append(errs, err)
		}
		work = append(work, s.Children(e)...)
		if r, ok := n.Data().(Reference); ok && !r.Target.IsZero() {
			work = append(work, r.Target)
		}
	}
	return errors.Join(errs...)
}

func check(n tree.View) error {
	kids := n.Children(kind.Grammar)
	if len(kids) != len(n.Store().Children(n.Entity())) {
		return fmt.Errorf("%s: has a child that is not a grammar node", n)
	}
	switch d := n.Data().(type) {
	case Character:
		if len(kids) != 0 {
			return fmt.Errorf("%s: character has children", n)
		}
	case Reference:
		switch {
		case d.Target.IsZero():
			return fmt.Errorf("%s: unresolved reference", n)
		case !n.Store().Alive(d.Target):
			return fmt.Errorf("%s: reference to destroyed node %s", n, d.Target)
		}
	case Spawn:
		if d.Output.Category() || kind.Is(d.Output, kind.Grammar) || kind.Lineage(d.Output) == nil {
			return fmt.Errorf("%s: cannot spawn %s", n, d.Output)
		}
		if len(kids) != 1 {
			return fmt.Errorf("%s: spawn has %d children, want 1", n, len(kids))
		}
	case Postfix:
		if len(kids) != 1 {
			return fmt.Errorf("%s: postfix has %d children, want 1", n, len(kids))
		}
	case Group:
		if len(kids) != 1 {
			return fmt.Errorf("%s: group has %d children, want 1", n, len(kids))
		}
	case Predicate:
		if len(kids) != 1 {
			return fmt.Errorf("%s: predicate has %d children, want 1", n, len(kids))
		}
	case Precedence:
		if len(kids) != 2 {
			return fmt.Errorf("%s: precedence has %d children, want 2", n, len(kids))
		}
	}
	return nil
}

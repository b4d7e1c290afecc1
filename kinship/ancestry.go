package kinship

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lineage/person"
)

// Visitation colours for TopologicalOrder.
const (
	white = iota // unvisited
	gray         // on the recursion stack
	black        // finished
)

// TopologicalOrder returns every person ordered so that parents precede
// their children. Partner links carry no order. Starts are taken in
// ascending ID; returns ErrCycleDetected if some person is their own ancestor.
// Complexity: O(V+E) time, O(V) space.
func TopologicalOrder(g *Graph) ([]person.ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.peopleLocked()
	state := make(map[person.ID]int, len(ids))
	post := make([]person.ID, 0, len(ids))

	var visit func(id person.ID) error
	visit = func(id person.ID) error {
		state[id] = gray
		for _, c := range g.children[id] {
			switch state[c] {
			case gray:
				return fmt.Errorf("%w: %d→%d", ErrCycleDetected, id, c)
			case white:
				if err := visit(c); err != nil {
					return err
				}
			}
		}
		state[id] = black
		post = append(post, id)

		return nil
	}

	for _, id := range ids {
		if state[id] == white {
			if err := visit(id); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}

// IsAncestor reports whether descendant can be reached from ancestor by
// following parent→child edges. Nobody is their own ancestor in an acyclic
// graph, so IsAncestor(g, x, x) is false unless x sits on a cycle.
func IsAncestor(g *Graph, ancestor, descendant person.ID) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireLocked(ancestor, descendant); err != nil {
		return false, err
	}

	seen := make(map[person.ID]bool)
	stack := append([]person.ID(nil), g.children[ancestor]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == descendant {
			return true, nil
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		stack = append(stack, g.children[id]...)
	}

	return false, nil
}

// Ancestors returns every ancestor of id in ascending ID order.
func Ancestors(g *Graph, id person.ID) ([]person.ID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireLocked(id); err != nil {
		return nil, err
	}

	seen := make(map[person.ID]bool)
	stack := append([]person.ID(nil), g.parents[id]...)
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[p] {
			continue
		}
		seen[p] = true
		stack = append(stack, g.parents[p]...)
	}

	out := make([]person.ID, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

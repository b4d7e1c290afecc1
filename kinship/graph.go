package kinship

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lineage/person"
)

// AddPerson registers id. Adding an existing person is a no-op.
func (g *Graph) AddPerson(id person.ID) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.people[id] = struct{}{}

	return nil
}

// HasPerson reports whether id is registered.
func (g *Graph) HasPerson(id person.ID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.people[id]

	return ok
}

// Len returns the number of registered people.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.people)
}

// EdgeCount returns the number of parent→child edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// AddParentage records parent→child. Both must be registered.
// Repeating an existing edge is a no-op; a third distinct parent fails with
// ErrTooManyParents.
func (g *Graph) AddParentage(parent, child person.ID) error {
	if parent == child {
		return fmt.Errorf("%w: %d", ErrSelfRelation, parent)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireLocked(parent, child); err != nil {
		return err
	}
	ps := g.parents[child]
	for _, p := range ps {
		if p == parent {
			return nil
		}
	}
	if len(ps) >= maxParents {
		return fmt.Errorf("%w: child %d", ErrTooManyParents, child)
	}

	g.parents[child] = append(ps, parent)
	g.children[parent] = append(g.children[parent], child)
	g.edges++

	return nil
}

// Link records a symmetric partnership between a and b.
// Linking an existing pair again is a no-op.
func (g *Graph) Link(a, b person.ID) error {
	if a == b {
		return fmt.Errorf("%w: %d", ErrSelfRelation, a)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.requireLocked(a, b); err != nil {
		return err
	}
	pa, aok := g.partner[a]
	pb, bok := g.partner[b]
	if aok && bok && pa == b && pb == a {
		return nil
	}
	if aok || bok {
		return fmt.Errorf("%w: %d–%d", ErrAlreadyPartnered, a, b)
	}
	g.partner[a], g.partner[b] = b, a

	return nil
}

// Children returns a copy of id's children in insertion order.
func (g *Graph) Children(id person.ID) ([]person.ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireLocked(id); err != nil {
		return nil, err
	}

	return append([]person.ID(nil), g.children[id]...), nil
}

// Parents returns a copy of id's parents (zero, one or two).
func (g *Graph) Parents(id person.ID) ([]person.ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.requireLocked(id); err != nil {
		return nil, err
	}

	return append([]person.ID(nil), g.parents[id]...), nil
}

// Partner returns id's partner and whether one exists.
func (g *Graph) Partner(id person.ID) (person.ID, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.partner[id]

	return p, ok
}

// People returns all registered IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) People() []person.ID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.peopleLocked()
}

func (g *Graph) peopleLocked() []person.ID {
	out := make([]person.ID, 0, len(g.people))
	for id := range g.people {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// requireLocked checks every id is registered. Caller holds mu.
func (g *Graph) requireLocked(ids ...person.ID) error {
	for _, id := range ids {
		if _, ok := g.people[id]; !ok {
			return fmt.Errorf("%w: %d", ErrPersonNotFound, id)
		}
	}

	return nil
}

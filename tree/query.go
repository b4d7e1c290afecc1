package tree

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lineage/kinship"
	"github.com/katalvlaran/lineage/person"
)

// TotalCount reports the number of people in the tree, founders and spouses
// included.
func (t *Tree) TotalCount() int {
	return len(t.people)
}

// CountByDecade maps each birth decade label (e.g. "1980s") to the number of
// people born in it. Decades with no births are absent.
func (t *Tree) CountByDecade() map[string]int {
	return counts(t.byBirth)
}

// AliveCountByDecade maps each decade label to the number of people alive at
// some point in it, birth and death decades included. It is empty until
// Generate has run.
func (t *Tree) AliveCountByDecade() map[string]int {
	return counts(t.alive)
}

func counts(buckets map[string][]*person.Person) map[string]int {
	out := make(map[string]int, len(buckets))
	for d, ps := range buckets {
		out[d] = len(ps)
	}

	return out
}

// DuplicateNames returns every full name ("First Last") held by more than one
// person, sorted.
func (t *Tree) DuplicateNames() []string {
	seen := make(map[string]int, len(t.people))
	for _, p := range t.people {
		seen[p.FullName()]++
	}
	var dup []string
	for name, n := range seen {
		if n > 1 {
			dup = append(dup, name)
		}
	}
	sort.Strings(dup)

	return dup
}

// Generations counts people per generation, walking parent→child and
// partner links from the founders. Founders and anyone partnered to a
// generation-g person are generation g.
func (t *Tree) Generations() (map[int]int, error) {
	res, err := kinship.Generations(t.kin, []person.ID{t.founders[0].ID, t.founders[1].ID})
	if err != nil {
		return nil, err
	}

	return res.Counts(), nil
}

// IsAncestor reports whether ancestor is a parent, grandparent, ... of
// descendant. Both must belong to this tree.
func (t *Tree) IsAncestor(ancestor, descendant *person.Person) (bool, error) {
	for _, p := range []*person.Person{ancestor, descendant} {
		if p == nil {
			return false, person.ErrNilPerson
		}
		if !t.owns(p) {
			return false, fmt.Errorf("%w: %d %s", ErrForeignPerson, p.ID, p.FullName())
		}
	}

	return kinship.IsAncestor(t.kin, ancestor.ID, descendant.ID)
}

// Ancestors returns every parent, grandparent, ... of p in ID order, which
// is creation order. Spouses who married in and founders have none.
func (t *Tree) Ancestors(p *person.Person) ([]*person.Person, error) {
	if p == nil {
		return nil, person.ErrNilPerson
	}
	if !t.owns(p) {
		return nil, fmt.Errorf("%w: %d %s", ErrForeignPerson, p.ID, p.FullName())
	}
	ids, err := kinship.Ancestors(t.kin, p.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*person.Person, len(ids))
	for i, id := range ids {
		out[i] = t.people[id]
	}

	return out, nil
}

// Verify checks the structural invariants of the tree and returns the first
// violation wrapped in ErrInvariantViolated:
//
//   - IDs are dense creation indices, each registered in the graph;
//   - every death year is after the birth year, every birth ≤ horizon;
//   - partnership is symmetric and both sides agree with the graph;
//   - children are born after each parent and at least FertileStart years
//     after the elder one, and are listed by every parent;
//   - a child's two parents are each other's partners;
//   - the parentage graph is acyclic.
func (t *Tree) Verify() error {
	// Every person created is in the population
	if next := t.factory.NextID(); int(next) != len(t.people) {
		return violation("%d people but next id is %d", len(t.people), next)
	}
	for i, p := range t.people {
		if int(p.ID) != i {
			return violation("id %d at index %d", p.ID, i)
		}
		if !t.kin.HasPerson(p.ID) {
			return violation("%d missing from the kinship graph", p.ID)
		}
		if p.DeathYear <= p.BirthYear {
			return violation("%d %s dies %d, born %d", p.ID, p.FullName(), p.DeathYear, p.BirthYear)
		}
		if p.BirthYear > t.opts.Horizon {
			return violation("%d born %d past horizon %d", p.ID, p.BirthYear, t.opts.Horizon)
		}
		if err := t.verifyPartner(p); err != nil {
			return err
		}
		if err := t.verifyParents(p); err != nil {
			return err
		}
	}
	// No one is their own ancestor
	if _, err := kinship.TopologicalOrder(t.kin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvariantViolated, err)
	}

	return nil
}

func (t *Tree) verifyPartner(p *person.Person) error {
	q := p.Partner()
	id, linked := t.kin.Partner(p.ID)
	if q == nil {
		if linked {
			return violation("%d unpartnered but linked to %d", p.ID, id)
		}
		return nil
	}
	if q.Partner() != p {
		return violation("partnership %d→%d not symmetric", p.ID, q.ID)
	}
	if !linked || id != q.ID {
		return violation("partner of %d is %d, graph disagrees", p.ID, q.ID)
	}

	return nil
}

func (t *Tree) verifyParents(p *person.Person) error {
	parents, ok := p.Parents()
	if !ok {
		return nil
	}
	if parents.First == nil {
		return violation("%d has parents without a first parent", p.ID)
	}
	elder := parents.First.BirthYear
	for _, parent := range []*person.Person{parents.First, parents.Second} {
		if parent == nil {
			continue
		}
		if p.BirthYear <= parent.BirthYear {
			return violation("%d born %d, parent %d born %d", p.ID, p.BirthYear, parent.ID, parent.BirthYear)
		}
		if parent.BirthYear < elder {
			elder = parent.BirthYear
		}
		if !containsPerson(parent.Children(), p) {
			return violation("parent %d does not list child %d", parent.ID, p.ID)
		}
	}
	if p.BirthYear < elder+FertileStart {
		return violation("%d born %d, elder parent born %d", p.ID, p.BirthYear, elder)
	}
	if parents.Second != nil && parents.First.Partner() != parents.Second {
		return violation("parents %d and %d of %d are not partners", parents.First.ID, parents.Second.ID, p.ID)
	}

	return nil
}

func containsPerson(ps []*person.Person, p *person.Person) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}

	return false
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolated}, args...)...)
}

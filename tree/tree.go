package tree

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/factory"
	"github.com/katalvlaran/lineage/kinship"
	"github.com/katalvlaran/lineage/person"
)

// Tree owns the population, the per-decade indices and the kinship graph
// mirroring every relation.
type Tree struct {
	opts    Options
	tables  *demography.Tables
	factory *factory.Factory
	kin     *kinship.Graph

	people    []*person.Person
	founders  [2]*person.Person
	surnames  []string
	byBirth   map[string][]*person.Person // decade label → people born in it
	alive     map[string][]*person.Person // decade label → people alive in it
	generated bool
}

// New validates tables over [FounderYear, horizon], creates the founders and
// returns a Tree ready for Generate.
//
// Returns ErrNilTables, ErrOptionViolation, or the demography error for the
// first missing or invalid row.
func New(tables *demography.Tables, opts ...Option) (*Tree, error) {
	if tables == nil {
		return nil, ErrNilTables
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Rand == nil {
		WithSeed(time.Now().UnixNano())(&o)
	}
	if err := tables.Validate(FounderYear, o.Horizon); err != nil {
		return nil, fmt.Errorf("tree: tables: %w", err)
	}

	f, err := factory.New(tables, o.Rand, factory.WithHorizon(o.Horizon))
	if err != nil {
		return nil, err
	}
	t := &Tree{
		opts:    o,
		tables:  tables,
		factory: f,
		kin:     kinship.NewGraph(),
		byBirth: make(map[string][]*person.Person),
		alive:   make(map[string][]*person.Person),
	}
	if err = t.plantFounders(); err != nil {
		return nil, err
	}

	return t, nil
}

// plantFounders creates both founders through the factory, renames them to
// the configured identities and partners them.
func (t *Tree) plantFounders() error {
	for i, founder := range t.opts.Founders {
		p, err := t.factory.CreatePerson(FounderYear, founder.Gender, false, nil, nil)
		if err != nil {
			return fmt.Errorf("tree: founder %s %s: %w", founder.FirstName, founder.LastName, err)
		}
		p.Rename(founder.FirstName, founder.LastName)
		if err = t.add(p); err != nil {
			return err
		}
		t.founders[i] = p
		t.surnames = append(t.surnames, founder.LastName)
	}
	a, b := t.founders[0], t.founders[1]
	if err := a.SetPartner(b); err != nil {
		return err
	}

	return t.kin.Link(a.ID, b.ID)
}

// add appends p to the population, its birth decade bucket and the graph.
func (t *Tree) add(p *person.Person) error {
	if int(p.ID) != len(t.people) {
		return fmt.Errorf("%w: id %d at index %d", ErrInvariantViolated, p.ID, len(t.people))
	}
	if err := t.kin.AddPerson(p.ID); err != nil {
		return err
	}
	t.people = append(t.people, p)
	d := demography.Decade(p.BirthYear)
	t.byBirth[d] = append(t.byBirth[d], p)

	return nil
}

// Seed reports the seed used for the random source. ok is false when the
// source was supplied through WithRand.
func (t *Tree) Seed() (seed int64, ok bool) {
	return t.opts.seed, t.opts.seeded
}

// Horizon reports the last admissible birth year.
func (t *Tree) Horizon() int {
	return t.opts.Horizon
}

// Generated reports whether Generate has run.
func (t *Tree) Generated() bool {
	return t.generated
}

// Founders returns the two founders in configuration order.
func (t *Tree) Founders() [2]*person.Person {
	return t.founders
}

// People returns every individual in creation order; index i holds ID i.
// The slice is a copy; the people are shared.
func (t *Tree) People() []*person.Person {
	out := make([]*person.Person, len(t.people))
	copy(out, t.people)

	return out
}

// Person returns the individual with the given ID.
func (t *Tree) Person(id person.ID) (*person.Person, bool) {
	if id < 0 || int(id) >= len(t.people) {
		return nil, false
	}

	return t.people[id], true
}

// Kinship exposes the relation graph. Callers must not mutate it.
func (t *Tree) Kinship() *kinship.Graph {
	return t.kin
}

// owns reports whether p is the member of this tree with p's ID.
func (t *Tree) owns(p *person.Person) bool {
	q, ok := t.Person(p.ID)

	return ok && q == p
}

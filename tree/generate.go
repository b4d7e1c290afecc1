package tree

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/person"
)

// queueItem is a person waiting for expansion with their generation.
type queueItem struct {
	p          *person.Person
	generation int
}

// grower carries the state of one Generate run.
type grower struct {
	t         *Tree
	queue     []queueItem
	processed map[person.ID]bool
	log       *slog.Logger
	depth     int
}

// Generate grows the tree from the founders until no admissible birth is
// left, then builds the alive-in-decade index.
//
// Generate may be called once; a second call returns ErrAlreadyGenerated.
// On error the tree is left partially grown and is still marked generated.
func (t *Tree) Generate() error {
	if t.generated {
		return ErrAlreadyGenerated
	}
	t.generated = true

	// Prepare grower
	start := time.Now()
	g := &grower{
		t:         t,
		processed: make(map[person.ID]bool),
		log:       t.opts.Logger.With("component", "tree"),
	}
	g.log.Info("generating family tree",
		"founders", []string{t.founders[0].FullName(), t.founders[1].FullName()},
		"horizon", t.opts.Horizon)

	// Seed queue with both founders
	for _, f := range t.founders {
		g.enqueue(f, 0)
	}
	if err := g.loop(); err != nil {
		g.log.Error("generation aborted", "people", len(t.people), "err", err)
		return err
	}
	// Index the living population once the queue is drained
	t.indexAlive()

	g.log.Info("family tree generated",
		"people", len(t.people),
		"generations", g.depth+1,
		"relations", t.kin.EdgeCount(),
		"elapsed", time.Since(start))

	return nil
}

// enqueue schedules p for expansion at the given generation.
func (g *grower) enqueue(p *person.Person, generation int) {
	g.queue = append(g.queue, queueItem{p: p, generation: generation})
}

// loop drains the FIFO queue.
func (g *grower) loop() error {
	for len(g.queue) > 0 {
		// Dequeue; a spouse expanded with their partner is skipped
		item := g.queue[0]
		g.queue = g.queue[1:]
		if g.processed[item.p.ID] {
			continue
		}
		if item.generation > g.depth {
			g.depth = item.generation
			g.log.Debug("entering generation", "generation", g.depth, "people", len(g.t.people), "queued", len(g.queue))
		}
		if err := g.expand(item); err != nil {
			return fmt.Errorf("tree: expanding %d (%s): %w", item.p.ID, item.p.FullName(), err)
		}
	}

	return nil
}

// expand gives item's person, and their partner, their children.
func (g *grower) expand(item queueItem) error {
	// Mark the couple processed
	p := item.p
	partner := p.Partner()
	g.processed[p.ID] = true
	if partner != nil {
		g.processed[partner.ID] = true
	}

	// Size the family from the person's birth decade
	n, err := g.t.CalculateNumChildren(p.BirthYear, partner != nil)
	if err != nil {
		return err
	}
	// The elder parent anchors the fertile window
	elder := p.BirthYear
	if partner != nil && partner.BirthYear < elder {
		elder = partner.BirthYear
	}

	for _, year := range g.t.DistributeBirthYears(elder, n) {
		// Births past the horizon are dropped
		if year > g.t.opts.Horizon {
			continue
		}
		if err = g.bear(p, partner, year, item.generation+1); err != nil {
			return err
		}
	}

	return nil
}

// bear creates one child of p and partner (which may be nil) born in year,
// possibly marries them off, and queues both.
func (g *grower) bear(p, partner *person.Person, year, generation int) error {
	// Create the child
	t := g.t
	gender, err := t.factory.AssignGender(year)
	if err != nil {
		return err
	}
	child, err := t.factory.CreatePerson(year, gender, true, t.surnames, &person.Parents{First: p, Second: partner})
	if err != nil {
		return err
	}
	if err = t.add(child); err != nil {
		return err
	}
	// Link to each parent, in memory and in the graph
	for _, parent := range []*person.Person{p, partner} {
		if parent == nil {
			continue
		}
		parent.AddChild(child)
		if err = t.kin.AddParentage(parent.ID, child.ID); err != nil {
			return err
		}
	}
	t.opts.OnBirth(child, generation)

	// Maybe marry the child off
	marries, err := t.factory.ShouldHavePartner(year)
	if err != nil {
		return err
	}
	var spouse *person.Person
	if marries {
		// spouses marry in: no parents, surname from the decade table
		if spouse, err = t.factory.CreatePartner(child, false, nil); err != nil {
			return err
		}
	}
	if spouse != nil {
		if err = t.add(spouse); err != nil {
			return err
		}
		if err = t.kin.Link(child.ID, spouse.ID); err != nil {
			return err
		}
	}

	// Queue both for their own expansion
	g.enqueue(child, generation)
	if spouse != nil {
		g.enqueue(spouse, generation)
	}

	return nil
}

// indexAlive buckets every person into each decade from their birth decade
// through their death decade inclusive.
func (t *Tree) indexAlive() {
	for _, p := range t.people {
		for _, d := range demography.DecadesBetween(p.BirthYear, p.DeathYear) {
			t.alive[d] = append(t.alive[d], p)
		}
	}
}

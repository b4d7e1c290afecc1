// Package person defines the individual record of a generated family tree.
//
// A Person is created once and afterwards only gains a partner link or
// children; it is never removed. Identity is the ID assigned at creation,
// so two people may share names and years and remain distinct.
package person

import "errors"

// Sentinel errors for relationship mutation.
var (
	// ErrAlreadyPartnered indicates one side of a link already has a partner.
	ErrAlreadyPartnered = errors.New("person: already partnered")

	// ErrSelfPartner indicates an attempt to partner someone with themself.
	ErrSelfPartner = errors.New("person: cannot partner with self")

	// ErrNilPerson indicates a nil *Person where one is required.
	ErrNilPerson = errors.New("person: nil person")
)

// Gender is a gender category drawn from the demographic tables.
type Gender string

// The categories present in the default tables.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ID is an opaque, stable identifier: the creation index of a person within
// its population.
type ID int

// Parents holds a child's parent pair. First is always set for a person with
// parents; Second is nil for a single parent.
type Parents struct {
	First  *Person
	Second *Person
}

// Person is one individual of the tree.
type Person struct {
	ID        ID
	BirthYear int
	DeathYear int
	FirstName string
	LastName  string
	Gender    Gender

	partner    *Person
	children   []*Person
	parents    Parents
	hasParents bool
}

// New builds an unattached person. A nil parents pointer (or one whose First
// slot is nil) means no parents.
func New(id ID, birthYear, deathYear int, first, last string, gender Gender, parents *Parents) *Person {
	p := &Person{
		ID:        id,
		BirthYear: birthYear,
		DeathYear: deathYear,
		FirstName: first,
		LastName:  last,
		Gender:    gender,
	}
	if parents != nil && parents.First != nil {
		p.parents = *parents
		p.hasParents = true
	}

	return p
}

// FullName returns "first last".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Rename overrides both names. Used for founders whose names are fixed.
func (p *Person) Rename(first, last string) {
	p.FirstName, p.LastName = first, last
}

// Partner returns the partner, or nil.
func (p *Person) Partner() *Person {
	return p.partner
}

// SetPartner links p and q symmetrically. A link, once made, is permanent:
// if either side is already partnered the call fails and nothing changes.
func (p *Person) SetPartner(q *Person) error {
	switch {
	case p == nil || q == nil:
		return ErrNilPerson
	case p == q:
		return ErrSelfPartner
	case p.partner != nil || q.partner != nil:
		return ErrAlreadyPartnered
	}
	p.partner, q.partner = q, p

	return nil
}

// AddChild appends c to p's children.
func (p *Person) AddChild(c *Person) {
	p.children = append(p.children, c)
}

// Children returns a copy of p's children in birth order of creation.
func (p *Person) Children() []*Person {
	out := make([]*Person, len(p.children))
	copy(out, p.children)

	return out
}

// Parents returns the parent pair and whether p has parents at all.
func (p *Person) Parents() (Parents, bool) {
	return p.parents, p.hasParents
}

// Lifespan is DeathYear - BirthYear.
func (p *Person) Lifespan() int {
	return p.DeathYear - p.BirthYear
}

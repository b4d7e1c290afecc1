package factory

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lineage/demography"
	"github.com/katalvlaran/lineage/person"
)

// Factory creates people from demographic tables and a random source.
// It is not safe for concurrent use.
type Factory struct {
	tables  *demography.Tables
	rng     *rand.Rand
	horizon int
	nextID  int
}

// New returns a Factory drawing from tables with rng.
func New(tables *demography.Tables, rng *rand.Rand, opts ...Option) (*Factory, error) {
	// Validate inputs
	if tables == nil {
		return nil, ErrNilTables
	}
	if rng == nil {
		return nil, ErrNeedRand
	}
	// Apply options
	f := &Factory{tables: tables, rng: rng, horizon: MaxYear}
	for _, opt := range opts {
		opt(f)
	}
	if f.horizon > MaxYear {
		return nil, fmt.Errorf("%w: horizon %d beyond %d", ErrOptionViolation, f.horizon, MaxYear)
	}

	return f, nil
}

// Horizon reports the last admissible birth year for partners.
func (f *Factory) Horizon() int {
	return f.horizon
}

// NextID reports the ID the next created person will receive.
func (f *Factory) NextID() person.ID {
	return person.ID(f.nextID)
}

// CreatePerson samples death year, first name and last name for a person born
// in birthYear and returns the new, unattached individual.
//
// Descendants take a surname uniformly from originalLastNames; everyone else
// draws from the decade's ranked surnames. parents may be nil.
func (f *Factory) CreatePerson(
	birthYear int,
	gender person.Gender,
	isDescendant bool,
	originalLastNames []string,
	parents *person.Parents,
) (*person.Person, error) {
	// Draw order is fixed so a seed replays the same people
	died, err := f.DeathYear(birthYear)
	if err != nil {
		return nil, err
	}
	first, err := f.FirstName(birthYear, gender)
	if err != nil {
		return nil, err
	}
	last, err := f.LastName(birthYear, isDescendant, originalLastNames)
	if err != nil {
		return nil, err
	}

	// Assign the next creation index
	p := person.New(person.ID(f.nextID), birthYear, died, first, last, gender, parents)
	f.nextID++

	return p, nil
}

// DeathYear returns birthYear + floor(life expectancy) + U{-10..10}.
// A result that would not exceed birthYear is raised to birthYear+MinLifespan.
func (f *Factory) DeathYear(birthYear int) (int, error) {
	le, err := f.tables.LifeExpectancy(birthYear)
	if err != nil {
		return 0, err
	}
	died := birthYear + int(math.Floor(le)) + intBetween(f.rng, -LifeJitter, LifeJitter)
	// Clamp lives that would end before they start
	if died <= birthYear {
		died = birthYear + MinLifespan
	}

	return died, nil
}

// FirstName draws a frequency-weighted first name for the birth decade and gender.
func (f *Factory) FirstName(birthYear int, gender person.Gender) (string, error) {
	names, err := f.tables.FirstNames(demography.Decade(birthYear), string(gender))
	if err != nil {
		return "", err
	}
	name, err := pickWeighted(f.rng, names)
	if err != nil {
		return "", fmt.Errorf("first name %s/%s: %w", demography.Decade(birthYear), gender, err)
	}

	return name, nil
}

// LastName chooses a surname; see CreatePerson for the rule.
func (f *Factory) LastName(birthYear int, isDescendant bool, originalLastNames []string) (string, error) {
	// Descendants keep a founder surname
	if isDescendant {
		if len(originalLastNames) == 0 {
			return "", ErrNoSurnames
		}
		return originalLastNames[f.rng.Intn(len(originalLastNames))], nil
	}

	// Everyone else draws from the decade's ranked surnames
	decade := demography.Decade(birthYear)
	names, err := f.tables.Surnames(decade)
	if err != nil {
		return "", err
	}
	name, err := pickWeighted(f.rng, names)
	if err != nil {
		return "", fmt.Errorf("last name %s: %w", decade, err)
	}

	return name, nil
}

// AssignGender draws a gender from the birth decade's probability row.
func (f *Factory) AssignGender(birthYear int) (person.Gender, error) {
	decade := demography.Decade(birthYear)
	weights, err := f.tables.GenderWeights(decade)
	if err != nil {
		return "", err
	}
	g, err := pickWeighted(f.rng, weights)
	if err != nil {
		return "", fmt.Errorf("gender %s: %w", decade, err)
	}

	return person.Gender(g), nil
}

// ShouldHavePartner reports true with the birth decade's marriage rate.
func (f *Factory) ShouldHavePartner(birthYear int) (bool, error) {
	rates, err := f.tables.Rates(demography.Decade(birthYear))
	if err != nil {
		return false, err
	}

	return f.rng.Float64() < rates.Marriage, nil
}

// CreatePartner creates and links a partner for p.
//
// The partner is born within PartnerAgeGap years of p. If that year falls
// past the horizon no partner is made and (nil, nil) is returned. The
// partner's gender is drawn from their own birth decade and has no parents.
// Returns person.ErrAlreadyPartnered if p already has a partner.
func (f *Factory) CreatePartner(p *person.Person, isDescendant bool, originalLastNames []string) (*person.Person, error) {
	if p == nil {
		return nil, person.ErrNilPerson
	}
	if p.Partner() != nil {
		return nil, fmt.Errorf("partner for %d: %w", p.ID, person.ErrAlreadyPartnered)
	}

	// Draw the partner's birth year; past the horizon there is no partner
	born := p.BirthYear + intBetween(f.rng, -PartnerAgeGap, PartnerAgeGap)
	if born > f.horizon {
		return nil, nil
	}

	// Gender comes from the partner's own decade
	gender, err := f.AssignGender(born)
	if err != nil {
		return nil, err
	}
	partner, err := f.CreatePerson(born, gender, isDescendant, originalLastNames, nil)
	if err != nil {
		return nil, err
	}
	// Link both sides
	if err = p.SetPartner(partner); err != nil {
		return nil, err
	}

	return partner, nil
}
